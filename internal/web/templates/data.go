package templates

import (
	"github.com/mcoot/boggle-go/internal/model"
)

// DefaultGameSeconds is how long the browser game runs before stats are posted
const DefaultGameSeconds = 60

// PageData holds common data for all pages
type PageData struct {
	Title string
}

// HomeData is the data for the game page
type HomeData struct {
	PageData
	Board       *model.Board
	Stats       model.SessionStats
	GameSeconds int
}

func pageTitle(title string) string {
	if title == "" {
		return "Boggle"
	}
	return title + " | Boggle"
}

func gameSeconds(seconds int) int {
	if seconds <= 0 {
		return DefaultGameSeconds
	}
	return seconds
}
