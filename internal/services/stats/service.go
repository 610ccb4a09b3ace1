package stats

import "github.com/mcoot/boggle-go/internal/model"

// Update folds a finished game's score into stats.
// GamesPlayed always advances by one; HighestScore never goes down.
func Update(stats model.SessionStats, score int) model.SessionStats {
	return model.SessionStats{
		GamesPlayed:  stats.GamesPlayed + 1,
		HighestScore: max(stats.HighestScore, score),
	}
}
