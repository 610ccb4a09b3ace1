package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/boggle-go/internal/model"
)

func TestUpdateSequence(t *testing.T) {
	current := model.SessionStats{GamesPlayed: 0, HighestScore: 15}

	current = Update(current, 20)
	assert.Equal(t, model.SessionStats{GamesPlayed: 1, HighestScore: 20}, current)

	current = Update(current, 10)
	assert.Equal(t, model.SessionStats{GamesPlayed: 2, HighestScore: 20}, current)

	current = Update(current, 20)
	assert.Equal(t, model.SessionStats{GamesPlayed: 3, HighestScore: 20}, current)
}

func TestUpdateFromZero(t *testing.T) {
	updated := Update(model.SessionStats{}, 0)
	assert.Equal(t, 1, updated.GamesPlayed)
	assert.Equal(t, 0, updated.HighestScore)
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	original := model.SessionStats{GamesPlayed: 4, HighestScore: 9}
	_ = Update(original, 30)
	assert.Equal(t, model.SessionStats{GamesPlayed: 4, HighestScore: 9}, original)
}
