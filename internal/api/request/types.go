package request

// GuessRequest is the request body for submitting a guess
type GuessRequest struct {
	Guess *string `json:"guess"`
}

// ScoreRequest is the request body for reporting a score or recording stats
type ScoreRequest struct {
	Score *int `json:"score"`
}
