package engine

// Cue is an outbound notification for audio and UI collaborators
type Cue int

const (
	CueNone Cue = iota
	CueDifficultySelected
	CueTutorialStep
	CueRoundAdvanced
	CueDeath
	CueHighScore
	CueGameOver
	CueRestart
)

var cueNames = map[Cue]string{
	CueNone:               "none",
	CueDifficultySelected: "difficulty_selected",
	CueTutorialStep:       "tutorial_step",
	CueRoundAdvanced:      "round_advanced",
	CueDeath:              "death",
	CueHighScore:          "high_score",
	CueGameOver:           "game_over",
	CueRestart:            "restart",
}

func (c Cue) String() string {
	if n, ok := cueNames[c]; ok {
		return n
	}
	return "unknown"
}

// Event carries a cue with the round and floored score at emission time
type Event struct {
	Cue   Cue
	Round int
	Score int
}
