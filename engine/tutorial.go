package engine

import "github.com/lixenwraith/shadow-dodge/constants"

// TutorialStep is the position inside the first-run tutorial
type TutorialStep int

const (
	StepTouch   TutorialStep = iota // wait for first input
	StepHold                        // wait for second input
	StepSurvive                     // live round
	StepEcho                        // ghost explanation
	StepFade                        // text hidden, play starts shortly
)

// Message returns the overlay text of a step, empty for StepFade
func (s TutorialStep) Message() string {
	switch s {
	case StepTouch:
		return constants.TutorialMessageTouch
	case StepHold:
		return constants.TutorialMessageHold
	case StepSurvive:
		return constants.TutorialMessageSurvive
	case StepEcho:
		return constants.TutorialMessageEcho
	default:
		return ""
	}
}

// Tutorial is the overlay state while the tutorial runs
type Tutorial struct {
	Step    TutorialStep
	Message string
	Visible bool
}

func (t *Tutorial) enter(step TutorialStep) {
	t.Step = step
	t.Message = step.Message()
	t.Visible = step != StepFade
}
