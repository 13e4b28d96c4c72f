package engine

import (
	"log"

	"github.com/lixenwraith/shadow-dodge/constants"
	"github.com/lixenwraith/shadow-dodge/engine/fsm"
)

// Mode is the top-level game mode exposed to collaborators
type Mode int

const (
	ModeLoading Mode = iota
	ModeDifficultySelect
	ModeTutorial
	ModePlaying
	ModeDead
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeDifficultySelect:
		return "difficulty"
	case ModeTutorial:
		return "tutorial"
	case ModePlaying:
		return "playing"
	case ModeDead:
		return "dead"
	default:
		return "unknown"
	}
}

// State graph
//
//	Root
//	├── Loading
//	├── DifficultySelect
//	├── Session
//	│   ├── Tutorial
//	│   │   ├── Touch, Hold, Survive, Echo, Fade
//	│   └── Playing
//	└── Dead
const (
	stateLoading fsm.StateID = iota + fsm.StateRoot + 1
	stateDifficultySelect
	stateSession
	stateTutorial
	stateTutorialTouch
	stateTutorialHold
	stateTutorialSurvive
	stateTutorialEcho
	stateTutorialFade
	statePlaying
	stateDead
)

const (
	evDifficultySelected fsm.Event = iota + 1
	evPointerDown
	evDeath
	evRestart
)

// buildMachine wires the mode graph to Game actions
func buildMachine() (*fsm.Machine[*Game], error) {
	m := fsm.NewMachine[*Game]()

	m.AddState(fsm.StateRoot, "Root", fsm.StateNone)

	loading := m.AddState(stateLoading, "Loading", fsm.StateRoot)
	loading.OnUpdate = append(loading.OnUpdate, (*Game).updateLoading)
	m.AddTransition(stateLoading, fsm.Transition[*Game]{
		TargetID: stateDifficultySelect,
		Event:    fsm.EventTick,
		Guard:    func(g *Game) bool { return g.state.LoadingPercent >= constants.LoadingComplete },
	})

	selectNode := m.AddState(stateDifficultySelect, "DifficultySelect", fsm.StateRoot)
	selectNode.OnEnter = append(selectNode.OnEnter, (*Game).prepareBackdrop)
	selectNode.OnExit = append(selectNode.OnExit, (*Game).applyDifficulty)
	m.On(stateDifficultySelect, evDifficultySelected, stateTutorialTouch, func(g *Game) bool { return !g.state.TutorialDone })
	m.On(stateDifficultySelect, evDifficultySelected, statePlaying, nil)

	m.AddState(stateSession, "Session", fsm.StateRoot)
	m.On(stateSession, evDeath, stateDead, nil)

	tutorial := m.AddState(stateTutorial, "Tutorial", stateSession)
	tutorial.OnExit = append(tutorial.OnExit, func(g *Game) { g.state.Tutorial.Visible = false })

	touch := m.AddState(stateTutorialTouch, "TutorialTouch", stateTutorial)
	touch.OnEnter = append(touch.OnEnter, tutorialStep(StepTouch))
	m.On(stateTutorialTouch, evPointerDown, stateTutorialHold, nil)

	hold := m.AddState(stateTutorialHold, "TutorialHold", stateTutorial)
	hold.OnEnter = append(hold.OnEnter, tutorialStep(StepHold))
	m.On(stateTutorialHold, evPointerDown, stateTutorialSurvive, nil)

	survive := m.AddState(stateTutorialSurvive, "TutorialSurvive", stateTutorial)
	survive.OnEnter = append(survive.OnEnter, tutorialStep(StepSurvive), (*Game).restartRoundClock)
	survive.OnUpdate = append(survive.OnUpdate, func(g *Game) { g.simulate(false) })
	m.After(stateTutorialSurvive, constants.TutorialSurviveDuration, stateTutorialEcho)

	echo := m.AddState(stateTutorialEcho, "TutorialEcho", stateTutorial)
	echo.OnEnter = append(echo.OnEnter, func(g *Game) { g.nextRound(constants.TutorialGhostSpeed) }, tutorialStep(StepEcho))
	m.After(stateTutorialEcho, constants.TutorialEchoDuration, stateTutorialFade)

	fade := m.AddState(stateTutorialFade, "TutorialFade", stateTutorial)
	fade.OnEnter = append(fade.OnEnter, tutorialStep(StepFade))
	fade.OnExit = append(fade.OnExit, (*Game).completeTutorial)
	m.After(stateTutorialFade, constants.TutorialFadeDuration, statePlaying)

	playing := m.AddState(statePlaying, "Playing", stateSession)
	playing.OnEnter = append(playing.OnEnter, (*Game).restartRoundClock)
	playing.OnUpdate = append(playing.OnUpdate, func(g *Game) { g.simulate(true) })

	dead := m.AddState(stateDead, "Dead", fsm.StateRoot)
	dead.OnExit = append(dead.OnExit, (*Game).resetLife)
	m.On(stateDead, evRestart, statePlaying, func(g *Game) bool { return g.state.GameOverVisible })

	m.InitialStateID = stateLoading
	m.OnTransition = func(from, to fsm.StateID) {
		log.Printf("mode: %s -> %s", m.StateName(from), m.StateName(to))
	}

	if err := m.CompilePaths(); err != nil {
		return nil, err
	}
	return m, nil
}

func tutorialStep(step TutorialStep) fsm.ActionFunc[*Game] {
	return func(g *Game) {
		g.state.Tutorial.enter(step)
		g.emit(CueTutorialStep)
	}
}
