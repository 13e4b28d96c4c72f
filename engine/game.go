package engine

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/shadow-dodge/config"
	"github.com/lixenwraith/shadow-dodge/constants"
	"github.com/lixenwraith/shadow-dodge/engine/fsm"
	"github.com/lixenwraith/shadow-dodge/store"
	"github.com/lixenwraith/shadow-dodge/vmath"
)

// ErrWrongMode is returned by operations invoked outside the mode that accepts them
var ErrWrongMode = errors.New("operation not allowed in current mode")

// Game drives the simulation one frame at a time
// Not safe for concurrent use: the caller serializes Step and input calls
type Game struct {
	state   *SimulationState
	cfg     *config.Config
	store   store.Store
	clock   TimeProvider
	rng     *rand.Rand
	machine *fsm.Machine[*Game]

	events   []Event
	lastStep time.Time

	pendingTier config.Tier
}

// NewGame creates a game in the Loading mode
// Persisted state is read once here
func NewGame(cfg *config.Config, st store.Store, clock TimeProvider, rng *rand.Rand) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if st == nil {
		st = store.NewMemoryStore(false, 0)
	}
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}

	field := vmath.Point{X: cfg.FieldWidth, Y: cfg.FieldHeight}
	g := &Game{
		state: &SimulationState{
			Field:        field,
			Player:       NewPlayer(field),
			HighScore:    st.HighScore(),
			TutorialDone: st.TutorialCompleted(),
		},
		cfg:   cfg,
		store: st,
		clock: clock,
		rng:   rng,
	}
	g.state.Progress.Round = 1
	g.state.Progress.Multiplier = 1
	g.lastStep = clock.Now()

	machine, err := buildMachine()
	if err != nil {
		return nil, fmt.Errorf("build mode machine: %w", err)
	}
	g.machine = machine
	if err := g.machine.Init(g); err != nil {
		return nil, fmt.Errorf("init mode machine: %w", err)
	}
	return g, nil
}

// State exposes the simulation aggregate for read-only inspection
func (g *Game) State() *SimulationState {
	return g.state
}

// Mode returns the active top-level mode
func (g *Game) Mode() Mode {
	switch {
	case g.machine.IsIn(stateLoading):
		return ModeLoading
	case g.machine.IsIn(stateDifficultySelect):
		return ModeDifficultySelect
	case g.machine.IsIn(stateTutorial):
		return ModeTutorial
	case g.machine.IsIn(statePlaying):
		return ModePlaying
	default:
		return ModeDead
	}
}

// TutorialStep returns the active tutorial step, ok is false outside the tutorial
func (g *Game) TutorialStep() (TutorialStep, bool) {
	if !g.machine.IsIn(stateTutorial) {
		return 0, false
	}
	return g.state.Tutorial.Step, true
}

// SkipLoading completes the loading bar; the transition happens on the next Step
func (g *Game) SkipLoading() {
	g.state.LoadingPercent = constants.LoadingComplete
}

// Step advances one frame: mode logic first, then cosmetic decay that runs in every mode
func (g *Game) Step() {
	now := g.clock.Now()
	dt := max(now.Sub(g.lastStep), 0)
	g.lastStep = now

	s := g.state
	s.FrameNumber++

	s.Effects.DecayShake(g.rng)
	g.machine.Update(g, dt)

	s.Effects.DecayFragments()
	s.Decor.Advance()

	if s.HasDied && !s.GameOverVisible && len(s.Effects.Fragments) == 0 {
		s.GameOverVisible = true
		g.emit(CueGameOver)
	}
}

// SelectDifficulty applies a tier and leaves DifficultySelect
func (g *Game) SelectDifficulty(t config.Tier) error {
	if g.Mode() != ModeDifficultySelect {
		return ErrWrongMode
	}
	if _, err := g.cfg.Profile(t); err != nil {
		return err
	}
	g.pendingTier = t
	if !g.machine.HandleEvent(g, evDifficultySelected) {
		return ErrWrongMode
	}
	g.emit(CueDifficultySelected)
	return nil
}

// Restart begins a new life with the same difficulty once the game-over screen is shown
func (g *Game) Restart() error {
	if !g.machine.HandleEvent(g, evRestart) {
		return ErrWrongMode
	}
	g.emit(CueRestart)
	return nil
}

// PointerDown handles a press at p (world units): advances tutorial prompts,
// otherwise sets the steering target and holds slow motion
func (g *Game) PointerDown(p vmath.Point) {
	if g.machine.HandleEvent(g, evPointerDown) {
		return
	}
	if g.steering() {
		g.state.Input = Input{Target: p, HasTarget: true, Slow: true}
	}
}

// PointerMove updates the steering target while a press is held
func (g *Game) PointerMove(p vmath.Point) {
	g.state.Input.Target = p
	g.state.Input.HasTarget = true
}

// PointerUp clears the steering target and releases slow motion
func (g *Game) PointerUp() {
	g.state.Input = Input{}
}

// DrainEvents returns and clears cues emitted since the last call
func (g *Game) DrainEvents() []Event {
	out := g.events
	g.events = nil
	return out
}

func (g *Game) steering() bool {
	return g.machine.IsIn(statePlaying) || g.machine.IsIn(stateTutorialSurvive)
}

func (g *Game) emit(c Cue) {
	g.events = append(g.events, Event{
		Cue:   c,
		Round: g.state.Progress.Round,
		Score: int(math.Floor(g.state.Progress.Score)),
	})
}

// --- Frame simulation ---

// simulate runs one live frame: player, path, trail, ghosts, collisions, score, round timeout
func (g *Game) simulate(checkRound bool) {
	s := g.state
	if s.HasDied {
		return
	}
	now := g.clock.Now()

	if s.Player.Update(s.Input.target(), s.Input.Slow, s.Field) {
		s.Effects.EmitTrail(s.Player.Pos)
	}
	s.Path = append(s.Path, s.Player.Pos)
	s.Effects.DecayTrail()

	s.Ghosts.Update(s.Input.Slow)

	if g.checkCollisions() {
		return
	}

	s.Progress.UpdateScore(now, s.Profile.RoundDuration)

	if checkRound && s.Progress.Elapsed(now) >= s.Profile.RoundDuration {
		g.nextRound(GhostSpeed(s.Progress.Round))
	}
}

// checkCollisions tests the player against ghosts then obstacles, triggering death on the first hit
func (g *Game) checkCollisions() bool {
	s := g.state
	p := s.Player

	for i := 0; i < s.Ghosts.Len(); i++ {
		gh := s.Ghosts.At(i)
		if gh.Inert() {
			continue
		}
		if vmath.Overlaps(p.Pos, gh.Pos, p.Size, p.Size) {
			g.triggerDeath()
			return true
		}
	}

	for _, o := range s.Obstacles.All() {
		if vmath.Overlaps(p.Pos, o.Pos, p.Size, o.Size) {
			g.triggerDeath()
			return true
		}
	}
	return false
}

// nextRound banks the cap, turns the path into a ghost and starts the next round
func (g *Game) nextRound(ghostSpeed float64) {
	s := g.state
	now := g.clock.Now()

	s.Progress.CompleteRound()
	s.Ghosts.Spawn(s.Path, ghostSpeed, g.rng)
	pathLen := len(s.Path)

	s.Progress.BeginNextRound(s.Profile, now)
	s.Path = s.Path[:0]
	s.Obstacles.Regenerate(s.Profile, s.Progress.Round, s.Field, g.rng)
	s.Stage.Update(s.Progress.Round, s.Field, g.rng)

	log.Printf("round %d started: ghosts=%d last_path=%d cap=%.0f total=%.0f",
		s.Progress.Round, s.Ghosts.Len(), pathLen, s.Progress.RoundScoreCap, s.Progress.CompletedTotal)
	g.emit(CueRoundAdvanced)
}

// triggerDeath freezes the life; only the first call has any effect
func (g *Game) triggerDeath() {
	s := g.state
	if s.HasDied {
		return
	}
	s.HasDied = true

	s.LastScore = int(math.Floor(s.Progress.Score))
	s.NewHighScore = false
	if s.LastScore > s.HighScore {
		s.HighScore = s.LastScore
		s.NewHighScore = true
		if err := g.store.SetHighScore(s.HighScore); err != nil {
			log.Printf("persist high score: %v", err)
		}
	}

	s.Effects.Kick(constants.ShakeImpulse)
	s.Effects.Burst(s.Player.Pos, s.Player.Size, g.rng)

	log.Printf("death: round=%d score=%d high=%d", s.Progress.Round, s.LastScore, s.HighScore)
	g.emit(CueDeath)
	if s.NewHighScore {
		g.emit(CueHighScore)
	}

	g.machine.HandleEvent(g, evDeath)
}

// --- Mode actions ---

func (g *Game) updateLoading() {
	ticks := int(g.machine.TimeInState() / constants.LoadingTickInterval)
	pct := min(ticks*constants.LoadingTickStep, constants.LoadingComplete)
	if pct > g.state.LoadingPercent {
		g.state.LoadingPercent = pct
	}
}

func (g *Game) prepareBackdrop() {
	g.state.Decor.Regenerate(g.state.Field, g.rng)
	g.state.Stage.Update(g.state.Progress.Round, g.state.Field, g.rng)
}

// applyDifficulty fixes the chosen profile and starts round 1
func (g *Game) applyDifficulty() {
	s := g.state
	profile, err := g.cfg.Profile(g.pendingTier)
	if err != nil {
		// SelectDifficulty validated the tier already
		log.Printf("apply difficulty: %v", err)
		return
	}
	s.Tier = g.pendingTier
	s.Profile = profile
	s.HasTier = true

	s.Progress.Reset(profile, g.clock.Now())
	s.Path = s.Path[:0]
	s.Obstacles.Regenerate(profile, s.Progress.Round, s.Field, g.rng)
	log.Printf("difficulty %s: obstacles=%d round=%v cap=%.0f",
		s.Tier, profile.BaseObstacles, profile.RoundDuration, profile.BaseScoreCap)
}

func (g *Game) restartRoundClock() {
	g.state.Progress.RoundStart = g.clock.Now()
	g.state.Path = g.state.Path[:0]
}

func (g *Game) completeTutorial() {
	g.state.TutorialDone = true
	if err := g.store.SetTutorialCompleted(); err != nil {
		log.Printf("persist tutorial flag: %v", err)
	}
}

// resetLife restores round, score, ghosts, obstacles and the player, keeping the difficulty
func (g *Game) resetLife() {
	s := g.state
	s.Player = NewPlayer(s.Field)
	s.Path = s.Path[:0]
	s.Ghosts.Reset()
	s.Effects.Clear()
	s.Progress.Reset(s.Profile, g.clock.Now())
	s.HasDied = false
	s.GameOverVisible = false
	s.NewHighScore = false
	s.Input = Input{}

	s.Obstacles.Regenerate(s.Profile, s.Progress.Round, s.Field, g.rng)
	s.Decor.Regenerate(s.Field, g.rng)
	s.Stage.Update(s.Progress.Round, s.Field, g.rng)
}
