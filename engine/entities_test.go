package engine

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/shadow-dodge/config"
	"github.com/lixenwraith/shadow-dodge/constants"
	"github.com/lixenwraith/shadow-dodge/vmath"
)

const epsilon = 1e-9

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

var testField = vmath.Point{X: constants.DefaultFieldWidth, Y: constants.DefaultFieldHeight}

func TestPlayerSeekAppliesAccelerationThenFriction(t *testing.T) {
	p := NewPlayer(testField)
	p.Pos = vmath.Point{X: 100, Y: 100}
	target := vmath.Point{X: 200, Y: 100}

	p.Update(&target, false, testField)

	wantVX := constants.PlayerAcceleration * constants.PlayerFriction
	if !almostEqual(p.Vel.X, wantVX) {
		t.Errorf("Expected vx %v, got %v", wantVX, p.Vel.X)
	}
	if p.Vel.Y != 0 {
		t.Errorf("Expected vy 0, got %v", p.Vel.Y)
	}
	if !almostEqual(p.Pos.X, 100+wantVX) {
		t.Errorf("Expected x %v, got %v", 100+wantVX, p.Pos.X)
	}
}

func TestPlayerDeadZone(t *testing.T) {
	p := NewPlayer(testField)
	target := p.Pos.Add(vmath.Point{X: 3, Y: 0})

	if p.Update(&target, false, testField) {
		t.Error("Expected no trail emission inside dead zone")
	}
	if p.Vel != (vmath.Point{}) {
		t.Errorf("Expected zero velocity inside dead zone, got %+v", p.Vel)
	}
}

func TestPlayerSpeedCap(t *testing.T) {
	tests := []struct {
		name string
		slow bool
		max  float64
	}{
		{"normal", false, constants.PlayerMaxSpeed},
		{"slow", true, constants.PlayerMaxSpeedSlow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(testField)
			p.Vel = vmath.Point{X: 50, Y: -50}
			p.Update(nil, tt.slow, testField)
			if math.Abs(p.Vel.X) > tt.max || math.Abs(p.Vel.Y) > tt.max {
				t.Errorf("Expected |v| <= %v, got %+v", tt.max, p.Vel)
			}
		})
	}
}

func TestPlayerClampKeepsVelocity(t *testing.T) {
	p := NewPlayer(testField)
	p.Pos = vmath.Point{X: testField.X - p.Size - 1, Y: 0}
	p.Vel = vmath.Point{X: 6, Y: -6}

	p.Update(nil, false, testField)

	if p.Pos.X != testField.X-p.Size {
		t.Errorf("Expected x clamped to %v, got %v", testField.X-p.Size, p.Pos.X)
	}
	if p.Pos.Y != 0 {
		t.Errorf("Expected y clamped to 0, got %v", p.Pos.Y)
	}
	if p.Vel.X <= 0 || p.Vel.Y >= 0 {
		t.Errorf("Expected velocity untouched by clamp, got %+v", p.Vel)
	}
}

func TestGhostArenaSpawnCopiesPath(t *testing.T) {
	var arena GhostArena
	rng := testRNG()
	path := []vmath.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}

	idx := arena.Spawn(path, 1, rng)
	path[0] = vmath.Point{X: 99, Y: 99}

	got := arena.Path(idx)
	if len(got) != 3 {
		t.Fatalf("Expected path length 3, got %d", len(got))
	}
	if got[0] != (vmath.Point{X: 1, Y: 1}) {
		t.Errorf("Expected recorded path to be a copy, got %+v", got[0])
	}

	g := arena.At(idx)
	if g.Frame < 0 || g.Frame >= 3 {
		t.Errorf("Expected phase in [0, 3), got %v", g.Frame)
	}
}

func TestGhostArenaPathsDoNotAlias(t *testing.T) {
	var arena GhostArena
	rng := testRNG()

	a := arena.Spawn([]vmath.Point{{X: 1}}, 1, rng)
	b := arena.Spawn([]vmath.Point{{X: 2}, {X: 3}}, 1, rng)

	pa := arena.Path(a)
	pa = append(pa, vmath.Point{X: 42})
	_ = pa

	if arena.Path(b)[0].X != 2 {
		t.Errorf("Expected second ghost path untouched, got %+v", arena.Path(b))
	}
}

func TestGhostArenaUpdate(t *testing.T) {
	var arena GhostArena
	rng := testRNG()
	path := []vmath.Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}}

	idx := arena.Spawn(path, 1.5, rng)
	g := arena.At(idx)
	g.Frame = 3.5

	arena.Update(false)
	if g.Pos.X != 3 {
		t.Errorf("Expected sample 3, got %v", g.Pos.X)
	}
	if g.Frame != 5 {
		t.Errorf("Expected frame 5, got %v", g.Frame)
	}

	// Wraps modulo path length
	arena.Update(true)
	if g.Pos.X != 1 {
		t.Errorf("Expected wrapped sample 1, got %v", g.Pos.X)
	}
	if g.Frame != 5+1.5*constants.SlowMotionFactor {
		t.Errorf("Expected slow advance, got %v", g.Frame)
	}
}

func TestGhostArenaInertGhost(t *testing.T) {
	var arena GhostArena
	idx := arena.Spawn(nil, 1, testRNG())
	g := arena.At(idx)

	if !g.Inert() {
		t.Fatal("Expected empty ghost to be inert")
	}
	arena.Update(false)
	if g.Frame != 0 || g.Pos != (vmath.Point{}) {
		t.Errorf("Expected inert ghost untouched, got frame=%v pos=%+v", g.Frame, g.Pos)
	}
}

func TestGhostSpeed(t *testing.T) {
	if got := GhostSpeed(1); !almostEqual(got, 1.2) {
		t.Errorf("Expected 1.2, got %v", got)
	}
	if got := GhostSpeed(5); !almostEqual(got, 2.0) {
		t.Errorf("Expected 2.0, got %v", got)
	}
}

func TestObstacleFieldRegenerate(t *testing.T) {
	profile, _ := config.DefaultProfile(config.TierHell)
	var f ObstacleField
	rng := testRNG()

	f.Regenerate(profile, 3, testField, rng)
	if len(f.All()) != 7 {
		t.Fatalf("Expected 7 obstacles, got %d", len(f.All()))
	}
	for _, o := range f.All() {
		if o.Pos.X < 0 || o.Pos.X >= testField.X-o.Size || o.Pos.Y < 0 || o.Pos.Y >= testField.Y-o.Size {
			t.Errorf("Expected obstacle inside field, got %+v", o.Pos)
		}
	}

	f.Regenerate(profile, 1, testField, rng)
	if len(f.All()) != 5 {
		t.Errorf("Expected full replace to 5 obstacles, got %d", len(f.All()))
	}
}

func TestProgressScoring(t *testing.T) {
	profile, _ := config.DefaultProfile(config.TierStandard)
	start := time.Unix(0, 0)
	var p Progress
	p.Reset(profile, start)

	p.UpdateScore(start.Add(8*time.Second), profile.RoundDuration)
	if !almostEqual(p.Score, 15) {
		t.Errorf("Expected half cap 15, got %v", p.Score)
	}

	// Past the deadline the round contributes at most its cap
	p.UpdateScore(start.Add(40*time.Second), profile.RoundDuration)
	if !almostEqual(p.Score, 30) {
		t.Errorf("Expected clamped score 30, got %v", p.Score)
	}

	p.CompleteRound()
	p.BeginNextRound(profile, start.Add(16*time.Second))
	if p.Round != 2 || p.Multiplier != 2 {
		t.Errorf("Expected round 2 multiplier 2, got %d/%d", p.Round, p.Multiplier)
	}
	if p.RoundScoreCap != 46 {
		t.Errorf("Expected cap 46, got %v", p.RoundScoreCap)
	}
	if p.Score != 30 {
		t.Errorf("Expected banked score 30, got %v", p.Score)
	}
}

func TestProgressTimeLeft(t *testing.T) {
	start := time.Unix(0, 0)
	p := Progress{RoundStart: start}

	if got := p.TimeLeft(start.Add(1500*time.Millisecond), 16*time.Second); got != 15 {
		t.Errorf("Expected 15, got %d", got)
	}
	if got := p.TimeLeft(start.Add(20*time.Second), 16*time.Second); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}

func TestStageIndexAndHue(t *testing.T) {
	tests := []struct {
		round int
		index int
	}{
		{1, 0}, {5, 0}, {6, 1}, {11, 2}, {0, 0},
	}
	for _, tt := range tests {
		if got := StageIndex(tt.round); got != tt.index {
			t.Errorf("StageIndex(%d): Expected %d, got %d", tt.round, tt.index, got)
		}
	}

	s := Stage{Index: 8}
	if s.Hue() != 40 {
		t.Errorf("Expected hue 40, got %v", s.Hue())
	}
	if s.Theme() != ThemeMinimal {
		t.Errorf("Expected %s, got %s", ThemeMinimal, s.Theme())
	}

	s.Update(11, testField, testRNG())
	if s.Index != 2 || len(s.Elements) != constants.StageElementCount {
		t.Errorf("Expected stage 2 with %d elements, got %d/%d", constants.StageElementCount, s.Index, len(s.Elements))
	}
}

func TestDecorScrolledWraps(t *testing.T) {
	d := Decor{Offset: 30}
	if got := d.Scrolled(10, 1, 100); got != 80 {
		t.Errorf("Expected 80, got %v", got)
	}
	if got := d.Scrolled(10, 0.5, 100); got != 95 {
		t.Errorf("Expected 95, got %v", got)
	}
}

func TestEffectsBurstAndDecay(t *testing.T) {
	var e Effects
	rng := testRNG()

	e.Burst(vmath.Point{X: 100, Y: 100}, constants.PlayerSize, rng)
	if len(e.Fragments) != 16 {
		t.Fatalf("Expected 16 fragments, got %d", len(e.Fragments))
	}
	for _, f := range e.Fragments {
		if f.Size != constants.PlayerSize/4 {
			t.Errorf("Expected fragment size %v, got %v", constants.PlayerSize/4, f.Size)
		}
		if math.Abs(f.Vel.X) > 5 || math.Abs(f.Vel.Y) > 5 {
			t.Errorf("Expected fragment velocity within 5, got %+v", f.Vel)
		}
	}

	for i := 0; i < constants.FragmentLifetime-1; i++ {
		e.DecayFragments()
	}
	if len(e.Fragments) != 16 {
		t.Errorf("Expected fragments alive before lifetime ends, got %d", len(e.Fragments))
	}
	e.DecayFragments()
	if len(e.Fragments) != 0 {
		t.Errorf("Expected fragments expired, got %d", len(e.Fragments))
	}
}

func TestEffectsShakeDecays(t *testing.T) {
	var e Effects
	rng := testRNG()
	e.Kick(constants.ShakeImpulse)

	for i := 0; i < 200 && e.Shake > 0; i++ {
		before := e.Shake
		e.DecayShake(rng)
		if e.Shake > before {
			t.Fatalf("Expected shake to decay, went %v -> %v", before, e.Shake)
		}
	}
	if e.Shake != 0 {
		t.Errorf("Expected shake to settle at 0, got %v", e.Shake)
	}
	e.DecayShake(rng)
	if e.ShakeOffset != (vmath.Point{}) {
		t.Errorf("Expected zero offset at rest, got %+v", e.ShakeOffset)
	}
}

func TestEffectsTrailLifetime(t *testing.T) {
	var e Effects
	e.EmitTrail(vmath.Point{X: 1, Y: 1})
	for i := 0; i < constants.TrailLifetime-1; i++ {
		e.DecayTrail()
	}
	if len(e.Trail) != 1 || e.Trail[0].Life != 1 {
		t.Fatalf("Expected one particle with life 1, got %+v", e.Trail)
	}
	e.DecayTrail()
	if len(e.Trail) != 0 {
		t.Errorf("Expected trail expired, got %d", len(e.Trail))
	}
}

func TestTutorialStepMessages(t *testing.T) {
	var tut Tutorial
	tut.enter(StepHold)
	if !tut.Visible || tut.Message != constants.TutorialMessageHold {
		t.Errorf("Expected visible hold message, got %+v", tut)
	}
	tut.enter(StepFade)
	if tut.Visible || tut.Message != "" {
		t.Errorf("Expected hidden empty fade, got %+v", tut)
	}
}
