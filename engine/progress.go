package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/shadow-dodge/config"
	"github.com/lixenwraith/shadow-dodge/constants"
	"github.com/lixenwraith/shadow-dodge/vmath"
)

// Progress tracks round, multiplier and score of the current life
// Score policy: the running round contributes elapsed/duration of its cap,
// a completed round contributes its full cap
type Progress struct {
	Round          int
	Multiplier     int
	RoundScoreCap  float64
	RoundScore     float64
	CompletedTotal float64
	Score          float64
	RoundStart     time.Time
}

// Reset starts a fresh life at round 1
func (p *Progress) Reset(profile config.Profile, now time.Time) {
	*p = Progress{
		Round:         1,
		Multiplier:    1,
		RoundScoreCap: profile.BaseScoreCap,
		RoundStart:    now,
	}
}

// Elapsed returns time since the round started
func (p *Progress) Elapsed(now time.Time) time.Duration {
	return now.Sub(p.RoundStart)
}

// UpdateScore recomputes the round and total score from elapsed time
func (p *Progress) UpdateScore(now time.Time, duration time.Duration) {
	fraction := 1.0
	if duration > 0 {
		fraction = vmath.Clamp(p.Elapsed(now).Seconds()/duration.Seconds(), 0, 1)
	}
	p.RoundScore = fraction * p.RoundScoreCap
	p.Score = p.CompletedTotal + p.RoundScore
}

// CompleteRound banks the full cap of the running round
func (p *Progress) CompleteRound() {
	p.CompletedTotal += p.RoundScoreCap
}

// BeginNextRound increments round and multiplier, restarts the round clock and raises the cap
func (p *Progress) BeginNextRound(profile config.Profile, now time.Time) {
	p.Multiplier++
	p.Round++
	p.RoundStart = now
	p.RoundScore = 0
	p.RoundScoreCap = profile.BaseScoreCap + float64(p.Round)*constants.ScoreCapPerRound
	p.Score = p.CompletedTotal
}

// TimeLeft returns whole seconds remaining in the round, never negative
func (p *Progress) TimeLeft(now time.Time, duration time.Duration) int {
	left := int(duration.Seconds()) - int(math.Floor(p.Elapsed(now).Seconds()))
	return max(left, 0)
}

// StageIndex returns the cosmetic stage for a round
func StageIndex(round int) int {
	if round < 1 {
		return 0
	}
	return (round - 1) / constants.RoundsPerStage
}
