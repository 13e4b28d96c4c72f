package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Tier is a difficulty level chosen once per life before play begins
type Tier int

const (
	TierNovice Tier = iota
	TierStandard
	TierExpert
	TierHell
	tierCount
)

// ErrUnknownTier is returned when a tier name or value is not one of the four tiers
var ErrUnknownTier = errors.New("unknown difficulty tier")

var tierNames = [tierCount]string{"novice", "standard", "expert", "hell"}

// String returns the lowercase tier name
func (t Tier) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return tierNames[t]
}

// Valid reports whether t is one of the defined tiers
func (t Tier) Valid() bool {
	return t >= 0 && t < tierCount
}

// Tiers returns all tiers in menu order
func Tiers() []Tier {
	return []Tier{TierNovice, TierStandard, TierExpert, TierHell}
}

// ParseTier resolves a case-insensitive tier name
func ParseTier(name string) (Tier, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range tierNames {
		if n == name {
			return Tier(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownTier, "%q", name)
}

// Profile holds the tunables of one difficulty tier
type Profile struct {
	BaseObstacles int
	RoundDuration time.Duration
	BaseScoreCap  float64
}

// ObstacleCount returns the obstacle count for a round (rounds start at 1)
func (p Profile) ObstacleCount(round int) int {
	n := p.BaseObstacles + round - 1
	if n < 0 {
		return 0
	}
	return n
}

// defaultProfiles is the built-in difficulty table
var defaultProfiles = [tierCount]Profile{
	TierNovice:   {BaseObstacles: 2, RoundDuration: 20 * time.Second, BaseScoreCap: 15},
	TierStandard: {BaseObstacles: 3, RoundDuration: 16 * time.Second, BaseScoreCap: 30},
	TierExpert:   {BaseObstacles: 4, RoundDuration: 13 * time.Second, BaseScoreCap: 45},
	TierHell:     {BaseObstacles: 5, RoundDuration: 10 * time.Second, BaseScoreCap: 60},
}

// DefaultProfile returns the built-in profile for a tier
func DefaultProfile(t Tier) (Profile, error) {
	if !t.Valid() {
		return Profile{}, errors.Wrapf(ErrUnknownTier, "tier %d", int(t))
	}
	return defaultProfiles[t], nil
}
