package constants

// --- Play Field ---
const (
	// DefaultFieldWidth is the world width in world units
	DefaultFieldWidth = 960.0

	// DefaultFieldHeight is the world height in world units
	DefaultFieldHeight = 540.0
)

// --- Player ---
const (
	PlayerSize         = 20.0
	PlayerAcceleration = 0.6
	PlayerFriction     = 0.90

	// PlayerSeekDeadZone is the distance below which the input target applies no force
	PlayerSeekDeadZone = 5.0

	PlayerMaxSpeed     = 8.0
	PlayerMaxSpeedSlow = 4.0

	// PlayerTrailThreshold is the per-axis speed above which a trail particle spawns
	PlayerTrailThreshold = 0.2
)

// --- Ghost ---
const (
	// GhostBaseSpeed and GhostSpeedPerRound give playback speed 1 + round*0.2
	GhostBaseSpeed     = 1.0
	GhostSpeedPerRound = 0.2

	// SlowMotionFactor scales ghost playback while slow motion is held
	SlowMotionFactor = 0.5
)

// --- Obstacle ---
const (
	ObstacleSize = 40.0
)

// --- Score ---
const (
	// ScoreCapPerRound is added per round number to the difficulty base cap
	ScoreCapPerRound = 8.0
)

// --- Stage ---
const (
	// RoundsPerStage is the number of rounds sharing one stage theme
	RoundsPerStage = 5

	// StageHueStep is the hue rotation in degrees per stage
	StageHueStep = 50

	StageElementCount = 15
)

// --- Background Decor ---
const (
	DecorTreeCount  = 15
	DecorHouseCount = 6
	DecorHouseSize  = 60.0

	// DecorScrollSpeed is the parallax offset added per frame, houses scroll at half rate
	DecorScrollSpeed = 0.2
)
