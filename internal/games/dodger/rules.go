package dodger

import (
	"time"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

// Tier unlocks a Classic obstacle kind once the score passes Threshold.
// A single draw below Chance picks the kind.
type Tier struct {
	Kind      Kind
	Threshold int
	Chance    float64
}

// Rules holds every gameplay tunable. Values are fixed at build time;
// DefaultRules is the only source the game uses.
type Rules struct {
	// Board, in world units
	BoardW, BoardH float64
	Lanes          int

	// Player
	PlayerSize      float64
	PlayerSpeed     float64
	PlayerBottomGap float64 // distance between the player and the bottom edge at run start
	InitialLives    int
	Invincibility   time.Duration

	// Falling blocks
	ObstacleHeight       float64
	InitialObstacleSpeed float64
	PruneAbove           float64 // obstacles at or above -PruneAbove are dropped

	// Difficulty ramp
	SpeedFloor        int // speed only ramps once the score is past this
	SpeedInterval     int
	SpeedStep         float64
	InitialSpawnRate  float64 // frames between spawns
	SpawnRateInterval int
	SpawnRateStep     float64
	MinSpawnRate      float64

	// Heal (both stages)
	HealInterval int
	HealAmount   int

	// Classic
	SafeLanes    int
	PushAmount   float64
	ClassicTiers []Tier // checked in order, first match wins

	// Beach
	WaveThreshold        int
	WaveSpeedMultiplier  float64
	WaveRateFactor       float64
	WavePhase            int
	WaveSingleLaneChance float64

	ReefThreshold int
	ReefEvery     int // frames
	ReefSize      float64
	ReefWarning   time.Duration
	ReefLifespan  time.Duration

	FishThreshold int
	FishEvery     int // frames
	FishSize      float64

	// Trail behind the player
	TrailLength int
	TrailEvery  int
}

// DefaultRules returns the tuned rule set.
func DefaultRules() Rules {
	const playerSize = 30
	return Rules{
		BoardW: 400,
		BoardH: 600,
		Lanes:  4,

		PlayerSize:      playerSize,
		PlayerSpeed:     4,
		PlayerBottomGap: 20,
		InitialLives:    3,
		Invincibility:   2 * time.Second,

		ObstacleHeight:       20,
		InitialObstacleSpeed: 1.0,
		PruneAbove:           100,

		SpeedFloor:        8000,
		SpeedInterval:     500,
		SpeedStep:         0.2,
		InitialSpawnRate:  140,
		SpawnRateInterval: 1000,
		SpawnRateStep:     2,
		MinSpawnRate:      20,

		HealInterval: 500,
		HealAmount:   2,

		SafeLanes:  2,
		PushAmount: playerSize * 2,
		ClassicTiers: []Tier{
			{Kind: KindPush, Threshold: 10000, Chance: 0.20},
			{Kind: KindMove, Threshold: 7500, Chance: 0.30},
			{Kind: KindStill, Threshold: 3000, Chance: 0.35},
		},

		WaveThreshold:        3000,
		WaveSpeedMultiplier:  2,
		WaveRateFactor:       1.5,
		WavePhase:            10,
		WaveSingleLaneChance: 0.6,

		ReefThreshold: 6000,
		ReefEvery:     180,
		ReefSize:      40,
		ReefWarning:   1750 * time.Millisecond,
		ReefLifespan:  6 * time.Second,

		FishThreshold: 8500,
		FishEvery:     120,
		FishSize:      15,

		TrailLength: 2,
		TrailEvery:  2,
	}
}

// LaneWidth is the width of one lane.
func (r *Rules) LaneWidth() float64 {
	return r.BoardW / float64(r.Lanes)
}

// PlayerStart is where the player spawns at the beginning of a run.
func (r *Rules) PlayerStart() Player {
	return Player{
		Pos: core.Vec{
			X: r.BoardW/2 - r.PlayerSize/2,
			Y: r.BoardH - r.PlayerSize - r.PlayerBottomGap,
		},
		Size: r.PlayerSize,
	}
}
