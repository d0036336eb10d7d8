package sim

import "time"

// Default playfield (logical pixels). Frontends may supply another size
// between sessions; every spawn range and boundary is derived from it.
const (
	FieldWidth   = 400
	FieldHeight  = 600
	GroundHeight = 20
)

// Player body.
const (
	PlayerX      = 80.0
	PlayerStartY = 300.0
	PlayerWidth  = 40.0
	PlayerHeight = 30.0
	Gravity      = 0.5
	FlapImpulse  = -9.0

	RotationPerVelocity = 3.0
	RotationMin         = -30.0
	RotationMax         = 90.0
)

// Pipes.
const (
	PipeWidth     = 60.0
	PipeGapHeight = 150.0
	PipeGapMargin = 100.0

	PipeBaseSpeed = 3.0
	PipeSpeedAcc  = 0.05 // per point
	PipeSpeedCap  = 6.0

	PipeBaseInterval = 1800 * time.Millisecond
	PipeIntervalAcc  = 0.02 // per point

	PipePassScore = 1
)

// MinSpawnInterval is one display frame; spawn gates never go below it.
const MinSpawnInterval = 16 * time.Millisecond

// Shooter mode.
const (
	ShooterThreshold = 10

	HitboxRadius = 15.0

	BulletSpeed     = 10.0 // upward, per tick
	BulletHitRadius = 4.0

	EnemyMinSize = 14.0
	EnemyMaxSize = 22.0
	KillBonus    = 3

	EnemyBaseInterval = 1400 * time.Millisecond
	EnemyIntervalStep = 60 * time.Millisecond // per point above entry
	EnemyMinInterval  = 350 * time.Millisecond

	DriftMinVX   = 0.8
	DriftMaxVX   = 2.0
	DriftMinVY   = 1.0
	DriftMaxVY   = 2.0
	TargetSpeed  = 4.0
	DiveMaxVX    = 1.5
	DiveMinVY    = 3.0
	DiveMaxVY    = 5.0
	WeightDrift  = 0.5
	WeightTarget = 0.3 // diving-random takes the remainder
)

// Chaos tiers and the recurring "6-7" milestone.
const (
	ChaosTier2Score   = 5
	ChaosTier3Score   = 10
	MilestoneStep     = 3
	FirstMilestone    = 3
	MaxChaosLevel     = 3
	DefaultChaosLevel = 1
)
