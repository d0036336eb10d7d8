package effects

// Particles.
const MaxParticles = 3000

// Screen shake (world pixels, seconds).
const (
	ShakeSoft        = 5.0
	ShakeSoftTime    = 0.3
	ShakeIntense     = 12.0
	ShakeIntenseTime = 0.5
)

// Popups and overlays.
const (
	FlashTime         = 0.3
	PopupLife         = 1.0
	PopupStagger      = 0.1
	BannerTime        = 1.6
	ChaosTintChance   = 0.05
	ExplosionMinCount = 5
	ExplosionMaxCount = 15
)
