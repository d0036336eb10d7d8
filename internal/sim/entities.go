package sim

// Playfield is the simulation area in logical pixels. The floor strip of
// GroundHeight pixels sits at the bottom.
type Playfield struct {
	W, H float64
}

func DefaultPlayfield() Playfield {
	return Playfield{W: FieldWidth, H: FieldHeight}
}

func (p Playfield) valid() bool {
	return p.W >= PlayerWidth && p.H > 2*PipeGapMargin+PipeGapHeight
}

// FloorY is the top edge of the floor strip.
func (p Playfield) FloorY() float64 { return p.H - GroundHeight }

// Player is the single player body. X,Y is the top-left corner.
type Player struct {
	X, Y     float64
	W, H     float64
	Velocity float64
	Rotation float64 // degrees, derived from velocity while flying
	Grounded bool    // shooter stance
}

// Center returns the hitbox centre.
func (p Player) Center() (float64, float64) {
	return p.X + p.W/2, p.Y + p.H/2
}

func newPlayer() Player {
	return Player{X: PlayerX, Y: PlayerStartY, W: PlayerWidth, H: PlayerHeight}
}

// Pipe is a top+bottom obstacle pair separated by a gap.
type Pipe struct {
	X      float64
	GapY   float64 // top of the gap
	GapH   float64
	Scored bool

	// Decorative tag chosen at spawn.
	Meme     string
	ColorIdx int
}

func (p Pipe) GapBottom() float64 { return p.GapY + p.GapH }

type Behavior uint8

const (
	BehaviorDrift Behavior = iota
	BehaviorDiveTargeted
	BehaviorDiveRandom
)

func (b Behavior) String() string {
	switch b {
	case BehaviorDrift:
		return "drifting"
	case BehaviorDiveTargeted:
		return "diving-targeted"
	case BehaviorDiveRandom:
		return "diving-random"
	}
	return "unknown"
}

// EnemyBird is a descending target in shooter mode. X,Y is the centre.
type EnemyBird struct {
	ID       uint64
	X, Y     float64
	VX, VY   float64
	Size     float64
	Behavior Behavior
}

// Bullet travels straight up at BulletSpeed. X,Y is the centre.
type Bullet struct {
	X, Y float64
	VY   float64
	Age  int
}

// Memes is the decorative text pool pipes and popups draw from.
var Memes = []string{
	"6-7",
	"SKIBIDI",
	"SIGMA",
	"RIZZ",
	"GYATT",
	"FANUM TAX",
	"ONLY IN OHIO",
	"MEWING",
	"BUSSIN",
	"NO CAP",
	"SLAY",
	"SHEESH",
	"W",
	"L + RATIO",
	"GOATED",
	"FR FR",
	"ONG",
	"YEET",
}

// ChaosColorCount is the size of the presentation's chaos palette; pipes
// store an index into it.
const ChaosColorCount = 8
