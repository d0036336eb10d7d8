package effects

import "github.com/brandonlouis96/brainrot-flappy/internal/config"

// ThemeConfig is a map's colour set. Purely presentational.
type ThemeConfig struct {
	Name       string
	SkyTop     RGB
	SkyBottom  RGB
	Ground     RGB
	GroundDirt RGB
	Pipe       [3]RGB // left-to-right body gradient
	PipeStroke RGB
	Neon       bool // glow pass on pipes and bullets
}

var (
	ThemeClassic = ThemeConfig{
		Name:       "CLASSIC",
		SkyTop:     Hex("#87CEEB"),
		SkyBottom:  Hex("#98FB98"),
		Ground:     Hex("#228B22"),
		GroundDirt: Hex("#8B4513"),
		Pipe:       [3]RGB{Hex("#2ECC71"), Hex("#27AE60"), Hex("#1E8449")},
		PipeStroke: Hex("#145A32"),
	}
	ThemeNeonNight = ThemeConfig{
		Name:       "NEON NIGHT",
		SkyTop:     Hex("#0a0a1a"),
		SkyBottom:  Hex("#1a0a2e"),
		Ground:     Hex("#ff00ff"),
		GroundDirt: Hex("#220022"),
		Pipe:       [3]RGB{Hex("#00ffff"), Hex("#ff00ff"), Hex("#0088ff")},
		PipeStroke: Hex("#ffffff"),
		Neon:       true,
	}
	ThemeOhio = ThemeConfig{
		Name:       "OHIO",
		SkyTop:     Hex("#ff4444"),
		SkyBottom:  Hex("#ff8800"),
		Ground:     Hex("#444444"),
		GroundDirt: Hex("#222222"),
		Pipe:       [3]RGB{Hex("#8B0000"), Hex("#660000"), Hex("#440000")},
		PipeStroke: Hex("#ffff00"),
	}
)

// AllThemes is the cycle order on the start and game-over screens.
var AllThemes = []ThemeConfig{ThemeClassic, ThemeNeonNight, ThemeOhio}

// ThemeByName resolves a configured map name; unknown names get CLASSIC.
func ThemeByName(name string) int {
	if i := config.ThemeIndex(name); i >= 0 && i < len(AllThemes) {
		return i
	}
	return 0
}

// CycleTheme steps i by delta with wraparound.
func CycleTheme(i, delta int) int {
	n := len(AllThemes)
	return ((i+delta)%n + n) % n
}
