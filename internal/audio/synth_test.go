package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/brandonlouis96/brainrot-flappy/internal/sim"
)

func samplesOf(t *testing.T, buf []byte) []float32 {
	t.Helper()
	if len(buf)%8 != 0 {
		t.Fatalf("Buffer length %d is not whole stereo frames", len(buf))
	}
	out := make([]float32, len(buf)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return out
}

func TestEverySoundRendersInRange(t *testing.T) {
	for k := SoundFlap; k <= SoundMenuSelect; k++ {
		t.Run(k.String(), func(t *testing.T) {
			buf := generateSound(k)
			if len(buf) == 0 {
				t.Fatal("Expected samples")
			}
			for i, s := range samplesOf(t, buf) {
				if math.IsNaN(float64(s)) || s < -1 || s > 1 {
					t.Fatalf("Sample %d out of range: %v", i, s)
				}
			}
		})
	}
}

func TestUnknownSoundIsSilent(t *testing.T) {
	if generateSound(SoundKind(99)) != nil {
		t.Error("Expected no samples for unknown kind")
	}
}

func TestChaosVariantsDiffer(t *testing.T) {
	a := genChaos(1)
	differs := false
	for v := uint64(2); v < 10 && !differs; v++ {
		b := genChaos(v)
		if len(a) != len(b) {
			t.Fatal("Chaos variants must share a length")
		}
		for i := range a {
			if a[i] != b[i] {
				differs = true
				break
			}
		}
	}
	if !differs {
		t.Error("Expected chaos variants to vary")
	}
}

func TestSoundReaderDrainsThenEOF(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	p := make([]byte, 3)
	n, err := r.Read(p)
	if n != 3 || err != nil {
		t.Fatalf("First read: %d %v", n, err)
	}
	n, err = r.Read(p)
	if n != 2 || err != nil {
		t.Fatalf("Second read: %d %v", n, err)
	}
	if _, err = r.Read(p); err != io.EOF {
		t.Errorf("Expected EOF, got %v", err)
	}
}

func TestSoftSatBounded(t *testing.T) {
	for _, x := range []float64{-100, -1.5, -1, 0, 0.5, 1, 3, 1e9} {
		if y := softSat(x); y < -1 || y > 1 {
			t.Errorf("softSat(%v) = %v", x, y)
		}
	}
}

func TestADSRShape(t *testing.T) {
	if got := adsr(0, 0.1, 0.2, 0.5, 0.2); got != 0 {
		t.Errorf("Expected silence at start, got %v", got)
	}
	if got := adsr(0.1, 0.1, 0.2, 0.5, 0.2); got != 1 {
		t.Errorf("Expected peak after attack, got %v", got)
	}
	if got := adsr(0.5, 0.1, 0.2, 0.5, 0.2); got != 0.5 {
		t.Errorf("Expected sustain, got %v", got)
	}
	if got := adsr(1, 0.1, 0.2, 0.5, 0.2); math.Abs(got) > 1e-9 {
		t.Errorf("Expected silence at end, got %v", got)
	}
}

func TestMusicReaderFillsWholeFrames(t *testing.T) {
	for level := int32(1); level <= 3; level++ {
		m := newMusicReader(7)
		m.intensity.Store(level)
		p := make([]byte, 8*512+3)
		n, err := m.Read(p)
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if n != 8*512 {
			t.Errorf("Level %d: expected %d bytes, got %d", level, 8*512, n)
		}
		for i, s := range samplesOf(t, p[:n]) {
			if s < -1 || s > 1 {
				t.Fatalf("Level %d sample %d out of range: %v", level, i, s)
			}
		}
	}
}

func TestCuesForEvents(t *testing.T) {
	has := func(cues []cue, k SoundKind) bool {
		for _, c := range cues {
			if c.music == musicNone && c.sound == k {
				return true
			}
		}
		return false
	}
	hasMusic := func(cues []cue, m musicCue) bool {
		for _, c := range cues {
			if c.music == m {
				return true
			}
		}
		return false
	}

	if !has(cuesFor(sim.Event{Type: sim.EventFlap}), SoundFlap) {
		t.Error("Flap should chirp")
	}
	if !has(cuesFor(sim.Event{Type: sim.EventShot}), SoundShoot) {
		t.Error("Shot should zap")
	}
	calm := cuesFor(sim.Event{Type: sim.EventScoreChanged, Chaos: 1})
	if !has(calm, SoundScore) || has(calm, SoundChaos) {
		t.Error("Low chaos score should play only the score jingle")
	}
	if !has(cuesFor(sim.Event{Type: sim.EventScoreChanged, Chaos: 3}), SoundChaos) {
		t.Error("Max chaos score should add chaos noise")
	}
	if !has(cuesFor(sim.Event{Type: sim.EventMilestone}), SoundMilestone) {
		t.Error("Milestone should play its call")
	}
	if cuesFor(sim.Event{Type: sim.EventModeEntered, Mode: sim.ModeFlyer}) != nil {
		t.Error("Entering flyer mode is silent")
	}
	if !has(cuesFor(sim.Event{Type: sim.EventModeEntered, Mode: sim.ModeShooter}), SoundModeEnter) {
		t.Error("Entering shooter mode should sting")
	}
	if !has(cuesFor(sim.Event{Type: sim.EventEntityDestroyed, Kind: sim.KindEnemy, Killed: true}), SoundKill) {
		t.Error("Kills should pop")
	}
	if cuesFor(sim.Event{Type: sim.EventEntityDestroyed, Kind: sim.KindEnemy}) != nil {
		t.Error("Escaped enemies are silent")
	}
	over := cuesFor(sim.Event{Type: sim.EventGameOver})
	if !has(over, SoundDeath) || !hasMusic(over, musicPause) {
		t.Error("Game over should pause music and play the death sound")
	}
	if !hasMusic(cuesFor(sim.Event{Type: sim.EventSessionStarted}), musicStart) {
		t.Error("Session start should (re)start music")
	}
}

func TestNilSystemIsSafe(t *testing.T) {
	var a *System
	a.Play(SoundFlap)
	a.StartMusic()
	a.PauseMusic()
	a.SetMusicVolume(0.5)
	a.SetSFXVolume(0.5)
	a.Close()
}
