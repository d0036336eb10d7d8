package audio

import (
	"io"
	"math"
	"sync/atomic"
)

// SoundKind identifies a procedural sound effect.
type SoundKind int

const (
	SoundFlap SoundKind = iota
	SoundScore
	SoundDeath
	SoundChaos
	SoundMilestone
	SoundShoot
	SoundKill
	SoundModeEnter
	SoundMenuSelect
)

func (k SoundKind) String() string {
	switch k {
	case SoundFlap:
		return "flap"
	case SoundScore:
		return "score"
	case SoundDeath:
		return "death"
	case SoundChaos:
		return "chaos"
	case SoundMilestone:
		return "milestone"
	case SoundShoot:
		return "shoot"
	case SoundKill:
		return "kill"
	case SoundModeEnter:
		return "mode-enter"
	case SoundMenuSelect:
		return "menu-select"
	}
	return "unknown"
}

var chaosVariantCounter uint64

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	putStereoF32LR(buf, i, sample, sample)
}

func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}

// softSat is a gentle saturator that never exceeds [-1,1].
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns the envelope at normalized progress [0,1]. attack, decay and
// release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*8) }

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundFlap:
		return genFlap()
	case SoundScore:
		return genScore()
	case SoundDeath:
		return genDeath()
	case SoundChaos:
		return genChaos(atomic.AddUint64(&chaosVariantCounter, 1))
	case SoundMilestone:
		return genMilestone()
	case SoundShoot:
		return genShoot()
	case SoundKill:
		return genKill()
	case SoundModeEnter:
		return genModeEnter()
	case SoundMenuSelect:
		return genMenuSelect()
	}
	return nil
}

// genFlap: short upward chirp, 400 -> 600 Hz.
func genFlap() []byte {
	n := int(0.10 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 4.5)
		freq := 400 * math.Pow(1.5, p)
		s := fm(t, freq, 1.0, 0.8*env) * env * 0.34
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genScore: square-ish C-E-G arpeggio.
func genScore() []byte {
	notes := []float64{523.25, 659.25, 783.99}
	step := int(0.1 * SampleRate)
	n := step * len(notes)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		freq := notes[i/step]
		env := math.Exp(-p * 4)
		s := math.Tanh(math.Sin(2*math.Pi*freq*t)*3) * env * 0.22
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genDeath: sawtooth sweep 400 -> 100 Hz with a falling minor tail.
func genDeath() []byte {
	n := int(0.75 * SampleRate)
	buf := makeBuf(n)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		freq := 400 * math.Pow(0.25, math.Min(p/0.66, 1))
		phase += freq / SampleRate
		saw := 2*(phase-math.Floor(phase)) - 1
		env := adsr(p, 0.01, 0.3, 0.35, 0.4)
		s := saw*env*0.3 + math.Sin(2*math.Pi*freq*0.5*t)*env*0.15
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genChaos picks a random waveform and slides between two random notes.
func genChaos(variant uint64) []byte {
	freqs := []float64{262, 330, 392, 523, 659, 784}
	seed := variant*0x9E3779B97F4A7C15 + 1
	pick := func(n int) int {
		v := (lcg(&seed) + 1) / 2
		return int(v*float64(n)) % n
	}
	wave := pick(4)
	from := freqs[pick(len(freqs))]
	to := freqs[pick(len(freqs))]

	n := int(0.15 * SampleRate)
	buf := makeBuf(n)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := from * math.Pow(to/from, p)
		phase += freq / SampleRate
		ph := phase - math.Floor(phase)
		var s float64
		switch wave {
		case 0:
			s = math.Sin(2 * math.Pi * ph)
		case 1:
			s = math.Tanh(math.Sin(2*math.Pi*ph) * 4)
		case 2:
			s = 2*ph - 1
		default:
			s = 1 - 4*math.Abs(ph-0.5)
		}
		env := math.Exp(-p * 5)
		putStereoF32(buf, i, softSat(s*env*0.2))
	}
	return buf
}

// genMilestone: two-syllable "six-seven" bell call over a sub drop.
func genMilestone() []byte {
	notes := []struct{ freq, onset, dur float64 }{
		{587.33, 0.00, 0.22}, // D5
		{659.25, 0.24, 0.34}, // E5
	}
	total := int(0.62 * SampleRate)
	mix := make([]float64, total)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		dur := int(note.dur * SampleRate)
		for j := 0; j < dur && start+j < total; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.01, 0.4, 0.3, 0.3)
			vib := 1 + 0.012*math.Sin(2*math.Pi*6*t)
			s := fm(t, note.freq*vib, 2.0, 3.0*env) * env * 0.34
			s += math.Sin(2*math.Pi*note.freq*0.25*t) * env * 0.12
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genShoot: laser zap, fast downward sweep with a noisy transient.
func genShoot() []byte {
	n := int(0.08 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(4242)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		freq := 1800 * math.Pow(0.2, p)
		env := math.Exp(-p * 6)
		s := fm(t, freq, 0.5, 2.0*env) * env * 0.22
		if p < 0.08 {
			s += lcg(&seed) * (1 - p/0.08) * 0.2
		}
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genKill: pitched pop plus filtered noise puff.
func genKill() []byte {
	n := int(0.18 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(31337)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		lp = lp*0.8 + lcg(&seed)*0.2
		pop := fm(t, 220+600*math.Exp(-p*12), 1.5, 2.5) * math.Exp(-p*14) * 0.4
		s := pop + lp*math.Exp(-p*6)*0.5
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genModeEnter: rising bell staircase.
func genModeEnter() []byte {
	notes := []float64{440, 554.37, 659.25, 880, 1108.73}
	noteStep := int(0.09 * SampleRate)
	total := len(notes)*noteStep + int(0.25*SampleRate)
	mix := make([]float64, total)
	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.65, 0.04, 0.28)
			mix[start+j] += fm(t, freq, 3.5, 5.5*env) * env * 0.26
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genMenuSelect: crisp click with a brief high tone.
func genMenuSelect() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		putStereoF32(buf, i, softSat(fm(t, freq, 1.0, 0.6)*env*0.38))
	}
	return buf
}
