package audio

import (
	"math"
	"sync/atomic"
)

// musicReader is an endless procedural loop. Layers are added as the
// intensity (the chaos level, 1-3) climbs.
type musicReader struct {
	t         float64
	seed      uint64
	measure   int
	chordIdx  int
	intensity atomic.Int32
	shooter   atomic.Bool
}

var loopChords = [][]float64{
	{146.8, 174.6, 220.0}, // Dm
	{116.5, 146.8, 174.6}, // Bb
	{130.8, 164.8, 196.0}, // C
	{110.0, 138.6, 164.8}, // A
}

const (
	loopTempo        = 2.2 // 132 BPM
	loopBeatsPerBar  = 2
	shooterTempoMult = 1.15
)

func newMusicReader(seed uint64) *musicReader {
	m := &musicReader{seed: seed}
	m.intensity.Store(1)
	return m
}

func (m *musicReader) Read(p []byte) (int, error) {
	samples := len(p) / 8
	if samples == 0 {
		return 0, nil
	}
	level := int(m.intensity.Load())
	tempo := loopTempo
	if m.shooter.Load() {
		tempo *= shooterTempoMult
	}
	for i := 0; i < samples; i++ {
		m.t += 1.0 / SampleRate
		beatLen := 1.0 / tempo
		trig := math.Mod(m.t, beatLen)
		beatPos := trig / beatLen
		beat := int(m.t * tempo)
		if beat/loopBeatsPerBar != m.measure {
			m.measure = beat / loopBeatsPerBar
			m.chordIdx = (m.chordIdx + 1) % len(loopChords)
		}
		chord := loopChords[m.chordIdx]

		s := m.mix(chord, tempo, trig, beatPos, beat, level)
		duck := 1.0 - 0.16*math.Exp(-trig*20.0)
		s = softSat(s * duck)
		pan := 0.08 * math.Sin(2*math.Pi*0.11*m.t)
		putStereoF32LR(p, i, softSat(s*(1-pan)), softSat(s*(1+pan)))
	}
	return samples * 8, nil
}

func (m *musicReader) mix(chord []float64, tempo, trig, beatPos float64, beat, level int) float64 {
	s := kick(trig) * 0.9
	if beat%2 == 1 {
		s += snare(trig, &m.seed) * 0.8
	}
	bassEnv := math.Exp(-trig * 9)
	s += fmBass(m.t, chord[0]/2, bassEnv) * 0.8

	if level >= 2 {
		hhTrig := math.Mod(m.t*tempo*2, 1.0) / (tempo * 2)
		s += hihat(hhTrig, false, &m.seed) * 1.1
		arpIdx := int(m.t*tempo*2) % len(chord)
		arpEnv := adsr(math.Mod(m.t*tempo*2, 1.0), 0.005, 0.3, 0.1, 0.15)
		s += fmArp(m.t, chord[arpIdx]*2, arpEnv) * 0.6
	}
	if level >= 3 {
		hhTrig := math.Mod(m.t*tempo*4, 1.0) / (tempo * 4)
		s += hihat(hhTrig, beat%4 == 3, &m.seed) * 0.8
		leadIdx := int(m.t*tempo) % 4
		steps := [4]float64{1.0, 1.5, 1.25, 2.0}
		leadEnv := adsr(beatPos, 0.005, 0.35, 0.15, 0.15)
		s += fmLead(m.t, chord[1]*2*steps[leadIdx], leadEnv) * 0.5
	}
	return s
}

// kick is a pitch-swept sine with a click transient; trig is seconds
// since the hit.
func kick(trig float64) float64 {
	if trig > 0.25 {
		return 0
	}
	phase := 2 * math.Pi * 185 / 12.5 * (1 - math.Exp(-trig*12.5))
	body := math.Sin(phase) * math.Exp(-trig*18.0) * 0.80
	click := math.Sin(2*math.Pi*2100*trig) * math.Exp(-trig*250.0) * 0.24
	return softSat(body + click)
}

func snare(trig float64, seed *uint64) float64 {
	if trig > 0.2 {
		return 0
	}
	env := math.Exp(-trig * 26.0)
	body := math.Sin(2*math.Pi*188*trig) * 0.24 * env
	noise := (lcg(seed) - lcg(seed)*0.55) * env * 0.6
	return softSat(body + noise)
}

func hihat(trig float64, open bool, seed *uint64) float64 {
	decay, limit := 42.0, 0.06
	if open {
		decay, limit = 15.0, 0.18
	}
	if trig > limit {
		return 0
	}
	metal := math.Sin(2*math.Pi*7300*trig) + math.Sin(2*math.Pi*9200*trig)*0.6
	return softSat((lcg(seed)*0.8 + metal*0.2) * math.Exp(-trig*decay) * 0.07)
}

func fmBass(t, freq, env float64) float64 {
	b := fm(t, freq, 0.5, 1.25*env) * env * 0.48
	b += math.Sin(2*math.Pi*freq*t) * env * 0.26
	return softSat(b)
}

func fmArp(t, freq, env float64) float64 {
	s := fm(t, freq, 2.0, 3.2*env) * env * 0.20
	s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
	return softSat(s)
}

func fmLead(t, freq, env float64) float64 {
	vib := 1 + 0.01*math.Sin(2*math.Pi*5.4*t)
	s := fm(t, freq*vib, 1.55, 2.7*env) * env * 0.26
	return softSat(s)
}
