// Package audio synthesizes every sound procedurally and plays it through
// oto. It reacts to simulation events and never feeds anything back.
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/brandonlouis96/brainrot-flappy/internal/sim"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// maxChaosVoices keeps stacked chaos bursts from clipping.
const maxChaosVoices = 3

// System owns the oto context and the looping music player.
type System struct {
	ctx   *oto.Context
	ready chan struct{}

	mu          sync.Mutex
	music       oto.Player
	musicReader *musicReader
	musicVolume float64
	sfxVolume   float64

	activeChaos int32
}

// New opens the audio device. Volumes are clamped to [0,1].
func New(musicVolume, sfxVolume float64) (*System, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &System{
		ctx:         ctx,
		ready:       ready,
		musicVolume: clampF(musicVolume, 0, 1),
		sfxVolume:   clampF(sfxVolume, 0, 1),
	}, nil
}

func (a *System) isReady() bool {
	if a == nil {
		return false
	}
	select {
	case <-a.ready:
		return true
	default:
		return false
	}
}

// Play fires a one-shot effect on its own player.
func (a *System) Play(kind SoundKind) {
	a.PlayWithGain(kind, 1.0)
}

func (a *System) PlayWithGain(kind SoundKind, gain float64) {
	if !a.isReady() || gain <= 0 {
		return
	}
	if kind == SoundChaos {
		if atomic.LoadInt32(&a.activeChaos) >= maxChaosVoices {
			return
		}
		atomic.AddInt32(&a.activeChaos, 1)
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		if kind == SoundChaos {
			atomic.AddInt32(&a.activeChaos, -1)
		}
		return
	}
	a.mu.Lock()
	vol := a.sfxVolume * clampF(gain, 0, 1)
	a.mu.Unlock()
	go func() {
		if kind == SoundChaos {
			defer atomic.AddInt32(&a.activeChaos, -1)
		}
		player := a.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(vol)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// StartMusic resumes the loop, creating it on first use.
func (a *System) StartMusic() {
	if !a.isReady() {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.music == nil {
		a.musicReader = newMusicReader(uint64(time.Now().UnixNano()))
		a.music = a.ctx.NewPlayer(a.musicReader)
	}
	a.music.SetVolume(a.musicVolume)
	a.music.Play()
}

func (a *System) PauseMusic() {
	if a == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.music != nil {
		a.music.Pause()
	}
}

func (a *System) SetMusicVolume(vol float64) {
	if a == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.musicVolume = clampF(vol, 0, 1)
	if a.music != nil {
		a.music.SetVolume(a.musicVolume)
	}
}

func (a *System) SetSFXVolume(vol float64) {
	if a == nil {
		return
	}
	a.mu.Lock()
	a.sfxVolume = clampF(vol, 0, 1)
	a.mu.Unlock()
}

// setIntensity selects how many music layers play (chaos level 1-3).
func (a *System) setIntensity(level int, shooter bool) {
	if a == nil {
		return
	}
	a.mu.Lock()
	r := a.musicReader
	a.mu.Unlock()
	if r == nil {
		return
	}
	r.intensity.Store(int32(level))
	r.shooter.Store(shooter)
}

func (a *System) Close() {
	if a == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.music != nil {
		a.music.Close()
		a.music = nil
		a.musicReader = nil
	}
}

// Attach subscribes the system to the session's events.
func (a *System) Attach(bus *sim.EventBus) {
	if a == nil {
		return
	}
	bus.SubscribeAll(func(e sim.Event) {
		for _, c := range cuesFor(e) {
			if c.music != musicNone {
				a.applyMusic(c.music, e)
				continue
			}
			a.PlayWithGain(c.sound, c.gain)
		}
	})
}

type musicCue int

const (
	musicNone musicCue = iota
	musicStart
	musicPause
	musicIntensity
)

type cue struct {
	sound SoundKind
	gain  float64
	music musicCue
}

func (a *System) applyMusic(m musicCue, e sim.Event) {
	switch m {
	case musicStart:
		a.StartMusic()
		a.setIntensity(e.Chaos, e.Mode == sim.ModeShooter)
	case musicPause:
		a.PauseMusic()
	case musicIntensity:
		a.setIntensity(e.Chaos, e.Mode == sim.ModeShooter)
	}
}

// cuesFor maps one simulation event to what should be heard.
func cuesFor(e sim.Event) []cue {
	switch e.Type {
	case sim.EventSessionStarted:
		return []cue{{music: musicStart}}
	case sim.EventFlap:
		return []cue{{sound: SoundFlap, gain: 1}}
	case sim.EventShot:
		return []cue{{sound: SoundShoot, gain: 0.8}}
	case sim.EventScoreChanged:
		cues := []cue{{sound: SoundScore, gain: 1}, {music: musicIntensity}}
		if e.Chaos >= sim.MaxChaosLevel {
			cues = append(cues, cue{sound: SoundChaos, gain: 0.7})
		}
		return cues
	case sim.EventMilestone:
		return []cue{{sound: SoundMilestone, gain: 1}}
	case sim.EventModeEntered:
		if e.Mode == sim.ModeShooter {
			return []cue{{sound: SoundModeEnter, gain: 1}, {music: musicIntensity}}
		}
	case sim.EventEntityDestroyed:
		if e.Kind == sim.KindEnemy && e.Killed {
			return []cue{{sound: SoundKill, gain: 1}}
		}
	case sim.EventGameOver:
		return []cue{{music: musicPause}, {sound: SoundDeath, gain: 1}, {sound: SoundChaos, gain: 0.6}}
	}
	return nil
}
