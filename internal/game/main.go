package game

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/brandonlouis96/brainrot-flappy/internal/audio"
	"github.com/brandonlouis96/brainrot-flappy/internal/config"
	"github.com/brandonlouis96/brainrot-flappy/internal/effects"
	"github.com/brandonlouis96/brainrot-flappy/internal/sim"
)

// RunDesktop opens the window and runs until it is closed or Escape is
// pressed. It returns the map theme selected when the window closed.
// Startup failures panic.
func RunDesktop(cfg config.Settings, seed uint64, snd *audio.System) string {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	// Renderer.
	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()
	if err := rend.InitFont(); err != nil {
		panic(fmt.Errorf("font: %w", err))
	}

	// Game session.
	bus := sim.NewEventBus()
	session := sim.NewSession(sim.NewRand(seed), bus)
	session.SetPlayfield(sim.Playfield{W: cfg.Playfield.Width, H: cfg.Playfield.Height})
	session.Tick(0) // apply geometry before the first frame

	clock := sim.NewManualClock(0)
	loop := sim.NewLoop(clock, session, nil)
	step := time.Duration(StepSeconds * float64(time.Second))

	// Presentation.
	cam := Camera{Zoom: 1}
	particles := effects.NewParticleSystem(effects.MaxParticles, seed^0xBEAD)
	fx := effects.New(sim.NewRand(seed^0xF00D), &cam.Shake, particles)
	fx.SetField(session.Playfield())
	fx.Attach(bus)
	snd.Attach(bus)

	themeIdx := effects.ThemeByName(cfg.Theme)
	input := NewInput()

	var scene Scene
	var glowBuf, normBuf []float32
	acc := 0.0

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDT {
			dt = MaxFrameDT
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		if input.ActionPressed(window) {
			loop.Action()
		}
		if d := input.ThemeDelta(window); d != 0 && session.State() != sim.StatePlaying {
			themeIdx = effects.CycleTheme(themeIdx, d)
			snd.Play(audio.SoundMenuSelect)
		}

		// Fixed-rate simulation; rendering takes whatever is left.
		acc += dt
		for acc >= StepSeconds {
			clock.Advance(step)
			loop.Step()
			acc -= StepSeconds
		}

		fx.SetField(session.Playfield())
		fx.Update(dt)
		cam.FitPlayfield(session.Playfield(), fbW, fbH)
		cam.UpdateShake(dt, seed^uint64(now*1000))

		// Render with shake applied.
		renderCam := cam
		renderCam.X, renderCam.Y = cam.EffectivePos()

		theme := effects.AllThemes[themeIdx]
		BuildScene(&scene, session, theme, fx, now)

		rend.BeginFrame(fbW, fbH, effects.Palette.Black)
		rend.DrawShapes(scene.Back.Buf, renderCam, fbW, fbH)
		rend.DrawDiscs(scene.Discs, renderCam, fbW, fbH)

		// Particles: two passes (normal + glow).
		glowBuf, normBuf = particles.ParticleRenderData(glowBuf, normBuf)
		rend.DrawSprites(normBuf, renderCam, fbW, fbH, false)
		rend.DrawSprites(glowBuf, renderCam, fbW, fbH, true)
		rend.DrawGlowSprites(scene.Glow, renderCam, fbW, fbH)

		rend.DrawShapes(scene.Overlay.Buf, renderCam, fbW, fbH)

		RenderLabels(rend, scene.Labels, renderCam, fbW, fbH)
		// HUD uses stable camera (no shake).
		RenderHUD(rend, session, fx, theme, cam, fbW, fbH)

		window.SwapBuffers()
	}

	return effects.AllThemes[themeIdx].Name
}
