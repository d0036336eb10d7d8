package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/brandonlouis96/brainrot-flappy/internal/effects"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// cameraUniforms are the three uniforms every world-space program shares.
type cameraUniforms struct {
	camera, zoom, resolution int32
}

func lookupCamera(prog uint32) cameraUniforms {
	return cameraUniforms{
		camera:     gl.GetUniformLocation(prog, gl.Str("uCamera\x00")),
		zoom:       gl.GetUniformLocation(prog, gl.Str("uZoom\x00")),
		resolution: gl.GetUniformLocation(prog, gl.Str("uResolution\x00")),
	}
}

func (u cameraUniforms) set(cam Camera, fbW, fbH int) {
	gl.Uniform2f(u.camera, float32(cam.X), float32(cam.Y))
	gl.Uniform1f(u.zoom, float32(cam.Zoom))
	gl.Uniform2f(u.resolution, float32(fbW), float32(fbH))
}

type Renderer struct {
	// Shape program: world-space coloured triangles.
	shapeProg uint32
	shapeVAO  uint32
	shapeVBO  uint32
	shapeU    cameraUniforms

	// Point sprite programs share one VAO.
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32
	spriteU    cameraUniforms

	discProg uint32
	discU    cameraUniforms

	// Glow (radial light) program, additive blend only.
	glowProg uint32
	glowU    cameraUniforms

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	shapeProg, err := linkProgram(shapeVertSrc, shapeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("shape program: %w", err)
	}
	spriteProg, err := linkProgram(particleVertSrc, particleFragSrc)
	if err != nil {
		gl.DeleteProgram(shapeProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	discProg, err := linkProgram(particleVertSrc, discFragSrc)
	if err != nil {
		gl.DeleteProgram(shapeProg)
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("disc program: %w", err)
	}
	glowProg, err := linkProgram(particleVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(shapeProg)
		gl.DeleteProgram(spriteProg)
		gl.DeleteProgram(discProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		shapeProg:  shapeProg,
		spriteProg: spriteProg,
		discProg:   discProg,
		glowProg:   glowProg,
	}

	// Shape VAO/VBO: streaming triangles, 6 floats per vertex (x, y, r, g, b, a).
	var tVAO, tVBO uint32
	gl.GenVertexArrays(1, &tVAO)
	gl.GenBuffers(1, &tVBO)
	gl.BindVertexArray(tVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, tVBO)

	tStride := int32(6 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxRectRender*6*int(tStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, tStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, tStride, glOffset(2*4))
	r.shapeVAO = tVAO
	r.shapeVBO = tVBO

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 8 floats (x, y, size, r, g, b, a, rotation).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxParticleRender*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(shapeProg)
	r.shapeU = lookupCamera(shapeProg)
	gl.UseProgram(spriteProg)
	r.spriteU = lookupCamera(spriteProg)
	gl.UseProgram(discProg)
	r.discU = lookupCamera(discProg)
	gl.UseProgram(glowProg)
	r.glowU = lookupCamera(glowProg)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.shapeVBO, r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeVAO, r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeProg, r.spriteProg, r.discProg, r.glowProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears to the letterbox colour.
func (r *Renderer) BeginFrame(fbW, fbH int, clear effects.RGB) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := clear.F32()
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.ActiveTexture(gl.TEXTURE0)
}
