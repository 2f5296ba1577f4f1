package display

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/spaceshooter/internal/postfx"
)

// Pass draws the uploaded frame onto the screen.
type Pass interface {
	Draw(dst, src *ebiten.Image, elapsed time.Duration)
}

// ShaderPass runs the post-processing shader over the frame.
type ShaderPass struct {
	shader *ebiten.Shader
}

// NewShaderPass compiles the post-processing shader.
func NewShaderPass() (*ShaderPass, error) {
	shader, err := ebiten.NewShader(postfx.ShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile post-processing shader: %w", err)
	}
	return &ShaderPass{shader: shader}, nil
}

// Draw implements Pass.
func (p *ShaderPass) Draw(dst, src *ebiten.Image, elapsed time.Duration) {
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		postfx.TimeUniform: float32(elapsed.Seconds()),
	}
	op.Images[0] = src
	b := src.Bounds()
	dst.DrawRectShader(b.Dx(), b.Dy(), p.shader, op)
}

// Passthrough copies the frame unchanged.
type Passthrough struct{}

// Draw implements Pass.
func (Passthrough) Draw(dst, src *ebiten.Image, _ time.Duration) {
	dst.DrawImage(src, nil)
}
