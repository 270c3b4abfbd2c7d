// Package render is the ebiten front end: it turns keyboard, mouse and
// touch input into game actions and paints the cube group.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tileswap/config"
	"github.com/plus3/tileswap/scene"
)

// Screen is the target image for the draw pass and the window's logical
// size, set from Layout.
type Screen struct {
	Image         *ebiten.Image
	Width, Height int
}

func (s *Screen) viewport() scene.Viewport {
	return scene.Viewport{Width: float32(s.Width), Height: float32(s.Height)}
}

// View holds the camera and the input tuning.
type View struct {
	Camera          scene.Camera
	Background      color.RGBA
	RotateStep      float32
	DragSensitivity float32
}

// ViewFromConfig builds a View from validated settings.
func ViewFromConfig(cfg *config.Config) View {
	cam := scene.DefaultCamera()
	cam.Distance = cfg.Camera.Distance
	cam.FOV = cfg.Camera.FOV

	return View{
		Camera:          cam,
		Background:      cfg.BackgroundColor(),
		RotateStep:      cfg.Controls.RotateStep,
		DragSensitivity: cfg.Controls.DragSensitivity,
	}
}

// Pointer tracks the mouse and the first touch between frames.
type Pointer struct {
	mouse    dragTracker
	touch    dragTracker
	touchID  ebiten.TouchID
	touching bool
}
