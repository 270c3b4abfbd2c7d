package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/tileswap/game"
	"github.com/plus3/tileswap/puzzle"
	"github.com/plus3/tileswap/scene"
)

func newProjector(view *View, screen *Screen, orbit *game.Orbit) *scene.Projector {
	return scene.NewProjector(view.Camera, screen.viewport(), orbit.Pitch, orbit.Yaw)
}

func cubeBox(t *game.Transform) scene.Box {
	return scene.Box{Center: t.Position, Size: t.Size}
}

// pickCell returns the cell of the cube under point.
func pickCell(pr *scene.Projector, cells []puzzle.Coord, transforms []*game.Transform, point mgl32.Vec2) (puzzle.Coord, bool) {
	boxes := make([]scene.ProjectedBox, len(transforms))
	for i, t := range transforms {
		boxes[i] = pr.ProjectBox(cubeBox(t))
	}

	hit := scene.Pick(boxes, point)
	if hit < 0 {
		return puzzle.Coord{}, false
	}
	return cells[hit], true
}
