package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tileswap/ecs"
	"github.com/plus3/tileswap/game"
	"github.com/plus3/tileswap/puzzle"
	"github.com/plus3/tileswap/scene"
)

// Per side brightness, indexed like scene.Quad.Side.
var sideLight = [6]float32{0.8, 0.8, 0.6, 1.0, 0.7, 0.9}

const (
	ambient       = 60
	wireframeSize = 2
)

// RenderSystem paints the cube group onto Screen.Image. The highlighted
// cube is drawn as a wireframe over everything else.
type RenderSystem struct {
	View   ecs.Singleton[View]
	Screen ecs.Singleton[Screen]
	Orbit  ecs.Singleton[game.Orbit]

	Cubes ecs.Query[struct {
		*game.Transform
		*game.Shade
		Highlight *game.Highlighted `ecs:"optional"`
	}]

	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Screen.Get()
	if screen.Image == nil {
		return
	}
	view := s.View.Get()
	screen.Image.Fill(view.Background)

	pr := newProjector(view, screen, s.Orbit.Get())

	var (
		solid      []scene.ProjectedBox
		colors     []puzzle.Color
		wireframes []scene.ProjectedBox
		wireColors []puzzle.Color
	)
	for cube := range s.Cubes.Values() {
		pb := pr.ProjectBox(cubeBox(cube.Transform))
		if cube.Highlight != nil {
			wireframes = append(wireframes, pb)
			wireColors = append(wireColors, cube.Shade.Color)
			continue
		}
		solid = append(solid, pb)
		colors = append(colors, cube.Shade.Color)
	}

	for _, ref := range scene.PaintOrder(solid) {
		face := solid[ref.Box].Faces[ref.Face]
		s.fillQuad(screen.Image, face, faceColor(colors[ref.Box], face.Side))
	}

	for i, pb := range wireframes {
		clr := rgba(wireColors[i].RGB())
		for _, edge := range pb.Edges {
			vector.StrokeLine(screen.Image, edge.From[0], edge.From[1], edge.To[0], edge.To[1], wireframeSize, clr, true)
		}
	}
}

func (s *RenderSystem) fillQuad(dst *ebiten.Image, q scene.Quad, clr color.RGBA) {
	if s.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	var path vector.Path
	path.MoveTo(q.Points[0][0], q.Points[0][1])
	for _, p := range q.Points[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	for i := range s.vertices {
		v := &s.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(clr.R) / 0xff
		v.ColorG = float32(clr.G) / 0xff
		v.ColorB = float32(clr.B) / 0xff
		v.ColorA = 1
	}

	dst.DrawTriangles(s.vertices, s.indices, s.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// faceColor darkens c for the given side towards a grey ambient level, so
// flat colored cubes still read as solids.
func faceColor(c puzzle.Color, side int) color.RGBA {
	light := float32(1)
	if side >= 0 && side < len(sideLight) {
		light = sideLight[side]
	}

	rgb := c.RGB()
	var out [3]uint8
	for i, v := range rgb {
		out[i] = uint8(float32(v)*light + ambient*(1-light))
	}
	return rgba(out)
}

func rgba(rgb [3]uint8) color.RGBA {
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
}
