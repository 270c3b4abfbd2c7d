package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Box is an axis aligned cube in group space.
type Box struct {
	Center mgl32.Vec3
	Size   float32
}

// Corner order: bit 0 selects +X, bit 1 +Y, bit 2 +Z.
var boxFaces = [6][4]int{
	{0, 2, 6, 4}, // -X
	{1, 5, 7, 3}, // +X
	{0, 4, 5, 1}, // -Y
	{2, 3, 7, 6}, // +Y
	{0, 1, 3, 2}, // -Z
	{4, 6, 7, 5}, // +Z
}

var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Corners returns the eight corners of b.
func (b Box) Corners() [8]mgl32.Vec3 {
	h := b.Size / 2
	var out [8]mgl32.Vec3
	for i := range out {
		offset := mgl32.Vec3{-h, -h, -h}
		if i&1 != 0 {
			offset[0] = h
		}
		if i&2 != 0 {
			offset[1] = h
		}
		if i&4 != 0 {
			offset[2] = h
		}
		out[i] = b.Center.Add(offset)
	}
	return out
}

// Quad is a projected face. Side is 0..5 for -X, +X, -Y, +Y, -Z, +Z.
type Quad struct {
	Points [4]mgl32.Vec2
	Depth  float32
	Side   int
}

// Segment is a projected edge.
type Segment struct {
	From, To mgl32.Vec2
}

// ProjectedBox is a Box in screen space.
type ProjectedBox struct {
	Faces []Quad
	Edges []Segment
	Depth float32
}

// ProjectBox projects every face and edge of b. Faces or edges with a
// corner behind the camera are left out.
func (pr *Projector) ProjectBox(b Box) ProjectedBox {
	var (
		points  [8]mgl32.Vec2
		depths  [8]float32
		visible [8]bool
	)
	for i, corner := range b.Corners() {
		points[i], depths[i], visible[i] = pr.Project(corner)
	}

	out := ProjectedBox{}
	_, out.Depth, _ = pr.Project(b.Center)

	for side, face := range boxFaces {
		q := Quad{Side: side}
		ok := true
		for j, idx := range face {
			ok = ok && visible[idx]
			q.Points[j] = points[idx]
			q.Depth += depths[idx] / 4
		}
		if ok {
			out.Faces = append(out.Faces, q)
		}
	}

	for _, edge := range boxEdges {
		if visible[edge[0]] && visible[edge[1]] {
			out.Edges = append(out.Edges, Segment{From: points[edge[0]], To: points[edge[1]]})
		}
	}

	return out
}

// Contains reports whether p lies inside the convex quad q. Degenerate
// (edge-on) quads contain nothing.
func (q Quad) Contains(p mgl32.Vec2) bool {
	const eps = 1e-4

	var sign float32
	for i := range q.Points {
		a := q.Points[i]
		b := q.Points[(i+1)%len(q.Points)]
		cross := cross2(b.Sub(a), p.Sub(a))
		if cross > -eps && cross < eps {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (sign > 0) != (cross > 0) {
			return false
		}
	}
	return sign != 0 && q.area() > eps
}

func (q Quad) area() float32 {
	var twice float32
	for i := range q.Points {
		twice += cross2(q.Points[i], q.Points[(i+1)%len(q.Points)])
	}
	if twice < 0 {
		twice = -twice
	}
	return twice / 2
}

func cross2(a, b mgl32.Vec2) float32 {
	return a[0]*b[1] - a[1]*b[0]
}
