package scene

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Pick returns the index of the box whose visible face is nearest to the
// camera under point, or -1 when point misses every box.
func Pick(boxes []ProjectedBox, point mgl32.Vec2) int {
	best := -1
	var bestDepth float32
	for i, box := range boxes {
		for _, face := range box.Faces {
			if !face.Contains(point) {
				continue
			}
			if best == -1 || face.Depth < bestDepth {
				best = i
				bestDepth = face.Depth
			}
		}
	}
	return best
}

// FaceRef identifies one face of one box in a draw list.
type FaceRef struct {
	Box  int
	Face int
}

// PaintOrder returns every face sorted far to near, so that drawing them in
// order hides occluded faces.
func PaintOrder(boxes []ProjectedBox) []FaceRef {
	var refs []FaceRef
	for i, box := range boxes {
		for j := range box.Faces {
			refs = append(refs, FaceRef{Box: i, Face: j})
		}
	}

	slices.SortStableFunc(refs, func(a, b FaceRef) int {
		return cmp.Compare(boxes[b.Box].Faces[b.Face].Depth, boxes[a.Box].Faces[a.Face].Depth)
	})
	return refs
}
