package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// TieEpsilon is the distance below which two hits count as equally near.
// Among all hits within TieEpsilon of the nearest one, the primitive added to
// the scene first wins.
const TieEpsilon = 1e-9

type candidate struct {
	index int
	hit   *material.HitRecord
}

// FindNearest tests the ray against every primitive and returns the closest
// hit in [tMin, tMax]. ShapeIndex on the result is the primitive's insertion index.
func FindNearest(scn *scene.Scene, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Hits within TieEpsilon of the nearest so far, in insertion order
	var group []candidate
	nearest := tMax

	for i, shape := range scn.Shapes() {
		hit, isHit := shape.Hit(ray, tMin, math.Min(nearest+TieEpsilon, tMax))
		if !isHit {
			continue
		}
		if hit.T < nearest {
			nearest = hit.T
			kept := group[:0]
			for _, c := range group {
				if c.hit.T <= nearest+TieEpsilon {
					kept = append(kept, c)
				}
			}
			group = kept
		}
		group = append(group, candidate{index: i, hit: hit})
	}

	if len(group) == 0 {
		return nil, false
	}
	best := group[0]
	best.hit.ShapeIndex = best.index
	return best.hit, true
}

// Occluded reports whether any primitive blocks the ray within [tMin, tMax].
// It stops at the first blocker found.
func Occluded(scn *scene.Scene, ray core.Ray, tMin, tMax float64) bool {
	for _, shape := range scn.Shapes() {
		if _, isHit := shape.Hit(ray, tMin, tMax); isHit {
			return true
		}
	}
	return false
}
