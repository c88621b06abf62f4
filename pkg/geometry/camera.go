package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera is looking at
	Up     core.Vec3 // Up direction (usually 0,1,0)
	VFov   float64   // Vertical field of view in degrees
}

// DefaultCameraConfig looks down -Z from the origin with a 45 degree field of view
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   45.0,
	}
}

// Camera generates primary rays. It holds no mutable state, so one camera can
// be shared by every render worker.
type Camera struct {
	config     CameraConfig
	u, v, w    core.Vec3 // Orthonormal basis: right, up, backward
	halfHeight float64   // Half the viewport height at unit distance
}

// NewCamera validates the configuration and precomputes the camera basis
func NewCamera(config CameraConfig) (*Camera, error) {
	if !(config.VFov > 0 && config.VFov < 180) {
		return nil, core.NewConfigError("camera.vfov", "must be between 0 and 180 degrees", nil)
	}

	w, err := config.Center.Subtract(config.LookAt).Normalize()
	if err != nil {
		return nil, core.NewConfigError("camera.lookAt", "look direction has zero length", err)
	}
	u, err := config.Up.Cross(w).Normalize()
	if err != nil {
		return nil, core.NewConfigError("camera.up", "up vector is zero or parallel to the look direction", err)
	}
	v := w.Cross(u)

	theta := config.VFov * math.Pi / 180.0
	return &Camera{
		config:     config,
		u:          u,
		v:          v,
		w:          w,
		halfHeight: math.Tan(theta / 2),
	}, nil
}

// GetRay returns the primary ray through the center of pixel (i, j).
// Pixel (0, 0) is the top-left corner of the image.
func (c *Camera) GetRay(i, j, width, height int) core.Ray {
	aspectRatio := float64(width) / float64(height)
	halfWidth := aspectRatio * c.halfHeight

	// Normalized device coordinates in [-1, 1], y pointing up
	ndcX := 2*(float64(i)+0.5)/float64(width) - 1
	ndcY := 1 - 2*(float64(j)+0.5)/float64(height)

	direction := c.w.Negate().
		Add(c.u.Multiply(ndcX * halfWidth)).
		Add(c.v.Multiply(ndcY * c.halfHeight))

	// The -w component keeps the length at least 1
	return core.Ray{
		Origin:    c.config.Center,
		Direction: direction.Multiply(1 / direction.Length()),
		TMin:      0,
		TMax:      math.Inf(1),
	}
}

// GetCameraForward returns the unit viewing direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}
