package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig describes a camera in the terms a scene author thinks in
type CameraConfig struct {
	LookFrom    core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera looks at
	Up          core.Vec3 // Up direction, usually (0,1,0)
	VFov        float64   // Vertical field of view in degrees
	AspectRatio float64   // Width / height
	ImageWidth  int       // Output width in pixels; height follows from AspectRatio
	Aperture    float64   // Lens diameter, 0 for a pinhole camera
	FocusDist   float64   // Distance to the plane in perfect focus
	OpenTime    float64   // Shutter open time
	CloseTime   float64   // Shutter close time
}

// DefaultCameraConfig returns a 16:9 pinhole camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 16.0 / 9.0,
		ImageWidth:  400,
		Aperture:    0,
		FocusDist:   1,
		OpenTime:    0,
		CloseTime:   1,
	}
}

// Camera generates rays for rendering. It is immutable once built.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	openTime        float64
	closeTime       float64
	width, height   int
}

// NewCamera builds a camera with an orthonormal basis and a viewport scaled to the focus distance
func NewCamera(config CameraConfig) *Camera {
	theta := core.DegreesToRadians(config.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(config.FocusDist * viewportWidth)
	vertical := v.Multiply(config.FocusDist * viewportHeight)
	lowerLeftCorner := config.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDist))

	return &Camera{
		origin:          config.LookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		openTime:        config.OpenTime,
		closeTime:       config.CloseTime,
		width:           config.ImageWidth,
		height:          int(float64(config.ImageWidth) / config.AspectRatio),
	}
}

// GetRay generates a ray for viewport coordinates (s, t) where 0 <= s,t <= 1 and
// (0,0) is the lower left corner. The origin is jittered across the lens and the
// time across the shutter interval.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	origin := c.origin.Add(offset)

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRayAtTime(origin, direction, core.RandomRange(random, c.openTime, c.closeTime))
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// Forward returns the unit direction the camera looks along
func (c *Camera) Forward() core.Vec3 { return c.w.Negate() }
