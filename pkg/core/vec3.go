package core

import "math"

// DegenerateEpsilon is the smallest length a vector may have and still be normalized
const DegenerateEpsilon = 1e-12

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Normalize returns a unit vector in the same direction.
// Vectors shorter than DegenerateEpsilon, or with infinite or NaN components,
// have no usable direction and yield a *DegenerateVectorError.
func (v Vec3) Normalize() (Vec3, error) {
	// Scale by the largest component so squaring cannot overflow or underflow
	scale := math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
	if !(scale > 0) || math.IsInf(scale, 0) {
		return Vec3{}, &DegenerateVectorError{Vector: v}
	}
	scaled := Vec3{v.X / scale, v.Y / scale, v.Z / scale}
	scaledLength := scaled.Length()
	if length := scale * scaledLength; !(length >= DegenerateEpsilon) || math.IsInf(length, 0) {
		return Vec3{}, &DegenerateVectorError{Vector: v}
	}
	return Vec3{scaled.X / scaledLength, scaled.Y / scaledLength, scaled.Z / scaledLength}, nil
}

// Reflect mirrors the vector about the given unit normal
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// Refract bends a unit incident vector through a surface with the given unit normal.
// eta is the ratio of refractive indices (incident over transmitted) and the normal
// must face against the incident vector. Returns false on total internal reflection.
func (v Vec3) Refract(normal Vec3, eta float64) (Vec3, bool) {
	cosI := -v.Dot(normal)
	sin2T := eta * eta * (1 - cosI*cosI)
	if sin2T > 1 {
		return Vec3{}, false
	}
	cosT := math.Sqrt(1 - sin2T)
	return v.Multiply(eta).Add(normal.Multiply(eta*cosI - cosT)), true
}

// IsNearZero reports whether every component is smaller than eps in magnitude
func (v Vec3) IsNearZero(eps float64) bool {
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}
