package gravity

import "math"

// Vec3 is a fixed-size 3-vector. All arithmetic returns new values;
// nothing mutates in place.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// NormSquared avoids the sqrt when only the squared length is needed,
// e.g. in the force denominator.
func (v Vec3) NormSquared() float64 {
	return v.Dot(v)
}

// Unit returns the direction of v. When the length of v is at or below
// floor, the result is the zero vector rather than a division blow-up;
// callers that need degenerate separations reported use Direction instead.
func (v Vec3) Unit(floor float64) Vec3 {
	l := v.Norm()
	if l <= floor {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func (v Vec3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
