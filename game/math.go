package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// NormalizeHeading wraps a heading in degrees into the range [0, 360).
func NormalizeHeading(heading float32) float32 {
	heading = math32.Mod(heading, 360)
	if heading < 0 {
		heading += 360
	}
	return heading
}

// TurnHeading rotates the heading by delta degrees and normalizes the result.
func TurnHeading(heading, delta float32) float32 {
	return NormalizeHeading(heading + delta)
}

// InvertHeading returns the heading facing the opposite direction.
func InvertHeading(heading float32) float32 {
	return TurnHeading(heading, 180)
}

// HeadingVector returns the horizontal facing vector for a heading in degrees. A heading of zero
// faces +Y, and headings increase counter-clockwise.
func HeadingVector(heading float32) mgl32.Vec2 {
	rad := mgl32.DegToRad(heading)
	return mgl32.Vec2{-math32.Sin(rad), math32.Cos(rad)}
}

// HeadingDelta returns the signed shortest rotation in degrees from one heading to another.
func HeadingDelta(from, to float32) float32 {
	return WrapYawDelta(NormalizeHeading(to) - NormalizeHeading(from))
}

// WrapYawDelta wraps a rotation in degrees into the range [-180, 180].
func WrapYawDelta(delta float32) float32 {
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}
	return delta
}

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-3.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-3
}
