// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
)

// Cartesian3D is a position in physical coordinates.
type Cartesian3D struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Cartesian3D) Add(o Cartesian3D) Cartesian3D {
	return Cartesian3D{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Cartesian3D) Sub(o Cartesian3D) Cartesian3D {
	return Cartesian3D{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * f.
func (v Cartesian3D) Scale(f float64) Cartesian3D {
	return Cartesian3D{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// Dot returns the scalar product.
func (v Cartesian3D) Dot(o Cartesian3D) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length returns the Euclidean norm.
func (v Cartesian3D) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// String implements fmt.Stringer.
func (v Cartesian3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
