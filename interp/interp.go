// SPDX-License-Identifier: MIT
// Package: lvnoise/interp
//
// interp.go — linear and cubic interpolation plus S-curve easing.

package interp

// Linear blends n0 and n1 by alpha: (1-a)*n0 + a*n1.
// Linear(n0, n1, 0) == n0 and Linear(n0, n1, 1) == n1 exactly.
func Linear(n0, n1, a float64) float64 {
	return (1.0-a)*n0 + a*n1
}

// Cubic performs cubic interpolation between n1 and n2 using the outer
// neighbours n0 and n3 to shape the tangents.
// Returns n1 at a=0 and n2 at a=1.
func Cubic(n0, n1, n2, n3, a float64) float64 {
	p := (n3 - n2) - (n0 - n1)
	q := (n0 - n1) - p
	r := n2 - n0
	s := n1

	return p*a*a*a + q*a*a + r*a + s
}

// CubicSCurve maps a onto the cubic S-curve 3a²-2a³.
// The first derivative is zero at a=0 and a=1.
func CubicSCurve(a float64) float64 {
	return a * a * (3.0 - 2.0*a)
}

// QuinticSCurve maps a onto the quintic S-curve 6a⁵-15a⁴+10a³.
// The first and second derivatives are zero at a=0 and a=1.
func QuinticSCurve(a float64) float64 {
	a3 := a * a * a
	a4 := a3 * a
	a5 := a4 * a

	return 6.0*a5 - 15.0*a4 + 10.0*a3
}
