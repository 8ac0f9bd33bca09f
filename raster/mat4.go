// mat4.go - Column-major 4x4 matrix kernel for the projection, view and
// model transforms that vertex shaders apply before rasterization.

package raster

import "math"

// Mat4 is a column-major 4x4 matrix: m[col][row]. Transforming a column
// vector v is m*v; composing transforms A then B is MulMat4(B, A).
type Mat4 [4][4]float32

// IdentityMat4 returns the 4x4 identity matrix.
func IdentityMat4() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// MulMat4 returns a*b.
func MulMat4(a, b Mat4) Mat4 {
	var m Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k][row] * b[col][k]
			}
			m[col][row] = sum
		}
	}
	return m
}

// TranslationMat4 returns a translation matrix by v.
func TranslationMat4(v Vec3) Mat4 {
	m := IdentityMat4()
	m[3][0] = v.X
	m[3][1] = v.Y
	m[3][2] = v.Z
	return m
}

// ScalingMat4 returns a non-uniform scaling matrix.
func ScalingMat4(v Vec3) Mat4 {
	m := IdentityMat4()
	m[0][0] = v.X
	m[1][1] = v.Y
	m[2][2] = v.Z
	return m
}

// RotationMat4 returns an axis-angle rotation matrix; angleDeg is in degrees
// and axis need not be normalized.
func RotationMat4(angleDeg float32, axis Vec3) Mat4 {
	a := Normalize3(axis)
	rad := float64(angleDeg) * math.Pi / 180
	s, c := float32(math.Sin(rad)), float32(math.Cos(rad))
	t := 1 - c

	m := IdentityMat4()
	m[0][0] = t*a.X*a.X + c
	m[0][1] = t*a.X*a.Y + s*a.Z
	m[0][2] = t*a.X*a.Z - s*a.Y

	m[1][0] = t*a.X*a.Y - s*a.Z
	m[1][1] = t*a.Y*a.Y + c
	m[1][2] = t*a.Y*a.Z + s*a.X

	m[2][0] = t*a.X*a.Z + s*a.Y
	m[2][1] = t*a.Y*a.Z - s*a.X
	m[2][2] = t*a.Z*a.Z + c
	return m
}

// LookAtMat4 builds a right-handed view matrix placing the eye at e, looking
// toward center c, with up hint u.
func LookAtMat4(e, c, u Vec3) Mat4 {
	f := Normalize3(Sub3(c, e))
	s := Normalize3(Cross3(f, u))
	up := Cross3(s, f)

	m := IdentityMat4()
	m[0][0], m[1][0], m[2][0] = s.X, s.Y, s.Z
	m[0][1], m[1][1], m[2][1] = up.X, up.Y, up.Z
	m[0][2], m[1][2], m[2][2] = -f.X, -f.Y, -f.Z
	m[3][0] = -Dot3(s, e)
	m[3][1] = -Dot3(up, e)
	m[3][2] = Dot3(f, e)
	return m
}

// PerspectiveMat4 builds a right-handed OpenGL-style perspective projection.
// fovyDeg is the vertical field of view in degrees; near/far map z to
// [-1,+1] in NDC.
func PerspectiveMat4(fovyDeg, aspect, near, far float32) Mat4 {
	rad := float64(fovyDeg) * math.Pi / 180
	yScale := float32(1 / math.Tan(rad/2))
	xScale := yScale / aspect

	var m Mat4
	m[0][0] = xScale
	m[1][1] = yScale
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = -1
	m[3][2] = -(2 * far * near) / (far - near)
	return m
}

// OrthoMat4 builds an orthographic projection mapping the box
// [left,right]x[bottom,top]x[near,far] to the NDC cube.
func OrthoMat4(left, right, bottom, top, near, far float32) Mat4 {
	m := IdentityMat4()
	m[0][0] = 2 / (right - left)
	m[1][1] = 2 / (top - bottom)
	m[2][2] = -2 / (far - near)
	m[3][0] = -(right + left) / (right - left)
	m[3][1] = -(top + bottom) / (top - bottom)
	m[3][2] = -(far + near) / (far - near)
	return m
}

// TransformPosition transforms a position by m, applying the perspective
// divide by the resulting w.
func (m Mat4) TransformPosition(v Vec3) Vec3 {
	x := m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z + m[3][0]
	y := m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z + m[3][1]
	z := m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z + m[3][2]
	w := m[0][3]*v.X + m[1][3]*v.Y + m[2][3]*v.Z + m[3][3]
	if w == 0 {
		return Vec3{x, y, z}
	}
	inv := 1 / w
	return Vec3{x * inv, y * inv, z * inv}
}

// TransformVector transforms a direction vector using only the upper-left
// 3x3 of m (no translation, no perspective divide).
func (m Mat4) TransformVector(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z,
		m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z,
		m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			r[row][col] = m[col][row]
		}
	}
	return r
}

// Invert returns the inverse of m via full 4x4 cofactor expansion, and
// whether m was invertible (determinant != 0).
//
// The teacher's equivalent routine (voodoo_constants.go fixed-point tables
// aside) has no 4x4 inverse at all; this implementation follows the
// standard symbolic cofactor derivation rather than the transcription-bug
// variant spec.md §9 flags ("m.m03*m.m31*m.m30 where sibling rows use
// m.m13*m.m20") — see DESIGN.md.
func (m Mat4) Invert() (Mat4, bool) {
	a := m
	var inv Mat4

	inv[0][0] = a[1][1]*a[2][2]*a[3][3] - a[1][1]*a[2][3]*a[3][2] - a[2][1]*a[1][2]*a[3][3] + a[2][1]*a[1][3]*a[3][2] + a[3][1]*a[1][2]*a[2][3] - a[3][1]*a[1][3]*a[2][2]
	inv[1][0] = -a[1][0]*a[2][2]*a[3][3] + a[1][0]*a[2][3]*a[3][2] + a[2][0]*a[1][2]*a[3][3] - a[2][0]*a[1][3]*a[3][2] - a[3][0]*a[1][2]*a[2][3] + a[3][0]*a[1][3]*a[2][2]
	inv[2][0] = a[1][0]*a[2][1]*a[3][3] - a[1][0]*a[2][3]*a[3][1] - a[2][0]*a[1][1]*a[3][3] + a[2][0]*a[1][3]*a[3][1] + a[3][0]*a[1][1]*a[2][3] - a[3][0]*a[1][3]*a[2][1]
	inv[3][0] = -a[1][0]*a[2][1]*a[3][2] + a[1][0]*a[2][2]*a[3][1] + a[2][0]*a[1][1]*a[3][2] - a[2][0]*a[1][2]*a[3][1] - a[3][0]*a[1][1]*a[2][2] + a[3][0]*a[1][2]*a[2][1]

	inv[0][1] = -a[0][1]*a[2][2]*a[3][3] + a[0][1]*a[2][3]*a[3][2] + a[2][1]*a[0][2]*a[3][3] - a[2][1]*a[0][3]*a[3][2] - a[3][1]*a[0][2]*a[2][3] + a[3][1]*a[0][3]*a[2][2]
	inv[1][1] = a[0][0]*a[2][2]*a[3][3] - a[0][0]*a[2][3]*a[3][2] - a[2][0]*a[0][2]*a[3][3] + a[2][0]*a[0][3]*a[3][2] + a[3][0]*a[0][2]*a[2][3] - a[3][0]*a[0][3]*a[2][2]
	inv[2][1] = -a[0][0]*a[2][1]*a[3][3] + a[0][0]*a[2][3]*a[3][1] + a[2][0]*a[0][1]*a[3][3] - a[2][0]*a[0][3]*a[3][1] - a[3][0]*a[0][1]*a[2][3] + a[3][0]*a[0][3]*a[2][1]
	inv[3][1] = a[0][0]*a[2][1]*a[3][2] - a[0][0]*a[2][2]*a[3][1] - a[2][0]*a[0][1]*a[3][2] + a[2][0]*a[0][2]*a[3][1] + a[3][0]*a[0][1]*a[2][2] - a[3][0]*a[0][2]*a[2][1]

	inv[0][2] = a[0][1]*a[1][2]*a[3][3] - a[0][1]*a[1][3]*a[3][2] - a[1][1]*a[0][2]*a[3][3] + a[1][1]*a[0][3]*a[3][2] + a[3][1]*a[0][2]*a[1][3] - a[3][1]*a[0][3]*a[1][2]
	inv[1][2] = -a[0][0]*a[1][2]*a[3][3] + a[0][0]*a[1][3]*a[3][2] + a[1][0]*a[0][2]*a[3][3] - a[1][0]*a[0][3]*a[3][2] - a[3][0]*a[0][2]*a[1][3] + a[3][0]*a[0][3]*a[1][2]
	inv[2][2] = a[0][0]*a[1][1]*a[3][3] - a[0][0]*a[1][3]*a[3][1] - a[1][0]*a[0][1]*a[3][3] + a[1][0]*a[0][3]*a[3][1] + a[3][0]*a[0][1]*a[1][3] - a[3][0]*a[0][3]*a[1][1]
	inv[3][2] = -a[0][0]*a[1][1]*a[3][2] + a[0][0]*a[1][2]*a[3][1] + a[1][0]*a[0][1]*a[3][2] - a[1][0]*a[0][2]*a[3][1] - a[3][0]*a[0][1]*a[1][2] + a[3][0]*a[0][2]*a[1][1]

	inv[0][3] = -a[0][1]*a[1][2]*a[2][3] + a[0][1]*a[1][3]*a[2][2] + a[1][1]*a[0][2]*a[2][3] - a[1][1]*a[0][3]*a[2][2] - a[2][1]*a[0][2]*a[1][3] + a[2][1]*a[0][3]*a[1][2]
	inv[1][3] = a[0][0]*a[1][2]*a[2][3] - a[0][0]*a[1][3]*a[2][2] - a[1][0]*a[0][2]*a[2][3] + a[1][0]*a[0][3]*a[2][2] + a[2][0]*a[0][2]*a[1][3] - a[2][0]*a[0][3]*a[1][2]
	inv[2][3] = -a[0][0]*a[1][1]*a[2][3] + a[0][0]*a[1][3]*a[2][1] + a[1][0]*a[0][1]*a[2][3] - a[1][0]*a[0][3]*a[2][1] - a[2][0]*a[0][1]*a[1][3] + a[2][0]*a[0][3]*a[1][1]
	inv[3][3] = a[0][0]*a[1][1]*a[2][2] - a[0][0]*a[1][2]*a[2][1] - a[1][0]*a[0][1]*a[2][2] + a[1][0]*a[0][2]*a[2][1] + a[2][0]*a[0][1]*a[1][2] - a[2][0]*a[0][2]*a[1][1]

	det := a[0][0]*inv[0][0] + a[0][1]*inv[1][0] + a[0][2]*inv[2][0] + a[0][3]*inv[3][0]
	if det == 0 {
		return IdentityMat4(), false
	}
	invDet := 1 / det
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			inv[c][r] *= invDet
		}
	}
	return inv, true
}
