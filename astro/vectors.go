package astro

import "math"

// Vec3 is a Cartesian direction or position. There is no implicit unit-length
// invariant; callers normalize explicitly when one is required.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Scale returns the vector scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

// Dot returns the scalar product.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the vector product v x u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

// Decompose splits the vector into modulus and unit vector. A null input
// yields modulus 0 and the zero vector, which lets pipelines that only need
// the direction-if-any proceed without branching.
func (v Vec3) Decompose() (float64, Vec3) {
	w := v.Norm()
	if w == 0.0 {
		return 0.0, Vec3{}
	}
	return w, v.Scale(1.0 / w)
}

// Normalize returns the unit vector in the same direction, or a domain error
// for a zero-length input.
func (v Vec3) Normalize() (Vec3, error) {
	w := v.Norm()
	if w == 0.0 {
		return Vec3{}, errOf("Normalize", ErrZeroVector)
	}
	return v.Scale(1.0 / w), nil
}

// Mat3 is a 3x3 matrix in row-major order. Orientation matrices produced by
// the precession-nutation routines are orthonormal within floating tolerance;
// general matrices carry no such guarantee.
type Mat3 [3][3]float64

// Identity returns the identity matrix.
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// MulVec applies the matrix to a vector.
func (m Mat3) MulVec(p Vec3) Vec3 {
	return Vec3{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z,
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z,
		m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z,
	}
}

// Mul returns the matrix product m * b.
func (m Mat3) Mul(b Mat3) Mat3 {
	var w Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s := 0.0
			for k := 0; k < 3; k++ {
				s += m[i][k] * b[k][j]
			}
			w[i][j] = s
		}
	}
	return w
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	var w Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			w[i][j] = m[j][i]
		}
	}
	return w
}

// singularDet is the determinant magnitude below which Inverse refuses to
// proceed. For the unit-scale rotation matrices this library produces, a
// determinant this small means the matrix carries no usable inverse.
const singularDet = 1e-20

// Inverse returns the inverse computed by the cofactor/adjugate method,
// which is exact in form for the fixed 3x3 size (no pivoting, no elimination
// ordering to vary). A determinant smaller in magnitude than 1e-20 is a
// domain error.
func (m Mat3) Inverse() (Mat3, error) {
	// Cofactors.
	c00 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	c01 := m[1][2]*m[2][0] - m[1][0]*m[2][2]
	c02 := m[1][0]*m[2][1] - m[1][1]*m[2][0]
	c10 := m[0][2]*m[2][1] - m[0][1]*m[2][2]
	c11 := m[0][0]*m[2][2] - m[0][2]*m[2][0]
	c12 := m[0][1]*m[2][0] - m[0][0]*m[2][1]
	c20 := m[0][1]*m[1][2] - m[0][2]*m[1][1]
	c21 := m[0][2]*m[1][0] - m[0][0]*m[1][2]
	c22 := m[0][0]*m[1][1] - m[0][1]*m[1][0]

	det := m[0][0]*c00 + m[0][1]*c01 + m[0][2]*c02
	if math.Abs(det) < singularDet || math.IsNaN(det) {
		return Mat3{}, errOf("Inverse", ErrSingularMatrix)
	}

	d := 1.0 / det
	return Mat3{
		{c00 * d, c10 * d, c20 * d},
		{c01 * d, c11 * d, c21 * d},
		{c02 * d, c12 * d, c22 * d},
	}, nil
}

// Rx returns the matrix with an additional rotation about the x-axis
// incorporated, anticlockwise as seen looking toward the origin from
// positive x.
func (m Mat3) Rx(phi float64) Mat3 {
	s, c := math.Sincos(phi)
	w := m
	w[1][0] = c*m[1][0] + s*m[2][0]
	w[1][1] = c*m[1][1] + s*m[2][1]
	w[1][2] = c*m[1][2] + s*m[2][2]
	w[2][0] = -s*m[1][0] + c*m[2][0]
	w[2][1] = -s*m[1][1] + c*m[2][1]
	w[2][2] = -s*m[1][2] + c*m[2][2]
	return w
}

// Ry returns the matrix with an additional rotation about the y-axis
// incorporated.
func (m Mat3) Ry(theta float64) Mat3 {
	s, c := math.Sincos(theta)
	w := m
	w[0][0] = c*m[0][0] - s*m[2][0]
	w[0][1] = c*m[0][1] - s*m[2][1]
	w[0][2] = c*m[0][2] - s*m[2][2]
	w[2][0] = s*m[0][0] + c*m[2][0]
	w[2][1] = s*m[0][1] + c*m[2][1]
	w[2][2] = s*m[0][2] + c*m[2][2]
	return w
}

// Rz returns the matrix with an additional rotation about the z-axis
// incorporated.
func (m Mat3) Rz(psi float64) Mat3 {
	s, c := math.Sincos(psi)
	w := m
	w[0][0] = c*m[0][0] + s*m[1][0]
	w[0][1] = c*m[0][1] + s*m[1][1]
	w[0][2] = c*m[0][2] + s*m[1][2]
	w[1][0] = -s*m[0][0] + c*m[1][0]
	w[1][1] = -s*m[0][1] + c*m[1][1]
	w[1][2] = -s*m[0][2] + c*m[1][2]
	return w
}

// Anp normalizes an angle into the range [0, 2pi).
func Anp(a float64) float64 {
	w := math.Mod(a, TwoPi)
	if w < 0.0 {
		w += TwoPi
	}
	return w
}

// Anpm normalizes an angle into the range [-pi, +pi]. An input of exactly
// +pi maps to -pi (and -pi to +pi): the boundary keeps the opposite sign of
// the input.
func Anpm(a float64) float64 {
	w := math.Mod(a, TwoPi)
	if math.Abs(w) >= math.Pi {
		if a >= 0.0 {
			w -= TwoPi
		} else {
			w += TwoPi
		}
	}
	return w
}
