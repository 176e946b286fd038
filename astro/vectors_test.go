package astro

import (
	"errors"
	"math"
	"testing"
)

func vecClose(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

func matClose(a, b Mat3, tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(a[i][j]-b[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

func TestVec3Basics(t *testing.T) {
	v := Vec3{3, 4, 0}
	if v.Norm() != 5.0 {
		t.Errorf("Norm = %v, want 5", v.Norm())
	}
	if got := v.Dot(Vec3{1, 1, 1}); got != 7.0 {
		t.Errorf("Dot = %v, want 7", got)
	}
	if got := (Vec3{1, 0, 0}).Cross(Vec3{0, 1, 0}); got != (Vec3{0, 0, 1}) {
		t.Errorf("Cross = %v, want z-hat", got)
	}
	if got := v.Scale(2).Sub(v); got != v {
		t.Errorf("Scale/Sub = %v, want %v", got, v)
	}
}

func TestDecompose(t *testing.T) {
	w, u := Vec3{0, 0, 2}.Decompose()
	if w != 2.0 || u != (Vec3{0, 0, 1}) {
		t.Errorf("Decompose = %v, %v", w, u)
	}

	w, u = Vec3{}.Decompose()
	if w != 0.0 || u != (Vec3{}) {
		t.Errorf("null Decompose = %v, %v, want zeros", w, u)
	}
}

func TestNormalize(t *testing.T) {
	u, err := Vec3{0, 3, 4}.Normalize()
	if err != nil {
		t.Fatal(err)
	}
	if !vecClose(u, Vec3{0, 0.6, 0.8}, 1e-15) {
		t.Errorf("Normalize = %v", u)
	}

	_, err = Vec3{}.Normalize()
	var ae *Error
	if !errors.As(err, &ae) || ae.Kind != ErrZeroVector {
		t.Errorf("null Normalize error = %v, want ErrZeroVector", err)
	}
}

func TestMat3Mul(t *testing.T) {
	r := Identity().Rz(0.3).Rx(-0.7)
	if !matClose(r.Mul(Identity()), r, 1e-15) {
		t.Error("m * I != m")
	}
	if !matClose(r.Mul(r.Transpose()), Identity(), 1e-15) {
		t.Error("rotation times its transpose should be identity")
	}
}

func TestMat3Inverse(t *testing.T) {
	inv, err := Identity().Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if inv != Identity() {
		t.Errorf("Identity inverse = %v", inv)
	}

	r := Identity().Rz(1.1).Ry(0.2).Rx(-0.4)
	inv, err = r.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if !matClose(inv, r.Transpose(), 1e-14) {
		t.Error("rotation inverse should equal transpose")
	}

	_, err = Mat3{}.Inverse()
	var ae *Error
	if !errors.As(err, &ae) || ae.Kind != ErrSingularMatrix {
		t.Errorf("singular inverse error = %v, want ErrSingularMatrix", err)
	}
}

func TestRotations(t *testing.T) {
	// Rotating the frame +90 deg about z carries x-hat to -y in the new frame.
	got := Identity().Rz(math.Pi / 2).MulVec(Vec3{1, 0, 0})
	if !vecClose(got, Vec3{0, -1, 0}, 1e-15) {
		t.Errorf("Rz(90) x-hat = %v", got)
	}

	got = Identity().Rx(math.Pi / 2).MulVec(Vec3{0, 1, 0})
	if !vecClose(got, Vec3{0, 0, -1}, 1e-15) {
		t.Errorf("Rx(90) y-hat = %v", got)
	}

	got = Identity().Ry(math.Pi / 2).MulVec(Vec3{0, 0, 1})
	if !vecClose(got, Vec3{-1, 0, 0}, 1e-15) {
		t.Errorf("Ry(90) z-hat = %v", got)
	}

	// Composed rotations stay orthonormal.
	r := Identity().Rz(2.9).Rx(-1.3).Ry(0.02).Rz(0.8)
	if !matClose(r.Mul(r.Transpose()), Identity(), 1e-14) {
		t.Error("composed rotation lost orthonormality")
	}
}

func TestAnp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{-0.1, TwoPi - 0.1},
		{TwoPi + 0.1, 0.1},
		{-TwoPi, 0},
		{7 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		if got := Anp(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Anp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAnpm(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, -math.Pi},
		{-math.Pi, math.Pi},
		{1.5 * math.Pi, -0.5 * math.Pi},
		{-0.25 * math.Pi, -0.25 * math.Pi},
	}
	for _, tt := range tests {
		if got := Anpm(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Anpm(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
