package astro

import (
	"errors"
	"math"
	"testing"
)

func TestEllipsoidParams(t *testing.T) {
	tests := []struct {
		e    Ellipsoid
		a    float64
		invf float64
	}{
		{WGS84, 6378137.0, 298.257223563},
		{GRS80, 6378137.0, 298.257222101},
		{WGS72, 6378135.0, 298.26},
	}
	for _, tt := range tests {
		t.Run(tt.e.String(), func(t *testing.T) {
			a, f, err := tt.e.Params()
			if err != nil {
				t.Fatal(err)
			}
			if a != tt.a {
				t.Errorf("a = %v, want %v", a, tt.a)
			}
			if math.Abs(1.0/f-tt.invf) > 1e-6 {
				t.Errorf("1/f = %v, want %v", 1.0/f, tt.invf)
			}
		})
	}

	_, _, err := Ellipsoid(0).Params()
	var ae *Error
	if !errors.As(err, &ae) || ae.Kind != ErrUnsupportedModel {
		t.Errorf("error = %v, want ErrUnsupportedModel", err)
	}
}

func TestGeodeticRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		elong  float64
		phi    float64
		height float64
	}{
		{"mid latitude", 0.3, 0.5, 1000.0},
		{"equator", -2.1, 0.0, 0.0},
		{"southern deep", 1.9, -1.2, -500.0},
		{"high satellite", 0.0, 0.7, 20.2e6},
	}

	for _, e := range []Ellipsoid{WGS84, GRS80, WGS72} {
		for _, tt := range cases {
			t.Run(e.String()+"/"+tt.name, func(t *testing.T) {
				xyz, err := GeodeticToGeocentric(e, tt.elong, tt.phi, tt.height)
				if err != nil {
					t.Fatal(err)
				}
				gl, gp, gh, err := GeocentricToGeodetic(e, xyz)
				if err != nil {
					t.Fatal(err)
				}
				if math.Abs(Anpm(gl-tt.elong)) > 1e-12 {
					t.Errorf("elong = %v, want %v", gl, tt.elong)
				}
				// The closed-form latitude step is tuned for near-surface
				// points; high orbits lose a couple of digits.
				if math.Abs(gp-tt.phi) > 1e-10 {
					t.Errorf("phi = %v, want %v", gp, tt.phi)
				}
				if math.Abs(gh-tt.height) > 1e-4 {
					t.Errorf("height = %v, want %v", gh, tt.height)
				}
			})
		}
	}
}

func TestGeocentricToGeodeticPole(t *testing.T) {
	a, f, err := WGS84.Params()
	if err != nil {
		t.Fatal(err)
	}
	b := a * (1.0 - f)

	elong, phi, h, err := GeocentricToGeodetic(WGS84, Vec3{0, 0, b + 100.0})
	if err != nil {
		t.Fatal(err)
	}
	if elong != 0.0 {
		t.Errorf("polar elong = %v, want 0", elong)
	}
	if math.Abs(phi-math.Pi/2) > 1e-12 {
		t.Errorf("polar phi = %v, want pi/2", phi)
	}
	if math.Abs(h-100.0) > 1e-6 {
		t.Errorf("polar height = %v, want 100", h)
	}

	// Southern hemisphere keeps the latitude sign.
	_, phi, _, err = GeocentricToGeodetic(WGS84, Vec3{1000.0, 0, -b})
	if err != nil {
		t.Fatal(err)
	}
	if phi >= 0 {
		t.Errorf("southern phi = %v, want negative", phi)
	}
}

func TestGeodeticAnyRejects(t *testing.T) {
	if _, _, _, err := GeocentricToGeodeticAny(6.4e6, 1.5, Vec3{1, 0, 0}); err == nil {
		t.Error("flattening >= 1 accepted")
	}
	if _, _, _, err := GeocentricToGeodeticAny(-1.0, 0.003, Vec3{1, 0, 0}); err == nil {
		t.Error("negative radius accepted")
	}
}
