package astro

import (
	"math"
	"testing"
)

func TestS2CKnown(t *testing.T) {
	tests := []struct {
		name       string
		theta, phi float64
		want       Vec3
	}{
		{"origin", 0, 0, Vec3{1, 0, 0}},
		{"east", math.Pi / 2, 0, Vec3{0, 1, 0}},
		{"north pole", 0, math.Pi / 2, Vec3{0, 0, 1}},
		{"south pole", 1.3, -math.Pi / 2, Vec3{0, 0, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := S2C(tt.theta, tt.phi)
			if !vecClose(got, tt.want, 1e-15) {
				t.Errorf("S2C(%v,%v) = %v, want %v", tt.theta, tt.phi, got, tt.want)
			}
		})
	}
}

func TestC2SEdgeCases(t *testing.T) {
	if th, ph := C2S(Vec3{}); th != 0 || ph != 0 {
		t.Errorf("C2S(null) = %v, %v, want zeros", th, ph)
	}
	// On the polar axis longitude collapses to zero.
	if th, ph := C2S(Vec3{0, 0, 5}); th != 0 || math.Abs(ph-math.Pi/2) > 1e-15 {
		t.Errorf("C2S(polar) = %v, %v", th, ph)
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	for th := -3.0; th <= 3.0; th += 0.7 {
		for ph := -1.5; ph <= 1.5; ph += 0.5 {
			gt, gp := C2S(S2C(th, ph))
			if math.Abs(Anpm(gt-th)) > 1e-12 || math.Abs(gp-ph) > 1e-12 {
				t.Errorf("round trip (%v,%v) = (%v,%v)", th, ph, gt, gp)
			}
		}
	}
}

func TestS2PVRoundTrip(t *testing.T) {
	const (
		theta = -3.21
		phi   = 0.123
		r     = 0.456
		td    = -7.8e-6
		pd    = 9.01e-6
		rd    = -1.23e-5
	)

	pv := S2PV(theta, phi, r, td, pd, rd)
	gt, gp, gr, gtd, gpd, grd := PV2S(pv)

	if math.Abs(Anpm(gt-theta)) > 1e-12 {
		t.Errorf("theta = %v, want %v", gt, theta)
	}
	if math.Abs(gp-phi) > 1e-12 {
		t.Errorf("phi = %v, want %v", gp, phi)
	}
	if math.Abs(gr-r) > 1e-12 {
		t.Errorf("r = %v, want %v", gr, r)
	}
	if math.Abs(gtd-td) > 1e-16 {
		t.Errorf("td = %v, want %v", gtd, td)
	}
	if math.Abs(gpd-pd) > 1e-16 {
		t.Errorf("pd = %v, want %v", gpd, pd)
	}
	if math.Abs(grd-rd) > 1e-16 {
		t.Errorf("rd = %v, want %v", grd, rd)
	}
}

func TestPV2SNullPosition(t *testing.T) {
	// A null position takes its direction from the motion.
	theta, phi, r, _, _, rd := PV2S(PV{P: Vec3{}, V: Vec3{0, 1, 0}})
	if r != 0 {
		t.Errorf("r = %v, want 0", r)
	}
	if math.Abs(theta-math.Pi/2) > 1e-15 || phi != 0 {
		t.Errorf("direction = (%v,%v), want (pi/2, 0)", theta, phi)
	}
	// With the origin moved along the motion, the whole speed is radial.
	if math.Abs(rd-1.0) > 1e-15 {
		t.Errorf("rd = %v, want 1", rd)
	}

	// Both null: everything zero.
	theta, phi, r, td, pd, rd := PV2S(PV{})
	if theta != 0 || phi != 0 || r != 0 || td != 0 || pd != 0 || rd != 0 {
		t.Error("fully null pv should give all zeros")
	}
}

func TestPVAdvance(t *testing.T) {
	pv := PV{P: Vec3{1, 2, 3}, V: Vec3{0.1, -0.2, 0.0}}
	got := pv.Advance(10)
	if !vecClose(got.P, Vec3{2, 0, 3}, 1e-15) {
		t.Errorf("P = %v", got.P)
	}
	if got.V != pv.V {
		t.Error("Advance should not touch the velocity")
	}
}

func TestSepp(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want float64
	}{
		{"orthogonal", Vec3{1, 0, 0}, Vec3{0, 1, 0}, math.Pi / 2},
		{"parallel", Vec3{1, 1, 0}, Vec3{2, 2, 0}, 0},
		{"antiparallel", Vec3{1, 0, 0}, Vec3{-3, 0, 0}, math.Pi},
		{"null", Vec3{}, Vec3{1, 0, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sepp(tt.a, tt.b); math.Abs(got-tt.want) > 1e-14 {
				t.Errorf("Sepp = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSepsSmallAngles(t *testing.T) {
	// The cross/dot formulation keeps precision for tiny separations.
	const d = 1e-9
	got := Seps(1.0, 0.5, 1.0+d, 0.5)
	want := d * math.Cos(0.5)
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("Seps tiny = %v, want %v", got, want)
	}
}

func TestHaDecAzElRoundTrip(t *testing.T) {
	const phi = 0.6108652381980153 // 35 deg

	for ha := -2.5; ha <= 2.5; ha += 1.0 {
		for dec := -1.2; dec <= 1.2; dec += 0.4 {
			az, el := HaDecToAzEl(ha, dec, phi)
			if az < 0 || az >= TwoPi {
				t.Errorf("azimuth out of range: %v", az)
			}
			gh, gd := AzElToHaDec(az, el, phi)
			if math.Abs(Anpm(gh-ha)) > 1e-12 || math.Abs(gd-dec) > 1e-12 {
				t.Errorf("round trip (%v,%v) = (%v,%v)", ha, dec, gh, gd)
			}
		}
	}
}

func TestHaDecToAzElZenith(t *testing.T) {
	const phi = 0.9
	_, el := HaDecToAzEl(0.0, phi, phi)
	if math.Abs(el-math.Pi/2) > 1e-12 {
		t.Errorf("zenith elevation = %v, want pi/2", el)
	}
}

func TestParallacticAngle(t *testing.T) {
	const phi = 0.6

	// On the meridian south of the zenith the angle is zero.
	if got := ParallacticAngle(0.0, 0.1, phi); math.Abs(got) > 1e-15 {
		t.Errorf("meridian parallactic angle = %v, want 0", got)
	}

	// Sign follows the hour angle.
	east := ParallacticAngle(-1.0, 0.1, phi)
	west := ParallacticAngle(1.0, 0.1, phi)
	if east >= 0 || west <= 0 {
		t.Errorf("parallactic angle signs: east %v, west %v", east, west)
	}
	if math.Abs(east+west) > 1e-14 {
		t.Errorf("parallactic angle not antisymmetric: %v vs %v", east, west)
	}
}
