package astro

import "math"

// CatalogEntry is a star's catalog coordinates: ICRS right ascension and
// declination (radians), proper motions in RA (dRA/dt rather than
// cos(Dec) x dRA/dt) and Dec (radians per Julian year), parallax (arcsec)
// and radial velocity (km/s, positive receding).
type CatalogEntry struct {
	RA, Dec  float64
	PMRA     float64
	PMDec    float64
	Parallax float64
	RV       float64
}

const (
	// starPxMin is the smallest parallax the conversion will work with.
	// Anything smaller is replaced by it, flagging the substitution.
	starPxMin = 1e-7

	// starVMax is the largest total space speed allowed, as a fraction of c.
	// Faster catalog data is treated as erroneous and the velocity zeroed.
	starVMax = 0.5

	// starRelIter caps the iterative inertial-to-observed solution.
	starRelIter = 100
)

// StarToPV converts catalog coordinates to a barycentric position-velocity
// pair in AU and AU/day. The velocity is the inertial space velocity, with
// the observed proper motion and radial velocity corrected for the special
// relativistic Doppler shift by an iterative solution that stops when
// convergence stalls. A parallax below 1e-7 arcsec is clamped and flagged
// WarnSmallParallax; a space speed above half the speed of light is zeroed
// and flagged WarnExcessSpeed.
//
// Reference: Stumpff, P., 1985, Astron.Astrophys. 144, 232.
func StarToPV(cat CatalogEntry) (PV, Warning, error) {
	var warn Warning

	// Distance (AU).
	w := cat.Parallax
	if w < starPxMin {
		w = starPxMin
		warn |= WarnSmallParallax
	}
	r := ArcsecPerRad / w

	// Radial speed (AU/day).
	rd := SecPerDay * cat.RV * 1e3 / AUMeters

	// Proper motion (radian/day).
	rad := cat.PMRA / DaysPerYear
	decd := cat.PMDec / DaysPerYear

	pv := S2PV(cat.RA, cat.Dec, r, rad, decd, rd)

	// Excessive speed is arbitrarily zeroed.
	if pv.V.Norm()/LightSpeedAUDay > starVMax {
		pv.V = Vec3{}
		warn |= WarnExcessSpeed
	}

	// Isolate the radial and transverse velocity components (AU/day).
	_, x := pv.P.Decompose()
	vsr := x.Dot(pv.V)
	usr := x.Scale(vsr)
	ust := pv.V.Sub(usr)
	vst := ust.Norm()

	// Special-relativity dimensionless parameters.
	betsr := vsr / LightSpeedAUDay
	betst := vst / LightSpeedAUDay

	// Inertial-to-observed correction terms, iterated to a fixed point.
	bett := betst
	betr := betsr
	var d, del, odd, oddel, od, odel float64
	for i := 0; i < starRelIter; i++ {
		d = 1.0 + betr
		ww := betr*betr + bett*bett
		del = -ww / (math.Sqrt(1.0-ww) + 1.0)
		betr = d*betsr + del
		bett = d * betst
		if i > 0 {
			dd := math.Abs(d - od)
			ddel := math.Abs(del - odel)
			if i > 1 && dd >= odd && ddel >= oddel {
				break
			}
			odd = dd
			oddel = ddel
		}
		od = d
		odel = del
	}

	// Replace observed radial and tangential velocity with inertial values.
	sc := 1.0
	if betsr != 0.0 {
		sc = d + del/betsr
	}
	ur := usr.Scale(sc)
	ut := ust.Scale(d)

	pv.V = ur.Add(ut)
	return pv, warn, nil
}

// PVToStar converts a barycentric position-velocity pair (AU, AU/day) to
// catalog coordinates, inverting StarToPV. Superluminal or null inputs are
// rejected as unrealistic.
func PVToStar(pv PV) (CatalogEntry, error) {
	// Isolate the radial and tangential velocity components (AU/day,
	// inertial).
	_, x := pv.P.Decompose()
	vr := x.Dot(pv.V)
	ur := x.Scale(vr)
	ut := pv.V.Sub(ur)
	vt := ut.Norm()

	// Special-relativity dimensionless parameters.
	betr := vr / LightSpeedAUDay
	bett := vt / LightSpeedAUDay

	// Observed-to-inertial correction terms.
	d := 1.0 + betr
	w := betr*betr + bett*bett
	if d == 0.0 || w >= 1.0 {
		return CatalogEntry{}, errOf("PVToStar", ErrUnrealistic)
	}
	del := -w / (math.Sqrt(1.0-w) + 1.0)

	// Scale the inertial velocity components into observed ones.
	ust := ut.Scale(1.0 / d)
	usr := x.Scale(LightSpeedAUDay * (betr - del) / d)

	obs := PV{pv.P, usr.Add(ust)}

	a, dec, r, rad, decd, rd := PV2S(obs)
	if r == 0.0 {
		return CatalogEntry{}, errOf("PVToStar", ErrUnrealistic)
	}

	return CatalogEntry{
		RA:       Anp(a),
		Dec:      dec,
		PMRA:     rad * DaysPerYear,
		PMDec:    decd * DaysPerYear,
		Parallax: ArcsecPerRad / r,
		RV:       1e-3 * rd * AUMeters / SecPerDay,
	}, nil
}

// ProperMotion propagates catalog coordinates from one epoch to another,
// accounting for space motion and the changing light time. Both epochs are
// TDB (TT is close enough) two-part Julian Dates. The star is moved from
// its observed place at the first epoch to its observed place at the
// second: the track runs through the geometric position at the second
// epoch, from which the new light time is deduced. Warnings from the
// catalog-to-vector step are passed through.
func ProperMotion(cat CatalogEntry, ep1, ep2 Date) (CatalogEntry, Warning, error) {
	pv1, warn, err := StarToPV(cat)
	if err != nil {
		return CatalogEntry{}, warn, err
	}

	// Light time when observed (days).
	tl1 := pv1.P.Norm() / LightSpeedAUDay

	// Interval between epochs (days).
	dt := ep2.Sub(ep1)

	// Observed position at the first epoch to geometric position at the
	// second.
	pv := pv1.Advance(dt + tl1)

	// Light time at the second epoch, from the geometric position.
	r2 := pv.P.Dot(pv.P)
	rdv := pv.P.Dot(pv.V)
	v2 := pv.V.Dot(pv.V)
	c2mv2 := LightSpeedAUDay*LightSpeedAUDay - v2
	if c2mv2 <= 0.0 {
		return CatalogEntry{}, warn, errOf("ProperMotion", ErrUnrealistic)
	}
	tl2 := (-rdv + math.Sqrt(rdv*rdv+c2mv2*r2)) / c2mv2

	// Observed place at the first epoch to observed place at the second.
	pv2 := pv1.Advance(dt + (tl1 - tl2))

	out, err := PVToStar(pv2)
	if err != nil {
		return CatalogEntry{}, warn, err
	}
	return out, warn, nil
}
