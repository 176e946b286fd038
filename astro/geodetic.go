package astro

import "math"

// Ellipsoid identifies a reference Earth ellipsoid.
type Ellipsoid int

const (
	WGS84 Ellipsoid = iota + 1
	GRS80
	WGS72
)

func (e Ellipsoid) String() string {
	switch e {
	case WGS84:
		return "WGS84"
	case GRS80:
		return "GRS80"
	case WGS72:
		return "WGS72"
	default:
		return "unknown"
	}
}

// Params returns the equatorial radius (meters) and flattening of the
// ellipsoid.
func (e Ellipsoid) Params() (a, f float64, err error) {
	switch e {
	case WGS84:
		return 6378137.0, 1.0 / 298.257223563, nil
	case GRS80:
		return 6378137.0, 1.0 / 298.257222101, nil
	case WGS72:
		return 6378135.0, 1.0 / 298.26, nil
	default:
		return 0, 0, errOf("Params", ErrUnsupportedModel)
	}
}

// GeocentricToGeodetic converts geocentric coordinates (meters) to geodetic
// longitude, latitude (radians) and height (meters) on the given reference
// ellipsoid.
func GeocentricToGeodetic(e Ellipsoid, xyz Vec3) (elong, phi, height float64, err error) {
	a, f, err := e.Params()
	if err != nil {
		return 0, 0, 0, err
	}
	return GeocentricToGeodeticAny(a, f, xyz)
}

// GeocentricToGeodeticAny converts geocentric coordinates (meters) to
// geodetic longitude, latitude and height for an ellipsoid specified by its
// equatorial radius a (meters) and flattening f. The closed Halley-style
// solution of Fukushima (2006) is used; no iteration is needed and the
// error is negligible for any terrestrial position.
//
// Reference: Fukushima, T., 2006, J.Geodesy 79, 689.
func GeocentricToGeodeticAny(a, f float64, xyz Vec3) (elong, phi, height float64, err error) {
	if f < 0.0 || f >= 1.0 || a <= 0.0 {
		return 0, 0, 0, errOf("GeocentricToGeodeticAny", ErrUnrealistic)
	}

	// Functions of the ellipsoid parameters.
	aeps2 := a * a * 1e-32
	e2 := (2.0 - f) * f
	e4t := e2 * e2 * 1.5
	ec2 := 1.0 - e2
	if ec2 <= 0.0 {
		return 0, 0, 0, errOf("GeocentricToGeodeticAny", ErrUnrealistic)
	}
	ec := math.Sqrt(ec2)
	b := a * ec

	x, y, z := xyz.X, xyz.Y, xyz.Z

	// Distance from polar axis squared.
	p2 := x*x + y*y

	if p2 > 0.0 {
		elong = math.Atan2(y, x)
	}

	absz := math.Abs(z)

	if p2 > aeps2 {
		p := math.Sqrt(p2)

		// Normalization.
		s0 := absz / a
		pn := p / a
		zc := ec * s0

		// Newton correction factors.
		c0 := ec * pn
		c02 := c0 * c0
		c03 := c02 * c0
		s02 := s0 * s0
		s03 := s02 * s0
		a02 := c02 + s02
		a0 := math.Sqrt(a02)
		a03 := a02 * a0
		d0 := zc*a03 + e2*s03
		f0 := pn*a03 - e2*c03

		// Halley correction factor.
		b0 := e4t * s02 * c02 * pn * (a0 - ec)
		s1 := d0*f0 - b0*s0
		cc := ec * (f0*f0 - b0*c0)

		phi = math.Atan(s1 / cc)
		s12 := s1 * s1
		cc2 := cc * cc
		height = (p*cc + absz*s1 - a*math.Sqrt(ec2*s12+cc2)) /
			math.Sqrt(s12+cc2)
	} else {
		// Pole.
		phi = math.Pi / 2.0
		height = absz - b
	}

	if z < 0.0 {
		phi = -phi
	}
	return elong, phi, height, nil
}

// GeodeticToGeocentric converts geodetic longitude, latitude (radians) and
// height (meters) on the given reference ellipsoid to geocentric
// coordinates (meters).
func GeodeticToGeocentric(e Ellipsoid, elong, phi, height float64) (Vec3, error) {
	a, f, err := e.Params()
	if err != nil {
		return Vec3{}, err
	}
	return GeodeticToGeocentricAny(a, f, elong, phi, height)
}

// GeodeticToGeocentricAny converts geodetic coordinates to geocentric for
// an ellipsoid specified by its equatorial radius a (meters) and flattening
// f. A case such as an angular position at or beyond the poles combined
// with illegal ellipsoid parameters is rejected as unrealistic.
func GeodeticToGeocentricAny(a, f, elong, phi, height float64) (Vec3, error) {
	sp, cp := math.Sincos(phi)
	w := 1.0 - f
	w = w * w
	d := cp*cp + w*sp*sp
	if d <= 0.0 {
		return Vec3{}, errOf("GeodeticToGeocentricAny", ErrUnrealistic)
	}
	ac := a / math.Sqrt(d)
	as := w * ac

	r := (ac + height) * cp
	sl, cl := math.Sincos(elong)
	return Vec3{r * cl, r * sl, (as + height) * sp}, nil
}
