package astro

import "math"

// Date is a Julian Date held as two doubles whose sum is the full value.
// Splitting the date keeps the dominant and residual magnitudes apart, which
// preserves time resolution well beyond a single double. Any apportionment is
// valid; CalToJD produces the MJD convention (D1 = 2400000.5). Functions that
// operate on a Date never collapse the pair until a scalar is actually
// required.
type Date struct {
	D1, D2 float64
}

// JD returns the date as a single Julian Date, losing the split precision.
func (d Date) JD() float64 { return d.D1 + d.D2 }

// MJD returns the date as a single Modified Julian Date.
func (d Date) MJD() float64 { return (d.D1 - MJDZero) + d.D2 }

// Add returns the date advanced by the given number of days (fractional
// allowed). The delta is applied to the small part so the split is preserved.
func (d Date) Add(days float64) Date { return Date{d.D1, d.D2 + days} }

// Sub returns the difference d-other in days, differencing the large and
// small parts separately before summing.
func (d Date) Sub(other Date) float64 {
	return (d.D1 - other.D1) + (d.D2 - other.D2)
}

// Acceptable Julian Date domain for JDToCal.
const (
	jdMin = -68569.5
	jdMax = 1e9
)

// monthDays holds the month lengths of a non-leap year.
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// CalToJD converts a proleptic Gregorian calendar date to a two-part Julian
// Date in the MJD convention (D1 = 2400000.5, D2 = MJD at 0h). Invalid dates
// are rejected with a domain error, never clamped. The earliest supported
// year is -4799.
func CalToJD(year, month, day int) (Date, error) {
	const minYear = -4799

	if year < minYear {
		return Date{}, errOf("CalToJD", ErrBadYear)
	}
	if month < 1 || month > 12 {
		return Date{}, errOf("CalToJD", ErrBadMonth)
	}
	leap := 0
	if month == 2 && year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		leap = 1
	}
	if day < 1 || day > monthDays[month-1]+leap {
		return Date{}, errOf("CalToJD", ErrBadDay)
	}

	my := (month - 14) / 12
	ypm := int64(year + my)
	mjd := float64((1461*(ypm+4800))/4 +
		(367*int64(month-2-12*my))/12 -
		(3*((ypm+4900)/100))/4 +
		int64(day) - 2432076)

	return Date{MJDZero, mjd}, nil
}

// JDToCal converts a two-part Julian Date to proleptic Gregorian calendar
// year, month, day and fraction of day. The fraction of the two parts is
// recombined with compensated (Klein 2006) summation so that the day rolls
// over at exactly the right instant regardless of how the date was split.
// The date must lie in [-68569.5, 1e9].
func JDToCal(d Date) (year, month, day int, fd float64, err error) {
	const eps = 2.220446049250313e-16 // 2^-52

	dj := d.D1 + d.D2
	if math.IsNaN(dj) {
		return 0, 0, 0, 0, errOf("JDToCal", ErrNaNInput)
	}
	if dj < jdMin || dj > jdMax {
		return 0, 0, 0, 0, errOf("JDToCal", ErrJDRange)
	}

	// Separate day and fraction, where -0.5 <= fraction < 0.5.
	w := dnint(d.D1)
	f1 := d.D1 - w
	jd := int64(w)
	w = dnint(d.D2)
	f2 := d.D2 - w
	jd += int64(w)

	// Compute f1+f2+0.5 using compensated summation.
	s := 0.5
	cs := 0.0
	for _, x := range [2]float64{f1, f2} {
		t := s + x
		if math.Abs(s) >= math.Abs(x) {
			cs += (s - t) + x
		} else {
			cs += (x - t) + s
		}
		s = t
		if s >= 1.0 {
			jd++
			s -= 1.0
		}
	}
	f := s + cs
	cs = f - s

	// Deal with negative f.
	if f < 0.0 {
		f = s + 1.0
		cs += (1.0 - f) + s
		s = f
		f = s + cs
		cs = f - s
		jd--
	}

	// Deal with f that is 1.0 or more when rounded to double.
	if f-1.0 >= -eps/4.0 {
		t := s - 1.0
		cs += (s - t) - 1.0
		s = t
		f = s + cs
		if -eps/2.0 < f {
			jd++
			f = math.Max(f, 0.0)
		}
	}

	// Express the day in Gregorian calendar.
	l := jd + 68569
	n := (4 * l) / 146097
	l -= (146097*n + 3) / 4
	i := (4000 * (l + 1)) / 1461001
	l -= (1461*i)/4 - 31
	k := (80 * l) / 2447
	day = int(l - (2447*k)/80)
	l = k / 11
	month = int(k + 2 - 12*l)
	year = int(100*(n-49) + i + l)
	fd = f

	return year, month, day, fd, nil
}

// JDToEpoch converts a two-part Julian Date to a Julian epoch (e.g. 2000.5).
//
// Reference: Lieske, J.H., 1979, Astron.Astrophys. 73, 282.
func JDToEpoch(d Date) float64 {
	return 2000.0 + ((d.D1-J2000)+d.D2)/DaysPerYear
}

// EpochToJD converts a Julian epoch to a two-part Julian Date in the MJD
// convention.
func EpochToJD(epj float64) Date {
	return Date{MJDZero, MJDJ2000 + (epj-2000.0)*DaysPerYear}
}

// dnint rounds to the nearest whole number, half away from zero.
func dnint(a float64) float64 {
	if math.Abs(a) < 0.5 {
		return 0.0
	}
	if a < 0.0 {
		return math.Ceil(a - 0.5)
	}
	return math.Floor(a + 0.5)
}
