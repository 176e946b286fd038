package astro

import "math"

// leapChange is one entry of the TAI-UTC table: the cumulative offset that
// took effect at 0h UTC on the first day of the given month.
type leapChange struct {
	year, month int
	delat       float64
}

// leapTable is append-only. Entries before 1972 carry fractional offsets that
// drift within the interval; drift rates live in leapDrift, indexed in step.
var leapTable = []leapChange{
	{1960, 1, 1.4178180},
	{1961, 1, 1.4228180},
	{1961, 8, 1.3728180},
	{1962, 1, 1.8458580},
	{1963, 11, 1.9458580},
	{1964, 1, 3.2401300},
	{1964, 4, 3.3401300},
	{1964, 9, 3.4401300},
	{1965, 1, 3.5401300},
	{1965, 3, 3.6401300},
	{1965, 7, 3.7401300},
	{1965, 9, 3.8401300},
	{1966, 1, 4.3131700},
	{1968, 2, 4.2131700},
	{1972, 1, 10.0},
	{1972, 7, 11.0},
	{1973, 1, 12.0},
	{1974, 1, 13.0},
	{1975, 1, 14.0},
	{1976, 1, 15.0},
	{1977, 1, 16.0},
	{1978, 1, 17.0},
	{1979, 1, 18.0},
	{1980, 1, 19.0},
	{1981, 7, 20.0},
	{1982, 7, 21.0},
	{1983, 7, 22.0},
	{1985, 7, 23.0},
	{1988, 1, 24.0},
	{1990, 1, 25.0},
	{1991, 1, 26.0},
	{1992, 7, 27.0},
	{1993, 7, 28.0},
	{1994, 7, 29.0},
	{1996, 1, 30.0},
	{1997, 7, 31.0},
	{1999, 1, 32.0},
	{2006, 1, 33.0},
	{2009, 1, 34.0},
	{2012, 7, 35.0},
	{2015, 7, 36.0},
	{2017, 1, 37.0},
}

// leapDrift gives, for each pre-1972 entry, the MJD reference epoch and the
// rate (s/day) of the rubber-second UTC drift.
var leapDrift = [14][2]float64{
	{37300.0, 0.0012960},
	{37300.0, 0.0012960},
	{37300.0, 0.0012960},
	{37665.0, 0.0011232},
	{37665.0, 0.0011232},
	{38761.0, 0.0012960},
	{38761.0, 0.0012960},
	{38761.0, 0.0012960},
	{38761.0, 0.0012960},
	{38761.0, 0.0012960},
	{38761.0, 0.0012960},
	{38761.0, 0.0012960},
	{39126.0, 0.0025920},
	{39126.0, 0.0025920},
}

// leapValidYear is the latest year the leap table is known to be complete
// for. Dates more than five years past it extrapolate the last entry and are
// flagged dubious.
const leapValidYear = 2021

// LeapSeconds returns TAI-UTC ("delta AT") in seconds for a given UTC
// calendar date and fraction of day.
//
// Dates before the table begins (1960) yield 0 with a dubious-year warning;
// dates more than a few years past the last confirmed entry yield the last
// cumulative value with the same warning. Neither case fails: out-of-table
// lookups are best effort. Invalid calendar dates or fractions are domain
// errors.
func LeapSeconds(year, month, day int, fd float64) (float64, Warning, error) {
	if fd < 0.0 || fd > 1.0 {
		return 0, WarnNone, errOf("LeapSeconds", ErrBadFraction)
	}
	d, err := CalToJD(year, month, day)
	if err != nil {
		return 0, WarnNone, err
	}

	// Before the table: warning, result left at zero.
	if year < leapTable[0].year {
		return 0, WarnDubiousYear, nil
	}

	// The table is trusted for a few years past its last confirmed year
	// before results become dubious.
	warn := WarnNone
	if year > leapValidYear+5 {
		warn = WarnDubiousYear
	}

	// Find the preceding table entry by date-ordered integer.
	m := 12*year + month
	i := len(leapTable) - 1
	for ; i >= 0; i-- {
		if m >= 12*leapTable[i].year+leapTable[i].month {
			break
		}
	}

	da := leapTable[i].delat

	// Pre-1972 entries drift between steps.
	if i < len(leapDrift) {
		da += ((d.D2 + fd) - leapDrift[i][0]) * leapDrift[i][1]
	}

	return da, warn, nil
}

// UTCToTAI converts a UTC two-part date to TAI, handling leap-second days
// (which are longer than 86400 s) and the pre-1972 rubber-second era. The
// quasi-JD convention spreads a leap second over the preceding day, and that
// scaling is removed here before the SI-second offset is applied.
func UTCToTAI(utc Date) (Date, Warning, error) {
	// Put the two parts into big-first order.
	big1 := math.Abs(utc.D1) >= math.Abs(utc.D2)
	var u1, u2 float64
	if big1 {
		u1, u2 = utc.D1, utc.D2
	} else {
		u1, u2 = utc.D2, utc.D1
	}

	// TAI-UTC at 0h today.
	iy, im, id, fd, err := JDToCal(Date{u1, u2})
	if err != nil {
		return Date{}, WarnNone, err
	}
	dat0, warn, err := LeapSeconds(iy, im, id, 0.0)
	if err != nil {
		return Date{}, WarnNone, err
	}

	// TAI-UTC at 12h today, to detect drift.
	dat12, _, err := LeapSeconds(iy, im, id, 0.5)
	if err != nil {
		return Date{}, WarnNone, err
	}

	// TAI-UTC at 0h tomorrow, to detect jumps.
	iyt, imt, idt, _, err := JDToCal(Date{u1 + 1.5, u2 - fd})
	if err != nil {
		return Date{}, WarnNone, err
	}
	dat24, _, err := LeapSeconds(iyt, imt, idt, 0.0)
	if err != nil {
		return Date{}, WarnNone, err
	}

	// Separate the TAI-UTC change into per-day drift and any jump.
	dlod := 2.0 * (dat12 - dat0)
	dleap := dat24 - (dat0 + dlod)

	// Remove the scaling applied to spread the leap into the preceding day.
	fd *= (SecPerDay + dleap) / SecPerDay
	// Scale from (pre-1972) UTC seconds to SI seconds.
	fd *= (SecPerDay + dlod) / SecPerDay

	// Today's calendar date back to 2-part JD.
	z, err := CalToJD(iy, im, id)
	if err != nil {
		return Date{}, WarnNone, err
	}

	// Assemble the TAI result, preserving the UTC split and order.
	a2 := z.D1 - u1
	a2 += z.D2
	a2 += fd + dat0/SecPerDay
	if big1 {
		return Date{u1, a2}, warn, nil
	}
	return Date{a2, u1}, warn, nil
}

// TAIToUTC converts a TAI two-part date to UTC. The conversion is done by
// iterating the forward UTCToTAI transformation to convergence, which keeps
// the two implementations in exact agreement on leap-second days.
func TAIToUTC(tai Date) (Date, Warning, error) {
	big1 := math.Abs(tai.D1) >= math.Abs(tai.D2)
	var a1, a2 float64
	if big1 {
		a1, a2 = tai.D1, tai.D2
	} else {
		a1, a2 = tai.D2, tai.D1
	}

	// Initial guess for UTC.
	u1, u2 := a1, a2
	warn := WarnNone
	for i := 0; i < 3; i++ {
		g, w, err := UTCToTAI(Date{u1, u2})
		if err != nil {
			return Date{}, WarnNone, err
		}
		warn = w
		// Adjust guess (this is the convergence loop).
		u2 += a1 - g.D1
		u2 += a2 - g.D2
	}

	if big1 {
		return Date{u1, u2}, warn, nil
	}
	return Date{u2, u1}, warn, nil
}

// TAIToTT converts TAI to TT by the fixed 32.184 s offset, applied to the
// smaller part of the date pair.
func TAIToTT(tai Date) Date {
	const dtat = TTMinusTAI / SecPerDay
	if math.Abs(tai.D1) > math.Abs(tai.D2) {
		return Date{tai.D1, tai.D2 + dtat}
	}
	return Date{tai.D1 + dtat, tai.D2}
}

// TTToTAI converts TT to TAI by the fixed 32.184 s offset.
func TTToTAI(tt Date) Date {
	const dtat = TTMinusTAI / SecPerDay
	if math.Abs(tt.D1) > math.Abs(tt.D2) {
		return Date{tt.D1, tt.D2 - dtat}
	}
	return Date{tt.D1 - dtat, tt.D2}
}

// TTToTDB converts TT to TDB given dtr = TDB-TT in seconds. The offset is an
// externally modeled quantity (dominated by an annual term of about 1.7 ms)
// and must be supplied by the caller.
func TTToTDB(tt Date, dtr float64) (Date, error) {
	if math.IsNaN(dtr) {
		return Date{}, errOf("TTToTDB", ErrNaNInput)
	}
	dtrd := dtr / SecPerDay
	if math.Abs(tt.D1) > math.Abs(tt.D2) {
		return Date{tt.D1, tt.D2 + dtrd}, nil
	}
	return Date{tt.D1 + dtrd, tt.D2}, nil
}

// TDBToTT converts TDB to TT given dtr = TDB-TT in seconds.
func TDBToTT(tdb Date, dtr float64) (Date, error) {
	if math.IsNaN(dtr) {
		return Date{}, errOf("TDBToTT", ErrNaNInput)
	}
	dtrd := dtr / SecPerDay
	if math.Abs(tdb.D1) > math.Abs(tdb.D2) {
		return Date{tdb.D1, tdb.D2 - dtrd}, nil
	}
	return Date{tdb.D1 - dtrd, tdb.D2}, nil
}

// TTToTCG converts TT to TCG (Geocentric Coordinate Time).
func TTToTCG(tt Date) Date {
	const t77t = MJD1977 + TTMinusTAI/SecPerDay
	const elgg = LG / (1.0 - LG)
	if math.Abs(tt.D1) > math.Abs(tt.D2) {
		return Date{tt.D1, tt.D2 + ((tt.D1-MJDZero)+(tt.D2-t77t))*elgg}
	}
	return Date{tt.D1 + ((tt.D2-MJDZero)+(tt.D1-t77t))*elgg, tt.D2}
}

// TCGToTT converts TCG to TT.
func TCGToTT(tcg Date) Date {
	const t77t = MJD1977 + TTMinusTAI/SecPerDay
	if math.Abs(tcg.D1) > math.Abs(tcg.D2) {
		return Date{tcg.D1, tcg.D2 - ((tcg.D1-MJDZero)+(tcg.D2-t77t))*LG}
	}
	return Date{tcg.D1 - ((tcg.D2-MJDZero)+(tcg.D1-t77t))*LG, tcg.D2}
}

// TDBToTCB converts TDB to TCB (Barycentric Coordinate Time).
func TDBToTCB(tdb Date) Date {
	const t77td = MJDZero + MJD1977
	const t77tf = TTMinusTAI / SecPerDay
	const tdb0d = TDB0 / SecPerDay
	const elbb = LB / (1.0 - LB)

	if math.Abs(tdb.D1) >= math.Abs(tdb.D2) {
		d := t77td - tdb.D1
		f := tdb.D2 - tdb0d
		return Date{tdb.D1, f - (d-(f-t77tf))*elbb}
	}
	d := t77td - tdb.D2
	f := tdb.D1 - tdb0d
	return Date{f - (d-(f-t77tf))*elbb, tdb.D2}
}

// TCBToTDB converts TCB to TDB.
func TCBToTDB(tcb Date) Date {
	const t77td = MJDZero + MJD1977
	const t77tf = TTMinusTAI / SecPerDay
	const tdb0d = TDB0 / SecPerDay

	if math.Abs(tcb.D1) >= math.Abs(tcb.D2) {
		d := tcb.D1 - t77td
		return Date{tcb.D1, tcb.D2 + tdb0d - (d+(tcb.D2-t77tf))*LB}
	}
	d := tcb.D2 - t77td
	return Date{tcb.D1 + tdb0d - (d+(tcb.D1-t77tf))*LB, tcb.D2}
}

// TAIToUT1 converts TAI to UT1 given dta = UT1-TAI in seconds. The offset is
// Earth-rotation dependent and must be supplied from observations.
func TAIToUT1(tai Date, dta float64) (Date, error) {
	if math.IsNaN(dta) {
		return Date{}, errOf("TAIToUT1", ErrNaNInput)
	}
	dtad := dta / SecPerDay
	if math.Abs(tai.D1) > math.Abs(tai.D2) {
		return Date{tai.D1, tai.D2 + dtad}, nil
	}
	return Date{tai.D1 + dtad, tai.D2}, nil
}

// UT1ToTAI converts UT1 to TAI given dta = UT1-TAI in seconds.
func UT1ToTAI(ut1 Date, dta float64) (Date, error) {
	if math.IsNaN(dta) {
		return Date{}, errOf("UT1ToTAI", ErrNaNInput)
	}
	dtad := dta / SecPerDay
	if math.Abs(ut1.D1) > math.Abs(ut1.D2) {
		return Date{ut1.D1, ut1.D2 - dtad}, nil
	}
	return Date{ut1.D1 - dtad, ut1.D2}, nil
}

// UTCToUT1 converts UTC to UT1 given dut1 = UT1-UTC in seconds (available
// from IERS bulletins; not computable from first principles).
func UTCToUT1(utc Date, dut1 float64) (Date, Warning, error) {
	if math.IsNaN(dut1) {
		return Date{}, WarnNone, errOf("UTCToUT1", ErrNaNInput)
	}

	// Look up TAI-UTC for the day.
	iy, im, id, _, err := JDToCal(utc)
	if err != nil {
		return Date{}, WarnNone, err
	}
	dat, warn, err := LeapSeconds(iy, im, id, 0.0)
	if err != nil {
		return Date{}, WarnNone, err
	}

	// Form UT1-TAI and route via TAI.
	dta := dut1 - dat
	tai, warnTAI, err := UTCToTAI(utc)
	if err != nil {
		return Date{}, WarnNone, err
	}
	ut1, err := TAIToUT1(tai, dta)
	if err != nil {
		return Date{}, WarnNone, err
	}
	return ut1, warn | warnTAI, nil
}

// UT1ToUTC converts UT1 to UTC given dut1 = UT1-UTC in seconds. When the
// target UTC day contains a leap second, the supplied offset refers to the
// pre-leap value and the conversion ramps it across the lengthened day so
// that the quasi-JD convention is honored.
func UT1ToUTC(ut1 Date, dut1 float64) (Date, Warning, error) {
	if math.IsNaN(dut1) {
		return Date{}, WarnNone, errOf("UT1ToUTC", ErrNaNInput)
	}

	big1 := math.Abs(ut1.D1) >= math.Abs(ut1.D2)
	var u1, u2 float64
	if big1 {
		u1, u2 = ut1.D1, ut1.D2
	} else {
		u1, u2 = ut1.D2, ut1.D1
	}
	duts := dut1

	// See whether the UT1 can possibly be in a leap-second day.
	warn := WarnNone
	d1 := u1
	var dats1 float64
	for i := -1; i <= 3; i++ {
		d2 := u2 + float64(i)
		iy, im, id, _, err := JDToCal(Date{d1, d2})
		if err != nil {
			return Date{}, WarnNone, err
		}
		dats2, w, err := LeapSeconds(iy, im, id, 0.0)
		if err != nil {
			return Date{}, WarnNone, err
		}
		warn = w
		if i == -1 {
			dats1 = dats2
		}
		ddats := dats2 - dats1
		if math.Abs(ddats) >= 0.5 {
			// Leap second nearby: ensure UT1-UTC is the "before" value.
			if ddats*duts >= 0 {
				duts -= ddats
			}
			// UT1 for the start of the UTC day that ends in a leap.
			z, err := CalToJD(iy, im, id)
			if err != nil {
				return Date{}, WarnNone, err
			}
			us1 := z.D1
			us2 := z.D2 - 1.0 + duts/SecPerDay

			// Is the UT1 after this point?
			du := u1 - us1
			du += u2 - us2
			if du > 0 {
				// Fraction of the current UTC day that has elapsed.
				fd := du * SecPerDay / (SecPerDay + ddats)
				// Ramp UT1-UTC to bring about the JD(UTC) convention.
				duts += ddats * math.Min(fd, 1.0)
			}
			break
		}
		dats1 = dats2
	}

	// Subtract the (possibly adjusted) UT1-UTC to give UTC.
	u2 -= duts / SecPerDay

	if big1 {
		return Date{u1, u2}, warn, nil
	}
	return Date{u2, u1}, warn, nil
}
