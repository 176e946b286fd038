// Package clock derives the full set of astronomical time scales and Earth
// orientation angles for an instant, with thread-safe access for the UI.
package clock

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/litescript/ls-astro/astro"
)

// Site is an observing location in geodetic coordinates.
type Site struct {
	LonRad    float64 // east positive
	LatRad    float64
	HeightM   float64
	Reference astro.Ellipsoid
}

// Config holds the externally supplied quantities the conversions need.
type Config struct {
	// DUT1 is UT1-UTC in seconds, from IERS Bulletin A.
	DUT1 float64

	// Model selects the precession-nutation flavor.
	Model astro.Model

	// Site locates the observer for local sidereal time and geocentric
	// position. Optional; the zero Site sits at the Greenwich meridian.
	Site Site

	// RefreshInterval is how often the UI recomputes.
	RefreshInterval time.Duration
}

// DefaultConfig returns a configuration usable out of the box.
func DefaultConfig() Config {
	return Config{
		DUT1:  0.0,
		Model: astro.ModelIAU2006A,
		Site: Site{
			Reference: astro.WGS84,
		},
		RefreshInterval: time.Second,
	}
}

// Snapshot is one fully derived instant: every time scale, the Earth
// orientation angles, and the flags raised along the way.
type Snapshot struct {
	At time.Time

	UTC astro.Date
	TAI astro.Date
	TT  astro.Date
	TDB astro.Date
	TCG astro.Date
	TCB astro.Date
	UT1 astro.Date

	LeapSeconds float64 // TAI-UTC
	TDBOffset   float64 // TDB-TT, seconds

	ERA  float64 // Earth rotation angle
	GMST float64
	GAST float64
	LAST float64 // local apparent sidereal time at the site
	EO   float64 // equation of the origins

	CIPX, CIPY float64
	CIOLocator float64

	Obliquity float64
	DPsi      float64 // nutation in longitude
	DEps      float64 // nutation in obliquity

	SiteXYZ astro.Vec3 // geocentric site position, meters

	Warnings astro.Warning
}

// Manager recomputes snapshots on demand and hands out consistent copies.
type Manager struct {
	mu sync.RWMutex

	cfg     Config
	current Snapshot
	hasData bool
	lastErr error
}

// NewManager creates a manager with the given configuration.
func NewManager(cfg Config) *Manager {
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = time.Second
	}
	if cfg.Site.Reference == 0 {
		cfg.Site.Reference = astro.WGS84
	}
	return &Manager{cfg: cfg}
}

// Update computes the snapshot for the given instant and stores it.
func (m *Manager) Update(at time.Time) error {
	snap, err := Compute(at, m.cfg)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastErr = err
	if err != nil {
		return err
	}
	m.current = snap
	m.hasData = true
	return nil
}

// Snapshot returns the most recent snapshot.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// HasData reports whether at least one Update has succeeded.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hasData
}

// LastError returns the error from the most recent Update, if any.
func (m *Manager) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg.RefreshInterval
}

// DateFromTime converts a civil time to a two-part UTC Julian Date in the
// MJD convention. Go's time package cannot express the 61st second, so an
// instant inside an actual leap second never reaches this function.
func DateFromTime(t time.Time) (astro.Date, error) {
	u := t.UTC()
	d, err := astro.CalToJD(u.Year(), int(u.Month()), u.Day())
	if err != nil {
		return astro.Date{}, err
	}
	fd := (float64(u.Hour())*3600.0 +
		float64(u.Minute())*60.0 +
		float64(u.Second()) +
		float64(u.Nanosecond())*1e-9) / astro.SecPerDay
	return d.Add(fd), nil
}

// approxTDBOffset returns an approximate TDB-TT in seconds, keeping only the
// dominant annual term (amplitude 1.657 ms). Good to about 30 microseconds,
// ample for wall-clock display.
func approxTDBOffset(tt astro.Date) float64 {
	g := 6.24004077 + 0.01720197034*((tt.D1-astro.J2000)+tt.D2)
	return 0.001657 * math.Sin(g)
}

// Compute derives a full snapshot for the given instant.
func Compute(at time.Time, cfg Config) (Snapshot, error) {
	if cfg.Site.Reference == 0 {
		cfg.Site.Reference = astro.WGS84
	}

	utc, err := DateFromTime(at)
	if err != nil {
		return Snapshot{}, fmt.Errorf("civil date: %w", err)
	}

	snap := Snapshot{At: at, UTC: utc}

	iy, im, id, fd, err := astro.JDToCal(utc)
	if err != nil {
		return Snapshot{}, fmt.Errorf("calendar split: %w", err)
	}
	dat, warn, err := astro.LeapSeconds(iy, im, id, fd)
	if err != nil {
		return Snapshot{}, fmt.Errorf("leap seconds: %w", err)
	}
	snap.LeapSeconds = dat
	snap.Warnings |= warn

	tai, warn, err := astro.UTCToTAI(utc)
	if err != nil {
		return Snapshot{}, fmt.Errorf("utc to tai: %w", err)
	}
	snap.TAI = tai
	snap.Warnings |= warn

	snap.TT = astro.TAIToTT(tai)

	snap.TDBOffset = approxTDBOffset(snap.TT)
	tdb, err := astro.TTToTDB(snap.TT, snap.TDBOffset)
	if err != nil {
		return Snapshot{}, fmt.Errorf("tt to tdb: %w", err)
	}
	snap.TDB = tdb
	snap.TCG = astro.TTToTCG(snap.TT)
	snap.TCB = astro.TDBToTCB(tdb)

	ut1, warn, err := astro.UTCToUT1(utc, cfg.DUT1)
	if err != nil {
		return Snapshot{}, fmt.Errorf("utc to ut1: %w", err)
	}
	snap.UT1 = ut1
	snap.Warnings |= warn

	// Earth orientation.
	snap.ERA = astro.ERA(ut1)
	snap.GMST = astro.GMST06(ut1, snap.TT)

	rnpb, err := astro.PrecNutMatrix(cfg.Model, snap.TT)
	if err != nil {
		return Snapshot{}, fmt.Errorf("orientation matrix: %w", err)
	}
	snap.CIPX, snap.CIPY = astro.CIPXY(rnpb)
	snap.CIOLocator = astro.CIOLocator(snap.TT, snap.CIPX, snap.CIPY)
	snap.EO = astro.EqOrigins(rnpb, snap.CIOLocator)
	snap.GAST = astro.Anp(snap.ERA - snap.EO)
	snap.LAST = astro.Anp(snap.GAST + cfg.Site.LonRad)

	snap.Obliquity = astro.MeanObliquity(snap.TT)
	snap.DPsi, snap.DEps, err = astro.Nutation(cfg.Model, snap.TT)
	if err != nil {
		return Snapshot{}, fmt.Errorf("nutation: %w", err)
	}

	snap.SiteXYZ, err = astro.GeodeticToGeocentric(
		cfg.Site.Reference, cfg.Site.LonRad, cfg.Site.LatRad, cfg.Site.HeightM)
	if err != nil {
		return Snapshot{}, fmt.Errorf("site position: %w", err)
	}

	return snap, nil
}
