// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Star catalog propagation, geodetic transforms, site-aware LAST
// 0.2.0 - CIO-based apparent sidereal time, IAU 2000B fast flavor, degree toggle
// 0.1.0 - Initial release: time-scale clock TUI, leap-second handling, headless summary
