package providers

import "time"

// ResolveTimezone returns a location for an IANA name. When the name cannot be loaded it falls back
// to a fixed zone built from abbrev and offsetSeconds, and returns nil if neither is usable.
func ResolveTimezone(name, abbrev string, offsetSeconds int) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if abbrev == "" && offsetSeconds == 0 {
		return nil
	}
	return time.FixedZone(abbrev, offsetSeconds)
}
