package models

import "fmt"

// Supported platforms. Values double as database column prefixes and API
// path segments, so they must stay lowercase.
const (
	PlatformInstagram = "instagram"
	PlatformLinkedIn  = "linkedin"
	PlatformTwitter   = "twitter"
)

// Platforms lists all supported platforms in a stable order.
var Platforms = []string{PlatformInstagram, PlatformLinkedIn, PlatformTwitter}

// ValidPlatform reports whether the given name is a supported platform.
func ValidPlatform(platform string) bool {
	for _, p := range Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

// ErrUnknownPlatform is returned for platform names outside Platforms.
var ErrUnknownPlatform = fmt.Errorf("unknown platform")
