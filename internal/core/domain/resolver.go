package domain

import (
	"fmt"
	"regexp"
)

// keyPattern splits "[scheme://host/[raw/]]key". The host class excludes '/'
// so that a raw URL never swallows the "raw" segment into the origin.
var keyPattern = regexp.MustCompile(`(?:(https?://[^\s/]+\.[^\s/]+)/(?:raw/)?)?(\S+)`)

// Resolution is the outcome of resolving a key argument
type Resolution struct {
	Server Origin
	Key    string
	// Embedded is true when the server came from the key argument itself
	Embedded bool
}

// Resolve splits a bare key, document URL or raw URL into origin and key.
// server is the explicit server argument and may be empty; it is ignored
// whenever keyOrURL embeds its own origin.
func Resolve(keyOrURL, server string) (Resolution, error) {
	m := keyPattern.FindStringSubmatch(keyOrURL)
	if m == nil {
		return Resolution{}, NewUsageError(fmt.Sprintf("Invalid key or URL %q.", keyOrURL))
	}

	if m[1] != "" {
		return Resolution{Server: Origin(m[1]), Key: m[2], Embedded: true}, nil
	}

	if server == "" {
		return Resolution{}, ErrMissingServer
	}
	return Resolution{Server: Origin(server), Key: m[2]}, nil
}
