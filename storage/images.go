// Package storage resolves image keys against the object-storage base. The
// store itself is an external collaborator; everything here is a pure string
// transform with no network calls.
package storage

import (
	"strings"
)

// ResolveImageURL turns a stored key into a displayable URL. Absolute URLs
// pass through verbatim; relative keys are prefixed with the storage base.
func ResolveImageURL(base, key string) string {
	if key == "" {
		return ""
	}
	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}

// ImageName extracts the final path segment of a key or URL for display.
func ImageName(key string) string {
	if key == "" {
		return ""
	}
	trimmed := strings.TrimRight(key, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		if name := trimmed[idx+1:]; name != "" {
			return name
		}
	}
	return trimmed
}
