// Package assets turns stored image paths into absolute URLs.
package assets

import "strings"

// Resolver prefixes relative image paths with the configured asset
// base. Absolute URLs and empty paths pass through untouched; image
// bytes are never inspected.
type Resolver struct {
	base string
}

// NewResolver builds a resolver from the API base URL; a trailing
// "/api" segment is stripped so asset paths resolve against the host
// root.
func NewResolver(base string) *Resolver {
	base = strings.TrimSuffix(strings.TrimSuffix(base, "/"), "/api")
	return &Resolver{base: base}
}

func (r *Resolver) URL(img string) string {
	if img == "" {
		return ""
	}
	if strings.HasPrefix(img, "http") {
		return img
	}
	return r.base + img
}
