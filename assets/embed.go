// Package assets provides embedded files for dontpress.
package assets

import _ "embed"

// DefaultContent is the compiled-in content document used when no external
// document is configured or the configured one cannot be loaded.
//
//go:embed content.json
var DefaultContent []byte
