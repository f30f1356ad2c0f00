package templates

import "embed"

// FS holds the HTML templates served by the page handler
//
//go:embed commute/*.html
var FS embed.FS
