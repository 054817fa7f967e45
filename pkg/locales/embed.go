// Package locales embeds the per-language text bundles.
package locales

import "embed"

//go:embed *.yaml
var FS embed.FS
