// Package views embeds the HTML templates rendered by the Fiber html engine.
package views

import "embed"

//go:embed layouts pages forms errors
var FS embed.FS
