// Package static embeds the browser assets for the game page
package static

import "embed"

// FS holds app.js and style.css
//
//go:embed app.js style.css
var FS embed.FS
