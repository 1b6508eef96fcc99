// Package shaders provides embedded GLSL shader sources.
package shaders

import "embed"

// FS holds every program as a <name>.vert / <name>.frag pair.
//
//go:embed *.vert *.frag
var FS embed.FS
