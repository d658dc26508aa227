// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SurfaceVertexShader transforms surface, light-axis and marker vertices.
//
//go:embed surface.vert
var SurfaceVertexShader string

// SurfaceFragmentShader applies Phong shading with an optional texture.
//
//go:embed surface.frag
var SurfaceFragmentShader string
