// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader is the vertex shader for the forward scene pass.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader is the fragment shader for the forward scene pass.
//
//go:embed scene.frag
var SceneFragmentShader string
