// package common contains common types that are used throughout this scaffold.
// They are not interface-wrapped structs, just plain types that express
// commonly used data-types.
package common

import "github.com/go-gl/mathgl/mgl32"

// Vec3 is a 3-component float32 vector in world space.
type Vec3 = mgl32.Vec3

// Mat4 is a 4x4 float32 matrix in column-major order (OpenGL convention).
type Mat4 = mgl32.Mat4

// Direction identifies a movement direction relative to a camera's local axes.
type Direction int

const (
	// Forward moves along the camera's front vector.
	Forward Direction = iota
	// Backward moves against the camera's front vector.
	Backward
	// Left moves against the camera's right vector.
	Left
	// Right moves along the camera's right vector.
	Right
)
