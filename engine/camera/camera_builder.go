package camera

import "github.com/vantage3d/vantage/common"

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - position: world-space position
//
// Returns:
//   - CameraBuilderOption: functional option to set the position
func WithPosition(position common.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = position
	}
}

// WithWorldUp sets the fixed world up reference used to derive the basis.
//
// Parameters:
//   - worldUp: world up vector (typically 0, 1, 0)
//
// Returns:
//   - CameraBuilderOption: functional option to set the world up vector
func WithWorldUp(worldUp common.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.worldUp = worldUp
	}
}

// WithYaw sets the initial horizontal look angle.
//
// Parameters:
//   - yaw: yaw in degrees (-90 looks down -Z)
//
// Returns:
//   - CameraBuilderOption: functional option to set the yaw
func WithYaw(yaw float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.yaw = yaw
	}
}

// WithPitch sets the initial vertical look angle.
//
// Parameters:
//   - pitch: pitch in degrees (0 = horizontal)
//
// Returns:
//   - CameraBuilderOption: functional option to set the pitch
func WithPitch(pitch float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.pitch = pitch
	}
}

// WithConstrainPitch enables or disables clamping pitch to (-89, 89) degrees.
// Defaults to enabled.
//
// Parameters:
//   - constrain: true to clamp pitch
//
// Returns:
//   - CameraBuilderOption: functional option to set pitch constraining
func WithConstrainPitch(constrain bool) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.constrainPitch = constrain
	}
}

// WithMovementSpeed sets the translation speed in world units per second.
//
// Parameters:
//   - speed: movement speed
//
// Returns:
//   - CameraBuilderOption: functional option to set the movement speed
func WithMovementSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.movementSpeed = speed
	}
}

// WithMouseSensitivity sets the multiplier applied to mouse offsets.
//
// Parameters:
//   - sensitivity: sensitivity multiplier
//
// Returns:
//   - CameraBuilderOption: functional option to set the mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mouseSensitivity = sensitivity
	}
}

// WithZoom sets the initial vertical field of view in degrees.
//
// Parameters:
//   - zoom: field of view in degrees, expected within [1, 45]
//
// Returns:
//   - CameraBuilderOption: functional option to set the zoom
func WithZoom(zoom float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoom = zoom
	}
}

// WithClipPlanes sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance (must be > 0)
//   - far: far plane distance (must be > near)
//
// Returns:
//   - CameraBuilderOption: functional option to set the clip planes
func WithClipPlanes(near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
		c.far = far
	}
}
