package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vantage3d/vantage/common"
	"github.com/vantage3d/vantage/engine/input"
)

// Zoom (vertical field of view, degrees) is clamped to this range after
// every scroll mutation.
const (
	minZoom float32 = 1.0
	maxZoom float32 = 45.0
)

// Pitch is clamped to this range when pitch constraining is enabled, to
// keep the view from flipping at the poles.
const (
	minPitch float32 = -89.0
	maxPitch float32 = 89.0
)

// cameraImpl is the implementation of the Camera interface.
// Holds position and orientation state; front/right/up are derived from the
// yaw/pitch Euler angles and never set directly.
type cameraImpl struct {
	mu *sync.Mutex

	position common.Vec3
	front    common.Vec3
	up       common.Vec3
	right    common.Vec3
	worldUp  common.Vec3

	near float32
	far  float32

	// Euler angles in degrees.
	yaw            float32
	pitch          float32
	constrainPitch bool

	// rotateEnabled gates mouse-look: rotation applies only while the left
	// mouse button is held.
	rotateEnabled bool

	movementSpeed    float32
	mouseSensitivity float32
	zoom             float32
}

// Camera is a first-person camera driven by keyboard and mouse input.
// It owns orientation and position state, derives an orthonormal basis from
// its Euler angles, and exposes view/projection matrix queries for
// rendering. Camera implements input.Controllable: discrete mouse events
// drive rotation and zoom, the continuous poll drives movement.
type Camera interface {
	input.Controllable

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - common.Vec3: world-space position
	Position() common.Vec3

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - position: new world-space position
	SetPosition(position common.Vec3)

	// Front returns the unit vector the camera is looking along.
	//
	// Returns:
	//   - common.Vec3: the front basis vector
	Front() common.Vec3

	// Up returns the camera's unit up vector.
	//
	// Returns:
	//   - common.Vec3: the up basis vector
	Up() common.Vec3

	// Right returns the camera's unit right vector.
	//
	// Returns:
	//   - common.Vec3: the right basis vector
	Right() common.Vec3

	// WorldUp returns the fixed world up reference set at construction.
	//
	// Returns:
	//   - common.Vec3: the world up vector
	WorldUp() common.Vec3

	// Yaw returns the horizontal look angle in degrees.
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// SetYaw sets the horizontal look angle and recomputes the basis.
	//
	// Parameters:
	//   - yaw: new yaw in degrees
	SetYaw(yaw float32)

	// Pitch returns the vertical look angle in degrees.
	//
	// Returns:
	//   - float32: pitch in degrees
	Pitch() float32

	// SetPitch sets the vertical look angle and recomputes the basis.
	// The value is clamped when pitch constraining is enabled.
	//
	// Parameters:
	//   - pitch: new pitch in degrees
	SetPitch(pitch float32)

	// Zoom returns the vertical field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees, within [1, 45]
	Zoom() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// MovementSpeed returns the translation speed in world units per second.
	//
	// Returns:
	//   - float32: movement speed
	MovementSpeed() float32

	// SetMovementSpeed sets the translation speed in world units per second.
	//
	// Parameters:
	//   - speed: new movement speed
	SetMovementSpeed(speed float32)

	// MouseSensitivity returns the multiplier applied to mouse offsets.
	//
	// Returns:
	//   - float32: sensitivity multiplier
	MouseSensitivity() float32

	// SetMouseSensitivity sets the multiplier applied to mouse offsets.
	//
	// Parameters:
	//   - sensitivity: new sensitivity multiplier
	SetMouseSensitivity(sensitivity float32)

	// RotateEnabled reports whether mouse-look is currently active.
	//
	// Returns:
	//   - bool: true while the rotation gate is held
	RotateEnabled() bool

	// ViewMatrix returns the look-at transform from the camera position
	// toward position + front, oriented by the up vector. Pure query.
	//
	// Returns:
	//   - common.Mat4: the view matrix
	ViewMatrix() common.Mat4

	// ProjectionMatrix returns a perspective projection using the zoom as
	// vertical field of view, width/height as aspect ratio, and the
	// near/far clip planes. A degenerate aspect ratio (height <= 0) is the
	// caller's responsibility and produces a degenerate matrix.
	//
	// Parameters:
	//   - width: viewport width in pixels
	//   - height: viewport height in pixels
	//
	// Returns:
	//   - common.Mat4: the projection matrix
	ProjectionMatrix(width, height int) common.Mat4

	// Move translates the position along the front or right basis vector,
	// scaled by MovementSpeed and deltaTime so motion is frame-rate
	// independent.
	//
	// Parameters:
	//   - direction: forward, backward, left, or right
	//   - deltaTime: seconds elapsed since the previous frame
	Move(direction common.Direction, deltaTime float64)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera with first-person defaults: position (0, 0, 3)
// looking down -Z (yaw -90, pitch 0), world up +Y, 45 degree field of view,
// near 0.1, far 100. Applies each option in order, then computes the
// initial basis vectors.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:               &sync.Mutex{},
		position:         common.Vec3{0, 0, 3},
		worldUp:          common.Vec3{0, 1, 0},
		near:             0.1,
		far:              100.0,
		yaw:              -90.0,
		pitch:            0.0,
		constrainPitch:   true,
		movementSpeed:    2.5,
		mouseSensitivity: 0.1,
		zoom:             45.0,
	}
	for _, option := range options {
		option(c)
	}
	c.updateVectors()
	return c
}

func (c *cameraImpl) Position() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(position common.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = position
}

func (c *cameraImpl) Front() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.front
}

func (c *cameraImpl) Up() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Right() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.right
}

func (c *cameraImpl) WorldUp() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.worldUp
}

func (c *cameraImpl) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *cameraImpl) SetYaw(yaw float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw = yaw
	c.updateVectors()
}

func (c *cameraImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *cameraImpl) SetPitch(pitch float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pitch = pitch
	c.clampPitch()
	c.updateVectors()
}

func (c *cameraImpl) Zoom() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) MovementSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.movementSpeed
}

func (c *cameraImpl) SetMovementSpeed(speed float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.movementSpeed = speed
}

func (c *cameraImpl) MouseSensitivity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mouseSensitivity
}

func (c *cameraImpl) SetMouseSensitivity(sensitivity float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mouseSensitivity = sensitivity
}

func (c *cameraImpl) RotateEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotateEnabled
}

func (c *cameraImpl) ViewMatrix() common.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

func (c *cameraImpl) ProjectionMatrix(width, height int) common.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.Perspective(mgl32.DegToRad(c.zoom), float32(width)/float32(height), c.near, c.far)
}

func (c *cameraImpl) Move(direction common.Direction, deltaTime float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.move(direction, deltaTime)
}

// OnMouse applies scroll input to the zoom and, while rotation is enabled,
// cursor motion to the yaw/pitch angles. Zoom is clamped after the mutation
// so an overshooting scroll lands on the boundary instead of being rejected.
func (c *cameraImpl) OnMouse(event input.MouseEvent, _ float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if event.IsScroll {
		c.zoom -= event.YOffset
		if c.zoom < minZoom {
			c.zoom = minZoom
		}
		if c.zoom > maxZoom {
			c.zoom = maxZoom
		}
		return
	}

	if !c.rotateEnabled {
		return
	}

	c.yaw += event.XOffset * c.mouseSensitivity
	c.pitch += event.YOffset * c.mouseSensitivity
	c.clampPitch()
	c.updateVectors()
}

// OnKeyboard is a no-op; movement is driven by the continuous poll so held
// keys produce smooth motion instead of key-repeat stutter.
func (c *cameraImpl) OnKeyboard(_ input.KeyEvent, _ float64) {
}

// OnInput is the per-frame continuous poll. It edge-detects the left mouse
// button to gate rotation (tracking the previous state avoids a redundant
// toggle every tick the button stays down), then applies one Move call per
// held WASD key; two held keys yield additive diagonal motion.
func (c *cameraImpl) OnInput(state input.State, deltaTime float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	lmbDown := state.MouseButtonDown(common.MouseButtonLeft)
	if lmbDown && !c.rotateEnabled {
		c.rotateEnabled = true
	} else if !lmbDown && c.rotateEnabled {
		c.rotateEnabled = false
	}

	if state.KeyDown(common.KeyW) {
		c.move(common.Forward, deltaTime)
	}
	if state.KeyDown(common.KeyS) {
		c.move(common.Backward, deltaTime)
	}
	if state.KeyDown(common.KeyA) {
		c.move(common.Left, deltaTime)
	}
	if state.KeyDown(common.KeyD) {
		c.move(common.Right, deltaTime)
	}
}

// move translates the position along the local axes. Caller must hold the mutex.
func (c *cameraImpl) move(direction common.Direction, deltaTime float64) {
	velocity := c.movementSpeed * float32(deltaTime)
	switch direction {
	case common.Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case common.Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case common.Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case common.Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	}
}

// clampPitch bounds the pitch when constraining is enabled, so the view
// never flips past the poles. Caller must hold the mutex.
func (c *cameraImpl) clampPitch() {
	if !c.constrainPitch {
		return
	}
	if c.pitch > maxPitch {
		c.pitch = maxPitch
	}
	if c.pitch < minPitch {
		c.pitch = minPitch
	}
}

// updateVectors derives the front vector from the yaw/pitch Euler angles,
// then re-orthogonalizes right and up against the fixed world up. The
// re-normalization matters: right and up shrink toward zero length at
// extreme pitch, which would otherwise make movement speed fluctuate.
// Caller must hold the mutex.
func (c *cameraImpl) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := common.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
