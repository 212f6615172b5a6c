package input

import (
	"capsulewalk/internal/camera"
	"fmt"
	"strings"
)

// DefaultSensitivity is pixels of mouse travel per radian.
const DefaultSensitivity = 500

// Mode is the device class, picked once at startup.
type Mode int

const (
	ModeDesktop Mode = iota
	ModeTouch
)

func (m Mode) String() string {
	if m == ModeTouch {
		return "touch"
	}
	return "desktop"
}

// DetectMode resolves the configured input mode. "auto" picks touch on mobile
// targets.
func DetectMode(configured, goos string) (Mode, error) {
	switch strings.ToLower(configured) {
	case "", "auto":
		if goos == "android" || goos == "ios" {
			return ModeTouch, nil
		}
		return ModeDesktop, nil
	case "desktop":
		return ModeDesktop, nil
	case "touch":
		return ModeTouch, nil
	}
	return ModeDesktop, fmt.Errorf("input mode %q", configured)
}

// Look drives the camera rotation from one input source.
type Look interface {
	Apply(cam *camera.Camera)
}

// NewLook returns the look strategy for mode.
func NewLook(mode Mode, sensitivity float32) Look {
	if mode == ModeTouch {
		return &OrientationLook{}
	}
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	return &MouseLook{Sensitivity: sensitivity}
}

// MouseLook accumulates relative pointer motion between frames.
type MouseLook struct {
	Sensitivity float32
	dx, dy      float32
}

func (m *MouseLook) Move(dx, dy float32) {
	m.dx += dx
	m.dy += dy
}

func (m *MouseLook) Apply(cam *camera.Camera) {
	cam.Rotate(-m.dx/m.Sensitivity, -m.dy/m.Sensitivity)
	m.dx, m.dy = 0, 0
}

// OrientationLook holds the latest absolute device orientation in radians.
type OrientationLook struct {
	yaw, pitch, roll float32
	set              bool
}

func (o *OrientationLook) Set(yaw, pitch, roll float32) {
	o.yaw, o.pitch, o.roll = yaw, pitch, roll
	o.set = true
}

func (o *OrientationLook) Apply(cam *camera.Camera) {
	if !o.set {
		return
	}
	cam.SetOrientation(o.yaw, o.pitch, o.roll)
}
