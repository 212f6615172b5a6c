package input

// Key is a movement action on the keyboard, independent of the physical key.
type Key int

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyJump
)

func (k Key) String() string {
	switch k {
	case KeyForward:
		return "forward"
	case KeyBack:
		return "back"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyJump:
		return "jump"
	}
	return "unknown"
}

// Button is an on-screen touch button.
type Button int

const (
	ButtonForward Button = iota
	ButtonBack
)

// Keys and Buttons hold the pressed state written by the platform adapter and
// read once per frame. A missing entry reads as released.
type (
	Keys    map[Key]bool
	Buttons map[Button]bool
)
