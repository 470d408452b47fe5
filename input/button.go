package input

import "fmt"

// Button identifies the source of a press or release: a keyboard key, a
// mouse button, or a controller button. It is a closed union; the variants
// are Keyboard, Mouse and Controller.
type Button interface {
	fmt.Stringer

	// button restricts implementations to this package.
	button()
}

// Keyboard is the keyboard-key variant of Button.
type Keyboard Key

func (Keyboard) button() {}

// String returns the key's display name.
func (k Keyboard) String() string {
	return Key(k).String()
}

// MouseButton represents a mouse button.
type MouseButton uint8

// Mouse buttons.
const (
	// MouseUnknown is an unsupported mouse button.
	MouseUnknown MouseButton = iota
	// MouseLeft is the primary (left) mouse button.
	MouseLeft
	// MouseRight is the secondary (right) mouse button.
	MouseRight
	// MouseMiddle is the middle mouse button (scroll wheel click).
	MouseMiddle
	// MouseX1 is the first extra mouse button (back).
	MouseX1
	// MouseX2 is the second extra mouse button (forward).
	MouseX2
	// MouseButton6 is the sixth mouse button.
	MouseButton6
	// MouseButton7 is the seventh mouse button.
	MouseButton7
	// MouseButton8 is the eighth mouse button.
	MouseButton8
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	case MouseX1:
		return "x1"
	case MouseX2:
		return "x2"
	case MouseButton6:
		return "button6"
	case MouseButton7:
		return "button7"
	case MouseButton8:
		return "button8"
	default:
		return "unknown"
	}
}

// Mouse is the mouse-button variant of Button.
type Mouse MouseButton

func (Mouse) button() {}

// String returns the button name.
func (m Mouse) String() string {
	return MouseButton(m).String()
}

// ControllerButton identifies one button on one game controller.
type ControllerButton struct {
	// ID identifies the controller the button belongs to.
	ID int32

	// Button is the controller-local button number.
	Button uint8
}

// String returns a representation like "controller 0 button 3".
func (c ControllerButton) String() string {
	return fmt.Sprintf("controller %d button %d", c.ID, c.Button)
}

// Controller is the controller-button variant of Button.
type Controller ControllerButton

func (Controller) button() {}

// String returns a representation like "controller 0 button 3".
func (c Controller) String() string {
	return ControllerButton(c).String()
}
