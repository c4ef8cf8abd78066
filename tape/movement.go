package tape

import "fmt"

// Movement is a head displacement.
type Movement int

const (
	Left  Movement = -1
	Stop  Movement = 0
	Right Movement = 1
)

func (m Movement) String() string {
	s, ok := map[Movement]string{
		Left:  "left",
		Stop:  "stop",
		Right: "right",
	}[m]
	if ok {
		return s
	}
	return "<unknown movement>"
}

func (m Movement) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Movement) UnmarshalText(d []byte) error {
	mm, ok := map[string]Movement{
		"left":  Left,
		"l":     Left,
		"stop":  Stop,
		"s":     Stop,
		"right": Right,
		"r":     Right,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unknown movement %q", string(d))
	}
	*m = mm
	return nil
}
