package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

type Direction uint8

// Zero value is left invalid so an unset direction never
// passes ship validation.
const (
	DirectionInvalid Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

var directionNames = map[Direction]string{
	DirectionUp:    "Up",
	DirectionDown:  "Down",
	DirectionLeft:  "Left",
	DirectionRight: "Right",
}

func ParseDirection(s string) (Direction, error) {
	name := strings.TrimSpace(s)
	for d, n := range directionNames {
		if strings.EqualFold(n, name) {
			return d, nil
		}
	}
	return DirectionInvalid, cerr.ErrDirectionInvalid(s)
}

func (d Direction) IsValid() bool {
	_, prs := directionNames[d]
	return prs
}

func (d Direction) String() string {
	if name, prs := directionNames[d]; prs {
		return name
	}
	return "Invalid"
}

func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, cerr.ErrDirectionInvalid(d.String())
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// (row, col) delta of a single step.
func (d Direction) step() (int, int) {
	switch d {
	case DirectionUp:
		return -1, 0
	case DirectionDown:
		return 1, 0
	case DirectionLeft:
		return 0, -1
	case DirectionRight:
		return 0, 1
	default:
		return 0, 0
	}
}
