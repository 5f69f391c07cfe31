package model

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinFocusMinutes  = 5
	MaxFocusMinutes  = 60
	FocusStepMinutes = 5

	MinBreakMinutes  = 1
	MaxBreakMinutes  = 15
	BreakStepMinutes = 1
)

// ErrInvalidDirection indicates an adjust direction other than increase or decrease.
var ErrInvalidDirection = errors.New("invalid adjust direction")

// Direction selects which way a duration is stepped.
type Direction string

const (
	Increase Direction = "increase"
	Decrease Direction = "decrease"
)

// ParseDirection converts user input into a Direction.
func ParseDirection(value string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "increase", "inc", "up", "+":
		return Increase, nil
	case "decrease", "dec", "down", "-":
		return Decrease, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, value)
	}
}

func IncrementFocus(current int) int {
	return min(MaxFocusMinutes, current+FocusStepMinutes)
}

func DecrementFocus(current int) int {
	return max(MinFocusMinutes, current-FocusStepMinutes)
}

func IncrementBreak(current int) int {
	return min(MaxBreakMinutes, current+BreakStepMinutes)
}

func DecrementBreak(current int) int {
	return max(MinBreakMinutes, current-BreakStepMinutes)
}

// StepFocus applies IncrementFocus or DecrementFocus. Unknown directions leave
// the value unchanged.
func StepFocus(current int, direction Direction) int {
	switch direction {
	case Increase:
		return IncrementFocus(current)
	case Decrease:
		return DecrementFocus(current)
	default:
		return current
	}
}

// StepBreak applies IncrementBreak or DecrementBreak. Unknown directions leave
// the value unchanged.
func StepBreak(current int, direction Direction) int {
	switch direction {
	case Increase:
		return IncrementBreak(current)
	case Decrease:
		return DecrementBreak(current)
	default:
		return current
	}
}
