package model

const (
	DefaultFocusMinutes = 25
	DefaultBreakMinutes = 5
)

// Durations contains the configured length of each phase in minutes.
type Durations struct {
	FocusMinutes int
	BreakMinutes int
}

// DefaultDurations returns the durations a fresh timer starts with.
func DefaultDurations() Durations {
	return Durations{
		FocusMinutes: DefaultFocusMinutes,
		BreakMinutes: DefaultBreakMinutes,
	}
}

// FocusSeconds returns the focus phase length in seconds.
func (durations Durations) FocusSeconds() int {
	return durations.FocusMinutes * 60
}

// BreakSeconds returns the break phase length in seconds.
func (durations Durations) BreakSeconds() int {
	return durations.BreakMinutes * 60
}
