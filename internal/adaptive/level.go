package adaptive

// Level is one of the four ordered difficulty levels a session moves
// through. Levels compare by their integer value.
type Level int

const (
	Beginner Level = iota
	Intermediate
	Senior
	HiringChallenge
)

// Levels lists all levels in ascending order of difficulty.
var Levels = []Level{Beginner, Intermediate, Senior, HiringChallenge}

var levelNames = map[Level]string{
	Beginner:        "Beginner",
	Intermediate:    "Intermediate",
	Senior:          "Senior",
	HiringChallenge: "Hiring Challenge",
}

// String returns the display name of the level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "Unknown"
}

// ParseLevel converts a display name back into a Level.
// Returns Beginner, false for unrecognized names.
func ParseLevel(name string) (Level, bool) {
	for l, n := range levelNames {
		if n == name {
			return l, true
		}
	}
	return Beginner, false
}

// clamp bounds l to the valid level range.
func clamp(l Level) Level {
	if l < Beginner {
		return Beginner
	}
	if l > HiringChallenge {
		return HiringChallenge
	}
	return l
}
