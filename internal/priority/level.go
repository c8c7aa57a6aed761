package priority

import "fmt"

// Level is a discrete urgency tier. Lower is more urgent.
type Level int

const (
	Critical Level = 0
	High     Level = 1
	Medium   Level = 2
	Low      Level = 3
	Minimal  Level = 4
)

// Levels lists every level from most to least urgent.
var Levels = []Level{Critical, High, Medium, Low, Minimal}

func (l Level) Valid() bool { return l >= Critical && l <= Minimal }

// String returns the upper-case English name used in audit text, e.g. "CRITICAL".
func (l Level) String() string {
	switch l {
	case Critical:
		return "CRITICAL"
	case High:
		return "HIGH"
	case Medium:
		return "MEDIUM"
	case Low:
		return "LOW"
	case Minimal:
		return "MINIMAL"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// Code returns the short form, e.g. "P0".
func (l Level) Code() string { return fmt.Sprintf("P%d", int(l)) }
