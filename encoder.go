package longform

import (
	"strconv"
	str "strings"
)

// Long form is a delta encoding of an output event log. A running previous
// value starts at 0; each event contributes the decimal magnitude of its
// delta from the previous value followed by '-' when the delta is negative
// and '+' otherwise (a zero delta encodes as "0+"). There are no separators,
// so the grammar of the result is exactly (<digits>('+'|'-'))*.

// Encode folds the event log into its long form. It is pure and total: an
// empty log encodes to the empty string.
func Encode(events []int) string {
	var sb str.Builder
	previous := 0

	for _, value := range events {
		delta := value - previous
		previous = value

		if delta < 0 {
			sb.WriteString(strconv.Itoa(-delta))
			sb.WriteRune('-')
		} else {
			sb.WriteString(strconv.Itoa(delta))
			sb.WriteRune('+')
		}
	}

	return sb.String()
}

// Decode replays a long form string back into the event log that produced
// it, applying each <digits>'+' / <digits>'-' token to a running total
// starting at 0. Decode(Encode(events)) == events for any event log. Input
// that doesn't match the long form grammar yields ok=false.
func Decode(compiled string) ([]int, bool) {
	events := []int{}
	total := 0
	digits := 0
	magnitude := 0

	for _, r := range compiled {
		switch {
		case r >= '0' && r <= '9':
			magnitude = magnitude*10 + int(r-'0')
			digits = digits + 1
		case r == '+' || r == '-':
			if digits == 0 {
				return nil, false
			}
			if r == '-' {
				total = total - magnitude
			} else {
				total = total + magnitude
			}
			events = append(events, total)
			digits = 0
			magnitude = 0
		default:
			return nil, false
		}
	}

	if digits != 0 {
		// Trailing digits with no sign terminator.
		return nil, false
	}

	return events, true
}
