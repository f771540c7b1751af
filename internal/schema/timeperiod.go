package schema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"template-validator/internal/document"
)

// ErrInvalidTimePeriod is wrapped by every ParseTimePeriod failure.
var ErrInvalidTimePeriod = errors.New("invalid time period")

var timePeriodUnits = []struct {
	key  string
	unit time.Duration
}{
	{"days", 24 * time.Hour},
	{"hours", time.Hour},
	{"minutes", time.Minute},
	{"seconds", time.Second},
	{"milliseconds", time.Millisecond},
}

// TimePeriodKeys are the keys accepted in the mapping form.
func TimePeriodKeys() []string {
	keys := make([]string, len(timePeriodUnits))
	for i, u := range timePeriodUnits {
		keys[i] = u.key
	}

	return keys
}

// ParseTimePeriod normalises the accepted time period representations to a
// single duration:
//
//	delay_on: 5                 # seconds
//	delay_on: "00:01:30"        # HH:MM[:SS[.fff]]
//	delay_on: {minutes: 1, seconds: 30}
func ParseTimePeriod(n *document.Node) (time.Duration, error) {
	if n == nil {
		return 0, fmt.Errorf("%w: null", ErrInvalidTimePeriod)
	}

	switch {
	case n.IsNumber():
		f, _ := n.Float()
		return seconds(f)

	case n.IsString():
		return parseTimePeriodString(n.Value)

	case n.Kind == document.KindMapping:
		return parseTimePeriodMapping(n)

	default:
		return 0, fmt.Errorf("%w: expected seconds, \"HH:MM:SS\" or a mapping, got %s", ErrInvalidTimePeriod, n.Describe())
	}
}

func seconds(f float64) (time.Duration, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v seconds", ErrInvalidTimePeriod, f)
	}

	return time.Duration(f * float64(time.Second)), nil
}

func parseTimePeriodString(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return seconds(f)
	}

	negative := strings.HasPrefix(s, "-")
	body := strings.TrimLeft(s, "+-")

	parts := strings.Split(body, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q is not HH:MM[:SS]", ErrInvalidTimePeriod, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: bad hours in %q", ErrInvalidTimePeriod, s)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: bad minutes in %q", ErrInvalidTimePeriod, s)
	}

	var secs float64
	if len(parts) == 3 {
		secs, err = strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: bad seconds in %q", ErrInvalidTimePeriod, s)
		}
	}

	d := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute +
		time.Duration(secs*float64(time.Second))
	if negative {
		d = -d
	}

	return d, nil
}

func parseTimePeriodMapping(n *document.Node) (time.Duration, error) {
	if len(n.Entries) == 0 {
		return 0, fmt.Errorf("%w: mapping needs at least one of %s", ErrInvalidTimePeriod, strings.Join(TimePeriodKeys(), ", "))
	}

	var total time.Duration

	for _, e := range n.Entries {
		unit, ok := periodUnit(e.Key)
		if !ok {
			return 0, fmt.Errorf("%w: unknown key %q, expected one of %s",
				ErrInvalidTimePeriod, e.Key, strings.Join(TimePeriodKeys(), ", "))
		}

		f, ok := e.Value.Float()
		if !ok {
			return 0, fmt.Errorf("%w: %s must be a number, got %s", ErrInvalidTimePeriod, e.Key, e.Value.Describe())
		}

		total += time.Duration(f * float64(unit))
	}

	return total, nil
}

func periodUnit(key string) (time.Duration, bool) {
	for _, u := range timePeriodUnits {
		if u.key == key {
			return u.unit, true
		}
	}

	return 0, false
}
