package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Duration is a time.Duration on the wire as seconds.
// It decodes from a number of seconds or a Go duration string ("1h30m").
type Duration time.Duration

// maxDurationSeconds is the first magnitude time.Duration cannot hold.
const maxDurationSeconds = float64(math.MaxInt64) / float64(time.Second)

// DurationFromSeconds converts seconds, rejecting values outside the
// roughly ±292 years a time.Duration holds.
func DurationFromSeconds(seconds float64) (Duration, error) {
	if math.IsNaN(seconds) || math.Abs(seconds) >= maxDurationSeconds {
		return 0, fmt.Errorf("duration of %g seconds is out of range", seconds)
	}
	return Duration(time.Duration(seconds * float64(time.Second))), nil
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var seconds float64
	if err := json.Unmarshal(data, &seconds); err == nil {
		parsed, err := DurationFromSeconds(seconds)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("duration must be seconds or a duration string")
	}

	return d.UnmarshalParam(raw)
}

// UnmarshalParam implements echo.BindUnmarshaler.
func (d *Duration) UnmarshalParam(param string) error {
	if seconds, err := strconv.ParseFloat(param, 64); err == nil {
		parsed, err := DurationFromSeconds(seconds)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	parsed, err := time.ParseDuration(param)
	if err != nil {
		return fmt.Errorf("invalid duration %q", param)
	}

	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Seconds())
}

// Seconds returns the duration as a floating point number of seconds.
func (d Duration) Seconds() float64 {
	return time.Duration(d).Seconds()
}

// TimeOfDay is a wall-clock time without a date, "HH:MM:SS[.fraction]".
type TimeOfDay struct {
	Hour, Minute, Second, Nanosecond int
}

var timeOfDayLayouts = []string{"15:04:05.999999999", "15:04:05", "15:04"}

// ParseTimeOfDay parses "HH:MM", "HH:MM:SS" or "HH:MM:SS.fff".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return TimeOfDay{
				Hour:       t.Hour(),
				Minute:     t.Minute(),
				Second:     t.Second(),
				Nanosecond: t.Nanosecond(),
			}, nil
		}
	}

	return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
}

func (t TimeOfDay) String() string {
	base := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond == 0 {
		return base
	}

	frac := strings.TrimRight(fmt.Sprintf("%09d", t.Nanosecond), "0")
	return base + "." + frac
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("time of day must be a string")
	}

	return t.UnmarshalParam(raw)
}

// UnmarshalParam implements echo.BindUnmarshaler.
func (t *TimeOfDay) UnmarshalParam(param string) error {
	parsed, err := ParseTimeOfDay(param)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
