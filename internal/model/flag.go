package model

import (
	"fmt"
	"strings"
)

// Flag is a boolean that binds from the spellings browsers and people use:
// 1/0, true/false, on/off, yes/no, in any case.
type Flag bool

// UnmarshalParam implements echo.BindUnmarshaler.
func (f *Flag) UnmarshalParam(param string) error {
	switch strings.ToLower(strings.TrimSpace(param)) {
	case "1", "true", "on", "yes", "y", "t":
		*f = true
	case "0", "false", "off", "no", "n", "f":
		*f = false
	default:
		return fmt.Errorf("%q is not a valid boolean", param)
	}

	return nil
}

// Bool returns the plain value.
func (f Flag) Bool() bool {
	return bool(f)
}
