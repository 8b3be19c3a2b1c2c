// Package convert converts loosely typed configuration values, as found in .env and toml files, into Go types.
package convert

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt tries to convert v into an int
func ToInt(v any) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

// ToBool tries to convert v into a bool. Strings other than the common spellings of true and false are rejected.
func ToBool(v any) (bool, bool) {
	switch v := v.(type) {
	case bool:
		return v, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "t", "on", "yes":
			return true, true
		case "false", "0", "f", "off", "no":
			return false, true
		default:
			return false, false
		}
	default:
		if n, ok := ToInt(v); ok {
			return n != 0, true
		}
		return false, false
	}
}

func ToString(v any) string {
	if str, ok := v.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%v", v)
}
