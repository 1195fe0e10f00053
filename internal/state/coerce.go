package state

import (
	"math"
	"strconv"
	"strings"
)

// CoerceInt converts a decoded JSON value to an int. Floats are truncated and
// saturate at the int32 bounds, numeric strings are parsed. Booleans, null,
// NaN, infinities and everything else are rejected.
func CoerceInt(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(math.Max(math.Min(v, math.MaxInt32), math.MinInt32)), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// CoerceFloat converts a decoded JSON value to a float64.
func CoerceFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func coerceString(value any) string {
	s, _ := value.(string)
	return strings.ToLower(strings.TrimSpace(s))
}
