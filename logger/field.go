package logger

import (
	"time"

	"github.com/Philipp01105/tracelog/core"
)

// Item helper functions for convenience. Any value can be logged
// directly; these constructors avoid boxing for the common kinds.

// String creates a string item
func String(val string) core.Item {
	return core.Item{Type: core.StringType, Str: val}
}

// Int creates an int item
func Int(val int) core.Item {
	return core.Item{Type: core.IntType, Int64: int64(val)}
}

// Int64 creates an int64 item
func Int64(val int64) core.Item {
	return core.Item{Type: core.Int64Type, Int64: val}
}

// Float64 creates a float64 item
func Float64(val float64) core.Item {
	return core.Item{Type: core.Float64Type, Float64: val}
}

// Bool creates a bool item
func Bool(val bool) core.Item {
	int64Val := int64(0)
	if val {
		int64Val = 1
	}
	return core.Item{Type: core.BoolType, Int64: int64Val}
}

// Time creates a time item
func Time(val time.Time) core.Item {
	return core.Item{Type: core.TimeType, Int64: val.UnixNano()}
}

// Duration creates a duration item
func Duration(val time.Duration) core.Item {
	return core.Item{Type: core.DurationType, Int64: int64(val)}
}

// Err creates an error item. A nil error is logged as the null
// placeholder.
func Err(err error) core.Item {
	if err == nil {
		return Null()
	}
	return core.Item{Type: core.ErrorType, Str: err.Error()}
}

// Any creates an item with any value
func Any(val interface{}) core.Item {
	return core.Item{Type: core.AnyType, Any: val}
}

// Null creates an absent item, logged as the null placeholder
func Null() core.Item {
	return core.Item{Type: core.NullType}
}

// Optional returns an item for *val, or Null when val is nil.
func Optional[T any](val *T) core.Item {
	if val == nil {
		return Null()
	}
	return Any(*val)
}
