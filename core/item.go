package core

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Describer is implemented by values that know how to render themselves
// into a log message.
type Describer interface {
	Describe() string
}

// ItemType represents the type of an item value
type ItemType uint8

const (
	NullType ItemType = iota
	StringType
	IntType
	Int64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	AnyType
)

// Item is a typed message part. Numeric kinds are stored unboxed.
type Item struct {
	Type    ItemType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// Describe implements Describer. Null items render as "" and are replaced
// by the null placeholder when a message is built.
func (it Item) Describe() string {
	switch it.Type {
	case StringType:
		return it.Str
	case IntType, Int64Type:
		return strconv.FormatInt(it.Int64, 10)
	case Float64Type:
		return strconv.FormatFloat(it.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(it.Int64 == 1)
	case TimeType:
		return time.Unix(0, it.Int64).Format(time.RFC3339Nano)
	case DurationType:
		return time.Duration(it.Int64).String()
	case ErrorType:
		return it.Str
	case AnyType:
		return fmt.Sprintf("%v", it.Any)
	default:
		return ""
	}
}

// IsNull reports whether v stands for an absent value: nil, a typed nil
// pointer, map, slice, func, chan or interface, or a null Item.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	if it, ok := v.(Item); ok {
		return it.Type == NullType || (it.Type == AnyType && IsNull(it.Any))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// Describe renders a single value. Values are asked for their own text in
// this order: Describer, error, fmt.Stringer, then plain strings and
// numbers; anything else falls back to fmt's %v.
func Describe(v any) string {
	switch x := v.(type) {
	case Describer:
		return x.Describe()
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}
