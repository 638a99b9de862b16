package core

import (
	"fmt"
	"strings"
)

// FieldKind identifies one renderable piece of an Entry.
type FieldKind uint8

const (
	FieldSerial FieldKind = iota
	FieldDate
	// FieldFile is the basename of the source file
	FieldFile
	// FieldFilePath is the full source path
	FieldFilePath
	FieldLine
	FieldSender
	FieldFunction
	FieldGroup
	FieldLevel
	FieldMessage
	FieldDash
	FieldSpace
	// FieldAll stands for the default order when it appears in a spec
	FieldAll
)

var fieldKindNames = [...]string{
	FieldSerial:   "serial",
	FieldDate:     "date",
	FieldFile:     "file",
	FieldFilePath: "filepath",
	FieldLine:     "line",
	FieldSender:   "sender",
	FieldFunction: "function",
	FieldGroup:    "group",
	FieldLevel:    "level",
	FieldMessage:  "message",
	FieldDash:     "dash",
	FieldSpace:    "space",
	FieldAll:      "all",
}

// String returns the kind name
func (k FieldKind) String() string {
	if int(k) < len(fieldKindNames) {
		return fieldKindNames[k]
	}
	return "unknown"
}

// Literal reports whether the kind renders a fixed marker instead of an
// Entry attribute.
func (k FieldKind) Literal() bool {
	return k == FieldDash || k == FieldSpace
}

// ParseFieldKind converts a kind name to a FieldKind.
func ParseFieldKind(s string) (FieldKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range fieldKindNames {
		if n == name {
			return FieldKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown field kind %q", s)
}

// OrderSpec is an ordered list of field kinds. Duplicates and omissions
// are both allowed.
type OrderSpec []FieldKind

// DefaultOrder returns the order used for empty or "all" specs.
func DefaultOrder() OrderSpec {
	return OrderSpec{FieldSerial, FieldDate, FieldFile, FieldLine, FieldSender, FieldGroup, FieldLevel, FieldMessage}
}

// Resolve returns the default order when o is empty or contains FieldAll,
// and o otherwise.
func (o OrderSpec) Resolve() OrderSpec {
	if len(o) == 0 || o.Contains(FieldAll) {
		return DefaultOrder()
	}
	return o
}

// Contains reports whether k appears in the spec.
func (o OrderSpec) Contains(k FieldKind) bool {
	return o.Index(k) >= 0
}

// Index returns the position of the first occurrence of k, or -1.
func (o OrderSpec) Index(k FieldKind) int {
	for i, kk := range o {
		if kk == k {
			return i
		}
	}
	return -1
}

// String renders the spec as a comma separated list of kind names.
func (o OrderSpec) String() string {
	names := make([]string, len(o))
	for i, k := range o {
		names[i] = k.String()
	}
	return strings.Join(names, ",")
}

// ParseOrder parses kind names. Unknown names are reported together with
// the kinds that did parse.
func ParseOrder(names []string) (OrderSpec, error) {
	out := make(OrderSpec, 0, len(names))
	var bad []string
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		k, err := ParseFieldKind(n)
		if err != nil {
			bad = append(bad, n)
			continue
		}
		out = append(out, k)
	}
	if len(bad) > 0 {
		return out, fmt.Errorf("unknown field kinds: %s", strings.Join(bad, ", "))
	}
	return out, nil
}
