// Package core defines the shared types used across tracelog.
//
// It provides the Level registry (a fixed, totally ordered list of
// severities with display icons), the Entry value that represents one
// logged record, the FieldKind and OrderSpec types that drive both
// renderings of an entry, and the indentation cursor with its pure
// Transition function.
//
// Entries are plain values. Once the write lane has built one it is never
// modified, so observers, console sinks and decoders may keep them without
// copying.
//
// Message text is assembled by BuildMessage from arbitrary items. A value
// renders itself through the Describer capability, error, or fmt.Stringer;
// absent values (nil, typed nil pointers, null Items) are replaced by the
// configured null placeholder.
package core
