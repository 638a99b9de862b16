package core

// IndentDirective tells the write lane how to move the indent cursor
// around a record.
type IndentDirective uint8

const (
	// IndentNone leaves the cursor untouched
	IndentNone IndentDirective = iota
	// IndentIncrease moves the cursor one unit deeper after the record is built
	IndentIncrease
	// IndentDecrease moves the cursor one unit back before the record is built
	IndentDecrease
	// IndentReset clears the cursor before the record is built
	IndentReset
)

// String returns the directive name
func (d IndentDirective) String() string {
	switch d {
	case IndentNone:
		return "none"
	case IndentIncrease:
		return "increase"
	case IndentDecrease:
		return "decrease"
	case IndentReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Before reports whether the directive applies before the record is built.
func (d IndentDirective) Before() bool {
	return d == IndentDecrease || d == IndentReset
}

// After reports whether the directive applies after the record is built.
func (d IndentDirective) After() bool {
	return d == IndentIncrease
}

// Transition returns the depth that results from applying d at depth.
// Decreasing at depth zero behaves like a reset.
func Transition(depth int, d IndentDirective) int {
	switch d {
	case IndentIncrease:
		return depth + 1
	case IndentDecrease:
		if depth > 0 {
			return depth - 1
		}
		return 0
	case IndentReset:
		return 0
	default:
		return depth
	}
}

// Indent is the indentation cursor. It is not safe for concurrent use;
// the write lane is its only owner.
type Indent struct {
	depth int
}

// Depth returns the current depth in indent units.
func (i *Indent) Depth() int {
	return i.depth
}

// Increase moves the cursor one unit deeper.
func (i *Indent) Increase() {
	i.depth = Transition(i.depth, IndentIncrease)
}

// Decrease moves the cursor one unit back, stopping at zero.
func (i *Indent) Decrease() {
	i.depth = Transition(i.depth, IndentDecrease)
}

// Reset clears the cursor.
func (i *Indent) Reset() {
	i.depth = 0
}

// SetAbsolute sets the depth directly; negative values clear it.
func (i *Indent) SetAbsolute(n int) {
	i.depth = max(n, 0)
}

// Apply applies a directive.
func (i *Indent) Apply(d IndentDirective) {
	i.depth = Transition(i.depth, d)
}
