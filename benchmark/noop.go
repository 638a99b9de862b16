package benchmark

import (
	"sync/atomic"

	"github.com/Philipp01105/tracelog/core"
)

// countingObserver counts entries and keeps nothing.
type countingObserver struct {
	n atomic.Int64
}

func (o *countingObserver) Observe(e core.Entry) {
	_ = len(e.Message)
	o.n.Add(1)
}
