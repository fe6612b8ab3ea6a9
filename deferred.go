package riff

// DeferredString is a string whose value may still be computing in the
// background. Get blocks until the value is ready; an already-known value
// (FromValue) never blocks at all. This lets the stream driver hand off
// each hunk's refinement to a worker pool while still writing results to
// stdout in the same order the hunks arrived.
type DeferredString struct {
	value string
	ready chan struct{}
}

// FromValue wraps an already-computed string in a DeferredString. Get
// returns it immediately.
func FromValue(value string) *DeferredString {
	d := &DeferredString{value: value, ready: make(chan struct{})}
	close(d.ready)
	return d
}

// FromPair submits the refinement of oldText against newText to pool and
// returns a DeferredString that resolves once that job completes. The
// returned value is the concatenation of Format(oldText, newText)'s lines,
// each followed by a newline.
func FromPair(pool *Pool, oldText, newText string) *DeferredString {
	d := &DeferredString{ready: make(chan struct{})}
	pool.Submit(func() {
		d.value = joinFormattedLines(Format(oldText, newText))
		close(d.ready)
	})
	return d
}

// FromPairWithStyles is FromPair generalized over line styles and prefixes,
// for pairings that aren't the ordinary red-minus/green-plus diff - a
// conflict block's old-vs-base or base-vs-new sections, for instance.
func FromPairWithStyles(pool *Pool, oldText, newText string, oldLS, newLS LineStyle, oldPrefix, newPrefix string) *DeferredString {
	d := &DeferredString{ready: make(chan struct{})}
	pool.Submit(func() {
		d.value = joinFormattedLines(FormatWithStyles(oldText, newText, oldLS, newLS, oldPrefix, newPrefix))
		close(d.ready)
	})
	return d
}

func joinFormattedLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	total := 0
	for _, l := range lines {
		total += len(l) + 1
	}
	out := make([]byte, 0, total)
	for _, l := range lines {
		out = append(out, l...)
		out = append(out, '\n')
	}
	return string(out)
}

// Get blocks until the value is ready, then returns it. Safe to call more
// than once; later calls return instantly.
func (d *DeferredString) Get() string {
	<-d.ready
	return d.value
}

// IsEmpty blocks until the value is ready, then reports whether it is the
// empty string.
func (d *DeferredString) IsEmpty() bool {
	return d.Get() == ""
}

// isReady reports whether Get would return without blocking.
func (d *DeferredString) isReady() bool {
	select {
	case <-d.ready:
		return true
	default:
		return false
	}
}
