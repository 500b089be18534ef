package prof

import (
	"fmt"
	"io"
	"sync"
	"text/tabwriter"
	"time"
)

// Entry represents a single timing measurement.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track logs the duration since start under the given label.
// Typical use: defer prof.Track(time.Now(), "enumerate").
func Track(start time.Time, label string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: label, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns the collected timing entries and clears them.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}

// Fprint writes per-label totals in first-seen order.
func Fprint(w io.Writer, entries []Entry) {
	totals := make(map[string]time.Duration, len(entries))
	var order []string
	for _, e := range entries {
		if _, seen := totals[e.Label]; !seen {
			order = append(order, e.Label)
		}
		totals[e.Label] += e.Dur
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, label := range order {
		fmt.Fprintf(tw, "%s\t%v\n", label, totals[label])
	}
	tw.Flush()
}
