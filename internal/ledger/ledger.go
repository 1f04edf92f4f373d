// Package ledger keeps a flat per-number report count used for ranking offenders.
package ledger

import "sort"

type Entry struct {
	Number string
	Count  int
}

// Ledger is not safe for concurrent use.
type Ledger struct {
	counts map[string]int
}

func New() *Ledger {
	return &Ledger{counts: make(map[string]int)}
}

// Increment records one report and returns the new count.
func (l *Ledger) Increment(number string) int {
	l.counts[number]++
	return l.counts[number]
}

func (l *Ledger) Count(number string) int {
	return l.counts[number]
}

func (l *Ledger) Len() int {
	return len(l.counts)
}

// Top returns at most n entries ordered by count descending.
// Equal counts are ordered by number ascending.
func (l *Ledger) Top(n int) []Entry {
	if n <= 0 || len(l.counts) == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(l.counts))
	for num, c := range l.counts {
		entries = append(entries, Entry{Number: num, Count: c})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Number < entries[j].Number
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
