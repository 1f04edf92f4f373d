// Package scoring combines independent heuristics into a spam verdict.
package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/domain"
)

const (
	// SpamThreshold is the total score at which a number is judged likely spam.
	SpamThreshold = 3.0

	// MinReports is the tree count at which the frequency signal activates.
	MinReports = 3

	// MinFanOut is how many outgoing calls activate the graph signal.
	MinFanOut = 2
)

// Lookups exposes the mutable state the engine reads but does not own.
type Lookups interface {
	// ReportCount returns the frequency tree count for number, 0 if never reported.
	ReportCount(number string) int
	InRegistry(number string) bool
}

type candidate struct {
	number string
	word   string
}

// signal returns its contribution and reason, and whether it activated.
type signal func(e *Engine, c candidate, lk Lookups) (float64, string, bool)

// Signals run in this order and every one of them is evaluated.
var signals = []signal{
	suspiciousWord,
	reportFrequency,
	graphFanOut,
	topReports,
	scoreTable,
	registryMember,
}

type Engine struct {
	fixtures Fixtures
	words    map[string]struct{}
	top      map[string]struct{}
}

// NewEngine builds an engine over the given fixtures. A nil words slice
// falls back to DefaultSuspiciousWords.
func NewEngine(fx Fixtures, words []string) *Engine {
	if words == nil {
		words = DefaultSuspiciousWords
	}

	e := &Engine{
		fixtures: fx,
		words:    make(map[string]struct{}, len(words)),
		top:      make(map[string]struct{}, len(fx.TopReports)),
	}
	for _, w := range words {
		e.words[strings.ToLower(w)] = struct{}{}
	}
	for _, r := range fx.TopReports {
		e.top[r.Number] = struct{}{}
	}
	return e
}

// Evaluate scores number. Registry members short-circuit to a confirmed
// verdict; otherwise all signals are summed.
func (e *Engine) Evaluate(number, word string, lk Lookups) domain.Assessment {
	if lk.InRegistry(number) {
		return domain.Assessment{
			PhoneNumber: number,
			Verdict:     domain.VerdictConfirmedSpam,
			Score:       0,
			Confidence:  100,
			Reasons:     []string{},
		}
	}

	c := candidate{number: number, word: strings.ToLower(strings.TrimSpace(word))}

	total := 0.0
	reasons := []string{}
	for _, s := range signals {
		if score, reason, ok := s(e, c, lk); ok {
			total += score
			reasons = append(reasons, reason)
		}
	}

	verdict := domain.VerdictSafe
	if total >= SpamThreshold {
		verdict = domain.VerdictLikelySpam
	}

	return domain.Assessment{
		PhoneNumber: number,
		Verdict:     verdict,
		Score:       total,
		Confidence:  Confidence(total),
		Reasons:     reasons,
	}
}

// Confidence maps a score onto a 0-100 scale.
func Confidence(total float64) int {
	return int(math.Min(total*20, 100))
}

func suspiciousWord(e *Engine, c candidate, _ Lookups) (float64, string, bool) {
	if c.word == "" {
		return 0, "", false
	}
	if _, ok := e.words[c.word]; !ok {
		return 0, "", false
	}
	return 1, fmt.Sprintf("Suspicious word '%s' detected", c.word), true
}

func reportFrequency(_ *Engine, c candidate, lk Lookups) (float64, string, bool) {
	count := lk.ReportCount(c.number)
	if count < MinReports {
		return 0, "", false
	}
	return float64(count) / 2, fmt.Sprintf("Reported %d times", count), true
}

func graphFanOut(e *Engine, c candidate, _ Lookups) (float64, string, bool) {
	calls := len(e.fixtures.Graph[c.number])
	if calls < MinFanOut {
		return 0, "", false
	}
	return float64(calls) / 2, fmt.Sprintf("Called %d numbers", calls), true
}

func topReports(e *Engine, c candidate, _ Lookups) (float64, string, bool) {
	if _, ok := e.top[c.number]; !ok {
		return 0, "", false
	}
	return 2, "Listed in top spam reports", true
}

func scoreTable(e *Engine, c candidate, _ Lookups) (float64, string, bool) {
	if _, ok := e.fixtures.ScoreTable[c.number]; !ok {
		return 0, "", false
	}
	return 1, "Found in spam score table", true
}

// registryMember is unreachable while Evaluate short-circuits on registry members.
func registryMember(_ *Engine, c candidate, lk Lookups) (float64, string, bool) {
	if !lk.InRegistry(c.number) {
		return 0, "", false
	}
	return 2, "Reported in real-world spam dataset", true
}
