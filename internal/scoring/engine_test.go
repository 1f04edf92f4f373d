package scoring_test

import (
	"testing"

	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/domain"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/scoring"
	"github.com/stretchr/testify/assert"
)

type fakeLookups struct {
	counts   map[string]int
	registry map[string]bool
}

func (f fakeLookups) ReportCount(number string) int { return f.counts[number] }
func (f fakeLookups) InRegistry(number string) bool { return f.registry[number] }

func TestEvaluate(t *testing.T) {
	cases := []struct {
		Name            string
		Number          string
		Word            string
		Counts          map[string]int
		Registry        map[string]bool
		ExpectedVerdict domain.Verdict
		ExpectedScore   float64
		ExpectedConf    int
		ExpectedReasons []string
	}{
		{
			Name:            "1. Fixture number without word",
			Number:          "1234567890",
			ExpectedVerdict: domain.VerdictLikelySpam,
			ExpectedScore:   4.0,
			ExpectedConf:    80,
			ExpectedReasons: []string{
				"Called 2 numbers",
				"Listed in top spam reports",
				"Found in spam score table",
			},
		},
		{
			Name:            "2. Unknown number is safe",
			Number:          "0000000000",
			ExpectedVerdict: domain.VerdictSafe,
			ExpectedScore:   0,
			ExpectedConf:    0,
			ExpectedReasons: []string{},
		},
		{
			Name:            "3. Suspicious word alone is not enough",
			Number:          "0000000000",
			Word:            "  WIN ",
			ExpectedVerdict: domain.VerdictSafe,
			ExpectedScore:   1,
			ExpectedConf:    20,
			ExpectedReasons: []string{"Suspicious word 'win' detected"},
		},
		{
			Name:            "4. Multi-word phrase matches",
			Number:          "0000000000",
			Word:            "Call Now",
			ExpectedVerdict: domain.VerdictSafe,
			ExpectedScore:   1,
			ExpectedConf:    20,
			ExpectedReasons: []string{"Suspicious word 'call now' detected"},
		},
		{
			Name:            "5. Unknown word is ignored",
			Number:          "0000000000",
			Word:            "hello",
			ExpectedVerdict: domain.VerdictSafe,
			ExpectedScore:   0,
			ExpectedReasons: []string{},
		},
		{
			Name:            "6. Two reports do not trigger frequency",
			Number:          "555",
			Counts:          map[string]int{"555": 2},
			ExpectedVerdict: domain.VerdictSafe,
			ExpectedScore:   0,
			ExpectedReasons: []string{},
		},
		{
			Name:            "7. Three reports contribute half their count",
			Number:          "555",
			Counts:          map[string]int{"555": 3},
			ExpectedVerdict: domain.VerdictSafe,
			ExpectedScore:   1.5,
			ExpectedConf:    30,
			ExpectedReasons: []string{"Reported 3 times"},
		},
		{
			Name:            "8. Word and frequency stack",
			Number:          "555",
			Word:            "prize",
			Counts:          map[string]int{"555": 4},
			ExpectedVerdict: domain.VerdictLikelySpam,
			ExpectedScore:   3,
			ExpectedConf:    60,
			ExpectedReasons: []string{"Suspicious word 'prize' detected", "Reported 4 times"},
		},
		{
			Name:            "9. Every non-registry signal fires and confidence caps",
			Number:          "1234567890",
			Word:            "lottery",
			Counts:          map[string]int{"1234567890": 10},
			ExpectedVerdict: domain.VerdictLikelySpam,
			ExpectedScore:   10,
			ExpectedConf:    100,
			ExpectedReasons: []string{
				"Suspicious word 'lottery' detected",
				"Reported 10 times",
				"Called 2 numbers",
				"Listed in top spam reports",
				"Found in spam score table",
			},
		},
		{
			Name:            "10. Registry member short-circuits",
			Number:          "0000000000",
			Word:            "free",
			Registry:        map[string]bool{"0000000000": true},
			ExpectedVerdict: domain.VerdictConfirmedSpam,
			ExpectedScore:   0,
			ExpectedConf:    100,
			ExpectedReasons: []string{},
		},
	}

	engine := scoring.NewEngine(scoring.DefaultFixtures(), nil)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			got := engine.Evaluate(tc.Number, tc.Word, fakeLookups{counts: tc.Counts, registry: tc.Registry})

			assert.Equal(t, tc.Number, got.PhoneNumber)
			assert.Equal(t, tc.ExpectedVerdict, got.Verdict)
			assert.InDelta(t, tc.ExpectedScore, got.Score, 0.0001)
			assert.Equal(t, tc.ExpectedConf, got.Confidence)
			assert.Equal(t, tc.ExpectedReasons, got.Reasons)
		})
	}
}

func TestEvaluate_CustomFixtures(t *testing.T) {
	fx := scoring.Fixtures{
		Graph: map[string][]string{"777": {"1"}, "888": {"1", "2", "3"}},
	}
	engine := scoring.NewEngine(fx, []string{"Bitcoin"})
	lk := fakeLookups{}

	single := engine.Evaluate("777", "", lk)
	assert.Equal(t, 0.0, single.Score, "one outgoing call is below the fan-out threshold")

	fan := engine.Evaluate("888", "bitcoin", lk)
	assert.InDelta(t, 2.5, fan.Score, 0.0001)
	assert.Equal(t, []string{"Suspicious word 'bitcoin' detected", "Called 3 numbers"}, fan.Reasons)
	assert.Equal(t, domain.VerdictSafe, fan.Verdict)
}

func TestConfidence(t *testing.T) {
	assert.Equal(t, 0, scoring.Confidence(0))
	assert.Equal(t, 30, scoring.Confidence(1.5))
	assert.Equal(t, 100, scoring.Confidence(5))
	assert.Equal(t, 100, scoring.Confidence(42))
}
