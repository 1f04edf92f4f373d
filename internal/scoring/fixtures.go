package scoring

// RankedNumber is an entry of the precomputed top spam list.
type RankedNumber struct {
	Score  int
	Number string
}

// Fixtures are the static lookup tables consulted by the signals.
type Fixtures struct {
	// Graph maps a number to the numbers it called.
	Graph map[string][]string

	// TopReports is ordered by Score descending.
	TopReports []RankedNumber

	ScoreTable map[string]int
}

// DefaultSuspiciousWords are matched against the lower-cased word typed by the user.
var DefaultSuspiciousWords = []string{"win", "prize", "free", "lottery", "urgent", "call now"}

// DefaultFixtures returns the demo data set.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Graph: map[string][]string{
			"1234567890": {"111", "222"},
		},
		TopReports: []RankedNumber{
			{Score: 10, Number: "1234567890"},
		},
		ScoreTable: map[string]int{
			"1234567890": 3,
		},
	}
}
