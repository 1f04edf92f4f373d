package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/console"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/metrics"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/platform/storage/csvfile"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/service"
)

func newSession(t *testing.T, user string) (*console.Session, *bytes.Buffer) {
	t.Helper()

	logger := zap.NewNop()
	repo, err := csvfile.NewCSVRepository(t.TempDir(), logger)
	require.NoError(t, err)

	svc, err := service.NewDetectorService(context.Background(), repo, service.Options{}, metrics.NewMetrics(prometheus.NewRegistry()), logger)
	require.NoError(t, err)

	var out bytes.Buffer
	return console.NewSession(svc, &out, user), &out
}

func TestSession_Check(t *testing.T) {
	cases := []struct {
		Name     string
		Line     string
		Expected []string
	}{
		{"likely spam lists reasons", "check 123-456-7890", []string{
			"1234567890 is likely spam!", "Reasons:", "Called 2 numbers", "Confidence: 80%",
		}},
		{"safe number", "check 0000000000", []string{"0000000000 appears to be safe.", "Confidence: 0%"}},
		{"multi-word suspicious phrase", "check 0000000000 call now", []string{"Confidence: 20%"}},
		{"missing number", "check", []string{"Input Error: Please enter the phone number."}},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			s, out := newSession(t, "")
			assert.False(t, s.Exec(context.Background(), tc.Line))
			for _, want := range tc.Expected {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestSession_ReportPromotesOnThird(t *testing.T) {
	s, out := newSession(t, "")
	ctx := context.Background()

	s.Exec(ctx, "report 555")
	s.Exec(ctx, "report 555")
	assert.Equal(t, 2, strings.Count(out.String(), "555 has been reported. It will be reviewed."))

	s.Exec(ctx, "report 555")
	assert.Contains(t, out.String(), "555 has been reported more than 3 times and added to the spam list.")

	out.Reset()
	s.Exec(ctx, "report 555")
	assert.Contains(t, out.String(), "It will be reviewed.")

	out.Reset()
	s.Exec(ctx, "check 555")
	assert.Contains(t, out.String(), "555 is already listed as spam.")

	out.Reset()
	s.Exec(ctx, "top")
	assert.Contains(t, out.String(), "555: 4 reports")
}

func TestSession_BlockFlow(t *testing.T) {
	s, out := newSession(t, "")
	ctx := context.Background()

	s.Exec(ctx, "block 111")
	assert.Contains(t, out.String(), "Please enter your phone number first")

	s.Exec(ctx, "user 999")
	out.Reset()

	s.Exec(ctx, "blocked")
	assert.Contains(t, out.String(), "You have not blocked any numbers yet.")

	s.Exec(ctx, "block 111")
	s.Exec(ctx, "block 111")
	assert.Contains(t, out.String(), "111 has been blocked.")
	assert.Contains(t, out.String(), "111 is already blocked.")

	out.Reset()
	s.Exec(ctx, "graph")
	assert.Contains(t, out.String(), `"999" -- "111";`)

	s.Exec(ctx, "unblock 111")
	out.Reset()
	s.Exec(ctx, "blocked")
	assert.Contains(t, out.String(), "You have not blocked any numbers yet.")
}

func TestSession_Run(t *testing.T) {
	s, out := newSession(t, "")

	in := strings.NewReader("help\nbogus\ntop\nquit\ncheck 1234567890\n")
	require.NoError(t, s.Run(context.Background(), in))

	assert.Contains(t, out.String(), "Suspicious words: win, prize, free, lottery, urgent, call now")
	assert.Contains(t, out.String(), "Commands:")
	assert.Contains(t, out.String(), `Unknown command "bogus"`)
	assert.Contains(t, out.String(), "No scam reports yet.")
	assert.NotContains(t, out.String(), "likely spam", "commands after quit are not run")
}

func TestSession_SpacedNumbers(t *testing.T) {
	s, out := newSession(t, "")
	ctx := context.Background()

	s.Exec(ctx, "user 999 000")
	assert.Contains(t, out.String(), "Current user: 999000")

	out.Reset()
	s.Exec(ctx, "report 555 0100")
	assert.Contains(t, out.String(), "5550100 has been reported. It will be reviewed.")

	out.Reset()
	s.Exec(ctx, "block 555 01-00")
	assert.Contains(t, out.String(), "5550100 has been blocked.")

	s.Exec(ctx, "block 555-0100")
	assert.Contains(t, out.String(), "5550100 is already blocked.")

	out.Reset()
	s.Exec(ctx, "blocked")
	assert.Equal(t, "Your blocked numbers:\n5550100\n", out.String())

	out.Reset()
	s.Exec(ctx, "unblock 555 0100")
	assert.Contains(t, out.String(), "5550100 has been unblocked.")

	out.Reset()
	s.Exec(ctx, "top")
	assert.Contains(t, out.String(), "5550100: 1 reports")
}

func TestSession_CheckSplitsNumberFromWord(t *testing.T) {
	cases := []struct {
		Name     string
		Line     string
		Expected []string
		Absent   []string
	}{
		{"spaced number without word", "check 123 456 7890", []string{"1234567890 is likely spam!", "Confidence: 80%"}, []string{"Suspicious word"}},
		{"spaced number then word", "check 000 000 0000 win", []string{"0000000000 appears to be safe.", "Confidence: 20%"}, nil},
		{"explicit separator", "check 000 000 0000 -- call now", []string{"0000000000 appears to be safe.", "Confidence: 20%"}, nil},
		{"separator before letters in number", "check 1-800-FLOWERS -- free", []string{"1800FLOWERS appears to be safe.", "Confidence: 20%"}, nil},
		{"separator with no number", "check -- win", []string{"Input Error: Please enter the phone number."}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			s, out := newSession(t, "")
			s.Exec(context.Background(), tc.Line)
			for _, want := range tc.Expected {
				assert.Contains(t, out.String(), want)
			}
			for _, absent := range tc.Absent {
				assert.NotContains(t, out.String(), absent)
			}
		})
	}
}
