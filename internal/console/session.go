// Package console is the interactive, single-user front end of the detector.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/domain"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/scoring"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/service"
)

const helpText = `Commands:
  user <your number>        set the number that owns the block list
  check <number> [word...]  check a number, optionally with a suspicious word
                            (put "--" before the word if the number has letters)
  report <number>           report a number as a scam
  block <number>            block a number for the current user
  unblock <number>          unblock a number for the current user
  blocked                   list your blocked numbers
  graph                     print your blocked numbers as a Graphviz graph
  top                       show the top reported scam numbers
  help                      show this help
  quit                      exit
`

type Session struct {
	svc  service.Service
	out  io.Writer
	user string
}

func NewSession(svc service.Service, out io.Writer, user string) *Session {
	return &Session{svc: svc, out: out, user: user}
}

// Run reads commands from in until EOF or quit.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintf(s.out, "Real-Time Spam Call Detector\nSuspicious words: %s\nType 'help' for commands.\n",
		strings.Join(scoring.DefaultSuspiciousWords, ", "))

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(s.out)
			return sc.Err()
		}
		if quit := s.Exec(ctx, sc.Text()); quit {
			return nil
		}
	}
}

// Exec runs one command line and returns true when the session should end.
func (s *Session) Exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprint(s.out, helpText)
	case "user":
		s.user = s.svc.NormalizeNumber(joinNumber(args))
		fmt.Fprintf(s.out, "Current user: %s\n", s.user)
	case "check":
		err = s.check(ctx, args)
	case "report":
		err = s.report(ctx, args)
	case "block":
		err = s.block(ctx, args)
	case "unblock":
		err = s.unblock(ctx, args)
	case "blocked":
		err = s.listBlocked(ctx)
	case "graph":
		err = s.graph(ctx)
	case "top":
		err = s.top(ctx)
	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type 'help' for commands.\n", cmd)
	}

	if err != nil {
		s.printError(err)
	}
	return false
}

func (s *Session) check(ctx context.Context, args []string) error {
	number, word := splitCheckArgs(args)

	a, err := s.svc.Check(ctx, number, word)
	if err != nil {
		return err
	}

	switch a.Verdict {
	case domain.VerdictConfirmedSpam:
		fmt.Fprintf(s.out, "⚠ %s is already listed as spam.\n", a.PhoneNumber)
	case domain.VerdictLikelySpam:
		fmt.Fprintf(s.out, "⚠ %s is likely spam!\n\nReasons:\n%s\n", a.PhoneNumber, strings.Join(a.Reasons, "\n"))
	default:
		fmt.Fprintf(s.out, "✔ %s appears to be safe.\n", a.PhoneNumber)
	}
	fmt.Fprintf(s.out, "Confidence: %d%%\n", a.Confidence)
	return nil
}

func (s *Session) report(ctx context.Context, args []string) error {
	r, err := s.svc.Report(ctx, joinNumber(args))
	if err != nil {
		return err
	}

	if r.Promoted {
		fmt.Fprintf(s.out, "%s has been reported more than 3 times and added to the spam list.\n", r.PhoneNumber)
	} else {
		fmt.Fprintf(s.out, "%s has been reported. It will be reviewed.\n", r.PhoneNumber)
	}
	return nil
}

func (s *Session) block(ctx context.Context, args []string) error {
	number := s.svc.NormalizeNumber(joinNumber(args))

	added, err := s.svc.Block(ctx, s.user, number)
	if err != nil {
		return err
	}

	if added {
		fmt.Fprintf(s.out, "%s has been blocked.\n", number)
	} else {
		fmt.Fprintf(s.out, "%s is already blocked.\n", number)
	}
	return nil
}

func (s *Session) unblock(ctx context.Context, args []string) error {
	number := s.svc.NormalizeNumber(joinNumber(args))

	if err := s.svc.Unblock(ctx, s.user, number); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "%s has been unblocked.\n", number)
	return nil
}

func (s *Session) listBlocked(ctx context.Context) error {
	blocked, err := s.svc.ListBlocked(ctx, s.user)
	if err != nil {
		return err
	}

	if len(blocked) == 0 {
		fmt.Fprintln(s.out, "You have not blocked any numbers yet.")
		return nil
	}
	fmt.Fprintf(s.out, "Your blocked numbers:\n%s\n", strings.Join(blocked, "\n"))
	return nil
}

func (s *Session) graph(ctx context.Context) error {
	g, err := s.svc.BlockGraph(ctx, s.user)
	if err != nil {
		return err
	}

	fmt.Fprint(s.out, g.DOT())
	return nil
}

func (s *Session) top(ctx context.Context) error {
	top, err := s.svc.TopSpam(ctx, service.DefaultTopLimit)
	if err != nil {
		return err
	}

	if len(top) == 0 {
		fmt.Fprintln(s.out, "No scam reports yet.")
		return nil
	}

	fmt.Fprintln(s.out, "Top reported scam numbers:")
	fmt.Fprintln(s.out)
	for _, r := range top {
		fmt.Fprintf(s.out, "%s: %d reports\n", r.PhoneNumber, r.Reports)
	}
	return nil
}

func (s *Session) printError(err error) {
	switch {
	case errors.Is(err, domain.ErrMissingUser):
		fmt.Fprintln(s.out, "Input Error: Please enter your phone number first (user <number>).")
	case errors.Is(err, domain.ErrMissingNumber):
		fmt.Fprintln(s.out, "Input Error: Please enter the phone number.")
	case errors.Is(err, domain.ErrInvalidNumber):
		fmt.Fprintf(s.out, "Input Error: %v\n", err)
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

// joinNumber glues a number typed with spaces back together.
func joinNumber(args []string) string {
	return strings.Join(args, "")
}

// splitCheckArgs separates the number from the optional suspicious word.
// Everything before "--" is the number; without "--" the number is the
// leading run of digit groups, or the first token if it is not numeric.
func splitCheckArgs(args []string) (string, string) {
	if i := slices.Index(args, "--"); i >= 0 {
		return joinNumber(args[:i]), strings.Join(args[i+1:], " ")
	}

	n := 0
	for n < len(args) && isNumberPart(args[n]) {
		n++
	}
	if n == 0 && len(args) > 0 {
		n = 1
	}
	return joinNumber(args[:n]), strings.Join(args[n:], " ")
}

func isNumberPart(tok string) bool {
	for _, r := range tok {
		if !unicode.IsDigit(r) && r != '+' && r != '-' {
			return false
		}
	}
	return tok != ""
}
