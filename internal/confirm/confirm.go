package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/orgball2608/fb-post-importer/pkg/config"
)

// Policy decides whether a run continues after the token check failed.
type Policy interface {
	Continue(reason error) bool
}

type PolicyFunc func(reason error) bool

func (f PolicyFunc) Continue(reason error) bool { return f(reason) }

var (
	AlwaysContinue Policy = PolicyFunc(func(error) bool { return true })
	AlwaysAbort    Policy = PolicyFunc(func(error) bool { return false })
)

// Prompter asks an operator on a terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// yesAnswers accepts Hungarian and English replies.
var yesAnswers = map[string]bool{"i": true, "igen": true, "y": true, "yes": true}

// Continue asks whether to go on with a token that failed the check.
// Anything but an explicit yes aborts.
func (p *Prompter) Continue(reason error) bool {
	fmt.Fprintf(p.out, "Token check failed: %v\n", reason)
	fmt.Fprint(p.out, "Continue with this token anyway? (i/n): ")

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return yesAnswers[strings.ToLower(strings.TrimSpace(line))]
}

// AskCount asks for a positive number, re-asking on invalid input. An empty
// answer selects def.
func (p *Prompter) AskCount(question string, def int) (int, error) {
	for {
		fmt.Fprintf(p.out, "%s [%d]: ", question, def)

		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			return 0, fmt.Errorf("read answer: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return def, nil
		}

		n, convErr := strconv.Atoi(line)
		switch {
		case convErr != nil:
			fmt.Fprintln(p.out, "Please enter a valid number.")
		case n <= 0:
			fmt.Fprintln(p.out, "The number must be positive.")
		default:
			return n, nil
		}

		if err != nil {
			return 0, fmt.Errorf("read answer: %w", err)
		}
	}
}

// AskChoice asks for an index in [1, max].
func (p *Prompter) AskChoice(question string, max int) (int, error) {
	for {
		fmt.Fprintf(p.out, "%s (1-%d): ", question, max)

		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			return 0, fmt.Errorf("read answer: %w", err)
		}

		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && n >= 1 && n <= max {
			return n, nil
		}
		fmt.Fprintln(p.out, "Invalid choice, try again.")

		if err != nil {
			return 0, fmt.Errorf("read answer: %w", err)
		}
	}
}

// FromConfig maps the configured policy name to a Policy.
func FromConfig(name string, prompter *Prompter) Policy {
	switch name {
	case config.TokenCheckContinue:
		return AlwaysContinue
	case config.TokenCheckAbort:
		return AlwaysAbort
	default:
		return prompter
	}
}
