// Package console runs a quiz session over plain line-oriented input and
// output, for pipes and terminals without full-screen support.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/iroquiz/internal/session"
)

// Console drives a session from a line reader.
type Console struct {
	sess   *session.Session
	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger
}

// New creates a Console. A nil logger is replaced with a no-op logger.
func New(sess *session.Session, in io.Reader, out io.Writer, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		sess:   sess,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run plays until the user quits, the input ends or ctx is cancelled. It
// prints and returns the session summary.
func (c *Console) Run(ctx context.Context) (*session.Summary, error) {
	if c.sess.Phase() == session.PhaseLoading {
		if err := c.sess.Start(); err != nil {
			return nil, fmt.Errorf("start session: %w", err)
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return c.finish(), err
		}

		var (
			done bool
			err  error
		)
		switch c.sess.Phase() {
		case session.PhaseReady:
			done, err = c.ask()
		case session.PhaseAnswered:
			done, err = c.reveal()
		case session.PhaseExhausted:
			done, err = c.exhausted()
		default:
			return c.finish(), fmt.Errorf("unexpected phase %s", c.sess.Phase())
		}
		if err != nil {
			return c.finish(), err
		}
		if done {
			return c.finish(), nil
		}
	}
}

func (c *Console) ask() (bool, error) {
	v := c.sess.View()

	fmt.Fprintf(c.out, "\n%s  (%d/%d)\n", v.Label, v.Position, v.Total)
	fmt.Fprintln(c.out, v.Stem)
	fmt.Fprintln(c.out)
	for i, name := range v.Choices {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, name)
	}

	for {
		line, ok := c.prompt(fmt.Sprintf("answer [1-%d, q to quit]: ", len(v.Choices)))
		if !ok || line == "q" {
			return true, nil
		}

		choice := line
		if n, err := strconv.Atoi(line); err == nil {
			if n < 1 || n > len(v.Choices) {
				fmt.Fprintf(c.out, "Enter a number between 1 and %d.\n", len(v.Choices))
				continue
			}
			choice = v.Choices[n-1]
		}

		_, err := c.sess.Submit(choice)
		switch {
		case err == nil:
			return false, nil
		case errors.Is(err, session.ErrNoSelection):
			fmt.Fprintln(c.out, session.NoSelectionPrompt)
		case errors.Is(err, session.ErrUnknownChoice):
			fmt.Fprintf(c.out, "Enter a number between 1 and %d.\n", len(v.Choices))
		default:
			return false, err
		}
	}
}

func (c *Console) reveal() (bool, error) {
	v := c.sess.View()
	r := v.Result

	verdict := "Incorrect."
	if r.Correct {
		verdict = "Correct!"
	}
	fmt.Fprintf(c.out, "\n%s The answer is %s\n", verdict, r.Answer)
	fmt.Fprintf(c.out, "asked %d   correct %d\n\n", v.Asked, v.Correct)

	for i, card := range r.Cards {
		if i == 1 {
			fmt.Fprintln(c.out, "Other choices")
		}
		WriteCard(c.out, card)
	}

	line, ok := c.prompt("[enter] next, q to quit: ")
	if !ok || line == "q" {
		return true, nil
	}
	return false, c.sess.Next()
}

func (c *Console) exhausted() (bool, error) {
	fmt.Fprintf(c.out, "\n%s\n", session.ExhaustedMessage)

	for {
		line, ok := c.prompt("[y/n]: ")
		if !ok {
			return true, nil
		}
		switch strings.ToLower(line) {
		case "", "y", "yes":
			c.logger.Debug("reshuffling question order")
			return false, c.sess.Next()
		case "n", "no", "q":
			return true, nil
		}
	}
}

// prompt writes p and reads one trimmed line. It reports false at end of
// input.
func (c *Console) prompt(p string) (string, bool) {
	fmt.Fprint(c.out, p)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		if err := c.in.Err(); err != nil {
			c.logger.Warn("reading input failed", zap.Error(err))
		}
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) finish() *session.Summary {
	sum := c.sess.Summary()
	WriteSummary(c.out, sum)
	return sum
}
