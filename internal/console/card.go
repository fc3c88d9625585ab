package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/abhisek/iroquiz/internal/session"
)

// WriteCard prints a color card as an indented block.
func WriteCard(w io.Writer, card session.Card) {
	mark := " "
	if card.Correct {
		mark = "✓"
	}
	fmt.Fprintf(w, "%s %s\n", mark, card.Name)

	rgb := card.RGB
	if card.Hex != "" {
		rgb += "  " + card.Hex
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "    family\t%s\n", card.Family)
	fmt.Fprintf(tw, "    munsell\t%s\n", card.Munsell)
	fmt.Fprintf(tw, "    pccs\t%s\n", card.PCCS)
	fmt.Fprintf(tw, "    rgb\t%s\n", rgb)
	_ = tw.Flush()

	if card.Description != "" {
		for _, line := range strings.Split(card.Description, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
	fmt.Fprintln(w)
}

// WriteSummary prints the end-of-session totals.
func WriteSummary(w io.Writer, sum *session.Summary) {
	total := int(sum.Duration.Seconds())
	fmt.Fprintf(w, "\nSession %s\n", sum.SessionID)
	fmt.Fprintf(w, "Questions: %d  Correct: %d  Accuracy: %.0f%%  Duration: %d:%02d  Cycles: %d\n",
		sum.Asked, sum.Correct, sum.Accuracy*100, total/60, total%60, sum.Cycles)
}
