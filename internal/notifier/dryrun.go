package notifier

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"
)

// DryRunNotifier prints what would be sent without contacting any API
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a new dry-run notifier writing to out
func NewDryRunNotifier(out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{out: out}
}

// Notify prints the message that would be posted
func (n *DryRunNotifier) Notify(ctx context.Context, message string) error {
	fmt.Fprintln(n.out, "--- Message ---")
	fmt.Fprint(n.out, message)
	_, err := fmt.Fprintf(n.out, "\n(Length: %d characters)\n", utf8.RuneCountInString(message))
	return err
}
