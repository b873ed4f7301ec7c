package notifier

import "context"

// Notifier defines the interface for delivering a menu message
type Notifier interface {
	// Notify delivers message to the notifier's destination
	Notify(ctx context.Context, message string) error
}

// Multi fans a message out to several notifiers, returning the first error.
// Every notifier is tried even if an earlier one fails.
type Multi []Notifier

// Notify delivers message to every notifier in order
func (m Multi) Notify(ctx context.Context, message string) error {
	var first error
	for _, n := range m {
		if err := n.Notify(ctx, message); err != nil && first == nil {
			first = err
		}
	}
	return first
}
