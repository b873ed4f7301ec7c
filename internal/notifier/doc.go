// Package notifier delivers the formatted menu message to its destinations.
//
// Telegram is the primary channel. A Twitter channel and a dry-run channel that
// prints to a writer implement the same Notifier interface.
package notifier
