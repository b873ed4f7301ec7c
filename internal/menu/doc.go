// Package menu turns a parsed cafeteria menu table into the daily chat message.
//
// A Table is a sequence of rows in page order. Rows without cells mark the start
// of a new offer category; rows with cells hold one description/price cell per
// weekday. Extract walks the rows once and renders the offers for a single
// weekday using a Labels set, which carries everything locale-specific.
package menu
