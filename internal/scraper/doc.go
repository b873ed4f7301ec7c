// Package scraper fetches the weekly cafeteria menu page and parses its menu table.
//
// The page carries a single table whose body rows either mark the start of an
// offer category (no <td> cells) or list one cell per weekday. Each cell may hold
// a ".description" and a ".price" element. Pages without the expected table,
// body or rows are reported as a FetchError so callers can skip the day.
package scraper
