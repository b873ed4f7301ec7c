package menu

import (
	"fmt"
	"strings"
	"time"
)

// DailySpecialIndex is the offer index rendered with the daily special label
const DailySpecialIndex = 5

// Table is a parsed menu table
type Table struct {
	Rows []Row `json:"rows"`
}

// Row is either a category row (no cells) or a data row (one cell per weekday)
type Row struct {
	Cells []Cell `json:"cells,omitempty"`
}

// Cell holds one weekday's offer. Empty strings mean the value is absent.
type Cell struct {
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
}

// IsCategory reports whether the row starts a new offer category
func (r Row) IsCategory() bool {
	return len(r.Cells) == 0
}

// cell returns the cell for weekday, or an empty cell if the row is too short
func (r Row) cell(weekday int) Cell {
	if weekday < 0 || weekday >= len(r.Cells) {
		return Cell{}
	}
	return r.Cells[weekday]
}

// Extract renders the offers for weekday (0 = Monday) from table.
// It returns false for Saturday, Sunday and out-of-range days without looking at the table.
func Extract(table Table, weekday int, labels Labels) (string, bool) {
	if weekday < 0 || weekday > 4 {
		return "", false
	}

	var b strings.Builder
	b.WriteString(labels.Header(weekday))

	offer := 1
	for _, row := range table.Rows {
		if row.IsCategory() {
			b.WriteString(labels.OfferTitle(offer))
			offer++
			continue
		}
		writeCell(&b, row.cell(weekday), labels)
	}

	return b.String(), true
}

func writeCell(b *strings.Builder, c Cell, labels Labels) {
	if c.Description != "" {
		b.WriteString(EscapeHyphens(c.Description))
	} else {
		b.WriteString(labels.Unavailable)
	}
	b.WriteString("\n")

	if c.Price != "" {
		b.WriteString(c.Price)
		b.WriteString("\n")
	}
}

// EscapeHyphens escapes literal hyphens for Telegram MarkdownV2
func EscapeHyphens(s string) string {
	return strings.ReplaceAll(s, "-", `\-`)
}

// WeekdayIndex returns the Monday-based day index (0 = Monday, 6 = Sunday)
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// String gives a short debug summary of the table
func (t Table) String() string {
	categories := 0
	for _, row := range t.Rows {
		if row.IsCategory() {
			categories++
		}
	}
	return fmt.Sprintf("menu table (%d rows, %d categories)", len(t.Rows), categories)
}
