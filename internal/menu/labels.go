package menu

import (
	"fmt"
	"strings"
)

// Labels holds the locale-dependent text used when rendering a menu
type Labels struct {
	// Weekdays are the names for Monday through Friday
	Weekdays     [5]string
	HeaderFormat string // receives the weekday name
	OfferFormat  string // receives the offer index
	DailySpecial string
	Unavailable  string
	Emojis       [5]string
}

// German is the default label set, matching the language of the menu page
var German = Labels{
	Weekdays:     [5]string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag"},
	HeaderFormat: "📆*Mensaplan für %s*📆\n",
	OfferFormat:  "Angebot %d",
	DailySpecial: "Tagesangebot",
	Unavailable:  "Nicht verfügbar",
	Emojis:       [5]string{"😷", "🤢", "💩", "🤮", "☣️"},
}

// English is the English label set
var English = Labels{
	Weekdays:     [5]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
	HeaderFormat: "📆*Menu for %s*📆\n",
	OfferFormat:  "Offer %d",
	DailySpecial: "Daily Special",
	Unavailable:  "Not available",
	Emojis:       German.Emojis,
}

// LabelsFor returns the label set for a locale code ("de" or "en")
func LabelsFor(locale string) (Labels, error) {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "", "de", "de_de", "german":
		return German, nil
	case "en", "en_us", "en_gb", "english":
		return English, nil
	default:
		return Labels{}, fmt.Errorf("unsupported locale: %s (must be 'de' or 'en')", locale)
	}
}

// Header returns the first line of the message for weekday (0-4)
func (l Labels) Header(weekday int) string {
	return fmt.Sprintf(l.HeaderFormat, l.Weekdays[weekday])
}

// Emoji returns the emoji for a 1-based offer index
func (l Labels) Emoji(offer int) string {
	i := (offer - 1) % len(l.Emojis)
	if i < 0 {
		i += len(l.Emojis)
	}
	return l.Emojis[i]
}

// OfferTitle returns the category line for a 1-based offer index
func (l Labels) OfferTitle(offer int) string {
	name := fmt.Sprintf(l.OfferFormat, offer)
	if offer == DailySpecialIndex {
		name = l.DailySpecial
	}
	e := l.Emoji(offer)
	return fmt.Sprintf("\n%s *%s* %s\n", e, name, e)
}
