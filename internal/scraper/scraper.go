package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/mensa-bot/internal/menu"
)

const (
	DefaultMenuURL = "https://www.mensaplan.de/potsdam/mensa-kiepenheuerallee/index.html"
	UserAgent      = "mensa-bot/1.0 (github.com/pfrederiksen/mensa-bot)"
	Timeout        = 30 * time.Second
)

var (
	ErrTableNotFound = errors.New("menu table not found")
	ErrBodyNotFound  = errors.New("table body of menu not found")
	ErrRowsNotFound  = errors.New("table rows of menu not found")
)

// FetchError reports that the menu page could not be fetched or had no usable table
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching menu from %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Scraper handles fetching and parsing the menu page
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a new Scraper for url, falling back to DefaultMenuURL
func New(url string) *Scraper {
	if url == "" {
		url = DefaultMenuURL
	}
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: url,
	}
}

// URL returns the page the scraper reads from
func (s *Scraper) URL() string {
	return s.url
}

// FetchMenu downloads the menu page and parses its table
func (s *Scraper) FetchMenu(ctx context.Context) (menu.Table, error) {
	table, err := s.fetch(ctx)
	if err != nil {
		return menu.Table{}, &FetchError{URL: s.url, Err: err}
	}
	return table, nil
}

func (s *Scraper) fetch(ctx context.Context) (menu.Table, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return menu.Table{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return menu.Table{}, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return menu.Table{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return ParseMenu(resp.Body)
}

// ParseMenu extracts the menu table from an HTML document
func ParseMenu(r io.Reader) (menu.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return menu.Table{}, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return menu.Table{}, ErrTableNotFound
	}

	body := table.Find("tbody").First()
	if body.Length() == 0 {
		return menu.Table{}, ErrBodyNotFound
	}

	rows := body.Find("tr")
	if rows.Length() == 0 {
		return menu.Table{}, ErrRowsNotFound
	}

	result := menu.Table{Rows: make([]menu.Row, 0, rows.Length())}
	rows.Each(func(i int, tr *goquery.Selection) {
		result.Rows = append(result.Rows, parseRow(tr))
	})

	return result, nil
}

// parseRow converts a <tr> into a row; rows without <td> cells are category rows
func parseRow(tr *goquery.Selection) menu.Row {
	tds := tr.Find("td")
	if tds.Length() == 0 {
		return menu.Row{}
	}

	row := menu.Row{Cells: make([]menu.Cell, 0, tds.Length())}
	tds.Each(func(i int, td *goquery.Selection) {
		row.Cells = append(row.Cells, menu.Cell{
			Description: text(td.Find(".description").First()),
			Price:       text(td.Find(".price").First()),
		})
	})
	return row
}

// text returns the collapsed text of a selection, or "" if it is empty
func text(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return strings.Join(strings.Fields(sel.Text()), " ")
}
