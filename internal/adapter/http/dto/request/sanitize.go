package request

import (
	"errors"
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDate = errors.New("dates must use YYYY-MM-DD")

	strictPolicy = bluemonday.StrictPolicy()
)

// cleanText strips markup from free text and trims it. The policy escapes
// the text it keeps, so entities are decoded back to plain characters.
func cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// parseDate returns nil for an empty value.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
