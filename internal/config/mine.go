package config

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"

	"github.com/vancomm/sweep/internal/sweep"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// ParseMine decodes a mine position written as a query string, e.g. "x=3&y=4".
func ParseMine(s string) (sweep.Position, error) {
	var p sweep.Position
	query, err := url.ParseQuery(s)
	if err != nil {
		return p, fmt.Errorf("invalid mine %q: %w", s, err)
	}
	if err := decoder.Decode(&p, query); err != nil {
		return p, fmt.Errorf("invalid mine %q: %w", s, err)
	}
	return p, nil
}
