package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Genres is stored as one comma-joined text column.
type Genres []string

func ParseGenres(s string) Genres {
	var out Genres
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (g Genres) String() string {
	return strings.Join(g, ",")
}

// UnmarshalJSON accepts either ["Jazz","Folk"] or "Jazz, Folk".
func (g *Genres) UnmarshalJSON(data []byte) error {
	if string(data) == `null` {
		*g = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*g = ParseGenres(strings.Join(list, ","))
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("genres must be a list or a comma separated string")
	}
	*g = ParseGenres(str)
	return nil
}

func (g Genres) MarshalJSON() ([]byte, error) {
	if g == nil {
		return []byte(`[]`), nil
	}
	return json.Marshal([]string(g))
}

func (g Genres) Value() (driver.Value, error) {
	return g.String(), nil
}

func (g *Genres) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*g = nil
	case string:
		*g = ParseGenres(v)
	case []byte:
		*g = ParseGenres(string(v))
	default:
		return fmt.Errorf("unsupported scan type for Genres: %T", value)
	}
	return nil
}

func (Genres) GormDataType() string {
	return "text"
}
