package helper

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"fyyur/model"
)

var ErrNothingToUpdate = errors.New("no fields to update")

type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}

type InvalidFieldError struct {
	Field string
	Err   error
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *InvalidFieldError) Unwrap() error {
	return e.Err
}

// FieldSetter assigns one decoded request value onto an entity.
type FieldSetter[T any] func(entity *T, value any) error

var VenueFields = map[string]FieldSetter[model.Venue]{
	"name":                stringField(func(v *model.Venue, s string) { v.Name = s }),
	"city":                stringField(func(v *model.Venue, s string) { v.City = s }),
	"state":               stringField(func(v *model.Venue, s string) { v.State = s }),
	"address":             stringField(func(v *model.Venue, s string) { v.Address = s }),
	"phone":               stringField(func(v *model.Venue, s string) { v.Phone = s }),
	"genres":              genresField(func(v *model.Venue, g model.Genres) { v.Genres = g }),
	"image_link":          stringField(func(v *model.Venue, s string) { v.ImageLink = s }),
	"facebook_link":       stringField(func(v *model.Venue, s string) { v.FacebookLink = s }),
	"website_link":        stringField(func(v *model.Venue, s string) { v.WebsiteLink = s }),
	"seeking_talent":      boolField(func(v *model.Venue, b bool) { v.SeekingTalent = b }),
	"seeking_description": stringField(func(v *model.Venue, s string) { v.SeekingDescription = s }),
}

var ArtistFields = map[string]FieldSetter[model.Artist]{
	"name":                stringField(func(a *model.Artist, s string) { a.Name = s }),
	"city":                stringField(func(a *model.Artist, s string) { a.City = s }),
	"state":               stringField(func(a *model.Artist, s string) { a.State = s }),
	"phone":               stringField(func(a *model.Artist, s string) { a.Phone = s }),
	"genres":              genresField(func(a *model.Artist, g model.Genres) { a.Genres = g }),
	"image_link":          stringField(func(a *model.Artist, s string) { a.ImageLink = s }),
	"facebook_link":       stringField(func(a *model.Artist, s string) { a.FacebookLink = s }),
	"website_link":        stringField(func(a *model.Artist, s string) { a.WebsiteLink = s }),
	"seeking_venue":       boolField(func(a *model.Artist, b bool) { a.SeekingVenue = b }),
	"seeking_description": stringField(func(a *model.Artist, s string) { a.SeekingDescription = s }),
}

// ApplyFields overwrites only the fields present in values. Any field name
// without a setter is rejected before the entity is touched.
func ApplyFields[T any](entity *T, setters map[string]FieldSetter[T], values map[string]any) error {
	if len(values) == 0 {
		return ErrNothingToUpdate
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, ok := setters[key]; !ok {
			return &UnknownFieldError{Field: key}
		}
	}
	for _, key := range keys {
		if err := setters[key](entity, values[key]); err != nil {
			return &InvalidFieldError{Field: key, Err: err}
		}
	}
	return nil
}

func stringField[T any](set func(*T, string)) FieldSetter[T] {
	return func(entity *T, value any) error {
		switch v := value.(type) {
		case nil:
			set(entity, "")
		case string:
			set(entity, strings.TrimSpace(v))
		default:
			return fmt.Errorf("expected a string, got %T", value)
		}
		return nil
	}
}

func boolField[T any](set func(*T, bool)) FieldSetter[T] {
	return func(entity *T, value any) error {
		switch v := value.(type) {
		case bool:
			set(entity, v)
		case string:
			b, err := parseFormBool(v)
			if err != nil {
				return err
			}
			set(entity, b)
		default:
			return fmt.Errorf("expected a boolean, got %T", value)
		}
		return nil
	}
}

func genresField[T any](set func(*T, model.Genres)) FieldSetter[T] {
	return func(entity *T, value any) error {
		switch v := value.(type) {
		case nil:
			set(entity, nil)
		case string:
			set(entity, model.ParseGenres(v))
		case []string:
			set(entity, model.ParseGenres(strings.Join(v, ",")))
		case []any:
			parts := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return fmt.Errorf("genres must be strings, got %T", item)
				}
				parts = append(parts, s)
			}
			set(entity, model.ParseGenres(strings.Join(parts, ",")))
		default:
			return fmt.Errorf("expected a list of genres, got %T", value)
		}
		return nil
	}
}

func parseFormBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "on", "true", "1":
		return true, nil
	case "", "n", "no", "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
