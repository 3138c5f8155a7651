package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
)

const (
	DATE_FORMAT_FULL   = "EEEE MMMM, d, y 'at' h:mma"
	DATE_FORMAT_MEDIUM = "EE MM, dd, y h:mma"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

var translator locales.Translator = en.New()

// ParseDateTime accepts the ISO-ish date strings produced by HTML forms,
// JSON clients and Postgres. Values without a zone are taken as UTC.
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", value)
}

// FormatDateTime is the "datetime" template filter. "full" and "medium"
// select the named patterns; any other format is used as a CLDR pattern.
func FormatDateTime(value string, format string) (string, error) {
	t, err := ParseDateTime(value)
	if err != nil {
		return "", err
	}
	switch format {
	case "full":
		format = DATE_FORMAT_FULL
	case "medium":
		format = DATE_FORMAT_MEDIUM
	}
	return FormatPattern(t, format), nil
}

// FormatPattern renders t with a subset of the CLDR date pattern syntax:
// E, M/L, d, y, h, H, m, s, a and quoted literals. Other letters are
// copied through.
func FormatPattern(t time.Time, pattern string) string {
	var b strings.Builder
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		r := runes[i]

		if r == '\'' {
			// '' is a literal quote, otherwise read up to the closing quote
			if i+1 < len(runes) && runes[i+1] == '\'' {
				b.WriteRune('\'')
				i += 2
				continue
			}
			i++
			for i < len(runes) {
				if runes[i] == '\'' {
					if i+1 < len(runes) && runes[i+1] == '\'' {
						b.WriteRune('\'')
						i += 2
						continue
					}
					i++
					break
				}
				b.WriteRune(runes[i])
				i++
			}
			continue
		}

		if !isPatternLetter(r) {
			b.WriteRune(r)
			i++
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}
		b.WriteString(formatField(t, r, n))
		i += n
	}
	return b.String()
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func formatField(t time.Time, letter rune, n int) string {
	switch letter {
	case 'E':
		if n >= 4 {
			return translator.WeekdayWide(t.Weekday())
		}
		return translator.WeekdayAbbreviated(t.Weekday())
	case 'M', 'L':
		switch {
		case n >= 4:
			return translator.MonthWide(t.Month())
		case n == 3:
			return translator.MonthAbbreviated(t.Month())
		}
		return pad(int(t.Month()), n)
	case 'd':
		return pad(t.Day(), n)
	case 'y':
		if n == 2 {
			return pad(t.Year()%100, 2)
		}
		return pad(t.Year(), n)
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		return pad(hour, n)
	case 'H':
		return pad(t.Hour(), n)
	case 'm':
		return pad(t.Minute(), n)
	case 's':
		return pad(t.Second(), n)
	case 'a':
		return period(t)
	}
	return strings.Repeat(string(letter), n)
}

func period(t time.Time) string {
	if t.Hour() >= 12 {
		return "PM"
	}
	return "AM"
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
