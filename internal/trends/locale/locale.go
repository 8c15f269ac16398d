// Package locale formats month bucket labels for the languages the
// dashboard is served in.
package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

type Labeler struct {
	tag language.Tag
}

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.SimplifiedChinese,
}

var matcher = language.NewMatcher(supported)

var shortMonths = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// ForAcceptLanguage negotiates a labeler from an Accept-Language header or a
// bare tag such as "zh". Unknown or empty input falls back to English.
func ForAcceptLanguage(header string) Labeler {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Labeler{tag: language.English}
	}
	_, idx, _ := matcher.Match(tags...)
	return Labeler{tag: supported[idx]}
}

func (l Labeler) Tag() language.Tag {
	return l.tag
}

func (l Labeler) MonthLabel(year int, month time.Month) string {
	if month < time.January || month > time.December {
		return fmt.Sprintf("%04d-%02d", year, int(month))
	}
	if l.tag == language.SimplifiedChinese {
		return fmt.Sprintf("%d年%d月", year, int(month))
	}
	return fmt.Sprintf("%s %d", shortMonths[month-1], year)
}
