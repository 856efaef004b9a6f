package convert

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the accepted date formats, tried in order. Layouts without
// a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	"02 Jan 2006 15:04",
}

// DateResult is the outcome of a best-effort date conversion. When Parsed is
// false, Text holds the raw input unmodified.
type DateResult struct {
	Input  string `json:"input"`
	Unix   int64  `json:"unix"`
	Text   string `json:"text"`
	Parsed bool   `json:"parsed"`
}

// ParseFlexibleDate converts a date string, or plain unix seconds, into a
// unix timestamp.
func ParseFlexibleDate(text string) DateResult {
	res := DateResult{Input: text, Text: text}
	s := strings.TrimSpace(text)
	if s == "" {
		return res
	}

	if isUnsignedDecimal(s) {
		secs, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return res
		}
		return dateResult(text, time.Unix(secs, 0))
	}

	for _, layout := range dateLayouts {
		tm, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return dateResult(text, tm)
		}
	}
	return res
}

// FormatUnixTimestamp renders unix seconds as an RFC3339 UTC time.
func FormatUnixTimestamp(text string) DateResult {
	res := DateResult{Input: text, Text: text}
	secs, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return res
	}
	return dateResult(text, time.Unix(secs, 0))
}

func dateResult(input string, tm time.Time) DateResult {
	return DateResult{
		Input:  input,
		Unix:   tm.Unix(),
		Text:   tm.UTC().Format(time.RFC3339),
		Parsed: true,
	}
}

func isUnsignedDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
