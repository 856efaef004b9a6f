package convert

import "testing"

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		input string
		unix  int64
	}{
		{input: "2024-01-01T00:00:00Z", unix: 1704067200},
		{input: "2024-01-01 00:00:00", unix: 1704067200},
		{input: "2024-01-01", unix: 1704067200},
		{input: "2024-01-01T02:00:00+02:00", unix: 1704067200},
		{input: "1704067200", unix: 1704067200},
	}

	for _, tt := range tests {
		got := ParseFlexibleDate(tt.input)
		if !got.Parsed {
			t.Fatalf("expected %q to parse", tt.input)
		}
		if got.Unix != tt.unix {
			t.Fatalf("parse %q = %d, want %d", tt.input, got.Unix, tt.unix)
		}
	}
}

func TestParseFlexibleDateKeepsRawText(t *testing.T) {
	got := ParseFlexibleDate("next tuesday-ish")
	if got.Parsed {
		t.Fatalf("expected parse failure")
	}
	if got.Text != "next tuesday-ish" {
		t.Fatalf("raw text not retained: %q", got.Text)
	}
}

func TestFormatUnixTimestamp(t *testing.T) {
	got := FormatUnixTimestamp("1704067200")
	if !got.Parsed || got.Text != "2024-01-01T00:00:00Z" {
		t.Fatalf("unexpected result: %+v", got)
	}

	bad := FormatUnixTimestamp("yesterday")
	if bad.Parsed || bad.Text != "yesterday" {
		t.Fatalf("unexpected result: %+v", bad)
	}
}
