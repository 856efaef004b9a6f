package convert

import (
	"math/big"
	"testing"
)

func TestDecimalHexRoundTripLargeValue(t *testing.T) {
	n := new(big.Int).Lsh(big.NewInt(1), 300)
	n.Sub(n, big.NewInt(12345))

	hexText, err := HexOf(n.String())
	if err != nil {
		t.Fatalf("hexOf: %v", err)
	}
	decText, err := DecimalOf(hexText)
	if err != nil {
		t.Fatalf("decimalOf: %v", err)
	}
	if decText != n.String() {
		t.Fatalf("round-trip mismatch: %s != %s", decText, n.String())
	}
}

func TestHexOf(t *testing.T) {
	tests := map[string]string{
		"0":    "0x0",
		"255":  "0xff",
		"-16":  "-0x10",
		"0xFF": "0xff",
	}
	for input, want := range tests {
		got, err := HexOf(input)
		if err != nil {
			t.Fatalf("hexOf(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("hexOf(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestDecimalOfRejectsGarbage(t *testing.T) {
	for _, input := range []string{"not-a-number", "", "0x", "12a", "--1", "1_000", " "} {
		_, err := DecimalOf(input)
		if err == nil {
			t.Fatalf("expected error for %q", input)
		}
		if err.Error() == "" {
			t.Fatalf("empty error message for %q", input)
		}
	}
}
