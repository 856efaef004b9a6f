package convert

import (
	"errors"
	"testing"
)

func TestKeccak256(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{name: "empty hex", input: "0x", want: "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{name: "signature text", input: "transfer(address,uint256)", want: "0xa9059cbb2ab09eb219583f4a59a5d0623ade346d962bcd4e46b11da047c9049b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Keccak256(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("keccak256(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestKeccak256HexUsesRawBytes(t *testing.T) {
	fromHex, err := Keccak256("0x616263")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fromText, err := Keccak256("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fromHex != fromText {
		t.Fatalf("hex input should hash its bytes: %s != %s", fromHex, fromText)
	}
}

func TestKeccak256InvalidHex(t *testing.T) {
	_, err := Keccak256("0xzz")
	if err == nil {
		t.Fatalf("expected error for invalid hex")
	}
	var convErr *Error
	if !errors.As(err, &convErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if convErr.Op != "keccak256" || convErr.Message == "" {
		t.Fatalf("unexpected error: %+v", convErr)
	}
}

func TestSHA256HashesTextEvenWhenHexPrefixed(t *testing.T) {
	got, err := SHA256("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0xba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Fatalf("sha256 mismatch: %s", got)
	}

	prefixed, err := SHA256("0x616263")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prefixed == got {
		t.Fatalf("sha256 should hash the text, not the decoded bytes")
	}
}

func TestFunctionSelector(t *testing.T) {
	got, err := FunctionSelector("transfer(address,uint256)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0xa9059cbb" {
		t.Fatalf("selector mismatch: %s", got)
	}
}

func TestByteLength(t *testing.T) {
	if got := ByteLength("0xdeadbeef"); got != 4 {
		t.Fatalf("hex length = %d, want 4", got)
	}
	if got := ByteLength("héllo"); got != 6 {
		t.Fatalf("utf-8 length = %d, want 6", got)
	}
}
