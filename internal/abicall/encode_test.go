package abicall

import (
	"strings"
	"testing"
)

const recipient = "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"

func TestEncodeCallTransfer(t *testing.T) {
	desc, err := ParseSignature("transfer(address to, uint tokens)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	got, err := EncodeCall(desc, []string{recipient, "1000"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	want := "0xa9059cbb" +
		"0000000000000000000000002c7536e3605d9c16a7a3d7b1898e529396a65c23" +
		"00000000000000000000000000000000000000000000000000000000000003e8"
	if got != want {
		t.Fatalf("calldata mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestEncodeDecodeArrays(t *testing.T) {
	desc, err := ParseSignature("batch(uint8[] small, address[2] pair, bytes32 tag, int16 delta, string note)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	tag := "0x" + strings.Repeat("ab", 32)
	args := []string{
		`[1, "0x02", 255]`,
		`["` + recipient + `", "0x0000000000000000000000000000000000000001"]`,
		tag,
		"-5",
		"hello",
	}
	calldata, err := EncodeCall(desc, args)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasPrefix(calldata, desc.Selector()) {
		t.Fatalf("calldata missing selector: %s", calldata)
	}

	values, err := DecodeCall(desc, calldata)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{
		"[1,2,255]",
		"[" + recipient + ",0x0000000000000000000000000000000000000001]",
		tag,
		"-5",
		`"hello"`,
	}
	for i, w := range want {
		if values[i].Text != w {
			t.Fatalf("value %d = %s, want %s", i, values[i].Text, w)
		}
	}
}

func TestEncodeCallErrors(t *testing.T) {
	desc, err := ParseSignature("f(uint8 a, uint[] b, address c)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	cases := map[string][]string{
		"too few":      {"1", "[]"},
		"overflow":     {"256", "[]", recipient},
		"negative":     {"-1", "[]", recipient},
		"not array":    {"1", "7", recipient},
		"bad element":  {"1", `["x"]`, recipient},
		"bad address":  {"1", "[]", "0x1234"},
		"not a number": {"one", "[]", recipient},
	}
	for name, args := range cases {
		if _, err := EncodeCall(desc, args); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}

	if _, err := EncodeCall(nil, nil); err == nil {
		t.Fatalf("expected error for nil descriptor")
	}
}

func TestDecodeCallSelectorMismatch(t *testing.T) {
	desc, err := ParseSignature("transfer(address to, uint tokens)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := DecodeCall(desc, "0x095ea7b3"+strings.Repeat("00", 64)); err == nil {
		t.Fatalf("expected selector mismatch")
	}
}

func TestEncodeCallKeepsStringWhitespace(t *testing.T) {
	desc, err := ParseSignature("note(string text, uint8 n)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	calldata, err := EncodeCall(desc, []string{" hi ", " 7 "})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	values, err := DecodeCall(desc, calldata)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if values[0].Text != `" hi "` {
		t.Fatalf("string argument = %s, want %q", values[0].Text, `" hi "`)
	}
	if values[1].Text != "7" {
		t.Fatalf("uint8 argument = %s", values[1].Text)
	}
}
