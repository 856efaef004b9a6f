package session

import (
	"reflect"
	"testing"
	"time"

	"ethToolBox/internal/model"
)

func TestNewStateSeedsWelcomeLines(t *testing.T) {
	state := NewState("abc", time.Unix(0, 0))
	if state.Log.Len() != 2 {
		t.Fatalf("log len = %d, want 2", state.Log.Len())
	}
	if state.Inputs.Entropy != "32" {
		t.Fatalf("entropy default = %q", state.Inputs.Entropy)
	}
	for _, e := range state.Log.Entries() {
		if e.Failed || e.SessionID != "abc" {
			t.Fatalf("unexpected welcome entry %+v", e)
		}
	}
}

func TestReduceSetInput(t *testing.T) {
	before := NewState("", time.Unix(0, 0))
	after := Reduce(before, SetInput{Field: FieldText, Value: "hello"})
	if after.Inputs.Text != "hello" {
		t.Fatalf("text = %q", after.Inputs.Text)
	}
	if before.Inputs.Text != "" {
		t.Fatalf("previous state changed: %q", before.Inputs.Text)
	}
	for _, f := range Fields() {
		s := Reduce(before, SetInput{Field: f, Value: "v"})
		if got := s.Inputs.Get(f); got != "v" {
			t.Fatalf("field %s = %q", f, got)
		}
	}
}

func TestReduceSignatureLifecycle(t *testing.T) {
	state := Reduce(State{}, SetSignature{Text: "transfer(address to, uint amount)"})
	if state.Descriptor == nil || state.AbiError != "" {
		t.Fatalf("descriptor not parsed: %q", state.AbiError)
	}
	if !reflect.DeepEqual(state.Args, []string{"", ""}) {
		t.Fatalf("args = %#v", state.Args)
	}

	withArg := Reduce(state, SetArgument{Index: 1, Value: "1000"})
	if withArg.Args[1] != "1000" {
		t.Fatalf("arg not set: %#v", withArg.Args)
	}
	if state.Args[1] != "" {
		t.Fatalf("previous args mutated: %#v", state.Args)
	}

	outOfRange := Reduce(withArg, SetArgument{Index: 5, Value: "x"})
	if !reflect.DeepEqual(outOfRange.Args, withArg.Args) {
		t.Fatalf("out of range arg changed state")
	}

	broken := Reduce(withArg, SetSignature{Text: "transfer(address"})
	if broken.Descriptor != nil || broken.AbiError == "" || broken.Args != nil {
		t.Fatalf("parse error not exposed: %+v", broken)
	}
	if broken.AbiText != "transfer(address" {
		t.Fatalf("abi text = %q", broken.AbiText)
	}

	cleared := Reduce(withArg, ClearSignature{})
	if cleared.Descriptor != nil || cleared.AbiText != "" || cleared.Args != nil {
		t.Fatalf("signature not cleared: %+v", cleared)
	}
	if blank := Reduce(withArg, SetSignature{Text: "  "}); blank.Descriptor != nil || blank.AbiError != "" {
		t.Fatalf("blank signature should clear: %+v", blank)
	}
}

func TestReduceRecordAppends(t *testing.T) {
	state := NewState("id", time.Unix(0, 0))
	next := Reduce(state, Record{Line: "x", Failed: true, At: time.Unix(10, 0)})
	if next.Log.Len() != state.Log.Len()+1 {
		t.Fatalf("record did not append")
	}
	last, _ := next.Log.Last()
	if last.Line != "x" || !last.Failed || last.Seq != 3 {
		t.Fatalf("unexpected entry %+v", last)
	}
}

func TestStateRequest(t *testing.T) {
	state := Reduce(State{}, SetInput{Field: FieldKey, Value: "k"})
	state = Reduce(state, SetInput{Field: FieldDigest, Value: "d"})
	req := state.Request(model.KindSign)
	if req.Input != "k" || req.Aux != "d" {
		t.Fatalf("sign request = %+v", req)
	}
	if got := Operands(model.KindRecover); !reflect.DeepEqual(got, []Field{FieldDigest, FieldSignature}) {
		t.Fatalf("recover operands = %v", got)
	}
	if got := Operands(model.KindNow); got != nil {
		t.Fatalf("now operands = %v", got)
	}
}

func TestParseField(t *testing.T) {
	if f, err := ParseField(" Digest "); err != nil || f != FieldDigest {
		t.Fatalf("ParseField = %q, %v", f, err)
	}
	if _, err := ParseField("nope"); err == nil {
		t.Fatalf("expected error")
	}
}
