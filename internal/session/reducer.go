package session

import (
	"strings"
	"time"

	"ethToolBox/internal/abicall"
)

// Action is a state transition understood by Reduce.
type Action interface {
	isAction()
}

// SetInput replaces the value of one input field.
type SetInput struct {
	Field Field
	Value string
}

// SetSignature replaces the function signature and re-parses it.
type SetSignature struct {
	Text string
}

// SetArgument replaces the value of one encode argument.
type SetArgument struct {
	Index int
	Value string
}

// ClearSignature drops the signature, its descriptor and its arguments.
type ClearSignature struct{}

// Record appends one result line to the log.
type Record struct {
	Line   string
	Failed bool
	At     time.Time
}

func (SetInput) isAction()       {}
func (SetSignature) isAction()   {}
func (SetArgument) isAction()    {}
func (ClearSignature) isAction() {}
func (Record) isAction()         {}

// Reduce applies action to state and returns the resulting state.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case SetInput:
		state.Inputs = state.Inputs.with(a.Field, a.Value)
	case SetSignature:
		if strings.TrimSpace(a.Text) == "" {
			return clearSignature(state)
		}
		state.AbiText = a.Text
		desc, err := abicall.ParseSignature(a.Text)
		if err != nil {
			state.Descriptor = nil
			state.AbiError = err.Error()
			state.Args = nil
			return state
		}
		state.Descriptor = desc
		state.AbiError = ""
		state.Args = make([]string, len(desc.Params))
	case SetArgument:
		if a.Index < 0 || a.Index >= len(state.Args) {
			return state
		}
		args := make([]string, len(state.Args))
		copy(args, state.Args)
		args[a.Index] = a.Value
		state.Args = args
	case ClearSignature:
		return clearSignature(state)
	case Record:
		state.Log = state.Log.Append(state.SessionID, a.Line, a.Failed, a.At)
	}
	return state
}

func clearSignature(state State) State {
	state.AbiText = ""
	state.Descriptor = nil
	state.AbiError = ""
	state.Args = nil
	return state
}
