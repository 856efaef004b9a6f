package session

import (
	"fmt"
	"strings"
	"time"

	"ethToolBox/internal/abicall"
	"ethToolBox/internal/model"
)

// Field names one free-text input of the toolbox.
type Field string

const (
	FieldText      Field = "text"
	FieldNumber    Field = "number"
	FieldName      Field = "name"
	FieldDate      Field = "date"
	FieldKey       Field = "key"
	FieldDigest    Field = "digest"
	FieldSignature Field = "signature"
	FieldCalldata  Field = "calldata"
	FieldEntropy   Field = "entropy"
)

var fields = []Field{
	FieldText, FieldNumber, FieldName, FieldDate, FieldKey,
	FieldDigest, FieldSignature, FieldCalldata, FieldEntropy,
}

// Fields lists every input field.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// ParseField resolves a case-insensitive field name.
func ParseField(name string) (Field, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, field := range fields {
		if string(field) == name {
			return field, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", name)
}

// Inputs holds the current value of every input field.
type Inputs struct {
	Text      string
	Number    string
	Name      string
	Date      string
	Key       string
	Digest    string
	Signature string
	Calldata  string
	Entropy   string
}

// Get returns the value of field f.
func (in Inputs) Get(f Field) string {
	switch f {
	case FieldText:
		return in.Text
	case FieldNumber:
		return in.Number
	case FieldName:
		return in.Name
	case FieldDate:
		return in.Date
	case FieldKey:
		return in.Key
	case FieldDigest:
		return in.Digest
	case FieldSignature:
		return in.Signature
	case FieldCalldata:
		return in.Calldata
	case FieldEntropy:
		return in.Entropy
	default:
		return ""
	}
}

func (in Inputs) with(f Field, value string) Inputs {
	switch f {
	case FieldText:
		in.Text = value
	case FieldNumber:
		in.Number = value
	case FieldName:
		in.Name = value
	case FieldDate:
		in.Date = value
	case FieldKey:
		in.Key = value
	case FieldDigest:
		in.Digest = value
	case FieldSignature:
		in.Signature = value
	case FieldCalldata:
		in.Calldata = value
	case FieldEntropy:
		in.Entropy = value
	}
	return in
}

// State is the whole toolbox state. It is a value: reducers return a new
// State and slices inside it are replaced, never written in place.
type State struct {
	SessionID  string
	Inputs     Inputs
	AbiText    string
	Descriptor *abicall.Descriptor
	AbiError   string
	Args       []string
	Log        ResultLog
}

var welcomeLines = []string{
	"Welcome to EthToolBox. Type help for the list of commands.",
	"Tip: array arguments to encode are JSON, e.g. [1, \"0x02\"]. The log is not saved when the session ends.",
}

// NewState returns the initial state with the welcome lines logged.
func NewState(sessionID string, at time.Time) State {
	state := State{
		SessionID: sessionID,
		Inputs:    Inputs{Entropy: "32"},
	}
	for _, line := range welcomeLines {
		state.Log = state.Log.Append(sessionID, line, false, at)
	}
	return state
}

// operands maps an operation to the fields it reads as Input and Aux.
var operands = map[model.Kind][2]Field{
	model.KindKeccak256: {FieldText},
	model.KindSHA256:    {FieldText},
	model.KindSelector:  {FieldText},
	model.KindHex:       {FieldText},
	model.KindUTF8:      {FieldText},
	model.KindBytes:     {FieldText},
	model.KindPad32:     {FieldText},
	model.KindWords:     {FieldText},
	model.KindToInt:     {FieldNumber},
	model.KindToHex:     {FieldNumber},
	model.KindToWei:     {FieldNumber},
	model.KindToGwei:    {FieldNumber},
	model.KindToEther:   {FieldNumber},
	model.KindEntropy:   {FieldEntropy},
	model.KindMnemonic:  {FieldText},
	model.KindAddress:   {FieldKey},
	model.KindSign:      {FieldKey, FieldDigest},
	model.KindRecover:   {FieldDigest, FieldSignature},
	model.KindNamehash:  {FieldName},
	model.KindDecode:    {FieldCalldata},
	model.KindDate:      {FieldDate},
	model.KindTimestamp: {FieldDate},
	model.KindBalance:   {FieldText},
}

// Operands returns the fields an operation reads, in argument order.
func Operands(kind model.Kind) []Field {
	pair, ok := operands[kind]
	if !ok {
		return nil
	}
	out := make([]Field, 0, 2)
	for _, f := range pair {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Request builds the conversion request kind would run against this state.
func (s State) Request(kind model.Kind) model.ConversionRequest {
	req := model.ConversionRequest{Kind: kind}
	if pair, ok := operands[kind]; ok {
		req.Input = s.Inputs.Get(pair[0])
		if pair[1] != "" {
			req.Aux = s.Inputs.Get(pair[1])
		}
	}
	if kind == model.KindEncode || kind == model.KindDecode {
		req.Input = s.AbiText
		req.Aux = s.Inputs.Calldata
		req.Args = append([]string(nil), s.Args...)
	}
	return req
}
