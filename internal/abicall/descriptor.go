package abicall

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ParamKind tags a parameter as a scalar or an array.
type ParamKind int

const (
	Scalar ParamKind = iota
	Array
)

func (k ParamKind) String() string {
	if k == Array {
		return "array"
	}
	return "scalar"
}

// Param is one parsed function parameter. Kind and Elem are fixed at parse
// time so argument coercion never has to inspect the type string again.
type Param struct {
	Name     string
	Declared string
	Type     string
	Kind     ParamKind
	Elem     string

	abiType abi.Type
}

// Descriptor is a parsed function signature.
type Descriptor struct {
	Name   string
	Params []Param

	method abi.Method
}

// Signature returns the canonical signature, e.g. transfer(address,uint256).
func (d *Descriptor) Signature() string {
	return d.method.Sig
}

// Selector returns the 4-byte function selector as hex.
func (d *Descriptor) Selector() string {
	return hexutil.Encode(d.method.ID)
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var storageQualifiers = map[string]struct{}{
	"memory":   {},
	"calldata": {},
	"storage":  {},
	"payable":  {},
}

var functionModifiers = map[string]struct{}{
	"public":     {},
	"external":   {},
	"internal":   {},
	"private":    {},
	"view":       {},
	"pure":       {},
	"payable":    {},
	"nonpayable": {},
	"virtual":    {},
	"override":   {},
}

// ParseSignature parses a free-text function signature such as
// "function transfer(address to, uint tokens) public returns (bool);".
func ParseSignature(text string) (*Descriptor, error) {
	src := strings.TrimSpace(text)
	for strings.HasSuffix(src, ";") {
		src = strings.TrimSpace(strings.TrimSuffix(src, ";"))
	}
	if rest, ok := strings.CutPrefix(src, "function"); ok && rest != "" && unicode.IsSpace(rune(rest[0])) {
		src = strings.TrimSpace(rest)
	}
	if src == "" {
		return nil, fmt.Errorf("empty function signature")
	}

	open := strings.IndexByte(src, '(')
	if open < 0 {
		return nil, fmt.Errorf("missing parameter list in %q", src)
	}
	name := strings.TrimSpace(src[:open])
	if !identifierPattern.MatchString(name) {
		return nil, fmt.Errorf("invalid function name %q", name)
	}

	closing := strings.IndexByte(src[open:], ')')
	if closing < 0 {
		return nil, fmt.Errorf("unterminated parameter list in %q", src)
	}
	closing += open

	body := src[open+1 : closing]
	if strings.ContainsAny(body, "()") {
		return nil, fmt.Errorf("tuple parameters are not supported")
	}
	if err := checkTail(src[closing+1:]); err != nil {
		return nil, err
	}

	params, err := parseParams(body)
	if err != nil {
		return nil, err
	}

	args := make(abi.Arguments, 0, len(params))
	for _, param := range params {
		args = append(args, abi.Argument{Name: param.Name, Type: param.abiType})
	}
	method := abi.NewMethod(name, name, abi.Function, "nonpayable", false, false, args, nil)

	return &Descriptor{
		Name:   name,
		Params: params,
		method: method,
	}, nil
}

func checkTail(tail string) error {
	tail = strings.TrimSpace(tail)
	if idx := strings.Index(tail, "returns"); idx >= 0 {
		ret := strings.TrimSpace(tail[idx+len("returns"):])
		if !strings.HasPrefix(ret, "(") || !strings.HasSuffix(ret, ")") {
			return fmt.Errorf("malformed returns clause %q", ret)
		}
		tail = tail[:idx]
	}
	for _, word := range strings.Fields(tail) {
		if _, ok := functionModifiers[word]; !ok {
			return fmt.Errorf("unexpected %q after parameter list", word)
		}
	}
	return nil
}

func parseParams(body string) ([]Param, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}

	parts := strings.Split(body, ",")
	params := make([]Param, 0, len(parts))
	for i, part := range parts {
		words := make([]string, 0, 3)
		for _, word := range strings.Fields(part) {
			if _, ok := storageQualifiers[word]; ok {
				continue
			}
			words = append(words, word)
		}
		if len(words) == 0 {
			return nil, fmt.Errorf("parameter %d is empty", i)
		}
		if len(words) > 2 {
			return nil, fmt.Errorf("parameter %d: unexpected %q", i, strings.Join(words[2:], " "))
		}

		param := Param{Declared: words[0]}
		if len(words) == 2 {
			if !identifierPattern.MatchString(words[1]) {
				return nil, fmt.Errorf("parameter %d: invalid name %q", i, words[1])
			}
			param.Name = words[1]
		}

		typ, err := abi.NewType(normalizeType(words[0]), "", nil)
		if err != nil {
			return nil, fmt.Errorf("parameter %d: %w", i, err)
		}
		param.abiType = typ
		param.Type = typ.String()
		if typ.T == abi.SliceTy || typ.T == abi.ArrayTy {
			param.Kind = Array
			param.Elem = typ.Elem.String()
		}
		params = append(params, param)
	}
	return params, nil
}

// normalizeType expands the shorthand forms solidity accepts but the
// canonical ABI does not.
func normalizeType(t string) string {
	base, suffix := t, ""
	if i := strings.IndexByte(t, '['); i >= 0 {
		base, suffix = t[:i], t[i:]
	}
	switch base {
	case "uint":
		base = "uint256"
	case "int":
		base = "int256"
	case "byte":
		base = "bytes1"
	}
	return base + suffix
}
