package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"ethToolBox/internal/abicall"
	"ethToolBox/internal/model"
	"ethToolBox/internal/session"
)

// Console executes lines of the closed command grammar against a state.
type Console struct {
	dispatcher *session.Dispatcher
}

func New(dispatcher *session.Dispatcher) *Console {
	return &Console{dispatcher: dispatcher}
}

// Exec applies line to state. Malformed or unknown commands append one
// failed line instead of changing any input.
func (c *Console) Exec(ctx context.Context, state session.State, line string) session.State {
	cmd, err := Parse(line)
	if err == nil {
		next, execErr := c.apply(ctx, state, cmd)
		if execErr == nil {
			return next
		}
		err = execErr
	}
	return session.Reduce(state, session.Record{
		Line:   fmt.Sprintf("eval(%q) => %v", strings.TrimSpace(line), err),
		Failed: true,
		At:     c.dispatcher.Now(),
	})
}

func (c *Console) apply(ctx context.Context, state session.State, cmd Command) (session.State, error) {
	switch cmd.Name {
	case "":
		return state, nil
	case "log":
		return state, nil
	case "help":
		return session.Reduce(state, session.Record{Line: helpText(), At: c.dispatcher.Now()}), nil
	case "set":
		if len(cmd.Args) < 1 {
			return state, fmt.Errorf("usage: set <field> <value>")
		}
		field, err := session.ParseField(cmd.Args[0])
		if err != nil {
			return state, err
		}
		return session.Reduce(state, session.SetInput{Field: field, Value: strings.Join(cmd.Args[1:], " ")}), nil
	case "abi":
		text := cmd.Rest
		if len(cmd.Args) == 1 {
			text = cmd.Args[0]
			if preset, ok := abicall.Preset(text); ok {
				text = preset
			}
		}
		return session.Reduce(state, session.SetSignature{Text: text}), nil
	case "arg":
		if len(cmd.Args) < 2 {
			return state, fmt.Errorf("usage: arg <n> <value>")
		}
		n, err := strconv.Atoi(cmd.Args[0])
		if err != nil || n < 1 || n > len(state.Args) {
			return state, fmt.Errorf("argument number %q out of range 1..%d", cmd.Args[0], len(state.Args))
		}
		return session.Reduce(state, session.SetArgument{Index: n - 1, Value: strings.Join(cmd.Args[1:], " ")}), nil
	case "clear":
		return session.Reduce(state, session.ClearSignature{}), nil
	}

	kind, err := model.ParseKind(cmd.Name)
	if err != nil {
		return state, err
	}
	state, err = bindArgs(state, kind, cmd.Args)
	if err != nil {
		return state, err
	}
	return c.dispatcher.Dispatch(ctx, state, kind), nil
}

// bindArgs stores positional arguments in the fields kind reads. Extra
// words are joined into the last field.
func bindArgs(state session.State, kind model.Kind, args []string) (session.State, error) {
	if len(args) == 0 {
		return state, nil
	}
	if kind == model.KindEncode {
		if state.Descriptor == nil {
			return state, fmt.Errorf("no function signature set")
		}
		if len(args) != len(state.Args) {
			return state, fmt.Errorf("%s expects %d arguments, got %d", state.Descriptor.Signature(), len(state.Args), len(args))
		}
		for i, arg := range args {
			state = session.Reduce(state, session.SetArgument{Index: i, Value: arg})
		}
		return state, nil
	}

	fields := session.Operands(kind)
	if len(fields) == 0 {
		return state, fmt.Errorf("%s takes no arguments", kind)
	}
	for i, field := range fields {
		if i >= len(args) {
			break
		}
		value := args[i]
		if i == len(fields)-1 {
			value = strings.Join(args[i:], " ")
		}
		state = session.Reduce(state, session.SetInput{Field: field, Value: value})
	}
	return state, nil
}

func helpText() string {
	var b strings.Builder
	b.WriteString("commands:")
	b.WriteString("\n  set <field> <value>   fields: ")
	names := make([]string, 0, len(session.Fields()))
	for _, f := range session.Fields() {
		names = append(names, string(f))
	}
	b.WriteString(strings.Join(names, ", "))
	b.WriteString("\n  abi <signature>       e.g. abi transfer(address to, uint256 amount)")
	b.WriteString("\n  abi <preset>          one of: ")
	b.WriteString(strings.Join(abicall.PresetNames(), ", "))
	b.WriteString("\n  arg <n> <value>       set encode argument n (from 1)")
	b.WriteString("\n  clear                 drop the function signature")
	b.WriteString("\n  log                   show the result log")
	for _, kind := range model.Kinds() {
		fields := session.Operands(kind)
		usage := string(kind)
		for _, f := range fields {
			usage += " [" + string(f) + "]"
		}
		if kind == model.KindEncode {
			usage += " [args...]"
		}
		fmt.Fprintf(&b, "\n  %s", usage)
	}
	b.WriteString("\nquote arguments containing spaces: keccak256 \"hello world\"")
	return b.String()
}
