package console

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is one tokenized console line.
type Command struct {
	Name string
	Args []string
	// Rest is the untokenized text after the command name.
	Rest string
}

// Parse splits line into a command name and arguments. Double-quoted
// arguments use Go string escapes; everything else splits on whitespace.
func Parse(line string) (Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Command{}, nil
	}
	name, rest := trimmed, ""
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		name, rest = trimmed[:i], strings.TrimSpace(trimmed[i+1:])
	}
	args, err := tokenize(rest)
	if err != nil {
		return Command{}, err
	}
	return Command{Name: strings.ToLower(name), Args: args, Rest: rest}, nil
}

func tokenize(text string) ([]string, error) {
	var out []string
	for i := 0; i < len(text); {
		c := text[i]
		if c == ' ' || c == '\t' {
			i++
			continue
		}
		if c != '"' {
			j := i
			for j < len(text) && text[j] != ' ' && text[j] != '\t' {
				j++
			}
			out = append(out, text[i:j])
			i = j
			continue
		}

		j := i + 1
		for ; j < len(text); j++ {
			if text[j] == '\\' {
				j++
				continue
			}
			if text[j] == '"' {
				break
			}
		}
		if j >= len(text) {
			return nil, fmt.Errorf("unterminated quote at column %d", i+1)
		}
		token, err := strconv.Unquote(text[i : j+1])
		if err != nil {
			return nil, fmt.Errorf("invalid quoted argument %s", text[i:j+1])
		}
		out = append(out, token)
		i = j + 1
	}
	return out, nil
}
