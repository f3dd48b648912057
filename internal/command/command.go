// Package command parses the text typed into the TUI command line.
//
//	add <name> <secret>
//	edit <name> <secret>
//	delete <name>
package command

import (
	"errors"
	"fmt"
	"strings"
)

// Action is the verb of a command line.
type Action string

const (
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

var (
	ErrEmptyCommand    = errors.New("empty command")
	ErrUnknownAction   = errors.New("unknown action")
	ErrWrongParamCount = errors.New("wrong number of parameters")
)

// arity is the number of parameters each action takes.
var arity = map[Action]int{
	ActionAdd:    2,
	ActionEdit:   2,
	ActionDelete: 1,
}

// Command is a parsed command line.
type Command struct {
	Action Action
	Name   string
	// Secret is empty for delete.
	Secret string
}

// Parse splits input on whitespace and validates it. Secrets therefore
// cannot contain spaces when entered this way; the CLI add and edit
// commands accept any value.
func Parse(input string) (Command, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}

	action := Action(fields[0])
	want, ok := arity[action]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownAction, fields[0])
	}

	params := fields[1:]
	if len(params) != want {
		return Command{}, fmt.Errorf("%w: %s takes %d, got %d", ErrWrongParamCount, action, want, len(params))
	}

	cmd := Command{Action: action, Name: params[0]}
	if want == 2 {
		cmd.Secret = params[1]
	}
	return cmd, nil
}

// Usage is a one-line reminder of the accepted syntax.
const Usage = "add <name> <secret> | edit <name> <secret> | delete <name>"
