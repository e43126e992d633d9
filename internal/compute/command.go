package compute

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/neekrasov/smush/pkg/logger"
)

const HelpText = `
Available commands:

  Codec commands:
    encode <encoding> <quality> <text> - Encode text and print the result as base-58.
    decode <encoding> <base58> - Decode a base-58 payload and print the text.
    identity <text> - Print the base-58 SHA-256 identity of text.

  Listing commands:
    show codecs - List encodings and whether they are enabled.
    show qualities - List quality levels.

  Other commands:
    help - Display this help message.
    exit - Leave the shell.
`

var (
	// ErrInvalidCommand - indicates an invalid command or incorrect arguments.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrInvalidSyntax - is returned when a query has invalid syntax.
	ErrInvalidSyntax = errors.New("invalid syntax")
)

// CommandType - represents the type of a shell command.
type CommandType string

const (
	CommandUNKNOWN CommandType = "unknown"

	CommandENCODE   CommandType = "encode"
	CommandDECODE   CommandType = "decode"
	CommandIDENTITY CommandType = "identity"

	CommandCODECS    CommandType = "show codecs"
	CommandQUALITIES CommandType = "show qualities"

	CommandHELP CommandType = "help"
	CommandEXIT CommandType = "exit"
)

// String - convert CommandType into string.
func (cmd CommandType) String() string {
	return string(cmd)
}

// Make - creates a line containing a command with an arbitrary number of arguments.
func (cmd CommandType) Make(args ...string) string {
	return strings.Join(append([]string{cmd.String()}, args...), " ")
}

// Split - split command by space.
func (cmd CommandType) Split() []string {
	return strings.Split(cmd.String(), " ")
}

// arity - minimum and maximum argument count; -1 means unbounded.
var arity = map[CommandType][2]int{
	CommandENCODE:    {3, -1},
	CommandDECODE:    {2, 2},
	CommandIDENTITY:  {1, -1},
	CommandCODECS:    {0, 0},
	CommandQUALITIES: {0, 0},
	CommandHELP:      {0, 0},
	CommandEXIT:      {0, 0},
}

// payloadAt - commands ending in free text, keyed to the argument where the text starts.
var payloadAt = map[CommandType]int{
	CommandENCODE:   2,
	CommandIDENTITY: 0,
}

// Command - a shell command with its arguments. Payload holds the free-text
// tail of encode and identity as typed.
type Command struct {
	Type    CommandType
	Args    []string
	Payload string
}

// NewCommand - validates the argument count and creates a Command.
func NewCommand(commandType CommandType, args []string) (*Command, error) {
	zapargs := []zap.Field{
		zap.Stringer("command", commandType),
		zap.Strings("args", args),
	}

	bounds, ok := arity[commandType]
	if !ok {
		logger.Debug("invalid command", zapargs...)
		return nil, fmt.Errorf("%w: unrecognized command", ErrInvalidCommand)
	}

	if lo, hi := bounds[0], bounds[1]; len(args) < lo || (hi >= 0 && len(args) > hi) {
		logger.Debug("invalid command", zapargs...)
		return nil, fmt.Errorf("%w: %s", ErrInvalidCommand, arityText(commandType, lo, hi))
	}

	logger.Debug("command successfully created", zapargs...)
	return &Command{Type: commandType, Args: args}, nil
}

func arityText(cmd CommandType, lo, hi int) string {
	switch {
	case lo == hi && lo == 0:
		return fmt.Sprintf("%s command takes no arguments", cmd)
	case lo == hi:
		return fmt.Sprintf("%s command requires exactly %d arguments", cmd, lo)
	default:
		return fmt.Sprintf("%s command requires at least %d arguments", cmd, lo)
	}
}
