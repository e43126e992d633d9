package compute

import (
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/neekrasov/smush/pkg/logger"
)

// Parser - turns shell lines into commands.
type Parser struct {
	trie *TrieNode
}

// NewParser - creates a Parser over the given command words.
func NewParser(trie *TrieNode) *Parser {
	return &Parser{trie: trie}
}

// Parse - matches the command words and validates the arguments. Commands
// that take free text keep it byte for byte in Payload, inner spacing included.
func (p *Parser) Parse(line string) (*Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: shell line has no command", ErrInvalidSyntax)
	}

	commandType, args := p.trie.Search(tokens)
	logger.Debug("shell line split",
		zap.Stringer("command", commandType),
		zap.Strings("args", args),
	)

	cmd, err := NewCommand(commandType, args)
	if err != nil {
		return nil, err
	}

	if at, ok := payloadAt[commandType]; ok {
		words := len(tokens) - len(args)
		cmd.Payload = skipFields(line, words+at)
	}

	return cmd, nil
}

// skipFields - drops the first n whitespace-separated fields of s and the
// whitespace after them, returning the rest unchanged except for trailing space.
func skipFields(s string, n int) string {
	for ; n > 0; n-- {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		end := strings.IndexFunc(s, unicode.IsSpace)
		if end < 0 {
			return ""
		}
		s = s[end:]
	}

	return strings.TrimRightFunc(strings.TrimLeftFunc(s, unicode.IsSpace), unicode.IsSpace)
}
