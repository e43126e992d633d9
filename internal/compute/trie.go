package compute

// TrieNode - prefix tree of command words; multi-word commands share prefixes.
type TrieNode struct {
	children map[string]*TrieNode
	command  CommandType
}

func NewTrieNode() *TrieNode {
	return &TrieNode{
		children: make(map[string]*TrieNode),
		command:  CommandUNKNOWN,
	}
}

func (t *TrieNode) Insert(command []string, cmdType CommandType) {
	current := t
	for _, part := range command {
		if _, exists := current.children[part]; !exists {
			current.children[part] = NewTrieNode()
		}
		current = current.children[part]
	}
	current.command = cmdType
}

// Search - walks the longest matching prefix of tokens and returns
// its command with the tokens left over as arguments.
func (t *TrieNode) Search(tokens []string) (CommandType, []string) {
	current := t
	consumedTokens := 0

	for _, token := range tokens {
		next, exists := current.children[token]
		if !exists {
			break
		}
		current = next
		consumedTokens++
	}

	return current.command, tokens[consumedTokens:]
}

// DefaultTrie - the shell command set.
func DefaultTrie() *TrieNode {
	root := NewTrieNode()
	root.Insert(CommandENCODE.Split(), CommandENCODE)
	root.Insert(CommandDECODE.Split(), CommandDECODE)
	root.Insert(CommandIDENTITY.Split(), CommandIDENTITY)
	root.Insert(CommandCODECS.Split(), CommandCODECS)
	root.Insert([]string{"codecs"}, CommandCODECS)
	root.Insert(CommandQUALITIES.Split(), CommandQUALITIES)
	root.Insert(CommandHELP.Split(), CommandHELP)
	root.Insert(CommandEXIT.Split(), CommandEXIT)
	root.Insert([]string{"quit"}, CommandEXIT)

	return root
}
