package prompt

import _ "embed"

// Template files embedded at compile time
var (
	//go:embed templates/system-instruction.txt
	SystemInstruction string

	//go:embed templates/deck.txt
	DeckTemplate string
)
