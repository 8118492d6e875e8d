package cli

import "strings"

// InputKind classifies a line typed at an answer prompt.
type InputKind int

const (
	InputAnswer InputKind = iota
	InputHelp
	InputSound
	InputSet
	InputSettings
)

// Input is one parsed answer line. For InputSet, Text holds the key=value
// assignment; for InputAnswer it holds the raw answer.
type Input struct {
	Kind InputKind
	Text string
}

// ParseInput recognises the in-answer commands. Anything else is an answer.
func ParseInput(line string) Input {
	trimmed := strings.TrimSpace(line)
	switch strings.ToLower(trimmed) {
	case "help":
		return Input{Kind: InputHelp}
	case "sound", "s":
		return Input{Kind: InputSound}
	case "settings":
		return Input{Kind: InputSettings}
	}
	if head, rest, ok := strings.Cut(trimmed, " "); ok && strings.EqualFold(head, "set") && strings.Contains(rest, "=") {
		return Input{Kind: InputSet, Text: strings.TrimSpace(rest)}
	}
	return Input{Kind: InputAnswer, Text: line}
}
