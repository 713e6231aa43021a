package network

import (
	"errors"
	"fmt"
)

// Sentinel errors for network construction and lookup.
var (
	// ErrUnreadableFile indicates a specification file could not be read.
	ErrUnreadableFile = errors.New("network: specification file not found or unreadable")

	// ErrUnknownNode indicates a reference to an undeclared node name or index.
	ErrUnknownNode = errors.New("network: unknown node")

	// ErrEdgeNotFound indicates no edge matches a (source, target, instance) key.
	ErrEdgeNotFound = errors.New("network: edge not found")

	// ErrInvalidModelName indicates an unrecognized model variant string.
	ErrInvalidModelName = errors.New("network: invalid model name")

	// ErrDuplicateNode indicates two lines declare the same node name.
	ErrDuplicateNode = errors.New("network: duplicate node name")

	// ErrInvalidNodeName indicates an empty name or one containing logic delimiters.
	ErrInvalidNodeName = errors.New("network: invalid node name")

	// ErrRepeatedInput indicates a source edge repeated without a sanctioned exception.
	ErrRepeatedInput = errors.New("network: repeated input")

	// ErrMalformedLogic is the parent of every grammar violation below.
	ErrMalformedLogic = errors.New("network: malformed logic")
)

// Malformed logic subtypes. Each one matches ErrMalformedLogic under errors.Is.
var (
	ErrUnbalancedDecay  = fmt.Errorf("%w: unbalanced '<' '>'", ErrMalformedLogic)
	ErrUnbalancedPTM    = fmt.Errorf("%w: unbalanced '[' ']'", ErrMalformedLogic)
	ErrInvalidComma     = fmt.Errorf("%w: ',' is only valid once inside a PTM pair", ErrMalformedLogic)
	ErrDecayNotAtStart  = fmt.Errorf("%w: decay term must start the logic", ErrMalformedLogic)
	ErrPTMSize          = fmt.Errorf("%w: PTM pair must hold exactly two inputs", ErrMalformedLogic)
	ErrMissingPlus      = fmt.Errorf("%w: decay term must be followed by '+'", ErrMalformedLogic)
	ErrEmptyDecayTerm   = fmt.Errorf("%w: empty decay term", ErrMalformedLogic)
	ErrNegativeTerm     = fmt.Errorf("%w: '-' outside a decay term", ErrMalformedLogic)
	ErrDanglingNegation = fmt.Errorf("%w: '~' must precede a node name", ErrMalformedLogic)
	ErrActiveMarker     = fmt.Errorf("%w: active marker must wrap the first input of a PTM pair", ErrMalformedLogic)
)

// ParseError locates a specification error. Err holds one of the sentinels
// above, possibly wrapped with the offending name.
type ParseError struct {
	Node  string // target node whose line failed; empty if unknown
	Line  int    // 1-based line number in the specification; 0 if unknown
	Logic string // raw logic text of the node
	Pos   int    // byte offset in Logic; -1 when the error is not positional
	Err   error
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Node != "" {
		msg += fmt.Sprintf(" (node %q", e.Node)
		if e.Line > 0 {
			msg += fmt.Sprintf(", line %d", e.Line)
		}
		if e.Pos >= 0 && e.Logic != "" {
			msg += fmt.Sprintf(", column %d", e.Pos+1)
		}
		msg += ")"
	}

	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Kind returns a short stable label for the error class.
func (e *ParseError) Kind() string { return ErrorKind(e.Err) }

var kinds = []struct {
	err  error
	kind string
}{
	{ErrUnbalancedDecay, "unbalanced_decay"},
	{ErrUnbalancedPTM, "unbalanced_ptm"},
	{ErrInvalidComma, "invalid_comma"},
	{ErrDecayNotAtStart, "decay_not_at_start"},
	{ErrPTMSize, "ptm_size"},
	{ErrMissingPlus, "missing_plus"},
	{ErrEmptyDecayTerm, "empty_decay_term"},
	{ErrNegativeTerm, "negative_term"},
	{ErrDanglingNegation, "dangling_negation"},
	{ErrActiveMarker, "active_marker"},
	{ErrMalformedLogic, "malformed_logic"},
	{ErrRepeatedInput, "repeated_input"},
	{ErrUnknownNode, "unknown_node"},
	{ErrDuplicateNode, "duplicate_node"},
	{ErrInvalidNodeName, "invalid_node_name"},
	{ErrInvalidModelName, "invalid_model"},
	{ErrUnreadableFile, "unreadable_file"},
}

// ErrorKind classifies err by the most specific sentinel it matches.
// It returns "" for nil and "other" for foreign errors.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "other"
}
