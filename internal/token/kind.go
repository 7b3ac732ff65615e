package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks a zero Token; the lexer never emits it.
	Invalid Kind = iota
	// Comment is a line (//) or block (/* */) comment.
	Comment
	// Keyword is one of the reserved words, see LookupKeyword.
	Keyword
	// Identifier starts with a letter, '_' or '$'.
	Identifier
	// Number is an integer or decimal literal.
	Number
	// String is a single- or double-quoted literal without escapes.
	String
	// Operator is a maximal run of operator characters.
	Operator
	// Punctuation is a single bracket, comma, dot or semicolon.
	Punctuation
	// Whitespace is a run of blanks or a single newline.
	Whitespace
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	Comment:     "Comment",
	Keyword:     "Keyword",
	Identifier:  "Identifier",
	Number:      "Number",
	String:      "String",
	Operator:    "Operator",
	Punctuation: "Punctuation",
	Whitespace:  "Whitespace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
