// File: syntax/lexer.go
package syntax

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/dangerclosesec/biza/analysis/diagnostic"
	"github.com/dangerclosesec/biza/analysis/text"
)

// Lexer tokenizes input text. A Lexer is not safe for concurrent use; give
// each goroutine its own.
type Lexer struct {
	input       string
	position    int // byte offset of the current char; never decreases
	diagnostics diagnostic.Bag
}

// NewLexer creates a new Lexer
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Diagnostics returns the problems reported so far, in scan order
func (l *Lexer) Diagnostics() *diagnostic.Bag {
	return &l.diagnostics
}

// current returns the char under the cursor and its width in bytes.
// At end of input it returns 0, 0.
func (l *Lexer) current() (rune, int) {
	return l.peek(0)
}

// lookahead returns the char after the current one
func (l *Lexer) lookahead() rune {
	_, w := l.current()
	ch, _ := l.peek(w)
	return ch
}

func (l *Lexer) peek(offset int) (rune, int) {
	index := l.position + offset
	if index >= len(l.input) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(l.input[index:])
}

// readWhile advances the cursor over every char accepted by pred
func (l *Lexer) readWhile(pred func(rune) bool) {
	for {
		ch, w := l.current()
		if w == 0 || !pred(ch) {
			return
		}
		l.position += w
	}
}

// Lex returns the next token. Once the input is exhausted it returns an
// EndOfFileToken on every call.
func (l *Lexer) Lex() Token {
	if l.position >= len(l.input) {
		return Token{Kind: EndOfFileToken, Position: l.position, Text: "\x00"}
	}

	start := l.position
	ch, width := l.current()

	switch {
	case unicode.IsDigit(ch):
		l.readWhile(unicode.IsDigit)
		literal := l.input[start:l.position]

		value, err := strconv.ParseInt(literal, 10, 32)
		if err != nil {
			l.diagnostics.ReportInvalidNumber(text.FromBounds(start, l.position), literal, "int32")
			value = 0
		}
		return Token{Kind: NumberToken, Position: start, Text: literal, Value: int32(value)}

	case unicode.IsSpace(ch):
		l.readWhile(unicode.IsSpace)
		return Token{Kind: WhitespaceToken, Position: start, Text: l.input[start:l.position]}

	case unicode.IsLetter(ch):
		l.readWhile(unicode.IsLetter)
		literal := l.input[start:l.position]
		return Token{Kind: KeywordKind(literal), Position: start, Text: literal}
	}

	var kind Kind
	switch ch {
	case '+':
		kind = PlusToken
	case '-':
		kind = MinusToken
	case '*':
		kind = StarToken
	case '/':
		kind = SlashToken
	case '(':
		kind = OpenParenthesisToken
	case ')':
		kind = CloseParenthesisToken
	case '&':
		if l.lookahead() == '&' {
			kind = AmpersandAmpersandToken
		}
	case '|':
		if l.lookahead() == '|' {
			kind = PipePipeToken
		}
	case '=':
		if l.lookahead() == '=' {
			kind = EqualsEqualsToken
		} else {
			kind = EqualsToken
		}
	case '!':
		if l.lookahead() == '=' {
			kind = BangEqualsToken
		} else {
			kind = BangToken
		}
	}

	if kind != BadToken {
		lexeme := kind.Text()
		l.position += len(lexeme)
		return Token{Kind: kind, Position: start, Text: lexeme}
	}

	// Always consume the offending char so the scan makes progress
	l.position += width
	l.diagnostics.ReportBadCharacter(text.FromBounds(start, l.position), ch)
	return Token{Kind: BadToken, Position: start, Text: l.input[start:l.position]}
}

// Lex scans input to the end and returns every token, including the final
// EndOfFileToken, together with the lexer's diagnostics
func Lex(input string) ([]Token, []diagnostic.Diagnostic) {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.Lex()
		tokens = append(tokens, tok)
		if tok.Kind == EndOfFileToken {
			break
		}
	}
	return tokens, l.Diagnostics().All()
}
