package syntax

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/dangerclosesec/biza/analysis/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(input string) []Token {
	tokens, _ := Lex(input)
	return tokens
}

func TestLexerNumberAndOperator(t *testing.T) {
	tokens, diagnostics := Lex("12+3")

	require.Len(t, tokens, 4)
	assert.Empty(t, diagnostics)

	assert.Equal(t, Token{Kind: NumberToken, Position: 0, Text: "12", Value: int32(12)}, tokens[0])
	assert.Equal(t, Token{Kind: PlusToken, Position: 2, Text: "+"}, tokens[1])
	assert.Equal(t, Token{Kind: NumberToken, Position: 3, Text: "3", Value: int32(3)}, tokens[2])
	assert.Equal(t, EndOfFileToken, tokens[3].Kind)
	assert.Equal(t, 4, tokens[3].Position)
}

func TestLexerOperators(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{"+", PlusToken},
		{"-", MinusToken},
		{"*", StarToken},
		{"/", SlashToken},
		{"(", OpenParenthesisToken},
		{")", CloseParenthesisToken},
		{"!", BangToken},
		{"=", EqualsToken},
		{"&&", AmpersandAmpersandToken},
		{"||", PipePipeToken},
		{"==", EqualsEqualsToken},
		{"!=", BangEqualsToken},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, diagnostics := Lex(tt.input)
			require.Len(t, tokens, 2)
			assert.Empty(t, diagnostics)
			assert.Equal(t, tt.kind, tokens[0].Kind)
			assert.Equal(t, tt.input, tokens[0].Text)
			assert.Equal(t, tt.kind.Text(), tokens[0].Text)
		})
	}
}

func TestLexerLongestMatch(t *testing.T) {
	kinds := func(input string) []Kind {
		var out []Kind
		for _, tok := range scanAll(input) {
			out = append(out, tok.Kind)
		}
		return out
	}

	assert.Equal(t, []Kind{BangEqualsToken, EqualsToken, EndOfFileToken}, kinds("!=="))
	assert.Equal(t, []Kind{EqualsEqualsToken, EqualsToken, EndOfFileToken}, kinds("==="))
	assert.Equal(t, []Kind{BangToken, BangToken, EndOfFileToken}, kinds("!!"))
	assert.Equal(t, []Kind{AmpersandAmpersandToken, BadToken, EndOfFileToken}, kinds("&&&"))
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	tokens := scanAll("true false True truex x")

	var significant []Token
	for _, tok := range tokens {
		if tok.Kind != WhitespaceToken {
			significant = append(significant, tok)
		}
	}

	require.Len(t, significant, 6)
	assert.Equal(t, TrueKeyword, significant[0].Kind)
	assert.Equal(t, FalseKeyword, significant[1].Kind)
	assert.Equal(t, IdentifierToken, significant[2].Kind)
	assert.Equal(t, IdentifierToken, significant[3].Kind)
	assert.Equal(t, "truex", significant[3].Text)
	assert.Equal(t, IdentifierToken, significant[4].Kind)
	assert.Equal(t, EndOfFileToken, significant[5].Kind)
}

func TestLexerWhitespaceIsEmitted(t *testing.T) {
	tokens := scanAll(" \t\n1  ")

	require.Len(t, tokens, 4)
	assert.Equal(t, WhitespaceToken, tokens[0].Kind)
	assert.Equal(t, " \t\n", tokens[0].Text)
	assert.Equal(t, NumberToken, tokens[1].Kind)
	assert.Equal(t, WhitespaceToken, tokens[2].Kind)
	assert.Equal(t, "  ", tokens[2].Text)
}

func TestLexerInvalidNumber(t *testing.T) {
	l := NewLexer("9999999999")
	tok := l.Lex()

	assert.Equal(t, NumberToken, tok.Kind)
	assert.Equal(t, "9999999999", tok.Text)
	assert.Equal(t, int32(0), tok.Value)

	diagnostics := l.Diagnostics().All()
	require.Len(t, diagnostics, 1)
	assert.Equal(t, text.NewSpan(0, 10), diagnostics[0].Span)
	assert.Equal(t, "The number 9999999999 isn't valid int32.", diagnostics[0].Message)

	assert.Equal(t, EndOfFileToken, l.Lex().Kind)
}

func TestLexerInt32Bounds(t *testing.T) {
	tokens, diagnostics := Lex("2147483647")
	assert.Empty(t, diagnostics)
	assert.Equal(t, int32(2147483647), tokens[0].Value)

	_, diagnostics = Lex("2147483648")
	assert.Len(t, diagnostics, 1)
}

func TestLexerBadCharacter(t *testing.T) {
	l := NewLexer("@")
	tok := l.Lex()

	assert.Equal(t, BadToken, tok.Kind)
	assert.Equal(t, "@", tok.Text)
	assert.Equal(t, 0, tok.Position)
	assert.Equal(t, 1, l.position)

	diagnostics := l.Diagnostics().All()
	require.Len(t, diagnostics, 1)
	assert.Equal(t, text.NewSpan(0, 1), diagnostics[0].Span)
	assert.Equal(t, "Bad character input: '@'.", diagnostics[0].Message)
}

func TestLexerBadMultiByteCharacter(t *testing.T) {
	tokens, diagnostics := Lex("1€")

	require.Len(t, tokens, 3)
	assert.Equal(t, BadToken, tokens[1].Kind)
	assert.Equal(t, "€", tokens[1].Text)
	require.Len(t, diagnostics, 1)
	assert.Equal(t, text.NewSpan(1, len("€")), diagnostics[0].Span)
}

func TestLexerLoneAmpersandAndPipe(t *testing.T) {
	tokens, diagnostics := Lex("&|")

	require.Len(t, tokens, 3)
	assert.Equal(t, BadToken, tokens[0].Kind)
	assert.Equal(t, BadToken, tokens[1].Kind)
	assert.Len(t, diagnostics, 2)
}

func TestLexerEndOfFileRepeats(t *testing.T) {
	l := NewLexer("1")
	l.Lex()

	for i := 0; i < 3; i++ {
		tok := l.Lex()
		assert.Equal(t, EndOfFileToken, tok.Kind)
		assert.Equal(t, 1, tok.Position)
		assert.Equal(t, "\x00", tok.Text)
	}
}

func TestLexerDiagnosticsInScanOrder(t *testing.T) {
	_, diagnostics := Lex("@ 99999999999 #")

	require.Len(t, diagnostics, 3)
	assert.Equal(t, 0, diagnostics[0].Span.Start)
	assert.Equal(t, 2, diagnostics[1].Span.Start)
	assert.Equal(t, 14, diagnostics[2].Span.Start)
}

func TestLexerProgressAndRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"12+3",
		"1 + true",
		"!(a && b) || c != 4 == x",
		"@#$ 9999999999 \t\n&|€ é",
		"\xff\xfe1",
	}

	rng := rand.New(rand.NewSource(1))
	alphabet := []rune("01 9az+-*/()!&|=@\t\n€ä")
	for i := 0; i < 200; i++ {
		var b strings.Builder
		n := rng.Intn(24)
		for j := 0; j < n; j++ {
			b.WriteRune(alphabet[rng.Intn(len(alphabet))])
		}
		inputs = append(inputs, b.String())
	}

	for _, input := range inputs {
		l := NewLexer(input)
		var rebuilt strings.Builder
		calls := 0
		last := 0

		for {
			tok := l.Lex()
			calls++
			require.GreaterOrEqual(t, l.position, last, "cursor moved backwards on %q", input)
			last = l.position
			require.LessOrEqual(t, calls, len(input)+1, "scan of %q did not terminate", input)

			if tok.Kind == EndOfFileToken {
				break
			}
			assert.Equal(t, input[tok.Position:tok.Position+len(tok.Text)], tok.Text)
			rebuilt.WriteString(tok.Text)
		}

		assert.Equal(t, input, rebuilt.String())
	}
}
