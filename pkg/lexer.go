package aurora

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType uint64
type stateFunc func(l *Lexer) stateFunc

const (
	EOF rune = 0

	TokenError TokenType = iota
	TokenEOF
	TokenNumber
	TokenIdentifier

	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenFloorDiv
	TokenCaret
	TokenOpenParentheses
	TokenCloseParentheses
)

func (t TokenType) String() string {
	switch t {
	case TokenError:
		return "Error"
	case TokenEOF:
		return "EOF"
	case TokenNumber:
		return "Number"
	case TokenIdentifier:
		return "Identifier"
	case TokenPlus:
		return "Plus"
	case TokenMinus:
		return "Minus"
	case TokenStar:
		return "Star"
	case TokenSlash:
		return "Slash"
	case TokenPercent:
		return "Percent"
	case TokenFloorDiv:
		return "FloorDiv"
	case TokenCaret:
		return "Caret"
	case TokenOpenParentheses:
		return "OpenParentheses"
	case TokenCloseParentheses:
		return "CloseParentheses"
	default:
		return "Unknown"
	}
}

// operatorTable maps operator runes to token types. The unicode variants the
// calculator UI emits for its button labels map to the same tokens as their
// ASCII forms.
var operatorTable = map[rune]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'−': TokenMinus,
	'*': TokenStar,
	'×': TokenStar,
	'/': TokenSlash,
	'÷': TokenSlash,
	'%': TokenPercent,
	'^': TokenCaret,
	'(': TokenOpenParentheses,
	')': TokenCloseParentheses,
}

// symbolTable holds the canonical spelling emitted for each operator token,
// so the parser never sees a unicode alias.
var symbolTable = map[TokenType]string{
	TokenPlus:             "+",
	TokenMinus:            "-",
	TokenStar:             "*",
	TokenSlash:            "/",
	TokenPercent:          "%",
	TokenFloorDiv:         "//",
	TokenCaret:            "^",
	TokenOpenParentheses:  "(",
	TokenCloseParentheses: ")",
}

type Token struct {
	Typ   TokenType
	Value string
	Pos   int
}

type LexErrorKind int

const (
	ErrUnexpectedChar LexErrorKind = iota
	ErrMalformedNumber
)

type LexError struct {
	Kind LexErrorKind
	Pos  int
	Char rune
}

func (e *LexError) Error() string {
	switch e.Kind {
	case ErrMalformedNumber:
		return fmt.Sprintf("malformed number at position %d", e.Pos)
	default:
		return fmt.Sprintf("unexpected character '%c' at position %d", e.Char, e.Pos)
	}
}

// Lexer splits an expression into tokens. Positions are rune offsets into the
// input.
type Lexer struct {
	reader *bufio.Reader
	done   chan Token
	pos    int
	err    *LexError
}

func NewLexer(reader io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(reader),
		done:   make(chan Token),
	}
}

func (l *Lexer) Chan() chan Token {
	return l.done
}

func (l *Lexer) Run() {
	for state := defaultState; state != nil; {
		state = state(l)
	}

	close(l.done)
}

// RunBlocking lexes the whole input and returns the token sequence, ending
// with a single EOF token, or the first error encountered.
func (l *Lexer) RunBlocking() ([]Token, error) {
	go l.Run()

	var tokens []Token
	for t := range l.done {
		if t.Typ == TokenError {
			return nil, l.err
		}

		tokens = append(tokens, t)
		if t.Typ == TokenEOF {
			break
		}
	}

	return tokens, nil
}

func defaultState(l *Lexer) stateFunc {
	for {
		switch r := l.peek(); {
		case r == EOF:
			l.done <- Token{Typ: TokenEOF, Pos: l.pos}
			return nil
		case unicode.IsSpace(r):
			l.next()
			continue
		case r == '.' || '0' <= r && r <= '9':
			return numberState
		case unicode.IsLetter(r):
			return identifierState
		default:
			return operatorState
		}
	}
}

func numberState(l *Lexer) stateFunc {
	start := l.pos

	var num strings.Builder
	digits, dots := 0, 0
	for r := l.peek(); r == '.' || '0' <= r && r <= '9'; r = l.peek() {
		if r == '.' {
			dots++
		} else {
			digits++
		}

		num.WriteRune(l.next())
	}

	if digits == 0 || dots > 1 {
		return l.malformedNumber(start)
	}

	return l.emit(TokenNumber, num.String(), start)
}

func identifierState(l *Lexer) stateFunc {
	start := l.pos

	var id strings.Builder
	for r := l.peek(); unicode.IsLetter(r) || unicode.IsDigit(r); r = l.peek() {
		id.WriteRune(l.next())
	}

	return l.emit(TokenIdentifier, id.String(), start)
}

func operatorState(l *Lexer) stateFunc {
	start := l.pos

	r := l.next()
	if r == '/' && l.peek() == '/' { // The only two-rune operator
		l.next()
		return l.emit(TokenFloorDiv, "//", start)
	}

	if tok, ok := operatorTable[r]; ok {
		return l.emit(tok, symbolTable[tok], start)
	}

	return l.unexpectedChar(start, r)
}

func (l *Lexer) unexpectedChar(pos int, r rune) stateFunc {
	l.err = &LexError{Kind: ErrUnexpectedChar, Pos: pos, Char: r}
	l.done <- Token{Typ: TokenError, Value: string(r), Pos: pos}

	return nil
}

func (l *Lexer) malformedNumber(pos int) stateFunc {
	l.err = &LexError{Kind: ErrMalformedNumber, Pos: pos}
	l.done <- Token{Typ: TokenError, Pos: pos}

	return nil
}

func (l *Lexer) emit(t TokenType, val string, pos int) stateFunc {
	l.done <- Token{
		Typ:   t,
		Value: val,
		Pos:   pos,
	}

	return defaultState
}

func (l *Lexer) peek() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return EOF
		}

		return utf8.RuneError
	}

	_ = l.reader.UnreadRune()

	return r
}

func (l *Lexer) next() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return EOF
		}

		return utf8.RuneError
	}

	l.pos++

	return r
}
