package aurora

// Tokenizer supplies tokens to the parser one at a time.
type Tokenizer interface {
	Get() Token
}

// TokenScanner adapts a lexed token slice to the Tokenizer interface. Reads
// past the end keep returning EOF.
type TokenScanner struct {
	buf []Token
	pos int
}

func NewTokenScanner(toks []Token) *TokenScanner {
	return &TokenScanner{
		buf: toks,
		pos: 0,
	}
}

func (s *TokenScanner) Get() Token {
	if len(s.buf) <= s.pos {
		return Token{Typ: TokenEOF}
	}

	tok := s.buf[s.pos]
	s.pos++

	return tok
}
