package interpret

import (
	"iter"
	"strconv"

	"github.com/ian-shakespeare/liblox/pkg/iterator"
	"github.com/ian-shakespeare/liblox/pkg/runes"
)

type scanner struct {
	source  string
	start   int
	current int
	line    int
}

func NewScanner(source string) *scanner {
	return &scanner{
		source: source,
		line:   1,
	}
}

// Scan tokenizes the whole source. The result always ends with a single
// EOF_TOKEN; the first invalid lexeme aborts the scan.
func Scan(source string) ([]Token, error) {
	return iterator.CollectErr(NewScanner(source).Tokens())
}

// NextToken returns the next token. Once the source is exhausted every call
// returns an EOF_TOKEN.
func (s *scanner) NextToken() (Token, error) {
	for {
		if s.isAtEnd() {
			s.start = s.current
			return s.makeToken(EOF_TOKEN), nil
		}

		s.start = s.current
		b := s.advance()
		switch b {
		case '(':
			return s.makeToken(LEFT_PAREN_TOKEN), nil
		case ')':
			return s.makeToken(RIGHT_PAREN_TOKEN), nil
		case '{':
			return s.makeToken(LEFT_BRACE_TOKEN), nil
		case '}':
			return s.makeToken(RIGHT_BRACE_TOKEN), nil
		case ',':
			return s.makeToken(COMMA_TOKEN), nil
		case '.':
			return s.makeToken(DOT_TOKEN), nil
		case '-':
			return s.makeToken(MINUS_TOKEN), nil
		case '+':
			return s.makeToken(PLUS_TOKEN), nil
		case ';':
			return s.makeToken(SEMICOLON_TOKEN), nil
		case '*':
			return s.makeToken(STAR_TOKEN), nil
		case '!':
			return s.makeToken(s.either('=', BANG_EQUAL_TOKEN, BANG_TOKEN)), nil
		case '=':
			return s.makeToken(s.either('=', EQUAL_EQUAL_TOKEN, EQUAL_TOKEN)), nil
		case '<':
			return s.makeToken(s.either('=', LESS_EQUAL_TOKEN, LESS_TOKEN)), nil
		case '>':
			return s.makeToken(s.either('=', GREATER_EQUAL_TOKEN, GREATER_TOKEN)), nil
		case '/':
			if s.match('/') {
				s.scanComment()
				continue
			}
			return s.makeToken(SLASH_TOKEN), nil
		case ' ', '\r', '\t':
			continue
		case '\n':
			s.line++
			continue
		case '"':
			return s.scanString()
		default:
			if runes.IsDigit(rune(b)) {
				return s.scanNumeric(), nil
			}
			if runes.IsAlpha(rune(b)) {
				return s.scanIdentifier(), nil
			}
			char, _ := runes.DecodeAt(s.source, s.start)
			return Token{}, NewUnexpectedCharError(char, s.line)
		}
	}
}

// Tokens yields every token up to and including the EOF_TOKEN, or up to the
// first error.
func (s *scanner) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			token, err := s.NextToken()
			if !yield(token, err) {
				return
			}
			if err != nil || token.Type == EOF_TOKEN {
				return
			}
		}
	}
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) advance() byte {
	b := s.source[s.current]
	s.current++
	return b
}

func (s *scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *scanner) either(expected byte, matched, unmatched TokenType) TokenType {
	if s.match(expected) {
		return matched
	}
	return unmatched
}

func (s *scanner) makeToken(t TokenType) Token {
	return Token{Type: t, Lexeme: s.source[s.start:s.current], Line: s.line}
}

func (s *scanner) makeLiteral(t TokenType, literal Value) Token {
	token := s.makeToken(t)
	token.Literal = literal
	return token
}

// The trailing newline is left for NextToken so the line count stays in one place.
func (s *scanner) scanComment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func (s *scanner) scanString() (Token, error) {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		return Token{}, NewUnterminatedStringError(s.line)
	}

	// closing quote
	s.advance()

	return s.makeLiteral(STRING_TOKEN, StringValue(s.source[s.start+1:s.current-1])), nil
}

func (s *scanner) scanNumeric() Token {
	for runes.IsDigit(rune(s.peek())) {
		s.advance()
	}

	if s.peek() == '.' && runes.IsDigit(rune(s.peekNext())) {
		s.advance()
		for runes.IsDigit(rune(s.peek())) {
			s.advance()
		}
	}

	// The lexeme is always well formed; out of range values saturate to ±Inf.
	n, _ := strconv.ParseFloat(s.source[s.start:s.current], 64)
	return s.makeLiteral(NUMBER_TOKEN, NumberValue(n))
}

func (s *scanner) scanIdentifier() Token {
	for runes.IsAlphaNumeric(rune(s.peek())) {
		s.advance()
	}

	t, ok := keywords[s.source[s.start:s.current]]
	if !ok {
		return s.makeToken(IDENTIFIER_TOKEN)
	}

	switch t {
	case TRUE_TOKEN:
		return s.makeLiteral(t, BooleanValue(true))
	case FALSE_TOKEN:
		return s.makeLiteral(t, BooleanValue(false))
	case NIL_TOKEN:
		return s.makeLiteral(t, NilValue())
	default:
		return s.makeToken(t)
	}
}
