package loxlang

import (
	"strconv"
)

// Scanner turns Lox source text into tokens. One instance per scan: cursor
// state is mutated in place, so construct a fresh Scanner for each input.
type Scanner struct {
	code     string
	chars    []charPos
	reporter ErrorReporter

	hadErrors bool
	line      int
	start     int
	current   int
	tokens    []TokenInfo
	reserved  map[string]Token
}

// charPos is one source character with its byte offset, materialized up
// front so lookahead is plain indexing even in multi-byte input.
type charPos struct {
	offset int
	r      rune
}

func NewScanner(code string, reporter ErrorReporter) *Scanner {
	chars := make([]charPos, 0, len(code))
	for offset, r := range code {
		chars = append(chars, charPos{
			offset: offset,
			r:      r,
		})
	}
	return &Scanner{
		code:     code,
		chars:    chars,
		reporter: reporter,
		line:     1,
		reserved: reservedWords(),
	}
}

// ScanTokens consumes the whole input and returns the token sequence,
// ending with an EOF token. Lexical errors are reported and skipped;
// the scan always runs to completion.
func (s *Scanner) ScanTokens() []TokenInfo {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.addToken(Token{Kind: TokenEOF})
	return s.tokens
}

// HadErrors reports whether any lexical error occurred. The token sequence
// is still complete; callers decide whether to proceed with it.
func (s *Scanner) HadErrors() bool {
	return s.hadErrors
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {

	case '(':
		s.addToken(Token{Kind: TokenLeftParen})
	case ')':
		s.addToken(Token{Kind: TokenRightParen})
	case '{':
		s.addToken(Token{Kind: TokenLeftBrace})
	case '}':
		s.addToken(Token{Kind: TokenRightBrace})
	case ',':
		s.addToken(Token{Kind: TokenComma})
	case '.':
		s.addToken(Token{Kind: TokenDot})
	case '-':
		s.addToken(Token{Kind: TokenMinus})
	case '+':
		s.addToken(Token{Kind: TokenPlus})
	case ';':
		s.addToken(Token{Kind: TokenSemicolon})
	case '*':
		s.addToken(Token{Kind: TokenStar})

	case '!':
		if s.match('=') {
			s.addToken(Token{Kind: TokenBangEqual})
		} else {
			s.addToken(Token{Kind: TokenBang})
		}
	case '=':
		if s.match('=') {
			s.addToken(Token{Kind: TokenEqualEqual})
		} else {
			s.addToken(Token{Kind: TokenEqual})
		}
	case '<':
		if s.match('=') {
			s.addToken(Token{Kind: TokenLessEqual})
		} else {
			s.addToken(Token{Kind: TokenLess})
		}
	case '>':
		if s.match('=') {
			s.addToken(Token{Kind: TokenGreaterEqual})
		} else {
			s.addToken(Token{Kind: TokenGreater})
		}

	case '/':
		if s.match('/') {
			// comment runs to the end of the physical line; the newline
			// itself is left for the main loop to count
			for !s.isAtEnd() && s.peek() != '\n' {
				s.advance()
			}
		} else {
			s.addToken(Token{Kind: TokenSlash})
		}

	case ' ', '\r', '\t':

	case '\n':
		s.line++

	case '"':
		s.scanString()

	default:
		if isDigit(c) {
			s.scanNumber()
		} else if isAlpha(c) {
			s.scanIdentifier()
		} else {
			s.hadErrors = true
			s.reporter.Error(s.line, "Unexpected character "+string(c))
		}
	}
}

func (s *Scanner) scanString() {
	for !s.isAtEnd() && s.peek() != '"' {
		if s.advance() == '\n' {
			s.line++
		}
	}

	if s.isAtEnd() {
		s.hadErrors = true
		s.reporter.Error(s.line, "Unterminated string.")
		return
	}
	s.advance() // closing quote

	// payload excludes both quotes
	text := s.code[s.chars[s.start+1].offset:s.chars[s.current-1].offset]
	s.addToken(Token{
		Kind: TokenString,
		Text: text,
	})
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// a dot only belongs to the number when a digit follows
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	text := s.currentText()
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		s.hadErrors = true
		s.reporter.Error(s.line, err.Error())
		return
	}
	s.addToken(Token{
		Kind:   TokenNumber,
		Number: value,
	})
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := s.currentText()
	if token, ok := s.reserved[text]; ok {
		s.addToken(token)
		return
	}
	s.addToken(Token{
		Kind: TokenIdentifier,
		Text: text,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.chars)
}

func (s *Scanner) advance() rune {
	r := s.chars[s.current].r
	s.current++
	return r
}

func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() {
		return false
	}
	if s.chars[s.current].r != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	return s.chars[s.current].r
}

func (s *Scanner) peekNext() rune {
	if s.current+1 >= len(s.chars) {
		return 0
	}
	return s.chars[s.current+1].r
}

// currentText slices the lexeme bounded by start and current out of the
// source buffer, without copying.
func (s *Scanner) currentText() string {
	startOffset := s.chars[s.start].offset
	if s.current >= len(s.chars) {
		return s.code[startOffset:]
	}
	return s.code[startOffset:s.chars[s.current].offset]
}

func (s *Scanner) addToken(token Token) {
	s.tokens = append(s.tokens, TokenInfo{
		Token: token,
		Line:  s.line,
	})
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isAlpha(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
