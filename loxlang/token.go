package loxlang

import (
	"fmt"
	"strconv"
)

type Token struct {
	Kind TokenKind

	// Text holds the lexeme payload for identifier and string tokens. It is
	// sliced from the source buffer, so it stays valid only as long as the
	// source does.
	Text string

	// Number holds the parsed value for number tokens.
	Number float64
}

type TokenKind uint8

const (
	// single-character tokens
	TokenLeftParen TokenKind = iota
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenComma
	TokenDot
	TokenMinus
	TokenPlus
	TokenSemicolon
	TokenSlash
	TokenStar

	// one or two character tokens
	TokenBang
	TokenBangEqual
	TokenEqual
	TokenEqualEqual
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual

	// literals
	TokenIdentifier
	TokenString
	TokenNumber

	// keywords
	TokenAnd
	TokenClass
	TokenElse
	TokenFalse
	TokenFun
	TokenFor
	TokenIf
	TokenNil
	TokenOr
	TokenPrint
	TokenReturn
	TokenSuper
	TokenThis
	TokenTrue
	TokenVar
	TokenWhile

	TokenEOF
)

var kindNames = map[TokenKind]string{
	TokenLeftParen:    "LeftParen",
	TokenRightParen:   "RightParen",
	TokenLeftBrace:    "LeftBrace",
	TokenRightBrace:   "RightBrace",
	TokenComma:        "Comma",
	TokenDot:          "Dot",
	TokenMinus:        "Minus",
	TokenPlus:         "Plus",
	TokenSemicolon:    "Semicolon",
	TokenSlash:        "Slash",
	TokenStar:         "Star",
	TokenBang:         "Bang",
	TokenBangEqual:    "BangEqual",
	TokenEqual:        "Equal",
	TokenEqualEqual:   "EqualEqual",
	TokenGreater:      "Greater",
	TokenGreaterEqual: "GreaterEqual",
	TokenLess:         "Less",
	TokenLessEqual:    "LessEqual",
	TokenIdentifier:   "Identifier",
	TokenString:       "String",
	TokenNumber:       "Number",
	TokenAnd:          "And",
	TokenClass:        "Class",
	TokenElse:         "Else",
	TokenFalse:        "False",
	TokenFun:          "Fun",
	TokenFor:          "For",
	TokenIf:           "If",
	TokenNil:          "Nil",
	TokenOr:           "Or",
	TokenPrint:        "Print",
	TokenReturn:       "Return",
	TokenSuper:        "Super",
	TokenThis:         "This",
	TokenTrue:         "True",
	TokenVar:          "Var",
	TokenWhile:        "While",
	TokenEOF:          "EOF",
}

func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

func (t Token) String() string {
	switch t.Kind {
	case TokenIdentifier:
		return "Identifier(" + t.Text + ")"
	case TokenString:
		return "String(" + strconv.Quote(t.Text) + ")"
	case TokenNumber:
		return "Number(" + strconv.FormatFloat(t.Number, 'g', -1, 64) + ")"
	}
	return t.Kind.String()
}

// TokenInfo pairs a token with the 1-based source line it was recognized on.
type TokenInfo struct {
	Token Token
	Line  int
}

var EOFTokenInfo = &TokenInfo{
	Token: Token{Kind: TokenEOF},
}

func (t TokenInfo) String() string {
	return fmt.Sprintf("%s at line %d", t.Token, t.Line)
}
