package loxlang

// TokenStream is the pull-style view a parser consumes. Current never
// returns nil: an exhausted stream keeps yielding the EOF token.
type TokenStream interface {
	Current() *TokenInfo
	Consume()
}

type SliceTokenStream struct {
	tokens []TokenInfo
	idx    int
}

func NewSliceTokenStream(tokens []TokenInfo) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Current() *TokenInfo {
	if s.idx >= len(s.tokens) {
		return EOFTokenInfo
	}
	return &s.tokens[s.idx]
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}
