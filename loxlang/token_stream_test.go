package loxlang

import "testing"

func TestSliceTokenStream(t *testing.T) {
	reporter := new(CollectReporter)
	tokens := NewScanner("print 1;", reporter).ScanTokens()
	stream := NewSliceTokenStream(tokens)

	expected := []TokenKind{
		TokenPrint,
		TokenNumber,
		TokenSemicolon,
		TokenEOF,
	}
	for i, kind := range expected {
		if got := stream.Current().Token.Kind; got != kind {
			t.Fatalf("step %d: expected %v, got %v", i, kind, got)
		}
		stream.Consume()
	}

	// exhausted stream keeps yielding EOF
	for range 3 {
		if got := stream.Current().Token.Kind; got != TokenEOF {
			t.Fatalf("expected EOF, got %v", got)
		}
		stream.Consume()
	}
}
