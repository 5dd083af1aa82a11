package loxlang

// reservedWords maps the 16 keyword spellings to their tokens. Lookup is
// exact and case-sensitive: "Print" is an identifier, "print" is not.
func reservedWords() map[string]Token {
	return map[string]Token{
		"and":    {Kind: TokenAnd},
		"or":     {Kind: TokenOr},
		"if":     {Kind: TokenIf},
		"else":   {Kind: TokenElse},
		"true":   {Kind: TokenTrue},
		"false":  {Kind: TokenFalse},
		"var":    {Kind: TokenVar},
		"fun":    {Kind: TokenFun},
		"return": {Kind: TokenReturn},
		"class":  {Kind: TokenClass},
		"this":   {Kind: TokenThis},
		"super":  {Kind: TokenSuper},
		"for":    {Kind: TokenFor},
		"while":  {Kind: TokenWhile},
		"print":  {Kind: TokenPrint},
		"nil":    {Kind: TokenNil},
	}
}
