package token

var keywords = map[string]struct{}{
	"let":      {},
	"const":    {},
	"var":      {},
	"function": {},
	"if":       {},
	"else":     {},
	"while":    {},
	"for":      {},
	"return":   {},
}

// declKeywords вводят новое имя: после них идентификатор проверяется на стиль
// и не считается использованием.
var declKeywords = map[string]struct{}{
	"let":      {},
	"const":    {},
	"var":      {},
	"function": {},
}

// LookupKeyword reports whether ident is a reserved word.
// Ключевые слова регистрозависимые: только lowercase версии распознаются.
func LookupKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

// IsDeclKeyword reports whether text is a keyword that declares a name.
func IsDeclKeyword(text string) bool {
	_, ok := declKeywords[text]
	return ok
}
