package rules

import "jsstyle/internal/token"

// prevCode возвращает индекс ближайшего предыдущего токена, не являющегося
// пробелом или комментарием, либо -1.
func prevCode(toks []token.Token, i int) int {
	for j := i - 1; j >= 0; j-- {
		if toks[j].Kind != token.Whitespace && toks[j].Kind != token.Comment {
			return j
		}
	}
	return -1
}

// isDeclared reports whether the identifier at i directly follows a
// declaration keyword.
func isDeclared(toks []token.Token, i int) bool {
	j := prevCode(toks, i)
	return j >= 0 && toks[j].IsDecl()
}
