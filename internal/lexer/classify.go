package lexer

// ===== Классификаторы =====

func isIdentStartByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isOpByte(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '%', '=', '<', '>', '!', '&', '|':
		return true
	}
	return false
}

func isPunctByte(b byte) bool {
	switch b {
	case '(', ')', '[', ']', '{', '}', ',', '.', ';':
		return true
	}
	return false
}

func isBlankByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}
