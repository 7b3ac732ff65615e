package fuzztests

import (
	"testing"

	"jsstyle/internal/lexer"
	"jsstyle/internal/testkit"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		res := lexer.Tokenize(input)
		if err := testkit.CheckTokenInvariants(input, res); err != nil {
			t.Fatalf("%v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}
