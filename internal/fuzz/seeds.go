package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
	maxFuzzInput = 1 << 16  // 64 KiB
)

var languageSeeds = []string{
	"",
	"let x = 1;",
	"let x=10+y;\n",
	"const a = 1, b = 2;\nvar c;\n",
	"function f(a, b) {\n    return a+b;\n}\n",
	"if (a) { while (b) { for (;;) {} } } else { switch (c) {} }\n",
	"// comment\n/* block\ncomment */\nlet z = 0;\n",
	"/* lint-disable */\nlet Bad = 1;\n/* lint-enable */\n",
	"let @ = 1;\n",
	"let s = \"open\n",
	"/* never closed",
	"}}}{{{;;;",
	"function () {",
	"let a = 1.5 + .5 - 1.;",
	"let ünï = 'ok';\r\n",
	"x+=1; y**=2; z = a//c\n",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.js файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".js" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
