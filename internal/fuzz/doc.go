// Package fuzztests houses Go fuzz harnesses for the lint pipeline
// (source -> lexer -> parser -> rules -> fix). They guard against panics,
// hangs and broken token coverage on arbitrary input.
//
// Назначение: прогонять произвольные байты через Tokenize, Parse и Analyze
// и проверять инварианты из internal/testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/lexer, internal/parser, internal/driver,
// internal/testkit.

package fuzztests
