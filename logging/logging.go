// Package logging логирование событий списков.
package logging

//go:generate mockgen -destination=../internal/mocks/logger_mock.go -package=mocks -mock_names Logger=LoggerMock github.com/sirkon/seqlist/logging Logger

// Logger абстракция предназначенная для логирования отвергнутых операций над списками.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// WarningEmptyCollection операция op отвергнута, т.к. список пуст.
	WarningEmptyCollection(op string)
	// WarningIndexOutOfRange операция op отвергнута, т.к. позиция position
	// недопустима для списка длины length.
	WarningIndexOutOfRange(op string, position, length int)
}

// Nop логгер, который ничего не делает.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) WarningEmptyCollection(string) {}

func (nopLogger) WarningIndexOutOfRange(string, int, int) {}
