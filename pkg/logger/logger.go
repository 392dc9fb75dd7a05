package logger

// Logger структурированный логгер, который получают все компоненты через конструктор.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field пара ключ-значение для структурированного лога.
type Field struct {
	Key   string
	Value any
}

func NewField(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Err короткая запись для поля с ошибкой.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}
