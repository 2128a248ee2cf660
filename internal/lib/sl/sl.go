// Package sl содержит вспомогательные функции для структурированного
// логирования через slog: единообразные атрибуты для ошибок и секретов.
package sl

import "log/slog"

// Err возвращает slog.Attr с ключом "error" и текстом ошибки.
//
// Пример:
//
//	log.Error("failed to save asset", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Secret возвращает slog.Attr, скрывающий значение секрета в логах.
// Используется, чтобы ключ подписи токенов не попадал в вывод.
func Secret(key string) slog.Attr {
	return slog.Attr{
		Key:   key,
		Value: slog.StringValue("[REDACTED]"),
	}
}
