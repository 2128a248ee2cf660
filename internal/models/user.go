// Package models содержит доменные структуры сервиса учёта активов:
// пользователей, активы и параметры фильтрации.
package models

// User представляет зарегистрированного пользователя системы.
// В документе users.json пароль хранится только в виде bcrypt-хеша,
// JSON-ключ "password" сохранён для совместимости с существующими документами.
type User struct {
	Username     string `json:"username"` // Имя пользователя (уникальное, регистрозависимое)
	PasswordHash string `json:"password"` // bcrypt-хеш пароля
}
