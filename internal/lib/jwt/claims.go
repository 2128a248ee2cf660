// Package jwt реализует выпуск и проверку JWT-токенов доступа (HS256).
//
// Токен несёт стандартные claims: Subject — имя пользователя,
// ExpiresAt — абсолютное время истечения. Состояние на сервере не хранится:
// токен проверяется только по подписи и сроку действия.
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken — подпись не сходится, токен структурно повреждён
	// или в нём отсутствует subject.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken — подпись корректна, но срок действия истёк.
	ErrExpiredToken = errors.New("token expired")
)

// DefaultTokenTTL — срок действия токена, если в конфигурации он не задан.
const DefaultTokenTTL = 15 * time.Minute

// Maker описывает интерфейс для выпуска и проверки токенов доступа.
type Maker interface {
	// GenerateToken выпускает токен для указанного пользователя.
	GenerateToken(username string) (string, error)
	// ParseToken проверяет токен и возвращает его claims.
	ParseToken(tokenStr string) (*jwt.RegisteredClaims, error)
}

// MakerImpl реализует Maker на основе секретного ключа и времени жизни токена.
// Секретный ключ приходит из конфигурации процесса, в коде не хранится.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewMaker создаёт MakerImpl. TTL используется как передан: нулевое значение
// означает немедленно истекающие токены, значение по умолчанию применяется
// на уровне конфигурации.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
