// Package auth содержит бизнес-логику регистрации, входа и разрешения
// аутентифицированного пользователя по токену доступа.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/asset-inventory/internal/lib/jwt"
	"github.com/magabrotheeeer/asset-inventory/internal/lib/password"
	"github.com/magabrotheeeer/asset-inventory/internal/models"
	"github.com/magabrotheeeer/asset-inventory/internal/storage"
)

var (
	// ErrInvalidCredentials — неизвестный пользователь или неверный пароль.
	// Эти два случая намеренно неразличимы в ответе, чтобы по ошибке входа
	// нельзя было перебирать имена пользователей.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated — токен отсутствует, не прошёл проверку, истёк
	// или его subject больше не существует.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// UserRepository описывает контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя.
	RegisterUser(ctx context.Context, user models.User) error
	// GetUserByUsername возвращает пользователя по имени или storage.ErrUserNotFound.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService отвечает за регистрацию, вход и проверку токена доступа.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New создает новый экземпляр AuthService.
func New(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создаёт нового пользователя, сохраняя пароль только в виде
// bcrypt-хеша. Занятое имя пропускает storage.ErrUserExists наверх.
func (s *AuthService) Register(ctx context.Context, username, rawPassword string) error {
	const op = "services.auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:     username,
		PasswordHash: hashed,
	}
	if err := s.users.RegisterUser(ctx, user); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Login проверяет пароль пользователя и выпускает токен доступа,
// привязанный к его имени. Неизвестное имя и неверный пароль дают
// одинаковый ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.Username)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ResolvePrincipal разрешает токен доступа в запись пользователя.
// Любой отказ проверки токена, как и отсутствие пользователя с таким
// именем (токен пережил учётную запись), даёт ErrUnauthenticated.
func (s *AuthService) ResolvePrincipal(ctx context.Context, tokenStr string) (*models.User, error) {
	const op = "services.auth.ResolvePrincipal"

	claims, err := s.jwtMaker.ParseToken(tokenStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	user, err := s.users.GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}
