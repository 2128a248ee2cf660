package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/asset-inventory/internal/models"
)

// RegisterUser сохраняет нового пользователя в документ users.json.
// Пароль к этому моменту уже должен быть захеширован бизнес-логикой.
// Возвращает ErrUserExists, если имя занято.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) error {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	var users []models.User
	if err := s.readDocument(usersDocument, &users); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	for _, existing := range users {
		if existing.Username == user.Username {
			return fmt.Errorf("%s: %w", op, ErrUserExists)
		}
	}

	users = append(users, user)
	if err := s.writeDocument(usersDocument, users); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetUserByUsername возвращает пользователя по его имени.
// Поиск линейный, берётся первое точное совпадение с учётом регистра.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var users []models.User
	if err := s.readDocument(usersDocument, &users); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, u := range users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
}
