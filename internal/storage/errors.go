package storage

import "errors"

var (
	// ErrUserExists — имя пользователя уже занято (сравнение регистрозависимое).
	ErrUserExists = errors.New("username already exists")
	// ErrUserNotFound — пользователь с таким именем не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrAssetNotFound — актив с таким идентификатором не найден.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrCorruptStore — документ коллекции существует, но не читается как JSON.
	ErrCorruptStore = errors.New("corrupt store document")
)
