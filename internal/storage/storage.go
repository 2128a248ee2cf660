// Package storage реализует хранилище данных на основе плоских JSON-документов
// для управления активами и пользователями. Каждая коллекция хранится одним
// файлом с JSON-массивом записей; файлы являются единственным источником
// истины: каждое чтение заново загружает документ целиком, каждая запись
// переписывает его полностью.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

const (
	usersDocument  = "users.json"
	assetsDocument = "assets.json"
)

// Storage инкапсулирует каталог с JSON-документами и реализует методы
// работы с активами и пользователями. Циклы чтение-изменение-запись
// сериализуются мьютексом на коллекцию, чтобы параллельные записи
// не теряли изменения друг друга.
type Storage struct {
	dir string

	usersMu  sync.Mutex
	assetsMu sync.Mutex
}

// New создаёт каталог хранилища, если его нет, и возвращает Storage.
func New(storagePath string) (*Storage, error) {
	const op = "storage.New"

	if err := os.MkdirAll(storagePath, 0o750); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Storage{dir: storagePath}, nil
}

// readDocument загружает JSON-документ коллекции в target.
// Отсутствующий файл — пустая коллекция, target остаётся без изменений.
// Существующий, но нечитаемый документ — ErrCorruptStore.
func (s *Storage) readDocument(name string, target any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrCorruptStore, name, err)
	}
	return nil
}

// writeDocument атомарно переписывает документ коллекции: данные пишутся
// во временный файл в том же каталоге и затем переименовываются поверх
// документа, поэтому параллельный читатель не увидит частичную запись.
func (s *Storage) writeDocument(name string, value any) error {
	data, err := json.MarshalIndent(value, "", "    ")
	if err != nil {
		return err
	}

	tmp := filepath.Join(s.dir, name+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o640); err != nil {
		return err
	}
	if err := os.Rename(tmp, filepath.Join(s.dir, name)); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
