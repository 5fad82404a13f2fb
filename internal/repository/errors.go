package repository

import "errors"

// ErrNotFound возвращается реализациями хранилища, когда запись не найдена
var ErrNotFound = errors.New("repository: not found")
