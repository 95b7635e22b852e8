package user

import (
	"errors"

	"github.com/VitaminP8/blogql/graph/model"
)

var ErrNotFound = errors.New("user not found")

type UserStorage interface {
	CreateUser(username, password, firstName, lastName string, age *int32) (*model.User, error)
	GetUserByUsername(username string) (*model.User, error)
	GetUserByID(id string) (*model.User, error)
	// GetUsersByIds возвращает пользователей одним запросом (ключ - ID).
	// Отсутствующие ID просто не попадают в результат.
	GetUsersByIds(ids []string) (map[string]*model.User, error)
}
