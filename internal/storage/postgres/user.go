package postgres

import (
	"fmt"
	"strconv"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/user"
	"github.com/VitaminP8/blogql/models"
	"github.com/jinzhu/gorm"
)

type UserPostgresStorage struct {
	db *gorm.DB
}

func NewUserPostgresStorage(db *gorm.DB) *UserPostgresStorage {
	return &UserPostgresStorage{db: db}
}

func (s *UserPostgresStorage) CreateUser(username, password, firstName, lastName string, age *int32) (*model.User, error) {
	u := &models.User{
		Username:  username,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
	}

	err := s.db.Create(u).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toModelUser(u), nil
}

func (s *UserPostgresStorage) GetUserByUsername(username string) (*model.User, error) {
	var u models.User
	err := s.db.Where("username = ?", username).First(&u).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("user %s: %w", username, user.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get user by username: %w", err)
	}

	return toModelUser(&u), nil
}

func (s *UserPostgresStorage) GetUserByID(id string) (*model.User, error) {
	idUint, err := parseID(id)
	if err != nil {
		// нечисловой ID в этой БД существовать не может
		return nil, fmt.Errorf("user %s: %w", id, user.ErrNotFound)
	}

	var u models.User
	err = s.db.First(&u, idUint).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("user %s: %w", id, user.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get user by id: %w", err)
	}

	return toModelUser(&u), nil
}

func (s *UserPostgresStorage) GetUsersByIds(ids []string) (map[string]*model.User, error) {
	uintIds := make([]uint, 0, len(ids))
	for _, id := range ids {
		idUint, err := parseID(id)
		if err != nil {
			continue
		}
		uintIds = append(uintIds, idUint)
	}

	if len(uintIds) == 0 {
		return map[string]*model.User{}, nil
	}

	var users []models.User
	err := s.db.Where("id IN (?)", uintIds).Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("could not get users by ids: %w", err)
	}

	result := make(map[string]*model.User, len(users))
	for i := range users {
		result[fmt.Sprint(users[i].ID)] = toModelUser(&users[i])
	}

	return result, nil
}

func toModelUser(u *models.User) *model.User {
	return &model.User{
		ID:        fmt.Sprint(u.ID),
		Username:  u.Username,
		Password:  u.Password,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       u.Age,
	}
}

func parseID(id string) (uint, error) {
	idInt, err := strconv.Atoi(id)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q: %w", id, err)
	}
	return uint(idInt), nil
}
