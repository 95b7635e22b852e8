package memory

import (
	"fmt"
	"sync"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/user"

	"github.com/google/uuid"
)

type UserMemoryStorage struct {
	mu         sync.Mutex
	byID       map[string]*model.User
	byUsername map[string]*model.User
}

func NewUserMemoryStorage() *UserMemoryStorage {
	return &UserMemoryStorage{
		byID:       make(map[string]*model.User),
		byUsername: make(map[string]*model.User),
	}
}

func (s *UserMemoryStorage) CreateUser(username, password, firstName, lastName string, age *int32) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// уникальность username обеспечивает само хранилище
	if _, exists := s.byUsername[username]; exists {
		return nil, fmt.Errorf("user %s already exists", username)
	}

	u := &model.User{
		ID:        uuid.New().String(),
		Username:  username,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
	}

	s.byID[u.ID] = u
	s.byUsername[username] = u

	return u, nil
}

func (s *UserMemoryStorage) GetUserByUsername(username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.byUsername[username]
	if !exists {
		return nil, fmt.Errorf("user %s: %w", username, user.ErrNotFound)
	}

	return u, nil
}

func (s *UserMemoryStorage) GetUserByID(id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.byID[id]
	if !exists {
		return nil, fmt.Errorf("user %s: %w", id, user.ErrNotFound)
	}

	return u, nil
}

func (s *UserMemoryStorage) GetUsersByIds(ids []string) (map[string]*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string]*model.User, len(ids))
	for _, id := range ids {
		if u, exists := s.byID[id]; exists {
			result[id] = u
		}
	}

	return result, nil
}
