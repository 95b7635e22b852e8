package mocks

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/user"
)

// MockUserStorage реализует интерфейс user.UserStorage для тестирования
type MockUserStorage struct {
	mu         sync.Mutex
	byID       map[string]*model.User
	byUsername map[string]*model.User
	nextID     int

	// ForcedError, если установлена, возвращается из всех операций
	ForcedError error
}

func NewMockUserStorage() *MockUserStorage {
	return &MockUserStorage{
		byID:       make(map[string]*model.User),
		byUsername: make(map[string]*model.User),
		nextID:     1,
	}
}

func (m *MockUserStorage) CreateUser(username, password, firstName, lastName string, age *int32) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ForcedError != nil {
		return nil, m.ForcedError
	}

	if _, exists := m.byUsername[username]; exists {
		return nil, fmt.Errorf("user %s already exists", username)
	}

	u := &model.User{
		ID:        strconv.Itoa(m.nextID),
		Username:  username,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
	}
	m.nextID++

	m.byID[u.ID] = u
	m.byUsername[username] = u

	return u, nil
}

func (m *MockUserStorage) GetUserByUsername(username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ForcedError != nil {
		return nil, m.ForcedError
	}

	u, exists := m.byUsername[username]
	if !exists {
		return nil, fmt.Errorf("user %s: %w", username, user.ErrNotFound)
	}

	return u, nil
}

func (m *MockUserStorage) GetUserByID(id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ForcedError != nil {
		return nil, m.ForcedError
	}

	u, exists := m.byID[id]
	if !exists {
		return nil, fmt.Errorf("user %s: %w", id, user.ErrNotFound)
	}

	return u, nil
}

func (m *MockUserStorage) GetUsersByIds(ids []string) (map[string]*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ForcedError != nil {
		return nil, m.ForcedError
	}

	result := make(map[string]*model.User, len(ids))
	for _, id := range ids {
		if u, exists := m.byID[id]; exists {
			result[id] = u
		}
	}

	return result, nil
}

// DeleteUser вспомогательный метод: нужен тестам на токен удаленного пользователя
func (m *MockUserStorage) DeleteUser(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, exists := m.byID[id]
	if !exists {
		return
	}

	delete(m.byUsername, u.Username)
	delete(m.byID, id)
}
