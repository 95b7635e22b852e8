package mocks

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/post"
)

// MockPostStorage реализует интерфейс post.PostStorage для тестирования
type MockPostStorage struct {
	mu     sync.Mutex
	posts  map[string]*model.Post
	nextID int

	// ForcedError, если установлена, возвращается из всех операций
	ForcedError error
}

func NewMockPostStorage() *MockPostStorage {
	return &MockPostStorage{
		posts:  make(map[string]*model.Post),
		nextID: 1,
	}
}

func (m *MockPostStorage) CreatePost(ownerID, content string) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ForcedError != nil {
		return nil, m.ForcedError
	}

	p := &model.Post{
		ID:      strconv.Itoa(m.nextID),
		Content: content,
		UserID:  ownerID,
	}
	m.nextID++

	m.posts[p.ID] = p
	return p, nil
}

func (m *MockPostStorage) GetPostById(id string) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ForcedError != nil {
		return nil, m.ForcedError
	}

	p, exists := m.posts[id]
	if !exists {
		return nil, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}

	return p, nil
}

func (m *MockPostStorage) GetAllPosts() ([]*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ForcedError != nil {
		return nil, m.ForcedError
	}

	var posts []*model.Post
	for _, p := range m.posts {
		posts = append(posts, p)
	}

	return posts, nil
}

func (m *MockPostStorage) GetPostsByUserId(ownerID string) ([]*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ForcedError != nil {
		return nil, m.ForcedError
	}

	var posts []*model.Post
	for _, p := range m.posts {
		if p.UserID == ownerID {
			posts = append(posts, p)
		}
	}

	return posts, nil
}

func (m *MockPostStorage) UpdatePostContent(id, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ForcedError != nil {
		return m.ForcedError
	}

	p, exists := m.posts[id]
	if !exists {
		return fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}

	p.Content = content
	return nil
}

func (m *MockPostStorage) DeletePostById(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ForcedError != nil {
		return m.ForcedError
	}

	delete(m.posts, id)
	return nil
}
