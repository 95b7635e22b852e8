package mocks

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/post"
)

// MockCommentStorage реализует интерфейс comment.CommentStorage для тестирования
type MockCommentStorage struct {
	mu          sync.Mutex
	comments    map[string]*model.Comment
	nextID      int
	postStorage post.PostStorage

	// ForcedError, если установлена, возвращается из всех операций
	ForcedError error
}

func NewMockCommentStorage(postStore post.PostStorage) *MockCommentStorage {
	return &MockCommentStorage{
		comments:    make(map[string]*model.Comment),
		nextID:      1,
		postStorage: postStore,
	}
}

func (m *MockCommentStorage) CreateComment(postID, content string) (*model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ForcedError != nil {
		return nil, m.ForcedError
	}

	curPost, err := m.postStorage.GetPostById(postID)
	if err != nil {
		return nil, fmt.Errorf("post with ID %s not found: %w", postID, err)
	}

	c := &model.Comment{
		ID:      strconv.Itoa(m.nextID),
		PostID:  postID,
		Content: content,
	}
	m.nextID++

	m.comments[c.ID] = c
	curPost.CommentIDs = append(curPost.CommentIDs, c.ID)

	return c, nil
}

func (m *MockCommentStorage) GetCommentsByPostId(postID string) ([]*model.Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ForcedError != nil {
		return nil, m.ForcedError
	}

	curPost, err := m.postStorage.GetPostById(postID)
	if err != nil {
		return []*model.Comment{}, nil
	}

	comments := make([]*model.Comment, 0, len(curPost.CommentIDs))
	for _, id := range curPost.CommentIDs {
		if c, exists := m.comments[id]; exists {
			comments = append(comments, c)
		}
	}

	return comments, nil
}
