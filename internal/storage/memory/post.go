package memory

import (
	"fmt"
	"sync"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/post"

	"github.com/google/uuid"
)

type PostMemoryStorage struct {
	mu    sync.Mutex
	posts map[string]*model.Post
}

func NewPostMemoryStorage() *PostMemoryStorage {
	return &PostMemoryStorage{
		posts: make(map[string]*model.Post),
	}
}

func (s *PostMemoryStorage) CreatePost(ownerID, content string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &model.Post{
		ID:      uuid.New().String(),
		Content: content,
		UserID:  ownerID,
	}

	s.posts[p.ID] = p
	return p, nil
}

func (s *PostMemoryStorage) GetPostById(id string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.posts[id]
	if !exists {
		return nil, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}

	return p, nil
}

func (s *PostMemoryStorage) GetAllPosts() ([]*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []*model.Post
	for _, p := range s.posts {
		posts = append(posts, p)
	}

	return posts, nil
}

func (s *PostMemoryStorage) GetPostsByUserId(ownerID string) ([]*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var posts []*model.Post
	for _, p := range s.posts {
		if p.UserID == ownerID {
			posts = append(posts, p)
		}
	}

	return posts, nil
}

func (s *PostMemoryStorage) UpdatePostContent(id, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.posts[id]
	if !exists {
		return fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}

	p.Content = content
	return nil
}

func (s *PostMemoryStorage) DeletePostById(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// удаление несуществующего ID - успешный no-op
	delete(s.posts, id)
	return nil
}
