package memory

import (
	"fmt"
	"sync"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/post"

	"github.com/google/uuid"
)

type CommentMemoryStorage struct {
	mu          sync.Mutex
	comments    map[string]*model.Comment
	postStorage post.PostStorage // хранилище постов (внедрение зависимости)
}

func NewCommentMemoryStorage(postStore post.PostStorage) *CommentMemoryStorage {
	return &CommentMemoryStorage{
		comments:    make(map[string]*model.Comment),
		postStorage: postStore,
	}
}

func (s *CommentMemoryStorage) CreateComment(postID, content string) (*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	curPost, err := s.postStorage.GetPostById(postID)
	if err != nil {
		return nil, fmt.Errorf("post with ID %s not found: %w", postID, err)
	}

	c := &model.Comment{
		ID:      uuid.New().String(),
		PostID:  postID,
		Content: content,
	}

	// запись комментария и добавление ссылки в пост идут под одним мьютексом,
	// осиротевший комментарий здесь невозможен
	s.comments[c.ID] = c
	curPost.CommentIDs = append(curPost.CommentIDs, c.ID)

	return c, nil
}

func (s *CommentMemoryStorage) GetCommentsByPostId(postID string) ([]*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	curPost, err := s.postStorage.GetPostById(postID)
	if err != nil {
		// нет поста - нет и комментариев
		return []*model.Comment{}, nil
	}

	// порядок задает список ссылок поста (только добавление в конец)
	comments := make([]*model.Comment, 0, len(curPost.CommentIDs))
	for _, id := range curPost.CommentIDs {
		if c, exists := s.comments[id]; exists {
			comments = append(comments, c)
		}
	}

	return comments, nil
}
