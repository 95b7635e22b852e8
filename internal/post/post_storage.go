package post

import (
	"errors"

	"github.com/VitaminP8/blogql/graph/model"
)

var ErrNotFound = errors.New("post not found")

type PostStorage interface {
	CreatePost(ownerID, content string) (*model.Post, error)
	GetPostById(id string) (*model.Post, error)
	GetAllPosts() ([]*model.Post, error)
	GetPostsByUserId(ownerID string) ([]*model.Post, error)
	// UpdatePostContent возвращает ErrNotFound, если поста с таким ID нет.
	UpdatePostContent(id, content string) error
	// DeletePostById идемпотентен: удаление несуществующего ID - не ошибка.
	DeletePostById(id string) error
}
