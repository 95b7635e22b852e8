package comment

import (
	"github.com/VitaminP8/blogql/graph/model"
)

type CommentStorage interface {
	// CreateComment сохраняет комментарий и атомарно добавляет ссылку на него
	// в список комментариев поста. Отсутствующий пост - ошибка.
	CreateComment(postID, content string) (*model.Comment, error)
	GetCommentsByPostId(postID string) ([]*model.Comment, error)
}
