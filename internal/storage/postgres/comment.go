package postgres

import (
	"fmt"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/models"
	"github.com/jinzhu/gorm"
)

type CommentPostgresStorage struct {
	db *gorm.DB
}

func NewCommentPostgresStorage(db *gorm.DB) *CommentPostgresStorage {
	return &CommentPostgresStorage{db: db}
}

func (s *CommentPostgresStorage) CreateComment(postID, content string) (*model.Comment, error) {
	postIDUint, err := parseID(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID: %w", err)
	}

	c := models.Comment{
		Content: content,
		PostID:  postIDUint,
	}

	// проверка поста и запись комментария - одна транзакция,
	// комментарий без поста в БД не появится
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var p models.Post
		err := tx.First(&p, postIDUint).Error
		if err != nil {
			return fmt.Errorf("post not found: %w", err)
		}

		err = tx.Create(&c).Error
		if err != nil {
			return fmt.Errorf("could not create comment: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.Comment{
		ID:      fmt.Sprint(c.ID),
		PostID:  fmt.Sprint(c.PostID),
		Content: c.Content,
	}, nil
}

func (s *CommentPostgresStorage) GetCommentsByPostId(postID string) ([]*model.Comment, error) {
	postIDUint, err := parseID(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID: %w", err)
	}

	var comments []models.Comment
	err = s.db.Where("post_id = ?", postIDUint).Order("id ASC").Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("could not get comments: %w", err)
	}

	results := make([]*model.Comment, 0, len(comments))
	for i := range comments {
		results = append(results, &model.Comment{
			ID:      fmt.Sprint(comments[i].ID),
			PostID:  fmt.Sprint(comments[i].PostID),
			Content: comments[i].Content,
		})
	}

	return results, nil
}
