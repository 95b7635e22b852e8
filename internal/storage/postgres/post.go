package postgres

import (
	"fmt"

	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/post"
	"github.com/VitaminP8/blogql/models"
	"github.com/jinzhu/gorm"
)

type PostPostgresStorage struct {
	db *gorm.DB
}

func NewPostPostgresStorage(db *gorm.DB) *PostPostgresStorage {
	return &PostPostgresStorage{db: db}
}

func (s *PostPostgresStorage) CreatePost(ownerID, content string) (*model.Post, error) {
	ownerUint, err := parseID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID: %w", err)
	}

	p := &models.Post{
		Content: content,
		UserID:  ownerUint,
	}

	err = s.db.Create(p).Error
	if err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	return toModelPost(p), nil
}

func (s *PostPostgresStorage) GetPostById(id string) (*model.Post, error) {
	idUint, err := parseID(id)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}

	var p models.Post
	err = s.db.First(&p, idUint).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get post by id: %w", err)
	}

	result := toModelPost(&p)
	err = s.attachCommentIDs([]*model.Post{result})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *PostPostgresStorage) GetAllPosts() ([]*model.Post, error) {
	var posts []models.Post
	err := s.db.Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("could not get posts: %w", err)
	}

	results := make([]*model.Post, 0, len(posts))
	for i := range posts {
		results = append(results, toModelPost(&posts[i]))
	}

	err = s.attachCommentIDs(results)
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (s *PostPostgresStorage) GetPostsByUserId(ownerID string) ([]*model.Post, error) {
	ownerUint, err := parseID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID: %w", err)
	}

	var posts []models.Post
	err = s.db.Where("user_id = ?", ownerUint).Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("could not get posts by user id: %w", err)
	}

	results := make([]*model.Post, 0, len(posts))
	for i := range posts {
		results = append(results, toModelPost(&posts[i]))
	}

	err = s.attachCommentIDs(results)
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (s *PostPostgresStorage) UpdatePostContent(id, content string) error {
	idUint, err := parseID(id)
	if err != nil {
		return fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}

	res := s.db.Model(&models.Post{}).Where("id = ?", idUint).Update("content", content)
	if res.Error != nil {
		return fmt.Errorf("could not update post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}

	return nil
}

func (s *PostPostgresStorage) DeletePostById(id string) error {
	idUint, err := parseID(id)
	if err != nil {
		// такого ID в БД нет, удалять нечего
		return nil
	}

	err = s.db.Delete(&models.Post{}, idUint).Error
	if err != nil {
		return fmt.Errorf("could not delete post: %w", err)
	}

	return nil
}

// attachCommentIDs одним запросом подтягивает упорядоченные ссылки
// на комментарии для всех переданных постов.
func (s *PostPostgresStorage) attachCommentIDs(posts []*model.Post) error {
	if len(posts) == 0 {
		return nil
	}

	byID := make(map[string]*model.Post, len(posts))
	postIds := make([]uint, 0, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
		idUint, err := parseID(p.ID)
		if err != nil {
			continue
		}
		postIds = append(postIds, idUint)
	}

	var comments []models.Comment
	err := s.db.Select("id, post_id").
		Where("post_id IN (?)", postIds).
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return fmt.Errorf("could not get comment ids: %w", err)
	}

	for i := range comments {
		p, exists := byID[fmt.Sprint(comments[i].PostID)]
		if exists {
			p.CommentIDs = append(p.CommentIDs, fmt.Sprint(comments[i].ID))
		}
	}

	return nil
}

func toModelPost(p *models.Post) *model.Post {
	return &model.Post{
		ID:      fmt.Sprint(p.ID),
		Content: p.Content,
		UserID:  fmt.Sprint(p.UserID),
	}
}
