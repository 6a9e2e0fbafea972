package database

import (
	"context"

	"nativoseo/internal/domain/entity"
	domainerrors "nativoseo/internal/domain/errors"
	"nativoseo/internal/domain/repository"
	"nativoseo/internal/errors"
	"nativoseo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create records a post that was accepted upstream.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	row := &model.PostModel{
		ID:         post.ID,
		UserID:     post.UserID,
		AccountID:  post.AccountID,
		LocationID: post.LocationID,
		PostName:   post.PostName,
		Summary:    post.Summary,
		MediaURL:   post.MediaURL,
		State:      post.State,
		TopicType:  post.TopicType,
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record post")
	}

	post.ID = row.ID
	post.CreatedAt = row.CreatedAt

	return nil
}

// ListByUser returns the newest posts first.
func (repo *postRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Post, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []*model.PostModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	result := make([]*entity.Post, 0, len(rows))
	for _, row := range rows {
		result = append(result, &entity.Post{
			ID:         row.ID,
			UserID:     row.UserID,
			AccountID:  row.AccountID,
			LocationID: row.LocationID,
			PostName:   row.PostName,
			Summary:    row.Summary,
			MediaURL:   row.MediaURL,
			State:      row.State,
			TopicType:  row.TopicType,
			CreatedAt:  row.CreatedAt,
		})
	}

	return result, nil
}
