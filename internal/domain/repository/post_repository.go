package repository

import (
	"context"

	"nativoseo/internal/domain/entity"

	"github.com/google/uuid"
)

// PostRepository records posts created through the service.
type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Post, error)
}
