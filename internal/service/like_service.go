package service

import (
	"context"
	"fmt"

	"school_portal/internal/metrics"
	"school_portal/internal/model"
	"school_portal/internal/repository"
	"school_portal/internal/utils"
)

// LikeService defines operations for lesson likes
type LikeService interface {
	GetLikes(ctx context.Context, subject string, userID *int64) (*model.LikeStatus, error)
	ToggleLike(ctx context.Context, req model.ToggleLikeRequest) (int64, error)
}

type likeService struct {
	repo repository.LikeRepository
}

// NewLikeService creates a new LikeService
func NewLikeService(repo repository.LikeRepository) LikeService {
	return &likeService{repo: repo}
}

// GetLikes returns the like count of subject. HasLiked is only looked up when userID is given.
// A blank subject has no likes.
func (s *likeService) GetLikes(ctx context.Context, subject string, userID *int64) (*model.LikeStatus, error) {
	utils.TrimAll(&subject)
	if subject == "" {
		return &model.LikeStatus{}, nil
	}

	count, err := s.repo.Count(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes in repo: %w", err)
	}
	status := &model.LikeStatus{Likes: count}
	if userID != nil {
		status.HasLiked, err = s.repo.HasLiked(ctx, subject, *userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check like in repo: %w", err)
		}
	}
	return status, nil
}

// ToggleLike likes or unlikes subject and returns the resulting count
func (s *likeService) ToggleLike(ctx context.Context, req model.ToggleLikeRequest) (int64, error) {
	utils.TrimAll(&req.Subject, &req.Action)
	if err := validate(&req, "userId and subject required", nil); err != nil {
		return 0, err
	}
	if req.Action == "" {
		req.Action = model.LikeActionLike
	}

	var (
		count int64
		err   error
	)
	if req.Action == model.LikeActionLike {
		count, err = s.repo.Like(ctx, req.UserID, req.Subject)
	} else {
		req.Action = model.LikeActionUnlike
		count, err = s.repo.Unlike(ctx, req.UserID, req.Subject)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to %s subject in repo: %w", req.Action, err)
	}
	metrics.LikeTogglesTotal.WithLabelValues(req.Action).Inc()
	return count, nil
}
