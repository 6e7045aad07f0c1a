package service

import (
	"context"
	"errors"
	"fmt"

	"school_portal/internal/model"
	"school_portal/internal/repository"
	"school_portal/internal/utils"
)

// NewsService defines operations for news posts
type NewsService interface {
	ListNews(ctx context.Context) ([]model.News, error)
	CreateNews(ctx context.Context, req model.CreateNewsRequest) (*model.News, error)
	UpdateNews(ctx context.Context, req model.UpdateNewsRequest) error
	DeleteNews(ctx context.Context, id int64) error
}

type newsService struct {
	repo repository.NewsRepository
}

// NewNewsService creates a new NewsService
func NewNewsService(repo repository.NewsRepository) NewsService {
	return &newsService{repo: repo}
}

func (s *newsService) ListNews(ctx context.Context) ([]model.News, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list news from repo: %w", err)
	}
	return items, nil
}

func (s *newsService) CreateNews(ctx context.Context, req model.CreateNewsRequest) (*model.News, error) {
	utils.TrimAll(&req.Title, &req.Content)
	if err := validate(&req, "Title and content required", nil); err != nil {
		return nil, err
	}

	news := &model.News{Title: req.Title, Content: req.Content}
	if err := s.repo.Create(ctx, news); err != nil {
		return nil, fmt.Errorf("failed to create news in repo: %w", err)
	}
	return news, nil
}

func (s *newsService) UpdateNews(ctx context.Context, req model.UpdateNewsRequest) error {
	utils.TrimAll(&req.Title, &req.Content)
	if err := validate(&req, "ID, title and content required", nil); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, &model.News{ID: req.ID, Title: req.Title, Content: req.Content}); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return ErrNewsNotFound
		}
		return fmt.Errorf("failed to update news in repo: %w", err)
	}
	return nil
}

func (s *newsService) DeleteNews(ctx context.Context, id int64) error {
	if id == 0 {
		return invalid("ID required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete news in repo: %w", err)
	}
	return nil
}
