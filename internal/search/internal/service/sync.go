package service

import (
	"context"

	"github.com/ecartisans/ecartisans/internal/search/internal/domain"
	"github.com/ecartisans/ecartisans/internal/search/internal/repository"
)

// SyncService 由商品事件驅動, 維護商品索引
type SyncService interface {
	Input(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int64) error
}

type syncService struct {
	repo repository.ProductRepo
}

func (s *syncService) Input(ctx context.Context, p domain.Product) error {
	return s.repo.Input(ctx, p)
}

func (s *syncService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func NewSyncSvc(repo repository.ProductRepo) SyncService {
	return &syncService{repo: repo}
}
