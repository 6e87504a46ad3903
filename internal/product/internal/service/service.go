// Copyright 2024 ecartisans
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"fmt"

	"github.com/ecartisans/ecartisans/internal/product/internal/domain"
	"github.com/ecartisans/ecartisans/internal/product/internal/event"
	"github.com/ecartisans/ecartisans/internal/product/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go -typed Service
type Service interface {
	// Save 新增或更新商品,商品會以下架狀態儲存,需另行上架
	Save(ctx context.Context, p domain.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	// FindFormat 查詢單一規格,同時返回所屬商品,供下單時校驗
	FindFormat(ctx context.Context, productID, formatID int64) (domain.Product, domain.Format, error)
	ListOnShelf(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	ListSellerProducts(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Product, int64, error)
	UpdateShelfState(ctx context.Context, id, sellerID int64, onShelf bool) error
	Delete(ctx context.Context, id, sellerID int64) error
	// MarkSold 累計銷量並扣減規格庫存,由支付成功事件觸發
	MarkSold(ctx context.Context, productID, formatID, quantity int64) error
}

func NewService(repo repository.ProductRepository, producer event.ProductEventProducer) Service {
	return &service{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

type service struct {
	repo     repository.ProductRepository
	producer event.ProductEventProducer
	logger   *elog.Component
}

func (s *service) Save(ctx context.Context, p domain.Product) (int64, error) {
	id, err := s.repo.Save(ctx, p)
	if err != nil {
		return 0, err
	}
	p.ID = id
	s.publishEvent(ctx, p, false)
	return id, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindFormat(ctx context.Context, productID, formatID int64) (domain.Product, domain.Format, error) {
	return s.repo.FindFormat(ctx, productID, formatID)
}

func (s *service) ListOnShelf(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	return s.repo.ListOnShelf(ctx, offset, limit)
}

func (s *service) ListSellerProducts(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Product, int64, error) {
	return s.repo.ListBySellerID(ctx, sellerID, offset, limit)
}

func (s *service) UpdateShelfState(ctx context.Context, id, sellerID int64, onShelf bool) error {
	err := s.repo.UpdateShelfState(ctx, id, sellerID, onShelf)
	if err != nil {
		return err
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	s.publishEvent(ctx, p, false)
	return nil
}

func (s *service) Delete(ctx context.Context, id, sellerID int64) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err = s.repo.Delete(ctx, id, sellerID); err != nil {
		return err
	}
	s.publishEvent(ctx, p, true)
	return nil
}

func (s *service) MarkSold(ctx context.Context, productID, formatID, quantity int64) error {
	if err := s.repo.IncrSold(ctx, productID, quantity); err != nil {
		return fmt.Errorf("累計銷量失敗: %w", err)
	}
	if err := s.repo.DecrStock(ctx, formatID, quantity); err != nil {
		// 庫存不足時不回滾銷量,留待賣家補貨修正
		s.logger.Warn("扣減庫存失敗",
			elog.Int64("productID", productID),
			elog.Int64("formatID", formatID),
			elog.Int64("quantity", quantity),
			elog.FieldErr(err))
	}
	return nil
}

// publishEvent 失敗只記錄日誌,商品事件用於搜尋同步,可透過重建索引補償
func (s *service) publishEvent(ctx context.Context, p domain.Product, deleted bool) {
	evt := event.ProductEvent{
		ID:          p.ID,
		SellerID:    p.SellerID,
		Title:       p.Title,
		Category:    p.Category,
		Description: p.Description,
		Keywords:    p.Keywords,
		IsOnShelf:   p.IsOnShelf,
		Deleted:     deleted,
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("發送商品事件失敗",
			elog.Int64("productID", p.ID),
			elog.FieldErr(err))
	}
}
