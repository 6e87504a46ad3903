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

	"github.com/ecartisans/ecartisans/internal/cart/internal/domain"
	"github.com/ecartisans/ecartisans/internal/cart/internal/repository"
	"github.com/ecartisans/ecartisans/internal/product"
)

//go:generate mockgen -source=./service.go -package=cartmocks -destination=../../mocks/cart.mock.go -typed Service
type Service interface {
	// AddItem 校驗商品後加入購物車, 同規格已存在則累加數量
	AddItem(ctx context.Context, buyerID, productID, formatID, quantity int64) error
	UpdateQuantity(ctx context.Context, buyerID, id, quantity int64) error
	RemoveItem(ctx context.Context, buyerID, id int64) error
	List(ctx context.Context, buyerID int64) ([]domain.Item, error)
	// ListBySeller 供下單時讀取某賣家的全部購物車項
	ListBySeller(ctx context.Context, buyerID, sellerID int64) ([]domain.Item, error)
	// ClearSeller 下單成功後清空該賣家的購物車項
	ClearSeller(ctx context.Context, buyerID, sellerID int64) error
}

func NewService(repo repository.CartRepository, productSvc product.Service) Service {
	return &service{
		repo:       repo,
		productSvc: productSvc,
	}
}

type service struct {
	repo       repository.CartRepository
	productSvc product.Service
}

func (s *service) AddItem(ctx context.Context, buyerID, productID, formatID, quantity int64) error {
	if quantity < 1 {
		return fmt.Errorf("數量非法: %d", quantity)
	}
	p, f, err := s.productSvc.FindFormat(ctx, productID, formatID)
	if err != nil {
		return fmt.Errorf("商品規格非法: %w", err)
	}
	if !p.IsOnShelf {
		return fmt.Errorf("商品已下架: %s", p.Title)
	}
	if quantity > f.Stock {
		return fmt.Errorf("庫存不足: %s", p.Title)
	}
	return s.repo.Upsert(ctx, domain.Item{
		BuyerID:   buyerID,
		SellerID:  p.SellerID,
		ProductID: productID,
		FormatID:  formatID,
		Quantity:  quantity,
	})
}

func (s *service) UpdateQuantity(ctx context.Context, buyerID, id, quantity int64) error {
	if quantity < 1 {
		return fmt.Errorf("數量非法: %d", quantity)
	}
	return s.repo.UpdateQuantity(ctx, buyerID, id, quantity)
}

func (s *service) RemoveItem(ctx context.Context, buyerID, id int64) error {
	return s.repo.Delete(ctx, buyerID, id)
}

func (s *service) List(ctx context.Context, buyerID int64) ([]domain.Item, error) {
	return s.repo.List(ctx, buyerID)
}

func (s *service) ListBySeller(ctx context.Context, buyerID, sellerID int64) ([]domain.Item, error) {
	return s.repo.ListBySeller(ctx, buyerID, sellerID)
}

func (s *service) ClearSeller(ctx context.Context, buyerID, sellerID int64) error {
	return s.repo.ClearSeller(ctx, buyerID, sellerID)
}
