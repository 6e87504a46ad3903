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

package repository

import (
	"context"

	"github.com/ecartisans/ecartisans/internal/cart/internal/domain"
	"github.com/ecartisans/ecartisans/internal/cart/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type CartRepository interface {
	Upsert(ctx context.Context, item domain.Item) error
	UpdateQuantity(ctx context.Context, buyerID, id, quantity int64) error
	Delete(ctx context.Context, buyerID, id int64) error
	List(ctx context.Context, buyerID int64) ([]domain.Item, error)
	ListBySeller(ctx context.Context, buyerID, sellerID int64) ([]domain.Item, error)
	ClearSeller(ctx context.Context, buyerID, sellerID int64) error
}

func NewCartRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{dao: d}
}

type cartRepository struct {
	dao dao.CartDAO
}

func (r *cartRepository) Upsert(ctx context.Context, item domain.Item) error {
	return r.dao.Upsert(ctx, r.toEntity(item))
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, buyerID, id, quantity int64) error {
	return r.dao.UpdateQuantity(ctx, buyerID, id, quantity)
}

func (r *cartRepository) Delete(ctx context.Context, buyerID, id int64) error {
	return r.dao.Delete(ctx, buyerID, id)
}

func (r *cartRepository) List(ctx context.Context, buyerID int64) ([]domain.Item, error) {
	items, err := r.dao.ListByBuyerID(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	return r.toDomains(items), nil
}

func (r *cartRepository) ListBySeller(ctx context.Context, buyerID, sellerID int64) ([]domain.Item, error) {
	items, err := r.dao.ListByBuyerAndSeller(ctx, buyerID, sellerID)
	if err != nil {
		return nil, err
	}
	return r.toDomains(items), nil
}

func (r *cartRepository) ClearSeller(ctx context.Context, buyerID, sellerID int64) error {
	return r.dao.DeleteBySeller(ctx, buyerID, sellerID)
}

func (r *cartRepository) toEntity(item domain.Item) dao.Item {
	return dao.Item{
		Id:        item.ID,
		BuyerId:   item.BuyerID,
		SellerId:  item.SellerID,
		ProductId: item.ProductID,
		FormatId:  item.FormatID,
		Quantity:  item.Quantity,
	}
}

func (r *cartRepository) toDomains(items []dao.Item) []domain.Item {
	return slice.Map(items, func(idx int, src dao.Item) domain.Item {
		return domain.Item{
			ID:        src.Id,
			BuyerID:   src.BuyerId,
			SellerID:  src.SellerId,
			ProductID: src.ProductId,
			FormatID:  src.FormatId,
			Quantity:  src.Quantity,
			Ctime:     src.Ctime,
			Utime:     src.Utime,
		}
	})
}
