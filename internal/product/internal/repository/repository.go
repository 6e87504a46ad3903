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

	"github.com/ecartisans/ecartisans/internal/product/internal/domain"
	"github.com/ecartisans/ecartisans/internal/product/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"golang.org/x/sync/errgroup"
)

type ProductRepository interface {
	Save(ctx context.Context, p domain.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindFormat(ctx context.Context, productID, formatID int64) (domain.Product, domain.Format, error)
	ListOnShelf(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	ListBySellerID(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Product, int64, error)
	UpdateShelfState(ctx context.Context, id, sellerID int64, onShelf bool) error
	Delete(ctx context.Context, id, sellerID int64) error
	IncrSold(ctx context.Context, id, quantity int64) error
	DecrStock(ctx context.Context, formatID, quantity int64) error
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{dao: d}
}

type productRepository struct {
	dao dao.ProductDAO
}

func (r *productRepository) Save(ctx context.Context, p domain.Product) (int64, error) {
	entity, formats := r.toEntity(p)
	return r.dao.Save(ctx, entity, formats)
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	fs, err := r.dao.FindFormatsByProductID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return r.toDomain(p, fs), nil
}

func (r *productRepository) FindFormat(ctx context.Context, productID, formatID int64) (domain.Product, domain.Format, error) {
	p, f, err := r.dao.FindFormat(ctx, productID, formatID)
	if err != nil {
		return domain.Product{}, domain.Format{}, err
	}
	return r.toDomain(p, nil), r.formatToDomain(f), nil
}

func (r *productRepository) ListOnShelf(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg    errgroup.Group
		ps    []dao.Product
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = r.dao.ListOnShelf(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.dao.CountOnShelf(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src, nil)
	}), total, nil
}

func (r *productRepository) ListBySellerID(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg    errgroup.Group
		ps    []dao.Product
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = r.dao.ListBySellerID(ctx, sellerID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.dao.CountBySellerID(ctx, sellerID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src, nil)
	}), total, nil
}

func (r *productRepository) UpdateShelfState(ctx context.Context, id, sellerID int64, onShelf bool) error {
	return r.dao.UpdateShelfState(ctx, id, sellerID, onShelf)
}

func (r *productRepository) Delete(ctx context.Context, id, sellerID int64) error {
	return r.dao.Delete(ctx, id, sellerID)
}

func (r *productRepository) IncrSold(ctx context.Context, id, quantity int64) error {
	return r.dao.IncrSold(ctx, id, quantity)
}

func (r *productRepository) DecrStock(ctx context.Context, formatID, quantity int64) error {
	return r.dao.DecrStock(ctx, formatID, quantity)
}

func (r *productRepository) toEntity(p domain.Product) (dao.Product, []dao.Format) {
	entity := dao.Product{
		Id:            p.ID,
		SellerId:      p.SellerID,
		Title:         p.Title,
		Category:      p.Category,
		Description:   p.Description,
		Fare:          p.Fare,
		PayMethodCard: p.PayMethodCard,
		PayMethodCash: p.PayMethodCash,
		IsOnShelf:     p.IsOnShelf,
		Sold:          p.Sold,
		Keywords:      sqlx.JsonColumn[[]string]{Val: p.Keywords, Valid: len(p.Keywords) > 0},
		Images:        sqlx.JsonColumn[[]string]{Val: p.Images, Valid: len(p.Images) > 0},
	}
	formats := slice.Map(p.Formats, func(idx int, src domain.Format) dao.Format {
		return dao.Format{
			Id:        src.ID,
			ProductId: p.ID,
			Title:     src.Title,
			Price:     src.Price,
			Stock:     src.Stock,
			Color:     src.Color,
			Image:     src.Image,
		}
	})
	return entity, formats
}

func (r *productRepository) toDomain(p dao.Product, fs []dao.Format) domain.Product {
	return domain.Product{
		ID:            p.Id,
		SellerID:      p.SellerId,
		Title:         p.Title,
		Category:      p.Category,
		Description:   p.Description,
		Fare:          p.Fare,
		PayMethodCard: p.PayMethodCard,
		PayMethodCash: p.PayMethodCash,
		IsOnShelf:     p.IsOnShelf,
		Sold:          p.Sold,
		Keywords:      p.Keywords.Val,
		Images:        p.Images.Val,
		Formats: slice.Map(fs, func(idx int, src dao.Format) domain.Format {
			return r.formatToDomain(src)
		}),
		Ctime: p.Ctime,
		Utime: p.Utime,
	}
}

func (r *productRepository) formatToDomain(f dao.Format) domain.Format {
	return domain.Format{
		ID:        f.Id,
		ProductID: f.ProductId,
		Title:     f.Title,
		Price:     f.Price,
		Stock:     f.Stock,
		Color:     f.Color,
		Image:     f.Image,
	}
}
