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
	"strconv"

	"github.com/ecartisans/ecartisans/internal/search/internal/domain"
	"github.com/ecartisans/ecartisans/internal/search/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type ProductRepo interface {
	SearchProduct(ctx context.Context, offset, limit int, keywords string) ([]domain.Product, error)
	Input(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int64) error
}

func NewProductRepo(d dao.ProductDAO) ProductRepo {
	return &productRepo{dao: d}
}

type productRepo struct {
	dao dao.ProductDAO
}

func (r *productRepo) SearchProduct(ctx context.Context, offset, limit int, keywords string) ([]domain.Product, error) {
	ps, err := r.dao.SearchProduct(ctx, offset, limit, keywords)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return domain.Product{
			ID:          src.ID,
			SellerID:    src.SellerID,
			Title:       src.Title,
			Category:    src.Category,
			Description: src.Description,
			Keywords:    src.Keywords,
			Highlights:  src.EsHighLights,
		}
	}), nil
}

func (r *productRepo) Input(ctx context.Context, p domain.Product) error {
	return r.dao.Input(ctx, strconv.FormatInt(p.ID, 10), dao.Product{
		ID:          p.ID,
		SellerID:    p.SellerID,
		Title:       p.Title,
		Category:    p.Category,
		Description: p.Description,
		Keywords:    p.Keywords,
	})
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, strconv.FormatInt(id, 10))
}
