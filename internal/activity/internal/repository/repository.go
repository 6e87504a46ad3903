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

	"github.com/ecartisans/ecartisans/internal/activity/internal/domain"
	"github.com/ecartisans/ecartisans/internal/activity/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

type ActivityRepository interface {
	Save(ctx context.Context, a domain.Activity) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Activity, error)
	ListBySellerID(ctx context.Context, sellerID int64) ([]domain.Activity, error)
	ListRunning(ctx context.Context, now int64, offset, limit int) ([]domain.Activity, error)
	Delete(ctx context.Context, id, sellerID int64) error
}

func NewActivityRepository(d dao.ActivityDAO) ActivityRepository {
	return &activityRepository{dao: d}
}

type activityRepository struct {
	dao dao.ActivityDAO
}

func (r *activityRepository) Save(ctx context.Context, a domain.Activity) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(a))
}

func (r *activityRepository) FindByID(ctx context.Context, id int64) (domain.Activity, error) {
	a, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Activity{}, err
	}
	return r.toDomain(a), nil
}

func (r *activityRepository) ListBySellerID(ctx context.Context, sellerID int64) ([]domain.Activity, error) {
	as, err := r.dao.ListBySellerID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return r.toDomains(as), nil
}

func (r *activityRepository) ListRunning(ctx context.Context, now int64, offset, limit int) ([]domain.Activity, error) {
	as, err := r.dao.ListRunning(ctx, now, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.toDomains(as), nil
}

func (r *activityRepository) Delete(ctx context.Context, id, sellerID int64) error {
	return r.dao.Delete(ctx, id, sellerID)
}

func (r *activityRepository) toEntity(a domain.Activity) dao.Activity {
	return dao.Activity{
		Id:          a.ID,
		SellerId:    a.SellerID,
		Name:        a.Name,
		Description: a.Description,
		Images: sqlx.JsonColumn[[]string]{
			Val:   a.Images,
			Valid: len(a.Images) > 0,
		},
		Category:    string(a.Category),
		IsPublished: a.IsPublished,
		StartDate:   a.StartDate,
		EndDate:     a.EndDate,
	}
}

func (r *activityRepository) toDomain(a dao.Activity) domain.Activity {
	return domain.Activity{
		ID:          a.Id,
		SellerID:    a.SellerId,
		Name:        a.Name,
		Description: a.Description,
		Images:      a.Images.Val,
		Category:    domain.Category(a.Category),
		IsPublished: a.IsPublished,
		StartDate:   a.StartDate,
		EndDate:     a.EndDate,
		Ctime:       a.Ctime,
		Utime:       a.Utime,
	}
}

func (r *activityRepository) toDomains(as []dao.Activity) []domain.Activity {
	return slice.Map(as, func(idx int, src dao.Activity) domain.Activity {
		return r.toDomain(src)
	})
}
