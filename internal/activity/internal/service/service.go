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
	"time"

	"github.com/ecartisans/ecartisans/internal/activity/internal/domain"
	"github.com/ecartisans/ecartisans/internal/activity/internal/repository"
)

type Service interface {
	Save(ctx context.Context, a domain.Activity) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Activity, error)
	ListSellerActivities(ctx context.Context, sellerID int64) ([]domain.Activity, error)
	ListRunning(ctx context.Context, offset, limit int) ([]domain.Activity, error)
	Delete(ctx context.Context, id, sellerID int64) error
}

func NewService(repo repository.ActivityRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ActivityRepository
}

func (s *service) Save(ctx context.Context, a domain.Activity) (int64, error) {
	if a.Category != domain.CategoryEvent && a.Category != domain.CategoryNotice {
		return 0, fmt.Errorf("類別非法: %s", a.Category)
	}
	if a.EndDate <= a.StartDate {
		return 0, fmt.Errorf("效期非法")
	}
	return s.repo.Save(ctx, a)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Activity, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListSellerActivities(ctx context.Context, sellerID int64) ([]domain.Activity, error) {
	return s.repo.ListBySellerID(ctx, sellerID)
}

func (s *service) ListRunning(ctx context.Context, offset, limit int) ([]domain.Activity, error) {
	return s.repo.ListRunning(ctx, time.Now().UnixMilli(), offset, limit)
}

func (s *service) Delete(ctx context.Context, id, sellerID int64) error {
	return s.repo.Delete(ctx, id, sellerID)
}
