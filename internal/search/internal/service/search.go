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

	"github.com/ecartisans/ecartisans/internal/search/internal/domain"
	"github.com/ecartisans/ecartisans/internal/search/internal/repository"
)

const defaultLimit = 20

type SearchService interface {
	SearchProduct(ctx context.Context, offset, limit int, keywords string) ([]domain.Product, error)
}

func NewSearchSvc(repo repository.ProductRepo) SearchService {
	return &searchService{repo: repo}
}

type searchService struct {
	repo repository.ProductRepo
}

func (s *searchService) SearchProduct(ctx context.Context, offset, limit int, keywords string) ([]domain.Product, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.repo.SearchProduct(ctx, offset, limit, keywords)
}
