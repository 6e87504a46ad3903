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
	"errors"

	"github.com/ecartisans/ecartisans/internal/user/internal/domain"
	"github.com/ecartisans/ecartisans/internal/user/internal/repository/cache"
	"github.com/ecartisans/ecartisans/internal/user/internal/repository/dao"
)

var (
	ErrUserDuplicate = dao.ErrUserDuplicate
	ErrUserNotFound  = errors.New("用戶不存在")
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 只有非零值欄位會被更新
	Update(ctx context.Context, u domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
}

// CachedUserRepository 帶緩存的實現, 只緩存按 ID 的查詢,
// 登入那條按 Email 的路徑永遠打庫
type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

func NewCachedUserRepository(d dao.UserDAO, c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, ur.domainToEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.ID)
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return ur.entityToDomain(u), err
}

func (ur *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	ue, err := ur.dao.FindById(ctx, id)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 回填失敗不影響讀路徑
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:        u.ID,
		SN:        u.SN,
		Email:     u.Email,
		Password:  u.Password,
		Name:      u.Name,
		Phone:     u.Phone,
		Avatar:    u.Avatar,
		Introduce: u.Introduce,
		Role:      uint8(u.Role),
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		ID:        ue.Id,
		SN:        ue.SN,
		Email:     ue.Email,
		Password:  ue.Password,
		Name:      ue.Name,
		Phone:     ue.Phone,
		Avatar:    ue.Avatar,
		Introduce: ue.Introduce,
		Role:      domain.Role(ue.Role),
		Ctime:     ue.Ctime,
		Utime:     ue.Utime,
	}
}
