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
	"errors"

	"github.com/ecartisans/ecartisans/internal/user/internal/domain"
	"github.com/ecartisans/ecartisans/internal/user/internal/repository"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateEmail = repository.ErrUserDuplicate
	// ErrInvalidCredential 帳號不存在和密碼錯誤刻意不區分,
	// 不給撞庫的人任何信息
	ErrInvalidCredential = errors.New("帳號或密碼錯誤")
)

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go -typed UserService
type UserService interface {
	Register(ctx context.Context, u domain.User, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// UpdateNonSensitiveInfo 更新非敏感資料, Email/密碼/角色不走這裡
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo: repo,
	}
}

func (svc *userService) Register(ctx context.Context, u domain.User, password string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	u.SN = shortuuid.New()
	u.Password = string(hash)
	id, err := svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.ID = id
	u.Password = ""
	return u, nil
}

func (svc *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrInvalidCredential
	}
	if err != nil {
		return domain.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return domain.User{}, ErrInvalidCredential
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	user.SN = ""
	user.Email = ""
	user.Password = ""
	user.Role = domain.RoleBuyer
	return svc.repo.Update(ctx, user)
}
