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
	"fmt"
	"time"

	"github.com/ecartisans/ecartisans/internal/coupon/internal/domain"
	"github.com/ecartisans/ecartisans/internal/coupon/internal/repository"
)

var (
	ErrCouponUnusable = errors.New("無效的優惠券")
	ErrScopeMismatch  = errors.New("優惠券不適用於選定的商品")
)

//go:generate mockgen -source=./service.go -package=couponmocks -destination=../../mocks/coupon.mock.go -typed Service
type Service interface {
	Save(ctx context.Context, c domain.Coupon) (int64, error)
	ListSellerCoupons(ctx context.Context, sellerID int64) ([]domain.Coupon, error)
	// ListClaimable 買家可領取的券, 只含啟用且在效期內的
	ListClaimable(ctx context.Context) ([]domain.Coupon, error)
	Delete(ctx context.Context, id, sellerID int64) error

	Claim(ctx context.Context, couponID, buyerID int64) error
	ListClaims(ctx context.Context, buyerID int64) ([]domain.Claim, error)
	// Deduct 下單時計算優惠並核銷, 失敗時一律返回可判定的錯誤
	Deduct(ctx context.Context, couponID, buyerID, sellerID int64, totalPrice int64, productIDs []int64) (domain.Deduction, error)
	// Release 歸還一張已核銷的券, 訂單落庫失敗時的補償動作, 冪等
	Release(ctx context.Context, couponID, buyerID int64) error
}

func NewService(repo repository.CouponRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.CouponRepository
}

func (s *service) Save(ctx context.Context, c domain.Coupon) (int64, error) {
	if c.Type == domain.TypeDiscount && (c.Percentage < 1 || c.Percentage > 99) {
		return 0, fmt.Errorf("折抵百分比非法: %d", c.Percentage)
	}
	if c.EndDate <= c.StartDate {
		return 0, fmt.Errorf("效期非法")
	}
	return s.repo.Save(ctx, c)
}

func (s *service) ListSellerCoupons(ctx context.Context, sellerID int64) ([]domain.Coupon, error) {
	return s.repo.ListBySellerID(ctx, sellerID)
}

func (s *service) ListClaimable(ctx context.Context) ([]domain.Coupon, error) {
	return s.repo.ListEnabled(ctx, time.Now().UnixMilli())
}

func (s *service) Delete(ctx context.Context, id, sellerID int64) error {
	return s.repo.Delete(ctx, id, sellerID)
}

func (s *service) Claim(ctx context.Context, couponID, buyerID int64) error {
	c, err := s.repo.FindByID(ctx, couponID)
	if err != nil {
		return err
	}
	if !s.usable(c) {
		return fmt.Errorf("%w: id=%d", ErrCouponUnusable, couponID)
	}
	_, err = s.repo.Claim(ctx, couponID, buyerID)
	return err
}

func (s *service) ListClaims(ctx context.Context, buyerID int64) ([]domain.Claim, error) {
	return s.repo.ListClaims(ctx, buyerID)
}

func (s *service) Deduct(ctx context.Context, couponID, buyerID, sellerID int64, totalPrice int64, productIDs []int64) (domain.Deduction, error) {
	claim, err := s.repo.FindClaim(ctx, couponID, buyerID)
	if err != nil {
		return domain.Deduction{}, err
	}
	if claim.Used {
		return domain.Deduction{}, fmt.Errorf("%w: 已使用", ErrCouponUnusable)
	}
	c := claim.Coupon
	if !s.usable(c) {
		return domain.Deduction{}, fmt.Errorf("%w: id=%d", ErrCouponUnusable, couponID)
	}
	if totalPrice < c.DiscountConditions {
		return domain.Deduction{}, fmt.Errorf("%w: 未達滿額門檻", ErrCouponUnusable)
	}
	if err = s.checkScope(c, sellerID, productIDs); err != nil {
		return domain.Deduction{}, err
	}

	// 先核銷再返回, 同一張券不會被兩筆訂單同時使用
	if err = s.repo.MarkClaimUsed(ctx, couponID, buyerID); err != nil {
		return domain.Deduction{}, err
	}

	if c.Type == domain.TypeFreeFare {
		return domain.Deduction{FreeFare: true}, nil
	}
	return domain.Deduction{
		Amount: c.Percentage * totalPrice / 100,
	}, nil
}

func (s *service) Release(ctx context.Context, couponID, buyerID int64) error {
	return s.repo.ReleaseClaim(ctx, couponID, buyerID)
}

func (s *service) usable(c domain.Coupon) bool {
	now := time.Now().UnixMilli()
	return c.IsEnabled && c.StartDate <= now && now <= c.EndDate
}

func (s *service) checkScope(c domain.Coupon, sellerID int64, productIDs []int64) error {
	switch c.Scope {
	case domain.ScopeAll:
		return nil
	case domain.ScopeSeller:
		if c.SellerID != sellerID {
			return fmt.Errorf("%w: 限賣家 %d", ErrScopeMismatch, c.SellerID)
		}
		return nil
	case domain.ScopeChosen:
		chosen := make(map[int64]struct{}, len(c.ChosenProductIDs))
		for _, id := range c.ChosenProductIDs {
			chosen[id] = struct{}{}
		}
		for _, id := range productIDs {
			if _, ok := chosen[id]; ok {
				return nil
			}
		}
		return ErrScopeMismatch
	default:
		return fmt.Errorf("%w: 未知範圍 %d", ErrCouponUnusable, c.Scope)
	}
}
