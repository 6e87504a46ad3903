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

	"github.com/ecartisans/ecartisans/internal/coupon/internal/domain"
	"github.com/ecartisans/ecartisans/internal/coupon/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

type CouponRepository interface {
	Save(ctx context.Context, c domain.Coupon) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Coupon, error)
	ListBySellerID(ctx context.Context, sellerID int64) ([]domain.Coupon, error)
	ListEnabled(ctx context.Context, now int64) ([]domain.Coupon, error)
	Delete(ctx context.Context, id, sellerID int64) error

	Claim(ctx context.Context, couponID, buyerID int64) (int64, error)
	FindClaim(ctx context.Context, couponID, buyerID int64) (domain.Claim, error)
	ListClaims(ctx context.Context, buyerID int64) ([]domain.Claim, error)
	MarkClaimUsed(ctx context.Context, couponID, buyerID int64) error
	ReleaseClaim(ctx context.Context, couponID, buyerID int64) error
}

func NewCouponRepository(d dao.CouponDAO) CouponRepository {
	return &couponRepository{dao: d}
}

type couponRepository struct {
	dao dao.CouponDAO
}

func (r *couponRepository) Save(ctx context.Context, c domain.Coupon) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(c))
}

func (r *couponRepository) FindByID(ctx context.Context, id int64) (domain.Coupon, error) {
	c, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Coupon{}, err
	}
	return r.toDomain(c), nil
}

func (r *couponRepository) ListBySellerID(ctx context.Context, sellerID int64) ([]domain.Coupon, error) {
	cs, err := r.dao.ListBySellerID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return r.toDomains(cs), nil
}

func (r *couponRepository) ListEnabled(ctx context.Context, now int64) ([]domain.Coupon, error) {
	cs, err := r.dao.ListEnabled(ctx, now)
	if err != nil {
		return nil, err
	}
	return r.toDomains(cs), nil
}

func (r *couponRepository) Delete(ctx context.Context, id, sellerID int64) error {
	return r.dao.Delete(ctx, id, sellerID)
}

func (r *couponRepository) Claim(ctx context.Context, couponID, buyerID int64) (int64, error) {
	return r.dao.InsertClaim(ctx, dao.Claim{
		CouponId: couponID,
		BuyerId:  buyerID,
	})
}

func (r *couponRepository) FindClaim(ctx context.Context, couponID, buyerID int64) (domain.Claim, error) {
	claim, err := r.dao.FindClaim(ctx, couponID, buyerID)
	if err != nil {
		return domain.Claim{}, err
	}
	c, err := r.dao.FindByID(ctx, claim.CouponId)
	if err != nil {
		return domain.Claim{}, err
	}
	return r.claimToDomain(claim, c), nil
}

func (r *couponRepository) ListClaims(ctx context.Context, buyerID int64) ([]domain.Claim, error) {
	claims, err := r.dao.ListClaimsByBuyerID(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Claim, 0, len(claims))
	for _, claim := range claims {
		c, err1 := r.dao.FindByID(ctx, claim.CouponId)
		if err1 != nil {
			// 券可能已被賣家刪除, 跳過
			continue
		}
		res = append(res, r.claimToDomain(claim, c))
	}
	return res, nil
}

func (r *couponRepository) MarkClaimUsed(ctx context.Context, couponID, buyerID int64) error {
	return r.dao.MarkClaimUsed(ctx, couponID, buyerID)
}

func (r *couponRepository) ReleaseClaim(ctx context.Context, couponID, buyerID int64) error {
	return r.dao.MarkClaimUnused(ctx, couponID, buyerID)
}

func (r *couponRepository) toEntity(c domain.Coupon) dao.Coupon {
	return dao.Coupon{
		Id:                 c.ID,
		SellerId:           c.SellerID,
		Name:               c.Name,
		Type:               int64(c.Type),
		DiscountConditions: c.DiscountConditions,
		Percentage:         c.Percentage,
		Scope:              int64(c.Scope),
		ChosenProductIds: sqlx.JsonColumn[[]int64]{
			Val:   c.ChosenProductIDs,
			Valid: len(c.ChosenProductIDs) > 0,
		},
		IsEnabled: c.IsEnabled,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
	}
}

func (r *couponRepository) toDomain(c dao.Coupon) domain.Coupon {
	return domain.Coupon{
		ID:                 c.Id,
		SellerID:           c.SellerId,
		Name:               c.Name,
		Type:               domain.Type(c.Type),
		DiscountConditions: c.DiscountConditions,
		Percentage:         c.Percentage,
		Scope:              domain.Scope(c.Scope),
		ChosenProductIDs:   c.ChosenProductIds.Val,
		IsEnabled:          c.IsEnabled,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
		Ctime:              c.Ctime,
		Utime:              c.Utime,
	}
}

func (r *couponRepository) toDomains(cs []dao.Coupon) []domain.Coupon {
	return slice.Map(cs, func(idx int, src dao.Coupon) domain.Coupon {
		return r.toDomain(src)
	})
}

func (r *couponRepository) claimToDomain(claim dao.Claim, c dao.Coupon) domain.Claim {
	return domain.Claim{
		ID:       claim.Id,
		CouponID: claim.CouponId,
		BuyerID:  claim.BuyerId,
		Used:     claim.Used,
		Coupon:   r.toDomain(c),
		Ctime:    claim.Ctime,
		Utime:    claim.Utime,
	}
}
