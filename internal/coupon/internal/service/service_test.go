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
	"testing"
	"time"

	"github.com/ecartisans/ecartisans/internal/coupon/internal/domain"
	"github.com/ecartisans/ecartisans/internal/coupon/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCouponRepository 記憶體實現, 只支撐 Deduct 相關路徑
type fakeCouponRepository struct {
	repository.CouponRepository
	claims map[int64]*domain.Claim
}

func newFakeRepo(claims ...*domain.Claim) *fakeCouponRepository {
	m := make(map[int64]*domain.Claim, len(claims))
	for _, c := range claims {
		m[c.CouponID] = c
	}
	return &fakeCouponRepository{claims: m}
}

func (f *fakeCouponRepository) FindClaim(_ context.Context, couponID, buyerID int64) (domain.Claim, error) {
	c, ok := f.claims[couponID]
	if !ok || c.BuyerID != buyerID {
		return domain.Claim{}, fmt.Errorf("優惠券不存在: couponID=%d", couponID)
	}
	return *c, nil
}

func (f *fakeCouponRepository) MarkClaimUsed(_ context.Context, couponID, buyerID int64) error {
	c, ok := f.claims[couponID]
	if !ok || c.BuyerID != buyerID || c.Used {
		return fmt.Errorf("優惠券已使用: couponID=%d", couponID)
	}
	c.Used = true
	return nil
}

func (f *fakeCouponRepository) ReleaseClaim(_ context.Context, couponID, buyerID int64) error {
	c, ok := f.claims[couponID]
	if !ok || c.BuyerID != buyerID {
		return nil
	}
	c.Used = false
	return nil
}

func validCoupon(id int64) domain.Coupon {
	now := time.Now().UnixMilli()
	return domain.Coupon{
		ID:                 id,
		SellerID:           7,
		Name:               "滿千八折",
		Type:               domain.TypeDiscount,
		DiscountConditions: 1000,
		Percentage:         20,
		Scope:              domain.ScopeAll,
		IsEnabled:          true,
		StartDate:          now - int64(time.Hour/time.Millisecond),
		EndDate:            now + int64(time.Hour/time.Millisecond),
	}
}

func TestService_Deduct(t *testing.T) {
	t.Parallel()
	const (
		buyerID  = int64(11)
		sellerID = int64(7)
	)

	testCases := []struct {
		name       string
		claim      func() *domain.Claim
		totalPrice int64
		productIDs []int64

		wantDeduction domain.Deduction
		assertErr     assert.ErrorAssertionFunc
	}{
		{
			name: "折抵券扣percentage",
			claim: func() *domain.Claim {
				return &domain.Claim{CouponID: 1, BuyerID: buyerID, Coupon: validCoupon(1)}
			},
			totalPrice:    2000,
			wantDeduction: domain.Deduction{Amount: 400},
			assertErr:     assert.NoError,
		},
		{
			name: "免運券只免運費",
			claim: func() *domain.Claim {
				c := validCoupon(2)
				c.Type = domain.TypeFreeFare
				return &domain.Claim{CouponID: 2, BuyerID: buyerID, Coupon: c}
			},
			totalPrice:    2000,
			wantDeduction: domain.Deduction{FreeFare: true},
			assertErr:     assert.NoError,
		},
		{
			name: "未達滿額門檻",
			claim: func() *domain.Claim {
				return &domain.Claim{CouponID: 3, BuyerID: buyerID, Coupon: validCoupon(3)}
			},
			totalPrice: 999,
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, ErrCouponUnusable)
			},
		},
		{
			name: "已使用過",
			claim: func() *domain.Claim {
				return &domain.Claim{CouponID: 4, BuyerID: buyerID, Used: true, Coupon: validCoupon(4)}
			},
			totalPrice: 2000,
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, ErrCouponUnusable)
			},
		},
		{
			name: "已停用",
			claim: func() *domain.Claim {
				c := validCoupon(5)
				c.IsEnabled = false
				return &domain.Claim{CouponID: 5, BuyerID: buyerID, Coupon: c}
			},
			totalPrice: 2000,
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, ErrCouponUnusable)
			},
		},
		{
			name: "已過期",
			claim: func() *domain.Claim {
				c := validCoupon(6)
				c.EndDate = time.Now().UnixMilli() - 1000
				return &domain.Claim{CouponID: 6, BuyerID: buyerID, Coupon: c}
			},
			totalPrice: 2000,
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, ErrCouponUnusable)
			},
		},
		{
			name: "限定賣家不匹配",
			claim: func() *domain.Claim {
				c := validCoupon(7)
				c.Scope = domain.ScopeSeller
				c.SellerID = 999
				return &domain.Claim{CouponID: 7, BuyerID: buyerID, Coupon: c}
			},
			totalPrice: 2000,
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, ErrScopeMismatch)
			},
		},
		{
			name: "指定商品不在訂單裡",
			claim: func() *domain.Claim {
				c := validCoupon(8)
				c.Scope = domain.ScopeChosen
				c.ChosenProductIDs = []int64{100, 101}
				return &domain.Claim{CouponID: 8, BuyerID: buyerID, Coupon: c}
			},
			totalPrice: 2000,
			productIDs: []int64{200},
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, ErrScopeMismatch)
			},
		},
		{
			name: "指定商品命中其一",
			claim: func() *domain.Claim {
				c := validCoupon(9)
				c.Scope = domain.ScopeChosen
				c.ChosenProductIDs = []int64{100, 101}
				return &domain.Claim{CouponID: 9, BuyerID: buyerID, Coupon: c}
			},
			totalPrice:    2000,
			productIDs:    []int64{200, 101},
			wantDeduction: domain.Deduction{Amount: 400},
			assertErr:     assert.NoError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			claim := tc.claim()
			svc := NewService(newFakeRepo(claim))
			deduction, err := svc.Deduct(context.Background(),
				claim.CouponID, buyerID, sellerID, tc.totalPrice, tc.productIDs)
			tc.assertErr(t, err)
			if err == nil {
				assert.Equal(t, tc.wantDeduction, deduction)
				assert.True(t, claim.Used)
			}
		})
	}
}

func TestService_Deduct_NotClaimed(t *testing.T) {
	t.Parallel()
	svc := NewService(newFakeRepo())
	_, err := svc.Deduct(context.Background(), 42, 11, 7, 2000, nil)
	require.Error(t, err)
}

// 核銷後歸還, 同一張券要能再次核銷
func TestService_ReleaseThenDeductAgain(t *testing.T) {
	t.Parallel()
	claim := &domain.Claim{CouponID: 1, BuyerID: 11, Coupon: validCoupon(1)}
	svc := NewService(newFakeRepo(claim))

	_, err := svc.Deduct(context.Background(), 1, 11, 7, 2000, nil)
	require.NoError(t, err)
	require.True(t, claim.Used)

	require.NoError(t, svc.Release(context.Background(), 1, 11))
	require.False(t, claim.Used)

	deduction, err := svc.Deduct(context.Background(), 1, 11, 7, 2000, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Deduction{Amount: 400}, deduction)
}
