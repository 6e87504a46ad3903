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

package web

import (
	"context"
	"fmt"
	"testing"

	"github.com/ecartisans/ecartisans/internal/cart"
	cartmocks "github.com/ecartisans/ecartisans/internal/cart/mocks"
	"github.com/ecartisans/ecartisans/internal/coupon"
	couponmocks "github.com/ecartisans/ecartisans/internal/coupon/mocks"
	"github.com/ecartisans/ecartisans/internal/order/internal/domain"
	ordermocks "github.com/ecartisans/ecartisans/internal/order/mocks"
	"github.com/ecartisans/ecartisans/internal/pkg/sequencenumber"
	"github.com/ecartisans/ecartisans/internal/product"
	productmocks "github.com/ecartisans/ecartisans/internal/product/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type createOrderMocks struct {
	svc       *ordermocks.MockService
	cartSvc   *cartmocks.MockService
	couponSvc *couponmocks.MockService
}

func newCreateOrderHandler(ctrl *gomock.Controller) (*Handler, createOrderMocks) {
	svc := ordermocks.NewMockService(ctrl)
	cartSvc := cartmocks.NewMockService(ctrl)
	productSvc := productmocks.NewMockService(ctrl)
	couponSvc := couponmocks.NewMockService(ctrl)

	cartSvc.EXPECT().ListBySeller(gomock.Any(), int64(234), int64(123)).
		Return([]cart.Item{{ProductID: 1, FormatID: 2, Quantity: 2}}, nil)
	productSvc.EXPECT().FindFormat(gomock.Any(), int64(1), int64(2)).
		Return(product.Product{
			ID:        1,
			SellerID:  123,
			Title:     "貓抓板",
			Fare:      60,
			IsOnShelf: true,
		}, product.Format{ID: 2, Title: "默認", Price: 250, Stock: 10}, nil)

	h := NewHandler(svc, cartSvc, productSvc, couponSvc,
		sequencenumber.NewGenerator(), nil)
	return h, createOrderMocks{svc: svc, cartSvc: cartSvc, couponSvc: couponSvc}
}

// 券先核銷後落單, 訂單沒落成就要把券還回去
func TestHandler_CreateOrderReleasesCouponOnFailure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	h, m := newCreateOrderHandler(ctrl)

	m.couponSvc.EXPECT().
		Deduct(gomock.Any(), int64(9), int64(234), int64(123), int64(500), []int64{1}).
		Return(coupon.Deduction{Amount: 100}, nil)
	m.svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(domain.Order{}, fmt.Errorf("訂單落庫失敗"))
	m.couponSvc.EXPECT().Release(gomock.Any(), int64(9), int64(234)).Return(nil)

	_, err := h.createOrder(context.Background(), CreateOrderReq{
		SellerID:  123,
		CouponID:  9,
		PayMethod: uint8(domain.PayMethodCard),
	}, 234)
	require.Error(t, err)
}

// 落單成功時券保持核銷, 不會被歸還
func TestHandler_CreateOrderKeepsCouponOnSuccess(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	h, m := newCreateOrderHandler(ctrl)

	m.couponSvc.EXPECT().
		Deduct(gomock.Any(), int64(9), int64(234), int64(123), int64(500), []int64{1}).
		Return(coupon.Deduction{Amount: 100}, nil)
	m.svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o domain.Order) (domain.Order, error) {
			assert.Equal(t, int64(400), o.TotalPrice)
			assert.Equal(t, int64(60), o.Fare)
			return o, nil
		})

	o, err := h.createOrder(context.Background(), CreateOrderReq{
		SellerID:  123,
		CouponID:  9,
		PayMethod: uint8(domain.PayMethodCard),
	}, 234)
	require.NoError(t, err)
	assert.Equal(t, int64(400), o.TotalPrice)
}

// 沒用券的訂單失敗時不該去動優惠券
func TestHandler_CreateOrderNoCouponNoRelease(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	h, m := newCreateOrderHandler(ctrl)

	m.svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(domain.Order{}, fmt.Errorf("訂單落庫失敗"))

	_, err := h.createOrder(context.Background(), CreateOrderReq{
		SellerID:  123,
		PayMethod: uint8(domain.PayMethodCash),
	}, 234)
	require.Error(t, err)
}
