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

	"github.com/ecartisans/ecartisans/internal/order"
	ordermocks "github.com/ecartisans/ecartisans/internal/order/mocks"
	"github.com/ecartisans/ecartisans/internal/payment/internal/domain"
	"github.com/ecartisans/ecartisans/internal/payment/internal/event"
	evtmocks "github.com/ecartisans/ecartisans/internal/payment/internal/event/mocks"
	"github.com/ecartisans/ecartisans/internal/payment/internal/service/newebpay"
	"github.com/ecartisans/ecartisans/internal/pkg/snowflake"
	"github.com/ecartisans/ecartisans/internal/user"
	usermocks "github.com/ecartisans/ecartisans/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testService(t *testing.T, ctrl *gomock.Controller) (*service, *newebpay.Codec,
	*ordermocks.MockService, *usermocks.MockUserService, *evtmocks.MockPaymentEventProducer) {
	t.Helper()
	codec, err := newebpay.NewCodec(newebpay.Config{
		MerchantID: "MS12345678",
		HashKey:    "AbCdEfGhIjKlMnOpQrStUvWxYz012345",
		HashIV:     "0123456789AbCdEf",
		Version:    "1.5",
		ReturnURL:  "https://shop.ecartisans.tw/pay/return",
		NotifyURL:  "https://shop.ecartisans.tw/pay/notify",
		PayGateway: "https://ccore.newebpay.com/MPG/mpg_gateway",
	})
	require.NoError(t, err)
	gen, err := snowflake.NewMerchantOrderNoGenerator(1)
	require.NoError(t, err)

	orderSvc := ordermocks.NewMockService(ctrl)
	userSvc := usermocks.NewMockUserService(ctrl)
	producer := evtmocks.NewMockPaymentEventProducer(ctrl)
	svc := NewService(codec, orderSvc, userSvc, gen, producer).(*service)
	return svc, codec, orderSvc, userSvc, producer
}

func TestService_InitiateOrderPayment(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, codec, orderSvc, userSvc, _ := testService(t, ctrl)

	// 即便前端聲稱只要付 1 元, 金額也只認伺服器端的 500+30
	o := order.Order{
		ID:         11,
		SN:         "ord-sn-11",
		BuyerID:    7,
		TotalPrice: 500,
		Fare:       30,
		Items: []order.OrderItem{
			{ProductID: 1, Name: "手工皂", Price: 250, Quantity: 2},
		},
	}
	orderSvc.EXPECT().FindOrder(gomock.Any(), "ord-sn-11", int64(7)).Return(o, nil)
	userSvc.EXPECT().Profile(gomock.Any(), int64(7)).
		Return(user.User{ID: 7, Email: "buyer@ecartisans.tw"}, nil)

	var boundMON string
	orderSvc.EXPECT().BindMerchantOrderNo(gomock.Any(), int64(11), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, mon string) error {
			boundMON = mon
			return nil
		})

	info, err := svc.InitiateOrderPayment(context.Background(), domain.OrderPayment{
		OrderSN: "ord-sn-11",
		BuyerID: 7,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, boundMON)
	assert.Equal(t, "MS12345678", info.MerchantID)
	assert.Equal(t, "https://ccore.newebpay.com/MPG/mpg_gateway", info.PayGateway)

	req, err := codec.DecodeRequest(info.TradeInfo)
	require.NoError(t, err)
	assert.Equal(t, int64(530), req.Amt)
	assert.Equal(t, boundMON, req.MerchantOrderNo)
	assert.Equal(t, "buyer@ecartisans.tw", req.Email)
	assert.NoError(t, codec.VerifyTradeSha(info.TradeInfo, info.TradeSha))
}

func TestService_InitiateOrderPaymentReusesMerchantOrderNo(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, codec, orderSvc, userSvc, _ := testService(t, ctrl)

	// 對帳號已經在訂單上就沿用, 不再綁一次
	o := order.Order{
		ID:              12,
		SN:              "ord-sn-12",
		BuyerID:         7,
		TotalPrice:      100,
		MerchantOrderNo: "1700000000123456",
		Items:           []order.OrderItem{{ProductID: 2, Name: "陶杯", Price: 100, Quantity: 1}},
	}
	orderSvc.EXPECT().FindOrder(gomock.Any(), "ord-sn-12", int64(7)).Return(o, nil)
	userSvc.EXPECT().Profile(gomock.Any(), int64(7)).
		Return(user.User{ID: 7, Email: "buyer@ecartisans.tw"}, nil)

	info, err := svc.InitiateOrderPayment(context.Background(), domain.OrderPayment{
		OrderSN: "ord-sn-12",
		BuyerID: 7,
	})
	require.NoError(t, err)
	req, err := codec.DecodeRequest(info.TradeInfo)
	require.NoError(t, err)
	assert.Equal(t, "1700000000123456", req.MerchantOrderNo)
}

func TestService_InitiatePayment(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, codec, _, _, _ := testService(t, ctrl)

	info, err := svc.InitiatePayment(context.Background(), domain.RawPayment{
		Email:    "donor@ecartisans.tw",
		Amt:      1200,
		ItemDesc: "手作市集攤位費",
	})
	require.NoError(t, err)

	req, err := codec.DecodeRequest(info.TradeInfo)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), req.Amt)
	assert.Equal(t, "手作市集攤位費", req.ItemDesc)
	assert.NotEmpty(t, req.MerchantOrderNo)
}

func successNotify(t *testing.T, codec *newebpay.Codec, mon string, amt int64) (string, string) {
	t.Helper()
	payload, err := codec.EncodeNotify(domain.PaymentResult{
		Status:  domain.TradeStatusSuccess,
		Message: "授權成功",
		Result: domain.TradeResult{
			MerchantID:      "MS12345678",
			Amt:             amt,
			TradeNo:         "23061522001",
			MerchantOrderNo: mon,
			PaymentType:     "CREDIT",
			PayTime:         "2026-08-30 12:00:00",
		},
	})
	require.NoError(t, err)
	return payload.TradeInfo, payload.TradeSha
}

func TestService_HandleNotify(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, codec, orderSvc, _, producer := testService(t, ctrl)

	tradeInfo, tradeSha := successNotify(t, codec, "1700000000123456", 530)
	paid := order.Order{
		ID:         11,
		SN:         "ord-sn-11",
		TotalPrice: 500,
		Fare:       30,
		State:      order.StatePaid,
		Items: []order.OrderItem{
			{ProductID: 1, FormatID: 3, Quantity: 2},
		},
	}
	orderSvc.EXPECT().
		MarkPaidByMerchantOrderNo(gomock.Any(), "1700000000123456", "23061522001", "2026-08-30 12:00:00").
		Return(paid, true, nil)
	producer.EXPECT().Produce(gomock.Any(), event.PaymentEvent{
		OrderSN:         "ord-sn-11",
		MerchantOrderNo: "1700000000123456",
		TradeNo:         "23061522001",
		PayTime:         "2026-08-30 12:00:00",
		Amt:             530,
		Items:           []event.PaymentEventItem{{ProductID: 1, FormatID: 3, Quantity: 2}},
	}).Return(nil)

	require.NoError(t, svc.HandleNotify(context.Background(), tradeInfo, tradeSha))
}

func TestService_HandleNotifyDuplicate(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, codec, orderSvc, _, _ := testService(t, ctrl)

	tradeInfo, tradeSha := successNotify(t, codec, "1700000000123456", 530)
	paid := order.Order{SN: "ord-sn-11", State: order.StatePaid}
	// 第二次投遞: 狀態沒被本次改動, 不發事件, 也不報錯
	orderSvc.EXPECT().
		MarkPaidByMerchantOrderNo(gomock.Any(), "1700000000123456", gomock.Any(), gomock.Any()).
		Return(paid, false, nil)

	require.NoError(t, svc.HandleNotify(context.Background(), tradeInfo, tradeSha))
}

func TestService_HandleNotifyUnknownOrder(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, codec, orderSvc, _, _ := testService(t, ctrl)

	tradeInfo, tradeSha := successNotify(t, codec, "no-such-mon", 530)
	orderSvc.EXPECT().
		MarkPaidByMerchantOrderNo(gomock.Any(), "no-such-mon", gomock.Any(), gomock.Any()).
		Return(order.Order{}, false, fmt.Errorf("%w: merchantOrderNo=no-such-mon", order.ErrOrderNotFound))

	err := svc.HandleNotify(context.Background(), tradeInfo, tradeSha)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestService_HandleNotifyTamperedSignature(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, codec, _, _, _ := testService(t, ctrl)

	tradeInfo, _ := successNotify(t, codec, "1700000000123456", 530)
	err := svc.HandleNotify(context.Background(), tradeInfo, "0000DEADBEEF")
	assert.ErrorIs(t, err, newebpay.ErrInvalidSignature)
}

func TestService_HandleNotifyFailedTrade(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, codec, _, _, _ := testService(t, ctrl)

	payload, err := codec.EncodeNotify(domain.PaymentResult{
		Status:  "TRA10035",
		Message: "交易失敗",
		Result: domain.TradeResult{
			MerchantOrderNo: "1700000000123456",
		},
	})
	require.NoError(t, err)

	// 失敗通知不觸碰訂單
	require.NoError(t, svc.HandleNotify(context.Background(), payload.TradeInfo, payload.TradeSha))
}

func TestService_HandleNotifyProducerFailure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, codec, orderSvc, _, producer := testService(t, ctrl)

	tradeInfo, tradeSha := successNotify(t, codec, "1700000000123456", 530)
	paid := order.Order{SN: "ord-sn-11", TotalPrice: 500, Fare: 30, State: order.StatePaid}
	orderSvc.EXPECT().
		MarkPaidByMerchantOrderNo(gomock.Any(), "1700000000123456", gomock.Any(), gomock.Any()).
		Return(paid, true, nil)
	producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(fmt.Errorf("mq掛了"))

	// 訂單已經是已付, 事件發不出去也不能讓閘道重送
	require.NoError(t, svc.HandleNotify(context.Background(), tradeInfo, tradeSha))
}

func TestItemDesc(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		order order.Order
		want  string
	}{
		{
			name:  "無商品退回訂單序列號",
			order: order.Order{SN: "ord-sn-1"},
			want:  "ord-sn-1",
		},
		{
			name: "單件商品用商品名",
			order: order.Order{Items: []order.OrderItem{
				{Name: "手工皂"},
			}},
			want: "手工皂",
		},
		{
			name: "多件商品帶加總件數",
			order: order.Order{Items: []order.OrderItem{
				{Name: "手工皂"}, {Name: "陶杯"}, {Name: "帆布袋"},
			}},
			want: "手工皂 等3件商品",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, itemDesc(tc.order))
		})
	}
}
