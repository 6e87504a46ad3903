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
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ecartisans/ecartisans/internal/order"
	"github.com/ecartisans/ecartisans/internal/payment/internal/domain"
	"github.com/ecartisans/ecartisans/internal/payment/internal/errs"
	"github.com/ecartisans/ecartisans/internal/payment/internal/service"
	"github.com/ecartisans/ecartisans/internal/payment/internal/service/newebpay"
	paymentmocks "github.com/ecartisans/ecartisans/internal/payment/mocks"
	"github.com/ecartisans/ecartisans/internal/test"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func notifyRequest(t *testing.T, tradeInfo, tradeSha string) *http.Request {
	t.Helper()
	form := url.Values{}
	form.Set("TradeInfo", tradeInfo)
	form.Set("TradeSha", tradeSha)
	req := httptest.NewRequest(http.MethodPost, "/pay/notify", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// 閘道只認 200, 回非 200 它就一直重送, 所以無論處理成敗都要 ack
func TestHandler_NotifyAlwaysAcks(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		handleErr error
	}{
		{
			name:      "處理成功",
			handleErr: nil,
		},
		{
			name:      "找不到訂單照樣ack",
			handleErr: fmt.Errorf("訂單對帳失敗: merchantOrderNo=unknown"),
		},
		{
			name:      "驗簽失敗照樣ack",
			handleErr: fmt.Errorf("回調簽章非法: %w", newebpay.ErrInvalidSignature),
		},
		{
			name:      "解密失敗照樣ack",
			handleErr: fmt.Errorf("解析回調失敗: %w", newebpay.ErrDecrypt),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc := paymentmocks.NewMockService(ctrl)
			svc.EXPECT().HandleNotify(gomock.Any(), "deadbeef", "SHA").Return(tc.handleErr)

			gin.SetMode(gin.TestMode)
			server := gin.New()
			NewHandler(svc).PublicRoutes(server)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, notifyRequest(t, "deadbeef", "SHA"))
			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}

func payOrderRequest(t *testing.T, orderSN string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/pay/order",
		iox.NewJSONReader(PayOrderReq{OrderSN: orderSN}))
	req.Header.Set("content-type", "application/json")
	return req
}

func newPayServer(svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: 234}))
	})
	NewHandler(svc).PrivateRoutes(server)
	return server
}

// 不存在的訂單要以自己的錯誤碼回給前端, 不能混進系統錯誤裡
func TestHandler_PayOrderNotFound(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := paymentmocks.NewMockService(ctrl)
	svc.EXPECT().InitiateOrderPayment(gomock.Any(), domain.OrderPayment{
		OrderSN: "no-such-sn",
		BuyerID: 234,
	}).Return(domain.RedirectInfo{},
		fmt.Errorf("查詢待付款訂單失敗: %w", order.ErrOrderNotFound))

	recorder := test.NewJSONResponseRecorder[PayResp]()
	newPayServer(svc).ServeHTTP(recorder, payOrderRequest(t, "no-such-sn"))
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, errs.OrderNotFound.Code, recorder.MustScan().Code)
}

// 導向資料要帶齊前端組表單所需的全部欄位, 包含兩個回調位址
func TestHandler_PayOrderRedirectBundle(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := paymentmocks.NewMockService(ctrl)
	svc.EXPECT().InitiateOrderPayment(gomock.Any(), gomock.Any()).
		Return(domain.RedirectInfo{
			MerchantID: "MS350766787",
			TradeInfo:  "abcd",
			TradeSha:   "EF01",
			Version:    "2.0",
			PayGateway: "https://ccore.newebpay.com/MPG/mpg_gateway",
			ReturnURL:  "http://localhost:8080/pay/return",
			NotifyURL:  "http://localhost:8080/pay/notify",
		}, nil)

	recorder := test.NewJSONResponseRecorder[PayResp]()
	newPayServer(svc).ServeHTTP(recorder, payOrderRequest(t, "SN123"))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, PayResp{
		MerchantID: "MS350766787",
		TradeInfo:  "abcd",
		TradeSha:   "EF01",
		Version:    "2.0",
		PayGateway: "https://ccore.newebpay.com/MPG/mpg_gateway",
		ReturnURL:  "http://localhost:8080/pay/return",
		NotifyURL:  "http://localhost:8080/pay/notify",
	}, recorder.MustScan().Data)
}

func TestHandler_Return(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc := paymentmocks.NewMockService(ctrl)

	gin.SetMode(gin.TestMode)
	server := gin.New()
	NewHandler(svc).PublicRoutes(server)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pay/return", nil)
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "付款處理完成")
}
