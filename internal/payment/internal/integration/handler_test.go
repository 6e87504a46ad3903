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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/ecartisans/ecartisans/internal/cart"
	"github.com/ecartisans/ecartisans/internal/coupon"
	"github.com/ecartisans/ecartisans/internal/order"
	orderweb "github.com/ecartisans/ecartisans/internal/order/internal/web"
	"github.com/ecartisans/ecartisans/internal/payment"
	"github.com/ecartisans/ecartisans/internal/payment/internal/domain"
	"github.com/ecartisans/ecartisans/internal/payment/internal/errs"
	"github.com/ecartisans/ecartisans/internal/payment/internal/service/newebpay"
	"github.com/ecartisans/ecartisans/internal/payment/internal/web"
	"github.com/ecartisans/ecartisans/internal/product"
	"github.com/ecartisans/ecartisans/internal/test"
	testioc "github.com/ecartisans/ecartisans/internal/test/ioc"
	"github.com/ecartisans/ecartisans/internal/user"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/lithammer/shortuuid/v4"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const sellerUID = int64(123)

func TestPaymentModule(t *testing.T) {
	suite.Run(t, new(PaymentModuleTestSuite))
}

type PaymentModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	// gatewayCodec 模擬藍新那一端: 與服務端共用同一組金鑰,
	// 測試用它解開導向資料、再以閘道的格式加密通知
	gatewayCodec *newebpay.Codec
	userSvc      user.Service
	productSvc   product.Service
	cartSvc      cart.Service
	orderSvc     order.Service
	buyerUID     int64
}

func (s *PaymentModuleTestSuite) SetupSuite() {
	t := s.T()
	s.db = testioc.InitDB()
	q := testioc.InitMQ()
	cache := testioc.InitCache()

	userModule := user.InitModule(s.db, cache)
	s.userSvc = userModule.Svc
	productModule := product.InitModule(s.db, q)
	s.productSvc = productModule.Svc
	cartModule := cart.InitModule(s.db, s.productSvc)
	s.cartSvc = cartModule.Svc
	couponModule := coupon.InitModule(s.db)
	orderModule := order.InitModule(s.db, s.cartSvc, s.productSvc, couponModule.Svc, cache)
	s.orderSvc = orderModule.Svc

	cfg := payment.Config{
		MerchantID: "MS350766787",
		HashKey:    "AbCdEfGhIjKlMnOpQrStUvWxYz012345",
		HashIV:     "0123456789AbCdEf",
		Version:    "2.0",
		ReturnURL:  "http://localhost:8080/pay/return",
		NotifyURL:  "http://localhost:8080/pay/notify",
		PayGateway: "https://ccore.newebpay.com/MPG/mpg_gateway",
	}
	m, err := payment.InitModule(cfg, 1, s.orderSvc, s.userSvc, q)
	require.NoError(t, err)
	s.gatewayCodec, err = newebpay.NewCodec(cfg)
	require.NoError(t, err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: s.buyerUID,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	m.Hdl.PublicRoutes(server.Engine)
	orderModule.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *PaymentModuleTestSuite) TearDownTest() {
	for _, table := range []string{
		"users", "products", "formats",
		"cart_items", "orders", "order_items",
	} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		s.NoError(err)
	}
}

func (s *PaymentModuleTestSuite) registerBuyer(email string) {
	t := s.T()
	u, err := s.userSvc.Register(context.Background(), user.User{
		Email: email,
		Name:  "測試買家",
		Role:  user.RoleBuyer,
	}, "hello#world123")
	require.NoError(t, err)
	s.buyerUID = u.ID
}

// createUnpaidOrder 造一張待付款訂單, 返回訂單號與商品ID
func (s *PaymentModuleTestSuite) createUnpaidOrder(title string, price, stock, fare, quantity int64) (string, int64) {
	t := s.T()
	productID, err := s.productSvc.Save(context.Background(), product.Product{
		SellerID: sellerUID,
		Title:    title,
		Fare:     fare,
		Formats:  []product.Format{{Title: "默認", Price: price, Stock: stock}},
	})
	require.NoError(t, err)
	require.NoError(t, s.productSvc.UpdateShelfState(context.Background(), productID, sellerUID, true))
	p, err := s.productSvc.FindByID(context.Background(), productID)
	require.NoError(t, err)
	formatID := p.Formats[0].ID
	require.NoError(t, s.cartSvc.AddItem(context.Background(), s.buyerUID, productID, formatID, quantity))

	req, err := http.NewRequest(http.MethodPost,
		"/order/create", iox.NewJSONReader(orderweb.CreateOrderReq{
			RequestID: shortuuid.New(),
			SellerID:  sellerUID,
			PayMethod: uint8(order.PayMethodCard),
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[orderweb.CreateOrderResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan().Data.OrderSN, productID
}

func (s *PaymentModuleTestSuite) payOrder(orderSN string) *test.JSONResponseRecorder[web.PayResp] {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/pay/order", iox.NewJSONReader(web.PayOrderReq{OrderSN: orderSN}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.PayResp]()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

func (s *PaymentModuleTestSuite) postNotify(tradeInfo, tradeSha string) *httptest.ResponseRecorder {
	t := s.T()
	form := url.Values{}
	form.Set("TradeInfo", tradeInfo)
	form.Set("TradeSha", tradeSha)
	req, err := http.NewRequest(http.MethodPost,
		"/pay/notify", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

func (s *PaymentModuleTestSuite) TestHandler_PayOrderThenNotify() {
	t := s.T()
	s.registerBuyer("buyer@ecartisans.tw")
	orderSN, productID := s.createUnpaidOrder("手織貓窩", 450, 5, 50, 2)

	recorder := s.payOrder(orderSN)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	require.Equal(t, "MS350766787", resp.MerchantID)
	require.Equal(t, "2.0", resp.Version)
	require.Equal(t, "https://ccore.newebpay.com/MPG/mpg_gateway", resp.PayGateway)
	require.Equal(t, "http://localhost:8080/pay/return", resp.ReturnURL)
	require.Equal(t, "http://localhost:8080/pay/notify", resp.NotifyURL)

	// 閘道端驗簽解密, 金額必須是伺服器端重算的 450*2+50
	require.NoError(t, s.gatewayCodec.VerifyTradeSha(resp.TradeInfo, resp.TradeSha))
	payReq, err := s.gatewayCodec.DecodeRequest(resp.TradeInfo)
	require.NoError(t, err)
	require.Equal(t, int64(950), payReq.Amt)
	require.Equal(t, "buyer@ecartisans.tw", payReq.Email)
	require.NotEmpty(t, payReq.MerchantOrderNo)

	// 失敗通知只記錄, 訂單保持未付
	failed, err := s.gatewayCodec.EncodeNotify(domain.PaymentResult{
		Status:  "TRA10035",
		Message: "授權失敗",
		Result: domain.TradeResult{
			MerchantID:      "MS350766787",
			Amt:             950,
			MerchantOrderNo: payReq.MerchantOrderNo,
		},
	})
	require.NoError(t, err)
	notifyRecorder := s.postNotify(failed.TradeInfo, failed.TradeSha)
	require.Equal(t, 200, notifyRecorder.Code)
	o, err := s.orderSvc.FindOrder(context.Background(), orderSN, s.buyerUID)
	require.NoError(t, err)
	require.Equal(t, order.StateUnpaid, o.State)

	// 成功通知: 未付 -> 已付, 回寫交易號與付款時間
	succeeded, err := s.gatewayCodec.EncodeNotify(domain.PaymentResult{
		Status:  "SUCCESS",
		Message: "授權成功",
		Result: domain.TradeResult{
			MerchantID:      "MS350766787",
			Amt:             950,
			TradeNo:         "25082812345678901",
			MerchantOrderNo: payReq.MerchantOrderNo,
			PaymentType:     "CREDIT",
			PayTime:         "2025-08-28 14:03:12",
		},
	})
	require.NoError(t, err)
	notifyRecorder = s.postNotify(succeeded.TradeInfo, succeeded.TradeSha)
	require.Equal(t, 200, notifyRecorder.Code)
	require.Equal(t, "OK", notifyRecorder.Body.String())

	o, err = s.orderSvc.FindOrder(context.Background(), orderSN, s.buyerUID)
	require.NoError(t, err)
	require.Equal(t, order.StatePaid, o.State)
	require.Equal(t, "25082812345678901", o.TradeNo)
	require.Equal(t, "2025-08-28 14:03:12", o.PayTime)
	require.Equal(t, payReq.MerchantOrderNo, o.MerchantOrderNo)

	// 支付成功事件被商品模組消費: 累計銷量並扣減規格庫存
	require.Eventually(t, func() bool {
		p, er := s.productSvc.FindByID(context.Background(), productID)
		if er != nil {
			return false
		}
		return p.Sold == 2 && p.Formats[0].Stock == 3
	}, 5*time.Second, 100*time.Millisecond)

	// 閘道重送同一筆通知: 一樣回 200, 訂單與銷量都不再變化
	notifyRecorder = s.postNotify(succeeded.TradeInfo, succeeded.TradeSha)
	require.Equal(t, 200, notifyRecorder.Code)
	time.Sleep(200 * time.Millisecond)
	p, err := s.productSvc.FindByID(context.Background(), productID)
	require.NoError(t, err)
	require.Equal(t, int64(2), p.Sold)
	require.Equal(t, int64(3), p.Formats[0].Stock)
}

func (s *PaymentModuleTestSuite) TestHandler_PayOrder_OrderNotFound() {
	t := s.T()
	s.registerBuyer("ghost@ecartisans.tw")

	recorder := s.payOrder("no-such-order-sn")
	require.Equal(t, 500, recorder.Code)
	require.Equal(t, errs.OrderNotFound.Code, recorder.MustScan().Code)
}

func (s *PaymentModuleTestSuite) TestHandler_Pay() {
	t := s.T()
	s.registerBuyer("direct@ecartisans.tw")

	req, err := http.NewRequest(http.MethodPost,
		"/pay", iox.NewJSONReader(web.PayReq{
			Email:    "direct@ecartisans.tw",
			Amt:      120,
			ItemDesc: "手工皂",
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.PayResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data

	require.NoError(t, s.gatewayCodec.VerifyTradeSha(resp.TradeInfo, resp.TradeSha))
	payReq, err := s.gatewayCodec.DecodeRequest(resp.TradeInfo)
	require.NoError(t, err)
	require.Equal(t, int64(120), payReq.Amt)
	require.Equal(t, "手工皂", payReq.ItemDesc)
	require.NotEmpty(t, payReq.MerchantOrderNo)
}

func (s *PaymentModuleTestSuite) TestHandler_Pay_MissingField() {
	t := s.T()
	s.registerBuyer("invalid@ecartisans.tw")

	req, err := http.NewRequest(http.MethodPost,
		"/pay", iox.NewJSONReader(web.PayReq{Amt: 120}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.PayResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	require.Equal(t, errs.ValidationError.Code, recorder.MustScan().Code)
}

func (s *PaymentModuleTestSuite) TestHandler_Notify_Untrusted() {
	// 驗不過簽的通知: 不觸碰任何狀態, 但照樣回 200 讓閘道別再重送
	t := s.T()
	recorder := s.postNotify("deadbeef", "0000")
	require.Equal(t, 200, recorder.Code)
	require.Equal(t, "OK", recorder.Body.String())
}
