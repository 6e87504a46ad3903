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
	"testing"
	"time"

	"github.com/ecartisans/ecartisans/internal/cart"
	"github.com/ecartisans/ecartisans/internal/coupon"
	"github.com/ecartisans/ecartisans/internal/order"
	"github.com/ecartisans/ecartisans/internal/order/internal/errs"
	"github.com/ecartisans/ecartisans/internal/order/internal/web"
	"github.com/ecartisans/ecartisans/internal/product"
	"github.com/ecartisans/ecartisans/internal/test"
	testioc "github.com/ecartisans/ecartisans/internal/test/ioc"
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

const (
	buyerUID  = int64(234)
	sellerUID = int64(123)
)

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(OrderModuleTestSuite))
}

type OrderModuleTestSuite struct {
	suite.Suite
	server       *egin.Component
	sellerServer *egin.Component
	db           *egorm.Component
	productSvc   product.Service
	cartSvc      cart.Service
	couponSvc    coupon.Service
	orderSvc     order.Service
}

func (s *OrderModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	q := testioc.InitMQ()
	cache := testioc.InitCache()

	productModule := product.InitModule(s.db, q)
	s.productSvc = productModule.Svc
	cartModule := cart.InitModule(s.db, s.productSvc)
	s.cartSvc = cartModule.Svc
	couponModule := coupon.InitModule(s.db)
	s.couponSvc = couponModule.Svc
	m := order.InitModule(s.db, s.cartSvc, s.productSvc, s.couponSvc, cache)
	s.orderSvc = m.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: buyerUID,
		}))
	})
	m.Hdl.PublicRoutes(server.Engine)
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server

	sellerServer := egin.Load("server").Build()
	sellerServer.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: sellerUID,
		}))
	})
	m.Hdl.PrivateRoutes(sellerServer.Engine)
	s.sellerServer = sellerServer
}

func (s *OrderModuleTestSuite) TearDownTest() {
	for _, table := range []string{
		"orders", "order_items", "reviews", "cart_items",
		"products", "formats", "coupons", "coupon_claims",
	} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		s.NoError(err)
	}
}

// createOnShelfProduct 造一件已上架商品, 返回商品ID與唯一規格ID
func (s *OrderModuleTestSuite) createOnShelfProduct(title string, price, stock, fare int64) (int64, int64) {
	t := s.T()
	id, err := s.productSvc.Save(context.Background(), product.Product{
		SellerID: sellerUID,
		Title:    title,
		Fare:     fare,
		Formats:  []product.Format{{Title: "默認", Price: price, Stock: stock}},
	})
	require.NoError(t, err)
	require.NoError(t, s.productSvc.UpdateShelfState(context.Background(), id, sellerUID, true))
	p, err := s.productSvc.FindByID(context.Background(), id)
	require.NoError(t, err)
	return id, p.Formats[0].ID
}

func (s *OrderModuleTestSuite) createOrder(req web.CreateOrderReq) (*test.JSONResponseRecorder[web.CreateOrderResp], error) {
	httpReq, err := http.NewRequest(http.MethodPost,
		"/order/create", iox.NewJSONReader(req))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CreateOrderResp]()
	s.server.ServeHTTP(recorder, httpReq)
	return recorder, nil
}

func (s *OrderModuleTestSuite) TestHandler_CreateOrder() {
	t := s.T()
	productID, formatID := s.createOnShelfProduct("貓抓板", 250, 10, 60)
	require.NoError(t, s.cartSvc.AddItem(context.Background(), buyerUID, productID, formatID, 2))

	requestID := shortuuid.New()
	recorder, err := s.createOrder(web.CreateOrderReq{
		RequestID: requestID,
		SellerID:  sellerUID,
		PayMethod: uint8(order.PayMethodCash),
	})
	require.NoError(t, err)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	require.NotEmpty(t, resp.OrderSN)
	require.Equal(t, int64(500), resp.TotalPrice)
	require.Equal(t, int64(60), resp.Fare)

	// 結算完成後該賣家的購物車被清空
	items, err := s.cartSvc.ListBySeller(context.Background(), buyerUID, sellerUID)
	require.NoError(t, err)
	require.Empty(t, items)

	// 訂單詳情帶下單當下的快照
	req, err := http.NewRequest(http.MethodPost,
		"/order/detail", iox.NewJSONReader(web.RetrieveOrderDetailReq{OrderSN: resp.OrderSN}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	detailRecorder := test.NewJSONResponseRecorder[web.RetrieveOrderDetailResp]()
	s.server.ServeHTTP(detailRecorder, req)
	require.Equal(t, 200, detailRecorder.Code)
	got := detailRecorder.MustScan().Data.Order
	require.Equal(t, uint8(order.StateUnpaid), got.State)
	require.Len(t, got.Items, 1)
	require.Equal(t, "貓抓板", got.Items[0].Name)
	require.Equal(t, int64(250), got.Items[0].Price)
	require.Equal(t, int64(2), got.Items[0].Quantity)

	// 同一個請求ID重複提交會被攔下
	require.NoError(t, s.cartSvc.AddItem(context.Background(), buyerUID, productID, formatID, 1))
	dupRecorder, err := s.createOrder(web.CreateOrderReq{
		RequestID: requestID,
		SellerID:  sellerUID,
		PayMethod: uint8(order.PayMethodCash),
	})
	require.NoError(t, err)
	require.Equal(t, 500, dupRecorder.Code)
	require.Equal(t, errs.SystemError.Code, dupRecorder.MustScan().Code)
}

func (s *OrderModuleTestSuite) TestHandler_CreateOrder_WithCoupon() {
	t := s.T()
	productID, formatID := s.createOnShelfProduct("逗貓棒", 1000, 5, 80)
	require.NoError(t, s.cartSvc.AddItem(context.Background(), buyerUID, productID, formatID, 1))

	now := time.Now().UnixMilli()
	couponID, err := s.couponSvc.Save(context.Background(), coupon.Coupon{
		SellerID:           sellerUID,
		Name:               "八折券",
		Type:               coupon.TypeDiscount,
		DiscountConditions: 300,
		Percentage:         20,
		Scope:              coupon.ScopeAll,
		IsEnabled:          true,
		StartDate:          now - time.Hour.Milliseconds(),
		EndDate:            now + time.Hour.Milliseconds(),
	})
	require.NoError(t, err)
	require.NoError(t, s.couponSvc.Claim(context.Background(), couponID, buyerUID))

	recorder, err := s.createOrder(web.CreateOrderReq{
		RequestID: shortuuid.New(),
		SellerID:  sellerUID,
		CouponID:  couponID,
		PayMethod: uint8(order.PayMethodCard),
	})
	require.NoError(t, err)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	require.Equal(t, int64(800), resp.TotalPrice)
	require.Equal(t, int64(80), resp.Fare)

	// 券已被核銷, 不能再用
	claims, err := s.couponSvc.ListClaims(context.Background(), buyerUID)
	require.NoError(t, err)
	require.Len(t, claims, 1)
	require.True(t, claims[0].Used)
}

func (s *OrderModuleTestSuite) TestHandler_CreateOrder_EmptyCart() {
	t := s.T()
	recorder, err := s.createOrder(web.CreateOrderReq{
		RequestID: shortuuid.New(),
		SellerID:  sellerUID,
		PayMethod: uint8(order.PayMethodCash),
	})
	require.NoError(t, err)
	require.Equal(t, 500, recorder.Code)
	require.Equal(t, errs.SystemError.Code, recorder.MustScan().Code)
}

func (s *OrderModuleTestSuite) TestHandler_ListOrders() {
	t := s.T()
	for _, title := range []string{"貓砂", "貓跳台"} {
		productID, formatID := s.createOnShelfProduct(title, 300, 10, 0)
		require.NoError(t, s.cartSvc.AddItem(context.Background(), buyerUID, productID, formatID, 1))
		recorder, err := s.createOrder(web.CreateOrderReq{
			RequestID: shortuuid.New(),
			SellerID:  sellerUID,
			PayMethod: uint8(order.PayMethodCash),
		})
		require.NoError(t, err)
		require.Equal(t, 200, recorder.Code)
	}

	req, err := http.NewRequest(http.MethodPost,
		"/order/list", iox.NewJSONReader(web.ListOrdersReq{Offset: 0, Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	require.Equal(t, int64(2), resp.Total)
	require.Len(t, resp.Orders, 2)

	// 賣家視角也能看到這兩張訂單
	req, err = http.NewRequest(http.MethodPost,
		"/seller/order/list", iox.NewJSONReader(web.ListOrdersReq{Offset: 0, Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.sellerServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp = recorder.MustScan().Data
	require.Equal(t, int64(2), resp.Total)
}

// markPaid 模擬付款確認, 把訂單推進到已付狀態
func (s *OrderModuleTestSuite) markPaid(orderSN string) {
	t := s.T()
	o, err := s.orderSvc.FindOrder(context.Background(), orderSN, buyerUID)
	require.NoError(t, err)
	mno := "EC" + shortuuid.New()
	require.NoError(t, s.orderSvc.BindMerchantOrderNo(context.Background(), o.ID, mno))
	_, applied, err := s.orderSvc.MarkPaidByMerchantOrderNo(context.Background(),
		mno, "25077644", "2026-01-15 10:30:00")
	require.NoError(t, err)
	require.True(t, applied)
}

func (s *OrderModuleTestSuite) createReview(req web.CreateReviewReq) *test.JSONResponseRecorder[web.CreateReviewResp] {
	t := s.T()
	httpReq, err := http.NewRequest(http.MethodPost,
		"/order/review", iox.NewJSONReader(req))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CreateReviewResp]()
	s.server.ServeHTTP(recorder, httpReq)
	return recorder
}

func (s *OrderModuleTestSuite) TestHandler_CreateReview() {
	t := s.T()
	productID, formatID := s.createOnShelfProduct("貓草餅乾", 150, 10, 0)
	require.NoError(t, s.cartSvc.AddItem(context.Background(), buyerUID, productID, formatID, 1))
	recorder, err := s.createOrder(web.CreateOrderReq{
		RequestID: shortuuid.New(),
		SellerID:  sellerUID,
		PayMethod: uint8(order.PayMethodCard),
	})
	require.NoError(t, err)
	require.Equal(t, 200, recorder.Code)
	orderSN := recorder.MustScan().Data.OrderSN
	s.markPaid(orderSN)

	reviewRecorder := s.createReview(web.CreateReviewReq{
		OrderSN:   orderSN,
		ProductID: productID,
		Rate:      5,
	})
	require.Equal(t, 200, reviewRecorder.Code)
	require.NotZero(t, reviewRecorder.MustScan().Data.RID)

	// 商品評價列表無需登入就能看到這條評價
	req, err := http.NewRequest(http.MethodPost,
		"/order/review/list", iox.NewJSONReader(web.ListProductReviewsReq{
			ProductID: productID, Offset: 0, Limit: 10,
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	listRecorder := test.NewJSONResponseRecorder[web.ListProductReviewsResp]()
	s.server.ServeHTTP(listRecorder, req)
	require.Equal(t, 200, listRecorder.Code)
	resp := listRecorder.MustScan().Data
	require.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Reviews, 1)
	require.Equal(t, buyerUID, resp.Reviews[0].BuyerID)
	require.Equal(t, int64(5), resp.Reviews[0].Rate)

	// 同一張訂單同一件商品不能評第二次
	dupRecorder := s.createReview(web.CreateReviewReq{
		OrderSN:   orderSN,
		ProductID: productID,
		Rate:      1,
	})
	require.Equal(t, 500, dupRecorder.Code)
	require.Equal(t, errs.DuplicateReview.Code, dupRecorder.MustScan().Code)
}

func (s *OrderModuleTestSuite) TestHandler_CreateReview_Rejected() {
	t := s.T()
	productID, formatID := s.createOnShelfProduct("貓罐頭", 90, 10, 0)
	require.NoError(t, s.cartSvc.AddItem(context.Background(), buyerUID, productID, formatID, 1))
	recorder, err := s.createOrder(web.CreateOrderReq{
		RequestID: shortuuid.New(),
		SellerID:  sellerUID,
		PayMethod: uint8(order.PayMethodCard),
	})
	require.NoError(t, err)
	require.Equal(t, 200, recorder.Code)
	orderSN := recorder.MustScan().Data.OrderSN

	// 未付款的訂單不能評價
	unpaidRecorder := s.createReview(web.CreateReviewReq{
		OrderSN:   orderSN,
		ProductID: productID,
		Rate:      4,
	})
	require.Equal(t, 500, unpaidRecorder.Code)
	require.Equal(t, errs.ReviewNotAllowed.Code, unpaidRecorder.MustScan().Code)

	s.markPaid(orderSN)

	// 不在訂單內的商品不能評價
	otherRecorder := s.createReview(web.CreateReviewReq{
		OrderSN:   orderSN,
		ProductID: productID + 100,
		Rate:      4,
	})
	require.Equal(t, 500, otherRecorder.Code)
	require.Equal(t, errs.ReviewNotAllowed.Code, otherRecorder.MustScan().Code)

	// 評分只能是 1-5
	rateRecorder := s.createReview(web.CreateReviewReq{
		OrderSN:   orderSN,
		ProductID: productID,
		Rate:      6,
	})
	require.Equal(t, 500, rateRecorder.Code)
	require.Equal(t, errs.InvalidOrderParam.Code, rateRecorder.MustScan().Code)

	// 不存在的訂單
	missingRecorder := s.createReview(web.CreateReviewReq{
		OrderSN:   "EC-no-such-order",
		ProductID: productID,
		Rate:      4,
	})
	require.Equal(t, 500, missingRecorder.Code)
	require.Equal(t, errs.OrderNotFound.Code, missingRecorder.MustScan().Code)
}

func (s *OrderModuleTestSuite) TestHandler_RetrieveOrderDetail_NotFound() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/order/detail", iox.NewJSONReader(web.RetrieveOrderDetailReq{OrderSN: "EC-no-such-order"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.RetrieveOrderDetailResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 500, recorder.Code)
	require.Equal(t, errs.OrderNotFound.Code, recorder.MustScan().Code)
}
