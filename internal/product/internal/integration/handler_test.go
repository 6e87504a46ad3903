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
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecartisans/ecartisans/internal/product"
	"github.com/ecartisans/ecartisans/internal/product/internal/domain"
	"github.com/ecartisans/ecartisans/internal/product/internal/errs"
	"github.com/ecartisans/ecartisans/internal/product/internal/repository/dao"
	"github.com/ecartisans/ecartisans/internal/product/internal/web"
	"github.com/ecartisans/ecartisans/internal/test"
	testioc "github.com/ecartisans/ecartisans/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const sellerUID = int64(123)

func TestProductModule(t *testing.T) {
	suite.Run(t, new(ProductModuleTestSuite))
}

type ProductModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	dao    dao.ProductDAO
	svc    product.Service
	q      mq.MQ
}

func (s *ProductModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.q = testioc.InitMQ()
	m := product.InitModule(s.db, s.q)
	s.svc = m.Svc
	s.dao = dao.NewProductGORMDAO(s.db)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: sellerUID,
		}))
	})
	m.Hdl.PublicRoutes(server.Engine)
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *ProductModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `products`").Error
	s.NoError(err)
	err = s.db.Exec("TRUNCATE TABLE `formats`").Error
	s.NoError(err)
}

func (s *ProductModuleTestSuite) TestHandler_SaveThenRetrieve() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/seller/product/save", iox.NewJSONReader(web.SaveProductReq{
			Product: web.Product{
				Title:         "貓抓板",
				Category:      "寵物用品",
				Description:   "瓦楞紙貓抓板",
				Fare:          60,
				PayMethodCard: true,
				Keywords:      []string{"貓", "抓板"},
				Formats: []web.Format{
					{Title: "大", Price: 250, Stock: 10},
					{Title: "小", Price: 150, Stock: 20},
				},
			},
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	id := recorder.MustScan().Data
	require.True(t, id > 0)

	// 未上架, 買家看不到
	req, err = http.NewRequest(http.MethodPost,
		"/product/detail", iox.NewJSONReader(web.ProductIDReq{ID: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	detailRecorder := test.NewJSONResponseRecorder[web.Product]()
	s.server.ServeHTTP(detailRecorder, req)
	require.Equal(t, 500, detailRecorder.Code)
	require.Equal(t, errs.ProductNotFound.Code, detailRecorder.MustScan().Code)

	// 上架後可以查到
	req, err = http.NewRequest(http.MethodPost,
		"/seller/product/shelf", iox.NewJSONReader(web.UpdateShelfStateReq{ID: id, IsOnShelf: true}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	shelfRecorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(shelfRecorder, req)
	require.Equal(t, 200, shelfRecorder.Code)

	req, err = http.NewRequest(http.MethodPost,
		"/product/detail", iox.NewJSONReader(web.ProductIDReq{ID: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	detailRecorder = test.NewJSONResponseRecorder[web.Product]()
	s.server.ServeHTTP(detailRecorder, req)
	require.Equal(t, 200, detailRecorder.Code)
	p := detailRecorder.MustScan().Data
	require.Equal(t, "貓抓板", p.Title)
	require.Equal(t, int64(60), p.Fare)
	require.Len(t, p.Formats, 2)
	require.Equal(t, int64(250), p.Formats[0].Price)
}

func (s *ProductModuleTestSuite) TestHandler_ListOnShelf() {
	t := s.T()
	for i := 0; i < 3; i++ {
		id, err := s.svc.Save(context.Background(), domain.Product{
			SellerID: sellerUID,
			Title:    "商品",
			Formats:  []domain.Format{{Title: "默認", Price: 100, Stock: 5}},
		})
		require.NoError(t, err)
		// 只上架前兩件
		if i < 2 {
			require.NoError(t, s.svc.UpdateShelfState(context.Background(), id, sellerUID, true))
		}
	}

	req, err := http.NewRequest(http.MethodPost,
		"/product/list", iox.NewJSONReader(web.ListProductsReq{Offset: 0, Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ListProductsResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	require.Equal(t, int64(2), resp.Total)
	require.Len(t, resp.Products, 2)

	// 賣家列表不分上下架
	req, err = http.NewRequest(http.MethodPost,
		"/seller/product/list", iox.NewJSONReader(web.ListProductsReq{Offset: 0, Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.ListProductsResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp = recorder.MustScan().Data
	require.Equal(t, int64(3), resp.Total)
}

func (s *ProductModuleTestSuite) TestConsumer_MarkSoldOnPaymentEvent() {
	t := s.T()
	id, err := s.svc.Save(context.Background(), domain.Product{
		SellerID: sellerUID,
		Title:    "逗貓棒",
		Formats:  []domain.Format{{Title: "默認", Price: 120, Stock: 10}},
	})
	require.NoError(t, err)
	p, err := s.svc.FindByID(context.Background(), id)
	require.NoError(t, err)
	formatID := p.Formats[0].ID

	producer, err := s.q.Producer("payment_events")
	require.NoError(t, err)
	evt := map[string]any{
		"orderSN":         "EC20240101",
		"merchantOrderNo": "1700000000000001",
		"tradeNo":         "24010112345678901",
		"amt":             240,
		"items": []map[string]any{
			{"productID": id, "formatID": formatID, "quantity": 2},
		},
	}
	data, err := json.Marshal(evt)
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, er := s.svc.FindByID(context.Background(), id)
		if er != nil {
			return false
		}
		return got.Sold == 2 && got.Formats[0].Stock == 8
	}, 5*time.Second, 100*time.Millisecond)
}
