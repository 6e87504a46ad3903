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

	"github.com/ecartisans/ecartisans/internal/activity"
	"github.com/ecartisans/ecartisans/internal/activity/internal/domain"
	"github.com/ecartisans/ecartisans/internal/activity/internal/errs"
	"github.com/ecartisans/ecartisans/internal/activity/internal/web"
	"github.com/ecartisans/ecartisans/internal/test"
	testioc "github.com/ecartisans/ecartisans/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const sellerUID = int64(123)

func TestActivityModule(t *testing.T) {
	suite.Run(t, new(ActivityModuleTestSuite))
}

type ActivityModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	svc    activity.Service
}

func (s *ActivityModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	m := activity.InitModule(s.db)
	s.svc = m.Svc

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

func (s *ActivityModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `activities`").Error
	s.NoError(err)
}

func (s *ActivityModuleTestSuite) TestHandler_SaveThenRetrieve() {
	t := s.T()
	now := time.Now().UnixMilli()
	req, err := http.NewRequest(http.MethodPost,
		"/seller/activity/save", iox.NewJSONReader(web.SaveActivityReq{
			Activity: web.Activity{
				Name:        "週年慶",
				Description: "全館滿千折百",
				Images:      []string{"https://img.ecartisans.tw/a1.png"},
				Category:    "活動",
				StartDate:   now - time.Hour.Milliseconds(),
				EndDate:     now + time.Hour.Milliseconds(),
			},
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	id := recorder.MustScan().Data
	require.True(t, id > 0)

	// 未發布, 前台看不到
	req, err = http.NewRequest(http.MethodPost,
		"/activity/detail", iox.NewJSONReader(web.ActivityIDReq{ID: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	detailRecorder := test.NewJSONResponseRecorder[web.Activity]()
	s.server.ServeHTTP(detailRecorder, req)
	require.Equal(t, 200, detailRecorder.Code)
	require.Equal(t, errs.ActivityNotFound.Code, detailRecorder.MustScan().Code)

	// 發布後可以查到
	req, err = http.NewRequest(http.MethodPost,
		"/seller/activity/save", iox.NewJSONReader(web.SaveActivityReq{
			Activity: web.Activity{
				ID:          id,
				Name:        "週年慶",
				Description: "全館滿千折百",
				Category:    "活動",
				IsPublished: true,
				StartDate:   now - time.Hour.Milliseconds(),
				EndDate:     now + time.Hour.Milliseconds(),
			},
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	req, err = http.NewRequest(http.MethodPost,
		"/activity/detail", iox.NewJSONReader(web.ActivityIDReq{ID: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	detailRecorder = test.NewJSONResponseRecorder[web.Activity]()
	s.server.ServeHTTP(detailRecorder, req)
	require.Equal(t, 200, detailRecorder.Code)
	got := detailRecorder.MustScan().Data
	require.Equal(t, "週年慶", got.Name)
	require.Equal(t, "活動", got.Category)
}

func (s *ActivityModuleTestSuite) TestHandler_ListRunning() {
	t := s.T()
	now := time.Now().UnixMilli()
	save := func(name string, published bool, start, end int64) {
		_, err := s.svc.Save(context.Background(), domain.Activity{
			SellerID:    sellerUID,
			Name:        name,
			Category:    domain.CategoryNotice,
			IsPublished: published,
			StartDate:   start,
			EndDate:     end,
		})
		require.NoError(t, err)
	}
	save("進行中", true, now-time.Hour.Milliseconds(), now+time.Hour.Milliseconds())
	save("未發布", false, now-time.Hour.Milliseconds(), now+time.Hour.Milliseconds())
	save("已結束", true, now-2*time.Hour.Milliseconds(), now-time.Hour.Milliseconds())

	req, err := http.NewRequest(http.MethodPost,
		"/activity/list", iox.NewJSONReader(web.ListRunningReq{Offset: 0, Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ListActivitiesResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan().Data
	require.Len(t, resp.Activities, 1)
	require.Equal(t, "進行中", resp.Activities[0].Name)

	// 賣家後台不分狀態全列出來
	req, err = http.NewRequest(http.MethodPost, "/seller/activity/list", nil)
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.ListActivitiesResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	require.Len(t, recorder.MustScan().Data.Activities, 3)
}

func (s *ActivityModuleTestSuite) TestHandler_Delete() {
	t := s.T()
	now := time.Now().UnixMilli()
	id, err := s.svc.Save(context.Background(), domain.Activity{
		SellerID:  sellerUID,
		Name:      "要刪的公告",
		Category:  domain.CategoryNotice,
		StartDate: now,
		EndDate:   now + time.Hour.Milliseconds(),
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/seller/activity/delete", iox.NewJSONReader(web.ActivityIDReq{ID: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	_, err = s.svc.FindByID(context.Background(), id)
	require.Error(t, err)
}
