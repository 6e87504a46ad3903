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
	"net/http"
	"testing"

	"github.com/ecartisans/ecartisans/internal/test"
	testioc "github.com/ecartisans/ecartisans/internal/test/ioc"
	"github.com/ecartisans/ecartisans/internal/user"
	"github.com/ecartisans/ecartisans/internal/user/internal/errs"
	"github.com/ecartisans/ecartisans/internal/user/internal/web"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestUserModule(t *testing.T) {
	suite.Run(t, new(UserModuleTestSuite))
}

type UserModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	// uid 登入態中的用戶ID, 各測試用例自行設置
	uid int64
}

func (s *UserModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	m := user.InitModule(s.db, testioc.InitCache())

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: s.uid,
		}))
	})
	m.Hdl.PublicRoutes(server.Engine)
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *UserModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `users`").Error
	s.NoError(err)
}

func (s *UserModuleTestSuite) register(req web.RegisterReq) *test.JSONResponseRecorder[web.Profile] {
	httpReq, err := http.NewRequest(http.MethodPost,
		"/users/register", iox.NewJSONReader(req))
	require.NoError(s.T(), err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, httpReq)
	return recorder
}

func (s *UserModuleTestSuite) TestHandler_RegisterThenLogin() {
	t := s.T()
	recorder := s.register(web.RegisterReq{
		Email:           "meow@ecartisans.tw",
		Password:        "hello#world123",
		ConfirmPassword: "hello#world123",
		Name:            "喵喵",
		Role:            1,
	})
	require.Equal(t, 200, recorder.Code)
	profile := recorder.MustScan().Data
	require.True(t, profile.ID > 0)
	require.NotEmpty(t, profile.SN)
	require.Equal(t, "meow@ecartisans.tw", profile.Email)
	require.Equal(t, uint8(1), profile.Role)

	// 重複註冊同一個 Email
	dup := s.register(web.RegisterReq{
		Email:           "meow@ecartisans.tw",
		Password:        "hello#world123",
		ConfirmPassword: "hello#world123",
	})
	require.Equal(t, 500, dup.Code)
	require.Equal(t, errs.DuplicateEmail.Code, dup.MustScan().Code)

	// 正確密碼登入
	req, err := http.NewRequest(http.MethodPost,
		"/users/login", iox.NewJSONReader(web.LoginReq{
			Email:    "meow@ecartisans.tw",
			Password: "hello#world123",
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	loginRecorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(loginRecorder, req)
	require.Equal(t, 200, loginRecorder.Code)
	require.Equal(t, profile.ID, loginRecorder.MustScan().Data.ID)

	// 密碼錯誤
	req, err = http.NewRequest(http.MethodPost,
		"/users/login", iox.NewJSONReader(web.LoginReq{
			Email:    "meow@ecartisans.tw",
			Password: "wrong-password",
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	loginRecorder = test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(loginRecorder, req)
	require.Equal(t, 500, loginRecorder.Code)
	require.Equal(t, errs.InvalidCredential.Code, loginRecorder.MustScan().Code)
}

func (s *UserModuleTestSuite) TestHandler_RegisterPasswordMismatch() {
	t := s.T()
	recorder := s.register(web.RegisterReq{
		Email:           "woof@ecartisans.tw",
		Password:        "hello#world123",
		ConfirmPassword: "hello#world456",
	})
	require.Equal(t, 500, recorder.Code)
	require.Equal(t, errs.SystemError.Code, recorder.MustScan().Code)
}

func (s *UserModuleTestSuite) TestHandler_ProfileAndEdit() {
	t := s.T()
	recorder := s.register(web.RegisterReq{
		Email:           "profile@ecartisans.tw",
		Password:        "hello#world123",
		ConfirmPassword: "hello#world123",
		Name:            "原名",
	})
	require.Equal(t, 200, recorder.Code)
	s.uid = recorder.MustScan().Data.ID

	req, err := http.NewRequest(http.MethodPost,
		"/users/profile", iox.NewJSONReader(web.EditReq{
			Name:      "新名字",
			Introduce: "手作飾品小店",
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	editRecorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(editRecorder, req)
	require.Equal(t, 200, editRecorder.Code)

	req, err = http.NewRequest(http.MethodGet, "/users/profile", nil)
	require.NoError(t, err)
	profileRecorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(profileRecorder, req)
	require.Equal(t, 200, profileRecorder.Code)
	got := profileRecorder.MustScan().Data
	require.Equal(t, "新名字", got.Name)
	require.Equal(t, "手作飾品小店", got.Introduce)
	// Email 不在可編輯範圍內
	require.Equal(t, "profile@ecartisans.tw", got.Email)
}
