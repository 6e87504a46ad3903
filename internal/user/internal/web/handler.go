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
	"errors"
	"fmt"
	"strconv"

	"github.com/ecartisans/ecartisans/internal/user/internal/domain"
	"github.com/ecartisans/ecartisans/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/register", ginx.B[RegisterReq](h.Register))
	users.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	if req.Email == "" || req.Password == "" {
		return systemErrorResult, fmt.Errorf("註冊參數非法")
	}
	if req.Password != req.ConfirmPassword {
		return systemErrorResult, fmt.Errorf("兩次輸入的密碼不一致")
	}
	u, err := h.userSvc.Register(ctx.Request.Context(), domain.User{
		Email: req.Email,
		Name:  req.Name,
		Phone: req.Phone,
		Role:  domain.Role(req.Role),
	}, req.Password)
	if errors.Is(err, service.ErrDuplicateEmail) {
		return duplicateEmailResult, err
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("註冊失敗: %w", err)
	}
	return h.buildSession(ctx, u)
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.Login(ctx.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredential) {
		return invalidCredentialResult, err
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("登入失敗: %w", err)
	}
	return h.buildSession(ctx, u)
}

func (h *Handler) buildSession(ctx *ginx.Context, u domain.User) (ginx.Result, error) {
	// 角色進 claims, 賣家路由的權限校驗不用回表
	_, err := session.NewSessionBuilder(ctx, u.ID).
		SetJwtData(map[string]string{
			"role": strconv.Itoa(int(u.Role)),
		}).Build()
	if err != nil {
		return systemErrorResult, fmt.Errorf("建立會話失敗: %w", err)
	}
	return ginx.Result{
		Data: h.toProfileVO(u),
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toProfileVO(u),
	}, nil
}

// Edit 用戶編輯個人資料
func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.userSvc.UpdateNonSensitiveInfo(ctx.Request.Context(), domain.User{
		ID:        sess.Claims().Uid,
		Name:      req.Name,
		Phone:     req.Phone,
		Avatar:    req.Avatar,
		Introduce: req.Introduce,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) toProfileVO(u domain.User) Profile {
	return Profile{
		ID:        u.ID,
		SN:        u.SN,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Avatar:    u.Avatar,
		Introduce: u.Introduce,
		Role:      uint8(u.Role),
	}
}
