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

	"github.com/ecartisans/ecartisans/internal/activity/internal/domain"
	"github.com/ecartisans/ecartisans/internal/activity/internal/repository/dao"
	"github.com/ecartisans/ecartisans/internal/activity/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/activity")
	g.POST("/list", ginx.B[ListRunningReq](h.ListRunning))
	g.POST("/detail", ginx.B[ActivityIDReq](h.RetrieveActivityDetail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/seller/activity")
	g.POST("/save", ginx.BS[SaveActivityReq](h.Save))
	g.POST("/list", ginx.S(h.ListSellerActivities))
	g.POST("/delete", ginx.BS[ActivityIDReq](h.Delete))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveActivityReq, sess session.Session) (ginx.Result, error) {
	a := h.toDomain(req.Activity)
	a.SellerID = sess.Claims().Uid
	id, err := h.svc.Save(ctx.Request.Context(), a)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) ListRunning(ctx *ginx.Context, req ListRunningReq) (ginx.Result, error) {
	as, err := h.svc.ListRunning(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListActivitiesResp{Activities: h.toVOs(as)},
	}, nil
}

func (h *Handler) RetrieveActivityDetail(ctx *ginx.Context, req ActivityIDReq) (ginx.Result, error) {
	a, err := h.svc.FindByID(ctx.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, dao.ErrActivityNotFound) {
			return activityNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	if !a.IsPublished {
		return activityNotFoundResult, nil
	}
	return ginx.Result{
		Data: h.toVO(a),
	}, nil
}

func (h *Handler) ListSellerActivities(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	as, err := h.svc.ListSellerActivities(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListActivitiesResp{Activities: h.toVOs(as)},
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req ActivityIDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, dao.ErrActivityNotFound) {
			return activityNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) toDomain(a Activity) domain.Activity {
	return domain.Activity{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Images:      a.Images,
		Category:    domain.Category(a.Category),
		IsPublished: a.IsPublished,
		StartDate:   a.StartDate,
		EndDate:     a.EndDate,
	}
}

func (h *Handler) toVO(a domain.Activity) Activity {
	return Activity{
		ID:          a.ID,
		SellerID:    a.SellerID,
		Name:        a.Name,
		Description: a.Description,
		Images:      a.Images,
		Category:    string(a.Category),
		IsPublished: a.IsPublished,
		StartDate:   a.StartDate,
		EndDate:     a.EndDate,
	}
}

func (h *Handler) toVOs(as []domain.Activity) []Activity {
	return slice.Map(as, func(idx int, src domain.Activity) Activity {
		return h.toVO(src)
	})
}
