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

	"github.com/ecartisans/ecartisans/internal/coupon/internal/domain"
	"github.com/ecartisans/ecartisans/internal/coupon/internal/repository/dao"
	"github.com/ecartisans/ecartisans/internal/coupon/internal/service"
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
	server.POST("/coupon/list", ginx.W(h.ListClaimable))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/coupon")
	g.POST("/claim", ginx.BS[CouponIDReq](h.Claim))
	g.POST("/mine", ginx.S(h.ListClaims))

	seller := server.Group("/seller/coupon")
	seller.POST("/save", ginx.BS[SaveCouponReq](h.Save))
	seller.POST("/list", ginx.S(h.ListSellerCoupons))
	seller.POST("/delete", ginx.BS[CouponIDReq](h.Delete))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveCouponReq, sess session.Session) (ginx.Result, error) {
	c := h.toDomain(req.Coupon)
	c.SellerID = sess.Claims().Uid
	id, err := h.svc.Save(ctx.Request.Context(), c)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) ListSellerCoupons(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cs, err := h.svc.ListSellerCoupons(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListCouponsResp{Coupons: h.toVOs(cs)},
	}, nil
}

func (h *Handler) ListClaimable(ctx *ginx.Context) (ginx.Result, error) {
	cs, err := h.svc.ListClaimable(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListCouponsResp{Coupons: h.toVOs(cs)},
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req CouponIDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, dao.ErrCouponNotFound) {
			return couponNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Claim(ctx *ginx.Context, req CouponIDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Claim(ctx.Request.Context(), req.ID, sess.Claims().Uid)
	if err != nil {
		switch {
		case errors.Is(err, dao.ErrCouponNotFound):
			return couponNotFoundResult, nil
		case errors.Is(err, dao.ErrClaimDuplicate), errors.Is(err, service.ErrCouponUnusable):
			return couponInvalidResult, err
		default:
			return systemErrorResult, err
		}
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ListClaims(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	claims, err := h.svc.ListClaims(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListClaimsResp{
			Claims: slice.Map(claims, func(idx int, src domain.Claim) Claim {
				return Claim{
					CouponID: src.CouponID,
					Used:     src.Used,
					Coupon:   h.toVO(src.Coupon),
				}
			}),
		},
	}, nil
}

func (h *Handler) toDomain(c Coupon) domain.Coupon {
	return domain.Coupon{
		ID:                 c.ID,
		Name:               c.Name,
		Type:               domain.Type(c.Type),
		DiscountConditions: c.DiscountConditions,
		Percentage:         c.Percentage,
		Scope:              domain.Scope(c.Scope),
		ChosenProductIDs:   c.ChosenProductIDs,
		IsEnabled:          c.IsEnabled,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
	}
}

func (h *Handler) toVO(c domain.Coupon) Coupon {
	return Coupon{
		ID:                 c.ID,
		Name:               c.Name,
		Type:               int64(c.Type),
		DiscountConditions: c.DiscountConditions,
		Percentage:         c.Percentage,
		Scope:              int64(c.Scope),
		ChosenProductIDs:   c.ChosenProductIDs,
		IsEnabled:          c.IsEnabled,
		StartDate:          c.StartDate,
		EndDate:            c.EndDate,
	}
}

func (h *Handler) toVOs(cs []domain.Coupon) []Coupon {
	return slice.Map(cs, func(idx int, src domain.Coupon) Coupon {
		return h.toVO(src)
	})
}
