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
	"github.com/ecartisans/ecartisans/internal/cart/internal/domain"
	"github.com/ecartisans/ecartisans/internal/cart/internal/service"
	"github.com/ecartisans/ecartisans/internal/product"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc        service.Service
	productSvc product.Service
	logger     *elog.Component
}

func NewHandler(svc service.Service, productSvc product.Service) *Handler {
	return &Handler{
		svc:        svc,
		productSvc: productSvc,
		logger:     elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.POST("/add", ginx.BS[AddItemReq](h.AddItem))
	g.POST("/update", ginx.BS[UpdateQuantityReq](h.UpdateQuantity))
	g.POST("/remove", ginx.BS[ItemIDReq](h.RemoveItem))
	g.POST("/list", ginx.S(h.List))
}

func (h *Handler) AddItem(ctx *ginx.Context, req AddItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.AddItem(ctx.Request.Context(), sess.Claims().Uid, req.ProductID, req.FormatID, req.Quantity)
	if err != nil {
		return cartItemInvalidResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) UpdateQuantity(ctx *ginx.Context, req UpdateQuantityReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateQuantity(ctx.Request.Context(), sess.Claims().Uid, req.ID, req.Quantity)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) RemoveItem(ctx *ginx.Context, req ItemIDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RemoveItem(ctx.Request.Context(), sess.Claims().Uid, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	items, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListCartResp{Carts: h.groupBySeller(ctx, items)},
	}, nil
}

func (h *Handler) groupBySeller(ctx *ginx.Context, items []domain.Item) []SellerCart {
	carts := make([]SellerCart, 0, 4)
	index := make(map[int64]int, 4)
	for _, item := range items {
		vo := Item{
			ID:        item.ID,
			ProductID: item.ProductID,
			FormatID:  item.FormatID,
			Quantity:  item.Quantity,
		}
		// 展示資訊即時讀商品, 查不到就只帶購物車本身的欄位
		p, f, err := h.productSvc.FindFormat(ctx.Request.Context(), item.ProductID, item.FormatID)
		if err != nil {
			h.logger.Warn("讀取購物車商品失敗",
				elog.Int64("productID", item.ProductID),
				elog.FieldErr(err))
		} else {
			vo.ProductName = p.Title
			vo.FormatName = f.Title
			vo.Price = f.Price
			vo.Image = f.Image
		}
		pos, ok := index[item.SellerID]
		if !ok {
			carts = append(carts, SellerCart{SellerID: item.SellerID})
			pos = len(carts) - 1
			index[item.SellerID] = pos
		}
		carts[pos].Items = append(carts[pos].Items, vo)
	}
	return carts
}
