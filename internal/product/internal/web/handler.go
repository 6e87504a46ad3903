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

	"github.com/ecartisans/ecartisans/internal/product/internal/domain"
	"github.com/ecartisans/ecartisans/internal/product/internal/repository/dao"
	"github.com/ecartisans/ecartisans/internal/product/internal/service"
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
	g := server.Group("/product")
	g.POST("/list", ginx.B[ListProductsReq](h.ListOnShelf))
	g.POST("/detail", ginx.B[ProductIDReq](h.RetrieveProductDetail))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/seller/product")
	g.POST("/save", ginx.BS[SaveProductReq](h.Save))
	g.POST("/list", ginx.BS[ListProductsReq](h.ListSellerProducts))
	g.POST("/shelf", ginx.BS[UpdateShelfStateReq](h.UpdateShelfState))
	g.POST("/delete", ginx.BS[ProductIDReq](h.Delete))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveProductReq, sess session.Session) (ginx.Result, error) {
	p := h.toDomain(req.Product)
	p.SellerID = sess.Claims().Uid
	id, err := h.svc.Save(ctx, p)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) ListOnShelf(ctx *ginx.Context, req ListProductsReq) (ginx.Result, error) {
	ps, total, err := h.svc.ListOnShelf(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toListResp(ps, total),
	}, nil
}

func (h *Handler) RetrieveProductDetail(ctx *ginx.Context, req ProductIDReq) (ginx.Result, error) {
	p, err := h.svc.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, dao.ErrProductNotFound) {
			return productNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	// 未上架商品不對買家展示
	if !p.IsOnShelf {
		return productNotFoundResult, nil
	}
	return ginx.Result{
		Data: h.toVO(p),
	}, nil
}

func (h *Handler) ListSellerProducts(ctx *ginx.Context, req ListProductsReq, sess session.Session) (ginx.Result, error) {
	ps, total, err := h.svc.ListSellerProducts(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toListResp(ps, total),
	}, nil
}

func (h *Handler) UpdateShelfState(ctx *ginx.Context, req UpdateShelfStateReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateShelfState(ctx, req.ID, sess.Claims().Uid, req.IsOnShelf)
	if err != nil {
		if errors.Is(err, dao.ErrProductNotFound) {
			return productNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req ProductIDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, dao.ErrProductNotFound) {
			return productNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) toListResp(ps []domain.Product, total int64) ListProductsResp {
	return ListProductsResp{
		Total: total,
		Products: slice.Map(ps, func(idx int, src domain.Product) Product {
			return h.toVO(src)
		}),
	}
}

func (h *Handler) toVO(p domain.Product) Product {
	return Product{
		ID:            p.ID,
		Title:         p.Title,
		Category:      p.Category,
		Description:   p.Description,
		Fare:          p.Fare,
		PayMethodCard: p.PayMethodCard,
		PayMethodCash: p.PayMethodCash,
		IsOnShelf:     p.IsOnShelf,
		Sold:          p.Sold,
		Keywords:      p.Keywords,
		Images:        p.Images,
		Formats: slice.Map(p.Formats, func(idx int, src domain.Format) Format {
			return Format{
				ID:    src.ID,
				Title: src.Title,
				Price: src.Price,
				Stock: src.Stock,
				Color: src.Color,
				Image: src.Image,
			}
		}),
	}
}

func (h *Handler) toDomain(p Product) domain.Product {
	return domain.Product{
		ID:            p.ID,
		Title:         p.Title,
		Category:      p.Category,
		Description:   p.Description,
		Fare:          p.Fare,
		PayMethodCard: p.PayMethodCard,
		PayMethodCash: p.PayMethodCash,
		Keywords:      p.Keywords,
		Images:        p.Images,
		Formats: slice.Map(p.Formats, func(idx int, src Format) domain.Format {
			return domain.Format{
				ID:    src.ID,
				Title: src.Title,
				Price: src.Price,
				Stock: src.Stock,
				Color: src.Color,
				Image: src.Image,
			}
		}),
	}
}
