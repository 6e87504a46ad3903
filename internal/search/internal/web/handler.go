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
	"github.com/ecartisans/ecartisans/internal/search/internal/domain"
	"github.com/ecartisans/ecartisans/internal/search/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.SearchService
}

func NewHandler(svc service.SearchService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/search/product", ginx.B[SearchReq](h.SearchProduct))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) SearchProduct(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	ps, err := h.svc.SearchProduct(ctx.Request.Context(), req.Offset, req.Limit, req.Keywords)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SearchResp{
			Products: slice.Map(ps, func(idx int, src domain.Product) Product {
				return Product{
					ID:          src.ID,
					SellerID:    src.SellerID,
					Title:       src.Title,
					Category:    src.Category,
					Description: src.Description,
					Keywords:    src.Keywords,
					Highlights:  src.Highlights,
				}
			}),
		},
	}, nil
}
