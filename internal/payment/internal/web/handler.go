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
	"net/http"

	"github.com/ecartisans/ecartisans/internal/order"
	"github.com/ecartisans/ecartisans/internal/payment/internal/domain"
	"github.com/ecartisans/ecartisans/internal/payment/internal/errs"
	"github.com/ecartisans/ecartisans/internal/payment/internal/service"
	"github.com/ecartisans/ecartisans/internal/payment/internal/service/newebpay"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/pay")
	g.POST("", ginx.BS[PayReq](h.Pay))
	g.POST("/order", ginx.BS[PayOrderReq](h.PayOrder))
}

// PublicRoutes 閘道的回調沒有會話, 必須是公開路由
func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/pay")
	g.POST("/notify", h.Notify)
	g.POST("/return", h.Return)
}

// Pay 發起不綁定訂單的付款
func (h *Handler) Pay(ctx *ginx.Context, req PayReq, _ session.Session) (ginx.Result, error) {
	info, err := h.svc.InitiatePayment(ctx.Request.Context(), domain.RawPayment{
		Email:    req.Email,
		Amt:      req.Amt,
		ItemDesc: req.ItemDesc,
	})
	if errors.Is(err, newebpay.ErrMissingField) {
		return validationErrorResult, fmt.Errorf("付款參數非法: %w", err)
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("發起付款失敗: %w", err)
	}
	return ginx.Result{Data: h.toPayResp(info)}, nil
}

// PayOrder 發起訂單付款
func (h *Handler) PayOrder(ctx *ginx.Context, req PayOrderReq, sess session.Session) (ginx.Result, error) {
	info, err := h.svc.InitiateOrderPayment(ctx.Request.Context(), domain.OrderPayment{
		OrderSN: req.OrderSN,
		BuyerID: sess.Claims().Uid,
	})
	if errors.Is(err, order.ErrOrderNotFound) {
		return orderNotFoundResult, fmt.Errorf("待付款訂單未找到: %w", err)
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("發起訂單付款失敗: %w", err)
	}
	return ginx.Result{Data: h.toPayResp(info)}, nil
}

// Notify 閘道伺服器對伺服器的回調。
// 無論處理結果如何一律回 200: 回非 200 只會招來重送,
// 而重複通知本來就是冪等的 no-op, 真正的失敗靠日誌對帳。
func (h *Handler) Notify(ctx *gin.Context) {
	tradeInfo := ctx.PostForm("TradeInfo")
	tradeSha := ctx.PostForm("TradeSha")
	if err := h.svc.HandleNotify(ctx.Request.Context(), tradeInfo, tradeSha); err != nil {
		// 驗簽或解密失敗的密文一個欄位都不可信, 與對帳失敗分開計數
		if errors.Is(err, newebpay.ErrInvalidSignature) || errors.Is(err, newebpay.ErrDecrypt) {
			h.logger.Warn(errs.UntrustedPayload.Msg,
				elog.Int("code", errs.UntrustedPayload.Code), elog.FieldErr(err))
		} else {
			h.logger.Error("處理付款通知失敗", elog.FieldErr(err))
		}
	}
	ctx.String(http.StatusOK, "OK")
}

// Return 閘道帶著買家瀏覽器跳回來的端點, 不做任何狀態變更,
// 訂單狀態以 Notify 為準
func (h *Handler) Return(ctx *gin.Context) {
	ctx.Header("Content-Type", "text/html; charset=utf-8")
	ctx.String(http.StatusOK, "<html><body>付款處理完成, 請回到商店查看訂單狀態</body></html>")
}

func (h *Handler) toPayResp(info domain.RedirectInfo) PayResp {
	return PayResp{
		MerchantID: info.MerchantID,
		TradeInfo:  info.TradeInfo,
		TradeSha:   info.TradeSha,
		Version:    info.Version,
		PayGateway: info.PayGateway,
		ReturnURL:  info.ReturnURL,
		NotifyURL:  info.NotifyURL,
	}
}
