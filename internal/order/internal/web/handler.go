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
	"context"
	"errors"
	"fmt"

	"github.com/ecartisans/ecartisans/internal/cart"
	"github.com/ecartisans/ecartisans/internal/coupon"
	"github.com/ecartisans/ecartisans/internal/order/internal/domain"
	"github.com/ecartisans/ecartisans/internal/order/internal/repository/dao"
	"github.com/ecartisans/ecartisans/internal/order/internal/service"
	"github.com/ecartisans/ecartisans/internal/pkg/sequencenumber"
	"github.com/ecartisans/ecartisans/internal/product"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc         service.Service
	cartSvc     cart.Service
	productSvc  product.Service
	couponSvc   coupon.Service
	snGenerator *sequencenumber.Generator
	cache       ecache.Cache
	logger      *elog.Component
}

func NewHandler(svc service.Service,
	cartSvc cart.Service,
	productSvc product.Service,
	couponSvc coupon.Service,
	snGenerator *sequencenumber.Generator,
	cache ecache.Cache) *Handler {
	return &Handler{
		svc:         svc,
		cartSvc:     cartSvc,
		productSvc:  productSvc,
		couponSvc:   couponSvc,
		snGenerator: snGenerator,
		cache:       cache,
		logger:      elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/review", ginx.BS[CreateReviewReq](h.CreateReview))

	seller := server.Group("/seller/order")
	seller.POST("/list", ginx.BS[ListOrdersReq](h.ListSellerOrders))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/review/list", ginx.B[ListProductReviewsReq](h.ListProductReviews))
}

// CreateOrder 把買家在某個賣家的購物車結算成一張未付訂單。
// 金額全部以服務端算出來的為準, 前端傳什麼都不信。
func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return systemErrorResult, fmt.Errorf("請求ID錯誤: %w", err)
	}

	buyerID := sess.Claims().Uid
	order, err := h.createOrder(ctx.Request.Context(), req, buyerID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("建立訂單失敗: %w", err)
	}

	// 結算完成後清空該賣家的購物車, 失敗不影響已建立的訂單
	if err = h.cartSvc.ClearSeller(ctx.Request.Context(), buyerID, req.SellerID); err != nil {
		h.logger.Error("清空購物車失敗",
			elog.FieldErr(err),
			elog.Int64("buyer_id", buyerID),
			elog.Int64("seller_id", req.SellerID))
	}

	return ginx.Result{
		Data: CreateOrderResp{
			OrderSN:    order.SN,
			TotalPrice: order.TotalPrice,
			Fare:       order.Fare,
		},
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("請求ID為空")
	}
	key := h.createOrderRequestKey(requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重複請求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("緩存請求ID失敗: %w", err)
	}
	return nil
}

func (h *Handler) createOrderRequestKey(requestID string) string {
	return fmt.Sprintf("order:create:%s", requestID)
}

func (h *Handler) createOrder(ctx context.Context, req CreateOrderReq, buyerID int64) (domain.Order, error) {
	items, totalPrice, fare, err := h.getOrderItems(ctx, buyerID, req.SellerID)
	if err != nil {
		return domain.Order{}, err
	}

	couponUsed := false
	if req.CouponID > 0 {
		productIDs := slice.Map(items, func(idx int, src domain.OrderItem) int64 {
			return src.ProductID
		})
		deduction, err1 := h.couponSvc.Deduct(ctx, req.CouponID, buyerID, req.SellerID, totalPrice, productIDs)
		if err1 != nil {
			return domain.Order{}, fmt.Errorf("計算優惠失敗: %w", err1)
		}
		couponUsed = true
		totalPrice -= deduction.Amount
		if totalPrice < 0 {
			totalPrice = 0
		}
		if deduction.FreeFare {
			fare = 0
		}
	}

	orderSN, err := h.snGenerator.Generate(buyerID)
	if err != nil {
		h.releaseCoupon(ctx, couponUsed, req.CouponID, buyerID)
		return domain.Order{}, fmt.Errorf("生成訂單序列號失敗: %w", err)
	}

	o, err := h.svc.CreateOrder(ctx, domain.Order{
		SN:         orderSN,
		BuyerID:    buyerID,
		SellerID:   req.SellerID,
		TotalPrice: totalPrice,
		Fare:       fare,
		State:      domain.OrderStateUnpaid,
		PayMethod:  domain.PayMethod(req.PayMethod),
		Items:      items,
	})
	if err != nil {
		h.releaseCoupon(ctx, couponUsed, req.CouponID, buyerID)
		return domain.Order{}, err
	}
	return o, nil
}

// releaseCoupon 訂單沒落成時歸還已核銷的券, 歸還失敗只能記帳等人工修正
func (h *Handler) releaseCoupon(ctx context.Context, couponUsed bool, couponID, buyerID int64) {
	if !couponUsed {
		return
	}
	if err := h.couponSvc.Release(ctx, couponID, buyerID); err != nil {
		h.logger.Error("訂單建立失敗後歸還優惠券失敗, 需人工修正",
			elog.Int64("couponID", couponID),
			elog.Int64("buyerID", buyerID),
			elog.FieldErr(err))
	}
}

func (h *Handler) getOrderItems(ctx context.Context, buyerID, sellerID int64) ([]domain.OrderItem, int64, int64, error) {
	cartItems, err := h.cartSvc.ListBySeller(ctx, buyerID, sellerID)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("讀取購物車失敗: %w", err)
	}
	if len(cartItems) == 0 {
		return nil, 0, 0, fmt.Errorf("購物車為空")
	}

	orderItems := make([]domain.OrderItem, 0, len(cartItems))
	totalPrice, fare := int64(0), int64(0)
	for _, ci := range cartItems {
		p, f, err1 := h.productSvc.FindFormat(ctx, ci.ProductID, ci.FormatID)
		if err1 != nil {
			return nil, 0, 0, fmt.Errorf("商品規格非法: %w", err1)
		}
		if p.SellerID != sellerID {
			return nil, 0, 0, fmt.Errorf("商品不屬於該賣家")
		}
		if !p.IsOnShelf {
			return nil, 0, 0, fmt.Errorf("商品已下架: %s", p.Title)
		}
		if ci.Quantity < 1 || ci.Quantity > f.Stock {
			return nil, 0, 0, fmt.Errorf("商品數量非法或庫存不足: %s", p.Title)
		}

		// 下單當下的名稱/規格/單價快照, 之後商品改價不影響已成立的訂單
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: ci.ProductID,
			FormatID:  ci.FormatID,
			Name:      p.Title,
			Spec:      f.Title,
			Price:     f.Price,
			Quantity:  ci.Quantity,
		})
		totalPrice += f.Price * ci.Quantity
		// 同一賣家多件商品只收一次運費, 取最高者
		if p.Fare > fare {
			fare = p.Fare
		}
	}
	return orderItems, totalPrice, fare, nil
}

// ListOrders 分頁查詢買家自己的訂單
func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListBuyerOrders(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查詢買家訂單失敗: %w", err)
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total:  total,
			Orders: h.toOrderVOs(orders),
		},
	}, nil
}

// ListSellerOrders 分頁查詢賣家收到的訂單
func (h *Handler) ListSellerOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListSellerOrders(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查詢賣家訂單失敗: %w", err)
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total:  total,
			Orders: h.toOrderVOs(orders),
		},
	}, nil
}

// RetrieveOrderDetail 獲取訂單詳情, 只能看自己的
func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrder(ctx.Request.Context(), req.OrderSN, sess.Claims().Uid)
	if errors.Is(err, dao.ErrOrderNotFound) {
		return orderNotFoundResult, fmt.Errorf("訂單未找到: %w", err)
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查詢訂單詳情失敗: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{
			Order: h.toOrderVO(order),
		},
	}, nil
}

// CreateReview 買家評價已付訂單裡的某件商品
func (h *Handler) CreateReview(ctx *ginx.Context, req CreateReviewReq, sess session.Session) (ginx.Result, error) {
	if req.Rate < 1 || req.Rate > 5 {
		return invalidOrderParamResult, fmt.Errorf("評分超出範圍: rate=%d", req.Rate)
	}
	rid, err := h.svc.CreateReview(ctx.Request.Context(), domain.Review{
		OrderSN:   req.OrderSN,
		ProductID: req.ProductID,
		BuyerID:   sess.Claims().Uid,
		Rate:      req.Rate,
	})
	switch {
	case errors.Is(err, dao.ErrOrderNotFound):
		return orderNotFoundResult, fmt.Errorf("評價訂單未找到: %w", err)
	case errors.Is(err, service.ErrReviewNotAllowed):
		return reviewNotAllowedResult, fmt.Errorf("評價被拒絕: %w", err)
	case errors.Is(err, service.ErrDuplicateReview):
		return duplicateReviewResult, fmt.Errorf("重複評價: %w", err)
	case err != nil:
		return systemErrorResult, fmt.Errorf("建立評價失敗: %w", err)
	}
	return ginx.Result{
		Data: CreateReviewResp{
			RID: rid,
		},
	}, nil
}

// ListProductReviews 分頁查詢某件商品收到的評價
func (h *Handler) ListProductReviews(ctx *ginx.Context, req ListProductReviewsReq) (ginx.Result, error) {
	reviews, total, err := h.svc.ListProductReviews(ctx.Request.Context(), req.ProductID, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查詢商品評價失敗: %w", err)
	}
	return ginx.Result{
		Data: ListProductReviewsResp{
			Total: total,
			Reviews: slice.Map(reviews, func(idx int, src domain.Review) Review {
				return Review{
					BuyerID: src.BuyerID,
					Rate:    src.Rate,
					Ctime:   src.Ctime,
				}
			}),
		},
	}, nil
}

func (h *Handler) toOrderVOs(orders []domain.Order) []Order {
	return slice.Map(orders, func(idx int, src domain.Order) Order {
		return h.toOrderVO(src)
	})
}

func (h *Handler) toOrderVO(order domain.Order) Order {
	return Order{
		SN:         order.SN,
		State:      order.State.ToUint8(),
		PayMethod:  uint8(order.PayMethod),
		TotalPrice: order.TotalPrice,
		Fare:       order.Fare,
		TradeNo:    order.TradeNo,
		PayTime:    order.PayTime,
		Items: slice.Map(order.Items, func(idx int, src domain.OrderItem) OrderItem {
			return OrderItem{
				ProductID: src.ProductID,
				Name:      src.Name,
				Spec:      src.Spec,
				Price:     src.Price,
				Quantity:  src.Quantity,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
