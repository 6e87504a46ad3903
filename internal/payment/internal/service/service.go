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

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ecartisans/ecartisans/internal/order"
	"github.com/ecartisans/ecartisans/internal/payment/internal/domain"
	"github.com/ecartisans/ecartisans/internal/payment/internal/event"
	"github.com/ecartisans/ecartisans/internal/payment/internal/service/newebpay"
	"github.com/ecartisans/ecartisans/internal/pkg/snowflake"
	"github.com/ecartisans/ecartisans/internal/user"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/payment.mock.go -package=paymentmocks -typed Service
type Service interface {
	// InitiatePayment 發起一筆不綁定訂單的付款, 金額與品名由調用方給定
	InitiatePayment(ctx context.Context, pmt domain.RawPayment) (domain.RedirectInfo, error)
	// InitiateOrderPayment 發起訂單付款。
	// 金額一律以伺服器端的 TotalPrice+Fare 重算, 對帳號在返回前先落在訂單上。
	InitiateOrderPayment(ctx context.Context, pmt domain.OrderPayment) (domain.RedirectInfo, error)
	// HandleNotify 處理閘道回調。重複通知是無害的 no-op。
	HandleNotify(ctx context.Context, tradeInfo, tradeSha string) error
}

func NewService(codec *newebpay.Codec,
	orderSvc order.Service,
	userSvc user.Service,
	monGenerator *snowflake.MerchantOrderNoGenerator,
	producer event.PaymentEventProducer) Service {
	return &service{
		codec:        codec,
		orderSvc:     orderSvc,
		userSvc:      userSvc,
		monGenerator: monGenerator,
		producer:     producer,
		logger:       elog.DefaultLogger,
	}
}

type service struct {
	codec        *newebpay.Codec
	orderSvc     order.Service
	userSvc      user.Service
	monGenerator *snowflake.MerchantOrderNoGenerator
	producer     event.PaymentEventProducer
	logger       *elog.Component
}

func (s *service) InitiatePayment(ctx context.Context, pmt domain.RawPayment) (domain.RedirectInfo, error) {
	payload, err := s.encode(pmt.Amt, pmt.ItemDesc, pmt.Email, s.monGenerator.Generate())
	if err != nil {
		return domain.RedirectInfo{}, err
	}
	return s.toRedirectInfo(payload), nil
}

func (s *service) InitiateOrderPayment(ctx context.Context, pmt domain.OrderPayment) (domain.RedirectInfo, error) {
	o, err := s.orderSvc.FindOrder(ctx, pmt.OrderSN, pmt.BuyerID)
	if err != nil {
		return domain.RedirectInfo{}, fmt.Errorf("查詢待付款訂單失敗: %w", err)
	}
	u, err := s.userSvc.Profile(ctx, pmt.BuyerID)
	if err != nil {
		return domain.RedirectInfo{}, fmt.Errorf("查詢買家資料失敗: %w", err)
	}

	mon := o.MerchantOrderNo
	if mon == "" {
		// 對帳號在返回導向資料之前就落庫, 通知先於響應到達也能對上
		mon = s.monGenerator.Generate()
		if err = s.orderSvc.BindMerchantOrderNo(ctx, o.ID, mon); err != nil {
			return domain.RedirectInfo{}, fmt.Errorf("綁定對帳號失敗: %w", err)
		}
	}

	payload, err := s.encode(o.PayableAmount(), itemDesc(o), u.Email, mon)
	if err != nil {
		return domain.RedirectInfo{}, err
	}
	return s.toRedirectInfo(payload), nil
}

func (s *service) encode(amt int64, desc, email, mon string) (domain.EncryptedPayload, error) {
	cfg := s.codec.Config()
	payload, err := s.codec.Encode(domain.PaymentRequest{
		MerchantID:      cfg.MerchantID,
		TimeStamp:       time.Now().Unix(),
		Version:         cfg.Version,
		RespondType:     "JSON",
		MerchantOrderNo: mon,
		Amt:             amt,
		NotifyURL:       cfg.NotifyURL,
		ReturnURL:       cfg.ReturnURL,
		ItemDesc:        desc,
		Email:           email,
	})
	if err != nil {
		return domain.EncryptedPayload{}, fmt.Errorf("加密交易請求失敗: %w", err)
	}
	return payload, nil
}

func (s *service) toRedirectInfo(payload domain.EncryptedPayload) domain.RedirectInfo {
	cfg := s.codec.Config()
	return domain.RedirectInfo{
		MerchantID: cfg.MerchantID,
		TradeInfo:  payload.TradeInfo,
		TradeSha:   payload.TradeSha,
		Version:    cfg.Version,
		PayGateway: cfg.PayGateway,
		ReturnURL:  cfg.ReturnURL,
		NotifyURL:  cfg.NotifyURL,
	}
}

// itemDesc 藍新的 ItemDesc 上限 50 字元, 多件商品只帶第一件加總件數
func itemDesc(o order.Order) string {
	if len(o.Items) == 0 {
		return o.SN
	}
	desc := o.Items[0].Name
	if len(o.Items) > 1 {
		desc = fmt.Sprintf("%s 等%d件商品", desc, len(o.Items))
	}
	rs := []rune(desc)
	if len(rs) > 50 {
		rs = rs[:50]
	}
	return string(rs)
}

func (s *service) HandleNotify(ctx context.Context, tradeInfo, tradeSha string) error {
	// 先驗簽再解密, 驗不過的密文一個欄位都不能信
	if err := s.codec.VerifyTradeSha(tradeInfo, tradeSha); err != nil {
		return fmt.Errorf("回調簽章非法: %w", err)
	}
	res, err := s.codec.DecodeNotify(tradeInfo)
	if err != nil {
		return fmt.Errorf("解析回調失敗: %w", err)
	}
	if !res.Succeeded() {
		// 失敗通知只記錄, 不觸碰訂單狀態
		s.logger.Warn("收到付款失敗通知",
			elog.String("status", res.Status),
			elog.String("message", res.Message),
			elog.String("merchant_order_no", res.Result.MerchantOrderNo))
		return nil
	}

	o, applied, err := s.orderSvc.MarkPaidByMerchantOrderNo(ctx,
		res.Result.MerchantOrderNo, res.Result.TradeNo, res.Result.PayTime)
	if err != nil {
		return fmt.Errorf("訂單對帳失敗: merchantOrderNo=%s: %w", res.Result.MerchantOrderNo, err)
	}
	if !applied {
		// 閘道重送, 第一次已經處理過了
		s.logger.Info("忽略重複的付款通知",
			elog.String("merchant_order_no", res.Result.MerchantOrderNo),
			elog.String("trade_no", res.Result.TradeNo))
		return nil
	}

	if o.PayableAmount() != res.Result.Amt {
		s.logger.Warn("通知金額與訂單應付金額不符",
			elog.String("merchant_order_no", res.Result.MerchantOrderNo),
			elog.Int64("notify_amt", res.Result.Amt),
			elog.Int64("payable", o.PayableAmount()))
	}

	evt := event.PaymentEvent{
		OrderSN:         o.SN,
		MerchantOrderNo: res.Result.MerchantOrderNo,
		TradeNo:         res.Result.TradeNo,
		PayTime:         res.Result.PayTime,
		Amt:             res.Result.Amt,
		Items: slice.Map(o.Items, func(idx int, src order.OrderItem) event.PaymentEventItem {
			return event.PaymentEventItem{
				ProductID: src.ProductID,
				FormatID:  src.FormatID,
				Quantity:  src.Quantity,
			}
		}),
	}
	if err = s.producer.Produce(ctx, evt); err != nil {
		// 訂單已是已付, 不能因為事件發不出去就讓閘道重送,
		// 記一條可供人工對帳的完整日誌
		s.logger.Error("發送支付成功事件失敗, 需人工對帳",
			elog.FieldErr(err),
			elog.String("order_sn", o.SN),
			elog.String("merchant_order_no", res.Result.MerchantOrderNo),
			elog.String("trade_no", res.Result.TradeNo),
			elog.Int64("amt", res.Result.Amt))
	}
	return nil
}
