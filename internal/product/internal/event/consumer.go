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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecartisans/ecartisans/internal/product/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// PaymentConsumer 消費支付成功事件: 累計銷量、扣減規格庫存
type PaymentConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPaymentConsumer(svc service.Service, q mq.MQ) (*PaymentConsumer, error) {
	groupID := "product_sold_group"
	consumer, err := q.Consumer(topicPaymentEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &PaymentConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *PaymentConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("獲取消息失敗: %w", err)
	}
	var evt PaymentEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失敗: %w", err)
	}
	for _, item := range evt.Items {
		if er := c.svc.MarkSold(ctx, item.ProductID, item.FormatID, item.Quantity); er != nil {
			// 單項失敗不阻塞其他項, 銷量計數不準可以靠對帳修
			c.logger.Error("累計銷量失敗",
				elog.FieldErr(er),
				elog.String("order_sn", evt.OrderSN),
				elog.Int64("product_id", item.ProductID))
		}
	}
	return nil
}

func (c *PaymentConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消費支付成功事件失敗", elog.FieldErr(err))
			}
		}
	}()
}

func (c *PaymentConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
