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

	"github.com/ecartisans/ecartisans/internal/search/internal/domain"
	"github.com/ecartisans/ecartisans/internal/search/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type SyncConsumer struct {
	svc      service.SyncService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewSyncConsumer(svc service.SyncService, q mq.MQ) (*SyncConsumer, error) {
	groupID := "search_sync_group"
	consumer, err := q.Consumer(topicProductEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &SyncConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (s *SyncConsumer) Consume(ctx context.Context) error {
	msg, err := s.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("獲取消息失敗: %w", err)
	}

	var evt ProductEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失敗: %w", err)
	}
	// 刪除或下架都從索引移除, 買家搜尋不到
	if evt.Deleted || !evt.IsOnShelf {
		err = s.svc.Delete(ctx, evt.ID)
	} else {
		err = s.svc.Input(ctx, domain.Product{
			ID:          evt.ID,
			SellerID:    evt.SellerID,
			Title:       evt.Title,
			Category:    evt.Category,
			Description: evt.Description,
			Keywords:    evt.Keywords,
		})
	}
	if err != nil {
		s.logger.Error("同步商品索引失敗",
			elog.Int64("productID", evt.ID),
			elog.FieldErr(err))
	}
	return err
}

func (s *SyncConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := s.Consume(ctx)
			if err != nil {
				s.logger.Error("同步商品事件失敗", elog.FieldErr(err))
			}
		}
	}()
}

func (s *SyncConsumer) Stop(_ context.Context) error {
	return s.consumer.Close()
}
