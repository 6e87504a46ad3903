package event

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go -typed ProductEventProducer
type ProductEventProducer interface {
	Produce(ctx context.Context, evt ProductEvent) error
}

type productEventProducer struct {
	producer mq.Producer
}

func NewProductEventProducer(q mq.MQ) (ProductEventProducer, error) {
	p, err := q.Producer(topicProductEvents)
	if err != nil {
		return nil, err
	}
	return &productEventProducer{producer: p}, nil
}

func (s *productEventProducer) Produce(ctx context.Context, evt ProductEvent) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失敗: %w", err)
	}
	_, err = s.producer.Produce(ctx, &mq.Message{
		Key:   []byte(strconv.FormatInt(evt.ID, 10)),
		Value: data,
	})
	return err
}
