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

//go:build wireinject

package product

import (
	"context"
	"sync"

	"github.com/ecartisans/ecartisans/internal/product/internal/event"
	"github.com/ecartisans/ecartisans/internal/product/internal/repository"
	"github.com/ecartisans/ecartisans/internal/product/internal/repository/dao"
	"github.com/ecartisans/ecartisans/internal/product/internal/service"
	"github.com/ecartisans/ecartisans/internal/product/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	repository.NewProductRepository,
	InitProducer,
	service.NewService,
	web.NewHandler,
	InitConsumer,
	wire.Struct(new(Module), "*"))

func InitModule(db *egorm.Component, q mq.MQ) *Module {
	wire.Build(ModuleSet)
	return new(Module)
}

func InitProducer(q mq.MQ) event.ProductEventProducer {
	producer, err := event.NewProductEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}

func InitConsumer(svc service.Service, q mq.MQ) *event.PaymentConsumer {
	consumer, err := event.NewPaymentConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	consumer.Start(context.Background())
	return consumer
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ProductDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewProductGORMDAO(db)
}
