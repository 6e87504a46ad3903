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

package search

import (
	"context"
	"sync"

	"github.com/ecartisans/ecartisans/internal/search/internal/event"
	"github.com/ecartisans/ecartisans/internal/search/internal/repository"
	"github.com/ecartisans/ecartisans/internal/search/internal/repository/dao"
	"github.com/ecartisans/ecartisans/internal/search/internal/service"
	"github.com/ecartisans/ecartisans/internal/search/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/olivere/elastic/v7"
)

var ModuleSet = wire.NewSet(
	InitIndexOnce,
	repository.NewProductRepo,
	service.NewSearchSvc,
	service.NewSyncSvc,
	web.NewHandler,
	InitConsumer,
	wire.Struct(new(Module), "*"))

func InitModule(es *elastic.Client, q mq.MQ) *Module {
	wire.Build(ModuleSet)
	return new(Module)
}

func InitConsumer(svc service.SyncService, q mq.MQ) *event.SyncConsumer {
	consumer, err := event.NewSyncConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	consumer.Start(context.Background())
	return consumer
}

var once = &sync.Once{}

func InitIndexOnce(es *elastic.Client) dao.ProductDAO {
	once.Do(func() {
		_ = dao.InitES(es)
	})
	return dao.NewProductElasticDAO(es)
}
