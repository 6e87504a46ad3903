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

package payment

import (
	"github.com/ecartisans/ecartisans/internal/order"
	"github.com/ecartisans/ecartisans/internal/payment/internal/event"
	"github.com/ecartisans/ecartisans/internal/payment/internal/service"
	"github.com/ecartisans/ecartisans/internal/payment/internal/service/newebpay"
	"github.com/ecartisans/ecartisans/internal/payment/internal/web"
	"github.com/ecartisans/ecartisans/internal/pkg/snowflake"
	"github.com/ecartisans/ecartisans/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	newebpay.NewCodec,
	snowflake.NewMerchantOrderNoGenerator,
	event.NewPaymentEventProducer,
	service.NewService,
	web.NewHandler,
	wire.Struct(new(Module), "*"))

// nodeID: 同一個服務的多個實例要配不同的 snowflake 節點ID
func InitModule(cfg newebpay.Config,
	nodeID int64,
	orderSvc order.Service,
	userSvc user.Service,
	q mq.MQ) (*Module, error) {
	wire.Build(ModuleSet)
	return new(Module), nil
}
