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

package ioc

import (
	"github.com/ecartisans/ecartisans/internal/order"
	"github.com/ecartisans/ecartisans/internal/payment"
	"github.com/ecartisans/ecartisans/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
)

func InitPaymentModule(orderSvc order.Service, userSvc user.Service, q mq.MQ) (*payment.Module, error) {
	type PaymentConfig struct {
		MerchantID string `yaml:"merchantID"`
		HashKey    string `yaml:"hashKey"`
		HashIV     string `yaml:"hashIV"`
		Version    string `yaml:"version"`
		ReturnURL  string `yaml:"returnURL"`
		NotifyURL  string `yaml:"notifyURL"`
		PayGateway string `yaml:"payGateway"`
		// 同一服務的多個實例要配不同的節點ID
		NodeID int64 `yaml:"nodeID"`
	}
	var cfg PaymentConfig
	err := econf.UnmarshalKey("newebpay", &cfg)
	if err != nil {
		panic(err)
	}
	return payment.InitModule(payment.Config{
		MerchantID: cfg.MerchantID,
		HashKey:    cfg.HashKey,
		HashIV:     cfg.HashIV,
		Version:    cfg.Version,
		ReturnURL:  cfg.ReturnURL,
		NotifyURL:  cfg.NotifyURL,
		PayGateway: cfg.PayGateway,
	}, cfg.NodeID, orderSvc, userSvc, q)
}
