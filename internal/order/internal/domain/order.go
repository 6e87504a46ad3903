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

package domain

type OrderState uint8

func (s OrderState) ToUint8() uint8 {
	return uint8(s)
}

const (
	OrderStateUnpaid OrderState = 0 // 未付
	OrderStatePaid   OrderState = 1 // 已付, 終態, 不存在回退
)

type PayMethod uint8

const (
	PayMethodCard PayMethod = 0 // 刷卡
	PayMethodCash PayMethod = 1 // 現金
)

type Order struct {
	ID         int64
	SN         string
	BuyerID    int64
	SellerID   int64
	TotalPrice int64
	Fare       int64
	State      OrderState
	PayMethod  PayMethod
	// MerchantOrderNo 是訂單與金流交易之間唯一的對帳鍵,
	// 發起付款時就會落庫, 通知到達時靠它找回訂單
	MerchantOrderNo string
	TradeNo         string
	PayTime         string
	Items           []OrderItem
	Ctime           int64
	Utime           int64
}

func (o Order) PayableAmount() int64 {
	return o.TotalPrice + o.Fare
}

type OrderItem struct {
	ProductID int64
	FormatID  int64
	Name      string
	Spec      string
	Price     int64
	Quantity  int64
}

// Review 買家對已付訂單內某件商品的評價, 同一張訂單同一件商品只能評一次
type Review struct {
	ID        int64
	OrderSN   string
	ProductID int64
	BuyerID   int64
	Rate      int64
	Ctime     int64
}
