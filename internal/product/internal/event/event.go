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

const (
	// topicProductEvents 商品變更事件, 搜索模組靠它維護索引
	topicProductEvents = "product_events"
	// topicPaymentEvents 支付成功事件, 本模組靠它累計銷量並扣庫存
	topicPaymentEvents = "payment_events"
)

// ProductEvent 商品的創建/更新/上下架/刪除都走同一個事件
type ProductEvent struct {
	ID          int64    `json:"id"`
	SellerID    int64    `json:"sellerID"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	IsOnShelf   bool     `json:"isOnShelf"`
	Deleted     bool     `json:"deleted"`
}

// PaymentEvent 與支付模組發出的事件結構保持一致
type PaymentEvent struct {
	OrderSN         string             `json:"orderSN"`
	MerchantOrderNo string             `json:"merchantOrderNo"`
	TradeNo         string             `json:"tradeNo"`
	PayTime         string             `json:"payTime"`
	Amt             int64              `json:"amt"`
	Items           []PaymentEventItem `json:"items"`
}

type PaymentEventItem struct {
	ProductID int64 `json:"productID"`
	FormatID  int64 `json:"formatID"`
	Quantity  int64 `json:"quantity"`
}
