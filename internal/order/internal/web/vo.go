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

package web

// CreateOrderReq 從購物車建立訂單
type CreateOrderReq struct {
	RequestID string `json:"requestID"` // 請求去重, 防止訂單重複提交
	SellerID  int64  `json:"sellerID"`  // 結算哪個賣家的購物車
	CouponID  int64  `json:"couponID,omitempty"`
	PayMethod uint8  `json:"payMethod"` // 0=刷卡 1=現金
}

type CreateOrderResp struct {
	OrderSN    string `json:"orderSN"` // 前端拿它去發起付款或輪詢狀態
	TotalPrice int64  `json:"totalPrice"`
	Fare       int64  `json:"fare"`
}

// ListOrdersReq 分頁查詢訂單, 買家賣家共用
type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

// RetrieveOrderDetailReq 獲取訂單詳情
type RetrieveOrderDetailReq struct {
	OrderSN string `json:"sn"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

type Order struct {
	SN         string      `json:"sn"`
	State      uint8       `json:"state"`
	PayMethod  uint8       `json:"payMethod"`
	TotalPrice int64       `json:"totalPrice"`
	Fare       int64       `json:"fare"`
	TradeNo    string      `json:"tradeNo,omitempty"`
	PayTime    string      `json:"payTime,omitempty"`
	Items      []OrderItem `json:"items,omitempty"`
	Ctime      int64       `json:"ctime"`
	Utime      int64       `json:"utime"`
}

type OrderItem struct {
	ProductID int64  `json:"productID"`
	Name      string `json:"name"`
	Spec      string `json:"spec,omitempty"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

// CreateReviewReq 評價已付訂單裡的某件商品
type CreateReviewReq struct {
	OrderSN   string `json:"sn"`
	ProductID int64  `json:"productID"`
	Rate      int64  `json:"rate"` // 1-5
}

type CreateReviewResp struct {
	RID int64 `json:"rid"`
}

// ListProductReviewsReq 分頁查詢某件商品收到的評價, 無需登入
type ListProductReviewsReq struct {
	ProductID int64 `json:"productID"`
	Offset    int   `json:"offset,omitempty"`
	Limit     int   `json:"limit,omitempty"`
}

type ListProductReviewsResp struct {
	Total   int64    `json:"total,omitempty"`
	Reviews []Review `json:"reviews,omitempty"`
}

type Review struct {
	BuyerID int64 `json:"buyerID"`
	Rate    int64 `json:"rate"`
	Ctime   int64 `json:"ctime"`
}
