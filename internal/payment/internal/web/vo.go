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

// PayReq 不綁定訂單的付款, 金額與品名由前端給定
type PayReq struct {
	Email    string `json:"email"`
	Amt      int64  `json:"amt"`
	ItemDesc string `json:"itemDesc"`
}

// PayOrderReq 訂單付款, 金額一律由伺服器端重算
type PayOrderReq struct {
	OrderSN string `json:"orderSN"`
}

// PayResp 前端拿這些欄位組表單 POST 到 payGateway
type PayResp struct {
	MerchantID string `json:"merchantID"`
	TradeInfo  string `json:"tradeInfo"`
	TradeSha   string `json:"tradeSha"`
	Version    string `json:"version"`
	PayGateway string `json:"payGateway"`
	ReturnURL  string `json:"returnUrl"`
	NotifyURL  string `json:"notifyUrl"`
}
