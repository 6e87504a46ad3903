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

// PaymentRequest 藍新金流交易請求, 欄位順序即 datachain 的協議順序
type PaymentRequest struct {
	MerchantID      string
	TimeStamp       int64
	Version         string
	RespondType     string
	MerchantOrderNo string
	Amt             int64
	NotifyURL       string
	ReturnURL       string
	ItemDesc        string
	Email           string
}

// EncryptedPayload 由 PaymentRequest 推導而來, 不會獨立存在
type EncryptedPayload struct {
	TradeInfo string
	TradeSha  string
}

// RawPayment 不綁定訂單的付款, 三個欄位都必填
type RawPayment struct {
	Email    string
	Amt      int64
	ItemDesc string
}

// OrderPayment 綁定訂單的付款
// 金額一律由伺服器端以 TotalPrice+Fare 重算, 不收客戶端的金額
type OrderPayment struct {
	OrderSN string
	BuyerID int64
}

// RedirectInfo 前端導向金流閘道所需的表單資料
type RedirectInfo struct {
	MerchantID string
	TradeInfo  string
	TradeSha   string
	Version    string
	PayGateway string
	ReturnURL  string
	NotifyURL  string
}

// PaymentResult 解密後的金流通知
type PaymentResult struct {
	Status  string
	Message string
	Result  TradeResult
}

func (r PaymentResult) Succeeded() bool {
	return r.Status == TradeStatusSuccess
}

// TradeStatusSuccess 藍新通知 Status 欄位的成功值
const TradeStatusSuccess = "SUCCESS"

// TradeResult 通知內層的交易結果
type TradeResult struct {
	MerchantID      string
	Amt             int64
	TradeNo         string
	MerchantOrderNo string
	PaymentType     string
	PayTime         string
}
