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

type Product struct {
	ID       int64
	SellerID int64
	Title    string
	// Category 商品分類, 賣家自由填寫
	Category    string
	Description string
	// Fare 運費, 單位為分
	Fare int64
	// PayMethodCard / PayMethodCash 賣家支援的收款方式
	PayMethodCard bool
	PayMethodCash bool
	IsOnShelf     bool
	// Sold 累計售出件數, 由支付成功事件累加
	Sold     int64
	Keywords []string
	Images   []string
	Formats  []Format
	Ctime    int64
	Utime    int64
}

// Format 商品規格(顏色/尺寸等變體), 價格與庫存都掛在規格上
type Format struct {
	ID        int64
	ProductID int64
	Title     string
	Price     int64
	Stock     int64
	Color     string
	Image     string
}
