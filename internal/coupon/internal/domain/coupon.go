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

type Type int64

const (
	// TypeFreeFare 免運券
	TypeFreeFare Type = 0
	// TypeDiscount 折抵券, 按 Percentage 折抵總價
	TypeDiscount Type = 1
)

type Scope int64

const (
	// ScopeAll 全館通用
	ScopeAll Scope = 0
	// ScopeSeller 限該賣家全部商品
	ScopeSeller Scope = 1
	// ScopeChosen 限指定商品
	ScopeChosen Scope = 2
)

type Coupon struct {
	ID       int64
	SellerID int64
	Name     string
	Type     Type
	// DiscountConditions 滿額門檻, 單位為分
	DiscountConditions int64
	// Percentage 折抵百分比, type 為折抵券時生效
	Percentage int64
	Scope      Scope
	// ChosenProductIDs Scope 為指定商品時的商品清單
	ChosenProductIDs []int64
	IsEnabled        bool
	StartDate        int64
	EndDate          int64
	Ctime            int64
	Utime            int64
}

// Claim 買家領取的券
type Claim struct {
	ID       int64
	CouponID int64
	BuyerID  int64
	Used     bool
	Coupon   Coupon
	Ctime    int64
	Utime    int64
}

// Deduction 下單時算出的優惠結果
type Deduction struct {
	// Amount 折抵金額, 單位為分
	Amount int64
	// FreeFare 是否免運
	FreeFare bool
}
