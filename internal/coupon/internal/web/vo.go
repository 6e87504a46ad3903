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

type SaveCouponReq struct {
	Coupon Coupon `json:"coupon"`
}

type CouponIDReq struct {
	ID int64 `json:"id"`
}

type ListCouponsResp struct {
	Coupons []Coupon `json:"coupons,omitempty"`
}

type ListClaimsResp struct {
	Claims []Claim `json:"claims,omitempty"`
}

type Coupon struct {
	ID                 int64   `json:"id,omitempty"`
	Name               string  `json:"name,omitempty"`
	Type               int64   `json:"type"`
	DiscountConditions int64   `json:"discountConditions"`
	Percentage         int64   `json:"percentage,omitempty"`
	Scope              int64   `json:"scope"`
	ChosenProductIDs   []int64 `json:"chosenProductIDs,omitempty"`
	IsEnabled          bool    `json:"isEnabled"`
	StartDate          int64   `json:"startDate,omitempty"`
	EndDate            int64   `json:"endDate,omitempty"`
}

type Claim struct {
	CouponID int64  `json:"couponID"`
	Used     bool   `json:"used"`
	Coupon   Coupon `json:"coupon"`
}
