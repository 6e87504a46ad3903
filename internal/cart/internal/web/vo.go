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

type AddItemReq struct {
	ProductID int64 `json:"productID"`
	FormatID  int64 `json:"formatID"`
	Quantity  int64 `json:"quantity"`
}

type UpdateQuantityReq struct {
	ID       int64 `json:"id"`
	Quantity int64 `json:"quantity"`
}

type ItemIDReq struct {
	ID int64 `json:"id"`
}

type ListCartResp struct {
	Carts []SellerCart `json:"carts,omitempty"`
}

// SellerCart 同一賣家的購物車項歸在一組, 結算以賣家為單位
type SellerCart struct {
	SellerID int64  `json:"sellerID"`
	Items    []Item `json:"items"`
}

type Item struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"productID"`
	FormatID    int64  `json:"formatID"`
	Quantity    int64  `json:"quantity"`
	ProductName string `json:"productName,omitempty"`
	FormatName  string `json:"formatName,omitempty"`
	Price       int64  `json:"price,omitempty"`
	Image       string `json:"image,omitempty"`
}
