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

type SaveProductReq struct {
	Product Product `json:"product"`
}

type ProductIDReq struct {
	ID int64 `json:"id"`
}

type UpdateShelfStateReq struct {
	ID        int64 `json:"id"`
	IsOnShelf bool  `json:"isOnShelf"`
}

type ListProductsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListProductsResp struct {
	Total    int64     `json:"total,omitempty"`
	Products []Product `json:"products,omitempty"`
}

type Product struct {
	ID            int64    `json:"id,omitempty"`
	Title         string   `json:"title,omitempty"`
	Category      string   `json:"category,omitempty"`
	Description   string   `json:"description,omitempty"`
	Fare          int64    `json:"fare,omitempty"`
	PayMethodCard bool     `json:"payMethodCard,omitempty"`
	PayMethodCash bool     `json:"payMethodCash,omitempty"`
	IsOnShelf     bool     `json:"isOnShelf,omitempty"`
	Sold          int64    `json:"sold,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
	Images        []string `json:"images,omitempty"`
	Formats       []Format `json:"formats,omitempty"`
}

type Format struct {
	ID    int64  `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
	Price int64  `json:"price,omitempty"`
	Stock int64  `json:"stock,omitempty"`
	Color string `json:"color,omitempty"`
	Image string `json:"image,omitempty"`
}
