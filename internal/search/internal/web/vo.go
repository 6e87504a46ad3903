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

type SearchReq struct {
	Keywords string `json:"keywords"`
	Offset   int    `json:"offset,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

type SearchResp struct {
	Products []Product `json:"products,omitempty"`
}

type Product struct {
	ID          int64               `json:"id"`
	SellerID    int64               `json:"sellerID,omitempty"`
	Title       string              `json:"title,omitempty"`
	Category    string              `json:"category,omitempty"`
	Description string              `json:"description,omitempty"`
	Keywords    []string            `json:"keywords,omitempty"`
	Highlights  map[string][]string `json:"highlights,omitempty"`
}
