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

const topicProductEvents = "product_events"

// ProductEvent 與商品模組發出的事件結構保持一致
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
