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

type Item struct {
	ID      int64
	BuyerID int64
	// SellerID 冗餘自商品, 供按賣家分組結算
	SellerID  int64
	ProductID int64
	FormatID  int64
	Quantity  int64
	Ctime     int64
	Utime     int64
}
