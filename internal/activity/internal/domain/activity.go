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

type Category string

const (
	// CategoryEvent 活動
	CategoryEvent Category = "活動"
	// CategoryNotice 公告
	CategoryNotice Category = "公告"
)

type Activity struct {
	ID          int64
	SellerID    int64
	Name        string
	Description string
	Images      []string
	Category    Category
	// IsPublished 未發布的活動只有賣家自己看得到
	IsPublished bool
	StartDate   int64
	EndDate     int64
	Ctime       int64
	Utime       int64
}
