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

type SaveActivityReq struct {
	Activity Activity `json:"activity"`
}

type ActivityIDReq struct {
	ID int64 `json:"id"`
}

type ListRunningReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListActivitiesResp struct {
	Activities []Activity `json:"activities,omitempty"`
}

type Activity struct {
	ID          int64    `json:"id,omitempty"`
	SellerID    int64    `json:"sellerID,omitempty"`
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
	Category    string   `json:"category,omitempty"`
	IsPublished bool     `json:"isPublished"`
	StartDate   int64    `json:"startDate,omitempty"`
	EndDate     int64    `json:"endDate,omitempty"`
}
