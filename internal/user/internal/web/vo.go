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

type RegisterReq struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Name            string `json:"name"`
	Phone           string `json:"phone,omitempty"`
	Role            uint8  `json:"role"` // 0=買家 1=賣家
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EditReq struct {
	Name      string `json:"name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Introduce string `json:"introduce,omitempty"`
}

type Profile struct {
	ID        int64  `json:"id"`
	SN        string `json:"sn"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Introduce string `json:"introduce,omitempty"`
	Role      uint8  `json:"role"`
}
