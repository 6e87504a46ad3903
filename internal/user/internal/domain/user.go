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

type Role uint8

const (
	RoleBuyer  Role = 0 // 買家
	RoleSeller Role = 1 // 賣家, 能上架商品、發券、收訂單
)

type User struct {
	ID int64
	SN string
	// Email 同時是登入帳號
	Email string
	// Password bcrypt 雜湊, 不出現在任何響應裡
	Password string
	Name     string
	Phone    string
	Avatar   string
	// Introduce 賣家的店鋪介紹
	Introduce string
	Role      Role
	Ctime     int64
	Utime     int64
}

func (u User) IsSeller() bool {
	return u.Role == RoleSeller
}
