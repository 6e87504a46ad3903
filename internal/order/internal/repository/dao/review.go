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

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

var ErrDuplicateReview = errors.New("此商品已評價過")

const uniqueIndexConflictErrNo uint16 = 1062

func (d *OrderGORMDAO) CreateReview(ctx context.Context, r Review) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	err := d.db.WithContext(ctx).Create(&r).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		if me.Number == uniqueIndexConflictErrNo {
			return 0, fmt.Errorf("%w: sn=%s, productID=%d", ErrDuplicateReview, r.OrderSN, r.ProductId)
		}
	}
	return r.Id, err
}

func (d *OrderGORMDAO) ListReviewsByProductID(ctx context.Context, productID int64, offset, limit int) ([]Review, error) {
	var rs []Review
	err := d.db.WithContext(ctx).Where("product_id = ?", productID).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&rs).Error
	return rs, err
}

func (d *OrderGORMDAO) CountReviewsByProductID(ctx context.Context, productID int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Review{}).Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

type Review struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:評價自增ID"`
	OrderSN   string `gorm:"column:order_sn;type:varchar(255);not null;uniqueIndex:uniq_order_product,priority:1;comment:訂單序列號"`
	ProductId int64  `gorm:"not null;uniqueIndex:uniq_order_product,priority:2;index:idx_review_product_id;comment:商品ID"`
	BuyerId   int64  `gorm:"not null;comment:買家ID"`
	Rate      int64  `gorm:"type:tinyint unsigned;not null;comment:評分 1-5"`
	Ctime     int64
	Utime     int64
}
