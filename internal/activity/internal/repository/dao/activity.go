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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrActivityNotFound = errors.New("活動不存在")

type ActivityDAO interface {
	Save(ctx context.Context, a Activity) (int64, error)
	FindByID(ctx context.Context, id int64) (Activity, error)
	ListBySellerID(ctx context.Context, sellerID int64) ([]Activity, error)
	// ListRunning 查詢已發布且在效期內的活動
	ListRunning(ctx context.Context, now int64, offset, limit int) ([]Activity, error)
	Delete(ctx context.Context, id, sellerID int64) error
}

func NewActivityGORMDAO(db *egorm.Component) ActivityDAO {
	return &ActivityGORMDAO{db: db}
}

type ActivityGORMDAO struct {
	db *egorm.Component
}

func (d *ActivityGORMDAO) Save(ctx context.Context, a Activity) (int64, error) {
	now := time.Now().UnixMilli()
	a.Utime = now
	if a.Id == 0 {
		a.Ctime = now
		err := d.db.WithContext(ctx).Create(&a).Error
		return a.Id, err
	}
	res := d.db.WithContext(ctx).Model(&Activity{}).
		Where("id = ? AND seller_id = ?", a.Id, a.SellerId).
		Updates(map[string]any{
			"name":         a.Name,
			"description":  a.Description,
			"images":       a.Images,
			"category":     a.Category,
			"is_published": a.IsPublished,
			"start_date":   a.StartDate,
			"end_date":     a.EndDate,
			"utime":        now,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, fmt.Errorf("%w: id=%d", ErrActivityNotFound, a.Id)
	}
	return a.Id, nil
}

func (d *ActivityGORMDAO) FindByID(ctx context.Context, id int64) (Activity, error) {
	var a Activity
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Activity{}, fmt.Errorf("%w: id=%d", ErrActivityNotFound, id)
	}
	return a, err
}

func (d *ActivityGORMDAO) ListBySellerID(ctx context.Context, sellerID int64) ([]Activity, error) {
	var as []Activity
	err := d.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("id DESC").
		Find(&as).Error
	return as, err
}

func (d *ActivityGORMDAO) ListRunning(ctx context.Context, now int64, offset, limit int) ([]Activity, error) {
	var as []Activity
	err := d.db.WithContext(ctx).
		Where("is_published = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("start_date DESC").
		Offset(offset).Limit(limit).
		Find(&as).Error
	return as, err
}

func (d *ActivityGORMDAO) Delete(ctx context.Context, id, sellerID int64) error {
	res := d.db.WithContext(ctx).
		Where("id = ? AND seller_id = ?", id, sellerID).
		Delete(&Activity{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id=%d", ErrActivityNotFound, id)
	}
	return nil
}

type Activity struct {
	Id          int64                     `gorm:"primaryKey;autoIncrement;comment:活動自增ID"`
	SellerId    int64                     `gorm:"not null;index:idx_seller_id;comment:賣家ID"`
	Name        string                    `gorm:"type:varchar(255);not null;comment:活動名稱"`
	Description string                    `gorm:"type:text;comment:活動描述"`
	Images      sqlx.JsonColumn[[]string] `gorm:"type:json;comment:活動圖片"`
	Category    string                    `gorm:"type:varchar(32);not null;comment:活動或公告"`
	IsPublished bool                      `gorm:"not null;default:false;index:idx_is_published;comment:是否發布"`
	StartDate   int64                     `gorm:"not null;comment:開始時間"`
	EndDate     int64                     `gorm:"not null;comment:結束時間"`
	Ctime       int64
	Utime       int64
}
