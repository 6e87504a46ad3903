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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartDAO interface {
	// Upsert 同一買家同一規格已存在時累加數量
	Upsert(ctx context.Context, item Item) error
	UpdateQuantity(ctx context.Context, buyerID, id, quantity int64) error
	Delete(ctx context.Context, buyerID, id int64) error
	ListByBuyerID(ctx context.Context, buyerID int64) ([]Item, error)
	ListByBuyerAndSeller(ctx context.Context, buyerID, sellerID int64) ([]Item, error)
	DeleteBySeller(ctx context.Context, buyerID, sellerID int64) error
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &CartGORMDAO{db: db}
}

type CartGORMDAO struct {
	db *egorm.Component
}

func (d *CartGORMDAO) Upsert(ctx context.Context, item Item) error {
	now := time.Now().UnixMilli()
	item.Ctime, item.Utime = now, now
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "buyer_id"}, {Name: "format_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("quantity + ?", item.Quantity),
			"utime":    now,
		}),
	}).Create(&item).Error
}

func (d *CartGORMDAO) UpdateQuantity(ctx context.Context, buyerID, id, quantity int64) error {
	return d.db.WithContext(ctx).Model(&Item{}).
		Where("id = ? AND buyer_id = ?", id, buyerID).
		Updates(map[string]any{
			"quantity": quantity,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (d *CartGORMDAO) Delete(ctx context.Context, buyerID, id int64) error {
	return d.db.WithContext(ctx).
		Where("id = ? AND buyer_id = ?", id, buyerID).
		Delete(&Item{}).Error
}

func (d *CartGORMDAO) ListByBuyerID(ctx context.Context, buyerID int64) ([]Item, error) {
	var items []Item
	err := d.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("seller_id, id DESC").
		Find(&items).Error
	return items, err
}

func (d *CartGORMDAO) ListByBuyerAndSeller(ctx context.Context, buyerID, sellerID int64) ([]Item, error) {
	var items []Item
	err := d.db.WithContext(ctx).
		Where("buyer_id = ? AND seller_id = ?", buyerID, sellerID).
		Order("id DESC").
		Find(&items).Error
	return items, err
}

func (d *CartGORMDAO) DeleteBySeller(ctx context.Context, buyerID, sellerID int64) error {
	return d.db.WithContext(ctx).
		Where("buyer_id = ? AND seller_id = ?", buyerID, sellerID).
		Delete(&Item{}).Error
}

type Item struct {
	Id        int64 `gorm:"primaryKey;autoIncrement;comment:購物車項自增ID"`
	BuyerId   int64 `gorm:"not null;uniqueIndex:uniq_buyer_format;comment:買家ID"`
	SellerId  int64 `gorm:"not null;index:idx_buyer_seller;comment:賣家ID"`
	ProductId int64 `gorm:"not null;comment:商品ID"`
	FormatId  int64 `gorm:"not null;uniqueIndex:uniq_buyer_format;comment:規格ID"`
	Quantity  int64 `gorm:"not null;comment:數量"`
	Ctime     int64
	Utime     int64
}

func (Item) TableName() string {
	return "cart_items"
}
