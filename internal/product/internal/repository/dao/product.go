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

var ErrProductNotFound = errors.New("商品不存在")

type ProductDAO interface {
	Save(ctx context.Context, p Product, formats []Format) (int64, error)
	FindByID(ctx context.Context, id int64) (Product, error)
	FindFormat(ctx context.Context, productID, formatID int64) (Product, Format, error)
	FindFormatsByProductID(ctx context.Context, productID int64) ([]Format, error)
	ListOnShelf(ctx context.Context, offset, limit int) ([]Product, error)
	CountOnShelf(ctx context.Context) (int64, error)
	ListBySellerID(ctx context.Context, sellerID int64, offset, limit int) ([]Product, error)
	CountBySellerID(ctx context.Context, sellerID int64) (int64, error)
	UpdateShelfState(ctx context.Context, id, sellerID int64, onShelf bool) error
	Delete(ctx context.Context, id, sellerID int64) error
	IncrSold(ctx context.Context, id, quantity int64) error
	DecrStock(ctx context.Context, formatID, quantity int64) error
}

type ProductGORMDAO struct {
	db *egorm.Component
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &ProductGORMDAO{db: db}
}

// Save 新建或整體覆蓋商品及其規格
func (d *ProductGORMDAO) Save(ctx context.Context, p Product, formats []Format) (int64, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		p.Utime = now
		if p.Id == 0 {
			p.Ctime = now
			if err := tx.Create(&p).Error; err != nil {
				return fmt.Errorf("創建商品失敗: %w", err)
			}
		} else {
			res := tx.Model(&Product{}).
				Where("id = ? AND seller_id = ?", p.Id, p.SellerId).
				Updates(map[string]any{
					"title":           p.Title,
					"category":        p.Category,
					"description":     p.Description,
					"fare":            p.Fare,
					"pay_method_card": p.PayMethodCard,
					"pay_method_cash": p.PayMethodCash,
					"is_on_shelf":     p.IsOnShelf,
					"keywords":        p.Keywords,
					"images":          p.Images,
					"utime":           now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: id=%d", ErrProductNotFound, p.Id)
			}
			// 規格整批重建, 訂單項裡存的是快照, 不受影響
			if err := tx.Where("product_id = ?", p.Id).Delete(&Format{}).Error; err != nil {
				return err
			}
		}
		for i := range formats {
			formats[i].Id = 0
			formats[i].ProductId = p.Id
			formats[i].Ctime, formats[i].Utime = now, now
		}
		if len(formats) == 0 {
			return nil
		}
		return tx.Create(&formats).Error
	})
	return p.Id, err
}

func (d *ProductGORMDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Product{}, fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
	}
	return p, err
}

func (d *ProductGORMDAO) FindFormat(ctx context.Context, productID, formatID int64) (Product, Format, error) {
	p, err := d.FindByID(ctx, productID)
	if err != nil {
		return Product{}, Format{}, err
	}
	var f Format
	err = d.db.WithContext(ctx).
		Where("id = ? AND product_id = ?", formatID, productID).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Product{}, Format{}, fmt.Errorf("%w: formatID=%d", ErrProductNotFound, formatID)
	}
	return p, f, err
}

func (d *ProductGORMDAO) FindFormatsByProductID(ctx context.Context, productID int64) ([]Format, error) {
	var fs []Format
	err := d.db.WithContext(ctx).Where("product_id = ?", productID).Find(&fs).Error
	return fs, err
}

func (d *ProductGORMDAO) ListOnShelf(ctx context.Context, offset, limit int) ([]Product, error) {
	var ps []Product
	err := d.db.WithContext(ctx).Where("is_on_shelf = ?", true).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&ps).Error
	return ps, err
}

func (d *ProductGORMDAO) CountOnShelf(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Product{}).Where("is_on_shelf = ?", true).Count(&count).Error
	return count, err
}

func (d *ProductGORMDAO) ListBySellerID(ctx context.Context, sellerID int64, offset, limit int) ([]Product, error) {
	var ps []Product
	err := d.db.WithContext(ctx).Where("seller_id = ?", sellerID).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&ps).Error
	return ps, err
}

func (d *ProductGORMDAO) CountBySellerID(ctx context.Context, sellerID int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Product{}).Where("seller_id = ?", sellerID).Count(&count).Error
	return count, err
}

func (d *ProductGORMDAO) UpdateShelfState(ctx context.Context, id, sellerID int64, onShelf bool) error {
	res := d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND seller_id = ?", id, sellerID).
		Updates(map[string]any{
			"is_on_shelf": onShelf,
			"utime":       time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
	}
	return nil
}

func (d *ProductGORMDAO) Delete(ctx context.Context, id, sellerID int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND seller_id = ?", id, sellerID).Delete(&Product{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
		}
		return tx.Where("product_id = ?", id).Delete(&Format{}).Error
	})
}

func (d *ProductGORMDAO) IncrSold(ctx context.Context, id, quantity int64) error {
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"sold":  gorm.Expr("sold + ?", quantity),
			"utime": time.Now().UnixMilli(),
		}).Error
}

// DecrStock 帶下限保護, 庫存不夠就一行都不改
func (d *ProductGORMDAO) DecrStock(ctx context.Context, formatID, quantity int64) error {
	res := d.db.WithContext(ctx).Model(&Format{}).
		Where("id = ? AND stock >= ?", formatID, quantity).
		Updates(map[string]any{
			"stock": gorm.Expr("stock - ?", quantity),
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("庫存不足: formatID=%d", formatID)
	}
	return nil
}

type Product struct {
	Id            int64                     `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	SellerId      int64                     `gorm:"not null;index:idx_seller_id;comment:賣家ID"`
	Title         string                    `gorm:"type:varchar(255);not null;comment:商品名稱"`
	Category      string                    `gorm:"type:varchar(255);comment:商品分類"`
	Description   string                    `gorm:"type:text;comment:商品描述"`
	Fare          int64                     `gorm:"not null;comment:運費;單位為分"`
	PayMethodCard bool                      `gorm:"not null;default:false;comment:支援刷卡"`
	PayMethodCash bool                      `gorm:"not null;default:false;comment:支援現金"`
	IsOnShelf     bool                      `gorm:"not null;default:false;index:idx_is_on_shelf;comment:是否上架"`
	Sold          int64                     `gorm:"not null;default:0;comment:累計售出件數"`
	Keywords      sqlx.JsonColumn[[]string] `gorm:"type:json;comment:搜索關鍵字"`
	Images        sqlx.JsonColumn[[]string] `gorm:"type:json;comment:商品圖片"`
	Ctime         int64
	Utime         int64
}

type Format struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:規格自增ID"`
	ProductId int64  `gorm:"not null;index:idx_product_id;comment:商品自增ID"`
	Title     string `gorm:"type:varchar(255);not null;comment:規格名稱"`
	Price     int64  `gorm:"not null;comment:單價;單位為分"`
	Stock     int64  `gorm:"not null;comment:庫存數量"`
	Color     string `gorm:"type:varchar(64);comment:顏色"`
	Image     string `gorm:"type:varchar(512);comment:規格圖片"`
	Ctime     int64
	Utime     int64
}
