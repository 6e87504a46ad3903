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
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrCouponNotFound = errors.New("優惠券不存在")
	ErrClaimDuplicate = errors.New("優惠券已領取")
	ErrClaimUsed      = errors.New("優惠券已使用")
)

const uniqueIndexConflictErrNo uint16 = 1062

type CouponDAO interface {
	Save(ctx context.Context, c Coupon) (int64, error)
	FindByID(ctx context.Context, id int64) (Coupon, error)
	ListBySellerID(ctx context.Context, sellerID int64) ([]Coupon, error)
	ListEnabled(ctx context.Context, now int64) ([]Coupon, error)
	Delete(ctx context.Context, id, sellerID int64) error

	InsertClaim(ctx context.Context, claim Claim) (int64, error)
	FindClaim(ctx context.Context, couponID, buyerID int64) (Claim, error)
	ListClaimsByBuyerID(ctx context.Context, buyerID int64) ([]Claim, error)
	// MarkClaimUsed CAS 更新, 已使用過則返回 ErrClaimUsed
	MarkClaimUsed(ctx context.Context, couponID, buyerID int64) error
	MarkClaimUnused(ctx context.Context, couponID, buyerID int64) error
}

func NewCouponGORMDAO(db *egorm.Component) CouponDAO {
	return &CouponGORMDAO{db: db}
}

type CouponGORMDAO struct {
	db *egorm.Component
}

func (d *CouponGORMDAO) Save(ctx context.Context, c Coupon) (int64, error) {
	now := time.Now().UnixMilli()
	c.Utime = now
	if c.Id == 0 {
		c.Ctime = now
		err := d.db.WithContext(ctx).Create(&c).Error
		return c.Id, err
	}
	res := d.db.WithContext(ctx).Model(&Coupon{}).
		Where("id = ? AND seller_id = ?", c.Id, c.SellerId).
		Updates(map[string]any{
			"name":                c.Name,
			"type":                c.Type,
			"discount_conditions": c.DiscountConditions,
			"percentage":          c.Percentage,
			"scope":               c.Scope,
			"chosen_product_ids":  c.ChosenProductIds,
			"is_enabled":          c.IsEnabled,
			"start_date":          c.StartDate,
			"end_date":            c.EndDate,
			"utime":               now,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, fmt.Errorf("%w: id=%d", ErrCouponNotFound, c.Id)
	}
	return c.Id, nil
}

func (d *CouponGORMDAO) FindByID(ctx context.Context, id int64) (Coupon, error) {
	var c Coupon
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Coupon{}, fmt.Errorf("%w: id=%d", ErrCouponNotFound, id)
	}
	return c, err
}

func (d *CouponGORMDAO) ListBySellerID(ctx context.Context, sellerID int64) ([]Coupon, error) {
	var cs []Coupon
	err := d.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("id DESC").
		Find(&cs).Error
	return cs, err
}

func (d *CouponGORMDAO) ListEnabled(ctx context.Context, now int64) ([]Coupon, error) {
	var cs []Coupon
	err := d.db.WithContext(ctx).
		Where("is_enabled = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("id DESC").
		Find(&cs).Error
	return cs, err
}

func (d *CouponGORMDAO) Delete(ctx context.Context, id, sellerID int64) error {
	res := d.db.WithContext(ctx).
		Where("id = ? AND seller_id = ?", id, sellerID).
		Delete(&Coupon{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id=%d", ErrCouponNotFound, id)
	}
	return nil
}

func (d *CouponGORMDAO) InsertClaim(ctx context.Context, claim Claim) (int64, error) {
	now := time.Now().UnixMilli()
	claim.Ctime, claim.Utime = now, now
	err := d.db.WithContext(ctx).Create(&claim).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		if me.Number == uniqueIndexConflictErrNo {
			return 0, fmt.Errorf("%w: couponID=%d", ErrClaimDuplicate, claim.CouponId)
		}
	}
	return claim.Id, err
}

func (d *CouponGORMDAO) FindClaim(ctx context.Context, couponID, buyerID int64) (Claim, error) {
	var claim Claim
	err := d.db.WithContext(ctx).
		Where("coupon_id = ? AND buyer_id = ?", couponID, buyerID).
		First(&claim).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Claim{}, fmt.Errorf("%w: couponID=%d", ErrCouponNotFound, couponID)
	}
	return claim, err
}

func (d *CouponGORMDAO) ListClaimsByBuyerID(ctx context.Context, buyerID int64) ([]Claim, error) {
	var claims []Claim
	err := d.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("id DESC").
		Find(&claims).Error
	return claims, err
}

func (d *CouponGORMDAO) MarkClaimUsed(ctx context.Context, couponID, buyerID int64) error {
	res := d.db.WithContext(ctx).Model(&Claim{}).
		Where("coupon_id = ? AND buyer_id = ? AND used = ?", couponID, buyerID, false).
		Updates(map[string]any{
			"used":  true,
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: couponID=%d", ErrClaimUsed, couponID)
	}
	return nil
}

// MarkClaimUnused 歸還已核銷的券, 冪等: 沒核銷過就什麼都不改
func (d *CouponGORMDAO) MarkClaimUnused(ctx context.Context, couponID, buyerID int64) error {
	return d.db.WithContext(ctx).Model(&Claim{}).
		Where("coupon_id = ? AND buyer_id = ? AND used = ?", couponID, buyerID, true).
		Updates(map[string]any{
			"used":  false,
			"utime": time.Now().UnixMilli(),
		}).Error
}

type Coupon struct {
	Id       int64  `gorm:"primaryKey;autoIncrement;comment:優惠券自增ID"`
	SellerId int64  `gorm:"not null;index:idx_seller_id;comment:賣家ID"`
	Name     string `gorm:"type:varchar(255);not null;comment:優惠券名稱"`
	// Type 0 免運 1 折抵
	Type               int64 `gorm:"not null;comment:優惠券類型"`
	DiscountConditions int64 `gorm:"not null;comment:滿額門檻;單位為分"`
	Percentage         int64 `gorm:"not null;comment:折抵百分比"`
	// Scope 0 全館 1 指定賣家 2 指定商品
	Scope            int64                    `gorm:"not null;comment:適用範圍"`
	ChosenProductIds sqlx.JsonColumn[[]int64] `gorm:"type:json;comment:指定商品清單"`
	IsEnabled        bool                     `gorm:"not null;default:true;comment:是否啟用"`
	StartDate        int64                    `gorm:"not null;comment:開始時間"`
	EndDate          int64                    `gorm:"not null;comment:結束時間"`
	Ctime            int64
	Utime            int64
}

type Claim struct {
	Id       int64 `gorm:"primaryKey;autoIncrement;comment:領取記錄自增ID"`
	CouponId int64 `gorm:"not null;uniqueIndex:uniq_coupon_buyer;comment:優惠券ID"`
	BuyerId  int64 `gorm:"not null;uniqueIndex:uniq_coupon_buyer;index:idx_buyer_id;comment:買家ID"`
	Used     bool  `gorm:"not null;default:false;comment:是否已使用"`
	Ctime    int64
	Utime    int64
}

func (Claim) TableName() string {
	return "coupon_claims"
}
