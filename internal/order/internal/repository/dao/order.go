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
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ecartisans/ecartisans/internal/order/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("訂單不存在")
)

type OrderDAO interface {
	Create(ctx context.Context, o Order, items []OrderItem) (int64, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error)
	FindByMerchantOrderNo(ctx context.Context, merchantOrderNo string) (Order, error)
	FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error)
	ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error)
	CountByBuyerID(ctx context.Context, buyerID int64) (int64, error)
	ListBySellerID(ctx context.Context, sellerID int64, offset, limit int) ([]Order, error)
	CountBySellerID(ctx context.Context, sellerID int64) (int64, error)
	BindMerchantOrderNo(ctx context.Context, orderID int64, merchantOrderNo string) error
	UpdateToPaid(ctx context.Context, merchantOrderNo, tradeNo, payTime string) (bool, error)
	CreateReview(ctx context.Context, r Review) (int64, error)
	ListReviewsByProductID(ctx context.Context, productID int64, offset, limit int) ([]Review, error)
	CountReviewsByProductID(ctx context.Context, productID int64) (int64, error)
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (d *OrderGORMDAO) Create(ctx context.Context, o Order, items []OrderItem) (int64, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		o.Ctime, o.Utime = now, now
		if err := tx.Create(&o).Error; err != nil {
			return fmt.Errorf("創建訂單失敗: %w", err)
		}
		for i := range items {
			items[i].OrderId = o.Id
			items[i].Ctime, items[i].Utime = now, now
		}
		if err := tx.Create(&items).Error; err != nil {
			return fmt.Errorf("創建訂單項失敗: %w", err)
		}
		return nil
	})
	return o.Id, err
}

func (d *OrderGORMDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Order{}, fmt.Errorf("%w: sn=%s", ErrOrderNotFound, sn)
	}
	return o, err
}

func (d *OrderGORMDAO) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("sn = ? AND buyer_id = ?", sn, buyerID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Order{}, fmt.Errorf("%w: sn=%s", ErrOrderNotFound, sn)
	}
	return o, err
}

func (d *OrderGORMDAO) FindByMerchantOrderNo(ctx context.Context, merchantOrderNo string) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("merchant_order_no = ?", merchantOrderNo).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Order{}, fmt.Errorf("%w: merchantOrderNo=%s", ErrOrderNotFound, merchantOrderNo)
	}
	return o, err
}

func (d *OrderGORMDAO) FindItemsByOrderID(ctx context.Context, orderID int64) ([]OrderItem, error) {
	var items []OrderItem
	err := d.db.WithContext(ctx).Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (d *OrderGORMDAO) ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]Order, error) {
	var os []Order
	err := d.db.WithContext(ctx).Where("buyer_id = ?", buyerID).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&os).Error
	return os, err
}

func (d *OrderGORMDAO) CountByBuyerID(ctx context.Context, buyerID int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Order{}).Where("buyer_id = ?", buyerID).Count(&count).Error
	return count, err
}

func (d *OrderGORMDAO) ListBySellerID(ctx context.Context, sellerID int64, offset, limit int) ([]Order, error) {
	var os []Order
	err := d.db.WithContext(ctx).Where("seller_id = ?", sellerID).
		Order("ctime DESC").Offset(offset).Limit(limit).Find(&os).Error
	return os, err
}

func (d *OrderGORMDAO) CountBySellerID(ctx context.Context, sellerID int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Order{}).Where("seller_id = ?", sellerID).Count(&count).Error
	return count, err
}

func (d *OrderGORMDAO) BindMerchantOrderNo(ctx context.Context, orderID int64, merchantOrderNo string) error {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"merchant_order_no": merchantOrderNo,
			"utime":             time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id=%d", ErrOrderNotFound, orderID)
	}
	return nil
}

// UpdateToPaid 未付->已付必須是單條帶前置條件的 UPDATE,
// 兩個併發的重複通知只會有一個真正改到行。
// 返回值表示本次調用是否真的完成了狀態遷移。
func (d *OrderGORMDAO) UpdateToPaid(ctx context.Context, merchantOrderNo, tradeNo, payTime string) (bool, error) {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("merchant_order_no = ? AND state = ?", merchantOrderNo, domain.OrderStateUnpaid.ToUint8()).
		Updates(map[string]any{
			"trade_no": tradeNo,
			"pay_time": payTime,
			"state":    domain.OrderStatePaid.ToUint8(),
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 1 {
		return true, nil
	}
	// 沒改到行: 要麼訂單不存在, 要麼已付(閘道重送)
	_, err := d.FindByMerchantOrderNo(ctx, merchantOrderNo)
	if err != nil {
		return false, err
	}
	return false, nil
}

type Order struct {
	Id         int64  `gorm:"primaryKey;autoIncrement;comment:訂單自增ID"`
	SN         string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:訂單序列號"`
	BuyerId    int64  `gorm:"not null;index:idx_buyer_id;comment:買家ID"`
	SellerId   int64  `gorm:"not null;index:idx_seller_id;comment:賣家ID"`
	TotalPrice int64  `gorm:"not null;comment:商品總價;單位為分"`
	Fare       int64  `gorm:"not null;comment:運費;單位為分"`
	State      uint8  `gorm:"type:tinyint unsigned;not null;default:0;comment:訂單狀態 0=未付 1=已付"`
	PayMethod  uint8  `gorm:"type:tinyint unsigned;not null;default:0;comment:支付方式 0=刷卡 1=現金"`
	// 發起付款前落庫, 允許為NULL(尚未發起付款)
	MerchantOrderNo sql.NullString `gorm:"type:varchar(30);uniqueIndex:uniq_merchant_order_no;comment:金流對帳號"`
	TradeNo         string         `gorm:"type:varchar(255);comment:閘道交易號,付款確認後才有值"`
	PayTime         string         `gorm:"type:varchar(255);comment:付款時間,付款確認後才有值"`
	Ctime           int64
	Utime           int64
}

type OrderItem struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:訂單項自增ID"`
	OrderId   int64  `gorm:"not null;index:idx_order_id;comment:訂單自增ID"`
	ProductId int64  `gorm:"not null;comment:商品ID"`
	FormatId  int64  `gorm:"not null;comment:商品規格ID"`
	Name      string `gorm:"type:varchar(255);not null;comment:下單時的商品名稱快照"`
	Spec      string `gorm:"type:varchar(255);comment:下單時的規格名稱快照"`
	Price     int64  `gorm:"not null;comment:下單時的單價快照;單位為分"`
	Quantity  int64  `gorm:"not null;comment:購買數量"`
	Ctime     int64
	Utime     int64
}
