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

package repository

import (
	"context"

	"github.com/ecartisans/ecartisans/internal/order/internal/domain"
	"github.com/ecartisans/ecartisans/internal/order/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"golang.org/x/sync/errgroup"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	FindByMerchantOrderNo(ctx context.Context, merchantOrderNo string) (domain.Order, error)
	ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error)
	ListBySellerID(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Order, int64, error)
	BindMerchantOrderNo(ctx context.Context, orderID int64, merchantOrderNo string) error
	UpdateToPaid(ctx context.Context, merchantOrderNo, tradeNo, payTime string) (bool, error)
	CreateReview(ctx context.Context, review domain.Review) (int64, error)
	ListReviewsByProductID(ctx context.Context, productID int64, offset, limit int) ([]domain.Review, int64, error)
}

var ErrDuplicateReview = dao.ErrDuplicateReview

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

type orderRepository struct {
	dao dao.OrderDAO
}

func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	entity, items := r.toEntity(order)
	id, err := r.dao.Create(ctx, entity, items)
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = id
	return order, nil
}

func (r *orderRepository) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	o, err := r.dao.FindBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, err
	}
	return r.withItems(ctx, o)
}

func (r *orderRepository) FindByMerchantOrderNo(ctx context.Context, merchantOrderNo string) (domain.Order, error) {
	o, err := r.dao.FindByMerchantOrderNo(ctx, merchantOrderNo)
	if err != nil {
		return domain.Order{}, err
	}
	return r.withItems(ctx, o)
}

func (r *orderRepository) withItems(ctx context.Context, o dao.Order) (domain.Order, error) {
	items, err := r.dao.FindItemsByOrderID(ctx, o.Id)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(o, items), nil
}

func (r *orderRepository) ListByBuyerID(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []dao.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = r.dao.ListByBuyerID(ctx, buyerID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.dao.CountByBuyerID(ctx, buyerID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src, nil)
	}), total, nil
}

func (r *orderRepository) ListBySellerID(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []dao.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = r.dao.ListBySellerID(ctx, sellerID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.dao.CountBySellerID(ctx, sellerID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toDomain(src, nil)
	}), total, nil
}

func (r *orderRepository) BindMerchantOrderNo(ctx context.Context, orderID int64, merchantOrderNo string) error {
	return r.dao.BindMerchantOrderNo(ctx, orderID, merchantOrderNo)
}

func (r *orderRepository) UpdateToPaid(ctx context.Context, merchantOrderNo, tradeNo, payTime string) (bool, error) {
	return r.dao.UpdateToPaid(ctx, merchantOrderNo, tradeNo, payTime)
}

func (r *orderRepository) CreateReview(ctx context.Context, review domain.Review) (int64, error) {
	return r.dao.CreateReview(ctx, dao.Review{
		OrderSN:   review.OrderSN,
		ProductId: review.ProductID,
		BuyerId:   review.BuyerID,
		Rate:      review.Rate,
	})
}

func (r *orderRepository) ListReviewsByProductID(ctx context.Context, productID int64, offset, limit int) ([]domain.Review, int64, error) {
	var (
		eg    errgroup.Group
		rs    []dao.Review
		total int64
	)
	eg.Go(func() error {
		var err error
		rs, err = r.dao.ListReviewsByProductID(ctx, productID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.dao.CountReviewsByProductID(ctx, productID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(rs, func(idx int, src dao.Review) domain.Review {
		return domain.Review{
			ID:        src.Id,
			OrderSN:   src.OrderSN,
			ProductID: src.ProductId,
			BuyerID:   src.BuyerId,
			Rate:      src.Rate,
			Ctime:     src.Ctime,
		}
	}), total, nil
}

func (r *orderRepository) toEntity(order domain.Order) (dao.Order, []dao.OrderItem) {
	entity := dao.Order{
		Id:         order.ID,
		SN:         order.SN,
		BuyerId:    order.BuyerID,
		SellerId:   order.SellerID,
		TotalPrice: order.TotalPrice,
		Fare:       order.Fare,
		State:      order.State.ToUint8(),
		PayMethod:  uint8(order.PayMethod),
		TradeNo:    order.TradeNo,
		PayTime:    order.PayTime,
	}
	if order.MerchantOrderNo != "" {
		entity.MerchantOrderNo = sqlx.NewNullString(order.MerchantOrderNo)
	}
	items := slice.Map(order.Items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			ProductId: src.ProductID,
			FormatId:  src.FormatID,
			Name:      src.Name,
			Spec:      src.Spec,
			Price:     src.Price,
			Quantity:  src.Quantity,
		}
	})
	return entity, items
}

func (r *orderRepository) toDomain(o dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:              o.Id,
		SN:              o.SN,
		BuyerID:         o.BuyerId,
		SellerID:        o.SellerId,
		TotalPrice:      o.TotalPrice,
		Fare:            o.Fare,
		State:           domain.OrderState(o.State),
		PayMethod:       domain.PayMethod(o.PayMethod),
		MerchantOrderNo: o.MerchantOrderNo.String,
		TradeNo:         o.TradeNo,
		PayTime:         o.PayTime,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				ProductID: src.ProductId,
				FormatID:  src.FormatId,
				Name:      src.Name,
				Spec:      src.Spec,
				Price:     src.Price,
				Quantity:  src.Quantity,
			}
		}),
		Ctime: o.Ctime,
		Utime: o.Utime,
	}
}
