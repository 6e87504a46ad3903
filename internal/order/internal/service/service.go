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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecartisans/ecartisans/internal/order/internal/domain"
	"github.com/ecartisans/ecartisans/internal/order/internal/repository"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/order.mock.go -package=ordermocks -typed Service
type Service interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindOrder(ctx context.Context, orderSN string, buyerID int64) (domain.Order, error)
	FindByMerchantOrderNo(ctx context.Context, merchantOrderNo string) (domain.Order, error)
	ListBuyerOrders(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error)
	ListSellerOrders(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Order, int64, error)
	BindMerchantOrderNo(ctx context.Context, orderID int64, merchantOrderNo string) error
	// MarkPaidByMerchantOrderNo 未付 -> 已付。
	// 返回的 bool 表示本次調用是否真的完成了遷移:
	// 閘道重送同一筆通知時訂單已是已付, 返回 false 且不報錯, 由調用方決定要不要跳過後續動作。
	MarkPaidByMerchantOrderNo(ctx context.Context, merchantOrderNo, tradeNo, payTime string) (domain.Order, bool, error)
	// CreateReview 買家評價已付訂單裡的某件商品,
	// 訂單必須屬於該買家且已完成付款, 商品必須真的在訂單內
	CreateReview(ctx context.Context, review domain.Review) (int64, error)
	ListProductReviews(ctx context.Context, productID int64, offset, limit int) ([]domain.Review, int64, error)
}

var (
	ErrReviewNotAllowed = errors.New("訂單不可評價該商品")
	ErrDuplicateReview  = repository.ErrDuplicateReview
)

func NewService(repo repository.OrderRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.OrderRepository
}

func (s *service) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	return s.repo.CreateOrder(ctx, order)
}

func (s *service) FindOrder(ctx context.Context, orderSN string, buyerID int64) (domain.Order, error) {
	return s.repo.FindBySNAndBuyerID(ctx, orderSN, buyerID)
}

func (s *service) FindByMerchantOrderNo(ctx context.Context, merchantOrderNo string) (domain.Order, error) {
	return s.repo.FindByMerchantOrderNo(ctx, merchantOrderNo)
}

func (s *service) ListBuyerOrders(ctx context.Context, buyerID int64, offset, limit int) ([]domain.Order, int64, error) {
	return s.repo.ListByBuyerID(ctx, buyerID, offset, limit)
}

func (s *service) ListSellerOrders(ctx context.Context, sellerID int64, offset, limit int) ([]domain.Order, int64, error) {
	return s.repo.ListBySellerID(ctx, sellerID, offset, limit)
}

func (s *service) BindMerchantOrderNo(ctx context.Context, orderID int64, merchantOrderNo string) error {
	return s.repo.BindMerchantOrderNo(ctx, orderID, merchantOrderNo)
}

func (s *service) MarkPaidByMerchantOrderNo(ctx context.Context, merchantOrderNo, tradeNo, payTime string) (domain.Order, bool, error) {
	applied, err := s.repo.UpdateToPaid(ctx, merchantOrderNo, tradeNo, payTime)
	if err != nil {
		return domain.Order{}, false, err
	}
	order, err := s.repo.FindByMerchantOrderNo(ctx, merchantOrderNo)
	if err != nil {
		return domain.Order{}, false, err
	}
	return order, applied, nil
}

func (s *service) CreateReview(ctx context.Context, review domain.Review) (int64, error) {
	o, err := s.repo.FindBySNAndBuyerID(ctx, review.OrderSN, review.BuyerID)
	if err != nil {
		return 0, err
	}
	if o.State != domain.OrderStatePaid {
		return 0, fmt.Errorf("%w: 訂單尚未完成付款, sn=%s", ErrReviewNotAllowed, review.OrderSN)
	}
	inOrder := false
	for _, item := range o.Items {
		if item.ProductID == review.ProductID {
			inOrder = true
			break
		}
	}
	if !inOrder {
		return 0, fmt.Errorf("%w: 訂單中無此商品, productID=%d", ErrReviewNotAllowed, review.ProductID)
	}
	return s.repo.CreateReview(ctx, review)
}

func (s *service) ListProductReviews(ctx context.Context, productID int64, offset, limit int) ([]domain.Review, int64, error) {
	return s.repo.ListReviewsByProductID(ctx, productID, offset, limit)
}
