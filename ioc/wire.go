//go:build wireinject

package ioc

import (
	"github.com/ecartisans/ecartisans/internal/activity"
	"github.com/ecartisans/ecartisans/internal/cart"
	"github.com/ecartisans/ecartisans/internal/coupon"
	"github.com/ecartisans/ecartisans/internal/order"
	"github.com/ecartisans/ecartisans/internal/payment"
	"github.com/ecartisans/ecartisans/internal/product"
	"github.com/ecartisans/ecartisans/internal/search"
	"github.com/ecartisans/ecartisans/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitES)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl", "Svc"),
		product.InitModule,
		wire.FieldsOf(new(*product.Module), "Hdl", "Svc"),
		cart.InitModule,
		wire.FieldsOf(new(*cart.Module), "Hdl", "Svc"),
		coupon.InitModule,
		wire.FieldsOf(new(*coupon.Module), "Hdl", "Svc"),
		activity.InitModule,
		wire.FieldsOf(new(*activity.Module), "Hdl"),
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Hdl", "Svc"),
		InitPaymentModule,
		wire.FieldsOf(new(*payment.Module), "Hdl"),
		search.InitModule,
		wire.FieldsOf(new(*search.Module), "Hdl"),
		initGinxServer)
	return new(App), nil
}
