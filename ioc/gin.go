package ioc

import (
	"net/http"
	"strings"

	"github.com/ecartisans/ecartisans/internal/activity"
	"github.com/ecartisans/ecartisans/internal/cart"
	"github.com/ecartisans/ecartisans/internal/coupon"
	"github.com/ecartisans/ecartisans/internal/order"
	"github.com/ecartisans/ecartisans/internal/payment"
	"github.com/ecartisans/ecartisans/internal/product"
	"github.com/ecartisans/ecartisans/internal/search"
	"github.com/ecartisans/ecartisans/internal/user"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	productHdl *product.Handler,
	cartHdl *cart.Handler,
	couponHdl *coupon.Handler,
	activityHdl *activity.Handler,
	orderHdl *order.Handler,
	paymentHdl *payment.Handler,
	searchHdl *search.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允許自家域名
			return strings.Contains(origin, "ecartisans.tw")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	productHdl.PublicRoutes(res.Engine)
	activityHdl.PublicRoutes(res.Engine)
	couponHdl.PublicRoutes(res.Engine)
	searchHdl.PublicRoutes(res.Engine)
	orderHdl.PublicRoutes(res.Engine)
	// 藍新的 Notify/Return 回調不會帶登入態
	paymentHdl.PublicRoutes(res.Engine)
	// 登入校驗
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	productHdl.PrivateRoutes(res.Engine)
	cartHdl.PrivateRoutes(res.Engine)
	couponHdl.PrivateRoutes(res.Engine)
	activityHdl.PrivateRoutes(res.Engine)
	orderHdl.PrivateRoutes(res.Engine)
	paymentHdl.PrivateRoutes(res.Engine)
	return res
}
