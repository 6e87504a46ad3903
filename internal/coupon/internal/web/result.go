package web

import (
	"github.com/ecartisans/ecartisans/internal/coupon/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	couponNotFoundResult = ginx.Result{
		Code: errs.CouponNotFound.Code,
		Msg:  errs.CouponNotFound.Msg,
	}
	couponInvalidResult = ginx.Result{
		Code: errs.CouponInvalid.Code,
		Msg:  errs.CouponInvalid.Msg,
	}
)
