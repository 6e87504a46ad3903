package web

import (
	"github.com/ecartisans/ecartisans/internal/order/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	reviewNotAllowedResult = ginx.Result{
		Code: errs.ReviewNotAllowed.Code,
		Msg:  errs.ReviewNotAllowed.Msg,
	}
	duplicateReviewResult = ginx.Result{
		Code: errs.DuplicateReview.Code,
		Msg:  errs.DuplicateReview.Msg,
	}
	invalidOrderParamResult = ginx.Result{
		Code: errs.InvalidOrderParam.Code,
		Msg:  errs.InvalidOrderParam.Msg,
	}
)
