package web

import (
	"github.com/ecartisans/ecartisans/internal/activity/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	activityNotFoundResult = ginx.Result{
		Code: errs.ActivityNotFound.Code,
		Msg:  errs.ActivityNotFound.Msg,
	}
)
