package web

import (
	"github.com/ecartisans/ecartisans/internal/search/internal/errs"
	"github.com/ecodeclub/ginx"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}
