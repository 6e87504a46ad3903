package web

import (
	"github.com/ecartisans/ecartisans/internal/user/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicateEmailResult = ginx.Result{
		Code: errs.DuplicateEmail.Code,
		Msg:  errs.DuplicateEmail.Msg,
	}
	invalidCredentialResult = ginx.Result{
		Code: errs.InvalidCredential.Code,
		Msg:  errs.InvalidCredential.Msg,
	}
)
