package errs

var (
	SystemError    = ErrorCode{Code: 506001, Msg: "系統錯誤"}
	CouponNotFound = ErrorCode{Code: 506002, Msg: "優惠券不存在"}
	CouponInvalid  = ErrorCode{Code: 506003, Msg: "無效的優惠券"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
