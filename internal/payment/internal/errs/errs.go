package errs

var (
	SystemError      = ErrorCode{Code: 504001, Msg: "系統錯誤"}
	ValidationError  = ErrorCode{Code: 504002, Msg: "付款欄位缺失或非法"}
	OrderNotFound    = ErrorCode{Code: 504003, Msg: "訂單不存在"}
	UntrustedPayload = ErrorCode{Code: 504004, Msg: "金流通知無法驗證"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
