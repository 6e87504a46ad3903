package errs

var (
	SystemError      = ErrorCode{Code: 507001, Msg: "系統錯誤"}
	ActivityNotFound = ErrorCode{Code: 507002, Msg: "活動不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
