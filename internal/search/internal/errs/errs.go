package errs

var (
	SystemError = ErrorCode{Code: 508001, Msg: "系統錯誤"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
