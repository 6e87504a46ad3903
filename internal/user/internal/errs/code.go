package errs

var (
	SystemError       = ErrorCode{Code: 501001, Msg: "系統錯誤"}
	DuplicateEmail    = ErrorCode{Code: 501002, Msg: "Email已被註冊"}
	InvalidCredential = ErrorCode{Code: 501003, Msg: "帳號或密碼錯誤"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
