package errs

var (
	SystemError     = ErrorCode{Code: 502001, Msg: "系統錯誤"}
	ProductNotFound = ErrorCode{Code: 502002, Msg: "商品不存在"}
	NotProductOwner = ErrorCode{Code: 502003, Msg: "只能操作自己的商品"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
