package errs

var (
	SystemError     = ErrorCode{Code: 505001, Msg: "系統錯誤"}
	CartItemInvalid = ErrorCode{Code: 505002, Msg: "商品不可加入購物車"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
