package event

const topicPaymentEvents = "payment_events"

// PaymentEvent 首次確認付款成功才會發佈, 重複通知不會重發。
// Items 冗餘在事件裡, 讓下游(商品銷量/庫存)不用再回查訂單。
type PaymentEvent struct {
	OrderSN         string             `json:"orderSN"`
	MerchantOrderNo string             `json:"merchantOrderNo"`
	TradeNo         string             `json:"tradeNo"`
	PayTime         string             `json:"payTime"`
	Amt             int64              `json:"amt"`
	Items           []PaymentEventItem `json:"items"`
}

type PaymentEventItem struct {
	ProductID int64 `json:"productID"`
	FormatID  int64 `json:"formatID"`
	Quantity  int64 `json:"quantity"`
}
