// Copyright 2024 ecartisans
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package newebpay

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ecartisans/ecartisans/internal/payment/internal/domain"
)

var (
	// ErrMissingField 請求欄位缺失或非法, 在進入任何加密流程之前就會回報
	ErrMissingField = errors.New("付款請求缺少必要欄位")
	// ErrDecrypt 密文本身無法解密(非hex, 長度非法)
	ErrDecrypt = errors.New("TradeInfo 解密失敗")
	// ErrInvalidSignature TradeSha 與密文不匹配, 內容不可信
	ErrInvalidSignature = errors.New("TradeSha 驗證失敗")
	// ErrMalformedPayload 解密成功但內容不是合法的結構化資料
	ErrMalformedPayload = errors.New("解密後內容格式非法")
)

type Config struct {
	MerchantID string
	HashKey    string
	HashIV     string
	Version    string
	ReturnURL  string
	NotifyURL  string
	PayGateway string
}

// Codec 唯一知道藍新線路格式的元件: 固定欄位序列化、對稱加解密與簽章。
// 純計算, 無任何 I/O。
type Codec struct {
	cfg Config
}

func NewCodec(cfg Config) (*Codec, error) {
	if len(cfg.HashKey) != 32 {
		return nil, fmt.Errorf("HashKey 長度必須為 32 字節, 實際 %d", len(cfg.HashKey))
	}
	if len(cfg.HashIV) != aes.BlockSize {
		return nil, fmt.Errorf("HashIV 長度必須為 %d 字節, 實際 %d", aes.BlockSize, len(cfg.HashIV))
	}
	return &Codec{cfg: cfg}, nil
}

func (c *Codec) Config() Config {
	return c.cfg
}

// Encode 序列化並加密一筆交易請求, 同時產生對應的 TradeSha
func (c *Codec) Encode(req domain.PaymentRequest) (domain.EncryptedPayload, error) {
	if err := c.validate(req); err != nil {
		return domain.EncryptedPayload{}, err
	}
	ciphertext, err := c.encrypt([]byte(c.dataChain(req)))
	if err != nil {
		return domain.EncryptedPayload{}, err
	}
	tradeInfo := hex.EncodeToString(ciphertext)
	return domain.EncryptedPayload{
		TradeInfo: tradeInfo,
		TradeSha:  c.tradeSha(tradeInfo),
	}, nil
}

func (c *Codec) validate(req domain.PaymentRequest) error {
	if req.MerchantOrderNo == "" {
		return fmt.Errorf("%w: MerchantOrderNo", ErrMissingField)
	}
	if req.Amt <= 0 {
		return fmt.Errorf("%w: Amt", ErrMissingField)
	}
	if req.ItemDesc == "" {
		return fmt.Errorf("%w: ItemDesc", ErrMissingField)
	}
	if req.Email == "" {
		return fmt.Errorf("%w: Email", ErrMissingField)
	}
	if req.TimeStamp <= 0 {
		return fmt.Errorf("%w: TimeStamp", ErrMissingField)
	}
	return nil
}

// dataChain 欄位順序是與藍新的協議約定, 不可調整
func (c *Codec) dataChain(req domain.PaymentRequest) string {
	return fmt.Sprintf(
		"MerchantID=%s&TimeStamp=%d&Version=%s&RespondType=%s&MerchantOrderNo=%s&Amt=%d&NotifyURL=%s&ReturnURL=%s&ItemDesc=%s&Email=%s",
		req.MerchantID,
		req.TimeStamp,
		req.Version,
		req.RespondType,
		req.MerchantOrderNo,
		req.Amt,
		url.QueryEscape(req.NotifyURL),
		url.QueryEscape(req.ReturnURL),
		url.QueryEscape(req.ItemDesc),
		url.QueryEscape(req.Email),
	)
}

// tradeSha 簽章把密文與共享密鑰綁定, 但不傳輸密鑰本身
func (c *Codec) tradeSha(tradeInfo string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("HashKey=%s&%s&HashIV=%s", c.cfg.HashKey, tradeInfo, c.cfg.HashIV)))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// VerifyTradeSha 必須在信任任何解密欄位之前呼叫
func (c *Codec) VerifyTradeSha(tradeInfo, tradeSha string) error {
	want := c.tradeSha(tradeInfo)
	if subtle.ConstantTimeCompare([]byte(want), []byte(strings.ToUpper(tradeSha))) != 1 {
		return fmt.Errorf("%w", ErrInvalidSignature)
	}
	return nil
}

// DecodeNotify 解密閘道的異步通知並解析為交易結果。
// 閘道回傳的 JSON 前後會帶控制字元, 解析前先裁掉。
func (c *Codec) DecodeNotify(tradeInfo string) (domain.PaymentResult, error) {
	plain, err := c.decrypt(tradeInfo)
	if err != nil {
		return domain.PaymentResult{}, err
	}
	plain = trimControl(plain)
	var body notifyBody
	if err := json.Unmarshal(plain, &body); err != nil {
		return domain.PaymentResult{}, fmt.Errorf("%w: %s", ErrMalformedPayload, err.Error())
	}
	return body.toDomain(), nil
}

// DecodeRequest 是 Encode 的逆運算, 供對帳與測試還原請求欄位
func (c *Codec) DecodeRequest(tradeInfo string) (domain.PaymentRequest, error) {
	plain, err := c.decrypt(tradeInfo)
	if err != nil {
		return domain.PaymentRequest{}, err
	}
	values, err := url.ParseQuery(string(trimControl(plain)))
	if err != nil {
		return domain.PaymentRequest{}, fmt.Errorf("%w: %s", ErrMalformedPayload, err.Error())
	}
	ts, err := strconv.ParseInt(values.Get("TimeStamp"), 10, 64)
	if err != nil {
		return domain.PaymentRequest{}, fmt.Errorf("%w: TimeStamp 非法", ErrMalformedPayload)
	}
	amt, err := strconv.ParseInt(values.Get("Amt"), 10, 64)
	if err != nil {
		return domain.PaymentRequest{}, fmt.Errorf("%w: Amt 非法", ErrMalformedPayload)
	}
	return domain.PaymentRequest{
		MerchantID:      values.Get("MerchantID"),
		TimeStamp:       ts,
		Version:         values.Get("Version"),
		RespondType:     values.Get("RespondType"),
		MerchantOrderNo: values.Get("MerchantOrderNo"),
		Amt:             amt,
		NotifyURL:       values.Get("NotifyURL"),
		ReturnURL:       values.Get("ReturnURL"),
		ItemDesc:        values.Get("ItemDesc"),
		Email:           values.Get("Email"),
	}, nil
}

// EncodeNotify 以閘道的格式加密一筆交易結果, 整合測試用它模擬藍新的通知
func (c *Codec) EncodeNotify(res domain.PaymentResult) (domain.EncryptedPayload, error) {
	data, err := json.Marshal(fromDomain(res))
	if err != nil {
		return domain.EncryptedPayload{}, err
	}
	ciphertext, err := c.encrypt(data)
	if err != nil {
		return domain.EncryptedPayload{}, err
	}
	tradeInfo := hex.EncodeToString(ciphertext)
	return domain.EncryptedPayload{
		TradeInfo: tradeInfo,
		TradeSha:  c.tradeSha(tradeInfo),
	}, nil
}

// 加解密兩側都用顯式的 PKCS#7 填充,
// 不依賴先關掉自動填充再裁剪控制字元那種寫法
func (c *Codec) encrypt(plain []byte) ([]byte, error) {
	block, err := aes.NewCipher([]byte(c.cfg.HashKey))
	if err != nil {
		return nil, err
	}
	padded := pkcs7Pad(plain, aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, []byte(c.cfg.HashIV)).CryptBlocks(out, padded)
	return out, nil
}

func (c *Codec) decrypt(tradeInfo string) ([]byte, error) {
	ciphertext, err := hex.DecodeString(tradeInfo)
	if err != nil {
		return nil, fmt.Errorf("%w: 非法的hex編碼", ErrDecrypt)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: 密文長度非法 %d", ErrDecrypt, len(ciphertext))
	}
	block, err := aes.NewCipher([]byte(c.cfg.HashKey))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, []byte(c.cfg.HashIV)).CryptBlocks(out, ciphertext)
	plain, err := pkcs7Unpad(out, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedPayload, err.Error())
	}
	return plain, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("填充後長度非法")
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, errors.New("填充字節非法")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errors.New("填充字節非法")
		}
	}
	return data[:len(data)-n], nil
}

func trimControl(data []byte) []byte {
	return bytes.TrimFunc(data, func(r rune) bool { return r <= 0x20 })
}

// notifyBody 藍新通知的線路結構, 不外洩到 domain 之外
type notifyBody struct {
	Status  string       `json:"Status"`
	Message string       `json:"Message"`
	Result  notifyResult `json:"Result"`
}

type notifyResult struct {
	MerchantID      string `json:"MerchantID"`
	Amt             int64  `json:"Amt"`
	TradeNo         string `json:"TradeNo"`
	MerchantOrderNo string `json:"MerchantOrderNo"`
	PaymentType     string `json:"PaymentType"`
	PayTime         string `json:"PayTime"`
}

func (b notifyBody) toDomain() domain.PaymentResult {
	return domain.PaymentResult{
		Status:  b.Status,
		Message: b.Message,
		Result: domain.TradeResult{
			MerchantID:      b.Result.MerchantID,
			Amt:             b.Result.Amt,
			TradeNo:         b.Result.TradeNo,
			MerchantOrderNo: b.Result.MerchantOrderNo,
			PaymentType:     b.Result.PaymentType,
			PayTime:         b.Result.PayTime,
		},
	}
}

func fromDomain(res domain.PaymentResult) notifyBody {
	return notifyBody{
		Status:  res.Status,
		Message: res.Message,
		Result: notifyResult{
			MerchantID:      res.Result.MerchantID,
			Amt:             res.Result.Amt,
			TradeNo:         res.Result.TradeNo,
			MerchantOrderNo: res.Result.MerchantOrderNo,
			PaymentType:     res.Result.PaymentType,
			PayTime:         res.Result.PayTime,
		},
	}
}
