package test

import (
	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
)

// 測試不走 redis session: 測試中間件把 session 預先塞在
// gin context 的 _session 鍵下, 這個 provider 只負責取出來
func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

type SessionProvider struct{}

// NewSession 登入註冊路徑會調到, 測試不依賴它的返回值
func (s *SessionProvider) NewSession(ctx *gctx.Context,
	uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	return nil, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, _ := ctx.Get("_session")
	return val.(session.Session), nil
}
