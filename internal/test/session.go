package test

import (
	"strconv"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

// 初始化一下 session
func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

type SessionProvider struct {
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	return nil, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, _ := ctx.Get("_session")
	return val.(session.Session), nil
}

func (s *SessionProvider) Destroy(ctx *gctx.Context) error {
	return nil
}

func (s *SessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	return nil
}

func (s *SessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	return nil
}

// LoginAs 测试服务器上的所有请求都以 uid 登录，header 里面带了 uid 的以 header 为准，
// 这样同一个服务器可以同时模拟候选人和招聘方
func LoginAs(uid int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := uid
		if h := ctx.GetHeader(UidHeader); h != "" {
			if v, err := strconv.ParseInt(h, 10, 64); err == nil {
				id = v
			}
		}
		ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: id}))
	}
}

const UidHeader = "X-Test-Uid"
