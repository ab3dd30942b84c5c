// Copyright 2023 ecodeclub
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

package web

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	"github.com/ecodeclub/hireflow/internal/interview/internal/errs"
	"github.com/ecodeclub/hireflow/internal/interview/internal/service"
	"github.com/ecodeclub/hireflow/internal/job"
	"github.com/fasthttp/websocket"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc      service.Service
	upgrader websocket.Upgrader
	logger   *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// 跨域由 gin 的 cors 中间件控制
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: elog.DefaultLogger.With(elog.FieldComponent("interview")),
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/interview")
	g.GET("/live", h.Live)
	g.POST("/close", ginx.BS[SessionReq](h.Close))
	g.POST("/records", ginx.BS[RecordsReq](h.Records))
}

// Live 建立实时面试的 websocket 连接，每个连接对应一场新的会话
func (h *Handler) Live(ctx *gin.Context) {
	gtx := &ginx.Context{Context: ctx}
	sess, err := session.Get(gtx)
	if err != nil {
		h.logger.Error("获取 Session 失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	var req LiveReq
	if err = ctx.BindQuery(&req); err != nil {
		h.logger.Error("绑定参数失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusBadRequest)
		return
	}

	client := newWSClient(h.logger)
	interview, err := h.svc.Open(ctx.Request.Context(), sess.Claims().Uid, req.Aid, client)
	if err != nil {
		res, er := h.errResult(err)
		if er != nil {
			h.logger.Error("开始面试失败", elog.Int64("aid", req.Aid), elog.FieldErr(er))
		}
		ctx.JSON(http.StatusOK, res)
		return
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.logger.Error("升级 websocket 失败", elog.FieldErr(err))
		_ = h.svc.Close(sess.Claims().Uid, interview.ID())
		return
	}
	go client.writePump(conn, interview)
	client.readPump(conn, interview)
}

func (h *Handler) Close(ctx *ginx.Context, req SessionReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Close(sess.Claims().Uid, req.SessionID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Records(ctx *ginx.Context, req RecordsReq, sess session.Session) (ginx.Result, error) {
	records, err := h.svc.Records(ctx, sess.Claims().Uid, req.Aid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(records, func(idx int, src domain.SessionRecord) Record {
			return Record{
				SessionID: src.SessionID,
				Aid:       src.Aid,
				Outcome:   string(src.Outcome),
				Turns:     src.Turns,
				Stime:     src.Stime,
				Etime:     src.Etime,
			}
		}),
	}, nil
}

func (h *Handler) errResult(err error) (ginx.Result, error) {
	var code errs.ErrorCode
	switch {
	case errors.Is(err, application.ErrApplicationNotFound):
		code = errs.ApplicationNotFound
	case errors.Is(err, service.ErrNotInInterviewStage):
		code = errs.NotInInterviewStage
	case errors.Is(err, service.ErrSessionNotFound):
		code = errs.SessionNotFound
	case errors.Is(err, job.ErrJobNotFound):
		code = errs.JobNotFound
	default:
		return systemErrorResult, err
	}
	return ginx.Result{Code: code.Code, Msg: code.Msg}, nil
}
