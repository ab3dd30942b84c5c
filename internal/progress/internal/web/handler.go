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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/progress/internal/domain"
	"github.com/ecodeclub/hireflow/internal/progress/internal/errs"
	"github.com/ecodeclub/hireflow/internal/progress/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/progress")
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/detail", ginx.BS[JobReq](h.Detail))
	g.POST("/clear", ginx.BS[JobReq](h.Clear))
	g.POST("/affordance", ginx.BS[JobReq](h.Affordance))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	p := req.Progress
	err := h.svc.Save(ctx, domain.Progress{
		Uid:         sess.Claims().Uid,
		JobID:       p.JobID,
		CurrentStep: p.CurrentStep,
		Answers:     p.Answers,
		TimeLeft:    p.TimeLeft,
		Completed:   p.Completed,
		SessionID:   p.SessionID,
	})
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req JobReq, sess session.Session) (ginx.Result, error) {
	p, found, err := h.svc.Get(ctx, sess.Claims().Uid, req.JobID)
	if err != nil {
		return systemErrorResult, err
	}
	if !found {
		return ginx.Result{Data: DetailResp{}}, nil
	}
	return ginx.Result{Data: DetailResp{
		Found: true,
		Progress: Progress{
			JobID:       p.JobID,
			CurrentStep: p.CurrentStep,
			Answers:     p.Answers,
			TimeLeft:    p.TimeLeft,
			Completed:   p.Completed,
			SessionID:   p.SessionID,
			Utime:       p.Utime,
		},
	}}, nil
}

func (h *Handler) Clear(ctx *ginx.Context, req JobReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Clear(ctx, sess.Claims().Uid, req.JobID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Affordance(ctx *ginx.Context, req JobReq, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.Affordance(ctx, sess.Claims().Uid, req.JobID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: AffordanceResp{Affordance: a.String()}}, nil
}

func (h *Handler) errResult(err error) (ginx.Result, error) {
	var code errs.ErrorCode
	switch {
	case errors.Is(err, domain.ErrInvalidStep):
		code = errs.InvalidStep
	case errors.Is(err, application.ErrApplicationNotFound):
		code = errs.ApplicationNotFound
	case errors.Is(err, service.ErrStaleProgress):
		code = errs.StaleProgress
	default:
		return systemErrorResult, err
	}
	return ginx.Result{Code: code.Code, Msg: code.Msg}, nil
}
