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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hireflow/internal/job/internal/domain"
	"github.com/ecodeclub/hireflow/internal/job/internal/errs"
	"github.com/ecodeclub/hireflow/internal/job/internal/service"
	"github.com/ecodeclub/hireflow/internal/pkg/scoring"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc      service.Service
	statsSvc service.StatsService
}

func NewHandler(svc service.Service, statsSvc service.StatsService) *Handler {
	return &Handler{svc: svc, statsSvc: statsSvc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/job")
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/stats", ginx.BS[IDReq](h.Stats))
	g.POST("/quiz/generate", ginx.BS[GenerateQuizReq](h.GenerateQuiz))
	// 候选人答题
	g.POST("/quiz/detail", ginx.B[IDReq](h.PublicQuiz))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	job := h.toDomain(req.Job)
	job.Uid = sess.Claims().Uid
	id, err := h.svc.Save(ctx, job)
	if err != nil {
		return h.errResult(err)
	}
	if job.Weights.Sum() == 0 {
		job.Weights = domain.DefaultWeights
	}
	return ginx.Result{
		Data: SaveResp{ID: id, Warning: job.ConfigWarning()},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	job, err := h.svc.OwnedDetail(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: h.toVO(job, true),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	jobs, total, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Job]{
			List: slice.Map(jobs, func(idx int, src domain.Job) Job {
				return h.toVO(src, false)
			}),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Stats(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	stats, err := h.statsSvc.Stats(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: Stats{
			JobID:     stats.JobID,
			Applied:   stats.Applied,
			Completed: stats.Completed,
			Rejected:  stats.Rejected,
		},
	}, nil
}

func (h *Handler) GenerateQuiz(ctx *ginx.Context, req GenerateQuizReq, sess session.Session) (ginx.Result, error) {
	quiz, err := h.svc.GenerateQuiz(ctx, sess.Claims().Uid, req.ID, req.QuestionCount)
	switch {
	case err == nil:
		return ginx.Result{Data: h.quizToVO(quiz)}, nil
	case errors.Is(err, service.ErrJobNotFound), errors.Is(err, service.ErrPermissionDenied):
		return h.errResult(err)
	default:
		return ginx.Result{
			Code: errs.QuizGenerateFailed.Code,
			Msg:  errs.QuizGenerateFailed.Msg,
		}, err
	}
}

func (h *Handler) PublicQuiz(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	quiz, err := h.svc.PublicQuiz(ctx, req.ID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Data: h.quizToVO(quiz)}, nil
}

func (h *Handler) errResult(err error) (ginx.Result, error) {
	var code errs.ErrorCode
	switch {
	case errors.Is(err, scoring.ErrNegativeWeight):
		code = errs.NegativeWeight
	case errors.Is(err, service.ErrJobNotFound):
		code = errs.JobNotFound
	case errors.Is(err, service.ErrPermissionDenied):
		code = errs.PermissionDenied
	case errors.Is(err, domain.ErrQuizNotReady):
		code = errs.QuizNotReady
	default:
		return systemErrorResult, err
	}
	return ginx.Result{Code: code.Code, Msg: code.Msg}, nil
}

func (h *Handler) toDomain(job Job) domain.Job {
	return domain.Job{
		ID:           job.ID,
		Title:        job.Title,
		Description:  job.Description,
		Requirements: job.Requirements,
		Weights: scoring.Weights{
			Resume:    job.Weights.Resume,
			Quiz:      job.Weights.Quiz,
			Interview: job.Weights.Interview,
		},
	}
}

func (h *Handler) toVO(job domain.Job, withQuiz bool) Job {
	res := Job{
		ID:           job.ID,
		Title:        job.Title,
		Description:  job.Description,
		Requirements: job.Requirements,
		Weights: Weights{
			Resume:    job.Weights.Resume,
			Quiz:      job.Weights.Quiz,
			Interview: job.Weights.Interview,
		},
		Utime: job.Utime,
	}
	if withQuiz && job.Quiz.IsReady() {
		quiz := h.quizToVO(job.Quiz)
		res.Quiz = &quiz
	}
	return res
}

func (h *Handler) quizToVO(quiz domain.Quiz) Quiz {
	return Quiz{
		ID:       quiz.ID,
		Metadata: quiz.Metadata,
		Questions: slice.Map(quiz.Questions, func(idx int, src domain.Question) Question {
			return Question{
				Question:      src.Question,
				Options:       src.Options,
				CorrectAnswer: src.CorrectAnswer,
			}
		}),
	}
}
