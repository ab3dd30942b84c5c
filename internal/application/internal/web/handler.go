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
	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/errs"
	"github.com/ecodeclub/hireflow/internal/application/internal/service"
	"github.com/ecodeclub/hireflow/internal/job"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.PipelineService
}

func NewHandler(svc service.PipelineService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/application")
	g.POST("/apply", ginx.BS[ApplyReq](h.Apply))
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/resume/submit", ginx.BS[SubmitResumeReq](h.SubmitResume))
	g.POST("/quiz/submit", ginx.BS[SubmitQuizReq](h.SubmitQuiz))

	// 招聘方
	review := g.Group("/review")
	review.POST("/override", ginx.BS[OverrideReq](h.Override))
	review.POST("/ranking", ginx.BS[RankingReq](h.Ranking))
}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq, sess session.Session) (ginx.Result, error) {
	app, created, err := h.svc.Apply(ctx, sess.Claims().Uid, req.JobID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: ApplyResp{
			Application: h.toVO(app),
			Existed:     !created,
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Detail(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Data: h.toVO(app)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	apps, err := h.svc.List(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[Application]{
			List: slice.Map(apps, func(idx int, src domain.Application) Application {
				return h.toVO(src)
			}),
			Total: len(apps),
		},
	}, nil
}

func (h *Handler) SubmitResume(ctx *ginx.Context, req SubmitResumeReq, sess session.Session) (ginx.Result, error) {
	app, outcome, err := h.svc.SubmitResume(ctx, sess.Claims().Uid, req.ID, req.Resume)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: SubmitResp{Application: h.toVO(app), Outcome: outcome.String()},
	}, nil
}

func (h *Handler) SubmitQuiz(ctx *ginx.Context, req SubmitQuizReq, sess session.Session) (ginx.Result, error) {
	app, outcome, err := h.svc.SubmitQuiz(ctx, sess.Claims().Uid, req.ID, req.Answers)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: SubmitResp{Application: h.toVO(app), Outcome: outcome.String()},
	}, nil
}

func (h *Handler) Override(ctx *ginx.Context, req OverrideReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.ReviewerOverride(ctx, sess.Claims().Uid, req.ID, domain.Status(req.Status))
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{Data: h.toVO(app)}, nil
}

func (h *Handler) Ranking(ctx *ginx.Context, req RankingReq, sess session.Session) (ginx.Result, error) {
	ranked, total, err := h.svc.Ranking(ctx, sess.Claims().Uid, req.JobID, req.Offset, req.Limit)
	if err != nil {
		return h.errResult(err)
	}
	return ginx.Result{
		Data: ginx.DataList[RankedApplication]{
			List: slice.Map(ranked, func(idx int, src domain.Scored) RankedApplication {
				vo := h.toVO(src.Application)
				vo.WeightedScore = src.Score
				return RankedApplication{
					Application: vo,
					Uid:         src.Uid,
					Score:       src.Score,
				}
			}),
			Total: total,
		},
	}, nil
}

func (h *Handler) errResult(err error) (ginx.Result, error) {
	var code errs.ErrorCode
	switch {
	case errors.Is(err, service.ErrApplicationNotFound):
		code = errs.ApplicationNotFound
	case errors.Is(err, service.ErrPermissionDenied):
		code = errs.PermissionDenied
	case errors.Is(err, domain.ErrStageMismatch):
		code = errs.StageMismatch
	case errors.Is(err, service.ErrStageConflict):
		code = errs.StageConflict
	case errors.Is(err, domain.ErrOverrideNotAllowed):
		code = errs.OverrideNotAllowed
	case errors.Is(err, domain.ErrInvalidOverrideState):
		code = errs.InvalidStatus
	case errors.Is(err, job.ErrJobNotFound):
		code = errs.JobNotFound
	case errors.Is(err, job.ErrQuizNotReady):
		code = errs.QuizNotReady
	case errors.Is(err, service.ErrCollaborator):
		// 需要记录原始错误
		return ginx.Result{Code: errs.AIUnavailable.Code, Msg: errs.AIUnavailable.Msg}, err
	default:
		return systemErrorResult, err
	}
	return ginx.Result{Code: code.Code, Msg: code.Msg}, nil
}

func (h *Handler) toVO(app domain.Application) Application {
	res := Application{
		ID:            app.ID,
		JobID:         app.JobID,
		Status:        app.Status.String(),
		Stage:         app.Stage.String(),
		WeightedScore: app.WeightedScore,
		Authoritative: app.IsComplete(),
		CompletedAt:   app.CompletedAt,
		Utime:         app.Utime,
	}
	if r := app.Resume; r != nil {
		res.ResumeScreening = &ResumeScreening{
			MatchScore:           r.MatchScore,
			SkillMatchScore:      r.SkillMatchScore,
			ExperienceMatchScore: r.ExperienceMatchScore,
			MissingSkills:        r.MissingSkills,
			PassFail: PassFail{
				Status:          string(r.PassFail.Status),
				FeedbackMessage: r.PassFail.FeedbackMessage,
			},
		}
	}
	if q := app.Quiz; q != nil {
		res.QuizResults = &QuizResults{
			Score:          q.Score,
			TotalQuestions: q.TotalQuestions,
			Answers: slice.Map(q.Answers, func(idx int, src domain.QuizAnswer) QuizAnswer {
				return QuizAnswer{Question: src.Question, Answer: src.Answer, Correct: src.Correct}
			}),
			CompletedAt: q.CompletedAt,
		}
	}
	if i := app.Interview; i != nil {
		res.InterviewResults = &InterviewResults{
			SessionID: i.SessionID,
			Transcript: slice.Map(i.Transcript, func(idx int, src domain.Turn) Turn {
				return Turn{Speaker: string(src.Speaker), Text: src.Text, Timestamp: src.Timestamp}
			}),
			Evaluation: Evaluation{
				OverallScore:         i.Evaluation.OverallScore,
				Strengths:            i.Evaluation.Strengths,
				Weaknesses:           i.Evaluation.Weaknesses,
				HiringRecommendation: i.Evaluation.HiringRecommendation,
			},
			CompletedAt: i.CompletedAt,
		}
	}
	return res
}
