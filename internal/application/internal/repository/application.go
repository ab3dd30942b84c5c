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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/repository/dao"
)

var (
	ErrDuplicate      = dao.ErrDuplicate
	ErrStageConflict  = dao.ErrStageConflict
	ErrRecordNotFound = dao.ErrRecordNotFound
)

//go:generate mockgen -source=./application.go -destination=../../mocks/application_repo.mock.go -package=appmocks ApplicationRepository
type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Application, error)
	FindByUidAndJob(ctx context.Context, uid, jobID int64) (domain.Application, error)
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Application, error)
	FindByJob(ctx context.Context, jobID int64) ([]domain.Application, error)
	// Transit 把阶段结果和阶段流转一次性写进去，from 是流转之前的阶段
	Transit(ctx context.Context, app domain.Application, from domain.Stage) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{dao: d}
}

func (repo *applicationRepository) Create(ctx context.Context, app domain.Application) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(app))
}

func (repo *applicationRepository) FindByID(ctx context.Context, id int64) (domain.Application, error) {
	app, err := repo.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	return repo.toDomain(app), nil
}

func (repo *applicationRepository) FindByUidAndJob(ctx context.Context, uid, jobID int64) (domain.Application, error) {
	app, err := repo.dao.FindByUidAndJob(ctx, uid, jobID)
	if err != nil {
		return domain.Application{}, err
	}
	return repo.toDomain(app), nil
}

func (repo *applicationRepository) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Application, error) {
	apps, err := repo.dao.FindByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return repo.toDomains(apps), nil
}

func (repo *applicationRepository) FindByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	apps, err := repo.dao.FindByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return repo.toDomains(apps), nil
}

func (repo *applicationRepository) Transit(ctx context.Context, app domain.Application, from domain.Stage) error {
	return repo.dao.UpdateStage(ctx, repo.toEntity(app), from.String())
}

func (repo *applicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return repo.dao.UpdateStatus(ctx, id, status.String())
}

func (repo *applicationRepository) toDomains(apps []dao.Application) []domain.Application {
	return slice.Map(apps, func(idx int, src dao.Application) domain.Application {
		return repo.toDomain(src)
	})
}

func (repo *applicationRepository) toEntity(app domain.Application) dao.Application {
	res := dao.Application{
		Id:            app.ID,
		Uid:           app.Uid,
		JobId:         app.JobID,
		Status:        app.Status.String(),
		Stage:         app.Stage.String(),
		WeightedScore: app.WeightedScore,
		CompletedAt:   app.CompletedAt,
		Ctime:         app.Ctime,
		Utime:         app.Utime,
	}
	if r := app.Resume; r != nil {
		res.ResumeScreening = sqlx.JsonColumn[dao.ResumeScreening]{
			Valid: true,
			Val: dao.ResumeScreening{
				MatchScore:           r.MatchScore,
				SkillMatchScore:      r.SkillMatchScore,
				ExperienceMatchScore: r.ExperienceMatchScore,
				MissingSkills:        r.MissingSkills,
				PassFail: dao.PassFail{
					Status:          string(r.PassFail.Status),
					FeedbackMessage: r.PassFail.FeedbackMessage,
				},
				Score:      r.LegacyScore,
				ResumeText: r.ResumeText,
			},
		}
	}
	if q := app.Quiz; q != nil {
		res.QuizResults = sqlx.JsonColumn[dao.QuizResults]{
			Valid: true,
			Val: dao.QuizResults{
				Score:          q.Score,
				TotalQuestions: q.TotalQuestions,
				Answers: slice.Map(q.Answers, func(idx int, src domain.QuizAnswer) dao.QuizAnswer {
					return dao.QuizAnswer{
						Question: src.Question,
						Answer:   src.Answer,
						Correct:  src.Correct,
					}
				}),
				CompletedAt: q.CompletedAt,
			},
		}
	}
	if i := app.Interview; i != nil {
		res.InterviewResults = sqlx.JsonColumn[dao.InterviewResults]{
			Valid: true,
			Val: dao.InterviewResults{
				SessionID: i.SessionID,
				Transcript: slice.Map(i.Transcript, func(idx int, src domain.Turn) dao.Turn {
					return dao.Turn{
						Speaker:   string(src.Speaker),
						Text:      src.Text,
						Timestamp: src.Timestamp,
					}
				}),
				Evaluation: dao.Evaluation{
					OverallScore:         i.Evaluation.OverallScore,
					Strengths:            i.Evaluation.Strengths,
					Weaknesses:           i.Evaluation.Weaknesses,
					HiringRecommendation: i.Evaluation.HiringRecommendation,
				},
				CompletedAt: i.CompletedAt,
			},
		}
	}
	return res
}

func (repo *applicationRepository) toDomain(app dao.Application) domain.Application {
	res := domain.Application{
		ID:            app.Id,
		Uid:           app.Uid,
		JobID:         app.JobId,
		Status:        domain.Status(app.Status),
		Stage:         domain.Stage(app.Stage),
		WeightedScore: app.WeightedScore,
		CompletedAt:   app.CompletedAt,
		Ctime:         app.Ctime,
		Utime:         app.Utime,
	}
	if app.ResumeScreening.Valid {
		r := app.ResumeScreening.Val
		res.Resume = &domain.ResumeResult{
			MatchScore:           r.MatchScore,
			SkillMatchScore:      r.SkillMatchScore,
			ExperienceMatchScore: r.ExperienceMatchScore,
			MissingSkills:        r.MissingSkills,
			PassFail: domain.PassFail{
				Status:          domain.PassFailStatus(r.PassFail.Status),
				FeedbackMessage: r.PassFail.FeedbackMessage,
			},
			LegacyScore: r.Score,
			ResumeText:  r.ResumeText,
		}
	}
	if app.QuizResults.Valid {
		q := app.QuizResults.Val
		res.Quiz = &domain.QuizResult{
			Score:          q.Score,
			TotalQuestions: q.TotalQuestions,
			Answers: slice.Map(q.Answers, func(idx int, src dao.QuizAnswer) domain.QuizAnswer {
				return domain.QuizAnswer{
					Question: src.Question,
					Answer:   src.Answer,
					Correct:  src.Correct,
				}
			}),
			CompletedAt: q.CompletedAt,
		}
	}
	if app.InterviewResults.Valid {
		i := app.InterviewResults.Val
		res.Interview = &domain.InterviewResult{
			SessionID: i.SessionID,
			Transcript: slice.Map(i.Transcript, func(idx int, src dao.Turn) domain.Turn {
				return domain.Turn{
					Speaker:   domain.Speaker(src.Speaker),
					Text:      src.Text,
					Timestamp: src.Timestamp,
				}
			}),
			Evaluation: domain.Evaluation{
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
