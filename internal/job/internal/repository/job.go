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
	"github.com/ecodeclub/hireflow/internal/job/internal/domain"
	"github.com/ecodeclub/hireflow/internal/job/internal/repository/cache"
	"github.com/ecodeclub/hireflow/internal/job/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./job.go -destination=../../mocks/job_repo.mock.go -package=jobmocks JobRepository
type JobRepository interface {
	Save(ctx context.Context, job domain.Job) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Job, error)
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Job, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	UpdateQuiz(ctx context.Context, id, uid int64, quiz domain.Quiz) error
}

type CachedJobRepository struct {
	dao    dao.JobDAO
	cache  cache.JobCache
	logger *elog.Component
}

func NewCachedJobRepository(d dao.JobDAO, c cache.JobCache) JobRepository {
	return &CachedJobRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedJobRepository) Save(ctx context.Context, job domain.Job) (int64, error) {
	id, err := repo.dao.Save(ctx, repo.toEntity(job))
	if err != nil {
		return 0, err
	}
	repo.invalidate(ctx, id)
	return id, nil
}

func (repo *CachedJobRepository) FindByID(ctx context.Context, id int64) (domain.Job, error) {
	job, err := repo.cache.Get(ctx, id)
	if err == nil {
		return job, nil
	}
	entity, err := repo.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	job = repo.toDomain(entity)
	if err1 := repo.cache.Set(ctx, job); err1 != nil {
		repo.logger.Error("缓存岗位失败", elog.Int64("id", id), elog.FieldErr(err1))
	}
	return job, nil
}

func (repo *CachedJobRepository) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Job, error) {
	jobs, err := repo.dao.FindByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedJobRepository) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return repo.dao.CountByUid(ctx, uid)
}

func (repo *CachedJobRepository) UpdateQuiz(ctx context.Context, id, uid int64, quiz domain.Quiz) error {
	err := repo.dao.UpdateQuiz(ctx, id, uid, repo.quizToEntity(quiz))
	if err != nil {
		return err
	}
	repo.invalidate(ctx, id)
	return nil
}

func (repo *CachedJobRepository) invalidate(ctx context.Context, id int64) {
	if err := repo.cache.Delete(ctx, id); err != nil {
		repo.logger.Error("删除岗位缓存失败", elog.Int64("id", id), elog.FieldErr(err))
	}
}

func (repo *CachedJobRepository) toEntity(job domain.Job) dao.Job {
	return dao.Job{
		Id:              job.ID,
		Uid:             job.Uid,
		Title:           job.Title,
		Description:     job.Description,
		Requirements:    job.Requirements,
		ResumeWeight:    job.Weights.Resume,
		QuizWeight:      job.Weights.Quiz,
		InterviewWeight: job.Weights.Interview,
		Quiz: sqlx.JsonColumn[dao.Quiz]{
			Val:   repo.quizToEntity(job.Quiz),
			Valid: job.Quiz.IsReady(),
		},
	}
}

func (repo *CachedJobRepository) quizToEntity(q domain.Quiz) dao.Quiz {
	return dao.Quiz{
		ID:       q.ID,
		Metadata: q.Metadata,
		Questions: slice.Map(q.Questions, func(idx int, src domain.Question) dao.Question {
			return dao.Question{
				Question:      src.Question,
				Options:       src.Options,
				CorrectAnswer: src.CorrectAnswer,
			}
		}),
	}
}

func (repo *CachedJobRepository) toDomain(job dao.Job) domain.Job {
	res := domain.Job{
		ID:           job.Id,
		Uid:          job.Uid,
		Title:        job.Title,
		Description:  job.Description,
		Requirements: job.Requirements,
		Ctime:        job.Ctime,
		Utime:        job.Utime,
	}
	res.Weights.Resume = job.ResumeWeight
	res.Weights.Quiz = job.QuizWeight
	res.Weights.Interview = job.InterviewWeight
	if job.Quiz.Valid {
		res.Quiz = domain.Quiz{
			ID:       job.Quiz.Val.ID,
			Metadata: job.Quiz.Val.Metadata,
			Questions: slice.Map(job.Quiz.Val.Questions, func(idx int, src dao.Question) domain.Question {
				return domain.Question{
					Question:      src.Question,
					Options:       src.Options,
					CorrectAnswer: src.CorrectAnswer,
				}
			}),
		}
	}
	return res
}
