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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hireflow/internal/ai"
	"github.com/ecodeclub/hireflow/internal/job/internal/domain"
	"github.com/ecodeclub/hireflow/internal/job/internal/repository"
	"github.com/ecodeclub/hireflow/internal/job/internal/repository/dao"
	"github.com/ecodeclub/hireflow/internal/pkg/scoring"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrJobNotFound      = errors.New("岗位不存在")
	ErrPermissionDenied = errors.New("只能操作自己发布的岗位")
)

//go:generate mockgen -source=./job.go -destination=../../mocks/job.mock.go -package=jobmocks Service
type Service interface {
	// Save 负数权重直接拒绝，权重之和不为 100 的依旧保存，调用者通过 Job.ConfigWarning 提醒发布者
	Save(ctx context.Context, job domain.Job) (int64, error)
	// Detail 完整的岗位信息，包含测验的正确答案，只给内部模块使用
	Detail(ctx context.Context, id int64) (domain.Job, error)
	// OwnedDetail 发布者查看自己的岗位
	OwnedDetail(ctx context.Context, uid, id int64) (domain.Job, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Job, int64, error)
	GenerateQuiz(ctx context.Context, uid, id int64, questionCount int) (domain.Quiz, error)
	// PublicQuiz 候选人看到的测验，没有正确答案
	PublicQuiz(ctx context.Context, id int64) (domain.Quiz, error)
}

type service struct {
	repo      repository.JobRepository
	generator ai.QuizGenerator
	logger    *elog.Component
}

func NewService(repo repository.JobRepository, generator ai.QuizGenerator) Service {
	return &service{
		repo:      repo,
		generator: generator,
		logger:    elog.DefaultLogger.With(elog.FieldComponent("job")),
	}
}

func (s *service) Save(ctx context.Context, job domain.Job) (int64, error) {
	if job.Weights.Sum() == 0 {
		job.Weights = domain.DefaultWeights
	}
	err := job.Weights.Validate()
	switch {
	case errors.Is(err, scoring.ErrNegativeWeight):
		return 0, err
	case errors.Is(err, scoring.ErrWeightsNotHundred):
		s.logger.Warn("岗位权重配置不合理", elog.Int64("uid", job.Uid),
			elog.Int64("id", job.ID), elog.FieldErr(err))
	}
	id, err := s.repo.Save(ctx, job)
	if dao.IsNotFound(err) {
		return 0, fmt.Errorf("%w, id %d", ErrPermissionDenied, job.ID)
	}
	return id, err
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if dao.IsNotFound(err) {
		return domain.Job{}, fmt.Errorf("%w, id %d", ErrJobNotFound, id)
	}
	return job, err
}

func (s *service) OwnedDetail(ctx context.Context, uid, id int64) (domain.Job, error) {
	job, err := s.Detail(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	if job.Uid != uid {
		return domain.Job{}, fmt.Errorf("%w, uid %d, id %d", ErrPermissionDenied, uid, id)
	}
	return job, nil
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Job, int64, error) {
	var (
		eg    errgroup.Group
		jobs  []domain.Job
		total int64
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.FindByUid(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUid(ctx, uid)
		return err
	})
	return jobs, total, eg.Wait()
}

func (s *service) GenerateQuiz(ctx context.Context, uid, id int64, questionCount int) (domain.Quiz, error) {
	job, err := s.OwnedDetail(ctx, uid, id)
	if err != nil {
		return domain.Quiz{}, err
	}
	q, err := s.generator.Generate(ctx, uid, job.Text(), questionCount)
	if err != nil {
		return domain.Quiz{}, err
	}
	quiz := domain.Quiz{
		ID:       q.ID,
		Metadata: q.Metadata,
		Questions: slice.Map(q.Questions, func(idx int, src ai.QuizQuestion) domain.Question {
			return domain.Question{
				Question:      src.Question,
				Options:       src.Options,
				CorrectAnswer: src.CorrectAnswer,
			}
		}),
	}
	return quiz, s.repo.UpdateQuiz(ctx, id, uid, quiz)
}

func (s *service) PublicQuiz(ctx context.Context, id int64) (domain.Quiz, error) {
	job, err := s.Detail(ctx, id)
	if err != nil {
		return domain.Quiz{}, err
	}
	if !job.Quiz.IsReady() {
		return domain.Quiz{}, domain.ErrQuizNotReady
	}
	return job.Quiz.Public(), nil
}
