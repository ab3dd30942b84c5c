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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hireflow/internal/ai"
	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/event"
	"github.com/ecodeclub/hireflow/internal/application/internal/repository"
	"github.com/ecodeclub/hireflow/internal/job"
	"github.com/ecodeclub/hireflow/internal/pkg/scoring"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrApplicationNotFound = errors.New("投递不存在")
	ErrPermissionDenied    = errors.New("没有权限操作这个投递")
	// ErrStageConflict 同一个阶段被重复提交，或者并发提交只有一个会成功
	ErrStageConflict = errors.New("投递阶段已经变化，请刷新之后重试")
	// ErrCollaborator 调用外部的 AI 服务失败，没有写入任何数据
	ErrCollaborator = errors.New("AI 服务暂时不可用")
)

// Config 流程里面的阈值
type Config struct {
	// 测验及格线，达到就进入面试
	QuizPassingScore int
	// 面试分数达到这个值状态为 qualified，否则为 under_review
	InterviewQualifyScore float64
}

func DefaultConfig() Config {
	return Config{QuizPassingScore: 70, InterviewQualifyScore: 70}
}

//go:generate mockgen -source=./pipeline.go -destination=../../mocks/pipeline.mock.go -package=appmocks PipelineService
type PipelineService interface {
	// Apply 重复投递返回已有的投递，created 为 false
	Apply(ctx context.Context, uid, jobID int64) (app domain.Application, created bool, err error)
	SubmitResume(ctx context.Context, uid, aid int64, resume string) (domain.Application, domain.Outcome, error)
	SubmitQuiz(ctx context.Context, uid, aid int64, answers []string) (domain.Application, domain.Outcome, error)
	CompleteInterview(ctx context.Context, uid, aid int64, r domain.InterviewResult) (domain.Application, error)
	// ReviewerOverride 招聘方调整状态，只能调整自己岗位下面的投递
	ReviewerOverride(ctx context.Context, reviewerUid, aid int64, status domain.Status) (domain.Application, error)
	// Detail 候选人查看自己的投递
	Detail(ctx context.Context, uid, aid int64) (domain.Application, error)
	// FindByJob 候选人在某个岗位上的投递，没有投递过返回 ErrApplicationNotFound
	FindByJob(ctx context.Context, uid, jobID int64) (domain.Application, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Application, error)
	// Ranking 招聘方查看岗位下面的候选人排名
	Ranking(ctx context.Context, reviewerUid, jobID int64, offset, limit int) ([]domain.Scored, int, error)
}

type pipelineService struct {
	repo     repository.ApplicationRepository
	jobSvc   job.Service
	matcher  ai.ResumeMatcher
	producer event.StageEventProducer
	cfg      Config
	logger   *elog.Component
}

func NewPipelineService(repo repository.ApplicationRepository,
	jobSvc job.Service,
	matcher ai.ResumeMatcher,
	producer event.StageEventProducer,
	cfg Config) PipelineService {
	return &pipelineService{
		repo:     repo,
		jobSvc:   jobSvc,
		matcher:  matcher,
		producer: producer,
		cfg:      cfg,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("application")),
	}
}

func (s *pipelineService) Apply(ctx context.Context, uid, jobID int64) (domain.Application, bool, error) {
	j, err := s.jobSvc.Detail(ctx, jobID)
	if err != nil {
		return domain.Application{}, false, err
	}
	app := domain.NewApplication(uid, jobID)
	id, err := s.repo.Create(ctx, app)
	if errors.Is(err, repository.ErrDuplicate) {
		app, err = s.repo.FindByUidAndJob(ctx, uid, jobID)
		if err != nil {
			return domain.Application{}, false, err
		}
		return app.WithLiveScore(j.Weights), false, nil
	}
	if err != nil {
		return domain.Application{}, false, err
	}
	app.ID = id
	s.publish(ctx, domain.Application{}, app)
	return app, true, nil
}

func (s *pipelineService) SubmitResume(ctx context.Context, uid, aid int64, resume string) (domain.Application, domain.Outcome, error) {
	app, err := s.owned(ctx, uid, aid)
	if err != nil {
		return domain.Application{}, domain.OutcomeUnknown, err
	}
	// 先检查一遍阶段，避免白白调用一次大模型
	if app.Stage != domain.StageResume {
		return app, domain.OutcomeUnknown, fmt.Errorf("%w, 当前阶段 %s", domain.ErrStageMismatch, app.Stage)
	}
	j, err := s.jobSvc.Detail(ctx, app.JobID)
	if err != nil {
		return app, domain.OutcomeUnknown, err
	}
	match, err := s.matcher.Match(ctx, uid, resume, j.Text())
	if err != nil {
		s.logger.Warn("简历匹配失败", elog.Int64("aid", aid), elog.FieldErr(err))
		return app, domain.OutcomeUnknown, fmt.Errorf("%w: %w", ErrCollaborator, err)
	}
	next, outcome, err := app.SubmitResume(domain.ResumeResult{
		MatchScore:           match.MatchScore,
		SkillMatchScore:      match.SkillMatchScore,
		ExperienceMatchScore: match.ExperienceMatchScore,
		MissingSkills:        match.MissingSkills,
		PassFail: domain.PassFail{
			Status:          domain.PassFailStatus(match.PassFail.Status),
			FeedbackMessage: match.PassFail.FeedbackMessage,
		},
		ResumeText: resume,
	})
	if err != nil {
		return app, domain.OutcomeUnknown, err
	}
	if err = s.transit(ctx, app, next); err != nil {
		return app, domain.OutcomeUnknown, err
	}
	return next.WithLiveScore(j.Weights), outcome, nil
}

func (s *pipelineService) SubmitQuiz(ctx context.Context, uid, aid int64, answers []string) (domain.Application, domain.Outcome, error) {
	app, err := s.owned(ctx, uid, aid)
	if err != nil {
		return domain.Application{}, domain.OutcomeUnknown, err
	}
	j, err := s.jobSvc.Detail(ctx, app.JobID)
	if err != nil {
		return app, domain.OutcomeUnknown, err
	}
	if !j.Quiz.IsReady() {
		return app, domain.OutcomeUnknown, job.ErrQuizNotReady
	}
	questions := slice.Map(j.Quiz.Questions, func(idx int, src job.Question) domain.QuizQuestion {
		return domain.QuizQuestion{
			Question:      src.Question,
			Options:       src.Options,
			CorrectAnswer: src.CorrectAnswer,
		}
	})
	result := domain.ScoreQuiz(questions, answers, time.Now().UnixMilli())
	next, outcome, err := app.SubmitQuiz(result, s.cfg.QuizPassingScore)
	if err != nil {
		return app, domain.OutcomeUnknown, err
	}
	if err = s.transit(ctx, app, next); err != nil {
		return app, domain.OutcomeUnknown, err
	}
	return next.WithLiveScore(j.Weights), outcome, nil
}

func (s *pipelineService) CompleteInterview(ctx context.Context, uid, aid int64, r domain.InterviewResult) (domain.Application, error) {
	app, err := s.owned(ctx, uid, aid)
	if err != nil {
		return domain.Application{}, err
	}
	j, err := s.jobSvc.Detail(ctx, app.JobID)
	if err != nil {
		return app, err
	}
	next, _, err := app.CompleteInterview(r, j.Weights, s.cfg.InterviewQualifyScore)
	if err != nil {
		return app, err
	}
	if err = s.transit(ctx, app, next); err != nil {
		return app, err
	}
	return next, nil
}

func (s *pipelineService) ReviewerOverride(ctx context.Context, reviewerUid, aid int64, status domain.Status) (domain.Application, error) {
	app, err := s.find(ctx, aid)
	if err != nil {
		return domain.Application{}, err
	}
	j, err := s.jobSvc.OwnedDetail(ctx, reviewerUid, app.JobID)
	if err != nil {
		if errors.Is(err, job.ErrPermissionDenied) {
			return domain.Application{}, fmt.Errorf("%w, reviewer %d, aid %d", ErrPermissionDenied, reviewerUid, aid)
		}
		return domain.Application{}, err
	}
	next, err := app.Override(status)
	if err != nil {
		return app, err
	}
	err = s.repo.UpdateStatus(ctx, aid, status)
	if errors.Is(err, repository.ErrStageConflict) {
		return app, domain.ErrOverrideNotAllowed
	}
	if err != nil {
		return app, err
	}
	s.publish(ctx, app, next)
	return next.WithLiveScore(j.Weights), nil
}

func (s *pipelineService) Detail(ctx context.Context, uid, aid int64) (domain.Application, error) {
	app, err := s.owned(ctx, uid, aid)
	if err != nil {
		return domain.Application{}, err
	}
	return s.withLiveScore(ctx, app)
}

func (s *pipelineService) FindByJob(ctx context.Context, uid, jobID int64) (domain.Application, error) {
	app, err := s.repo.FindByUidAndJob(ctx, uid, jobID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Application{}, fmt.Errorf("%w, uid %d, job %d", ErrApplicationNotFound, uid, jobID)
	}
	if err != nil {
		return domain.Application{}, err
	}
	return s.withLiveScore(ctx, app)
}

func (s *pipelineService) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Application, error) {
	apps, err := s.repo.FindByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	weights := make(map[int64]scoring.Weights, len(apps))
	for i, app := range apps {
		w, ok := weights[app.JobID]
		if !ok {
			j, err := s.jobSvc.Detail(ctx, app.JobID)
			if err != nil {
				return nil, err
			}
			w = j.Weights
			weights[app.JobID] = w
		}
		apps[i] = app.WithLiveScore(w)
	}
	return apps, nil
}

func (s *pipelineService) Ranking(ctx context.Context, reviewerUid, jobID int64, offset, limit int) ([]domain.Scored, int, error) {
	var (
		eg   errgroup.Group
		j    job.Job
		apps []domain.Application
	)
	eg.Go(func() error {
		var err error
		j, err = s.jobSvc.OwnedDetail(ctx, reviewerUid, jobID)
		return err
	})
	eg.Go(func() error {
		var err error
		apps, err = s.repo.FindByJob(ctx, jobID)
		return err
	})
	if err := eg.Wait(); err != nil {
		if errors.Is(err, job.ErrPermissionDenied) {
			return nil, 0, fmt.Errorf("%w, reviewer %d, job %d", ErrPermissionDenied, reviewerUid, jobID)
		}
		return nil, 0, err
	}
	ranked := domain.Rank(apps, j.Weights)
	total := len(ranked)
	offset = max(offset, 0)
	if limit <= 0 || offset >= total {
		return []domain.Scored{}, total, nil
	}
	end := min(offset+limit, total)
	return ranked[offset:end], total, nil
}

// withLiveScore 候选人看到的分数和招聘方排名里面的分数必须一致
func (s *pipelineService) withLiveScore(ctx context.Context, app domain.Application) (domain.Application, error) {
	j, err := s.jobSvc.Detail(ctx, app.JobID)
	if err != nil {
		return domain.Application{}, err
	}
	return app.WithLiveScore(j.Weights), nil
}

func (s *pipelineService) find(ctx context.Context, aid int64) (domain.Application, error) {
	app, err := s.repo.FindByID(ctx, aid)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Application{}, fmt.Errorf("%w, aid %d", ErrApplicationNotFound, aid)
	}
	return app, err
}

// owned 候选人只能操作自己的投递
func (s *pipelineService) owned(ctx context.Context, uid, aid int64) (domain.Application, error) {
	app, err := s.find(ctx, aid)
	if err != nil {
		return domain.Application{}, err
	}
	if app.Uid != uid {
		return domain.Application{}, fmt.Errorf("%w, uid %d, aid %d", ErrPermissionDenied, uid, aid)
	}
	return app, nil
}

func (s *pipelineService) transit(ctx context.Context, from, to domain.Application) error {
	err := s.repo.Transit(ctx, to, from.Stage)
	if errors.Is(err, repository.ErrStageConflict) {
		return fmt.Errorf("%w, aid %d", ErrStageConflict, from.ID)
	}
	if err != nil {
		return err
	}
	s.publish(ctx, from, to)
	return nil
}

// publish 发送失败只记录日志，投递本身已经写入成功
func (s *pipelineService) publish(ctx context.Context, from, to domain.Application) {
	if from.Stage == to.Stage && from.Status == to.Status {
		return
	}
	evt := event.ApplicationStageEvent{
		Aid:        to.ID,
		Uid:        to.Uid,
		JobId:      to.JobID,
		FromStage:  from.Stage.String(),
		ToStage:    to.Stage.String(),
		FromStatus: from.Status.String(),
		ToStatus:   to.Status.String(),
		Utime:      time.Now().UnixMilli(),
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送投递阶段事件失败",
			elog.Int64("aid", to.ID),
			elog.String("toStage", evt.ToStage),
			elog.FieldErr(err))
	}
}
