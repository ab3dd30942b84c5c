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

	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/progress/internal/domain"
	"github.com/ecodeclub/hireflow/internal/progress/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
)

// ErrStaleProgress 投递已经走过了这个步骤，进度没有保存的意义
var ErrStaleProgress = errors.New("答题进度已经过期")

type Service interface {
	// Save 只能保存自己投递的进行中的步骤
	Save(ctx context.Context, p domain.Progress) error
	// Get 和投递核对之后返回，投递已经越过缓存的步骤或者已经结束的话缓存会被删掉
	Get(ctx context.Context, uid, jobID int64) (domain.Progress, bool, error)
	Clear(ctx context.Context, uid, jobID int64) error
	Affordance(ctx context.Context, uid, jobID int64) (domain.Affordance, error)
}

type service struct {
	cache  cache.ProgressCache
	appSvc application.PipelineService
	logger *elog.Component
}

func NewService(c cache.ProgressCache, appSvc application.PipelineService) Service {
	return &service{
		cache:  c,
		appSvc: appSvc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("progress")),
	}
}

func (s *service) Save(ctx context.Context, p domain.Progress) error {
	step := application.Stage(p.CurrentStep)
	if !step.IsValid() || step.IsTerminal() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStep, p.CurrentStep)
	}
	app, err := s.appSvc.FindByJob(ctx, p.Uid, p.JobID)
	if err != nil {
		return err
	}
	if s.stale(app.Stage, step) {
		s.drop(ctx, p.Uid, p.JobID)
		return fmt.Errorf("%w: 投递阶段 %s, 进度步骤 %s", ErrStaleProgress, app.Stage, step)
	}
	p.Utime = time.Now().UnixMilli()
	return s.cache.Set(ctx, p)
}

func (s *service) Get(ctx context.Context, uid, jobID int64) (domain.Progress, bool, error) {
	p, err := s.cache.Get(ctx, uid, jobID)
	if errors.Is(err, cache.ErrKeyNotExist) {
		return domain.Progress{}, false, nil
	}
	if err != nil {
		return domain.Progress{}, false, err
	}
	app, err := s.appSvc.FindByJob(ctx, uid, jobID)
	switch {
	case errors.Is(err, application.ErrApplicationNotFound):
		s.drop(ctx, uid, jobID)
		return domain.Progress{}, false, nil
	case err != nil:
		return domain.Progress{}, false, err
	}
	if s.stale(app.Stage, application.Stage(p.CurrentStep)) {
		s.drop(ctx, uid, jobID)
		return domain.Progress{}, false, nil
	}
	return p, true, nil
}

func (s *service) Clear(ctx context.Context, uid, jobID int64) error {
	return s.cache.Delete(ctx, uid, jobID)
}

func (s *service) Affordance(ctx context.Context, uid, jobID int64) (domain.Affordance, error) {
	app, err := s.appSvc.FindByJob(ctx, uid, jobID)
	if errors.Is(err, application.ErrApplicationNotFound) {
		return domain.AffordanceFor(false, false), nil
	}
	if err != nil {
		return "", err
	}
	return domain.AffordanceFor(true, app.Stage.IsTerminal()), nil
}

// stale 投递的阶段才是准确的，冲突的时候以投递为准
func (s *service) stale(current, step application.Stage) bool {
	return current.IsTerminal() || current.Order() > step.Order()
}

func (s *service) drop(ctx context.Context, uid, jobID int64) {
	if err := s.cache.Delete(ctx, uid, jobID); err != nil {
		s.logger.Warn("删除过期的答题进度失败",
			elog.Int64("uid", uid),
			elog.Int64("jobId", jobID),
			elog.FieldErr(err))
	}
}
