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

	"github.com/ecodeclub/hireflow/internal/job/internal/domain"
	"github.com/ecodeclub/hireflow/internal/job/internal/repository"
)

// 和投递模块约定的阶段和状态
const (
	StageCompleted = "completed"
	StageRejected  = "rejected"
	StatusRejected = "rejected"
)

// StageChange 投递发生的一次变化
type StageChange struct {
	JobID int64
	// 新建投递的时候为空
	FromStage  string
	ToStage    string
	FromStatus string
	ToStatus   string
}

type StatsService interface {
	Stats(ctx context.Context, uid, jobID int64) (domain.JobStats, error)
	OnStageChanged(ctx context.Context, change StageChange) error
}

type statsService struct {
	repo   repository.JobStatsRepository
	jobSvc Service
}

func NewStatsService(repo repository.JobStatsRepository, jobSvc Service) StatsService {
	return &statsService{repo: repo, jobSvc: jobSvc}
}

func (s *statsService) Stats(ctx context.Context, uid, jobID int64) (domain.JobStats, error) {
	if _, err := s.jobSvc.OwnedDetail(ctx, uid, jobID); err != nil {
		return domain.JobStats{}, err
	}
	return s.repo.Get(ctx, jobID)
}

func (s *statsService) OnStageChanged(ctx context.Context, change StageChange) error {
	if change.FromStage == "" {
		return s.repo.IncrApplied(ctx, change.JobID)
	}
	if change.ToStage == StageCompleted && change.FromStage != StageCompleted {
		return s.repo.IncrCompleted(ctx, change.JobID)
	}
	if change.ToStatus == StatusRejected && change.FromStatus != StatusRejected {
		return s.repo.IncrRejected(ctx, change.JobID)
	}
	return nil
}
