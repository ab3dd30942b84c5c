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

	"github.com/ecodeclub/hireflow/internal/job/internal/domain"
	"github.com/ecodeclub/hireflow/internal/job/internal/repository/dao"
)

type JobStatsRepository interface {
	IncrApplied(ctx context.Context, jobID int64) error
	IncrCompleted(ctx context.Context, jobID int64) error
	IncrRejected(ctx context.Context, jobID int64) error
	Get(ctx context.Context, jobID int64) (domain.JobStats, error)
}

type jobStatsRepository struct {
	dao dao.JobStatsDAO
}

func NewJobStatsRepository(d dao.JobStatsDAO) JobStatsRepository {
	return &jobStatsRepository{dao: d}
}

func (r *jobStatsRepository) IncrApplied(ctx context.Context, jobID int64) error {
	return r.dao.Incr(ctx, jobID, dao.StatsFieldApplied)
}

func (r *jobStatsRepository) IncrCompleted(ctx context.Context, jobID int64) error {
	return r.dao.Incr(ctx, jobID, dao.StatsFieldCompleted)
}

func (r *jobStatsRepository) IncrRejected(ctx context.Context, jobID int64) error {
	return r.dao.Incr(ctx, jobID, dao.StatsFieldRejected)
}

func (r *jobStatsRepository) Get(ctx context.Context, jobID int64) (domain.JobStats, error) {
	s, err := r.dao.Get(ctx, jobID)
	if dao.IsNotFound(err) {
		// 还没有人投递
		return domain.JobStats{JobID: jobID}, nil
	}
	if err != nil {
		return domain.JobStats{}, err
	}
	return domain.JobStats{
		JobID:     s.JobId,
		Applied:   s.Applied,
		Completed: s.Completed,
		Rejected:  s.Rejected,
		Utime:     s.Utime,
	}, nil
}
