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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	StatsFieldApplied   = "applied"
	StatsFieldCompleted = "completed"
	StatsFieldRejected  = "rejected"
)

type JobStatsDAO interface {
	// Incr 对应的计数加一，记录不存在的时候创建
	Incr(ctx context.Context, jobId int64, field string) error
	Get(ctx context.Context, jobId int64) (JobStats, error)
}

type GORMJobStatsDAO struct {
	db *egorm.Component
}

func NewGORMJobStatsDAO(db *egorm.Component) JobStatsDAO {
	return &GORMJobStatsDAO{db: db}
}

func (g *GORMJobStatsDAO) Incr(ctx context.Context, jobId int64, field string) error {
	now := time.Now().UnixMilli()
	stats := JobStats{JobId: jobId, Ctime: now, Utime: now}
	switch field {
	case StatsFieldApplied:
		stats.Applied = 1
	case StatsFieldCompleted:
		stats.Completed = 1
	case StatsFieldRejected:
		stats.Rejected = 1
	}
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "job_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			field:   gorm.Expr(field + " + 1"),
			"utime": now,
		}),
	}).Create(&stats).Error
}

func (g *GORMJobStatsDAO) Get(ctx context.Context, jobId int64) (JobStats, error) {
	var res JobStats
	err := g.db.WithContext(ctx).Where("job_id = ?", jobId).First(&res).Error
	return res, err
}

type JobStats struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	JobId     int64 `gorm:"not null;uniqueIndex:uniq_job_id"`
	Applied   int64 `gorm:"not null;default:0"`
	Completed int64 `gorm:"not null;default:0"`
	Rejected  int64 `gorm:"not null;default:0"`
	Ctime     int64
	Utime     int64
}

func (JobStats) TableName() string {
	return "job_stats"
}
