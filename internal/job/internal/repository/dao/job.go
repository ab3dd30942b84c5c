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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type JobDAO interface {
	// Save id 为 0 的时候新建，否则更新，只能更新自己的岗位
	Save(ctx context.Context, job Job) (int64, error)
	FindByID(ctx context.Context, id int64) (Job, error)
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Job, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	UpdateQuiz(ctx context.Context, id, uid int64, quiz Quiz) error
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{db: db}
}

func (g *GORMJobDAO) Save(ctx context.Context, job Job) (int64, error) {
	now := time.Now().UnixMilli()
	job.Utime = now
	if job.Id == 0 {
		job.Ctime = now
		err := g.db.WithContext(ctx).Create(&job).Error
		return job.Id, err
	}
	res := g.db.WithContext(ctx).Model(&Job{}).
		Where("id = ? AND uid = ?", job.Id, job.Uid).
		Updates(map[string]any{
			"title":            job.Title,
			"description":      job.Description,
			"requirements":     job.Requirements,
			"resume_weight":    job.ResumeWeight,
			"quiz_weight":      job.QuizWeight,
			"interview_weight": job.InterviewWeight,
			"utime":            now,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrRecordNotFound
	}
	return job.Id, nil
}

func (g *GORMJobDAO) FindByID(ctx context.Context, id int64) (Job, error) {
	var res Job
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMJobDAO) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Job, error) {
	var res []Job
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMJobDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Job{}).Where("uid = ?", uid).Count(&res).Error
	return res, err
}

func (g *GORMJobDAO) UpdateQuiz(ctx context.Context, id, uid int64, quiz Quiz) error {
	res := g.db.WithContext(ctx).Model(&Job{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(map[string]any{
			"quiz":  sqlx.JsonColumn[Quiz]{Val: quiz, Valid: true},
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}

type Job struct {
	Id              int64                 `gorm:"primaryKey,autoIncrement"`
	Uid             int64                 `gorm:"not null;index:idx_uid;comment:发布岗位的用户ID"`
	Title           string                `gorm:"type:varchar(256);not null"`
	Description     string                `gorm:"type:text"`
	Requirements    string                `gorm:"type:text"`
	ResumeWeight    int                   `gorm:"not null;default:0;comment:简历阶段权重"`
	QuizWeight      int                   `gorm:"not null;default:0;comment:测验阶段权重"`
	InterviewWeight int                   `gorm:"not null;default:0;comment:面试阶段权重"`
	Quiz            sqlx.JsonColumn[Quiz] `gorm:"type:json;comment:测验题目，包含正确答案"`
	Ctime           int64
	Utime           int64
}

func (Job) TableName() string {
	return "jobs"
}

type Quiz struct {
	ID        string         `json:"id"`
	Metadata  map[string]any `json:"metadata"`
	Questions []Question     `json:"questions"`
}

type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}
