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
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrDuplicate 同一个候选人对同一个岗位重复投递
	ErrDuplicate = errors.New("重复投递")
	// ErrStageConflict 更新的时候阶段已经被别的请求修改了
	ErrStageConflict = errors.New("投递阶段已经变更")
)

type ApplicationDAO interface {
	Create(ctx context.Context, app Application) (int64, error)
	FindByID(ctx context.Context, id int64) (Application, error)
	FindByUidAndJob(ctx context.Context, uid, jobID int64) (Application, error)
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Application, error)
	// FindByJob 岗位下面的全部投递，排名需要全部加载之后在内存里面排序
	FindByJob(ctx context.Context, jobID int64) ([]Application, error)
	// UpdateStage 只有数据库里面的阶段还是 fromStage 的时候才会更新
	UpdateStage(ctx context.Context, app Application, fromStage string) error
	// UpdateStatus 只更新状态，并且只有面试结果已经存在的时候才允许
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (g *GORMApplicationDAO) Create(ctx context.Context, app Application) (int64, error) {
	now := time.Now().UnixMilli()
	app.Ctime, app.Utime = now, now
	err := g.db.WithContext(ctx).Create(&app).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicate
		}
	}
	return app.Id, err
}

func (g *GORMApplicationDAO) FindByID(ctx context.Context, id int64) (Application, error) {
	var res Application
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) FindByUidAndJob(ctx context.Context, uid, jobID int64) (Application, error) {
	var res Application
	err := g.db.WithContext(ctx).Where("uid = ? AND job_id = ?", uid, jobID).First(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Application, error) {
	var res []Application
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) FindByJob(ctx context.Context, jobID int64) ([]Application, error) {
	var res []Application
	err := g.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) UpdateStage(ctx context.Context, app Application, fromStage string) error {
	res := g.db.WithContext(ctx).Model(&Application{}).
		Where("id = ? AND stage = ?", app.Id, fromStage).
		Updates(map[string]any{
			"status":            app.Status,
			"stage":             app.Stage,
			"resume_screening":  app.ResumeScreening,
			"quiz_results":      app.QuizResults,
			"interview_results": app.InterviewResults,
			"weighted_score":    app.WeightedScore,
			"completed_at":      app.CompletedAt,
			"utime":             time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStageConflict
	}
	return nil
}

func (g *GORMApplicationDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	res := g.db.WithContext(ctx).Model(&Application{}).
		Where("id = ? AND interview_results IS NOT NULL", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStageConflict
	}
	return nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrRecordNotFound)
}

type Application struct {
	Id               int64                             `gorm:"primaryKey,autoIncrement"`
	Uid              int64                             `gorm:"not null;uniqueIndex:uniq_uid_job;comment:候选人ID"`
	JobId            int64                             `gorm:"not null;uniqueIndex:uniq_uid_job;index:idx_job_id"`
	Status           string                            `gorm:"type:varchar(32);not null"`
	Stage            string                            `gorm:"type:varchar(32);not null"`
	ResumeScreening  sqlx.JsonColumn[ResumeScreening]  `gorm:"type:json;comment:简历筛选结果"`
	QuizResults      sqlx.JsonColumn[QuizResults]      `gorm:"type:json;comment:测验结果"`
	InterviewResults sqlx.JsonColumn[InterviewResults] `gorm:"type:json;comment:面试结果"`
	WeightedScore    int                               `gorm:"not null;default:0;comment:面试完成之后固定下来的总分"`
	CompletedAt      int64                             `gorm:"not null;default:0"`
	Ctime            int64
	Utime            int64
}

func (Application) TableName() string {
	return "applications"
}

type ResumeScreening struct {
	MatchScore           float64  `json:"matchScore"`
	SkillMatchScore      float64  `json:"skillMatchScore"`
	ExperienceMatchScore float64  `json:"experienceMatchScore"`
	MissingSkills        []string `json:"missingSkills"`
	PassFail             PassFail `json:"passFail"`
	// 老数据只有这个字段
	Score      *float64 `json:"score,omitempty"`
	ResumeText string   `json:"resumeText"`
}

type PassFail struct {
	Status          string `json:"status"`
	FeedbackMessage string `json:"feedbackMessage"`
}

type QuizResults struct {
	Score          int          `json:"score"`
	TotalQuestions int          `json:"totalQuestions"`
	Answers        []QuizAnswer `json:"answers"`
	CompletedAt    int64        `json:"completedAt"`
}

type QuizAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Correct  bool   `json:"correct"`
}

type InterviewResults struct {
	SessionID   string     `json:"sessionId"`
	Transcript  []Turn     `json:"transcript"`
	Evaluation  Evaluation `json:"evaluation"`
	CompletedAt int64      `json:"completedAt"`
}

type Turn struct {
	Speaker   string `json:"speaker"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

type Evaluation struct {
	OverallScore         float64  `json:"overallScore"`
	Strengths            []string `json:"strengths"`
	Weaknesses           []string `json:"weaknesses"`
	HiringRecommendation string   `json:"hiringRecommendation"`
}
