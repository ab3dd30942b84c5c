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
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

// InterviewSession 一场 AI 面试的记录，对话本身保存在投递上，这里只记录会话的结局
type InterviewSession struct {
	ID        int64  `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	SessionID string `gorm:"type:VARCHAR(64);NOT NULL;uniqueIndex:uniq_session_id;comment:'会话ID'"`
	Uid       int64  `gorm:"type:BIGINT;NOT NULL;index:idx_uid;comment:'候选人ID'"`
	Aid       int64  `gorm:"type:BIGINT;NOT NULL;index:idx_aid;comment:'投递ID'"`
	Outcome   string `gorm:"type:ENUM('active','completed','abandoned','failed');NOT NULL;default:'active';comment:'会话结局'"`
	Turns     int    `gorm:"type:INT;NOT NULL;default:0;comment:'对话条数'"`
	Stime     int64  `gorm:"type:BIGINT;NOT NULL;comment:'开始时间'"`
	Etime     int64  `gorm:"type:BIGINT;NOT NULL;default:0;comment:'结束时间'"`
	Ctime     int64
	Utime     int64
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}

type InterviewSessionDAO interface {
	Create(ctx context.Context, s InterviewSession) (int64, error)
	// UpdateOutcome 只有还处于 active 的会话才会被更新，结局只能写一次
	UpdateOutcome(ctx context.Context, sessionID string, outcome string, turns int, etime int64) error
	FindByAid(ctx context.Context, uid, aid int64) ([]InterviewSession, error)
	// AbandonStale 把 stime 之前开始并且还处于 active 的会话标记为 abandoned，返回影响的行数
	AbandonStale(ctx context.Context, stime int64) (int64, error)
}

type GORMInterviewSessionDAO struct {
	db *egorm.Component
}

func NewGORMInterviewSessionDAO(db *egorm.Component) InterviewSessionDAO {
	return &GORMInterviewSessionDAO{db: db}
}

func (g *GORMInterviewSessionDAO) Create(ctx context.Context, s InterviewSession) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime, s.Utime = now, now
	err := g.db.WithContext(ctx).Create(&s).Error
	return s.ID, err
}

func (g *GORMInterviewSessionDAO) UpdateOutcome(ctx context.Context, sessionID string, outcome string, turns int, etime int64) error {
	return g.db.WithContext(ctx).Model(&InterviewSession{}).
		Where("session_id = ? AND outcome = ?", sessionID, "active").
		Updates(map[string]any{
			"outcome": outcome,
			"turns":   turns,
			"etime":   etime,
			"utime":   time.Now().UnixMilli(),
		}).Error
}

func (g *GORMInterviewSessionDAO) FindByAid(ctx context.Context, uid, aid int64) ([]InterviewSession, error) {
	var res []InterviewSession
	err := g.db.WithContext(ctx).
		Where("uid = ? AND aid = ?", uid, aid).
		Order("id DESC").
		Find(&res).Error
	return res, err
}

func (g *GORMInterviewSessionDAO) AbandonStale(ctx context.Context, stime int64) (int64, error) {
	now := time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&InterviewSession{}).
		Where("outcome = ? AND stime < ?", "active", stime).
		Updates(map[string]any{
			"outcome": "abandoned",
			"etime":   now,
			"utime":   now,
		})
	return res.RowsAffected, res.Error
}
