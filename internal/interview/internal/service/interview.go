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
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/hireflow/internal/ai"
	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	"github.com/ecodeclub/hireflow/internal/interview/internal/repository"
	"github.com/ecodeclub/hireflow/internal/interview/internal/service/protocol"
	"github.com/ecodeclub/hireflow/internal/job"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrNotInInterviewStage = errors.New("投递不在面试阶段")
	ErrSessionNotFound     = errors.New("面试会话不存在")
)

type Config struct {
	Session SessionConfig
	// 会话最长存活时间，超时的会话会被放弃
	SessionTTL time.Duration
}

func DefaultConfig() Config {
	return Config{
		Session: SessionConfig{
			RearmDelay:  800 * time.Millisecond,
			CallTimeout: time.Minute,
		},
		SessionTTL: 2 * time.Hour,
	}
}

//go:generate mockgen -source=./interview.go -destination=../../mocks/interview.mock.go -package=intrmocks Service
type Service interface {
	// Open 为处于面试阶段的投递开始一场新的会话，同一个投递之前的会话会被放弃
	Open(ctx context.Context, uid, aid int64, client Client) (*Session, error)
	// Get 只能拿到自己的会话
	Get(uid int64, sessionID string) (*Session, error)
	// Close 放弃会话，已经完成的会话不受影响
	Close(uid int64, sessionID string) error
	Records(ctx context.Context, uid, aid int64) ([]domain.SessionRecord, error)
	// AbandonStale 进程退出时没来得及记录结局的会话，超过存活时间之后一律视为放弃
	AbandonStale(ctx context.Context) (int64, error)
}

type service struct {
	appSvc    application.PipelineService
	jobSvc    job.Service
	brain     ai.Brain
	persister Persister
	repo      repository.SessionRepository
	sessions  *registry
	cfg       Config
	logger    *elog.Component
}

func NewService(appSvc application.PipelineService,
	jobSvc job.Service,
	brain ai.Brain,
	persister Persister,
	repo repository.SessionRepository,
	cfg Config) Service {
	return &service{
		appSvc:    appSvc,
		jobSvc:    jobSvc,
		brain:     brain,
		persister: persister,
		repo:      repo,
		sessions:  newRegistry(cfg.SessionTTL),
		cfg:       cfg,
		logger:    elog.DefaultLogger.With(elog.FieldComponent("interview")),
	}
}

func (s *service) Open(ctx context.Context, uid, aid int64, client Client) (*Session, error) {
	app, err := s.appSvc.Detail(ctx, uid, aid)
	if err != nil {
		return nil, err
	}
	if app.Stage != application.StageInterview {
		return nil, fmt.Errorf("%w, aid %d, stage %s", ErrNotInInterviewStage, aid, app.Stage)
	}
	j, err := s.jobSvc.Detail(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	bc, err := s.brainContext(uid, app, j)
	if err != nil {
		return nil, err
	}

	sess := newSession(bc, aid, s.brain, s.persister, client, s.cfg.Session, s.onDone)
	_, err = s.repo.Create(ctx, domain.SessionRecord{
		SessionID: sess.ID(),
		Uid:       uid,
		Aid:       aid,
		Stime:     time.Now().UnixMilli(),
	})
	if err != nil {
		return nil, err
	}
	if old := s.sessions.put(sess); old != nil {
		s.logger.Info("放弃同一个投递之前的面试会话",
			elog.Int64("aid", aid),
			elog.String("oldSessionId", old.ID()),
			elog.String("sessionId", sess.ID()))
	}
	go sess.run()
	return sess, nil
}

func (s *service) brainContext(uid int64, app application.Application, j job.Job) (ai.BrainContext, error) {
	jobJSON, err := json.Marshal(map[string]any{
		"title":        j.Title,
		"description":  j.Description,
		"requirements": j.Requirements,
	})
	if err != nil {
		return ai.BrainContext{}, err
	}
	resume := map[string]any{}
	if app.Resume != nil {
		resume["content"] = app.Resume.ResumeText
		resume["missingSkills"] = app.Resume.MissingSkills
	}
	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		return ai.BrainContext{}, err
	}
	return ai.BrainContext{
		Uid:        uid,
		SessionID:  shortuuid.New(),
		JobJSON:    string(jobJSON),
		ResumeJSON: string(resumeJSON),
	}, nil
}

func (s *service) Get(uid int64, sessionID string) (*Session, error) {
	sess, ok := s.sessions.get(sessionID)
	if !ok || sess.Uid() != uid {
		return nil, fmt.Errorf("%w, uid %d, session %s", ErrSessionNotFound, uid, sessionID)
	}
	return sess, nil
}

func (s *service) Close(uid int64, sessionID string) error {
	sess, err := s.Get(uid, sessionID)
	if err != nil {
		return err
	}
	sess.Post(protocol.Abandon{})
	return nil
}

func (s *service) Records(ctx context.Context, uid, aid int64) ([]domain.SessionRecord, error) {
	return s.repo.FindByAid(ctx, uid, aid)
}

func (s *service) AbandonStale(ctx context.Context) (int64, error) {
	// 多留一分钟，避免和正常结束的会话抢着写结局
	before := time.Now().Add(-s.cfg.SessionTTL - time.Minute).UnixMilli()
	n, err := s.repo.AbandonStale(ctx, before)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		sessionOutcomes.WithLabelValues(string(domain.OutcomeAbandoned)).Add(float64(n))
	}
	return n, nil
}

func (s *service) onDone(sess *Session, outcome domain.Outcome, turns int) {
	s.sessions.remove(sess)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	err := s.repo.Finish(ctx, sess.ID(), outcome, turns, time.Now().UnixMilli())
	if err != nil {
		s.logger.Error("记录面试会话结局失败",
			elog.String("sessionId", sess.ID()),
			elog.String("outcome", string(outcome)),
			elog.FieldErr(err))
	}
}
