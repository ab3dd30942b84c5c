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
	"testing"
	"time"

	"github.com/ecodeclub/hireflow/internal/ai"
	aimocks "github.com/ecodeclub/hireflow/internal/ai/mocks"
	"github.com/ecodeclub/hireflow/internal/application"
	appmocks "github.com/ecodeclub/hireflow/internal/application/mocks"
	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	repomocks "github.com/ecodeclub/hireflow/internal/interview/internal/repository/mocks"
	"github.com/ecodeclub/hireflow/internal/interview/internal/service/protocol"
	"github.com/ecodeclub/hireflow/internal/job"
	jobmocks "github.com/ecodeclub/hireflow/internal/job/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistry(t *testing.T) {
	r := newRegistry(time.Hour)
	ctrl := gomock.NewController(t)
	brain := aimocks.NewMockBrain(ctrl)

	done1 := newDoneRecorder()
	s1 := startTestSession(brain, &fakePersister{}, newFakeClient(), done1)
	assert.Nil(t, r.put(s1))
	got, ok := r.get(s1.ID())
	require.True(t, ok)
	assert.Same(t, s1, got)

	// 同一个投递新开一个会话，之前的会话被放弃
	s2 := newSession(ai.BrainContext{Uid: 1, SessionID: "sess-2"}, 10,
		brain, &fakePersister{}, newFakeClient(), testSessionConfig(), nil)
	assert.Same(t, s1, r.put(s2))
	assert.Equal(t, domain.OutcomeAbandoned, done1.wait(t))
	_, ok = r.get(s1.ID())
	assert.False(t, ok)
	assert.Equal(t, 1, r.count())

	// 已经被替换掉的会话不能删掉新的会话
	r.remove(s1)
	_, ok = r.get(s2.ID())
	assert.True(t, ok)

	r.remove(s2)
	_, ok = r.get(s2.ID())
	assert.False(t, ok)
	assert.Equal(t, 0, r.count())
}

// 被替换的会话事件队列已经满了，登记新会话也不会被卡住
func TestRegistry_PutWithFullQueue(t *testing.T) {
	r := newRegistry(time.Hour)
	ctrl := gomock.NewController(t)
	brain := aimocks.NewMockBrain(ctrl)

	// 没有启动事件循环，队列填满之后 Post 会一直等待
	stuck := newSession(ai.BrainContext{Uid: 1, SessionID: "sess-stuck"}, 10,
		brain, &fakePersister{}, newFakeClient(), testSessionConfig(), nil)
	defer stuck.cancel()
	for i := 0; i < cap(stuck.events); i++ {
		stuck.Post(protocol.ManualStart{})
	}
	r.put(stuck)

	next := newSession(ai.BrainContext{Uid: 1, SessionID: "sess-next"}, 10,
		brain, &fakePersister{}, newFakeClient(), testSessionConfig(), nil)
	defer next.cancel()
	done := make(chan *Session, 1)
	go func() {
		done <- r.put(next)
	}()
	select {
	case old := <-done:
		assert.Same(t, stuck, old)
	case <-time.After(time.Second):
		t.Fatal("登记新会话被阻塞")
	}
	got, ok := r.get(next.ID())
	require.True(t, ok)
	assert.Same(t, next, got)
	assert.Equal(t, 1, r.count())
}

func TestRegistry_Expired(t *testing.T) {
	r := newRegistry(time.Hour)
	ctrl := gomock.NewController(t)
	done := newDoneRecorder()
	sess := startTestSession(aimocks.NewMockBrain(ctrl), &fakePersister{}, newFakeClient(), done)
	r.put(sess)
	r.cache.Set(r.sessionKey(sess.ID()), sess, time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	r.cache.DeleteExpired()
	assert.Equal(t, domain.OutcomeAbandoned, done.wait(t))
}

type serviceMocks struct {
	appSvc *appmocks.MockPipelineService
	jobSvc *jobmocks.MockService
	brain  *aimocks.MockBrain
	repo   *repomocks.MockSessionRepository
}

func newServiceMocks(ctrl *gomock.Controller) serviceMocks {
	return serviceMocks{
		appSvc: appmocks.NewMockPipelineService(ctrl),
		jobSvc: jobmocks.NewMockService(ctrl),
		brain:  aimocks.NewMockBrain(ctrl),
		repo:   repomocks.NewMockSessionRepository(ctrl),
	}
}

func (m serviceMocks) svc() Service {
	cfg := DefaultConfig()
	cfg.Session = testSessionConfig()
	return NewService(m.appSvc, m.jobSvc, m.brain, NewApplicationPersister(m.appSvc), m.repo, cfg)
}

func TestService_Open(t *testing.T) {
	errDB := errors.New("mock db error")
	testCases := []struct {
		name    string
		mock    func(m serviceMocks)
		wantErr error
	}{
		{
			name: "投递不存在",
			mock: func(m serviceMocks) {
				m.appSvc.EXPECT().Detail(gomock.Any(), int64(1), int64(10)).
					Return(application.Application{}, application.ErrApplicationNotFound)
			},
			wantErr: application.ErrApplicationNotFound,
		},
		{
			name: "还没有通过测验",
			mock: func(m serviceMocks) {
				m.appSvc.EXPECT().Detail(gomock.Any(), int64(1), int64(10)).
					Return(application.Application{ID: 10, Uid: 1, JobID: 2, Stage: application.StageQuiz}, nil)
			},
			wantErr: ErrNotInInterviewStage,
		},
		{
			name: "岗位不存在",
			mock: func(m serviceMocks) {
				m.appSvc.EXPECT().Detail(gomock.Any(), int64(1), int64(10)).
					Return(application.Application{ID: 10, Uid: 1, JobID: 2, Stage: application.StageInterview}, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(job.Job{}, job.ErrJobNotFound)
			},
			wantErr: job.ErrJobNotFound,
		},
		{
			name: "记录会话失败",
			mock: func(m serviceMocks) {
				m.appSvc.EXPECT().Detail(gomock.Any(), int64(1), int64(10)).
					Return(application.Application{ID: 10, Uid: 1, JobID: 2, Stage: application.StageInterview}, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(job.Job{ID: 2, Title: "Go 后端开发"}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errDB)
			},
			wantErr: errDB,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newServiceMocks(ctrl)
			tc.mock(m)
			_, err := m.svc().Open(context.Background(), 1, 10, newFakeClient())
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_OpenAndClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newServiceMocks(ctrl)
	resumeText := "三年 Go 开发经验"
	m.appSvc.EXPECT().Detail(gomock.Any(), int64(1), int64(10)).
		Return(application.Application{
			ID: 10, Uid: 1, JobID: 2, Stage: application.StageInterview,
			Resume: &application.ResumeResult{ResumeText: resumeText, MissingSkills: []string{"k8s"}},
		}, nil)
	m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).
		Return(job.Job{ID: 2, Title: "Go 后端开发", Requirements: "熟悉 Go"}, nil)
	var record domain.SessionRecord
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r domain.SessionRecord) (int64, error) {
			record = r
			return 1, nil
		})
	finished := make(chan domain.Outcome, 1)
	m.repo.EXPECT().Finish(gomock.Any(), gomock.Any(), domain.OutcomeAbandoned, 0, gomock.Any()).
		DoAndReturn(func(ctx context.Context, sessionID string, outcome domain.Outcome, turns int, etime int64) error {
			finished <- outcome
			return nil
		})

	svc := m.svc()
	sess, err := svc.Open(context.Background(), 1, 10, newFakeClient())
	require.NoError(t, err)
	assert.Equal(t, sess.ID(), record.SessionID)
	assert.Equal(t, int64(10), record.Aid)
	assert.Contains(t, sess.bc.JobJSON, "Go 后端开发")
	assert.Contains(t, sess.bc.ResumeJSON, resumeText)

	got, err := svc.Get(1, sess.ID())
	require.NoError(t, err)
	assert.Same(t, sess, got)
	_, err = svc.Get(2, sess.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, svc.Close(2, sess.ID()), ErrSessionNotFound)

	require.NoError(t, svc.Close(1, sess.ID()))
	select {
	case outcome := <-finished:
		assert.Equal(t, domain.OutcomeAbandoned, outcome)
	case <-time.After(waitTimeout):
		t.Fatal("会话没有结束")
	}
	_, err = svc.Get(1, sess.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_AbandonStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newServiceMocks(ctrl)
	start := time.Now()
	m.repo.EXPECT().AbandonStale(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, before int64) (int64, error) {
			// 会话最长存活两个小时，再多留一分钟
			assert.LessOrEqual(t, before, start.Add(-2*time.Hour-time.Minute).UnixMilli()+1000)
			assert.Greater(t, before, start.Add(-3*time.Hour).UnixMilli())
			return 2, nil
		})
	n, err := m.svc().AbandonStale(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
