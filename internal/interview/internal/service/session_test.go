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
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/hireflow/internal/ai"
	aimocks "github.com/ecodeclub/hireflow/internal/ai/mocks"
	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	"github.com/ecodeclub/hireflow/internal/interview/internal/service/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const waitTimeout = 3 * time.Second

type fakeClient struct {
	mu        sync.Mutex
	spoken    []string
	captures  int
	turns     []domain.Turn
	errs      []string
	snapshots chan domain.Snapshot
}

func newFakeClient() *fakeClient {
	return &fakeClient{snapshots: make(chan domain.Snapshot, 128)}
}

func (c *fakeClient) Speak(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spoken = append(c.spoken, text)
}

func (c *fakeClient) StopSpeaking() {}

func (c *fakeClient) StartCapture() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.captures++
}

func (c *fakeClient) StopCapture() {}

func (c *fakeClient) ShowInterim(text string) {}

func (c *fakeClient) AppendTurn(turn domain.Turn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = append(c.turns, turn)
}

func (c *fakeClient) ShowError(msg string, recoverable bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, msg)
}

func (c *fakeClient) Notify(snapshot domain.Snapshot) {
	c.snapshots <- snapshot
}

// waitFor 一直等到会话进入指定的状态
func (c *fakeClient) waitFor(t *testing.T, state domain.State, phase domain.Phase) {
	t.Helper()
	timer := time.NewTimer(waitTimeout)
	defer timer.Stop()
	for {
		select {
		case snap := <-c.snapshots:
			if snap.State == state && snap.Phase == phase {
				return
			}
		case <-timer.C:
			t.Fatalf("等待状态 %s/%s 超时", state, phase)
		}
	}
}

type fakePersister struct {
	mu      sync.Mutex
	results []domain.Result
	err     error
}

func (p *fakePersister) Persist(ctx context.Context, uid, aid int64, r domain.Result) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.results = append(p.results, r)
	return nil
}

type doneRecorder struct {
	ch chan domain.Outcome
}

func newDoneRecorder() *doneRecorder {
	return &doneRecorder{ch: make(chan domain.Outcome, 1)}
}

func (r *doneRecorder) onDone(s *Session, outcome domain.Outcome, turns int) {
	r.ch <- outcome
}

func (r *doneRecorder) wait(t *testing.T) domain.Outcome {
	t.Helper()
	select {
	case o := <-r.ch:
		return o
	case <-time.After(waitTimeout):
		t.Fatal("等待会话结束超时")
		return ""
	}
}

func testSessionConfig() SessionConfig {
	return SessionConfig{RearmDelay: 10 * time.Millisecond, CallTimeout: time.Second}
}

func startTestSession(brain ai.Brain, persister Persister, client Client, done *doneRecorder) *Session {
	sess := newSession(ai.BrainContext{Uid: 1, SessionID: "sess-1"}, 10,
		brain, persister, client, testSessionConfig(), done.onDone)
	go sess.run()
	return sess
}

func TestSession_Completed(t *testing.T) {
	ctrl := gomock.NewController(t)
	brain := aimocks.NewMockBrain(ctrl)
	conv := aimocks.NewMockConversation(ctrl)
	brain.EXPECT().Start(gomock.Any(), gomock.Any()).Return(conv, "你好，请做个自我介绍", nil)
	conv.EXPECT().Send(gomock.Any(), "我叫小明").Return(ai.Reply{Message: "感谢参加面试", IsFinished: true}, nil)
	conv.EXPECT().Grade(gomock.Any()).Return(ai.Evaluation{
		OverallScore:         88,
		Strengths:            []string{"表达清楚"},
		Weaknesses:           []string{},
		HiringRecommendation: "hire",
	}, nil)

	client := newFakeClient()
	persister := &fakePersister{}
	done := newDoneRecorder()
	sess := startTestSession(brain, persister, client, done)

	sess.Post(protocol.Start{})
	client.waitFor(t, domain.StateInProgress, domain.PhaseAISpeaking)
	sess.Post(protocol.PlaybackEnded{})
	client.waitFor(t, domain.StateInProgress, domain.PhaseListening)
	sess.Post(protocol.SpeechInterim{Text: "我叫"})
	sess.Post(protocol.SpeechFinal{Text: "我叫小明"})

	assert.Equal(t, domain.OutcomeCompleted, done.wait(t))
	assert.Equal(t, domain.OutcomeCompleted, sess.Outcome())

	persister.mu.Lock()
	defer persister.mu.Unlock()
	require.Len(t, persister.results, 1)
	res := persister.results[0]
	assert.Equal(t, "sess-1", res.SessionID)
	assert.Equal(t, float64(88), res.Evaluation.OverallScore)
	assert.Len(t, res.Transcript, 4)
	assert.Equal(t, domain.SpeakerProtocol, res.Transcript[3].Speaker)

	client.mu.Lock()
	defer client.mu.Unlock()
	assert.Equal(t, []string{"你好，请做个自我介绍", "感谢参加面试"}, client.spoken)
	assert.Equal(t, 1, client.captures)
}

func TestSession_FailedThenRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	brain := aimocks.NewMockBrain(ctrl)
	conv := aimocks.NewMockConversation(ctrl)
	gomock.InOrder(
		brain.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil, "", errors.New("模型超时")),
		brain.EXPECT().Start(gomock.Any(), gomock.Any()).Return(conv, "你好", nil),
	)

	client := newFakeClient()
	done := newDoneRecorder()
	sess := startTestSession(brain, &fakePersister{}, client, done)

	sess.Post(protocol.Start{})
	client.waitFor(t, domain.StateError, domain.PhaseNone)
	sess.Post(protocol.Retry{})
	client.waitFor(t, domain.StateNotStarted, domain.PhaseNone)
	sess.Post(protocol.Start{})
	client.waitFor(t, domain.StateInProgress, domain.PhaseAISpeaking)

	sess.Post(protocol.Abandon{})
	assert.Equal(t, domain.OutcomeAbandoned, done.wait(t))

	client.mu.Lock()
	defer client.mu.Unlock()
	assert.Len(t, client.errs, 1)
}

func TestSession_PersistFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	brain := aimocks.NewMockBrain(ctrl)
	conv := aimocks.NewMockConversation(ctrl)
	brain.EXPECT().Start(gomock.Any(), gomock.Any()).Return(conv, "你好", nil)
	conv.EXPECT().Send(gomock.Any(), "回答").Return(ai.Reply{Message: "结束", IsFinished: true}, nil)
	conv.EXPECT().Grade(gomock.Any()).Return(ai.Evaluation{OverallScore: 60, HiringRecommendation: "no_hire"}, nil)

	client := newFakeClient()
	done := newDoneRecorder()
	sess := startTestSession(brain, &fakePersister{err: errors.New("数据库不可用")}, client, done)

	sess.Post(protocol.Start{})
	client.waitFor(t, domain.StateInProgress, domain.PhaseAISpeaking)
	sess.Post(protocol.PlaybackEnded{})
	client.waitFor(t, domain.StateInProgress, domain.PhaseListening)
	sess.Post(protocol.SpeechFinal{Text: "回答"})
	client.waitFor(t, domain.StateError, domain.PhaseNone)

	sess.Post(protocol.Abandon{})
	assert.Equal(t, domain.OutcomeAbandoned, done.wait(t))
}

func TestSession_AutoRearm(t *testing.T) {
	ctrl := gomock.NewController(t)
	brain := aimocks.NewMockBrain(ctrl)
	conv := aimocks.NewMockConversation(ctrl)
	brain.EXPECT().Start(gomock.Any(), gomock.Any()).Return(conv, "你好", nil)

	client := newFakeClient()
	done := newDoneRecorder()
	sess := startTestSession(brain, &fakePersister{}, client, done)

	sess.Post(protocol.Start{})
	client.waitFor(t, domain.StateInProgress, domain.PhaseAISpeaking)
	sess.Post(protocol.PlaybackEnded{})
	client.waitFor(t, domain.StateInProgress, domain.PhaseListening)
	sess.Post(protocol.CaptureEnded{})
	client.waitFor(t, domain.StateInProgress, domain.PhaseIdle)
	// 延迟之后自动重新开启
	client.waitFor(t, domain.StateInProgress, domain.PhaseListening)

	sess.Post(protocol.Abandon{})
	assert.Equal(t, domain.OutcomeAbandoned, done.wait(t))
	client.mu.Lock()
	defer client.mu.Unlock()
	assert.Equal(t, 2, client.captures)
}

func TestSession_Unsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := newFakeClient()
	done := newDoneRecorder()
	sess := startTestSession(aimocks.NewMockBrain(ctrl), &fakePersister{}, client, done)

	sess.Post(protocol.Unsupported{})
	assert.Equal(t, domain.OutcomeFailed, done.wait(t))
	select {
	case <-sess.Done():
	case <-time.After(waitTimeout):
		t.Fatal("会话没有退出")
	}
	// 结束之后投递的事件直接丢弃
	sess.Post(protocol.Start{})
}
