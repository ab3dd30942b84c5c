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

package protocol

import (
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRearmDelay = 800 * time.Millisecond

func newTestMachine() *Machine {
	return NewMachine("sess-1", testRearmDelay, func() time.Time {
		return time.UnixMilli(1700000000000)
	})
}

// listening 让状态机进入候选人可以说话的状态
func listening(t *testing.T, m *Machine) {
	_, err := m.Handle(Start{})
	require.NoError(t, err)
	_, err = m.Handle(BrainStarted{Gen: m.Generation(), Greeting: "你好，请先做个自我介绍"})
	require.NoError(t, err)
	_, err = m.Handle(PlaybackEnded{})
	require.NoError(t, err)
	require.Equal(t, domain.PhaseListening, m.Phase())
}

func hasEffect[T Effect](effects []Effect) bool {
	for _, e := range effects {
		if _, ok := e.(T); ok {
			return true
		}
	}
	return false
}

func findEffect[T Effect](t *testing.T, effects []Effect) T {
	for _, e := range effects {
		if v, ok := e.(T); ok {
			return v
		}
	}
	var zero T
	t.Fatalf("没有找到 %T", zero)
	return zero
}

func TestMachine_Start(t *testing.T) {
	m := newTestMachine()
	effects, err := m.Handle(Start{})
	require.NoError(t, err)
	assert.Equal(t, domain.StateStarting, m.State())
	call := findEffect[CallBrainStart](t, effects)
	assert.Equal(t, m.Generation(), call.Gen)

	// 重复点击开始没有效果
	effects, err = m.Handle(Start{})
	require.NoError(t, err)
	assert.Empty(t, effects)

	effects, err = m.Handle(BrainStarted{Gen: m.Generation(), Greeting: "你好"})
	require.NoError(t, err)
	assert.Equal(t, domain.StateInProgress, m.State())
	assert.Equal(t, domain.PhaseAISpeaking, m.Phase())
	assert.Equal(t, Speak{Text: "你好"}, findEffect[Speak](t, effects))
	assert.False(t, hasEffect[StartCapture](effects))
	assert.Equal(t, []domain.Turn{{Speaker: domain.SpeakerAI, Text: "你好", Timestamp: 1700000000000}}, m.Transcript())
}

func TestMachine_InterimNeverForwarded(t *testing.T) {
	m := newTestMachine()
	listening(t, m)
	for _, text := range []string{"我", "我叫", "我叫小明"} {
		effects, err := m.Handle(SpeechInterim{Text: text})
		require.NoError(t, err)
		assert.Equal(t, []Effect{ShowInterim{Text: text}}, effects)
	}
	assert.Equal(t, domain.PhaseListening, m.Phase())
	assert.Len(t, m.Transcript(), 1)

	effects, err := m.Handle(SpeechFinal{Text: "  我叫小明  "})
	require.NoError(t, err)
	send := findEffect[CallBrainSend](t, effects)
	assert.Equal(t, "我叫小明", send.Text)
	assert.Equal(t, m.Generation(), send.Gen)
	assert.True(t, hasEffect[StopCapture](effects))
	assert.Equal(t, domain.PhaseAwaitingReply, m.Phase())

	// 等待回复的时候，迟到的识别结果不会再发送
	effects, err = m.Handle(SpeechFinal{Text: "补充一句"})
	require.NoError(t, err)
	assert.Empty(t, effects)
	effects, err = m.Handle(SpeechInterim{Text: "补充"})
	require.NoError(t, err)
	assert.Empty(t, effects)
}

func TestMachine_EmptyFinalIgnored(t *testing.T) {
	m := newTestMachine()
	listening(t, m)
	effects, err := m.Handle(SpeechFinal{Text: "   "})
	require.NoError(t, err)
	assert.Empty(t, effects)
	assert.Equal(t, domain.PhaseListening, m.Phase())
}

func TestMachine_NoCaptureWhileSpeaking(t *testing.T) {
	m := newTestMachine()
	_, err := m.Handle(Start{})
	require.NoError(t, err)
	_, err = m.Handle(BrainStarted{Gen: m.Generation(), Greeting: "你好"})
	require.NoError(t, err)
	require.Equal(t, domain.PhaseAISpeaking, m.Phase())

	testCases := []struct {
		name string
		evt  Event
	}{
		{name: "手动开始", evt: ManualStart{}},
		{name: "识别结果", evt: SpeechFinal{Text: "你好"}},
		{name: "中间结果", evt: SpeechInterim{Text: "你"}},
		{name: "识别结束", evt: CaptureEnded{}},
		{name: "重新开启", evt: Rearm{Seq: 1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			effects, err := m.Handle(tc.evt)
			require.NoError(t, err)
			assert.Empty(t, effects)
			assert.Equal(t, domain.PhaseAISpeaking, m.Phase())
		})
	}
}

func TestMachine_Rearm(t *testing.T) {
	m := newTestMachine()
	listening(t, m)

	effects, err := m.Handle(CaptureEnded{})
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseIdle, m.Phase())
	schedule := findEffect[ScheduleRearm](t, effects)
	assert.Equal(t, testRearmDelay, schedule.Delay)

	// 过期的定时器
	effects, err = m.Handle(Rearm{Seq: schedule.Seq - 1})
	require.NoError(t, err)
	assert.Empty(t, effects)
	assert.Equal(t, domain.PhaseIdle, m.Phase())

	effects, err = m.Handle(Rearm{Seq: schedule.Seq})
	require.NoError(t, err)
	assert.True(t, hasEffect[StartCapture](effects))
	assert.Equal(t, domain.PhaseListening, m.Phase())

	// 同一个定时器只生效一次
	effects, err = m.Handle(Rearm{Seq: schedule.Seq})
	require.NoError(t, err)
	assert.Empty(t, effects)
}

func TestMachine_ManualStartCancelsRearm(t *testing.T) {
	m := newTestMachine()
	listening(t, m)
	effects, err := m.Handle(CaptureEnded{})
	require.NoError(t, err)
	schedule := findEffect[ScheduleRearm](t, effects)

	effects, err = m.Handle(ManualStart{})
	require.NoError(t, err)
	assert.True(t, hasEffect[StartCapture](effects))

	_, err = m.Handle(ManualStop{})
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseIdle, m.Phase())

	// 手动停止之后，之前安排的自动开启不再生效
	effects, err = m.Handle(Rearm{Seq: schedule.Seq})
	require.NoError(t, err)
	assert.Empty(t, effects)
	assert.Equal(t, domain.PhaseIdle, m.Phase())
}

func TestMachine_FullInterview(t *testing.T) {
	m := newTestMachine()
	listening(t, m)
	gen := m.Generation()

	_, err := m.Handle(SpeechFinal{Text: "我有三年 Go 经验"})
	require.NoError(t, err)
	effects, err := m.Handle(BrainReplied{Gen: gen, Message: "说说 channel 的用法"})
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseAISpeaking, m.Phase())
	assert.Equal(t, Speak{Text: "说说 channel 的用法"}, findEffect[Speak](t, effects))

	_, err = m.Handle(PlaybackEnded{})
	require.NoError(t, err)
	_, err = m.Handle(SpeechFinal{Text: "用来在 goroutine 之间通信"})
	require.NoError(t, err)

	effects, err = m.Handle(BrainReplied{Gen: gen, Message: "感谢参加面试", IsFinished: true})
	require.NoError(t, err)
	assert.Equal(t, domain.StateGrading, m.State())
	assert.True(t, hasEffect[StopCapture](effects))
	assert.Equal(t, Speak{Text: "感谢参加面试"}, findEffect[Speak](t, effects))
	grading := findEffect[CallGrading](t, effects)
	assert.Equal(t, gen, grading.Gen)
	var states []domain.State
	for _, e := range effects {
		if n, ok := e.(Notify); ok {
			states = append(states, n.Snapshot.State)
		}
	}
	assert.Equal(t, []domain.State{domain.StateFinished, domain.StateGrading}, states)

	// 评分期间播放结束语，不会重新开启语音识别
	effects, err = m.Handle(PlaybackEnded{})
	require.NoError(t, err)
	assert.Empty(t, effects)
	effects, err = m.Handle(ManualStart{})
	require.NoError(t, err)
	assert.Empty(t, effects)

	eval := domain.Evaluation{OverallScore: 82, Strengths: []string{"基础扎实"}, HiringRecommendation: "hire"}
	effects, err = m.Handle(GradingDone{Gen: gen, Evaluation: eval})
	require.NoError(t, err)
	persist := findEffect[Persist](t, effects)
	assert.Equal(t, "sess-1", persist.Result.SessionID)
	assert.Equal(t, eval, persist.Result.Evaluation)
	assert.Equal(t, int64(1700000000000), persist.Result.CompletedAt)
	speakers := make([]domain.Speaker, 0, len(persist.Result.Transcript))
	for _, turn := range persist.Result.Transcript {
		speakers = append(speakers, turn.Speaker)
	}
	assert.Equal(t, []domain.Speaker{
		domain.SpeakerAI, domain.SpeakerCandidate,
		domain.SpeakerAI, domain.SpeakerCandidate,
		domain.SpeakerAI, domain.SpeakerProtocol,
	}, speakers)

	// 重复的评分结果
	_, err = m.Handle(GradingDone{Gen: gen, Evaluation: eval})
	assert.ErrorIs(t, err, ErrProtocolViolation)

	effects, err = m.Handle(PersistDone{Gen: gen})
	require.NoError(t, err)
	assert.Equal(t, domain.StateCompleted, m.State())
	assert.True(t, hasEffect[Notify](effects))

	// 完成之后什么都不会改变
	for _, evt := range []Event{Start{}, Retry{}, Abandon{}, Unsupported{}} {
		effects, err = m.Handle(evt)
		require.NoError(t, err)
		assert.Empty(t, effects)
		assert.Equal(t, domain.StateCompleted, m.State())
	}
}

func TestMachine_Violation(t *testing.T) {
	testCases := []struct {
		name      string
		before    func(t *testing.T, m *Machine)
		evt       func(m *Machine) Event
		wantState domain.State
		wantPhase domain.Phase
	}{
		{
			name:   "听的时候收到回复",
			before: listening,
			evt: func(m *Machine) Event {
				return BrainReplied{Gen: m.Generation(), Message: "下一题"}
			},
			wantState: domain.StateInProgress,
			wantPhase: domain.PhaseListening,
		},
		{
			name:   "没有评分就保存完成",
			before: listening,
			evt: func(m *Machine) Event {
				return PersistDone{Gen: m.Generation()}
			},
			wantState: domain.StateInProgress,
			wantPhase: domain.PhaseListening,
		},
		{
			name:   "进行中收到评分",
			before: listening,
			evt: func(m *Machine) Event {
				return GradingDone{Gen: m.Generation()}
			},
			wantState: domain.StateInProgress,
			wantPhase: domain.PhaseListening,
		},
		{
			name: "重复的开场白",
			before: func(t *testing.T, m *Machine) {
				listening(t, m)
			},
			evt: func(m *Machine) Event {
				return BrainStarted{Gen: m.Generation(), Greeting: "你好"}
			},
			wantState: domain.StateInProgress,
			wantPhase: domain.PhaseListening,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMachine()
			tc.before(t, m)
			turns := len(m.Transcript())
			gen := m.Generation()
			effects, err := m.Handle(tc.evt(m))
			assert.ErrorIs(t, err, ErrProtocolViolation)
			assert.Empty(t, effects)
			assert.Equal(t, tc.wantState, m.State())
			assert.Equal(t, tc.wantPhase, m.Phase())
			assert.Equal(t, turns, len(m.Transcript()))
			assert.Equal(t, gen, m.Generation())
		})
	}
}

func TestMachine_StaleResultDiscarded(t *testing.T) {
	m := newTestMachine()
	listening(t, m)
	old := m.Generation()
	_, err := m.Handle(SpeechFinal{Text: "我的回答"})
	require.NoError(t, err)

	_, err = m.Handle(Abandon{})
	require.NoError(t, err)
	_, err = m.Handle(Start{})
	require.NoError(t, err)
	require.NotEqual(t, old, m.Generation())

	for _, evt := range []Event{
		BrainStarted{Gen: old, Greeting: "旧的开场白"},
		BrainReplied{Gen: old, Message: "旧的回复"},
		GradingDone{Gen: old},
		PersistDone{Gen: old},
		Failed{Gen: old, Err: errors.New("超时")},
	} {
		effects, err := m.Handle(evt)
		require.NoError(t, err)
		assert.Empty(t, effects)
		assert.Equal(t, domain.StateStarting, m.State())
	}
	assert.Empty(t, m.Transcript())
}

func TestMachine_FailedAndRetry(t *testing.T) {
	m := newTestMachine()
	listening(t, m)
	gen := m.Generation()
	_, err := m.Handle(SpeechFinal{Text: "我的回答"})
	require.NoError(t, err)

	effects, err := m.Handle(Failed{Gen: gen, Err: errors.New("模型超时")})
	require.NoError(t, err)
	assert.Equal(t, domain.StateError, m.State())
	assert.True(t, m.Snapshot().Recoverable)
	showErr := findEffect[ShowError](t, effects)
	assert.True(t, showErr.Recoverable)
	assert.True(t, hasEffect[StopSpeaking](effects))
	assert.True(t, hasEffect[StopCapture](effects))

	// 出错之后迟到的回复
	effects, err = m.Handle(BrainReplied{Gen: gen, Message: "迟到的回复"})
	require.NoError(t, err)
	assert.Empty(t, effects)

	effects, err = m.Handle(Retry{})
	require.NoError(t, err)
	assert.True(t, hasEffect[Notify](effects))
	assert.Equal(t, domain.StateNotStarted, m.State())
	assert.Empty(t, m.Transcript())

	listening(t, m)
	assert.Len(t, m.Transcript(), 1)
}

func TestMachine_PersistFailed(t *testing.T) {
	m := newTestMachine()
	listening(t, m)
	gen := m.Generation()
	_, err := m.Handle(SpeechFinal{Text: "回答"})
	require.NoError(t, err)
	_, err = m.Handle(BrainReplied{Gen: gen, Message: "结束了", IsFinished: true})
	require.NoError(t, err)
	_, err = m.Handle(GradingDone{Gen: gen})
	require.NoError(t, err)

	_, err = m.Handle(Failed{Gen: gen, Err: errors.New("数据库不可用")})
	require.NoError(t, err)
	assert.Equal(t, domain.StateError, m.State())
	assert.True(t, m.Snapshot().Recoverable)
}

func TestMachine_Unsupported(t *testing.T) {
	m := newTestMachine()
	effects, err := m.Handle(Unsupported{})
	require.NoError(t, err)
	assert.Equal(t, domain.StateError, m.State())
	assert.False(t, m.Snapshot().Recoverable)
	assert.False(t, findEffect[ShowError](t, effects).Recoverable)

	// 不支持的环境不能重试，也不能开始
	for _, evt := range []Event{Retry{}, Start{}} {
		effects, err = m.Handle(evt)
		require.NoError(t, err)
		assert.Empty(t, effects)
		assert.Equal(t, domain.StateError, m.State())
	}
}

func TestMachine_Abandon(t *testing.T) {
	m := newTestMachine()
	listening(t, m)
	effects, err := m.Handle(Abandon{})
	require.NoError(t, err)
	assert.True(t, hasEffect[StopSpeaking](effects))
	assert.True(t, hasEffect[StopCapture](effects))
	assert.Equal(t, domain.StateNotStarted, m.State())
	assert.Equal(t, domain.PhaseNone, m.Phase())
	assert.Empty(t, m.Transcript())
}
