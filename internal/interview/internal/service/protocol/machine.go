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

// Package protocol 实时面试的轮次协议。
// Machine 是纯粹的状态机，不做任何 IO，所有的副作用都以 Effect 的形式返回给调用者执行。
// 调用者必须保证同一个 Machine 只在一个 goroutine 里面使用。
package protocol

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
)

// ErrProtocolViolation 当前代数的外部调用结果出现在了不该出现的状态，说明程序有 BUG
var ErrProtocolViolation = errors.New("面试协议被破坏")

const closingText = "面试结束"

type Machine struct {
	sessionID  string
	rearmDelay time.Duration
	now        func() time.Time

	state       domain.State
	phase       domain.Phase
	recoverable bool
	// 每次开始或者重置都会加一，用来识别过期的外部调用结果
	gen uint64
	// 每次安排或者取消自动重启语音识别都会加一
	rearmSeq   uint64
	persisting bool
	transcript []domain.Turn
}

func NewMachine(sessionID string, rearmDelay time.Duration, now func() time.Time) *Machine {
	if now == nil {
		now = time.Now
	}
	return &Machine{
		sessionID:  sessionID,
		rearmDelay: rearmDelay,
		now:        now,
		state:      domain.StateNotStarted,
	}
}

func (m *Machine) State() domain.State {
	return m.state
}

func (m *Machine) Phase() domain.Phase {
	return m.phase
}

func (m *Machine) Generation() uint64 {
	return m.gen
}

func (m *Machine) Transcript() []domain.Turn {
	return slices.Clone(m.transcript)
}

func (m *Machine) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		SessionID:   m.sessionID,
		State:       m.state,
		Phase:       m.phase,
		Recoverable: m.recoverable,
		Turns:       len(m.transcript),
	}
}

// Handle 处理一个事件，返回需要执行的动作。
// 和当前状态无关的客户端事件会被忽略，过期的外部调用结果会被丢弃，
// 只有当前代数的外部调用结果出现在错误的状态才会返回 ErrProtocolViolation，此时状态不变。
func (m *Machine) Handle(evt Event) ([]Effect, error) {
	switch e := evt.(type) {
	case Start:
		return m.start(), nil
	case Unsupported:
		return m.unsupported(), nil
	case BrainStarted:
		return m.brainStarted(e)
	case PlaybackEnded:
		return m.playbackEnded(), nil
	case SpeechInterim:
		return m.speechInterim(e), nil
	case SpeechFinal:
		return m.speechFinal(e), nil
	case CaptureEnded:
		return m.captureEnded(), nil
	case Rearm:
		return m.rearm(e), nil
	case ManualStart:
		return m.manualStart(), nil
	case ManualStop:
		return m.manualStop(), nil
	case BrainReplied:
		return m.brainReplied(e)
	case GradingDone:
		return m.gradingDone(e)
	case PersistDone:
		return m.persistDone(e)
	case Failed:
		return m.failed(e)
	case Retry:
		return m.retry(), nil
	case Abandon:
		return m.abandon(), nil
	}
	return nil, fmt.Errorf("%w: 未知事件 %T", ErrProtocolViolation, evt)
}

func (m *Machine) start() []Effect {
	if m.state != domain.StateNotStarted {
		return nil
	}
	m.gen++
	m.state = domain.StateStarting
	m.phase = domain.PhaseNone
	return []Effect{m.notify(), CallBrainStart{Gen: m.gen}}
}

func (m *Machine) unsupported() []Effect {
	if m.state.IsTerminal() {
		return nil
	}
	m.gen++
	m.rearmSeq++
	m.state = domain.StateError
	m.phase = domain.PhaseNone
	m.recoverable = false
	m.persisting = false
	return []Effect{
		StopSpeaking{},
		StopCapture{},
		ShowError{Message: "当前环境不支持语音识别，无法进行面试"},
		m.notify(),
	}
}

func (m *Machine) brainStarted(e BrainStarted) ([]Effect, error) {
	if m.stale(e.Gen) {
		return nil, nil
	}
	if m.state != domain.StateStarting {
		return nil, m.violation(e)
	}
	m.state = domain.StateInProgress
	if strings.TrimSpace(e.Greeting) == "" {
		m.phase = domain.PhaseListening
		return []Effect{m.notify(), StartCapture{}}, nil
	}
	m.phase = domain.PhaseAISpeaking
	return []Effect{m.appendTurn(domain.SpeakerAI, e.Greeting), m.notify(), Speak{Text: e.Greeting}}, nil
}

func (m *Machine) playbackEnded() []Effect {
	if !m.inPhase(domain.PhaseAISpeaking) {
		return nil
	}
	m.phase = domain.PhaseListening
	return []Effect{m.notify(), StartCapture{}}
}

func (m *Machine) speechInterim(e SpeechInterim) []Effect {
	if !m.inPhase(domain.PhaseListening) {
		return nil
	}
	return []Effect{ShowInterim{Text: e.Text}}
}

func (m *Machine) speechFinal(e SpeechFinal) []Effect {
	if !m.inPhase(domain.PhaseListening) {
		return nil
	}
	text := strings.TrimSpace(e.Text)
	if text == "" {
		return nil
	}
	m.phase = domain.PhaseAwaitingReply
	return []Effect{
		StopCapture{},
		ShowInterim{},
		m.appendTurn(domain.SpeakerCandidate, text),
		m.notify(),
		CallBrainSend{Gen: m.gen, Text: text},
	}
}

func (m *Machine) captureEnded() []Effect {
	if !m.inPhase(domain.PhaseListening) {
		return nil
	}
	m.phase = domain.PhaseIdle
	m.rearmSeq++
	return []Effect{m.notify(), ScheduleRearm{Seq: m.rearmSeq, Delay: m.rearmDelay}}
}

func (m *Machine) rearm(e Rearm) []Effect {
	if !m.inPhase(domain.PhaseIdle) || e.Seq != m.rearmSeq {
		return nil
	}
	m.phase = domain.PhaseListening
	return []Effect{m.notify(), StartCapture{}}
}

// manualStart AI 说话或者评分的时候没有任何效果
func (m *Machine) manualStart() []Effect {
	if !m.inPhase(domain.PhaseIdle) {
		return nil
	}
	m.rearmSeq++
	m.phase = domain.PhaseListening
	return []Effect{m.notify(), StartCapture{}}
}

func (m *Machine) manualStop() []Effect {
	if !m.inPhase(domain.PhaseListening) {
		return nil
	}
	m.rearmSeq++
	m.phase = domain.PhaseIdle
	return []Effect{StopCapture{}, ShowInterim{}, m.notify()}
}

func (m *Machine) brainReplied(e BrainReplied) ([]Effect, error) {
	if m.stale(e.Gen) {
		return nil, nil
	}
	if !m.inPhase(domain.PhaseAwaitingReply) {
		return nil, m.violation(e)
	}
	msg := strings.TrimSpace(e.Message)
	var effects []Effect
	if msg != "" {
		effects = append(effects, m.appendTurn(domain.SpeakerAI, msg))
	}
	if !e.IsFinished {
		if msg == "" {
			m.phase = domain.PhaseListening
			return append(effects, m.notify(), StartCapture{}), nil
		}
		m.phase = domain.PhaseAISpeaking
		return append(effects, m.notify(), Speak{Text: msg}), nil
	}

	// 结束语和评分同时进行，语音识别不会再打开
	m.phase = domain.PhaseNone
	m.state = domain.StateFinished
	effects = append(effects, StopCapture{})
	if msg != "" {
		effects = append(effects, Speak{Text: msg})
	}
	effects = append(effects, m.appendTurn(domain.SpeakerProtocol, closingText), m.notify())
	m.state = domain.StateGrading
	return append(effects, m.notify(), CallGrading{Gen: m.gen}), nil
}

func (m *Machine) gradingDone(e GradingDone) ([]Effect, error) {
	if m.stale(e.Gen) {
		return nil, nil
	}
	if m.state != domain.StateGrading || m.persisting {
		return nil, m.violation(e)
	}
	m.persisting = true
	return []Effect{Persist{
		Gen: m.gen,
		Result: domain.Result{
			SessionID:   m.sessionID,
			Transcript:  m.Transcript(),
			Evaluation:  e.Evaluation,
			CompletedAt: m.now().UnixMilli(),
		},
	}}, nil
}

func (m *Machine) persistDone(e PersistDone) ([]Effect, error) {
	if m.stale(e.Gen) {
		return nil, nil
	}
	if m.state != domain.StateGrading || !m.persisting {
		return nil, m.violation(e)
	}
	m.persisting = false
	m.state = domain.StateCompleted
	return []Effect{m.notify()}, nil
}

func (m *Machine) failed(e Failed) ([]Effect, error) {
	if m.stale(e.Gen) {
		return nil, nil
	}
	switch m.state {
	case domain.StateNotStarted, domain.StateError:
		return nil, nil
	case domain.StateCompleted:
		return nil, m.violation(e)
	}
	m.gen++
	m.rearmSeq++
	m.state = domain.StateError
	m.phase = domain.PhaseNone
	m.recoverable = true
	m.persisting = false
	msg := "面试出现异常，请重试"
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err.Error())
	}
	return []Effect{
		StopSpeaking{},
		StopCapture{},
		ShowError{Message: msg, Recoverable: true},
		m.notify(),
	}, nil
}

// retry 只能从可以恢复的错误重新开始，之前的面试记录全部丢弃
func (m *Machine) retry() []Effect {
	if m.state != domain.StateError || !m.recoverable {
		return nil
	}
	m.reset()
	return []Effect{m.notify()}
}

func (m *Machine) abandon() []Effect {
	if m.state.IsTerminal() {
		return nil
	}
	m.reset()
	return []Effect{StopSpeaking{}, StopCapture{}, m.notify()}
}

func (m *Machine) reset() {
	m.gen++
	m.rearmSeq++
	m.state = domain.StateNotStarted
	m.phase = domain.PhaseNone
	m.recoverable = false
	m.persisting = false
	m.transcript = nil
}

func (m *Machine) inPhase(p domain.Phase) bool {
	return m.state == domain.StateInProgress && m.phase == p
}

func (m *Machine) stale(gen uint64) bool {
	return gen != m.gen
}

func (m *Machine) violation(evt Event) error {
	return fmt.Errorf("%w: 状态 %s/%s 收到了 %s", ErrProtocolViolation, m.state, m.phase, evt.name())
}

func (m *Machine) appendTurn(speaker domain.Speaker, text string) Effect {
	turn := domain.Turn{Speaker: speaker, Text: text, Timestamp: m.now().UnixMilli()}
	m.transcript = append(m.transcript, turn)
	return AppendTurn{Turn: turn}
}

func (m *Machine) notify() Effect {
	return Notify{Snapshot: m.Snapshot()}
}
