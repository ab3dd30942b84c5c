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
	"time"

	"github.com/ecodeclub/hireflow/internal/ai"
	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	"github.com/ecodeclub/hireflow/internal/interview/internal/service/protocol"
	"github.com/gotomicro/ego/core/elog"
)

var errNoConversation = errors.New("面试官还没有开始面试")

// Client 候选人那一端，负责播放语音、语音识别和展示。
// 所有方法都不能阻塞太久，会话的事件循环会直接调用它们。
type Client interface {
	Speak(text string)
	StopSpeaking()
	StartCapture()
	StopCapture()
	ShowInterim(text string)
	AppendTurn(turn domain.Turn)
	ShowError(msg string, recoverable bool)
	Notify(snapshot domain.Snapshot)
}

// Persister 保存面试结果
type Persister interface {
	Persist(ctx context.Context, uid, aid int64, r domain.Result) error
}

type SessionConfig struct {
	RearmDelay time.Duration
	// 每一次调用面试官、评分或者保存的超时时间
	CallTimeout time.Duration
}

type envelope struct {
	evt protocol.Event
	// 只有 BrainStarted 会带上
	conv ai.Conversation
}

// Session 一场正在进行的 AI 面试。
// 所有事件都在同一个 goroutine 里面处理，外部调用异步执行，结果作为事件投递回来。
type Session struct {
	id  string
	uid int64
	aid int64
	bc  ai.BrainContext

	brain     ai.Brain
	persister Persister
	client    Client
	cfg       SessionConfig

	machine *protocol.Machine
	// 只在事件循环里面读写
	conv ai.Conversation

	events chan envelope
	ctx    context.Context
	cancel context.CancelFunc

	once    sync.Once
	outcome domain.Outcome
	onDone  func(s *Session, outcome domain.Outcome, turns int)
	logger  *elog.Component
}

func newSession(bc ai.BrainContext, aid int64,
	brain ai.Brain, persister Persister, client Client,
	cfg SessionConfig, onDone func(s *Session, outcome domain.Outcome, turns int)) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		id:        bc.SessionID,
		uid:       bc.Uid,
		aid:       aid,
		bc:        bc,
		brain:     brain,
		persister: persister,
		client:    client,
		cfg:       cfg,
		machine:   protocol.NewMachine(bc.SessionID, cfg.RearmDelay, time.Now),
		events:    make(chan envelope, 16),
		ctx:       ctx,
		cancel:    cancel,
		onDone:    onDone,
		logger: elog.DefaultLogger.With(elog.FieldComponent("interview"),
			elog.String("sessionId", bc.SessionID)),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Uid() int64 {
	return s.uid
}

func (s *Session) Aid() int64 {
	return s.aid
}

// Done 会话结束之后关闭
func (s *Session) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Outcome 会话结束之后才有意义
func (s *Session) Outcome() domain.Outcome {
	<-s.ctx.Done()
	return s.outcome
}

// Post 投递一个事件，会话已经结束的话直接丢弃
func (s *Session) Post(evt protocol.Event) {
	s.post(envelope{evt: evt})
}

func (s *Session) post(env envelope) {
	select {
	case s.events <- env:
	case <-s.ctx.Done():
	}
}

func (s *Session) run() {
	activeSessions.Inc()
	defer activeSessions.Dec()
	for {
		select {
		case <-s.ctx.Done():
			return
		case env := <-s.events:
			s.handle(env)
		}
	}
}

func (s *Session) handle(env envelope) {
	if bs, ok := env.evt.(protocol.BrainStarted); ok && bs.Gen == s.machine.Generation() {
		s.conv = env.conv
	}
	turns := s.machine.Snapshot().Turns
	effects, err := s.machine.Handle(env.evt)
	if err != nil {
		protocolViolations.Inc()
		s.logger.Error("面试协议被破坏",
			elog.String("event", protocol.Name(env.evt)),
			elog.String("state", s.machine.State().String()),
			elog.String("phase", s.machine.Phase().String()),
			elog.FieldErr(err))
		return
	}
	for _, eff := range effects {
		s.execute(eff)
	}

	snap := s.machine.Snapshot()
	if snap.State == domain.StateNotStarted {
		s.conv = nil
	}
	switch {
	case snap.State == domain.StateCompleted:
		s.finish(domain.OutcomeCompleted, snap.Turns)
	case snap.State == domain.StateError && !snap.Recoverable:
		s.finish(domain.OutcomeFailed, turns)
	}
	// 已经完成的会话收到 Abandon 也要退出事件循环，这个时候 finish 不会再执行
	if _, ok := env.evt.(protocol.Abandon); ok {
		s.finish(domain.OutcomeAbandoned, turns)
	}
}

func (s *Session) execute(eff protocol.Effect) {
	switch e := eff.(type) {
	case protocol.Speak:
		s.client.Speak(e.Text)
	case protocol.StopSpeaking:
		s.client.StopSpeaking()
	case protocol.StartCapture:
		s.client.StartCapture()
	case protocol.StopCapture:
		s.client.StopCapture()
	case protocol.ShowInterim:
		s.client.ShowInterim(e.Text)
	case protocol.AppendTurn:
		s.client.AppendTurn(e.Turn)
	case protocol.ShowError:
		s.client.ShowError(e.Message, e.Recoverable)
	case protocol.Notify:
		s.client.Notify(e.Snapshot)
	case protocol.ScheduleRearm:
		time.AfterFunc(e.Delay, func() {
			s.Post(protocol.Rearm{Seq: e.Seq})
		})
	case protocol.CallBrainStart:
		s.callBrainStart(e.Gen)
	case protocol.CallBrainSend:
		s.callBrainSend(e.Gen, e.Text)
	case protocol.CallGrading:
		s.callGrading(e.Gen)
	case protocol.Persist:
		s.callPersist(e.Gen, e.Result)
	}
}

func (s *Session) callBrainStart(gen uint64) {
	go func() {
		ctx, cancel := context.WithTimeout(s.ctx, s.cfg.CallTimeout)
		defer cancel()
		conv, greeting, err := s.brain.Start(ctx, s.bc)
		if err != nil {
			s.fail(gen, "开始面试失败", err)
			return
		}
		s.post(envelope{evt: protocol.BrainStarted{Gen: gen, Greeting: greeting}, conv: conv})
	}()
}

func (s *Session) callBrainSend(gen uint64, text string) {
	conv := s.conv
	go func() {
		if conv == nil {
			s.fail(gen, "发送回答失败", errNoConversation)
			return
		}
		ctx, cancel := context.WithTimeout(s.ctx, s.cfg.CallTimeout)
		defer cancel()
		reply, err := conv.Send(ctx, text)
		if err != nil {
			s.fail(gen, "发送回答失败", err)
			return
		}
		s.Post(protocol.BrainReplied{Gen: gen, Message: reply.Message, IsFinished: reply.IsFinished})
	}()
}

func (s *Session) callGrading(gen uint64) {
	conv := s.conv
	go func() {
		if conv == nil {
			s.fail(gen, "面试评分失败", errNoConversation)
			return
		}
		ctx, cancel := context.WithTimeout(s.ctx, s.cfg.CallTimeout)
		defer cancel()
		eval, err := conv.Grade(ctx)
		if err != nil {
			s.fail(gen, "面试评分失败", err)
			return
		}
		s.Post(protocol.GradingDone{Gen: gen, Evaluation: domain.Evaluation{
			OverallScore:         eval.OverallScore,
			Strengths:            eval.Strengths,
			Weaknesses:           eval.Weaknesses,
			HiringRecommendation: eval.HiringRecommendation,
		}})
	}()
}

func (s *Session) callPersist(gen uint64, r domain.Result) {
	go func() {
		ctx, cancel := context.WithTimeout(s.ctx, s.cfg.CallTimeout)
		defer cancel()
		if err := s.persister.Persist(ctx, s.uid, s.aid, r); err != nil {
			s.fail(gen, "保存面试结果失败", err)
			return
		}
		s.Post(protocol.PersistDone{Gen: gen})
	}()
}

func (s *Session) fail(gen uint64, msg string, err error) {
	if s.ctx.Err() != nil {
		return
	}
	s.logger.Error(msg, elog.Int64("aid", s.aid), elog.FieldErr(err))
	s.Post(protocol.Failed{Gen: gen, Err: err})
}

func (s *Session) finish(outcome domain.Outcome, turns int) {
	s.once.Do(func() {
		s.outcome = outcome
		sessionOutcomes.WithLabelValues(string(outcome)).Inc()
		s.cancel()
		if s.onDone != nil {
			s.onDone(s, outcome, turns)
		}
	})
}
