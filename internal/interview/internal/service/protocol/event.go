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
	"time"

	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
)

// Event 驱动状态机的事件。
// 带 Gen 的事件是外部调用的结果，Gen 和状态机当前的代数不一致说明会话已经重置过，直接丢弃。
type Event interface {
	name() string
}

// Start 候选人开始面试
type Start struct{}

// Unsupported 客户端不支持语音识别，面试无法开始
type Unsupported struct{}

// BrainStarted 面试官给出了开场白
type BrainStarted struct {
	Gen      uint64
	Greeting string
}

// PlaybackEnded AI 的语音播放完毕
type PlaybackEnded struct{}

// SpeechInterim 语音识别的中间结果，随时会被修正
type SpeechInterim struct {
	Text string
}

// SpeechFinal 一段话说完之后的最终结果
type SpeechFinal struct {
	Text string
}

// CaptureEnded 语音识别自己停止了，一般是引擎超时
type CaptureEnded struct{}

// Rearm 延迟之后重新开启语音识别
type Rearm struct {
	Seq uint64
}

type ManualStart struct{}

type ManualStop struct{}

// BrainReplied 面试官对候选人回答的回复
type BrainReplied struct {
	Gen        uint64
	Message    string
	IsFinished bool
}

type GradingDone struct {
	Gen        uint64
	Evaluation domain.Evaluation
}

type PersistDone struct {
	Gen uint64
}

// Failed 外部调用或者客户端出错
type Failed struct {
	Gen uint64
	Err error
}

// Retry 出错之后重新开始，之前的面试记录全部丢弃
type Retry struct{}

// Abandon 候选人离开面试，不保存任何结果
type Abandon struct{}

func (Start) name() string         { return "start" }
func (Unsupported) name() string   { return "unsupported" }
func (BrainStarted) name() string  { return "brain_started" }
func (PlaybackEnded) name() string { return "playback_ended" }
func (SpeechInterim) name() string { return "speech_interim" }
func (SpeechFinal) name() string   { return "speech_final" }
func (CaptureEnded) name() string  { return "capture_ended" }
func (Rearm) name() string         { return "rearm" }
func (ManualStart) name() string   { return "manual_start" }
func (ManualStop) name() string    { return "manual_stop" }
func (BrainReplied) name() string  { return "brain_replied" }
func (GradingDone) name() string   { return "grading_done" }
func (PersistDone) name() string   { return "persist_done" }
func (Failed) name() string        { return "failed" }
func (Retry) name() string         { return "retry" }
func (Abandon) name() string       { return "abandon" }

// Name 事件名称，日志用
func Name(evt Event) string {
	return evt.name()
}

// Effect 状态机要求执行的动作，由会话负责执行
type Effect interface {
	effect()
}

// CallBrainStart 调用面试官开始面试
type CallBrainStart struct {
	Gen uint64
}

// Speak 播放 AI 的语音
type Speak struct {
	Text string
}

type StopSpeaking struct{}

type StartCapture struct{}

type StopCapture struct{}

// ShowInterim 展示候选人正在说的内容，不会发送给面试官
type ShowInterim struct {
	Text string
}

// CallBrainSend 把候选人的回答发送给面试官
type CallBrainSend struct {
	Gen  uint64
	Text string
}

// ScheduleRearm 延迟之后投递 Rearm 事件
type ScheduleRearm struct {
	Seq   uint64
	Delay time.Duration
}

type CallGrading struct {
	Gen uint64
}

// Persist 保存面试结果
type Persist struct {
	Gen    uint64
	Result domain.Result
}

// Notify 状态发生了变化
type Notify struct {
	Snapshot domain.Snapshot
}

// AppendTurn 面试记录新增了一条
type AppendTurn struct {
	Turn domain.Turn
}

type ShowError struct {
	Message     string
	Recoverable bool
}

func (CallBrainStart) effect() {}
func (Speak) effect()          {}
func (StopSpeaking) effect()   {}
func (StartCapture) effect()   {}
func (StopCapture) effect()    {}
func (ShowInterim) effect()    {}
func (CallBrainSend) effect()  {}
func (ScheduleRearm) effect()  {}
func (CallGrading) effect()    {}
func (Persist) effect()        {}
func (Notify) effect()         {}
func (AppendTurn) effect()     {}
func (ShowError) effect()      {}
