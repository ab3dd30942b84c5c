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

package domain

// State 面试会话的状态
type State string

const (
	StateNotStarted State = "not_started"
	StateStarting   State = "starting"
	StateInProgress State = "in_progress"
	StateFinished   State = "finished"
	StateGrading    State = "grading"
	StateCompleted  State = "completed"
	StateError      State = "error"
)

func (s State) String() string {
	return string(s)
}

// IsTerminal 完成之后不会再有任何变化
func (s State) IsTerminal() bool {
	return s == StateCompleted
}

// Phase 面试进行中的轮次阶段，同一时刻只会处于其中一个
type Phase string

const (
	PhaseNone Phase = ""
	// PhaseAISpeaking 正在播放 AI 的语音，不采集候选人的声音
	PhaseAISpeaking Phase = "ai_speaking"
	PhaseListening  Phase = "listening"
	// PhaseIdle 语音采集已经停止，等待自动重新开启或者候选人手动开启
	PhaseIdle Phase = "idle"
	// PhaseAwaitingReply 候选人的回答已经发出，等待 AI 回复
	PhaseAwaitingReply Phase = "awaiting_reply"
)

func (p Phase) String() string {
	return string(p)
}

type Speaker string

const (
	SpeakerAI        Speaker = "ai"
	SpeakerCandidate Speaker = "candidate"
	SpeakerProtocol  Speaker = "protocol"
)

// Turn 面试记录里面的一条，只会追加
type Turn struct {
	Speaker   Speaker
	Text      string
	Timestamp int64
}

type Evaluation struct {
	OverallScore         float64
	Strengths            []string
	Weaknesses           []string
	HiringRecommendation string
}

// Result 评分完成之后需要保存到投递上的结果
type Result struct {
	SessionID   string
	Transcript  []Turn
	Evaluation  Evaluation
	CompletedAt int64
}

// Snapshot 会话当前的状态，推送给客户端
type Snapshot struct {
	SessionID string
	State     State
	Phase     Phase
	// 只有 State 为 error 的时候才有意义
	Recoverable bool
	Turns       int
}
