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

package web

import (
	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	"github.com/ecodeclub/hireflow/internal/interview/internal/service/protocol"
)

const (
	FrameState        = "state"
	FrameSpeak        = "speak"
	FrameStopSpeaking = "stop_speaking"
	FrameStartCapture = "start_capture"
	FrameStopCapture  = "stop_capture"
	FrameInterim      = "interim"
	FrameTurn         = "turn"
	FrameError        = "error"
)

// Frame 推送给客户端的消息
type Frame struct {
	Type        string    `json:"type"`
	Text        string    `json:"text,omitempty"`
	Recoverable bool      `json:"recoverable,omitempty"`
	Turn        *Turn     `json:"turn,omitempty"`
	State       *Snapshot `json:"state,omitempty"`
}

type Turn struct {
	Speaker   string `json:"speaker"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

type Snapshot struct {
	SessionID   string `json:"sessionId"`
	State       string `json:"state"`
	Phase       string `json:"phase,omitempty"`
	Recoverable bool   `json:"recoverable"`
	Turns       int    `json:"turns"`
}

func newSnapshot(s domain.Snapshot) *Snapshot {
	return &Snapshot{
		SessionID:   s.SessionID,
		State:       s.State.String(),
		Phase:       s.Phase.String(),
		Recoverable: s.Recoverable,
		Turns:       s.Turns,
	}
}

// ClientFrame 客户端发过来的消息，Text 只有语音识别的结果才有
type ClientFrame struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Event 不认识的消息返回 false
func (f ClientFrame) Event() (protocol.Event, bool) {
	switch f.Type {
	case "start":
		return protocol.Start{}, true
	case "unsupported":
		return protocol.Unsupported{}, true
	case "playback_ended":
		return protocol.PlaybackEnded{}, true
	case "speech_interim":
		return protocol.SpeechInterim{Text: f.Text}, true
	case "speech_final":
		return protocol.SpeechFinal{Text: f.Text}, true
	case "capture_ended":
		return protocol.CaptureEnded{}, true
	case "manual_start":
		return protocol.ManualStart{}, true
	case "manual_stop":
		return protocol.ManualStop{}, true
	case "retry":
		return protocol.Retry{}, true
	case "abandon":
		return protocol.Abandon{}, true
	}
	return nil, false
}

type LiveReq struct {
	Aid int64 `form:"aid"`
}

type SessionReq struct {
	SessionID string `json:"sessionId"`
}

type RecordsReq struct {
	Aid int64 `json:"aid"`
}

type Record struct {
	SessionID string `json:"sessionId"`
	Aid       int64  `json:"aid"`
	Outcome   string `json:"outcome"`
	Turns     int    `json:"turns"`
	Stime     int64  `json:"stime"`
	Etime     int64  `json:"etime"`
}
