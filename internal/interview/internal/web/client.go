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
	"encoding/json"
	"time"

	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	"github.com/ecodeclub/hireflow/internal/interview/internal/service"
	"github.com/ecodeclub/hireflow/internal/interview/internal/service/protocol"
	"github.com/fasthttp/websocket"
	"github.com/gotomicro/ego/core/elog"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8 * 1024
	sendBufferSize = 256
)

var _ service.Client = &wsClient{}

// wsClient 把会话的动作转换成消息推送给浏览器。
// 所有方法只是把消息放进队列，真正的发送在 writePump 里面。
type wsClient struct {
	send   chan Frame
	logger *elog.Component
}

func newWSClient(logger *elog.Component) *wsClient {
	return &wsClient{
		send:   make(chan Frame, sendBufferSize),
		logger: logger,
	}
}

func (c *wsClient) enqueue(f Frame) {
	select {
	case c.send <- f:
	default:
		c.logger.Warn("客户端消息积压，丢弃消息", elog.String("type", f.Type))
	}
}

func (c *wsClient) Speak(text string) {
	c.enqueue(Frame{Type: FrameSpeak, Text: text})
}

func (c *wsClient) StopSpeaking() {
	c.enqueue(Frame{Type: FrameStopSpeaking})
}

func (c *wsClient) StartCapture() {
	c.enqueue(Frame{Type: FrameStartCapture})
}

func (c *wsClient) StopCapture() {
	c.enqueue(Frame{Type: FrameStopCapture})
}

func (c *wsClient) ShowInterim(text string) {
	c.enqueue(Frame{Type: FrameInterim, Text: text})
}

func (c *wsClient) AppendTurn(turn domain.Turn) {
	c.enqueue(Frame{Type: FrameTurn, Turn: &Turn{
		Speaker:   string(turn.Speaker),
		Text:      turn.Text,
		Timestamp: turn.Timestamp,
	}})
}

func (c *wsClient) ShowError(msg string, recoverable bool) {
	c.enqueue(Frame{Type: FrameError, Text: msg, Recoverable: recoverable})
}

func (c *wsClient) Notify(snapshot domain.Snapshot) {
	c.enqueue(Frame{Type: FrameState, State: newSnapshot(snapshot)})
}

// readPump 客户端断开等同于放弃面试
func (c *wsClient) readPump(conn *websocket.Conn, sess *service.Session) {
	defer func() {
		sess.Post(protocol.Abandon{})
		_ = conn.Close()
	}()
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("面试连接异常断开", elog.FieldErr(err))
			}
			return
		}
		var frame ClientFrame
		if err = json.Unmarshal(data, &frame); err != nil {
			c.logger.Warn("无法解析客户端消息", elog.FieldErr(err))
			continue
		}
		evt, ok := frame.Event()
		if !ok {
			c.logger.Warn("未知的客户端消息", elog.String("type", frame.Type))
			continue
		}
		sess.Post(evt)
	}
}

// writePump 会话结束之后把剩下的消息发完再关闭连接
func (c *wsClient) writePump(conn *websocket.Conn, sess *service.Session) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()
	for {
		select {
		case f := <-c.send:
			if err := c.write(conn, f); err != nil {
				return
			}
		case <-sess.Done():
			for n := len(c.send); n > 0; n-- {
				if err := c.write(conn, <-c.send); err != nil {
					return
				}
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, string(sess.Outcome())))
			return
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *wsClient) write(conn *websocket.Conn, f Frame) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	err := conn.WriteJSON(f)
	if err != nil {
		c.logger.Warn("推送面试消息失败", elog.String("type", f.Type), elog.FieldErr(err))
	}
	return err
}
