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
	"fmt"
	"sync"

	"github.com/ecodeclub/hireflow/internal/ai/internal/domain"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm"
	"github.com/lithammer/shortuuid/v4"
)

const (
	startInstruction = "请根据岗位和简历开始面试，先做简单的开场白，再问第一个问题。"
	lastInstruction  = "（候选人已经回答了最后一个问题，请礼貌地结束面试，isFinished 必须为 true）"
	gradeInstruction = "面试已经结束，请根据以上全部对话给出评价。"
)

//go:generate mockgen -source=./brain.go -destination=../../mocks/brain.mock.go -package=aimocks Brain,Conversation
type Brain interface {
	// Start 开始一场面试，返回对话和开场白
	Start(ctx context.Context, bc domain.BrainContext) (Conversation, string, error)
}

// Conversation 一场面试的多轮对话，调用者需要保证同一时刻只有一个请求
type Conversation interface {
	Send(ctx context.Context, text string) (domain.Reply, error)
	Grade(ctx context.Context) (domain.Evaluation, error)
}

type brain struct {
	svc          llm.Service
	maxQuestions int
}

// NewBrain maxQuestions 是候选人最多回答的问题数，到达之后强制结束面试，<= 0 表示不限制
func NewBrain(svc llm.Service, maxQuestions int) Brain {
	return &brain{svc: svc, maxQuestions: maxQuestions}
}

func (b *brain) Start(ctx context.Context, bc domain.BrainContext) (Conversation, string, error) {
	conv := &conversation{
		svc:          b.svc,
		uid:          bc.Uid,
		maxQuestions: b.maxQuestions,
		history: []domain.Message{
			{
				Role: domain.RoleUser,
				Content: fmt.Sprintf("岗位信息：\n%s\n\n候选人简历：\n%s\n\n%s",
					bc.JobJSON, bc.ResumeJSON, startInstruction),
			},
		},
	}
	reply, err := conv.ask(ctx)
	if err != nil {
		return nil, "", err
	}
	return conv, reply.Message, nil
}

type conversation struct {
	mu           sync.Mutex
	svc          llm.Service
	uid          int64
	maxQuestions int
	answered     int
	history      []domain.Message
}

func (c *conversation) Send(ctx context.Context, text string) (domain.Reply, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	last := c.maxQuestions > 0 && c.answered+1 >= c.maxQuestions
	content := text
	if last {
		content = text + "\n" + lastInstruction
	}
	c.history = append(c.history, domain.Message{Role: domain.RoleUser, Content: content})
	reply, err := c.ask(ctx)
	if err != nil {
		// 失败的这一轮不进入上下文
		c.history = c.history[:len(c.history)-1]
		return domain.Reply{}, err
	}
	c.answered++
	if last {
		reply.IsFinished = true
	}
	return reply, nil
}

// ask 用当前的 history 请求面试官，成功的话把回复追加到 history
func (c *conversation) ask(ctx context.Context) (domain.Reply, error) {
	resp, err := c.svc.Invoke(ctx, domain.LLMRequest{
		Biz:      domain.BizInterviewBrain,
		Uid:      c.uid,
		Tid:      shortuuid.New(),
		Messages: c.history,
	})
	if err != nil {
		return domain.Reply{}, err
	}
	var reply domain.Reply
	if err = decodeAnswer(resp.Answer, &reply, "message", "isFinished"); err != nil {
		return domain.Reply{}, err
	}
	if reply.Message == "" {
		return domain.Reply{}, fmt.Errorf("%w: message 为空", domain.ErrInvalidAnswer)
	}
	c.history = append(c.history, domain.Message{Role: domain.RoleAssistant, Content: reply.Message})
	return reply, nil
}

func (c *conversation) Grade(ctx context.Context) (domain.Evaluation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	msgs := make([]domain.Message, 0, len(c.history)+1)
	msgs = append(msgs, c.history...)
	msgs = append(msgs, domain.Message{Role: domain.RoleUser, Content: gradeInstruction})
	resp, err := c.svc.Invoke(ctx, domain.LLMRequest{
		Biz:      domain.BizInterviewGrader,
		Uid:      c.uid,
		Tid:      shortuuid.New(),
		Messages: msgs,
	})
	if err != nil {
		return domain.Evaluation{}, err
	}
	var eval domain.Evaluation
	err = decodeAnswer(resp.Answer, &eval, "overallScore", "hiringRecommendation")
	if err != nil {
		return domain.Evaluation{}, err
	}
	if eval.Strengths == nil {
		eval.Strengths = []string{}
	}
	if eval.Weaknesses == nil {
		eval.Weaknesses = []string{}
	}
	return eval, eval.Validate()
}
