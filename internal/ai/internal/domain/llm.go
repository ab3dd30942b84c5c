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

const (
	BizResumeMatch     = "resume_match"
	BizQuizGenerate    = "quiz_generate"
	BizInterviewBrain  = "interview_brain"
	BizInterviewGrader = "interview_grading"
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

type LLMRequest struct {
	Biz string
	Uid int64
	// 请求id
	Tid string
	// 多轮对话的全部消息，不包含系统 prompt，系统 prompt 在 Config 里面
	Messages []Message
	// 业务相关的配置，由 config handler 填充
	Config BizConfig
}

// Input 最后一条用户消息，用于记录
func (req LLMRequest) Input() string {
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == RoleUser {
			return req.Messages[i].Content
		}
	}
	return ""
}

type LLMResponse struct {
	// 花费的token
	Tokens int64
	// 花费的金额，分
	Amount int64
	// llm 的回答
	Answer string
}

type BizConfig struct {
	Biz string
	// 使用的模型
	Model string
	// 多少分钱/1000 token
	Price       int64
	Temperature float64
	// 系统 Prompt
	SystemPrompt string
	// 允许的最长输入，简单约束一下字符串长度
	MaxInput int
}

type LLMRecord struct {
	Id     int64
	Tid    string
	Uid    int64
	Biz    string
	Tokens int64
	Amount int64
	Input  string
	Status RecordStatus
	Answer string
	Ctime  int64
	Utime  int64
}

type RecordStatus uint8

func (g RecordStatus) ToUint8() uint8 {
	return uint8(g)
}

const (
	RecordStatusProcessing RecordStatus = 0
	RecordStatusSuccess    RecordStatus = 1
	RecordStatusFailed     RecordStatus = 2
)
