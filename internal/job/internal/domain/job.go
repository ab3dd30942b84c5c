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

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hireflow/internal/pkg/scoring"
)

// DefaultWeights 岗位没有配置权重的时候使用
var DefaultWeights = scoring.Weights{Resume: 40, Quiz: 30, Interview: 30}

var ErrQuizNotReady = errors.New("岗位还没有测验题目")

type Job struct {
	ID  int64
	Uid int64
	// 岗位名称
	Title        string
	Description  string
	Requirements string
	Weights      scoring.Weights
	Quiz         Quiz
	Ctime        int64
	Utime        int64
}

// Text 给简历匹配和出题用的岗位描述
func (j Job) Text() string {
	var sb strings.Builder
	sb.WriteString("岗位名称：")
	sb.WriteString(j.Title)
	if j.Description != "" {
		sb.WriteString("\n岗位职责：\n")
		sb.WriteString(j.Description)
	}
	if j.Requirements != "" {
		sb.WriteString("\n任职要求：\n")
		sb.WriteString(j.Requirements)
	}
	return sb.String()
}

// ConfigWarning 权重之和不为 100 的时候返回提示信息，分数依旧可以正常计算
func (j Job) ConfigWarning() string {
	err := j.Weights.Validate()
	if errors.Is(err, scoring.ErrWeightsNotHundred) {
		return fmt.Sprintf("简历、测验、面试的权重之和为 %d，不等于 100，总分会按已完成阶段的权重重新折算", j.Weights.Sum())
	}
	return ""
}

type Quiz struct {
	ID        string
	Metadata  map[string]any
	Questions []Question
}

func (q Quiz) IsReady() bool {
	return len(q.Questions) > 0
}

// Public 去掉正确答案，给候选人看的版本
func (q Quiz) Public() Quiz {
	return Quiz{
		ID:       q.ID,
		Metadata: q.Metadata,
		Questions: slice.Map(q.Questions, func(idx int, src Question) Question {
			return Question{
				Question: src.Question,
				Options:  src.Options,
			}
		}),
	}
}

type Question struct {
	Question      string
	Options       []string
	CorrectAnswer string
}

// JobStats 岗位的投递统计，由投递的阶段事件驱动
type JobStats struct {
	JobID     int64
	Applied   int64
	Completed int64
	Rejected  int64
	Utime     int64
}
