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

import "fmt"

// BrainContext 开始一场 AI 面试需要的上下文
type BrainContext struct {
	Uid       int64
	SessionID string
	// 岗位信息，JSON
	JobJSON string
	// 简历信息，JSON
	ResumeJSON string
}

// Reply 面试官的一次回复
type Reply struct {
	Message    string `json:"message"`
	IsFinished bool   `json:"isFinished"`
}

type Evaluation struct {
	OverallScore         float64  `json:"overallScore"`
	Strengths            []string `json:"strengths"`
	Weaknesses           []string `json:"weaknesses"`
	HiringRecommendation string   `json:"hiringRecommendation"`
}

func (e Evaluation) Validate() error {
	if e.OverallScore < 0 || e.OverallScore > 100 {
		return fmt.Errorf("%w: overallScore=%v 超出范围", ErrInvalidAnswer, e.OverallScore)
	}
	if e.HiringRecommendation == "" {
		return fmt.Errorf("%w: 缺少 hiringRecommendation", ErrInvalidAnswer)
	}
	return nil
}
