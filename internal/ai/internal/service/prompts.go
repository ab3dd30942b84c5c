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
	_ "embed"

	"github.com/ecodeclub/hireflow/internal/ai/internal/domain"
)

var (
	//go:embed prompts/resume_match.md
	resumeMatchPrompt string
	//go:embed prompts/quiz_generate.md
	quizGeneratePrompt string
	//go:embed prompts/interview_brain.md
	interviewBrainPrompt string
	//go:embed prompts/interview_grading.md
	interviewGradingPrompt string
)

// DefaultConfigs 各个业务的默认配置，启动的时候写入数据库，已经存在的不会覆盖
func DefaultConfigs(model string, price int64) []domain.BizConfig {
	return []domain.BizConfig{
		{
			Biz:          domain.BizResumeMatch,
			Model:        model,
			Price:        price,
			Temperature:  0.2,
			SystemPrompt: resumeMatchPrompt,
			MaxInput:     20000,
		},
		{
			Biz:          domain.BizQuizGenerate,
			Model:        model,
			Price:        price,
			Temperature:  0.7,
			SystemPrompt: quizGeneratePrompt,
			MaxInput:     10000,
		},
		{
			Biz:          domain.BizInterviewBrain,
			Model:        model,
			Price:        price,
			Temperature:  0.6,
			SystemPrompt: interviewBrainPrompt,
		},
		{
			Biz:          domain.BizInterviewGrader,
			Model:        model,
			Price:        price,
			Temperature:  0.2,
			SystemPrompt: interviewGradingPrompt,
		},
	}
}
