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

	"github.com/ecodeclub/hireflow/internal/ai/internal/domain"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm"
	"github.com/lithammer/shortuuid/v4"
)

const defaultQuestionCount = 10

//go:generate mockgen -source=./quiz.go -destination=../../mocks/quiz.mock.go -package=aimocks QuizGenerator
type QuizGenerator interface {
	Generate(ctx context.Context, uid int64, jobSpec string, questionCount int) (domain.Quiz, error)
}

type quizGenerator struct {
	svc llm.Service
}

func NewQuizGenerator(svc llm.Service) QuizGenerator {
	return &quizGenerator{svc: svc}
}

func (q *quizGenerator) Generate(ctx context.Context, uid int64, jobSpec string, questionCount int) (domain.Quiz, error) {
	if questionCount <= 0 {
		questionCount = defaultQuestionCount
	}
	resp, err := q.svc.Invoke(ctx, domain.LLMRequest{
		Biz: domain.BizQuizGenerate,
		Uid: uid,
		Tid: shortuuid.New(),
		Messages: []domain.Message{
			{
				Role:    domain.RoleUser,
				Content: fmt.Sprintf("题目数量：%d\n\n岗位：\n%s", questionCount, jobSpec),
			},
		},
	})
	if err != nil {
		return domain.Quiz{}, err
	}
	var quiz domain.Quiz
	if err = decodeAnswer(resp.Answer, &quiz, "questions"); err != nil {
		return domain.Quiz{}, err
	}
	if err = quiz.Validate(questionCount); err != nil {
		return domain.Quiz{}, err
	}
	if quiz.ID == "" {
		quiz.ID = shortuuid.New()
	}
	if quiz.Metadata == nil {
		quiz.Metadata = map[string]any{}
	}
	quiz.Metadata["questionCount"] = questionCount
	return quiz, nil
}
