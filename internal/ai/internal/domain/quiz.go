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
	"fmt"
	"slices"
)

type Quiz struct {
	ID        string         `json:"quizId"`
	Metadata  map[string]any `json:"metadata"`
	Questions []QuizQuestion `json:"questions"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

func (q Quiz) Validate(questionCount int) error {
	if len(q.Questions) == 0 {
		return fmt.Errorf("%w: 没有题目", ErrInvalidAnswer)
	}
	if questionCount > 0 && len(q.Questions) != questionCount {
		return fmt.Errorf("%w: 期望 %d 道题，实际 %d 道", ErrInvalidAnswer, questionCount, len(q.Questions))
	}
	for i, question := range q.Questions {
		if question.Question == "" || len(question.Options) < 2 {
			return fmt.Errorf("%w: 第 %d 题缺少题干或选项", ErrInvalidAnswer, i+1)
		}
		if !slices.Contains(question.Options, question.CorrectAnswer) {
			return fmt.Errorf("%w: 第 %d 题的答案不在选项中", ErrInvalidAnswer, i+1)
		}
	}
	return nil
}
