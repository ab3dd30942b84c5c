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
	"testing"

	"github.com/ecodeclub/hireflow/internal/pkg/scoring"
	"github.com/stretchr/testify/assert"
)

func TestQuiz_Public(t *testing.T) {
	q := Quiz{
		ID: "quiz",
		Questions: []Question{
			{Question: "1+1", Options: []string{"1", "2"}, CorrectAnswer: "2"},
		},
	}
	pub := q.Public()
	assert.Equal(t, []Question{{Question: "1+1", Options: []string{"1", "2"}}}, pub.Questions)
	// 原来的题目不受影响
	assert.Equal(t, "2", q.Questions[0].CorrectAnswer)
}

func TestJob_ConfigWarning(t *testing.T) {
	assert.Empty(t, Job{Weights: DefaultWeights}.ConfigWarning())
	assert.NotEmpty(t, Job{Weights: scoring.Weights{Resume: 50, Quiz: 30, Interview: 30}}.ConfigWarning())
}
