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

package ai

import (
	"github.com/ecodeclub/hireflow/internal/ai/internal/domain"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm"
)

type LLMRequest = domain.LLMRequest
type LLMResponse = domain.LLMResponse
type LLMService = llm.Service

type ResumeMatcher = service.ResumeMatcher
type MatchResult = domain.MatchResult
type PassFail = domain.PassFail
type PassFailStatus = domain.PassFailStatus

const (
	StatusPass = domain.StatusPass
	StatusFail = domain.StatusFail
)

type QuizGenerator = service.QuizGenerator
type Quiz = domain.Quiz
type QuizQuestion = domain.QuizQuestion

type Brain = service.Brain
type Conversation = service.Conversation
type BrainContext = domain.BrainContext
type Reply = domain.Reply
type Evaluation = domain.Evaluation

var ErrInvalidAnswer = domain.ErrInvalidAnswer
