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

package application

import (
	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/event"
	"github.com/ecodeclub/hireflow/internal/application/internal/service"
)

type Application = domain.Application
type Status = domain.Status
type Stage = domain.Stage
type Outcome = domain.Outcome
type InterviewResult = domain.InterviewResult
type ResumeResult = domain.ResumeResult
type Turn = domain.Turn
type Speaker = domain.Speaker
type Evaluation = domain.Evaluation

type PipelineService = service.PipelineService
type ApplicationStageEvent = event.ApplicationStageEvent

const (
	StageResume    = domain.StageResume
	StageQuiz      = domain.StageQuiz
	StageInterview = domain.StageInterview
	StageCompleted = domain.StageCompleted
	StageRejected  = domain.StageRejected

	SpeakerAI        = domain.SpeakerAI
	SpeakerCandidate = domain.SpeakerCandidate
	SpeakerProtocol  = domain.SpeakerProtocol

	StageEventTopic = event.StageEventTopic
)

var (
	ErrApplicationNotFound = service.ErrApplicationNotFound
	ErrPermissionDenied    = service.ErrPermissionDenied
	ErrStageConflict       = service.ErrStageConflict
	ErrStageMismatch       = domain.ErrStageMismatch
	ErrInvalidResult       = domain.ErrInvalidResult
)
