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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
)

type applicationPersister struct {
	svc application.PipelineService
}

// NewApplicationPersister 面试结果写到投递上，投递会因此进入 completed 阶段
func NewApplicationPersister(svc application.PipelineService) Persister {
	return &applicationPersister{svc: svc}
}

func (p *applicationPersister) Persist(ctx context.Context, uid, aid int64, r domain.Result) error {
	_, err := p.svc.CompleteInterview(ctx, uid, aid, application.InterviewResult{
		SessionID: r.SessionID,
		Transcript: slice.Map(r.Transcript, func(idx int, src domain.Turn) application.Turn {
			return application.Turn{
				Speaker:   application.Speaker(src.Speaker),
				Text:      src.Text,
				Timestamp: src.Timestamp,
			}
		}),
		Evaluation: application.Evaluation{
			OverallScore:         r.Evaluation.OverallScore,
			Strengths:            r.Evaluation.Strengths,
			Weaknesses:           r.Evaluation.Weaknesses,
			HiringRecommendation: r.Evaluation.HiringRecommendation,
		},
		CompletedAt: r.CompletedAt,
	})
	return err
}
