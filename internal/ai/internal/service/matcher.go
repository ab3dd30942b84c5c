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

//go:generate mockgen -source=./matcher.go -destination=../../mocks/matcher.mock.go -package=aimocks ResumeMatcher
type ResumeMatcher interface {
	// Match 评估简历和岗位的匹配程度，返回的结果已经校验过
	Match(ctx context.Context, uid int64, resume, jobText string) (domain.MatchResult, error)
}

type resumeMatcher struct {
	svc llm.Service
}

func NewResumeMatcher(svc llm.Service) ResumeMatcher {
	return &resumeMatcher{svc: svc}
}

func (m *resumeMatcher) Match(ctx context.Context, uid int64, resume, jobText string) (domain.MatchResult, error) {
	resp, err := m.svc.Invoke(ctx, domain.LLMRequest{
		Biz: domain.BizResumeMatch,
		Uid: uid,
		Tid: shortuuid.New(),
		Messages: []domain.Message{
			{
				Role:    domain.RoleUser,
				Content: fmt.Sprintf("岗位描述：\n%s\n\n简历：\n%s", jobText, resume),
			},
		},
	})
	if err != nil {
		return domain.MatchResult{}, err
	}
	var res domain.MatchResult
	err = decodeAnswer(resp.Answer, &res,
		"matchScore", "skillMatchScore", "experienceMatchScore", "passFail")
	if err != nil {
		return domain.MatchResult{}, err
	}
	if res.MissingSkills == nil {
		res.MissingSkills = []string{}
	}
	return res, res.Validate()
}
