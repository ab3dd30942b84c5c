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

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/hireflow/internal/ai/internal/domain"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service"
	aimocks "github.com/ecodeclub/hireflow/internal/ai/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResumeMatcher_Match(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *aimocks.MockService
		wantRes domain.MatchResult
		wantErr error
	}{
		{
			name: "解析成功",
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
						assert.Equal(t, domain.BizResumeMatch, req.Biz)
						assert.Equal(t, int64(1), req.Uid)
						assert.NotEmpty(t, req.Tid)
						assert.Contains(t, req.Input(), "Go 开发")
						return domain.LLMResponse{Answer: "```json\n" + `{"matchScore":85,"skillMatchScore":90,"experienceMatchScore":80,"missingSkills":["k8s"],"passFail":{"status":"PASS","feedbackMessage":"不错"}}` + "\n```"}, nil
					})
				return svc
			},
			wantRes: domain.MatchResult{
				MatchScore:           85,
				SkillMatchScore:      90,
				ExperienceMatchScore: 80,
				MissingSkills:        []string{"k8s"},
				PassFail:             domain.PassFail{Status: domain.StatusPass, FeedbackMessage: "不错"},
			},
		},
		{
			name: "缺少分数字段",
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(domain.LLMResponse{Answer: `{"skillMatchScore":90,"experienceMatchScore":80,"passFail":{"status":"PASS"}}`}, nil)
				return svc
			},
			wantErr: domain.ErrInvalidAnswer,
		},
		{
			name: "状态不合法",
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(domain.LLMResponse{Answer: `{"matchScore":85,"skillMatchScore":90,"experienceMatchScore":80,"passFail":{"status":"MAYBE"}}`}, nil)
				return svc
			},
			wantErr: domain.ErrInvalidAnswer,
		},
		{
			name: "分数越界",
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(domain.LLMResponse{Answer: `{"matchScore":185,"skillMatchScore":90,"experienceMatchScore":80,"passFail":{"status":"PASS"}}`}, nil)
				return svc
			},
			wantErr: domain.ErrInvalidAnswer,
		},
		{
			name: "不是JSON",
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(domain.LLMResponse{Answer: "抱歉，我无法回答"}, nil)
				return svc
			},
			wantErr: domain.ErrInvalidAnswer,
		},
		{
			name: "大模型调用失败",
			mock: func(ctrl *gomock.Controller) *aimocks.MockService {
				svc := aimocks.NewMockService(ctrl)
				svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(domain.LLMResponse{}, errors.New("mock error"))
				return svc
			},
			wantErr: errors.New("mock error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			matcher := service.NewResumeMatcher(tc.mock(ctrl))
			res, err := matcher.Match(context.Background(), 1, "五年 Go 开发经验", "招聘 Go 开发")
			if tc.wantErr != nil {
				if errors.Is(tc.wantErr, domain.ErrInvalidAnswer) {
					assert.ErrorIs(t, err, tc.wantErr)
				} else {
					assert.Equal(t, tc.wantErr, err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
