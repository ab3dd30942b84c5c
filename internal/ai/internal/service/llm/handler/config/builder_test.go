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

package config

import (
	"context"
	"testing"

	"github.com/ecodeclub/hireflow/internal/ai/internal/domain"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler"
	hdlmocks "github.com/ecodeclub/hireflow/internal/ai/internal/service/llm/handler/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeConfigRepo struct {
	cfg domain.BizConfig
}

func (f fakeConfigRepo) GetConfig(ctx context.Context, biz string) (domain.BizConfig, error) {
	return f.cfg, nil
}

func (f fakeConfigRepo) InitConfig(ctx context.Context, cfg domain.BizConfig) error {
	return nil
}

func TestHandlerBuilder_Next(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     domain.BizConfig
		input   string
		mock    func(ctrl *gomock.Controller) handler.Handler
		wantErr error
	}{
		{
			name:  "填充配置",
			cfg:   domain.BizConfig{Biz: domain.BizResumeMatch, Model: "qwen-plus", MaxInput: 10},
			input: "简历",
			mock: func(ctrl *gomock.Controller) handler.Handler {
				h := hdlmocks.NewMockHandler(ctrl)
				h.EXPECT().Handle(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
						assert.Equal(t, "qwen-plus", req.Config.Model)
						return domain.LLMResponse{Answer: "ok"}, nil
					})
				return h
			},
		},
		{
			name:  "输入超长",
			cfg:   domain.BizConfig{Biz: domain.BizResumeMatch, MaxInput: 3},
			input: "一份很长的简历",
			mock: func(ctrl *gomock.Controller) handler.Handler {
				return hdlmocks.NewMockHandler(ctrl)
			},
			wantErr: ErrInputTooLong,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			h := NewBuilder(fakeConfigRepo{cfg: tc.cfg}).Next(tc.mock(ctrl))
			_, err := h.Handle(context.Background(), domain.LLMRequest{
				Biz:      domain.BizResumeMatch,
				Messages: []domain.Message{{Role: domain.RoleUser, Content: tc.input}},
			})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
