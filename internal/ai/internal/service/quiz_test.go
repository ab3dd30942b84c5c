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
	"testing"

	"github.com/ecodeclub/hireflow/internal/ai/internal/domain"
	"github.com/ecodeclub/hireflow/internal/ai/internal/service"
	aimocks "github.com/ecodeclub/hireflow/internal/ai/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQuizGenerator_Generate(t *testing.T) {
	testCases := []struct {
		name    string
		answer  string
		count   int
		wantErr error
		assert  func(t *testing.T, quiz domain.Quiz)
	}{
		{
			name:   "生成成功",
			count:  2,
			answer: `{"metadata":{"difficulty":"easy"},"questions":[{"question":"1+1","options":["1","2"],"correctAnswer":"2"},{"question":"2+2","options":["4","5"],"correctAnswer":"4"}]}`,
			assert: func(t *testing.T, quiz domain.Quiz) {
				assert.NotEmpty(t, quiz.ID)
				assert.Len(t, quiz.Questions, 2)
				assert.Equal(t, "easy", quiz.Metadata["difficulty"])
				assert.Equal(t, 2, quiz.Metadata["questionCount"])
			},
		},
		{
			name:    "题目数量不对",
			count:   3,
			answer:  `{"questions":[{"question":"1+1","options":["1","2"],"correctAnswer":"2"}]}`,
			wantErr: domain.ErrInvalidAnswer,
		},
		{
			name:    "答案不在选项中",
			count:   1,
			answer:  `{"questions":[{"question":"1+1","options":["1","3"],"correctAnswer":"2"}]}`,
			wantErr: domain.ErrInvalidAnswer,
		},
		{
			name:    "没有题目",
			count:   1,
			answer:  `{"quizId":"abc"}`,
			wantErr: domain.ErrInvalidAnswer,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := aimocks.NewMockService(ctrl)
			svc.EXPECT().Invoke(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
					assert.Equal(t, domain.BizQuizGenerate, req.Biz)
					return domain.LLMResponse{Answer: tc.answer}, nil
				})
			quiz, err := service.NewQuizGenerator(svc).Generate(context.Background(), 1, "Go 开发", tc.count)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			require.NotNil(t, tc.assert)
			tc.assert(t, quiz)
		})
	}
}
