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

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeWeightedScore(t *testing.T) {
	defaultWeights := Weights{Resume: 40, Quiz: 30, Interview: 30}
	testCases := []struct {
		name    string
		scores  Scores
		weights Weights
		want    int
	}{
		{
			name:    "没有任何结果",
			weights: defaultWeights,
			want:    0,
		},
		{
			name:    "只有简历分_按已用权重归一化",
			scores:  Scores{Resume: Known(80)},
			weights: defaultWeights,
			want:    80,
		},
		{
			name:    "简历和测验",
			scores:  Scores{Resume: Known(80), Quiz: Known(60)},
			weights: defaultWeights,
			// (80*40 + 60*30) / 70 = 71.43
			want: 71,
		},
		{
			name:    "三个阶段都有结果",
			scores:  Scores{Resume: Known(80), Quiz: Known(60), Interview: Known(90)},
			weights: defaultWeights,
			want:    77,
		},
		{
			name:    "半数向上取整",
			scores:  Scores{Resume: Known(85), Quiz: Known(90), Interview: Known(75)},
			weights: defaultWeights,
			want:    84,
		},
		{
			name:    "权重全为0",
			scores:  Scores{Resume: Known(85), Quiz: Known(90), Interview: Known(75)},
			weights: Weights{},
			want:    0,
		},
		{
			name:    "已知阶段权重为0_不参与计算",
			scores:  Scores{Resume: Known(100), Quiz: Known(20)},
			weights: Weights{Resume: 0, Quiz: 50, Interview: 50},
			want:    20,
		},
		{
			name:    "权重之和超过100_依旧落在0到100之间",
			scores:  Scores{Resume: Known(100), Quiz: Known(100), Interview: Known(100)},
			weights: Weights{Resume: 50, Quiz: 50, Interview: 50},
			want:    100,
		},
		{
			name:    "分数越界会被截断",
			scores:  Scores{Resume: Known(150), Quiz: Known(-20)},
			weights: Weights{Resume: 50, Quiz: 50},
			want:    50,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeWeightedScore(tc.scores, tc.weights))
		})
	}
}

func TestComputeWeightedScore_RangeAndMonotonic(t *testing.T) {
	weightGrid := []Weights{
		{40, 30, 30},
		{100, 0, 0},
		{10, 10, 10},
		{60, 60, 60},
		{0, 0, 0},
		{33, 33, 33},
	}
	values := []float64{0, 1, 33.3, 49.5, 50, 69, 70, 99.5, 100}
	for _, w := range weightGrid {
		for _, r := range values {
			for _, q := range values {
				prev := -1
				for _, i := range values {
					got := ComputeWeightedScore(Scores{
						Resume:    Known(r),
						Quiz:      Known(q),
						Interview: Known(i),
					}, w)
					assert.GreaterOrEqual(t, got, MinScore)
					assert.LessOrEqual(t, got, MaxScore)
					// 固定其他阶段，面试分越高总分不会下降
					assert.GreaterOrEqual(t, got, prev)
					prev = got
				}
			}
		}
	}
}

func TestResumeScore(t *testing.T) {
	assert.Equal(t, Known(88), ResumeScore(Known(88), Known(60)))
	assert.Equal(t, Known(60), ResumeScore(Unknown(), Known(60)))
	assert.Equal(t, Unknown(), ResumeScore(Unknown(), Unknown()))
}

func TestWeights_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		weights Weights
		wantErr error
	}{
		{
			name:    "和为100",
			weights: Weights{Resume: 40, Quiz: 30, Interview: 30},
		},
		{
			name:    "和不为100",
			weights: Weights{Resume: 40, Quiz: 40, Interview: 30},
			wantErr: ErrWeightsNotHundred,
		},
		{
			name:    "负数",
			weights: Weights{Resume: -10, Quiz: 80, Interview: 30},
			wantErr: ErrNegativeWeight,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.weights.Validate(), tc.wantErr)
		})
	}
}
