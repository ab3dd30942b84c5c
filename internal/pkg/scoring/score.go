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

// Package scoring 计算候选人的加权总分。
// 所有展示分数的地方都必须调用这里，保证同样的输入在任何地方得到同样的结果。
package scoring

import (
	"errors"
	"fmt"
	"math"
)

const (
	MinScore = 0
	MaxScore = 100

	// FullWeight 权重之和的期望值
	FullWeight = 100
)

var (
	// ErrWeightsNotHundred 权重之和不是 100。
	// 计算时会按已完成阶段的权重重新归一化，所以不会算错，但是要提醒岗位的发布者。
	ErrWeightsNotHundred = errors.New("阶段权重之和不等于100")
	ErrNegativeWeight    = errors.New("阶段权重不能为负数")
)

// Score 某个阶段的分数，Known 为 false 说明这个阶段还没有结果
type Score struct {
	Value float64
	Known bool
}

func Known(v float64) Score {
	return Score{Value: v, Known: true}
}

func Unknown() Score {
	return Score{}
}

// Weights 岗位配置的三个阶段的权重
type Weights struct {
	Resume    int `json:"resume"`
	Quiz      int `json:"quiz"`
	Interview int `json:"interview"`
}

func (w Weights) Sum() int {
	return w.Resume + w.Quiz + w.Interview
}

// Validate 负数权重直接拒绝，和不为 100 的返回 ErrWeightsNotHundred，调用者自己决定是否容忍
func (w Weights) Validate() error {
	if w.Resume < 0 || w.Quiz < 0 || w.Interview < 0 {
		return fmt.Errorf("%w: resume=%d quiz=%d interview=%d", ErrNegativeWeight, w.Resume, w.Quiz, w.Interview)
	}
	if w.Sum() != FullWeight {
		return fmt.Errorf("%w: 当前为 %d", ErrWeightsNotHundred, w.Sum())
	}
	return nil
}

// Scores 三个阶段目前已知的分数
type Scores struct {
	Resume    Score
	Quiz      Score
	Interview Score
}

// ResumeScore 优先使用详细的匹配分，没有的话才退回到老的筛选分，两者不会叠加
func ResumeScore(detailed, legacy Score) Score {
	if detailed.Known {
		return detailed
	}
	return legacy
}

// ComputeWeightedScore 计算 0-100 的加权总分。
// 只有已知的阶段参与计算，参与计算的权重之和不为 100 的时候按比例放大或缩小，
// 这样还没走完流程的候选人不会因为后面阶段的权重被拉低分数。
func ComputeWeightedScore(scores Scores, weights Weights) int {
	// weighted 是 score*weight 的累加，相当于 contribution*100，
	// 最后只做一次除法，避免 83.5 这种边界值被浮点误差舍入成 83
	var weighted float64
	applied := 0
	add := func(s Score, weight int) {
		if !s.Known || weight <= 0 {
			return
		}
		weighted += clamp(s.Value) * float64(weight)
		applied += weight
	}
	add(scores.Resume, weights.Resume)
	add(scores.Quiz, weights.Quiz)
	add(scores.Interview, weights.Interview)

	if applied == 0 {
		return MinScore
	}
	// applied == 100 时等价于不做归一化
	total := weighted / float64(applied)
	return int(clamp(math.Round(total)))
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}
