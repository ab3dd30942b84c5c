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

import "errors"

var ErrInvalidStep = errors.New("进度的步骤不合法")

// Progress 候选人在某个岗位上的答题进度，只是为了刷新页面之后可以继续，投递本身才是准确的状态
type Progress struct {
	Uid   int64
	JobID int64
	// resume, quiz 或者 interview，和投递的阶段一一对应
	CurrentStep string
	// 题目下标 => 答案
	Answers map[int]string
	// 剩余时间，秒
	TimeLeft  int64
	Completed bool
	// 面试阶段才有
	SessionID string
	Utime     int64
}

// Affordance 岗位页面上应该展示的按钮
type Affordance string

const (
	AffordanceApply  Affordance = "apply"
	AffordanceResume Affordance = "resume"
	AffordanceView   Affordance = "view"
)

func (a Affordance) String() string {
	return string(a)
}

// AffordanceFor 没有投递的只能投递，投递结束了只能查看，其余的都是继续
func AffordanceFor(applied, terminal bool) Affordance {
	switch {
	case !applied:
		return AffordanceApply
	case terminal:
		return AffordanceView
	default:
		return AffordanceResume
	}
}
