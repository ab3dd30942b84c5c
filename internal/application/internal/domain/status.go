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

// Status 投递的业务状态，阶段流转和招聘方的人工处理都会修改
type Status string

const (
	StatusApplied     Status = "applied"
	StatusScreening   Status = "screening"
	StatusQualified   Status = "qualified"
	StatusUnderReview Status = "under_review"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
	StatusAccepted    Status = "accepted"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusApplied, StatusScreening, StatusQualified, StatusUnderReview,
		StatusShortlisted, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// IsOverride 招聘方只能手动设置这几个状态
func (s Status) IsOverride() bool {
	return s == StatusShortlisted || s == StatusAccepted || s == StatusRejected
}

func (s Status) String() string {
	return string(s)
}

// Stage 投递所处的阶段，只会向前推进，测验不通过的时候直接进入 rejected
type Stage string

const (
	StageResume    Stage = "resume"
	StageQuiz      Stage = "quiz"
	StageInterview Stage = "interview"
	StageCompleted Stage = "completed"
	StageRejected  Stage = "rejected"
)

func (s Stage) IsValid() bool {
	switch s {
	case StageResume, StageQuiz, StageInterview, StageCompleted, StageRejected:
		return true
	}
	return false
}

// IsTerminal 终态，不会再有任何阶段流转
func (s Stage) IsTerminal() bool {
	return s == StageCompleted || s == StageRejected
}

// Order 阶段的先后顺序，rejected 和 completed 一样都在最后
func (s Stage) Order() int {
	switch s {
	case StageResume:
		return 1
	case StageQuiz:
		return 2
	case StageInterview:
		return 3
	case StageCompleted, StageRejected:
		return 4
	}
	return 0
}

func (s Stage) String() string {
	return string(s)
}
