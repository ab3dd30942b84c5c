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

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/hireflow/internal/pkg/scoring"
)

var (
	// ErrStageMismatch 当前阶段不允许这个操作，例如重复提交测验
	ErrStageMismatch = errors.New("投递不在对应的阶段")
	// ErrOverrideNotAllowed 面试结果出来之前，招聘方不能调整状态
	ErrOverrideNotAllowed   = errors.New("面试完成之前不能调整投递状态")
	ErrInvalidOverrideState = errors.New("只能设置为 shortlisted、accepted 或者 rejected")
)

// Outcome 一次提交的业务结果，不通过不是错误
type Outcome uint8

const (
	OutcomeUnknown Outcome = iota
	// OutcomeAdvanced 进入下一个阶段
	OutcomeAdvanced
	// OutcomeRetryAllowed 简历不匹配，停留在当前阶段，可以换一份简历重新提交
	OutcomeRetryAllowed
	// OutcomeRejected 测验不通过，不能重试
	OutcomeRejected
	// OutcomeCompleted 面试完成，总分已经确定
	OutcomeCompleted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeRetryAllowed:
		return "retry_allowed"
	case OutcomeRejected:
		return "rejected"
	case OutcomeCompleted:
		return "completed"
	}
	return "unknown"
}

// Application 候选人对一个岗位的投递，同一个候选人对同一个岗位只有一条
type Application struct {
	ID    int64
	Uid   int64
	JobID int64

	Status Status
	Stage  Stage

	Resume    *ResumeResult
	Quiz      *QuizResult
	Interview *InterviewResult

	// 只有 Stage 为 completed 的时候才是最终分数，
	// 进行中的投递在查询的时候通过 WithLiveScore 填上估算值
	WeightedScore int
	CompletedAt   int64

	Ctime int64
	Utime int64
}

func NewApplication(uid, jobID int64) Application {
	return Application{
		Uid:    uid,
		JobID:  jobID,
		Status: StatusApplied,
		Stage:  StageResume,
	}
}

func (a Application) IsComplete() bool {
	return a.Stage == StageCompleted
}

// Scores 当前已知的各阶段分数
func (a Application) Scores() scoring.Scores {
	res := scoring.Scores{
		Resume:    scoring.Unknown(),
		Quiz:      scoring.Unknown(),
		Interview: scoring.Unknown(),
	}
	if a.Resume != nil {
		res.Resume = a.Resume.Score()
	}
	if a.Quiz != nil {
		res.Quiz = scoring.Known(float64(a.Quiz.Score))
	}
	if a.Interview != nil {
		res.Interview = scoring.Known(a.Interview.Evaluation.OverallScore)
	}
	return res
}

// LiveScore 完成之后返回固定下来的总分，否则按照当前已知的分数实时估算
func (a Application) LiveScore(weights scoring.Weights) int {
	if a.IsComplete() {
		return a.WeightedScore
	}
	return scoring.ComputeWeightedScore(a.Scores(), weights)
}

// WithLiveScore 返回给调用者查看的副本，进行中的投递带上实时估算的总分，和排名里面看到的一致。
// 不要把返回值写回数据库，写入的总分只能来自 CompleteInterview
func (a Application) WithLiveScore(weights scoring.Weights) Application {
	a.WeightedScore = a.LiveScore(weights)
	return a
}

func (a Application) expect(stage Stage) error {
	if a.Stage != stage {
		return fmt.Errorf("%w: 期望 %s，当前 %s", ErrStageMismatch, stage, a.Stage)
	}
	return nil
}

// SubmitResume 简历通过进入测验，不通过停留在简历阶段
func (a Application) SubmitResume(r ResumeResult) (Application, Outcome, error) {
	if err := a.expect(StageResume); err != nil {
		return a, OutcomeUnknown, err
	}
	if err := r.Validate(); err != nil {
		return a, OutcomeUnknown, err
	}
	a.Resume = &r
	if r.PassFail.Status == PassFailPass {
		a.Status = StatusScreening
		a.Stage = StageQuiz
		return a, OutcomeAdvanced, nil
	}
	return a, OutcomeRetryAllowed, nil
}

// SubmitQuiz 达到及格线进入面试，否则直接拒绝，测验只有一次机会
func (a Application) SubmitQuiz(r QuizResult, passingScore int) (Application, Outcome, error) {
	if err := a.expect(StageQuiz); err != nil {
		return a, OutcomeUnknown, err
	}
	if err := r.Validate(); err != nil {
		return a, OutcomeUnknown, err
	}
	a.Quiz = &r
	if r.Score >= passingScore {
		a.Status = StatusQualified
		a.Stage = StageInterview
		return a, OutcomeAdvanced, nil
	}
	a.Status = StatusRejected
	a.Stage = StageRejected
	return a, OutcomeRejected, nil
}

// CompleteInterview 保存面试结果并且固定总分
func (a Application) CompleteInterview(r InterviewResult, weights scoring.Weights, qualifyScore float64) (Application, Outcome, error) {
	if err := a.expect(StageInterview); err != nil {
		return a, OutcomeUnknown, err
	}
	if err := r.Validate(); err != nil {
		return a, OutcomeUnknown, err
	}
	a.Interview = &r
	a.Stage = StageCompleted
	if r.Evaluation.OverallScore >= qualifyScore {
		a.Status = StatusQualified
	} else {
		a.Status = StatusUnderReview
	}
	a.WeightedScore = scoring.ComputeWeightedScore(a.Scores(), weights)
	a.CompletedAt = r.CompletedAt
	return a, OutcomeCompleted, nil
}

// Override 招聘方调整状态，不改变阶段
func (a Application) Override(status Status) (Application, error) {
	if !status.IsOverride() {
		return a, fmt.Errorf("%w: %s", ErrInvalidOverrideState, status)
	}
	if a.Interview == nil {
		return a, ErrOverrideNotAllowed
	}
	a.Status = status
	return a, nil
}
