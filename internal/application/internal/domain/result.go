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
	"math"

	"github.com/ecodeclub/hireflow/internal/pkg/scoring"
)

var ErrInvalidResult = errors.New("阶段结果不合法")

type PassFailStatus string

const (
	PassFailPass PassFailStatus = "PASS"
	PassFailFail PassFailStatus = "FAIL"
)

type PassFail struct {
	Status          PassFailStatus
	FeedbackMessage string
}

// ResumeResult 简历筛选的结果
type ResumeResult struct {
	MatchScore           float64
	SkillMatchScore      float64
	ExperienceMatchScore float64
	MissingSkills        []string
	PassFail             PassFail
	// 老的筛选流程只有一个分数，没有详细的匹配分
	LegacyScore *float64
	// 提交的简历内容，面试的时候要用
	ResumeText string
}

func (r ResumeResult) Validate() error {
	if r.PassFail.Status != PassFailPass && r.PassFail.Status != PassFailFail {
		return fmt.Errorf("%w: passFail.status=%q", ErrInvalidResult, r.PassFail.Status)
	}
	if !inRange(r.MatchScore) || !inRange(r.SkillMatchScore) || !inRange(r.ExperienceMatchScore) {
		return fmt.Errorf("%w: 简历匹配分超出范围", ErrInvalidResult)
	}
	return nil
}

// Score 优先使用详细的匹配分，老数据才会退回到筛选分
func (r ResumeResult) Score() scoring.Score {
	detailed := scoring.Unknown()
	if r.LegacyScore == nil || r.MatchScore > 0 {
		detailed = scoring.Known(r.MatchScore)
	}
	legacy := scoring.Unknown()
	if r.LegacyScore != nil {
		legacy = scoring.Known(*r.LegacyScore)
	}
	return scoring.ResumeScore(detailed, legacy)
}

type QuizQuestion struct {
	Question      string
	Options       []string
	CorrectAnswer string
}

type QuizAnswer struct {
	Question string
	Answer   string
	Correct  bool
}

type QuizResult struct {
	// 0-100
	Score          int
	TotalQuestions int
	Answers        []QuizAnswer
	CompletedAt    int64
}

func (r QuizResult) Validate() error {
	if r.TotalQuestions <= 0 {
		return fmt.Errorf("%w: 没有题目", ErrInvalidResult)
	}
	if r.Score < scoring.MinScore || r.Score > scoring.MaxScore {
		return fmt.Errorf("%w: 测验分数 %d 超出范围", ErrInvalidResult, r.Score)
	}
	return nil
}

// ScoreQuiz 逐题和正确答案完全匹配，得分为正确率的百分比并四舍五入。
// 没有作答的题目算错。
func ScoreQuiz(questions []QuizQuestion, answers []string, completedAt int64) QuizResult {
	res := QuizResult{
		TotalQuestions: len(questions),
		Answers:        make([]QuizAnswer, 0, len(questions)),
		CompletedAt:    completedAt,
	}
	if len(questions) == 0 {
		return res
	}
	correct := 0
	for i, q := range questions {
		ans := QuizAnswer{Question: q.Question}
		if i < len(answers) {
			ans.Answer = answers[i]
			ans.Correct = answers[i] == q.CorrectAnswer
		}
		if ans.Correct {
			correct++
		}
		res.Answers = append(res.Answers, ans)
	}
	res.Score = int(math.Round(float64(correct) * 100 / float64(len(questions))))
	return res
}

type Speaker string

const (
	SpeakerAI        Speaker = "ai"
	SpeakerCandidate Speaker = "candidate"
	// SpeakerProtocol 会话本身产生的记录，例如面试结束
	SpeakerProtocol Speaker = "protocol"
)

type Turn struct {
	Speaker   Speaker
	Text      string
	Timestamp int64
}

type Evaluation struct {
	OverallScore         float64
	Strengths            []string
	Weaknesses           []string
	HiringRecommendation string
}

type InterviewResult struct {
	SessionID   string
	Transcript  []Turn
	Evaluation  Evaluation
	CompletedAt int64
}

func (r InterviewResult) Validate() error {
	if r.SessionID == "" {
		return fmt.Errorf("%w: 缺少 sessionId", ErrInvalidResult)
	}
	if !inRange(r.Evaluation.OverallScore) {
		return fmt.Errorf("%w: 面试分数 %v 超出范围", ErrInvalidResult, r.Evaluation.OverallScore)
	}
	if r.Evaluation.HiringRecommendation == "" {
		return fmt.Errorf("%w: 缺少 hiringRecommendation", ErrInvalidResult)
	}
	return nil
}

func inRange(v float64) bool {
	return !math.IsNaN(v) && v >= scoring.MinScore && v <= scoring.MaxScore
}
