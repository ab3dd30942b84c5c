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

package web

type IDReq struct {
	ID int64 `json:"id"`
}

type ApplyReq struct {
	JobID int64 `json:"jobId"`
}

type ApplyResp struct {
	Application Application `json:"application"`
	// 之前已经投递过
	Existed bool `json:"existed"`
}

type SubmitResumeReq struct {
	ID     int64  `json:"id"`
	Resume string `json:"resume"`
}

type SubmitQuizReq struct {
	ID      int64    `json:"id"`
	Answers []string `json:"answers"`
}

// SubmitResp 提交之后的结果，不通过不算错误
type SubmitResp struct {
	Application Application `json:"application"`
	// advanced, retry_allowed, rejected
	Outcome string `json:"outcome"`
}

type OverrideReq struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type RankingReq struct {
	JobID  int64 `json:"jobId"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Application struct {
	ID     int64  `json:"id"`
	JobID  int64  `json:"jobId"`
	Status string `json:"status"`
	Stage  string `json:"stage"`

	ResumeScreening  *ResumeScreening  `json:"resumeScreening,omitempty"`
	QuizResults      *QuizResults      `json:"quizResults,omitempty"`
	InterviewResults *InterviewResults `json:"interviewResults,omitempty"`

	// 投递完成之前是按照已完成阶段估算的分数，Authoritative 为 false
	WeightedScore int   `json:"weightedScore"`
	Authoritative bool  `json:"authoritative"`
	CompletedAt   int64 `json:"completedAt,omitempty"`
	Utime         int64 `json:"utime"`
}

type ResumeScreening struct {
	MatchScore           float64  `json:"matchScore"`
	SkillMatchScore      float64  `json:"skillMatchScore"`
	ExperienceMatchScore float64  `json:"experienceMatchScore"`
	MissingSkills        []string `json:"missingSkills"`
	PassFail             PassFail `json:"passFail"`
}

type PassFail struct {
	Status          string `json:"status"`
	FeedbackMessage string `json:"feedbackMessage"`
}

type QuizResults struct {
	Score          int          `json:"score"`
	TotalQuestions int          `json:"totalQuestions"`
	Answers        []QuizAnswer `json:"answers"`
	CompletedAt    int64        `json:"completedAt"`
}

type QuizAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Correct  bool   `json:"correct"`
}

type InterviewResults struct {
	SessionID   string     `json:"sessionId"`
	Transcript  []Turn     `json:"transcript"`
	Evaluation  Evaluation `json:"evaluation"`
	CompletedAt int64      `json:"completedAt"`
}

type Turn struct {
	Speaker   string `json:"speaker"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

type Evaluation struct {
	OverallScore         float64  `json:"overallScore"`
	Strengths            []string `json:"strengths"`
	Weaknesses           []string `json:"weaknesses"`
	HiringRecommendation string   `json:"hiringRecommendation"`
}

// RankedApplication 排名里面的一项，Score 和 WeightedScore 相同
type RankedApplication struct {
	Application
	Uid   int64 `json:"uid"`
	Score int   `json:"score"`
}
