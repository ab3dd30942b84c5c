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

//go:build e2e

package integration

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hireflow/internal/ai"
	aimocks "github.com/ecodeclub/hireflow/internal/ai/mocks"
	"github.com/ecodeclub/hireflow/internal/application"
	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/errs"
	"github.com/ecodeclub/hireflow/internal/application/internal/web"
	"github.com/ecodeclub/hireflow/internal/job"
	"github.com/ecodeclub/hireflow/internal/test"
	testioc "github.com/ecodeclub/hireflow/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	candidateUid = 1
	reviewerUid  = 100
)

type PipelineTestSuite struct {
	suite.Suite
	db        *egorm.Component
	server    *egin.Component
	jobModule *job.Module
	appModule *application.Module
	matcher   *aimocks.MockResumeMatcher
	generator *aimocks.MockQuizGenerator
}

func (s *PipelineTestSuite) SetupSuite() {
	db := testioc.InitDB()
	q := testioc.InitMQ()
	ec := testioc.InitCache()
	ctrl := gomock.NewController(s.T())
	s.matcher = aimocks.NewMockResumeMatcher(ctrl)
	s.generator = aimocks.NewMockQuizGenerator(ctrl)
	aiModule := &ai.Module{Matcher: s.matcher, QuizGenerator: s.generator}

	jobModule, err := job.InitModule(db, ec, q, aiModule)
	require.NoError(s.T(), err)
	appModule, err := application.InitModule(db, q, aiModule, jobModule)
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "10s"})
	server := egin.Load("server").Build()
	server.Use(test.LoginAs(candidateUid))
	jobModule.Hdl.PrivateRoutes(server.Engine)
	appModule.Hdl.PrivateRoutes(server.Engine)

	s.db = db
	s.server = server
	s.jobModule = jobModule
	s.appModule = appModule
}

func (s *PipelineTestSuite) TearDownTest() {
	for _, table := range []string{"jobs", "job_stats", "applications"} {
		err := s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error
		require.NoError(s.T(), err)
	}
}

func (s *PipelineTestSuite) TestFullPipeline() {
	t := s.T()
	jobID := s.createJob(t)

	// 投递两次只有一条记录
	apply := post[web.ApplyResp](t, s.server, candidateUid, "/application/apply", web.ApplyReq{JobID: jobID})
	require.Equal(t, 0, apply.Code)
	assert.False(t, apply.Data.Existed)
	assert.Equal(t, "resume", apply.Data.Application.Stage)
	assert.Equal(t, "applied", apply.Data.Application.Status)
	aid := apply.Data.Application.ID

	again := post[web.ApplyResp](t, s.server, candidateUid, "/application/apply", web.ApplyReq{JobID: jobID})
	assert.True(t, again.Data.Existed)
	assert.Equal(t, aid, again.Data.Application.ID)

	// 简历第一次不通过，换一份之后通过
	s.matcher.EXPECT().Match(gomock.Any(), int64(candidateUid), "第一份简历", gomock.Any()).Return(ai.MatchResult{
		MatchScore: 40,
		PassFail:   ai.PassFail{Status: ai.StatusFail, FeedbackMessage: "缺少 Go 经验"},
	}, nil)
	fail := post[web.SubmitResp](t, s.server, candidateUid, "/application/resume/submit",
		web.SubmitResumeReq{ID: aid, Resume: "第一份简历"})
	require.Equal(t, 0, fail.Code)
	assert.Equal(t, "retry_allowed", fail.Data.Outcome)
	assert.Equal(t, "resume", fail.Data.Application.Stage)
	assert.Equal(t, "缺少 Go 经验", fail.Data.Application.ResumeScreening.PassFail.FeedbackMessage)

	s.matcher.EXPECT().Match(gomock.Any(), int64(candidateUid), "第二份简历", gomock.Any()).Return(ai.MatchResult{
		MatchScore:           85,
		SkillMatchScore:      90,
		ExperienceMatchScore: 80,
		PassFail:             ai.PassFail{Status: ai.StatusPass, FeedbackMessage: "匹配"},
	}, nil)
	pass := post[web.SubmitResp](t, s.server, candidateUid, "/application/resume/submit",
		web.SubmitResumeReq{ID: aid, Resume: "第二份简历"})
	assert.Equal(t, "advanced", pass.Data.Outcome)
	assert.Equal(t, "quiz", pass.Data.Application.Stage)
	assert.Equal(t, "screening", pass.Data.Application.Status)

	// 10 道题答对 9 道
	answers := make([]string, 10)
	for i := range answers {
		answers[i] = "A"
	}
	answers[9] = "B"
	quiz := post[web.SubmitResp](t, s.server, candidateUid, "/application/quiz/submit",
		web.SubmitQuizReq{ID: aid, Answers: answers})
	assert.Equal(t, "advanced", quiz.Data.Outcome)
	assert.Equal(t, "interview", quiz.Data.Application.Stage)
	assert.Equal(t, 90, quiz.Data.Application.QuizResults.Score)

	// 面试之前的分数是估算的，详情和排名里面看到的一样
	// (85*40 + 90*30) / 70 = 87.14
	assert.Equal(t, 87, quiz.Data.Application.WeightedScore)
	assert.False(t, quiz.Data.Application.Authoritative)
	detail := post[web.Application](t, s.server, candidateUid, "/application/detail", web.IDReq{ID: aid})
	require.Equal(t, 0, detail.Code)
	assert.Equal(t, 87, detail.Data.WeightedScore)
	assert.False(t, detail.Data.Authoritative)
	live := post[ginx.DataList[web.RankedApplication]](t, s.server, reviewerUid, "/application/review/ranking",
		web.RankingReq{JobID: jobID, Limit: 10})
	require.Len(t, live.Data.List, 1)
	assert.Equal(t, detail.Data.WeightedScore, live.Data.List[0].Score)
	assert.Equal(t, detail.Data.WeightedScore, live.Data.List[0].WeightedScore)

	// 重复提交测验
	dup := post[web.SubmitResp](t, s.server, candidateUid, "/application/quiz/submit",
		web.SubmitQuizReq{ID: aid, Answers: answers})
	assert.Equal(t, errs.StageMismatch.Code, dup.Code)

	// 面试完成之前不能调整状态
	early := post[web.Application](t, s.server, reviewerUid, "/application/review/override",
		web.OverrideReq{ID: aid, Status: "shortlisted"})
	assert.Equal(t, errs.OverrideNotAllowed.Code, early.Code)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	app, err := s.appModule.Svc.CompleteInterview(ctx, candidateUid, aid, domain.InterviewResult{
		SessionID: "sess-1",
		Transcript: []domain.Turn{
			{Speaker: domain.SpeakerAI, Text: "介绍一下你自己"},
			{Speaker: domain.SpeakerCandidate, Text: "我做了五年 Go"},
		},
		Evaluation:  domain.Evaluation{OverallScore: 75, HiringRecommendation: "推荐"},
		CompletedAt: time.Now().UnixMilli(),
	})
	require.NoError(t, err)
	assert.Equal(t, 84, app.WeightedScore)
	assert.Equal(t, domain.StatusQualified, app.Status)

	ranking := post[ginx.DataList[web.RankedApplication]](t, s.server, reviewerUid, "/application/review/ranking",
		web.RankingReq{JobID: jobID, Limit: 10})
	require.Equal(t, 1, ranking.Data.Total)
	assert.Equal(t, 84, ranking.Data.List[0].Score)
	assert.True(t, ranking.Data.List[0].Authoritative)

	// 候选人不能查看排名
	denied := post[ginx.DataList[web.RankedApplication]](t, s.server, candidateUid, "/application/review/ranking",
		web.RankingReq{JobID: jobID, Limit: 10})
	assert.Equal(t, errs.PermissionDenied.Code, denied.Code)

	override := post[web.Application](t, s.server, reviewerUid, "/application/review/override",
		web.OverrideReq{ID: aid, Status: "shortlisted"})
	require.Equal(t, 0, override.Code)
	assert.Equal(t, "shortlisted", override.Data.Status)
	assert.Equal(t, "completed", override.Data.Stage)
	assert.Equal(t, 84, override.Data.WeightedScore)
}

func (s *PipelineTestSuite) TestQuizRejected() {
	t := s.T()
	jobID := s.createJob(t)
	apply := post[web.ApplyResp](t, s.server, candidateUid, "/application/apply", web.ApplyReq{JobID: jobID})
	aid := apply.Data.Application.ID

	s.matcher.EXPECT().Match(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ai.MatchResult{
		MatchScore: 85,
		PassFail:   ai.PassFail{Status: ai.StatusPass},
	}, nil)
	post[web.SubmitResp](t, s.server, candidateUid, "/application/resume/submit",
		web.SubmitResumeReq{ID: aid, Resume: "简历"})

	// 只答对 6 道，低于及格线
	answers := []string{"A", "A", "A", "A", "A", "A", "B", "B", "B", "B"}
	res := post[web.SubmitResp](t, s.server, candidateUid, "/application/quiz/submit",
		web.SubmitQuizReq{ID: aid, Answers: answers})
	assert.Equal(t, "rejected", res.Data.Outcome)
	assert.Equal(t, "rejected", res.Data.Application.Stage)
	assert.Equal(t, "rejected", res.Data.Application.Status)

	// 被拒绝之后不能再提交简历
	again := post[web.SubmitResp](t, s.server, candidateUid, "/application/resume/submit",
		web.SubmitResumeReq{ID: aid, Resume: "新简历"})
	assert.Equal(t, errs.StageMismatch.Code, again.Code)
}

// createJob 招聘方发布岗位并且生成 10 道正确答案都是 A 的题目
func (s *PipelineTestSuite) createJob(t *testing.T) int64 {
	saved := post[struct {
		ID int64 `json:"id"`
	}](t, s.server, reviewerUid, "/job/save", map[string]any{
		"job": map[string]any{
			"title":        "Go 后端开发",
			"description":  "负责招聘系统的后端开发",
			"requirements": "三年以上 Go 经验",
			"weights":      map[string]int{"resume": 40, "quiz": 30, "interview": 30},
		},
	})
	require.Equal(t, 0, saved.Code)
	questions := make([]ai.QuizQuestion, 0, 10)
	for i := 0; i < 10; i++ {
		questions = append(questions, ai.QuizQuestion{
			Question:      "问题" + strconv.Itoa(i),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "A",
		})
	}
	s.generator.EXPECT().Generate(gomock.Any(), int64(reviewerUid), gomock.Any(), 10).
		Return(ai.Quiz{ID: "quiz-" + strconv.FormatInt(saved.Data.ID, 10), Questions: questions}, nil)
	generated := post[map[string]any](t, s.server, reviewerUid, "/job/quiz/generate", map[string]any{
		"id":            saved.Data.ID,
		"questionCount": 10,
	})
	require.Equal(t, 0, generated.Code)
	return saved.Data.ID
}

func post[T any](t *testing.T, server *egin.Component, uid int64, path string, body any) test.Result[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	req.Header.Set(test.UidHeader, strconv.FormatInt(uid, 10))
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func TestPipeline(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}
