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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/hireflow/internal/ai"
	aimocks "github.com/ecodeclub/hireflow/internal/ai/mocks"
	"github.com/ecodeclub/hireflow/internal/application/internal/domain"
	"github.com/ecodeclub/hireflow/internal/application/internal/event"
	"github.com/ecodeclub/hireflow/internal/application/internal/repository"
	appmocks "github.com/ecodeclub/hireflow/internal/application/mocks"
	"github.com/ecodeclub/hireflow/internal/job"
	jobmocks "github.com/ecodeclub/hireflow/internal/job/mocks"
	"github.com/ecodeclub/hireflow/internal/pkg/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pipelineMocks struct {
	repo     *appmocks.MockApplicationRepository
	jobSvc   *jobmocks.MockService
	matcher  *aimocks.MockResumeMatcher
	producer *appmocks.MockStageEventProducer
}

func newPipelineMocks(ctrl *gomock.Controller) pipelineMocks {
	return pipelineMocks{
		repo:     appmocks.NewMockApplicationRepository(ctrl),
		jobSvc:   jobmocks.NewMockService(ctrl),
		matcher:  aimocks.NewMockResumeMatcher(ctrl),
		producer: appmocks.NewMockStageEventProducer(ctrl),
	}
}

func (m pipelineMocks) svc() PipelineService {
	return NewPipelineService(m.repo, m.jobSvc, m.matcher, m.producer, DefaultConfig())
}

var testJob = job.Job{
	ID:      2,
	Uid:     100,
	Title:   "Go 后端开发",
	Weights: scoring.Weights{Resume: 40, Quiz: 30, Interview: 30},
	Quiz: job.Quiz{
		ID: "quiz-1",
		Questions: []job.Question{
			{Question: "Go 的并发原语", Options: []string{"goroutine", "thread"}, CorrectAnswer: "goroutine"},
			{Question: "切片扩容", Options: []string{"append", "copy"}, CorrectAnswer: "append"},
		},
	},
}

func TestPipelineService_Apply(t *testing.T) {
	testCases := []struct {
		name        string
		mock        func(m pipelineMocks)
		wantApp     domain.Application
		wantCreated bool
		wantErr     error
	}{
		{
			name: "新建投递",
			mock: func(m pipelineMocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(testJob, nil)
				m.repo.EXPECT().Create(gomock.Any(), domain.NewApplication(1, 2)).Return(int64(10), nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.ApplicationStageEvent) error {
						assert.Equal(t, int64(10), evt.Aid)
						assert.Equal(t, "", evt.FromStage)
						assert.Equal(t, "resume", evt.ToStage)
						return nil
					})
			},
			wantApp: domain.Application{
				ID: 10, Uid: 1, JobID: 2,
				Status: domain.StatusApplied, Stage: domain.StageResume,
			},
			wantCreated: true,
		},
		{
			name: "重复投递_返回已有的",
			mock: func(m pipelineMocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(testJob, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), repository.ErrDuplicate)
				m.repo.EXPECT().FindByUidAndJob(gomock.Any(), int64(1), int64(2)).Return(domain.Application{
					ID: 9, Uid: 1, JobID: 2, Status: domain.StatusScreening, Stage: domain.StageQuiz,
					Resume: &domain.ResumeResult{MatchScore: 80, PassFail: domain.PassFail{Status: domain.PassFailPass}},
				}, nil)
			},
			wantApp: domain.Application{
				ID: 9, Uid: 1, JobID: 2,
				Status: domain.StatusScreening, Stage: domain.StageQuiz,
				Resume:        &domain.ResumeResult{MatchScore: 80, PassFail: domain.PassFail{Status: domain.PassFailPass}},
				WeightedScore: 80,
			},
		},
		{
			name: "发送事件失败_不影响投递",
			mock: func(m pipelineMocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(testJob, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(11), nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq error"))
			},
			wantApp: domain.Application{
				ID: 11, Uid: 1, JobID: 2,
				Status: domain.StatusApplied, Stage: domain.StageResume,
			},
			wantCreated: true,
		},
		{
			name: "岗位不存在",
			mock: func(m pipelineMocks) {
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(job.Job{}, job.ErrJobNotFound)
			},
			wantErr: job.ErrJobNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newPipelineMocks(ctrl)
			tc.mock(m)
			app, created, err := m.svc().Apply(context.Background(), 1, 2)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantApp, app)
			assert.Equal(t, tc.wantCreated, created)
		})
	}
}

func TestPipelineService_SubmitResume(t *testing.T) {
	resumeStage := domain.Application{
		ID: 10, Uid: 1, JobID: 2,
		Status: domain.StatusApplied, Stage: domain.StageResume,
	}
	testCases := []struct {
		name        string
		uid         int64
		mock        func(m pipelineMocks)
		wantOutcome domain.Outcome
		wantStage   domain.Stage
		wantErr     error
	}{
		{
			name: "匹配通过",
			uid:  1,
			mock: func(m pipelineMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(resumeStage, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(testJob, nil)
				m.matcher.EXPECT().Match(gomock.Any(), int64(1), "我的简历", testJob.Text()).Return(ai.MatchResult{
					MatchScore: 88, SkillMatchScore: 90, ExperienceMatchScore: 80,
					PassFail: ai.PassFail{Status: ai.StatusPass, FeedbackMessage: "很匹配"},
				}, nil)
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(), domain.StageResume).
					DoAndReturn(func(ctx context.Context, app domain.Application, from domain.Stage) error {
						assert.Equal(t, domain.StageQuiz, app.Stage)
						assert.Equal(t, domain.StatusScreening, app.Status)
						assert.Equal(t, "我的简历", app.Resume.ResumeText)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantOutcome: domain.OutcomeAdvanced,
			wantStage:   domain.StageQuiz,
		},
		{
			name: "匹配不通过_可以重试_不发送事件",
			uid:  1,
			mock: func(m pipelineMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(resumeStage, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(testJob, nil)
				m.matcher.EXPECT().Match(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ai.MatchResult{
					MatchScore: 30,
					PassFail:   ai.PassFail{Status: ai.StatusFail, FeedbackMessage: "缺少分布式经验"},
				}, nil)
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(), domain.StageResume).Return(nil)
			},
			wantOutcome: domain.OutcomeRetryAllowed,
			wantStage:   domain.StageResume,
		},
		{
			name: "大模型失败_不写入",
			uid:  1,
			mock: func(m pipelineMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(resumeStage, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(testJob, nil)
				m.matcher.EXPECT().Match(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(ai.MatchResult{}, ai.ErrInvalidAnswer)
			},
			wantErr: ErrCollaborator,
		},
		{
			name: "并发提交_阶段已经变化",
			uid:  1,
			mock: func(m pipelineMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(resumeStage, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(testJob, nil)
				m.matcher.EXPECT().Match(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(ai.MatchResult{
					MatchScore: 88,
					PassFail:   ai.PassFail{Status: ai.StatusPass},
				}, nil)
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(), domain.StageResume).Return(repository.ErrStageConflict)
			},
			wantErr: ErrStageConflict,
		},
		{
			name: "已经在测验阶段_不调用大模型",
			uid:  1,
			mock: func(m pipelineMocks) {
				app := resumeStage
				app.Stage = domain.StageQuiz
				m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(app, nil)
			},
			wantErr: domain.ErrStageMismatch,
		},
		{
			name: "别人的投递",
			uid:  3,
			mock: func(m pipelineMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(resumeStage, nil)
			},
			wantErr: ErrPermissionDenied,
		},
		{
			name: "投递不存在",
			uid:  1,
			mock: func(m pipelineMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(domain.Application{}, repository.ErrRecordNotFound)
			},
			wantErr: ErrApplicationNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newPipelineMocks(ctrl)
			tc.mock(m)
			app, outcome, err := m.svc().SubmitResume(context.Background(), tc.uid, 10, "我的简历")
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantOutcome, outcome)
			assert.Equal(t, tc.wantStage, app.Stage)
			require.NotNil(t, app.Resume)
		})
	}
}

func TestPipelineService_SubmitQuiz(t *testing.T) {
	quizStage := domain.Application{
		ID: 10, Uid: 1, JobID: 2,
		Status: domain.StatusScreening, Stage: domain.StageQuiz,
	}
	testCases := []struct {
		name        string
		answers     []string
		mock        func(m pipelineMocks)
		wantOutcome domain.Outcome
		wantStage   domain.Stage
		wantScore   int
		wantErr     error
	}{
		{
			name:    "全部答对",
			answers: []string{"goroutine", "append"},
			mock: func(m pipelineMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(quizStage, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(testJob, nil)
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(), domain.StageQuiz).
					DoAndReturn(func(ctx context.Context, app domain.Application, from domain.Stage) error {
						// 估算的分数不会写入数据库
						assert.Equal(t, 0, app.WeightedScore)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantOutcome: domain.OutcomeAdvanced,
			wantStage:   domain.StageInterview,
			wantScore:   100,
		},
		{
			name:    "答对一半_被拒绝",
			answers: []string{"goroutine", "copy"},
			mock: func(m pipelineMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(quizStage, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(testJob, nil)
				m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(), domain.StageQuiz).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt event.ApplicationStageEvent) error {
						assert.Equal(t, "rejected", evt.ToStatus)
						return nil
					})
			},
			wantOutcome: domain.OutcomeRejected,
			wantStage:   domain.StageRejected,
			wantScore:   50,
		},
		{
			name:    "岗位还没有测验",
			answers: []string{"goroutine"},
			mock: func(m pipelineMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(quizStage, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(job.Job{ID: 2}, nil)
			},
			wantErr: job.ErrQuizNotReady,
		},
		{
			name:    "已经被拒绝_不能重新答题",
			answers: []string{"goroutine", "append"},
			mock: func(m pipelineMocks) {
				app := quizStage
				app.Stage, app.Status = domain.StageRejected, domain.StatusRejected
				m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(app, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(testJob, nil)
			},
			wantErr: domain.ErrStageMismatch,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newPipelineMocks(ctrl)
			tc.mock(m)
			app, outcome, err := m.svc().SubmitQuiz(context.Background(), 1, 10, tc.answers)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantOutcome, outcome)
			assert.Equal(t, tc.wantStage, app.Stage)
			require.NotNil(t, app.Quiz)
			assert.Equal(t, tc.wantScore, app.Quiz.Score)
			// 只有测验有结果，总分就是测验分
			assert.Equal(t, tc.wantScore, app.WeightedScore)
		})
	}
}

func TestPipelineService_CompleteInterview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newPipelineMocks(ctrl)
	m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(domain.Application{
		ID: 10, Uid: 1, JobID: 2,
		Status: domain.StatusQualified, Stage: domain.StageInterview,
		Resume: &domain.ResumeResult{MatchScore: 85, PassFail: domain.PassFail{Status: domain.PassFailPass}},
		Quiz:   &domain.QuizResult{Score: 90, TotalQuestions: 10},
	}, nil)
	m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(testJob, nil)
	m.repo.EXPECT().Transit(gomock.Any(), gomock.Any(), domain.StageInterview).Return(nil)
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	app, err := m.svc().CompleteInterview(context.Background(), 1, 10, domain.InterviewResult{
		SessionID:   "sess",
		Evaluation:  domain.Evaluation{OverallScore: 75, HiringRecommendation: "推荐"},
		CompletedAt: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StageCompleted, app.Stage)
	assert.Equal(t, domain.StatusQualified, app.Status)
	assert.Equal(t, 84, app.WeightedScore)
}

func TestPipelineService_ReviewerOverride(t *testing.T) {
	completed := domain.Application{
		ID: 10, Uid: 1, JobID: 2,
		Status: domain.StatusUnderReview, Stage: domain.StageCompleted,
		Interview: &domain.InterviewResult{SessionID: "sess"},
	}
	testCases := []struct {
		name       string
		status     domain.Status
		mock       func(m pipelineMocks)
		wantStatus domain.Status
		wantErr    error
	}{
		{
			name:   "加入候选名单",
			status: domain.StatusShortlisted,
			mock: func(m pipelineMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(completed, nil)
				m.jobSvc.EXPECT().OwnedDetail(gomock.Any(), int64(100), int64(2)).Return(testJob, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(10), domain.StatusShortlisted).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: domain.StatusShortlisted,
		},
		{
			name:   "不是自己的岗位",
			status: domain.StatusAccepted,
			mock: func(m pipelineMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(completed, nil)
				m.jobSvc.EXPECT().OwnedDetail(gomock.Any(), int64(100), int64(2)).Return(job.Job{}, job.ErrPermissionDenied)
			},
			wantErr: ErrPermissionDenied,
		},
		{
			name:   "面试还没完成",
			status: domain.StatusAccepted,
			mock: func(m pipelineMocks) {
				app := completed
				app.Interview = nil
				app.Stage = domain.StageInterview
				m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(app, nil)
				m.jobSvc.EXPECT().OwnedDetail(gomock.Any(), int64(100), int64(2)).Return(testJob, nil)
			},
			wantErr: domain.ErrOverrideNotAllowed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newPipelineMocks(ctrl)
			tc.mock(m)
			app, err := m.svc().ReviewerOverride(context.Background(), 100, 10, tc.status)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantStatus, app.Status)
			assert.Equal(t, domain.StageCompleted, app.Stage)
		})
	}
}

func TestPipelineService_Ranking(t *testing.T) {
	apps := []domain.Application{
		{ID: 1, Stage: domain.StageInterview, Resume: &domain.ResumeResult{MatchScore: 95, PassFail: domain.PassFail{Status: domain.PassFailPass}}},
		{ID: 2, Stage: domain.StageCompleted, WeightedScore: 50},
		{ID: 3, Stage: domain.StageCompleted, WeightedScore: 70},
	}
	testCases := []struct {
		name    string
		offset  int
		limit   int
		wantIDs []int64
	}{
		{
			name:    "第一页",
			limit:   2,
			wantIDs: []int64{3, 2},
		},
		{
			name:    "最后一页",
			offset:  2,
			limit:   2,
			wantIDs: []int64{1},
		},
		{
			name:    "超出范围",
			offset:  5,
			limit:   2,
			wantIDs: []int64{},
		},
		{
			name:    "负数偏移量_从头开始",
			offset:  -1,
			limit:   10,
			wantIDs: []int64{3, 2, 1},
		},
		{
			name:    "负数数量",
			offset:  1,
			limit:   -1,
			wantIDs: []int64{},
		},
		{
			name:    "数量为0",
			wantIDs: []int64{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newPipelineMocks(ctrl)
			m.jobSvc.EXPECT().OwnedDetail(gomock.Any(), int64(100), int64(2)).Return(testJob, nil)
			m.repo.EXPECT().FindByJob(gomock.Any(), int64(2)).Return(apps, nil)

			ranked, total, err := m.svc().Ranking(context.Background(), 100, 2, tc.offset, tc.limit)
			require.NoError(t, err)
			assert.Equal(t, 3, total)
			ids := make([]int64, 0, len(ranked))
			for _, r := range ranked {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

// 进行中的投递，候选人看到的分数和招聘方排名里面的一致
func TestPipelineService_ScoreMatchesRanking(t *testing.T) {
	inProgress := domain.Application{
		ID: 10, Uid: 1, JobID: 2,
		Status: domain.StatusScreening, Stage: domain.StageQuiz,
		Resume: &domain.ResumeResult{MatchScore: 80, PassFail: domain.PassFail{Status: domain.PassFailPass}},
	}
	completed := domain.Application{
		ID: 11, Uid: 3, JobID: 2,
		Status: domain.StatusQualified, Stage: domain.StageCompleted, WeightedScore: 66,
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newPipelineMocks(ctrl)
	m.repo.EXPECT().FindByID(gomock.Any(), int64(10)).Return(inProgress, nil)
	m.repo.EXPECT().FindByUidAndJob(gomock.Any(), int64(1), int64(2)).Return(inProgress, nil)
	m.repo.EXPECT().FindByUid(gomock.Any(), int64(1), 0, 10).Return([]domain.Application{inProgress}, nil)
	m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(testJob, nil).Times(3)
	m.jobSvc.EXPECT().OwnedDetail(gomock.Any(), int64(100), int64(2)).Return(testJob, nil)
	m.repo.EXPECT().FindByJob(gomock.Any(), int64(2)).Return([]domain.Application{completed, inProgress}, nil)

	svc := m.svc()
	ctx := context.Background()
	detail, err := svc.Detail(ctx, 1, 10)
	require.NoError(t, err)
	byJob, err := svc.FindByJob(ctx, 1, 2)
	require.NoError(t, err)
	list, err := svc.List(ctx, 1, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	ranked, _, err := svc.Ranking(ctx, 100, 2, 0, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	// 只有简历分，按照简历的权重归一化
	assert.Equal(t, 80, detail.WeightedScore)
	assert.Equal(t, ranked[1].Score, detail.WeightedScore)
	assert.Equal(t, ranked[1].Score, byJob.WeightedScore)
	assert.Equal(t, ranked[1].Score, list[0].WeightedScore)
	assert.False(t, ranked[1].Authoritative)
	// 已经完成的投递用固定下来的分数
	assert.Equal(t, 66, ranked[0].Score)
}

func TestPipelineService_List(t *testing.T) {
	otherJob := testJob
	otherJob.ID = 5
	otherJob.Weights = scoring.Weights{Resume: 100}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newPipelineMocks(ctrl)
	resume := &domain.ResumeResult{MatchScore: 60, PassFail: domain.PassFail{Status: domain.PassFailPass}}
	quiz := &domain.QuizResult{Score: 90, TotalQuestions: 2}
	m.repo.EXPECT().FindByUid(gomock.Any(), int64(1), 0, 10).Return([]domain.Application{
		{ID: 1, Uid: 1, JobID: 2, Stage: domain.StageInterview, Resume: resume, Quiz: quiz},
		{ID: 2, Uid: 1, JobID: 5, Stage: domain.StageInterview, Resume: resume, Quiz: quiz},
		{ID: 3, Uid: 1, JobID: 2, Stage: domain.StageQuiz, Resume: resume},
	}, nil)
	// 同一个岗位只查一次
	m.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(testJob, nil)
	m.jobSvc.EXPECT().Detail(gomock.Any(), int64(5)).Return(otherJob, nil)

	apps, err := m.svc().List(context.Background(), 1, 0, 10)
	require.NoError(t, err)
	require.Len(t, apps, 3)
	// (60*40 + 90*30) / 70 = 72.86
	assert.Equal(t, 73, apps[0].WeightedScore)
	assert.Equal(t, 60, apps[1].WeightedScore)
	assert.Equal(t, 60, apps[2].WeightedScore)
}
