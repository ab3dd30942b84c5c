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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hireflow/internal/interview/internal/domain"
	"github.com/ecodeclub/hireflow/internal/interview/internal/repository/dao"
)

//go:generate mockgen -source=./session.go -package=repomocks -destination=mocks/session.mock.go SessionRepository
type SessionRepository interface {
	Create(ctx context.Context, r domain.SessionRecord) (int64, error)
	Finish(ctx context.Context, sessionID string, outcome domain.Outcome, turns int, etime int64) error
	FindByAid(ctx context.Context, uid, aid int64) ([]domain.SessionRecord, error)
	AbandonStale(ctx context.Context, before int64) (int64, error)
}

type sessionRepository struct {
	dao dao.InterviewSessionDAO
}

func NewSessionRepository(d dao.InterviewSessionDAO) SessionRepository {
	return &sessionRepository{dao: d}
}

func (repo *sessionRepository) Create(ctx context.Context, r domain.SessionRecord) (int64, error) {
	return repo.dao.Create(ctx, dao.InterviewSession{
		SessionID: r.SessionID,
		Uid:       r.Uid,
		Aid:       r.Aid,
		Outcome:   string(domain.OutcomeActive),
		Stime:     r.Stime,
	})
}

func (repo *sessionRepository) Finish(ctx context.Context, sessionID string, outcome domain.Outcome, turns int, etime int64) error {
	return repo.dao.UpdateOutcome(ctx, sessionID, string(outcome), turns, etime)
}

func (repo *sessionRepository) FindByAid(ctx context.Context, uid, aid int64) ([]domain.SessionRecord, error) {
	res, err := repo.dao.FindByAid(ctx, uid, aid)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.InterviewSession) domain.SessionRecord {
		return repo.toDomain(src)
	}), nil
}

func (repo *sessionRepository) AbandonStale(ctx context.Context, before int64) (int64, error) {
	return repo.dao.AbandonStale(ctx, before)
}

func (repo *sessionRepository) toDomain(s dao.InterviewSession) domain.SessionRecord {
	return domain.SessionRecord{
		ID:        s.ID,
		SessionID: s.SessionID,
		Uid:       s.Uid,
		Aid:       s.Aid,
		Outcome:   domain.Outcome(s.Outcome),
		Turns:     s.Turns,
		Stime:     s.Stime,
		Etime:     s.Etime,
	}
}
