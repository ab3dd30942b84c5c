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
)

var ErrInvalidAnswer = errors.New("大模型返回的数据不符合要求")

type PassFailStatus string

const (
	StatusPass PassFailStatus = "PASS"
	StatusFail PassFailStatus = "FAIL"
)

func (s PassFailStatus) IsValid() bool {
	return s == StatusPass || s == StatusFail
}

type PassFail struct {
	Status          PassFailStatus `json:"status"`
	FeedbackMessage string         `json:"feedbackMessage"`
}

// MatchResult 简历和岗位的匹配结果
type MatchResult struct {
	MatchScore           float64  `json:"matchScore"`
	SkillMatchScore      float64  `json:"skillMatchScore"`
	ExperienceMatchScore float64  `json:"experienceMatchScore"`
	MissingSkills        []string `json:"missingSkills"`
	PassFail             PassFail `json:"passFail"`
}

func (m MatchResult) Validate() error {
	if !m.PassFail.Status.IsValid() {
		return fmt.Errorf("%w: passFail.status=%q", ErrInvalidAnswer, m.PassFail.Status)
	}
	for name, v := range map[string]float64{
		"matchScore":           m.MatchScore,
		"skillMatchScore":      m.SkillMatchScore,
		"experienceMatchScore": m.ExperienceMatchScore,
	} {
		if v < 0 || v > 100 {
			return fmt.Errorf("%w: %s=%v 超出范围", ErrInvalidAnswer, name, v)
		}
	}
	return nil
}
