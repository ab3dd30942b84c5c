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
	"sort"

	"github.com/ecodeclub/hireflow/internal/pkg/scoring"
)

// Scored 带分数的投递，Authoritative 为 false 的时候分数只是估算
type Scored struct {
	Application
	Score         int
	Authoritative bool
}

func (a Application) Scored(weights scoring.Weights) Scored {
	return Scored{
		Application:   a,
		Score:         a.LiveScore(weights),
		Authoritative: a.IsComplete(),
	}
}

// Rank 已经完成的投递永远排在进行中的前面，然后按照分数从高到低，分数相同的先投递的在前
func Rank(apps []Application, weights scoring.Weights) []Scored {
	res := make([]Scored, 0, len(apps))
	for _, app := range apps {
		res = append(res, app.Scored(weights))
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Authoritative != res[j].Authoritative {
			return res[i].Authoritative
		}
		if res[i].Score != res[j].Score {
			return res[i].Score > res[j].Score
		}
		return res[i].ID < res[j].ID
	})
	return res
}
