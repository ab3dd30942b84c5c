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

package event

const StageEventTopic = "application_stage_events"

// ApplicationStageEvent 投递模块在每次状态变化之后发送
type ApplicationStageEvent struct {
	Aid        int64  `json:"aid"`
	Uid        int64  `json:"uid"`
	JobId      int64  `json:"jobId"`
	FromStage  string `json:"fromStage"`
	ToStage    string `json:"toStage"`
	FromStatus string `json:"fromStatus"`
	ToStatus   string `json:"toStatus"`
	Utime      int64  `json:"utime"`
}
