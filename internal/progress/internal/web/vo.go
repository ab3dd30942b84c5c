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

type Progress struct {
	JobID       int64          `json:"jobId"`
	CurrentStep string         `json:"currentStep"`
	Answers     map[int]string `json:"answers,omitempty"`
	TimeLeft    int64          `json:"timeLeft"`
	Completed   bool           `json:"completed"`
	SessionID   string         `json:"sessionId,omitempty"`
	Utime       int64          `json:"utime"`
}

type SaveReq struct {
	Progress Progress `json:"progress"`
}

type JobReq struct {
	JobID int64 `json:"jobId"`
}

type DetailResp struct {
	// 没有进度或者进度已经过期的时候为 false
	Found    bool     `json:"found"`
	Progress Progress `json:"progress"`
}

type AffordanceResp struct {
	Affordance string `json:"affordance"`
}
