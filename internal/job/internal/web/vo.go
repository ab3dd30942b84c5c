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

type Weights struct {
	Resume    int `json:"resume"`
	Quiz      int `json:"quiz"`
	Interview int `json:"interview"`
}

type Job struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Requirements string  `json:"requirements"`
	Weights      Weights `json:"weights"`
	// 只有发布者能看到，包含正确答案
	Quiz  *Quiz `json:"quiz,omitempty"`
	Utime int64 `json:"utime"`
}

type Quiz struct {
	ID        string         `json:"id"`
	Metadata  map[string]any `json:"metadata"`
	Questions []Question     `json:"questions"`
}

type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
}

type SaveReq struct {
	Job Job `json:"job"`
}

type SaveResp struct {
	ID int64 `json:"id"`
	// 权重之和不为 100 的时候提醒发布者
	Warning string `json:"warning,omitempty"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GenerateQuizReq struct {
	ID            int64 `json:"id"`
	QuestionCount int   `json:"questionCount"`
}

type Stats struct {
	JobID     int64 `json:"jobId"`
	Applied   int64 `json:"applied"`
	Completed int64 `json:"completed"`
	Rejected  int64 `json:"rejected"`
}
