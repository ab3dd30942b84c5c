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

package errs

var (
	SystemError = ErrorCode{Code: 518001, Msg: "系统错误"}
	// ApplicationNotFound 投递不存在
	ApplicationNotFound = ErrorCode{Code: 418001, Msg: "投递不存在"}
	PermissionDenied    = ErrorCode{Code: 418002, Msg: "没有权限操作这个投递"}
	StageMismatch       = ErrorCode{Code: 418003, Msg: "当前阶段不能进行这个操作"}
	StageConflict       = ErrorCode{Code: 418004, Msg: "投递阶段已经变化，请刷新之后重试"}
	OverrideNotAllowed  = ErrorCode{Code: 418005, Msg: "面试完成之前不能调整投递状态"}
	InvalidStatus       = ErrorCode{Code: 418006, Msg: "只能设置为 shortlisted、accepted 或者 rejected"}
	JobNotFound         = ErrorCode{Code: 418007, Msg: "岗位不存在"}
	QuizNotReady        = ErrorCode{Code: 418008, Msg: "岗位还没有测验题目"}
	// AIUnavailable 调用大模型失败，可以重新提交
	AIUnavailable = ErrorCode{Code: 518002, Msg: "AI 服务暂时不可用，请稍后重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
