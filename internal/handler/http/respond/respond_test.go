package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not JSON: %v", err)
	}
	return body["error"]
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusOK, map[string]string{"message": "Service is running"})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["message"] != "Service is running" {
		t.Errorf("message = %q, want %q", body["message"], "Service is running")
	}
}

func TestJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusNoContent, nil)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, http.StatusBadRequest, errors.New("topic is required"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if got := decodeErrorBody(t, rec); got != "topic is required" {
		t.Errorf("error = %q, want %q", got, "topic is required")
	}
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name string
		code int
		err  error
	}{
		{
			name: "transport error is masked",
			code: http.StatusInternalServerError,
			err:  errors.New("dial tcp 10.0.0.5:443: connection refused"),
		},
		{
			name: "safe-looking messages are masked too",
			code: http.StatusInternalServerError,
			err:  errors.New("field is required"),
		},
		{
			name: "credentials are masked",
			code: http.StatusBadGateway,
			err:  errors.New("auth failed for sk-ant-key123456789"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			SafeError(rec, tt.code, tt.err)

			if rec.Code != tt.code {
				t.Errorf("status = %d, want %d", rec.Code, tt.code)
			}
			if got := decodeErrorBody(t, rec); got != "internal server error" {
				t.Errorf("error = %q, want %q", got, "internal server error")
			}
		})
	}
}

func TestSafeError_LogsMaskedDetail(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	rec := httptest.NewRecorder()
	SafeError(rec, http.StatusInternalServerError, errors.New("openai: 401 for key sk-abcdef1234567890"))

	logged := buf.String()
	if !strings.Contains(logged, "sk-****") {
		t.Errorf("log output %q should carry the masked key", logged)
	}
	if strings.Contains(logged, "sk-abcdef1234567890") {
		t.Errorf("log output %q leaked the raw key", logged)
	}
}

func TestSafeError_NilError(t *testing.T) {
	rec := httptest.NewRecorder()

	SafeError(rec, http.StatusInternalServerError, nil)

	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want nothing written for nil error", rec.Body.String())
	}
}
