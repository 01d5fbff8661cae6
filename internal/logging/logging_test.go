package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Taskboard/internal/config"

	"github.com/gin-gonic/gin"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewFormat(t *testing.T) {
	var buf bytes.Buffer
	New(config.LogConfig{Level: "info"}, "prod", &buf).Info("hello", "k", "v")
	if !strings.HasPrefix(buf.String(), "{") {
		t.Fatalf("prod should log json, got %q", buf.String())
	}

	buf.Reset()
	New(config.LogConfig{Level: "info"}, "dev", &buf).Info("hello", "k", "v")
	if !strings.Contains(buf.String(), "msg=hello") {
		t.Fatalf("dev should log text, got %q", buf.String())
	}

	buf.Reset()
	New(config.LogConfig{Level: "warn", Format: "json"}, "dev", &buf).Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info below warn level was logged: %q", buf.String())
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("user_id.x-y"); got != "USER_ID_X_Y" {
		t.Fatalf("got %q", got)
	}
}

func TestRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	r := gin.New()
	r.Use(Requests(log))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("db down"))
		c.Status(http.StatusInternalServerError)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	if !strings.Contains(buf.String(), "level=INFO") || !strings.Contains(buf.String(), "status=200") {
		t.Fatalf("unexpected log %q", buf.String())
	}

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))
	if !strings.Contains(buf.String(), "level=ERROR") || !strings.Contains(buf.String(), "db down") {
		t.Fatalf("unexpected log %q", buf.String())
	}
}
