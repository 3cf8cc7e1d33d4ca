package audit

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"qrpay/kit/observability"
)

// Service records domain events as one JSON object per line. Without a file it only logs.
type Service struct {
	logger *observability.Logger
	fileMu sync.Mutex
	f      *os.File
	nowFn  func() time.Time
}

type Entry struct {
	At     time.Time      `json:"at"`
	Event  string         `json:"event"`
	Fields map[string]any `json:"fields"`
}

func NewService(logger *observability.Logger) *Service {
	return &Service{logger: logger, nowFn: time.Now}
}

func NewServiceWithFile(logger *observability.Logger, path string) (*Service, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logError(logger, "NewServiceWithFile", "", err, "path", path)
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logError(logger, "NewServiceWithFile", "", err, "path", path)
		return nil, err
	}
	return &Service{logger: logger, f: f, nowFn: time.Now}, nil
}

func (s *Service) Close() error {
	s.fileMu.Lock()
	defer s.fileMu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	if err != nil {
		logError(s.logger, "Close", "", err)
	}
	s.f = nil
	return err
}

func (s *Service) Record(ctx context.Context, eventName string, fields map[string]any) {
	if s.logger != nil {
		s.logger.Info("audit", "event", eventName, "fields", fields)
	}

	s.fileMu.Lock()
	defer s.fileMu.Unlock()
	if s.f == nil {
		return
	}
	b, err := json.Marshal(Entry{At: s.nowFn().UTC(), Event: eventName, Fields: fields})
	if err != nil {
		logError(s.logger, "Record", eventName, err)
		return
	}
	if _, err := s.f.Write(append(b, '\n')); err != nil {
		logError(s.logger, "Record", eventName, err)
	}
}

func logError(logger *observability.Logger, method, event string, err error, kv ...any) {
	if logger == nil {
		return
	}
	args := append([]any{"layer", "service", "component", "audit", "method", method, "event", event, "error", err.Error()}, kv...)
	logger.Error("audit error", args...)
}
