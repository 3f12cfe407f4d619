package recorder

import "coalplan/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordBlend(_ model.BlendResult) error { return nil }
func (n *NoopRecorder) RecordDay(_ model.DailyRecord) error   { return nil }
func (n *NoopRecorder) Close() error                          { return nil }
