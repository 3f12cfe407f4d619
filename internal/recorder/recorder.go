package recorder

import "coalplan/internal/model"

// Recorder persists planning output for analysis.
type Recorder interface {
	RecordBlend(res model.BlendResult) error
	RecordDay(rec model.DailyRecord) error
	Close() error
}
