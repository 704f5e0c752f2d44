package notifier

import (
	"log/slog"

	"github.com/kettari/weather-station/internal/entity"
)

// ReportSaver persists broadcast weather values, see [storage.Manager]
type ReportSaver interface {
	SaveReport(weather string) error
}

// Recorder is an observer keeping the weather history
type Recorder struct {
	saver ReportSaver
}

var _ entity.Observer = (*Recorder)(nil)

func NewRecorder(saver ReportSaver) *Recorder {
	return &Recorder{saver: saver}
}

func (r *Recorder) Update(notification string) {
	slog.Debug("recording weather report", "weather", notification)
	if err := r.saver.SaveReport(notification); err != nil {
		slog.Error("weather report not recorded", "weather", notification, "error", err)
	}
}
