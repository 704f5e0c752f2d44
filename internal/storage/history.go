package storage

import (
	"github.com/pkg/errors"

	"github.com/kettari/weather-station/internal/entity"
)

// SaveReport stores one broadcast weather value
func (m *Manager) SaveReport(weather string) error {
	if err := m.Connect(); err != nil {
		return err
	}
	report := entity.Report{Weather: weather}
	if err := m.db.Create(&report).Error; err != nil {
		return errors.Wrapf(err, "unable to save report %q", weather)
	}
	return nil
}

// LatestReports returns up to limit reports, newest first
func (m *Manager) LatestReports(limit int) ([]entity.Report, error) {
	if err := m.Connect(); err != nil {
		return nil, err
	}
	var reports []entity.Report
	if result := m.db.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&reports); result.Error != nil {
		return nil, errors.Wrap(result.Error, "unable to load reports")
	}
	return reports, nil
}
