package entity

import (
	"log/slog"
)

// WeatherStation keeps its observers in attach order and broadcasts every
// weather change to all of them.
type WeatherStation struct {
	observers []Observer
	weather   string
}

var _ subject = (*WeatherStation)(nil)

func NewWeatherStation() *WeatherStation {
	return &WeatherStation{}
}

// Attach appends the observer. The same observer may be attached more than
// once and is then notified once per attachment.
func (s *WeatherStation) Attach(observer Observer) {
	s.observers = append(s.observers, observer)
	slog.Debug("observer attached", "observers_count", len(s.observers))
}

// SetWeather stores the value and broadcasts it, even when it equals the
// previous one.
func (s *WeatherStation) SetWeather(weather string) {
	s.weather = weather
	s.NotifyObservers()
}

func (s *WeatherStation) Weather() string {
	return s.weather
}

func (s *WeatherStation) NotifyObservers() {
	slog.Debug("notifying observers", "weather", s.weather, "observers_count", len(s.observers))
	for _, observer := range s.observers {
		observer.Update(s.weather)
	}
}
