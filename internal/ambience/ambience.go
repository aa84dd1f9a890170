// Package ambience derives the decorative time-of-day, greeting and weather
// shown alongside the farm.
package ambience

import (
	"math/rand/v2"
	"sync"
	"time"
)

// TimeOfDay tags the sky palette
type TimeOfDay string

const (
	Day     TimeOfDay = "day"
	Evening TimeOfDay = "evening"
	Night   TimeOfDay = "night"
)

// Weather is the current overlay
type Weather string

const (
	Clear Weather = "clear"
	Rain  Weather = "rain"
	Fog   Weather = "fog"
)

// WeatherChangeChance is the per-tick probability of re-rolling the weather
const WeatherChangeChance = 0.1

var weatherChoices = []Weather{Clear, Rain, Fog}

// TimeOfDayAt returns the tag for the local hour of t
func TimeOfDayAt(t time.Time) TimeOfDay {
	h := t.Hour()
	switch {
	case h >= 6 && h < 17:
		return Day
	case h >= 17 && h < 20:
		return Evening
	default:
		return Night
	}
}

// Greeting returns the header greeting for the local hour of t
func Greeting(t time.Time) string {
	h := t.Hour()
	switch {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// State is a snapshot of the ambience
type State struct {
	TimeOfDay TimeOfDay `json:"time_of_day"`
	Weather   Weather   `json:"weather"`
	Greeting  string    `json:"greeting"`
}

// Sky tracks weather across ticks
type Sky struct {
	mu      sync.Mutex
	rng     *rand.Rand
	weather Weather
	last    State
}

// NewSky creates a Sky starting with clear weather.
// A nil rng uses a randomly seeded source.
func NewSky(rng *rand.Rand) *Sky {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Sky{rng: rng, weather: Clear}
}

// Tick advances the sky to now and reports whether anything visible changed
func (s *Sky) Tick(now time.Time) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rng.Float64() < WeatherChangeChance {
		s.weather = weatherChoices[s.rng.IntN(len(weatherChoices))]
	}

	st := State{
		TimeOfDay: TimeOfDayAt(now),
		Weather:   s.weather,
		Greeting:  Greeting(now),
	}
	changed := st != s.last
	s.last = st
	return st, changed
}

// Current returns the ambience at now without rolling the weather
func (s *Sky) Current(now time.Time) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		TimeOfDay: TimeOfDayAt(now),
		Weather:   s.weather,
		Greeting:  Greeting(now),
	}
}
