package ambience

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour int) time.Time {
	return time.Date(2025, 6, 1, hour, 30, 0, 0, time.Local)
}

func TestTimeOfDayAt(t *testing.T) {
	tests := []struct {
		hour int
		want TimeOfDay
	}{
		{0, Night},
		{5, Night},
		{6, Day},
		{16, Day},
		{17, Evening},
		{19, Evening},
		{20, Night},
		{23, Night},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeOfDayAt(at(tt.hour)), "hour %d", tt.hour)
	}
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Good morning", Greeting(at(7)))
	assert.Equal(t, "Good afternoon", Greeting(at(12)))
	assert.Equal(t, "Good afternoon", Greeting(at(17)))
	assert.Equal(t, "Good evening", Greeting(at(18)))
}

func TestSky_TickKeepsWeatherMostly(t *testing.T) {
	sky := NewSky(rand.New(rand.NewPCG(1, 2)))
	now := at(10)

	changes := 0
	prev := sky.Current(now).Weather
	for i := 0; i < 1000; i++ {
		st, _ := sky.Tick(now)
		assert.Contains(t, weatherChoices, st.Weather)
		if st.Weather != prev {
			changes++
		}
		prev = st.Weather
	}

	// A re-roll happens ~10% of the time and picks the same weather a third of those.
	assert.Greater(t, changes, 20)
	assert.Less(t, changes, 150)
}

func TestSky_TickReportsChange(t *testing.T) {
	sky := NewSky(rand.New(rand.NewPCG(7, 7)))

	_, changed := sky.Tick(at(10))
	assert.True(t, changed, "first tick always differs from the zero state")

	st := sky.Current(at(18))
	assert.Equal(t, Evening, st.TimeOfDay)
	assert.Equal(t, "Good evening", st.Greeting)
}
