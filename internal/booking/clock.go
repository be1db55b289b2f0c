package booking

import "time"

type Clock interface {
	Now() time.Time
}

// SystemClock отдаёт текущее время в часовом поясе зала.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// FixedClock всегда возвращает один и тот же момент. Для тестов.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }
