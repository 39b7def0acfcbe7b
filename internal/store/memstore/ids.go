package memstore

import "time"

// IDSource hands out item ids seeded from the wall clock in milliseconds.
// Ids are strictly increasing: two calls within the same millisecond, or
// a clock that steps backwards, yield last+1.
type IDSource struct {
	now  func() time.Time
	last int64
}

func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

func (s *IDSource) Next() int64 {
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
