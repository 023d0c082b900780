package mappers

import (
	"time"

	"github.com/gearguard/gearguard/internal/shared/biztime"
)

func fromMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func toMilliPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func fromMilliPtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := fromMilli(*ms)
	return &t
}

func toDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := biztime.FormatDate(*t)
	return &s
}

func fromDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := biztime.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
