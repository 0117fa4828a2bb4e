package item

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

// CollectStatus - отношение пользователя к предмету коллекции
type CollectStatus string

const (
	StatusUnknown        CollectStatus = "unknown"
	StatusCollected      CollectStatus = "collected"
	StatusWillNotCollect CollectStatus = "will-not-collect"
)

var Statuses = []CollectStatus{StatusUnknown, StatusCollected, StatusWillNotCollect}

func (CollectStatus) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type: huma.TypeString,
		Enum: []any{
			string(StatusUnknown),
			string(StatusCollected),
			string(StatusWillNotCollect),
		},
		Description: "Статус сбора предмета",
		Examples:    []any{StatusCollected},
	}
}

func (s CollectStatus) Validate() error {
	switch s {
	case StatusUnknown, StatusCollected, StatusWillNotCollect:
		return nil
	}
	return fmt.Errorf("invalid collect status: %q", string(s))
}

// Resolved - предмет собран или сознательно пропущен
func (s CollectStatus) Resolved() bool {
	return s == StatusCollected || s == StatusWillNotCollect
}

// Toggled переключает collected <-> unknown, will-not-collect становится collected.
func (s CollectStatus) Toggled() CollectStatus {
	if s == StatusCollected {
		return StatusUnknown
	}
	return StatusCollected
}

func (s CollectStatus) String() string {
	return string(s)
}

// ParseStatus разбирает строку статуса, пустая строка дает unknown.
func ParseStatus(raw string) (CollectStatus, error) {
	if raw == "" {
		return StatusUnknown, nil
	}
	s := CollectStatus(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}
