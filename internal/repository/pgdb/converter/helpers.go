package converter

import "time"

// ConvertPointerTime копирует значение, чтобы сущность и модель не делили один указатель.
func ConvertPointerTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	v := *t
	return &v
}

func ConvertPointerString(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s
	return &v
}
