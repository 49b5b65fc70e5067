package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeFormat возвращается при неразборчивой строке времени
	ErrInvalidTimeFormat = errors.New("types: invalid time string format")
)

// Шаблоны допустимых форматов времени:
// 24-часовой "HH:MM" и 12-часовой "h:MM am/pm" (регистр и пробел перед суффиксом не важны)
var (
	pattern24h = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	pattern12h = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s?([AaPp][Mm])$`)
)

// TimeString время в пределах суток, нормализованное к виду "HH:MM" (24 часа)
// Используется для времени работы, слотов и времени начала бронирования.
// Нормализация тотальна и детерминирована: любой корректный вход ("14:00", "2:00 PM", "2:00pm")
// приводится к одному и тому же внутреннему представлению
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > 23*60+59 {
		return "", fmt.Errorf("%w: %d minutes is out of day range", ErrInvalidTimeFormat, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// NewTimeStringFromString парсит строку времени в TimeString
// Принимает 24-часовой формат "HH:MM" и 12-часовой "h:MM am/pm".
// Правила конвертации 12-часового формата: 12am -> 00, 12pm -> 12, иначе pm добавляет 12 часов
func NewTimeStringFromString(s string) (TimeString, error) {
	trimmed := strings.TrimSpace(s)

	if m := pattern12h.FindStringSubmatch(trimmed); m != nil {
		hour, err := strconv.Atoi(m[1])
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		minute, err := strconv.Atoi(m[2])
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}

		isPM := strings.EqualFold(m[3], "pm")
		switch {
		case hour == 12 && !isPM:
			hour = 0
		case hour != 12 && isPM:
			hour += 12
		}

		return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
	}

	if m := pattern24h.FindStringSubmatch(trimmed); m != nil {
		hour, err := strconv.Atoi(m[1])
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		minute, err := strconv.Atoi(m[2])
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		if hour > 23 || minute > 59 {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}

		return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение является корректным нормализованным временем
func (t TimeString) Validate() error {
	normalized, err := NewTimeStringFromString(string(t))
	if err != nil {
		return err
	}
	if normalized != t {
		return fmt.Errorf("%w: %q is not normalized to HH:MM", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// MinuteOfDay возвращает количество минут с начала суток (0-1439)
func (t TimeString) MinuteOfDay() (int, error) {
	m := pattern24h.FindStringSubmatch(string(t))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	return hour*60 + minute, nil
}

// AddMinutes возвращает новое время, сдвинутое на заданное количество минут вперёд
// Выход за пределы суток считается ошибкой - слоты и расписания не пересекают полночь
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.MinuteOfDay()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + minutes)
}

// IsBefore проверяет, что время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.MinuteOfDay()
	b, errB := other.MinuteOfDay()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.MinuteOfDay()
	b, errB := other.MinuteOfDay()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// Value реализует driver.Valuer для сохранения в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Postgres тип TIME приходит как строка "HH:MM:SS" - секунды отбрасываем
func (t *TimeString) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}

	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeString", ErrInvalidTimeFormat, value)
	}

	if len(raw) >= 8 && strings.Count(raw, ":") == 2 {
		raw = raw[:5]
	}

	normalized, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}

	*t = normalized
	return nil
}
