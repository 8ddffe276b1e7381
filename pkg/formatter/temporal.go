package formatter

import (
	"time"

	"cloud.google.com/go/civil"
	"golang.org/x/text/language"

	"github.com/guynir/jack/pkg/locale"
)

var (
	timeType          = TypeOf[time.Time]()
	civilDateType     = TypeOf[civil.Date]()
	civilTimeType     = TypeOf[civil.Time]()
	civilDateTimeType = TypeOf[civil.DateTime]()
)

type dateFormatter struct {
	base
}

// NewDate returns a formatter writing the calendar date of a value with the
// locale's short date layout. Instants are moved into the render zone first;
// civil values are already local and are written as they are.
func NewDate(opts ...Option) Formatter {
	return &dateFormatter{
		base: newBase(NameDate, newConfig(opts), timeType, civilDateType, civilDateTimeType),
	}
}

func (f *dateFormatter) Format(tag language.Tag, zone *time.Location, value any) (string, error) {
	return f.format(tag, zone, value, func(sym *locale.Symbols, v any) (string, error) {
		t, ok := wallClock(v, zone)
		if !ok {
			return "", f.typeError(v)
		}
		return sym.Date(t), nil
	})
}

type timeFormatter struct {
	base
}

// NewTime returns a formatter writing the time of day of a civil value with the
// locale's short time layout. No zone conversion takes place.
func NewTime(opts ...Option) Formatter {
	return &timeFormatter{
		base: newBase(NameTime, newConfig(opts), civilTimeType, civilDateTimeType),
	}
}

func (f *timeFormatter) Format(tag language.Tag, zone *time.Location, value any) (string, error) {
	return f.format(tag, zone, value, func(sym *locale.Symbols, v any) (string, error) {
		t, ok := wallClock(v, zone)
		if !ok {
			return "", f.typeError(v)
		}
		return sym.Time(t), nil
	})
}

type dateTimeFormatter struct {
	base
}

// NewDateTime returns a formatter writing both date and time of day.
// Instants are moved into the render zone first.
func NewDateTime(opts ...Option) Formatter {
	return &dateTimeFormatter{
		base: newBase(NameDateTime, newConfig(opts), timeType, civilDateTimeType),
	}
}

func (f *dateTimeFormatter) Format(tag language.Tag, zone *time.Location, value any) (string, error) {
	return f.format(tag, zone, value, func(sym *locale.Symbols, v any) (string, error) {
		t, ok := wallClock(v, zone)
		if !ok {
			return "", f.typeError(v)
		}
		return sym.DateTime(t), nil
	})
}

// wallClock turns a temporal value into a time.Time whose clock fields are the
// ones to print.
func wallClock(v any, zone *time.Location) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t.In(zone), true
	case civil.Date:
		return t.In(time.UTC), true
	case civil.DateTime:
		return t.In(time.UTC), true
	case civil.Time:
		return time.Date(0, time.January, 1, t.Hour, t.Minute, t.Second, t.Nanosecond, time.UTC), true
	default:
		return time.Time{}, false
	}
}
