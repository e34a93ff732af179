package times

import (
	"errors"
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

const (
	SecondsPerDay = 86400

	epochYear = 1970
	// 400 年一个完整的闰年周期
	daysPer400Years = 146097
)

var ErrNegativeEpoch = errors.New("epoch seconds must not be negative")

var monthDays = [12]int64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func IsLeapYear(year int64) bool {
	if year%400 == 0 {
		return true
	}
	if year%100 == 0 {
		return false
	}
	return year%4 == 0
}

func daysInYear(year int64) int64 {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// Date splits seconds since 1970-01-01 into a proleptic Gregorian calendar
// date. Time of day and timezones are ignored.
func Date(seconds int64) (year, month, day int64, err error) {
	if seconds < 0 {
		return 0, 0, 0, fmt.Errorf("%w: %d", ErrNegativeEpoch, seconds)
	}
	days := seconds / SecondsPerDay
	year = epochYear + days/daysPer400Years*400
	days %= daysPer400Years
	for days >= daysInYear(year) {
		days -= daysInYear(year)
		year++
	}

	lengths := monthDays
	if IsLeapYear(year) {
		lengths[1] = 29
	}
	month = 1
	for _, l := range lengths {
		if days < l {
			break
		}
		days -= l
		month++
	}
	return year, month, days + 1, nil
}

// EpochToDate formats seconds since the epoch as "MM-DD-YYYY". The year is
// not padded, so far future dates may have more than four year digits.
func EpochToDate(seconds int64) (string, error) {
	year, month, day, err := Date(seconds)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d-%02d-%d", month, day, year), nil
}

// EpochToDateFormat formats the UTC instant with a strftime layout such as
// "%Y/%m/%d %H:%M:%S". An empty layout falls back to EpochToDate.
func EpochToDateFormat(seconds int64, layout string) (string, error) {
	if layout == "" {
		return EpochToDate(seconds)
	}
	if seconds < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeEpoch, seconds)
	}
	return strftime.Format(layout, time.Unix(seconds, 0).UTC())
}
