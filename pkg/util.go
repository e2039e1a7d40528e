package pkg

import (
	"fmt"
	"math"
	"os"
	"time"
)

// DateLayout is the day format the backend uses for logs and log essentials.
const DateLayout = "2006-01-02"

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if isDir && !stat.IsDir() {
		return false, fmt.Errorf("%s is not a directory", path)
	}
	if !isDir && stat.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	return true, nil
}

// FormatDate returns the backend day representation of t.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the local day in the backend day format.
func Today() string {
	return FormatDate(time.Now())
}

// ValidateDate checks that date is a YYYY-MM-DD day.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("invalid date [%s], use YYYY-MM-DD", date)
	}
	return nil
}

// RoundHalfUp rounds half values towards positive infinity (-2.5 -> -2, 2.5 -> 3).
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
