package time

import (
	"strconv"
	"time"
)

const (
	// dateTimeFormat is an RFC 3339 date-time in UTC without fractional
	// seconds.
	dateTimeFormat = "2006-01-02T15:04:05Z"

	// legacyDateTimePrefix is the date, hour and minute part of the legacy
	// format. The legacy pattern "yyyy-MM-dd'T'HH:mm:SS'Z'" prints two
	// digits of fractional seconds where the seconds would normally be.
	legacyDateTimePrefix = "2006-01-02T15:04:"
)

// FormatDateTime formats value in UTC as yyyy-MM-ddTHH:mm:ssZ.
func FormatDateTime(value time.Time) string {
	return value.UTC().Format(dateTimeFormat)
}

// FormatLegacyDateTime formats value in UTC as yyyy-MM-ddTHH:mm:SSZ, where SS
// is hundredths of a second. The seconds field is not printed.
func FormatLegacyDateTime(value time.Time) string {
	value = value.UTC()

	b := make([]byte, 0, len(legacyDateTimePrefix)+3)
	b = value.AppendFormat(b, legacyDateTimePrefix)

	centis := value.Nanosecond() / int(10*time.Millisecond)
	if centis < 10 {
		b = append(b, '0')
	}
	b = strconv.AppendInt(b, int64(centis), 10)

	return string(append(b, 'Z'))
}
