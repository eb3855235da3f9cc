package codec

import (
	"regexp"
	"strconv"
	"strings"

	"hospital-directory/pkg/record"
)

var (
	hhmmPattern    = regexp.MustCompile(`^\d{2}:\d{2}$`)
	hhmmssPattern  = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
	numericPattern = regexp.MustCompile(`^\d{3,4}$`)
	isoPattern     = regexp.MustCompile(`\d{4}-\d{2}-\d{2}[ T](\d{2}:\d{2})`)
	embeddedHHmm   = regexp.MustCompile(`(?:^|\D)(\d{2}:\d{2})(?:\D|$)`)
)

// ToHHmm normalizes the clock representations seen upstream to HH:mm.
// Values it cannot read are returned as given.
func ToHHmm(value any) string {
	raw := record.Stringify(value)
	str := strings.TrimSpace(raw)
	if str == "" {
		return ""
	}

	switch {
	case hhmmPattern.MatchString(str):
		return str
	case hhmmssPattern.MatchString(str):
		return str[:5]
	case numericPattern.MatchString(str):
		padded := strings.Repeat("0", 4-len(str)) + str
		return padded[:2] + ":" + padded[2:]
	}

	if m := isoPattern.FindStringSubmatch(str); m != nil {
		return m[1]
	}
	if m := embeddedHHmm.FindStringSubmatch(str); m != nil {
		return m[1]
	}
	return raw
}

// To12Hour renders HH:mm as h:mm AM/PM. Anything else is returned unchanged.
func To12Hour(hhmm string) string {
	if !hhmmPattern.MatchString(hhmm) {
		return hhmm
	}
	hour, _ := strconv.Atoi(hhmm[:2])
	minutes := hhmm[3:]
	if m, _ := strconv.Atoi(minutes); hour > 23 || m > 59 {
		return hhmm
	}

	switch {
	case hour == 0:
		return "12:" + minutes + " AM"
	case hour < 12:
		return strconv.Itoa(hour) + ":" + minutes + " AM"
	case hour == 12:
		return "12:" + minutes + " PM"
	default:
		return strconv.Itoa(hour-12) + ":" + minutes + " PM"
	}
}

// FormatTimeRange joins two display times as "start - end" when both are
// present, otherwise it returns start alone (possibly blank).
func FormatTimeRange(start, end string) string {
	if start == "" || end == "" {
		return start
	}
	return start + " - " + end
}
