package ytapi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var isoDurationPattern = regexp.MustCompile(`^P(?:(\d+)D)?T?(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseISODuration converts the provider's ISO 8601 duration encoding to
// whole minutes. Missing components count as zero; total seconds are divided
// by 60 and truncated toward zero, so a 45-second video reports 0 minutes.
func ParseISODuration(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("empty duration")
	}
	match := isoDurationPattern.FindStringSubmatch(trimmed)
	if match == nil {
		return 0, fmt.Errorf("malformed duration %q", value)
	}
	days := atoiZero(match[1])
	hours := atoiZero(match[2])
	minutes := atoiZero(match[3])
	seconds := atoiZero(match[4])
	total := ((days*24+hours)*60+minutes)*60 + seconds
	return total / 60, nil
}

// FormatDuration renders an ISO 8601 duration as "XhYmZs", omitting zero
// components. An all-zero or unparseable duration renders as "0s".
func FormatDuration(value string) string {
	match := isoDurationPattern.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return "0s"
	}
	hours := atoiZero(match[1])*24 + atoiZero(match[2])
	minutes := atoiZero(match[3])
	seconds := atoiZero(match[4])

	parts := make([]string, 0, 3)
	if hours > 0 {
		parts = append(parts, strconv.Itoa(hours)+"h")
	}
	if minutes > 0 {
		parts = append(parts, strconv.Itoa(minutes)+"m")
	}
	if seconds > 0 {
		parts = append(parts, strconv.Itoa(seconds)+"s")
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, "")
}

func atoiZero(value string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
