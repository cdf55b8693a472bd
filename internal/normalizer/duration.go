package normalizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	isoDurationRe   = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)
	durationLabelRe = regexp.MustCompile(`^(?:(\d+)h)?\s*(?:(\d+)m)?$`)
)

// RenderDuration turns an ISO-8601 "PT#H#M" duration into "2h 30m",
// "2h" or "45m". Input it cannot read is returned unchanged.
func RenderDuration(iso string) string {
	matches := isoDurationRe.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(iso)))
	if matches == nil {
		return iso
	}

	hours, mins := matches[1], matches[2]
	switch {
	case hours != "" && mins != "":
		return hours + "h " + mins + "m"
	case hours != "":
		return hours + "h"
	case mins != "":
		return mins + "m"
	default:
		return iso
	}
}

// ParseDurationLabel converts a rendered duration label back to minutes.
// Labels it cannot read count as zero.
func ParseDurationLabel(label string) int {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0
	}

	matches := durationLabelRe.FindStringSubmatch(label)
	if matches == nil {
		return 0
	}

	var hours, mins int
	if matches[1] != "" {
		hours, _ = strconv.Atoi(matches[1])
	}
	if matches[2] != "" {
		mins, _ = strconv.Atoi(matches[2])
	}

	return hours*60 + mins
}

func layoverLabel(airport string, minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%s (%dh %dm)", airport, minutes/60, minutes%60)
}
