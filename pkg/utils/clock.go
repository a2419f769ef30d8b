package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// AvailableTimeSlots are the bookable table times in display form.
var AvailableTimeSlots = []string{
	"08:00 AM", "09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
	"06:00 PM", "07:00 PM", "08:00 PM",
}

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2}) (AM|PM)$`)

// IsAvailableTimeSlot reports whether the display time is one of the
// bookable slots.
func IsAvailableTimeSlot(display string) bool {
	for _, slot := range AvailableTimeSlots {
		if slot == display {
			return true
		}
	}
	return false
}

// ParseClockTime converts a 12-hour display time ("02:30 PM") into the
// 24-hour "HH:MM:00" form stored on bookings. A string that does not match
// the H:MM AM|PM pattern is an input error.
func ParseClockTime(display string) (string, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(display))
	if m == nil {
		return "", fmt.Errorf("invalid time format %q, expected H:MM AM|PM", display)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	meridiem := m[3]

	if hour < 1 || hour > 12 || minute > 59 {
		return "", fmt.Errorf("invalid time %q", display)
	}

	if meridiem == "PM" && hour != 12 {
		hour += 12
	}
	if meridiem == "AM" && hour == 12 {
		hour = 0
	}

	return fmt.Sprintf("%02d:%02d:00", hour, minute), nil
}

// FormatClockTime renders a stored "HH:MM:00" time back in 12-hour display
// form for tables and emails.
func FormatClockTime(stored string) string {
	parts := strings.Split(stored, ":")
	if len(parts) < 2 {
		return stored
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return stored
	}

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}

	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}

	return fmt.Sprintf("%d:%s %s", displayHour, parts[1], meridiem)
}
