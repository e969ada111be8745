// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argval

import (
	"fmt"
	"strings"
)

var weekdays = map[string]string{
	"0": "Sun", "1": "Mon", "2": "Tue", "3": "Wed", "4": "Thu", "5": "Fri", "6": "Sat", "7": "Sun",
}

// Schedule converts a five-field cron expression ("m h dom mon dow") into
// a systemd OnCalendar event ("dow y-m-d h:m"). A token that is already a
// calendar event cannot be told apart from a malformed cron line and is
// rejected.
func Schedule(token string) (string, bool) {
	cal, err := cronToCalendar(token)
	if err != nil {
		return "", false
	}
	return cal, true
}

func cronToCalendar(expr string) (string, error) {
	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return "", fmt.Errorf("invalid cron expression: %q", expr)
	}
	if strings.Join(fields, " ") == "* * * * *" {
		return "*-*-* *:*:00", nil
	}
	minute, hour, dom, month, dow := fields[0], fields[1], fields[2], fields[3], fields[4]

	minute = pad2(minute)
	hour = pad2(hour)
	if month != "*" {
		parts := strings.Split(month, ",")
		for i, m := range parts {
			parts[i] = pad2(m)
		}
		month = strings.Join(parts, ",")
	}
	// A day-of-month step repeats the event from the start minute.
	if step, ok := strings.CutPrefix(dom, "*/"); ok {
		minute += "/" + step
		dom = "*"
	} else {
		dom = pad2(dom)
	}

	days, err := calendarWeekdays(dow)
	if err != nil {
		return "", err
	}
	cal := fmt.Sprintf("%s *-%s-%s %s:%s", days, month, dom, hour, minute)
	return strings.TrimSpace(cal), nil
}

// pad2 zero-pads a lone one-digit field.
func pad2(field string) string {
	if len(field) == 1 && field != "*" {
		return "0" + field
	}
	return field
}

func calendarWeekdays(dow string) (string, error) {
	if dow == "*" {
		return "", nil
	}
	if from, to, ok := strings.Cut(dow, "-"); ok {
		start, ok1 := weekdays[from]
		end, ok2 := weekdays[to]
		if !ok1 || !ok2 {
			return "", fmt.Errorf("invalid day-of-week range: %q", dow)
		}
		return start + "..." + end, nil
	}
	parts := strings.Split(dow, ",")
	for i, p := range parts {
		name, ok := weekdays[p]
		if !ok {
			return "", fmt.Errorf("invalid day of week: %q", p)
		}
		parts[i] = name
	}
	return strings.Join(parts, ","), nil
}
