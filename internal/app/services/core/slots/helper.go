package slots

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"campuscare-service/internal/app/models"
	"campuscare-service/internal/pkg/constvars"
)

// ParseClock parses an HH:MM wall time. It tolerates a dot separator since
// older stored schedules used "09.30" notation.
func ParseClock(s string) (clock, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", ":")
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return clock{}, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return clock{}, false
	}
	return clock{H: h, M: m}, true
}

// ValidateSlots fails fast on the first malformed slot. A slot window must
// parse and satisfy start < end; writers and readers stay consistent because
// every mutation path runs through this check before persisting.
func ValidateSlots(slotList []models.TimeSlot) error {
	for i, s := range slotList {
		start, ok := ParseClock(s.StartTime)
		if !ok {
			return fmt.Errorf("slots[%d]: invalid start time '%s'", i, s.StartTime)
		}
		end, ok := ParseClock(s.EndTime)
		if !ok {
			return fmt.Errorf("slots[%d]: invalid end time '%s'", i, s.EndTime)
		}
		if start.minuteOfDay() >= end.minuteOfDay() {
			return fmt.Errorf("slots[%d]: start >= end (%02d:%02d >= %02d:%02d)", i, start.H, start.M, end.H, end.M)
		}
	}
	return nil
}

// ResolveForDate returns the bookable slots effective for one calendar date
// without mutating the doctor. Lookup order, first match wins: the per-date
// override map, then the weekly template when the date is the literal current
// date, then the single-day todaySchedule, then the weekly template for that
// weekday. Every tier yields only slots still marked available; a
// todaySchedule flagged unavailable falls through rather than blanking the
// day. Weekly template slots come back with availability forced on since the
// template never records bookings.
func ResolveForDate(doctor *models.Doctor, date string, today string) []models.TimeSlot {
	if stored, ok := doctor.DateSlots[date]; ok {
		return AvailableOnly(stored)
	}
	if date == today {
		if materialized := MaterializeFromWeekly(doctor, date); len(materialized) > 0 {
			return materialized
		}
	}
	if doctor.TodaySchedule.Date == date && doctor.TodaySchedule.Available {
		return AvailableOnly(doctor.TodaySchedule.Slots)
	}
	return MaterializeFromWeekly(doctor, date)
}

// AvailableOnly copies the slots still open for booking.
func AvailableOnly(slotList []models.TimeSlot) []models.TimeSlot {
	out := make([]models.TimeSlot, 0, len(slotList))
	for _, s := range slotList {
		if s.IsAvailable {
			out = append(out, s)
		}
	}
	return out
}

// MaterializeFromWeekly copies the weekly template slots for the date's
// weekday, with every copy marked available. The caller decides whether to
// persist the copy; resolution alone never writes.
func MaterializeFromWeekly(doctor *models.Doctor, date string) []models.TimeSlot {
	parsed, err := time.Parse(constvars.DateKeyLayout, date)
	if err != nil {
		return nil
	}
	weekday := parsed.Weekday().String()
	for _, day := range doctor.WeeklySchedule {
		if !strings.EqualFold(day.Day, weekday) {
			continue
		}
		materialized := make([]models.TimeSlot, len(day.Slots))
		for i, s := range day.Slots {
			materialized[i] = models.TimeSlot{
				StartTime:   s.StartTime,
				EndTime:     s.EndTime,
				IsAvailable: true,
			}
		}
		return materialized
	}
	return nil
}

// FindExact returns the index of the slot whose (startTime, endTime) pair
// matches exactly, or -1. Booking and unbooking address slots this way.
func FindExact(slotList []models.TimeSlot, startTime, endTime string) int {
	for i, s := range slotList {
		if s.StartTime == startTime && s.EndTime == endTime {
			return i
		}
	}
	return -1
}

// ContainsInterval reports whether any available slot fully contains the
// requested window. Comparison is on minutes since midnight, so a request
// for (10:00, 10:30) matches a stored (09:00, 11:00) slot.
func ContainsInterval(slotList []models.TimeSlot, startTime, endTime string) bool {
	reqStart, ok := ParseClock(startTime)
	if !ok {
		return false
	}
	reqEnd, ok := ParseClock(endTime)
	if !ok {
		return false
	}
	if reqStart.minuteOfDay() >= reqEnd.minuteOfDay() {
		return false
	}
	for _, s := range slotList {
		if !s.IsAvailable {
			continue
		}
		slotStart, ok := ParseClock(s.StartTime)
		if !ok {
			continue
		}
		slotEnd, ok := ParseClock(s.EndTime)
		if !ok {
			continue
		}
		if slotStart.minuteOfDay() <= reqStart.minuteOfDay() && reqEnd.minuteOfDay() <= slotEnd.minuteOfDay() {
			return true
		}
	}
	return false
}

// CountAvailable counts slots still open for booking.
func CountAvailable(slotList []models.TimeSlot) int {
	count := 0
	for _, s := range slotList {
		if s.IsAvailable {
			count++
		}
	}
	return count
}

// UpcomingAvailability resolves availability for the next `days` calendar
// days starting at `from`. Dates that resolve to zero available slots are
// skipped entirely rather than returned empty.
func UpcomingAvailability(doctor *models.Doctor, from time.Time, days int) []DateSlots {
	today := from.Format(constvars.DateKeyLayout)
	var out []DateSlots
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i).Format(constvars.DateKeyLayout)
		resolved := ResolveForDate(doctor, date, today)
		if len(resolved) == 0 {
			continue
		}
		out = append(out, DateSlots{Date: date, Slots: resolved})
	}
	return out
}

// DatesWithSlots lists every stored override date in ascending order. A
// fully booked date still has a stored entry and is still listed.
func DatesWithSlots(doctor *models.Doctor) []string {
	dates := make([]string, 0, len(doctor.DateSlots))
	for date := range doctor.DateSlots {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// DatesWithAvailableSlots narrows DatesWithSlots to the dates that still
// hold at least one bookable slot.
func DatesWithAvailableSlots(doctor *models.Doctor) []string {
	var dates []string
	for date, slotList := range doctor.DateSlots {
		if CountAvailable(slotList) > 0 {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates
}
