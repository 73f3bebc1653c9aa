package slots

import (
	"testing"
	"time"

	"campuscare-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func newDoctorFixture() *models.Doctor {
	return &models.Doctor{
		Name: "Dr. Mehta",
		WeeklySchedule: []models.DaySchedule{
			{Day: "Monday", Slots: []models.TimeSlot{
				{StartTime: "09:00", EndTime: "09:30", IsAvailable: false},
				{StartTime: "10:00", EndTime: "10:30", IsAvailable: true},
			}},
			{Day: "Wednesday", Slots: []models.TimeSlot{
				{StartTime: "14:00", EndTime: "14:30", IsAvailable: true},
			}},
		},
		DateSlots: map[string][]models.TimeSlot{},
	}
}

func TestParseClock(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		c, ok := ParseClock("09:30")
		assert.True(t, ok)
		assert.Equal(t, 9, c.H)
		assert.Equal(t, 30, c.M)
	})

	t.Run("Dot Separator", func(t *testing.T) {
		c, ok := ParseClock("14.15")
		assert.True(t, ok)
		assert.Equal(t, 14*60+15, c.minuteOfDay())
	})

	t.Run("Out Of Range", func(t *testing.T) {
		_, ok := ParseClock("24:00")
		assert.False(t, ok)
		_, ok = ParseClock("10:60")
		assert.False(t, ok)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, ok := ParseClock("soon")
		assert.False(t, ok)
	})
}

func TestValidateSlots(t *testing.T) {
	t.Run("Valid Window", func(t *testing.T) {
		err := ValidateSlots([]models.TimeSlot{{StartTime: "09:00", EndTime: "09:30"}})
		assert.NoError(t, err)
	})

	t.Run("Start Equals End", func(t *testing.T) {
		err := ValidateSlots([]models.TimeSlot{{StartTime: "09:00", EndTime: "09:00"}})
		assert.Error(t, err)
	})

	t.Run("Start After End", func(t *testing.T) {
		err := ValidateSlots([]models.TimeSlot{{StartTime: "11:00", EndTime: "09:00"}})
		assert.Error(t, err)
	})

	t.Run("Unparseable", func(t *testing.T) {
		err := ValidateSlots([]models.TimeSlot{{StartTime: "nine", EndTime: "10:00"}})
		assert.Error(t, err)
	})
}

func TestResolveForDate(t *testing.T) {
	t.Run("DateSlots Override Wins", func(t *testing.T) {
		doctor := newDoctorFixture()
		doctor.DateSlots["2026-09-07"] = []models.TimeSlot{
			{StartTime: "08:00", EndTime: "08:30", IsAvailable: true},
		}

		resolved := ResolveForDate(doctor, "2026-09-07", "2026-09-07")

		assert.Len(t, resolved, 1)
		assert.Equal(t, "08:00", resolved[0].StartTime)
	})

	t.Run("Booked Override Slots Are Excluded", func(t *testing.T) {
		doctor := newDoctorFixture()
		doctor.DateSlots["2026-09-07"] = []models.TimeSlot{
			{StartTime: "09:00", EndTime: "09:30", IsAvailable: false},
			{StartTime: "10:00", EndTime: "10:30", IsAvailable: true},
		}

		resolved := ResolveForDate(doctor, "2026-09-07", "2026-09-07")

		assert.Len(t, resolved, 1)
		assert.Equal(t, "10:00", resolved[0].StartTime)
		assert.Equal(t, -1, FindExact(resolved, "09:00", "09:30"))
	})

	t.Run("Weekly Template Outranks TodaySchedule For The Current Date", func(t *testing.T) {
		doctor := newDoctorFixture()
		doctor.TodaySchedule = models.TodaySchedule{
			Date:      "2026-09-07",
			Available: true,
			Slots:     []models.TimeSlot{{StartTime: "16:00", EndTime: "16:30", IsAvailable: true}},
		}

		// 2026-09-07 is a Monday with a weekly entry, so the template wins.
		resolved := ResolveForDate(doctor, "2026-09-07", "2026-09-07")
		assert.Len(t, resolved, 2)
		assert.Equal(t, "09:00", resolved[0].StartTime)
	})

	t.Run("TodaySchedule Fills A Weekday With No Template", func(t *testing.T) {
		doctor := newDoctorFixture()
		doctor.TodaySchedule = models.TodaySchedule{
			Date:      "2026-09-08", // Tuesday, no weekly entry
			Available: true,
			Slots: []models.TimeSlot{
				{StartTime: "16:00", EndTime: "16:30", IsAvailable: true},
				{StartTime: "17:00", EndTime: "17:30", IsAvailable: false},
			},
		}

		resolved := ResolveForDate(doctor, "2026-09-08", "2026-09-08")
		assert.Len(t, resolved, 1)
		assert.Equal(t, "16:00", resolved[0].StartTime)
	})

	t.Run("Unavailable TodaySchedule Falls Through To Weekly", func(t *testing.T) {
		doctor := newDoctorFixture()
		doctor.TodaySchedule = models.TodaySchedule{
			Date:      "2026-09-07",
			Available: false,
			Slots:     []models.TimeSlot{{StartTime: "16:00", EndTime: "16:30", IsAvailable: true}},
		}

		// The flagged-off override never blanks the day; the Monday template
		// still answers.
		resolved := ResolveForDate(doctor, "2026-09-07", "2026-09-01")
		assert.Len(t, resolved, 2)
		assert.Equal(t, "09:00", resolved[0].StartTime)

		// With no template behind it, the day resolves empty.
		doctor.TodaySchedule.Date = "2026-09-08"
		resolved = ResolveForDate(doctor, "2026-09-08", "2026-09-01")
		assert.Empty(t, resolved)
	})

	t.Run("TodaySchedule Applies Only To Its Stored Date", func(t *testing.T) {
		doctor := newDoctorFixture()
		doctor.TodaySchedule = models.TodaySchedule{
			Date:      "2026-09-08",
			Available: true,
			Slots:     []models.TimeSlot{{StartTime: "16:00", EndTime: "16:30", IsAvailable: true}},
		}

		// 2026-09-09 is a Wednesday; the stored todaySchedule is for another
		// date and must not leak into it.
		resolved := ResolveForDate(doctor, "2026-09-09", "2026-09-01")
		assert.Len(t, resolved, 1)
		assert.Equal(t, "14:00", resolved[0].StartTime)
	})

	t.Run("Weekly Fallback Forces Availability", func(t *testing.T) {
		doctor := newDoctorFixture()

		// Monday template holds a booked 09:00 slot; the materialized copy
		// must come back available since the template never stores bookings.
		resolved := ResolveForDate(doctor, "2026-09-07", "2026-09-01")

		assert.Len(t, resolved, 2)
		for _, s := range resolved {
			assert.True(t, s.IsAvailable)
		}
	})

	t.Run("No Template For Weekday", func(t *testing.T) {
		doctor := newDoctorFixture()

		// 2026-09-08 is a Tuesday, which has no weekly entry.
		resolved := ResolveForDate(doctor, "2026-09-08", "2026-09-01")
		assert.Empty(t, resolved)
	})
}

func TestMaterializeFromWeekly(t *testing.T) {
	doctor := newDoctorFixture()

	materialized := MaterializeFromWeekly(doctor, "2026-09-09")

	assert.Len(t, materialized, 1, "2026-09-09 is a Wednesday")
	assert.Equal(t, "14:00", materialized[0].StartTime)
	assert.True(t, materialized[0].IsAvailable)

	// The returned copy must not alias the template.
	materialized[0].IsAvailable = false
	assert.True(t, doctor.WeeklySchedule[1].Slots[0].IsAvailable)
}

func TestFindExact(t *testing.T) {
	slotList := []models.TimeSlot{
		{StartTime: "09:00", EndTime: "09:30"},
		{StartTime: "10:00", EndTime: "10:30"},
	}

	assert.Equal(t, 1, FindExact(slotList, "10:00", "10:30"))
	assert.Equal(t, -1, FindExact(slotList, "10:00", "11:00"), "partial match is not exact")
	assert.Equal(t, -1, FindExact(slotList, "12:00", "12:30"))
}

func TestContainsInterval(t *testing.T) {
	slotList := []models.TimeSlot{
		{StartTime: "09:00", EndTime: "11:00", IsAvailable: true},
	}

	t.Run("Inner Window Is Contained", func(t *testing.T) {
		assert.True(t, ContainsInterval(slotList, "10:00", "10:30"))
	})

	t.Run("Exact Window Is Contained", func(t *testing.T) {
		assert.True(t, ContainsInterval(slotList, "09:00", "11:00"))
	})

	t.Run("Overhanging Window Is Not", func(t *testing.T) {
		assert.False(t, ContainsInterval(slotList, "10:30", "11:30"))
	})

	t.Run("Unavailable Slot Never Matches", func(t *testing.T) {
		booked := []models.TimeSlot{{StartTime: "09:00", EndTime: "11:00", IsAvailable: false}}
		assert.False(t, ContainsInterval(booked, "10:00", "10:30"))
	})

	t.Run("Inverted Request Window", func(t *testing.T) {
		assert.False(t, ContainsInterval(slotList, "10:30", "10:00"))
	})
}

func TestUpcomingAvailability(t *testing.T) {
	doctor := newDoctorFixture()
	doctor.DateSlots["2026-09-08"] = []models.TimeSlot{
		{StartTime: "12:00", EndTime: "12:30", IsAvailable: false},
	}

	from := time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC) // Monday

	days := UpcomingAvailability(doctor, from, 7)

	// Monday resolves from the weekly template, Tuesday's override is fully
	// booked and must be skipped, Wednesday resolves from the template.
	assert.Len(t, days, 2)
	assert.Equal(t, "2026-09-07", days[0].Date)
	assert.Equal(t, "2026-09-09", days[1].Date)
	for _, d := range days {
		assert.NotEmpty(t, d.Slots, "empty dates are never returned")
		for _, s := range d.Slots {
			assert.True(t, s.IsAvailable)
		}
	}
}

func TestDatesWithSlots(t *testing.T) {
	doctor := newDoctorFixture()
	doctor.DateSlots["2026-09-10"] = []models.TimeSlot{{StartTime: "09:00", EndTime: "09:30", IsAvailable: true}}
	doctor.DateSlots["2026-09-08"] = []models.TimeSlot{{StartTime: "09:00", EndTime: "09:30", IsAvailable: true}}
	doctor.DateSlots["2026-09-09"] = []models.TimeSlot{{StartTime: "09:00", EndTime: "09:30", IsAvailable: false}}

	// A fully booked date keeps its stored entry and stays listed.
	dates := DatesWithSlots(doctor)
	assert.Equal(t, []string{"2026-09-08", "2026-09-09", "2026-09-10"}, dates)

	available := DatesWithAvailableSlots(doctor)
	assert.Equal(t, []string{"2026-09-08", "2026-09-10"}, available)
}

func TestAvailableOnly(t *testing.T) {
	slotList := []models.TimeSlot{
		{StartTime: "09:00", EndTime: "09:30", IsAvailable: false},
		{StartTime: "10:00", EndTime: "10:30", IsAvailable: true},
	}

	open := AvailableOnly(slotList)

	assert.Len(t, open, 1)
	assert.Equal(t, "10:00", open[0].StartTime)
	assert.Empty(t, AvailableOnly(nil))
}
