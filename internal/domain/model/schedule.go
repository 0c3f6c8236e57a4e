package model

import "time"

// ScheduleEntry is one slot in a class timetable.
type ScheduleEntry struct {
	ID          string       `json:"id"`
	ClassName   string       `json:"class_name"`
	Subject     string       `json:"subject"`
	TeacherName string       `json:"teacher_name"`
	Room        string       `json:"room"`
	Day         time.Weekday `json:"day"`
	Period      int          `json:"period"` // 1-based slot within the day
}

// ScheduleQuery filters timetable entries.
type ScheduleQuery struct {
	ClassName   string
	TeacherName string
	Day         *time.Weekday
}

// Matches reports whether the entry passes the query's filters.
func (q ScheduleQuery) Matches(e ScheduleEntry) bool {
	if q.ClassName != "" && e.ClassName != q.ClassName {
		return false
	}
	if q.TeacherName != "" && e.TeacherName != q.TeacherName {
		return false
	}
	if q.Day != nil && e.Day != *q.Day {
		return false
	}
	return true
}
