package memory

import (
	"time"

	domainauth "github.com/campushq/campus-ui-api/internal/domain/auth"
	"github.com/campushq/campus-ui-api/internal/domain/model"
)

// Stores bundles every dashboard store for wiring.
type Stores struct {
	Students  *StudentStore
	Fines     *FineStore
	Schedules *ScheduleStore
	Fees      *FeeStore
	Messages  *MessageStore
}

// Seed builds the stores with a small demo campus so the server is
// usable out of the box without any external database.
func Seed(clock Clock) *Stores {
	if clock == nil {
		clock = SystemClock{}
	}

	enrolled := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC)
	students := []model.Student{
		{ID: "stu-001", Name: "Amara Okafor", Email: "amara.okafor@students.example.com", ClassName: "7A", GuardianEmail: "g.okafor@example.com", Active: true, EnrolledAt: enrolled},
		{ID: "stu-002", Name: "Bram Visser", Email: "bram.visser@students.example.com", ClassName: "7A", GuardianEmail: "visser@example.com", Active: true, EnrolledAt: enrolled},
		{ID: "stu-003", Name: "Chen Wei", Email: "chen.wei@students.example.com", ClassName: "8B", GuardianEmail: "chen.family@example.com", Active: true, EnrolledAt: enrolled.AddDate(-1, 0, 0)},
		{ID: "stu-004", Name: "Dalia Haddad", Email: "dalia.haddad@students.example.com", ClassName: "8B", GuardianEmail: "haddad@example.com", Active: false, EnrolledAt: enrolled.AddDate(-2, 0, 0)},
		{ID: "stu-005", Name: "Emil Novak", Email: "emil.novak@students.example.com", ClassName: "9C", GuardianEmail: "novak@example.com", Active: true, EnrolledAt: enrolled.AddDate(-2, 0, 0)},
	}

	issued := time.Date(2026, time.February, 10, 14, 30, 0, 0, time.UTC)
	fines := []model.Fine{
		{ID: "fine-001", StudentID: "stu-001", Reason: "late return: The Atlas of Tides", AmountCents: 250, Status: model.FineOutstanding, IssuedAt: issued},
		{ID: "fine-002", StudentID: "stu-003", Reason: "damaged cover: Intro to Algebra", AmountCents: 1200, Status: model.FineOutstanding, IssuedAt: issued.AddDate(0, 0, 4)},
		{ID: "fine-003", StudentID: "stu-005", Reason: "lost copy: A History of Maps", AmountCents: 2400, Status: model.FinePaid, IssuedAt: issued.AddDate(0, -1, 0)},
	}

	schedules := []model.ScheduleEntry{
		{ID: "sch-001", ClassName: "7A", Subject: "Mathematics", TeacherName: "R. Ansari", Room: "201", Day: time.Monday, Period: 1},
		{ID: "sch-002", ClassName: "7A", Subject: "English", TeacherName: "S. Moreau", Room: "104", Day: time.Monday, Period: 2},
		{ID: "sch-003", ClassName: "7A", Subject: "Science", TeacherName: "R. Ansari", Room: "Lab 2", Day: time.Wednesday, Period: 3},
		{ID: "sch-004", ClassName: "8B", Subject: "Mathematics", TeacherName: "R. Ansari", Room: "201", Day: time.Monday, Period: 3},
		{ID: "sch-005", ClassName: "8B", Subject: "History", TeacherName: "S. Moreau", Room: "105", Day: time.Thursday, Period: 1},
		{ID: "sch-006", ClassName: "9C", Subject: "Physics", TeacherName: "J. Okonkwo", Room: "Lab 1", Day: time.Friday, Period: 2},
	}

	due := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	fees := []model.Fee{
		{ID: "fee-001", StudentID: "stu-001", Term: "2026-T1", AmountCents: 45000, PaidCents: 45000, DueDate: due},
		{ID: "fee-002", StudentID: "stu-002", Term: "2026-T1", AmountCents: 45000, PaidCents: 20000, DueDate: due},
		{ID: "fee-003", StudentID: "stu-003", Term: "2026-T1", AmountCents: 52000, PaidCents: 0, DueDate: due},
		{ID: "fee-004", StudentID: "stu-005", Term: "2026-T1", AmountCents: 60000, PaidCents: 60000, DueDate: due.AddDate(0, 1, 0)},
	}

	sent := time.Date(2026, time.February, 20, 9, 0, 0, 0, time.UTC)
	messages := []model.Message{
		{ID: "msg-001", FromName: "R. Ansari", FromRole: domainauth.RoleTeacher, Subject: "7A field trip forms", Body: "Signed forms are due Friday.", SentAt: sent},
		{ID: "msg-002", FromName: "Front Office", FromRole: domainauth.RoleCoordinator, Subject: "Term fee reminder", Body: "Term 1 fees are due 1 March.", SentAt: sent.AddDate(0, 0, 1)},
	}

	return &Stores{
		Students:  NewStudentStore(students),
		Fines:     NewFineStore(fines, clock),
		Schedules: NewScheduleStore(schedules),
		Fees:      NewFeeStore(fees, clock),
		Messages:  NewMessageStore(messages, clock),
	}
}
