package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/campushq/campus-ui-api/internal/domain/auth"
	"github.com/campushq/campus-ui-api/internal/domain/model"
	"github.com/campushq/campus-ui-api/internal/testutil"
)

func seeded(t *testing.T) *Stores {
	t.Helper()
	return Seed(FixedClock{T: testutil.TestTime()})
}

func TestStudentStore_ListFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	stores := seeded(t)

	all, err := stores.Students.List(ctx, model.StudentQuery{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "Amara Okafor", all[0].Name)

	byClass, err := stores.Students.List(ctx, model.StudentQuery{ClassName: "8B"})
	require.NoError(t, err)
	require.Len(t, byClass, 2)

	active := true
	activeOnly, err := stores.Students.List(ctx, model.StudentQuery{ClassName: "8B", Active: &active})
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, "Chen Wei", activeOnly[0].Name)

	search, err := stores.Students.List(ctx, model.StudentQuery{Search: "nov"})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, "Emil Novak", search[0].Name)
}

func TestStudentStore_Get(t *testing.T) {
	stores := seeded(t)

	st, err := stores.Students.Get(context.Background(), "stu-003")
	require.NoError(t, err)
	assert.Equal(t, "Chen Wei", st.Name)

	_, err = stores.Students.Get(context.Background(), "stu-999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFineStore_ListDefaultsNewestFirst(t *testing.T) {
	stores := seeded(t)

	fines, err := stores.Fines.List(context.Background(), model.FineQuery{})
	require.NoError(t, err)
	require.Len(t, fines, 3)
	assert.Equal(t, "fine-002", fines[0].ID)

	outstanding, err := stores.Fines.List(context.Background(), model.FineQuery{Status: model.FineOutstanding})
	require.NoError(t, err)
	assert.Len(t, outstanding, 2)
}

func TestFineStore_Waive(t *testing.T) {
	stores := seeded(t)

	waived, err := stores.Fines.Waive(context.Background(), "fine-001")
	require.NoError(t, err)
	assert.Equal(t, model.FineWaived, waived.Status)
	require.NotNil(t, waived.ResolvedAt)
	assert.Equal(t, testutil.TestTime(), *waived.ResolvedAt)

	// Waiving again is rejected.
	_, err = stores.Fines.Waive(context.Background(), "fine-001")
	assert.Error(t, err)

	// Paid fines cannot be waived either.
	_, err = stores.Fines.Waive(context.Background(), "fine-003")
	assert.Error(t, err)

	_, err = stores.Fines.Waive(context.Background(), "fine-999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleStore_ListOrdersByDayAndPeriod(t *testing.T) {
	stores := seeded(t)

	day := time.Monday
	monday, err := stores.Schedules.List(context.Background(), model.ScheduleQuery{Day: &day})
	require.NoError(t, err)
	require.Len(t, monday, 3)
	assert.Equal(t, 1, monday[0].Period)
	assert.Equal(t, 3, monday[2].Period)

	byTeacher, err := stores.Schedules.List(context.Background(), model.ScheduleQuery{TeacherName: "R. Ansari"})
	require.NoError(t, err)
	assert.Len(t, byTeacher, 3)
}

func TestFeeStore_OverdueOnly(t *testing.T) {
	stores := seeded(t)

	// Store clock is after the T1 due date; fee-004 is due later and
	// settled anyway.
	overdue, err := stores.Fees.List(context.Background(), model.FeeQuery{OverdueOnly: true})
	require.NoError(t, err)
	require.Len(t, overdue, 2)
	for _, f := range overdue {
		assert.False(t, f.Settled())
	}
}

func TestFeeStore_RecordPayment(t *testing.T) {
	stores := seeded(t)
	ctx := context.Background()

	fee, err := stores.Fees.RecordPayment(ctx, "fee-002", 25000)
	require.NoError(t, err)
	assert.True(t, fee.Settled())

	_, err = stores.Fees.RecordPayment(ctx, "fee-003", -5)
	assert.Error(t, err)

	_, err = stores.Fees.RecordPayment(ctx, "fee-003", 52001)
	assert.ErrorContains(t, err, "exceeds outstanding balance")

	_, err = stores.Fees.RecordPayment(ctx, "fee-999", 100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMessageStore_SendAndList(t *testing.T) {
	stores := seeded(t)
	ctx := context.Background()

	sent, err := stores.Messages.Send(ctx, model.NewMessage{
		FromName: "  Library Desk ",
		FromRole: domainauth.RoleLibrarian,
		Subject:  "New arrivals",
		Body:     "Forty new titles on the shelf this week.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sent.ID)
	assert.Equal(t, "Library Desk", sent.FromName)
	assert.Equal(t, testutil.TestTime(), sent.SentAt)

	all, err := stores.Messages.List(ctx, model.MessageQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	byRole, err := stores.Messages.List(ctx, model.MessageQuery{FromRole: domainauth.RoleLibrarian})
	require.NoError(t, err)
	require.Len(t, byRole, 1)
	assert.Equal(t, sent.ID, byRole[0].ID)

	_, err = stores.Messages.Send(ctx, model.NewMessage{FromName: "x", FromRole: domainauth.RoleAdmin})
	assert.Error(t, err)
}

func TestFineStore_Issue(t *testing.T) {
	stores := seeded(t)
	ctx := context.Background()

	fine, err := stores.Fines.Issue(ctx, "stu-002", "late return: Sea of Names", 300)
	require.NoError(t, err)
	assert.NotEmpty(t, fine.ID)
	assert.Equal(t, model.FineOutstanding, fine.Status)
	assert.Equal(t, testutil.TestTime(), fine.IssuedAt)

	listed, err := stores.Fines.List(ctx, model.FineQuery{StudentID: "stu-002"})
	require.NoError(t, err)
	require.Len(t, listed, 1)

	_, err = stores.Fines.Issue(ctx, "", "reason", 100)
	assert.Error(t, err)
	_, err = stores.Fines.Issue(ctx, "stu-002", "", 100)
	assert.Error(t, err)
	_, err = stores.Fines.Issue(ctx, "stu-002", "reason", 0)
	assert.Error(t, err)
}

func TestScheduleStore_Assign(t *testing.T) {
	stores := seeded(t)
	ctx := context.Background()

	entry, err := stores.Schedules.Assign(ctx, model.ScheduleEntry{
		ClassName:   "9C",
		Subject:     "Chemistry",
		TeacherName: "J. Okonkwo",
		Room:        "Lab 1",
		Day:         time.Tuesday,
		Period:      2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)

	// Same class, same slot.
	_, err = stores.Schedules.Assign(ctx, model.ScheduleEntry{
		ClassName: "9C", Subject: "Art", TeacherName: "S. Moreau",
		Day: time.Tuesday, Period: 2,
	})
	assert.ErrorContains(t, err, "already has")

	// Same room, same slot, different class.
	_, err = stores.Schedules.Assign(ctx, model.ScheduleEntry{
		ClassName: "7A", Subject: "Biology", TeacherName: "J. Okonkwo", Room: "Lab 1",
		Day: time.Tuesday, Period: 2,
	})
	assert.ErrorContains(t, err, "already booked")

	_, err = stores.Schedules.Assign(ctx, model.ScheduleEntry{ClassName: "7A", Subject: "x", TeacherName: "y", Day: time.Monday, Period: 0})
	assert.Error(t, err)
}
