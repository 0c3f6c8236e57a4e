package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeeBalances(t *testing.T) {
	fee := Fee{AmountCents: 45000, PaidCents: 20000, DueDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, int64(25000), fee.OutstandingCents())
	assert.False(t, fee.Settled())
	assert.True(t, fee.Overdue(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.False(t, fee.Overdue(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))

	// Overpayment never yields a negative balance.
	fee.PaidCents = 50000
	assert.Equal(t, int64(0), fee.OutstandingCents())
	assert.True(t, fee.Settled())
	assert.False(t, fee.Overdue(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
}

func TestNewMessageValidate(t *testing.T) {
	draft := NewMessage{FromName: " a ", Subject: " s ", Body: " b "}
	assert.NoError(t, draft.Validate())
	assert.Equal(t, "a", draft.FromName)

	assert.Error(t, (&NewMessage{Subject: "s", Body: "b"}).Validate())
	assert.Error(t, (&NewMessage{FromName: "a", Body: "b"}).Validate())
	assert.Error(t, (&NewMessage{FromName: "a", Subject: "s"}).Validate())
}

func TestStudentQueryMatches(t *testing.T) {
	s := Student{Name: "Amara Okafor", ClassName: "7A", Active: true}

	assert.True(t, StudentQuery{Search: "OKAF"}.Matches(s))
	assert.False(t, StudentQuery{Search: "zz"}.Matches(s))
	assert.False(t, StudentQuery{ClassName: "8B"}.Matches(s))

	inactive := false
	assert.False(t, StudentQuery{Active: &inactive}.Matches(s))
}
