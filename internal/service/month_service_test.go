package service

import (
	"testing"
	"time"

	"github.com/budgetbook/internal/models"
	"github.com/budgetbook/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFirstMonthCopiesNothing(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "first@example.com")
	svc := NewMonthService(repository.NewMonthRepository(db))

	month, err := svc.CreateMonth(user.ID, &MonthRequest{
		MonthLabel:  "January 2026",
		Wage:        2500,
		FloatAmount: 200,
	})
	require.NoError(t, err)
	assert.Equal(t, "January 2026", month.MonthLabel)
	assert.Equal(t, 2300.0, month.StartingPoint)

	var count int64
	require.NoError(t, db.Model(&models.Outgoing{}).Where("month_id = ?", month.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateMonthRollsOverPreviousOutgoings(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "rollover@example.com")
	monthRepo := repository.NewMonthRepository(db)
	monthSvc := NewMonthService(monthRepo)
	outgoingSvc := NewOutgoingService(repository.NewOutgoingRepository(db), monthRepo)
	transferSvc := NewTransferService(repository.NewTransferRepository(db), monthRepo)

	previous, err := monthSvc.CreateMonth(user.ID, &MonthRequest{MonthLabel: "January", Wage: 2500, FloatAmount: 200})
	require.NoError(t, err)
	backdateMonth(t, db, previous.ID, time.Hour)

	recurring := true
	oneOff := false
	_, err = outgoingSvc.CreateOutgoing(user.ID, &CreateOutgoingRequest{
		MonthID: previous.ID, Name: "Rent", DueDay: 1, AccountCode: "B", Amount: 900, IsRecurring: &recurring,
	})
	require.NoError(t, err)
	_, err = outgoingSvc.CreateOutgoing(user.ID, &CreateOutgoingRequest{
		MonthID: previous.ID, Name: "Boiler repair", DueDay: 14, AccountCode: "N", Amount: 150, IsRecurring: &oneOff,
	})
	require.NoError(t, err)

	// Transfers must never roll over
	_, err = transferSvc.CreateTransfer(user.ID, &CreateTransferRequest{
		MonthID: previous.ID, ToAccountCode: "B", Amount: 400,
	})
	require.NoError(t, err)

	next, err := monthSvc.CreateMonth(user.ID, &MonthRequest{MonthLabel: "February", Wage: 2500, FloatAmount: 200})
	require.NoError(t, err)

	copied, err := outgoingSvc.ListOutgoings(user.ID, next.ID)
	require.NoError(t, err)
	require.Len(t, copied, 2)

	assert.Equal(t, "Rent", copied[0].Name)
	assert.Equal(t, 1, copied[0].DueDay)
	assert.Equal(t, "B", copied[0].AccountCode)
	assert.Equal(t, 900.0, copied[0].Amount)
	assert.True(t, copied[0].IsRecurring)

	assert.Equal(t, "Boiler repair", copied[1].Name)
	assert.False(t, copied[1].IsRecurring)

	// Copies are new rows on the new month
	for _, item := range copied {
		assert.Equal(t, next.ID, item.MonthID)
		assert.Equal(t, user.ID, item.UserID)
	}

	transfers, err := transferSvc.ListTransfers(user.ID, next.ID)
	require.NoError(t, err)
	assert.Empty(t, transfers)
}

func TestCreateMonthRollsOverFromMostRecentMonth(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "recency@example.com")
	monthRepo := repository.NewMonthRepository(db)
	monthSvc := NewMonthService(monthRepo)
	outgoingSvc := NewOutgoingService(repository.NewOutgoingRepository(db), monthRepo)

	older, err := monthSvc.CreateMonth(user.ID, &MonthRequest{MonthLabel: "January", Wage: 2500, FloatAmount: 200})
	require.NoError(t, err)
	backdateMonth(t, db, older.ID, 2*time.Hour)

	newer, err := monthSvc.CreateMonth(user.ID, &MonthRequest{MonthLabel: "February", Wage: 2500, FloatAmount: 200})
	require.NoError(t, err)
	backdateMonth(t, db, newer.ID, time.Hour)

	_, err = outgoingSvc.CreateOutgoing(user.ID, &CreateOutgoingRequest{
		MonthID: older.ID, Name: "Old bill", DueDay: 5, AccountCode: "N", Amount: 10,
	})
	require.NoError(t, err)
	_, err = outgoingSvc.CreateOutgoing(user.ID, &CreateOutgoingRequest{
		MonthID: newer.ID, Name: "Current bill", DueDay: 6, AccountCode: "N", Amount: 20,
	})
	require.NoError(t, err)

	third, err := monthSvc.CreateMonth(user.ID, &MonthRequest{MonthLabel: "March", Wage: 2500, FloatAmount: 200})
	require.NoError(t, err)

	copied, err := outgoingSvc.ListOutgoings(user.ID, third.ID)
	require.NoError(t, err)
	require.Len(t, copied, 1)
	assert.Equal(t, "Current bill", copied[0].Name)
}

func TestRolloverIgnoresOtherUsersMonths(t *testing.T) {
	db := setupTestDB(t)
	alice := createTestUser(t, db, "alice-roll@example.com")
	bob := createTestUser(t, db, "bob-roll@example.com")
	monthRepo := repository.NewMonthRepository(db)
	monthSvc := NewMonthService(monthRepo)
	outgoingSvc := NewOutgoingService(repository.NewOutgoingRepository(db), monthRepo)

	aliceMonth, err := monthSvc.CreateMonth(alice.ID, &MonthRequest{MonthLabel: "January", Wage: 2000, FloatAmount: 100})
	require.NoError(t, err)
	backdateMonth(t, db, aliceMonth.ID, time.Hour)

	_, err = outgoingSvc.CreateOutgoing(alice.ID, &CreateOutgoingRequest{
		MonthID: aliceMonth.ID, Name: "Alice rent", DueDay: 1, AccountCode: "B", Amount: 800,
	})
	require.NoError(t, err)

	bobMonth, err := monthSvc.CreateMonth(bob.ID, &MonthRequest{MonthLabel: "January", Wage: 1800, FloatAmount: 100})
	require.NoError(t, err)

	outgoings, err := outgoingSvc.ListOutgoings(bob.ID, bobMonth.ID)
	require.NoError(t, err)
	assert.Empty(t, outgoings)
}

func TestListMonthsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "listing@example.com")
	svc := NewMonthService(repository.NewMonthRepository(db))

	older, err := svc.CreateMonth(user.ID, &MonthRequest{MonthLabel: "January", Wage: 2000, FloatAmount: 100})
	require.NoError(t, err)
	backdateMonth(t, db, older.ID, time.Hour)

	_, err = svc.CreateMonth(user.ID, &MonthRequest{MonthLabel: "February", Wage: 2000, FloatAmount: 100})
	require.NoError(t, err)

	months, err := svc.ListMonths(user.ID)
	require.NoError(t, err)
	require.Len(t, months, 2)
	assert.Equal(t, "February", months[0].MonthLabel)
	assert.Equal(t, "January", months[1].MonthLabel)
}

func TestUpdateMonthRecomputesStartingPoint(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "edit@example.com")
	svc := NewMonthService(repository.NewMonthRepository(db))

	month, err := svc.CreateMonth(user.ID, &MonthRequest{MonthLabel: "January", Wage: 2000, FloatAmount: 100})
	require.NoError(t, err)

	updated, err := svc.UpdateMonth(user.ID, month.ID, &MonthRequest{MonthLabel: "January", Wage: 2400, FloatAmount: 400})
	require.NoError(t, err)
	assert.Equal(t, 2000.0, updated.StartingPoint)
}

func TestMonthOwnership(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "month-owner@example.com")
	intruder := createTestUser(t, db, "month-intruder@example.com")
	svc := NewMonthService(repository.NewMonthRepository(db))

	month, err := svc.CreateMonth(owner.ID, &MonthRequest{MonthLabel: "January", Wage: 2000, FloatAmount: 100})
	require.NoError(t, err)

	_, err = svc.UpdateMonth(intruder.ID, month.ID, &MonthRequest{MonthLabel: "Hijacked", Wage: 1, FloatAmount: 0})
	assert.ErrorIs(t, err, repository.ErrMonthNotFound)

	assert.ErrorIs(t, svc.DeleteMonth(intruder.ID, month.ID), repository.ErrMonthNotFound)
	assert.NoError(t, svc.DeleteMonth(owner.ID, month.ID))
}
