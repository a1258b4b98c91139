package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	ledgerdomain "github.com/equiprofile/equiprofile/internal/ledger/domain"
	"github.com/equiprofile/equiprofile/internal/ledger/repository"
	"github.com/equiprofile/equiprofile/internal/realtime"
	"github.com/equiprofile/equiprofile/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (ledgerdomain.Service, *realtime.Hub, *snowflake.Node) {
	t.Helper()

	conn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&ledgerdomain.IncomeRecord{},
		&ledgerdomain.ExpenseRecord{},
		&ledgerdomain.CompetitionRecord{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	hub := realtime.NewHub(zap.NewNop())
	svc := New(Params{
		DB:     conn,
		Log:    zap.NewNop(),
		GenID:  node,
		Repo:   repository.Provide(),
		Events: hub,
	})
	return svc, hub, node
}

func TestCreateIncomeRejectsNegativeAmount(t *testing.T) {
	svc, _, _ := newTestService(t)
	tenant := snowflake.ID(1001)

	_, err := svc.CreateIncome(context.Background(), tenant, ledgerdomain.CreateIncomeRequest{
		Date:   "2026-01-05",
		Source: "lesson",
		Amount: -100,
	})
	assert.ErrorIs(t, err, ledgerdomain.ErrInvalidAmount)

	records, err := svc.ListIncome(context.Background(), tenant, ledgerdomain.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, records, "rejected record must not be stored")
}

func TestCreateExpenseValidation(t *testing.T) {
	svc, _, _ := newTestService(t)
	tenant := snowflake.ID(1001)

	_, err := svc.CreateExpense(context.Background(), tenant, ledgerdomain.CreateExpenseRequest{
		Date:     "2026-01-05",
		Category: "crystals",
		Amount:   100,
	})
	assert.ErrorIs(t, err, ledgerdomain.ErrInvalidCategory)

	_, err = svc.CreateExpense(context.Background(), tenant, ledgerdomain.CreateExpenseRequest{
		Date:     "not-a-date",
		Category: "feed",
		Amount:   100,
	})
	assert.ErrorIs(t, err, ledgerdomain.ErrInvalidDate)

	_, err = svc.CreateExpense(context.Background(), tenant, ledgerdomain.CreateExpenseRequest{
		Date:     "2026-01-05",
		Category: "feed",
		Amount:   -1,
	})
	assert.ErrorIs(t, err, ledgerdomain.ErrInvalidAmount)
}

func TestTenantIsolation(t *testing.T) {
	svc, _, _ := newTestService(t)
	tenantA := snowflake.ID(1001)
	tenantB := snowflake.ID(2002)

	created, err := svc.CreateIncome(context.Background(), tenantA, ledgerdomain.CreateIncomeRequest{
		Date:   "2026-01-05",
		Source: "boarding",
		Amount: 45000,
	})
	require.NoError(t, err)

	// Tenant B sees nothing.
	records, err := svc.ListIncome(context.Background(), tenantB, ledgerdomain.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)

	// Tenant B cannot update or delete tenant A's record.
	_, err = svc.UpdateIncome(context.Background(), tenantB, ledgerdomain.UpdateIncomeRequest{ID: created.ID})
	assert.ErrorIs(t, err, ledgerdomain.ErrNotFound)
	err = svc.DeleteIncome(context.Background(), tenantB, created.ID)
	assert.ErrorIs(t, err, ledgerdomain.ErrNotFound)

	// The record survives untouched for tenant A.
	records, err = svc.ListIncome(context.Background(), tenantA, ledgerdomain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(45000), records[0].Amount)
	assert.Equal(t, "450.00", records[0].AmountDisplay)
}

func TestUpdateIncomePatchSemantics(t *testing.T) {
	svc, _, _ := newTestService(t)
	tenant := snowflake.ID(1001)

	created, err := svc.CreateIncome(context.Background(), tenant, ledgerdomain.CreateIncomeRequest{
		Date:        "2026-01-05",
		Source:      "lesson",
		Amount:      3500,
		Description: "Flatwork lesson",
	})
	require.NoError(t, err)

	amount := int64(4000)
	updated, err := svc.UpdateIncome(context.Background(), tenant, ledgerdomain.UpdateIncomeRequest{
		ID:     created.ID,
		Amount: &amount,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4000), updated.Amount)
	assert.Equal(t, "Flatwork lesson", updated.Description, "untouched fields keep their value")
	assert.Equal(t, "lesson", updated.Source)
}

func TestDeleteCompetitionPublishesEvent(t *testing.T) {
	svc, hub, _ := newTestService(t)
	tenant := snowflake.ID(1001)

	created, err := svc.CreateCompetition(context.Background(), tenant, ledgerdomain.CreateCompetitionRequest{
		Date:       "2026-03-01",
		Name:       "Spring Showjumping",
		Discipline: "showjumping",
		Placement:  1,
		EntryFee:   2500,
		PrizeMoney: 10000,
	})
	require.NoError(t, err)

	sub, err := hub.Subscribe(tenant, realtime.ModuleCompetitions)
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, svc.DeleteCompetition(context.Background(), tenant, created.ID))

	event := <-sub.Events()
	assert.Equal(t, realtime.ActionDeleted, event.Action)
	assert.Equal(t, map[string]string{"id": created.ID}, event.Payload)

	err = svc.DeleteCompetition(context.Background(), tenant, created.ID)
	assert.ErrorIs(t, err, ledgerdomain.ErrNotFound)
}

func TestListIncomeFilters(t *testing.T) {
	svc, _, node := newTestService(t)
	tenant := snowflake.ID(1001)
	horse := node.Generate().String()

	seed := []ledgerdomain.CreateIncomeRequest{
		{Date: "2026-01-05", Source: "lesson", Amount: 3500, HorseID: &horse},
		{Date: "2026-02-10", Source: "prize", Amount: 10000},
		{Date: "2026-03-15", Source: "lesson", Amount: 3500},
	}
	for _, req := range seed {
		_, err := svc.CreateIncome(context.Background(), tenant, req)
		require.NoError(t, err)
	}

	bySource, err := svc.ListIncome(context.Background(), tenant, ledgerdomain.ListFilter{Category: "lesson"})
	require.NoError(t, err)
	assert.Len(t, bySource, 2)

	byRange, err := svc.ListIncome(context.Background(), tenant, ledgerdomain.ListFilter{
		StartDate: "2026-02-01",
		EndDate:   "2026-02-28",
	})
	require.NoError(t, err)
	require.Len(t, byRange, 1)
	assert.Equal(t, "prize", byRange[0].Source)

	byHorse, err := svc.ListIncome(context.Background(), tenant, ledgerdomain.ListFilter{HorseID: horse})
	require.NoError(t, err)
	require.Len(t, byHorse, 1)
	assert.Equal(t, "2026-01-05", byHorse[0].Date)
}
