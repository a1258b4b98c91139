package aggregate

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestSummarizeMatchesBreakdownTotal(t *testing.T) {
	rows := []Row{
		{Date: day("2026-01-05"), Key: "feed", AmountMinor: 4500},
		{Date: day("2026-01-09"), Key: "vet", AmountMinor: 12000},
		{Date: day("2026-02-01"), Key: "feed", AmountMinor: 3100},
		{Date: day("2026-02-14"), Key: "farrier", AmountMinor: 8000},
	}

	summary := Summarize(rows)
	assert.Equal(t, int64(27600), summary.TotalMinor)
	assert.Equal(t, 4, summary.Count)

	var breakdownTotal int64
	var breakdownCount int
	for _, entry := range BreakdownBy(rows) {
		breakdownTotal += entry.AmountMinor
		breakdownCount += entry.Count
	}
	assert.Equal(t, summary.TotalMinor, breakdownTotal)
	assert.Equal(t, summary.Count, breakdownCount)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, int64(0), summary.TotalMinor)
	assert.Equal(t, 0, summary.Count)
	assert.Empty(t, BreakdownBy(nil))
}

func TestBreakdownByOrdersByAmountDescending(t *testing.T) {
	rows := []Row{
		{Key: "feed", AmountMinor: 100},
		{Key: "vet", AmountMinor: 900},
		{Key: "feed", AmountMinor: 200},
		{Key: "tack", AmountMinor: 300},
		{Key: "bedding", AmountMinor: 300},
	}

	entries := BreakdownBy(rows)
	require.Len(t, entries, 4)
	assert.Equal(t, "vet", entries[0].Key)
	// tack and bedding tie at 300; first-seen order wins.
	assert.Equal(t, "tack", entries[1].Key)
	assert.Equal(t, "bedding", entries[2].Key)
	assert.Equal(t, "feed", entries[3].Key)
	assert.Equal(t, 2, entries[3].Count)
}

func TestBucketByMonth(t *testing.T) {
	rows := []Row{
		{Date: day("2026-01-31"), AmountMinor: 100},
		{Date: day("2026-01-01"), AmountMinor: 200},
		{Date: day("2026-03-15"), AmountMinor: 700},
	}

	buckets := BucketByMonth(rows, 6)
	require.Len(t, buckets, 2, "February has no records and must be omitted")

	assert.Equal(t, "Jan 2026", buckets[0].Label)
	assert.Equal(t, int64(300), buckets[0].AmountMinor)
	assert.Equal(t, 2, buckets[0].Count)

	assert.Equal(t, "Mar 2026", buckets[1].Label)
	assert.Equal(t, int64(700), buckets[1].AmountMinor)
}

func TestBucketByMonthKeepsMostRecent(t *testing.T) {
	var rows []Row
	for m := 1; m <= 9; m++ {
		rows = append(rows, Row{
			Date:        time.Date(2026, time.Month(m), 10, 0, 0, 0, 0, time.UTC),
			AmountMinor: int64(m),
		})
	}

	buckets := BucketByMonth(rows, 0)
	require.Len(t, buckets, DefaultMonthsBack)
	assert.Equal(t, "Apr 2026", buckets[0].Label)
	assert.Equal(t, "Sep 2026", buckets[len(buckets)-1].Label)
}

func TestCrossTabulateByHorseKeepsIdleHorses(t *testing.T) {
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	bella := HorseRef{ID: node.Generate(), Name: "Bella"}
	storm := HorseRef{ID: node.Generate(), Name: "Storm"}
	foreign := node.Generate()

	activity := CrossTabulateByHorse(
		[]HorseRef{bella, storm},
		[]snowflake.ID{bella.ID, bella.ID, foreign},
		[]snowflake.ID{storm.ID},
		nil,
	)

	require.Len(t, activity, 2)
	assert.Equal(t, "Bella", activity[0].HorseName)
	assert.Equal(t, 2, activity[0].TrainingCount)
	assert.Equal(t, 0, activity[0].CompetitionCount)
	assert.Equal(t, 0, activity[0].HealthCount)

	assert.Equal(t, "Storm", activity[1].HorseName)
	assert.Equal(t, 0, activity[1].TrainingCount)
	assert.Equal(t, 1, activity[1].CompetitionCount)
}

func TestComputeProfitLoss(t *testing.T) {
	jan := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	income := []MonthBucket{
		{Month: jan, Label: "Jan 2026", AmountMinor: 10000},
	}
	expenses := []MonthBucket{
		{Month: jan, Label: "Jan 2026", AmountMinor: 6000},
		{Month: feb, Label: "Feb 2026", AmountMinor: 2500},
	}

	points := ComputeProfitLoss(income, expenses)
	require.Len(t, points, 2)

	assert.Equal(t, "Jan 2026", points[0].Label)
	assert.Equal(t, int64(10000), points[0].IncomeMinor)
	assert.Equal(t, int64(6000), points[0].ExpenseMinor)
	assert.Equal(t, int64(4000), points[0].ProfitMinor)

	// February has no income; the missing side counts as zero.
	assert.Equal(t, int64(0), points[1].IncomeMinor)
	assert.Equal(t, int64(-2500), points[1].ProfitMinor)
}

func TestComputeProfitLossCapsToSixMonths(t *testing.T) {
	var income []MonthBucket
	for m := 1; m <= 8; m++ {
		month := time.Date(2026, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
		income = append(income, MonthBucket{Month: month, Label: month.Format("Jan 2006"), AmountMinor: 100})
	}

	points := ComputeProfitLoss(income, nil)
	require.Len(t, points, DefaultMonthsBack)
	assert.Equal(t, "Mar 2026", points[0].Label)
	assert.Equal(t, "Aug 2026", points[len(points)-1].Label)
}

func TestRatioZeroDenominator(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(5, 0))
	assert.InDelta(t, 0.5, Ratio(1, 2), 1e-9)
}
