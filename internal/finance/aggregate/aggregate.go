// Package aggregate folds ledger records into derived financial views:
// totals, category breakdowns, month buckets, per-horse cross-tabulations
// and profit/loss series. Every function is pure and deterministic; all
// amount arithmetic is integer pence. Empty input degrades to zeros and
// empty sequences, never to an error.
package aggregate

import (
	"sort"
	"time"

	"github.com/bwmarrin/snowflake"
)

// DefaultMonthsBack caps time-bucketed views to the most recent six months.
const DefaultMonthsBack = 6

const monthLabelLayout = "Jan 2006"

// Row is the minimal projection of a ledger record the engine folds over.
// Key carries the grouping key (category, source, discipline).
type Row struct {
	Date        time.Time
	Key         string
	AmountMinor int64
}

type Summary struct {
	TotalMinor int64
	Count      int
}

type BreakdownEntry struct {
	Key         string
	AmountMinor int64
	Count       int
}

type MonthBucket struct {
	Month       time.Time // first day of the month, UTC
	Label       string
	AmountMinor int64
	Count       int
}

type HorseRef struct {
	ID   snowflake.ID
	Name string
}

type HorseActivity struct {
	HorseID          snowflake.ID
	HorseName        string
	TrainingCount    int
	CompetitionCount int
	HealthCount      int
}

type ProfitLossPoint struct {
	Month        time.Time
	Label        string
	IncomeMinor  int64
	ExpenseMinor int64
	ProfitMinor  int64
}

// Summarize totals a record set. Empty input yields {0, 0}.
func Summarize(rows []Row) Summary {
	var s Summary
	for _, row := range rows {
		s.TotalMinor += row.AmountMinor
		s.Count++
	}
	return s
}

// BreakdownBy groups rows by Key, one entry per distinct key present in the
// input, sorted by amount descending. Keys with equal amounts keep their
// first-seen order.
func BreakdownBy(rows []Row) []BreakdownEntry {
	index := make(map[string]int)
	entries := make([]BreakdownEntry, 0)

	for _, row := range rows {
		i, ok := index[row.Key]
		if !ok {
			i = len(entries)
			index[row.Key] = i
			entries = append(entries, BreakdownEntry{Key: row.Key})
		}
		entries[i].AmountMinor += row.AmountMinor
		entries[i].Count++
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].AmountMinor > entries[j].AmountMinor
	})
	return entries
}

// BucketByMonth groups rows by the calendar month of their date and returns
// at most the monthsBack most recent distinct months present, oldest first.
// Months with no records are omitted, not zero-filled.
func BucketByMonth(rows []Row, monthsBack int) []MonthBucket {
	if monthsBack <= 0 {
		monthsBack = DefaultMonthsBack
	}

	index := make(map[time.Time]int)
	buckets := make([]MonthBucket, 0)

	for _, row := range rows {
		month := monthOf(row.Date)
		i, ok := index[month]
		if !ok {
			i = len(buckets)
			index[month] = i
			buckets = append(buckets, MonthBucket{
				Month: month,
				Label: month.Format(monthLabelLayout),
			})
		}
		buckets[i].AmountMinor += row.AmountMinor
		buckets[i].Count++
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month.Before(buckets[j].Month)
	})
	if len(buckets) > monthsBack {
		buckets = buckets[len(buckets)-monthsBack:]
	}
	return buckets
}

// CrossTabulateByHorse counts, for each horse in directory order, how many
// training, competition and health records reference it. Horses with zero
// activity still appear: the horse directory is authoritative, unlike the
// data-driven month list.
func CrossTabulateByHorse(horses []HorseRef, trainingHorseIDs, competitionHorseIDs, healthHorseIDs []snowflake.ID) []HorseActivity {
	out := make([]HorseActivity, 0, len(horses))
	index := make(map[snowflake.ID]int, len(horses))

	for _, horse := range horses {
		index[horse.ID] = len(out)
		out = append(out, HorseActivity{
			HorseID:   horse.ID,
			HorseName: horse.Name,
		})
	}

	for _, id := range trainingHorseIDs {
		if i, ok := index[id]; ok {
			out[i].TrainingCount++
		}
	}
	for _, id := range competitionHorseIDs {
		if i, ok := index[id]; ok {
			out[i].CompetitionCount++
		}
	}
	for _, id := range healthHorseIDs {
		if i, ok := index[id]; ok {
			out[i].HealthCount++
		}
	}
	return out
}

// ComputeProfitLoss merges income and expense month buckets over the union
// of months present in either side, treating a missing side as zero. The
// result is chronological and capped to the most recent DefaultMonthsBack
// months.
func ComputeProfitLoss(income, expenses []MonthBucket) []ProfitLossPoint {
	index := make(map[time.Time]int)
	points := make([]ProfitLossPoint, 0, len(income)+len(expenses))

	at := func(month time.Time, label string) int {
		i, ok := index[month]
		if !ok {
			i = len(points)
			index[month] = i
			points = append(points, ProfitLossPoint{Month: month, Label: label})
		}
		return i
	}

	for _, bucket := range income {
		points[at(bucket.Month, bucket.Label)].IncomeMinor += bucket.AmountMinor
	}
	for _, bucket := range expenses {
		points[at(bucket.Month, bucket.Label)].ExpenseMinor += bucket.AmountMinor
	}

	for i := range points {
		points[i].ProfitMinor = points[i].IncomeMinor - points[i].ExpenseMinor
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Month.Before(points[j].Month)
	})
	if len(points) > DefaultMonthsBack {
		points = points[len(points)-DefaultMonthsBack:]
	}
	return points
}

// Ratio divides num by den as a float, returning 0 when den is zero so
// presentation-layer rates never see NaN or Inf.
func Ratio(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

func monthOf(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}
