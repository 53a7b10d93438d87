package journal

import (
	"testing"
	"time"

	"trade-journal-go/internal/models"

	"github.com/stretchr/testify/assert"
)

func record(openTime, winLoss, netProfit string) models.TradeRecord {
	return models.TradeRecord{
		OpenTime:  openTime,
		WinLoss:   winLoss,
		NetProfit: netProfit,
	}
}

func TestCalculateStatsEmptyCollection(t *testing.T) {
	s := CalculateStats(nil)

	assert.Equal(t, 0, s.TotalTrades)
	assert.Equal(t, "0%", s.WinRate)
	assert.Equal(t, 0.0, s.NetProfit)
	assert.Equal(t, 0.0, s.BestTrade)
	assert.Equal(t, 0.0, s.WorstTrade)
	assert.Equal(t, 0, s.ProfitableDaysCount)
	assert.Equal(t, 0.0, s.BestDayProfit)
}

func TestCalculateStatsAggregation(t *testing.T) {
	// Arrange: two wins and a loss across two days.
	records := []models.TradeRecord{
		record("2024-01-01", models.WinLossWin, "10.00"),
		record("2024-01-01", models.WinLossLoss, "-5.00"),
		record("2024-01-02", models.WinLossWin, "20.00"),
	}
	now, _ := time.Parse("2006-01-02", "2024-03-15")

	// Act
	s := calculateStatsAt(records, now)

	// Assert
	assert.Equal(t, 3, s.TotalTrades)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.Equal(t, "66.7%", s.WinRate)
	assert.Equal(t, 25.0, s.NetProfit)
	assert.Equal(t, 20.0, s.BestTrade)
	assert.Equal(t, -5.0, s.WorstTrade)
	assert.Equal(t, 30.0, s.TotalWinProfit)
	assert.Equal(t, -5.0, s.TotalLossProfit)
	assert.Equal(t, 2, s.ProfitWins)
	assert.Equal(t, 1, s.ProfitLosses)
}

func TestCalculateStatsDayBuckets(t *testing.T) {
	// Day one sums to -10, day two to 30.
	records := []models.TradeRecord{
		record("2024-01-01", models.WinLossWin, "10"),
		record("2024-01-01", models.WinLossLoss, "-20"),
		record("2024-01-02", models.WinLossWin, "30"),
	}
	now, _ := time.Parse("2006-01-02", "2024-03-15")

	s := calculateStatsAt(records, now)

	assert.Equal(t, 1, s.ProfitableDaysCount)
	assert.Equal(t, 30.0, s.BestDayProfit)
}

func TestCalculateStatsAllLosingDays(t *testing.T) {
	// The best day of an all-losing ledger is its least-negative day, not
	// zero.
	records := []models.TradeRecord{
		record("2024-01-01", models.WinLossLoss, "-20"),
		record("2024-01-02", models.WinLossLoss, "-5"),
	}
	now, _ := time.Parse("2006-01-02", "2024-03-15")

	s := calculateStatsAt(records, now)

	assert.Equal(t, 0, s.ProfitableDaysCount)
	assert.Equal(t, -5.0, s.BestDayProfit)
	assert.Equal(t, -5.0, s.BestTrade)
	assert.Equal(t, -20.0, s.WorstTrade)
}

func TestCalculateStatsDailyProfitUsesToday(t *testing.T) {
	records := []models.TradeRecord{
		record("2024-01-01", models.WinLossWin, "10"),
		record("2024-01-02", models.WinLossWin, "30"),
		record("2024-01-02", models.WinLossLoss, "-12.5"),
	}
	now, _ := time.Parse("2006-01-02", "2024-01-02")

	s := calculateStatsAt(records, now)

	assert.Equal(t, 17.5, s.DailyProfit)
}

func TestCalculateStatsMalformedProfitCountsAsZero(t *testing.T) {
	records := []models.TradeRecord{
		record("2024-01-01", models.WinLossWin, "abc"),
		record("2024-01-01", models.WinLossWin, "10"),
	}
	now, _ := time.Parse("2006-01-02", "2024-03-15")

	s := calculateStatsAt(records, now)

	// The malformed record still counts as a trade and a flagged win, but
	// contributes nothing to any sum.
	assert.Equal(t, 2, s.TotalTrades)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 10.0, s.NetProfit)
	assert.Equal(t, 10.0, s.TotalWinProfit)
	assert.Equal(t, 1, s.ProfitWins)
	assert.Equal(t, 0, s.ProfitLosses)
}

func TestCalculateStatsFlagAndSignCanDisagree(t *testing.T) {
	// A trade flagged "win" with a negative amount counts as a flag win and
	// a sign loss; neither view is reconciled.
	records := []models.TradeRecord{
		record("2024-01-01", models.WinLossWin, "-5.00"),
	}
	now, _ := time.Parse("2006-01-02", "2024-03-15")

	s := calculateStatsAt(records, now)

	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 0, s.Losses)
	assert.Equal(t, 0, s.ProfitWins)
	assert.Equal(t, 1, s.ProfitLosses)
	assert.Equal(t, "100.0%", s.WinRate)
	assert.Equal(t, -5.0, s.TotalWinProfit)
}

func TestCalculateStatsDoesNotMutateInput(t *testing.T) {
	records := []models.TradeRecord{
		record("2024-01-01", models.WinLossWin, "10"),
	}
	original := records[0]

	CalculateStats(records)

	assert.Equal(t, original, records[0])
}
