package journal

import (
	"fmt"
	"strconv"
	"time"

	"trade-journal-go/internal/models"
)

// Summary holds the aggregate statistics derived from one collection. It is
// recomputed from the records on every call and never persisted, so it can
// not go stale.
//
// Wins and Losses count the user-entered winLoss flag, while ProfitWins and
// ProfitLosses count the sign of the parsed netProfit. The two can disagree
// for a single record (a trade flagged "win" but logged with a negative
// amount) and both are reported as entered, not reconciled. WinRate follows
// the flag counts.
type Summary struct {
	TotalTrades         int     `json:"totalTrades"`
	Wins                int     `json:"wins"`
	Losses              int     `json:"losses"`
	WinRate             string  `json:"winRate"`
	NetProfit           float64 `json:"netProfit"`
	BestTrade           float64 `json:"bestTrade"`
	WorstTrade          float64 `json:"worstTrade"`
	TotalWinProfit      float64 `json:"totalWinProfit"`
	TotalLossProfit     float64 `json:"totalLossProfit"`
	ProfitWins          int     `json:"profitWins"`
	ProfitLosses        int     `json:"profitLosses"`
	DailyProfit         float64 `json:"dailyProfit"`
	ProfitableDaysCount int     `json:"profitableDaysCount"`
	BestDayProfit       float64 `json:"bestDayProfit"`
}

const dateLayout = "2006-01-02"

// parseAmount converts a user-entered monetary string to a float. An amount
// that does not parse contributes zero to every sum; the record itself still
// counts toward the trade totals.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// CalculateStats derives a Summary from records. It is pure: the input is
// never modified and the same records always yield the same summary, up to
// the local calendar date used for DailyProfit.
func CalculateStats(records []models.TradeRecord) Summary {
	return calculateStatsAt(records, time.Now())
}

func calculateStatsAt(records []models.TradeRecord, now time.Time) Summary {
	s := Summary{TotalTrades: len(records), WinRate: "0%"}
	today := now.Format(dateLayout)
	dayTotals := make(map[string]float64)

	for i, r := range records {
		profit := parseAmount(r.NetProfit)

		s.NetProfit += profit
		if i == 0 || profit > s.BestTrade {
			s.BestTrade = profit
		}
		if i == 0 || profit < s.WorstTrade {
			s.WorstTrade = profit
		}

		switch r.WinLoss {
		case models.WinLossWin:
			s.Wins++
			s.TotalWinProfit += profit
		case models.WinLossLoss:
			s.Losses++
			s.TotalLossProfit += profit
		}

		if profit > 0 {
			s.ProfitWins++
		} else if profit < 0 {
			s.ProfitLosses++
		}

		if r.OpenTime == today {
			s.DailyProfit += profit
		}
		dayTotals[r.OpenTime] += profit
	}

	first := true
	for _, total := range dayTotals {
		if total > 0 {
			s.ProfitableDaysCount++
		}
		if first || total > s.BestDayProfit {
			s.BestDayProfit = total
		}
		first = false
	}

	if s.TotalTrades > 0 {
		s.WinRate = fmt.Sprintf("%.1f%%", float64(s.Wins)/float64(s.TotalTrades)*100)
	}
	return s
}
