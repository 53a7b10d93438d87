package models

// Well-known values for the enumerated trade fields. The journal never
// validates them on write; they exist for callers that build or match
// records.
const (
	TypeBuy  = "buy"
	TypeSell = "sell"

	TrendUp       = "up"
	TrendDown     = "down"
	TrendSideways = "sideways"

	WinLossWin  = "win"
	WinLossLoss = "loss"
)

// TradeRecord is one logged trade inside a collection. Every field except
// the id is stored exactly as the user entered it, numeric values included:
// the journal keeps strings and only the statistics layer parses them.
type TradeRecord struct {
	ID        int    `json:"id"`
	Strategy  string `json:"strategy"`
	Pair      string `json:"pair"`
	Type      string `json:"type"`      // "buy" or "sell"
	OpenTime  string `json:"openTime"`  // YYYY-MM-DD
	TradeTime string `json:"tradeTime"` // HH:mm
	Timeframe string `json:"timeframe"`
	Trend     string `json:"trend"`
	LotSize   string `json:"lotSize"`
	WinLoss   string `json:"winLoss"`
	NetProfit string `json:"netProfit"`
	Balance   string `json:"balance"`
	Candles   string `json:"candles"`
}

// TradeForm carries the user-entered fields of a trade. The journal assigns
// the id when the record is created, so the form never carries one.
type TradeForm struct {
	Strategy  string `json:"strategy"`
	Pair      string `json:"pair"`
	Type      string `json:"type"`
	OpenTime  string `json:"openTime"`
	TradeTime string `json:"tradeTime"`
	Timeframe string `json:"timeframe"`
	Trend     string `json:"trend"`
	LotSize   string `json:"lotSize"`
	WinLoss   string `json:"winLoss"`
	NetProfit string `json:"netProfit"`
	Balance   string `json:"balance"`
	Candles   string `json:"candles"`
}

// Record builds a TradeRecord from the form under the given id.
func (f TradeForm) Record(id int) TradeRecord {
	return TradeRecord{
		ID:        id,
		Strategy:  f.Strategy,
		Pair:      f.Pair,
		Type:      f.Type,
		OpenTime:  f.OpenTime,
		TradeTime: f.TradeTime,
		Timeframe: f.Timeframe,
		Trend:     f.Trend,
		LotSize:   f.LotSize,
		WinLoss:   f.WinLoss,
		NetProfit: f.NetProfit,
		Balance:   f.Balance,
		Candles:   f.Candles,
	}
}
