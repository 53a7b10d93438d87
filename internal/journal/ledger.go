package journal

import (
	"sync"

	"trade-journal-go/internal/models"
	"trade-journal-go/internal/statestore"

	"go.uber.org/zap"
)

const dailyTargetKey = "dailyTarget"

func collectionKey(c models.Collection) string {
	return "trades:" + string(c)
}

// Ledger owns the fixed named trade collections and the shared daily-target
// scalar. One instance is created at startup and handed to every consumer;
// each collection is backed by its own state cell under its own storage key,
// so mutating one collection never touches another.
//
// Mutations referencing an id that no longer exists are silent no-ops: in a
// single-user journal a stale reference means the record was already removed
// in this session, and there is nothing useful to report.
type Ledger struct {
	mu          sync.Mutex
	logger      *zap.Logger
	collections map[models.Collection]*statestore.Cell[[]models.TradeRecord]
	dailyTarget *statestore.Cell[float64]
}

// NewLedger acquires one state cell per known collection plus the
// daily-target scalar.
func NewLedger(store *statestore.Store, logger *zap.Logger) *Ledger {
	cells := make(map[models.Collection]*statestore.Cell[[]models.TradeRecord], len(models.Collections()))
	for _, c := range models.Collections() {
		cells[c] = statestore.NewCell(store, collectionKey(c), []models.TradeRecord{})
	}

	return &Ledger{
		logger:      logger.Named("journal"),
		collections: cells,
		dailyTarget: statestore.NewCell(store, dailyTargetKey, 0.0),
	}
}

// cell resolves the backing cell for c. Unknown names return nil so the
// calling operation degrades to a no-op.
func (l *Ledger) cell(c models.Collection) *statestore.Cell[[]models.TradeRecord] {
	cell, ok := l.collections[c]
	if !ok {
		l.logger.Warn("Operation on unknown collection", zap.String("collection", string(c)))
		return nil
	}
	return cell
}

// Trades returns a snapshot of the named collection in insertion order.
// Mutating the returned slice does not affect the ledger. Unknown
// collections yield an empty snapshot.
func (l *Ledger) Trades(c models.Collection) []models.TradeRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	cell := l.cell(c)
	if cell == nil {
		return nil
	}

	records := cell.Get()
	out := make([]models.TradeRecord, len(records))
	copy(out, records)
	return out
}

// AddTrade appends a record built from form to the named collection and
// persists it. The id is the highest existing id plus one, or 1 for an empty
// collection. The form's fields are stored verbatim; nothing is validated
// here, malformed numeric strings included.
func (l *Ledger) AddTrade(form models.TradeForm, c models.Collection) models.TradeRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	cell := l.cell(c)
	if cell == nil {
		return models.TradeRecord{}
	}

	records := cell.Get()
	next := 1
	for _, r := range records {
		if r.ID >= next {
			next = r.ID + 1
		}
	}

	record := form.Record(next)
	cell.Set(append(records, record))

	l.logger.Info("Trade added",
		zap.String("collection", string(c)),
		zap.Int("id", record.ID),
		zap.String("pair", record.Pair),
		zap.String("netProfit", record.NetProfit))
	return record
}

// UpdateTrade replaces every field of the record with the matching id,
// keeping the id itself. A missing id is a silent no-op.
func (l *Ledger) UpdateTrade(id int, form models.TradeForm, c models.Collection) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cell := l.cell(c)
	if cell == nil {
		return
	}

	records := cell.Get()
	for i, r := range records {
		if r.ID != id {
			continue
		}
		records[i] = form.Record(id)
		cell.Set(records)
		l.logger.Info("Trade updated",
			zap.String("collection", string(c)), zap.Int("id", id))
		return
	}

	l.logger.Debug("Update on missing trade",
		zap.String("collection", string(c)), zap.Int("id", id))
}

// DeleteTrade removes the record with the matching id. A missing id is a
// silent no-op.
func (l *Ledger) DeleteTrade(id int, c models.Collection) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cell := l.cell(c)
	if cell == nil {
		return
	}

	records := cell.Get()
	for i, r := range records {
		if r.ID != id {
			continue
		}
		next := make([]models.TradeRecord, 0, len(records)-1)
		next = append(next, records[:i]...)
		next = append(next, records[i+1:]...)
		cell.Set(next)
		l.logger.Info("Trade deleted",
			zap.String("collection", string(c)), zap.Int("id", id))
		return
	}

	l.logger.Debug("Delete on missing trade",
		zap.String("collection", string(c)), zap.Int("id", id))
}

// ClearTrades empties the named collection. There is no undo; the next added
// record starts over at id 1.
func (l *Ledger) ClearTrades(c models.Collection) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cell := l.cell(c)
	if cell == nil {
		return
	}

	cell.Set([]models.TradeRecord{})
	l.logger.Info("Collection cleared", zap.String("collection", string(c)))
}

// DailyTarget returns the shared daily profit target.
func (l *Ledger) DailyTarget() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dailyTarget.Get()
}

// SetDailyTarget replaces the shared daily profit target.
func (l *Ledger) SetDailyTarget(v float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dailyTarget.Set(v)
}
