package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Arushi221/got-trading-bot/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists the trade and signal history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trades (
			id         TEXT PRIMARY KEY,
			timestamp  INTEGER NOT NULL,
			symbol     TEXT NOT NULL,
			action     TEXT NOT NULL,
			quantity   REAL,
			price      REAL,
			rationale  TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_ts ON trades(timestamp)`,

		`CREATE TABLE IF NOT EXISTS signal_snapshots (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			cycle_id         TEXT,
			symbol           TEXT NOT NULL,
			price            REAL,
			overall_action   TEXT,
			overall_reason   TEXT,
			momentum         TEXT,
			mean_reversion   TEXT,
			breakout         TEXT,
			vwap_pullback    TEXT,
			scalping         TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_ts ON signal_snapshots(timestamp)`,

		`CREATE TABLE IF NOT EXISTS valuations (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			cash           REAL,
			holdings_value REAL,
			total          REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_valuations_ts ON valuations(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordTrade(tx *model.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO trades
		(id, timestamp, symbol, action, quantity, price, rationale)
		VALUES (?,?,?,?,?,?,?)`,
		tx.ID, tx.Time.Unix(), tx.Symbol, string(tx.Action),
		tx.Quantity, tx.Price, tx.Rationale,
	)
	return err
}

func (r *SQLiteRecorder) RecordSignals(snap *SignalSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	action := func(key string) string {
		if sig, ok := snap.Breakdown[key]; ok {
			return string(sig.Action)
		}
		return ""
	}

	_, err := r.db.Exec(`INSERT INTO signal_snapshots
		(timestamp, cycle_id, symbol, price, overall_action, overall_reason,
		 momentum, mean_reversion, breakout, vwap_pullback, scalping)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.CycleID, snap.Symbol, snap.Price,
		string(snap.Overall.Action), snap.Overall.Rationale,
		action("momentum"), action("mean_reversion"), action("breakout"),
		action("vwap_pullback"), action("scalping"),
	)
	return err
}

func (r *SQLiteRecorder) RecordValuation(rec *ValuationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO valuations
		(timestamp, cash, holdings_value, total)
		VALUES (?,?,?,?)`,
		time.Now().Unix(), rec.Cash, rec.HoldingsValue, rec.Total,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
