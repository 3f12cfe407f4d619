package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"coalplan/internal/model"
)

const dateLayout = "2006-01-02"

// SQLiteRecorder persists planning output to a SQLite database.
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

	// WAL mode for better concurrent read performance (dashboards read
	// while the planner writes).
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
		`CREATE TABLE IF NOT EXISTS blended_coal (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			date      TEXT NOT NULL,
			phase     INTEGER NOT NULL,
			coal_type TEXT NOT NULL,
			amount    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_blended_date ON blended_coal(date)`,

		`CREATE TABLE IF NOT EXISTS achieved_gcvs (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			date         TEXT NOT NULL,
			phase        INTEGER NOT NULL,
			achieved_gcv REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_gcv_date ON achieved_gcvs(date)`,

		`CREATE TABLE IF NOT EXISTS deviations (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			date      TEXT NOT NULL,
			phase     INTEGER NOT NULL,
			deviation REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_dev_date ON deviations(date)`,

		`CREATE TABLE IF NOT EXISTS daily_procurement_report (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			date           TEXT NOT NULL,
			consumption_p1 REAL,
			consumption_p2 REAL,
			consumption_p3 REAL,
			consumption_p4 REAL,
			port_a         REAL,
			port_b         REAL,
			port_c         REAL,
			port_d         REAL,
			port_e         REAL,
			site_p1        REAL,
			site_p2        REAL,
			site_p3        REAL,
			site_p4        REAL,
			supply_p1      REAL,
			supply_p2      REAL,
			supply_p3      REAL,
			supply_p4      REAL,
			buy_b          REAL,
			buy_c          REAL,
			buy_d          REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_report_date ON daily_procurement_report(date)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordBlend(res model.BlendResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	date := res.Date.Format(dateLayout)
	for _, t := range model.CoalTypes {
		if _, err := r.db.Exec(`INSERT INTO blended_coal (date, phase, coal_type, amount) VALUES (?,?,?,?)`,
			date, int(res.Phase), string(t), res.Blend[t],
		); err != nil {
			return err
		}
	}
	if _, err := r.db.Exec(`INSERT INTO achieved_gcvs (date, phase, achieved_gcv) VALUES (?,?,?)`,
		date, int(res.Phase), res.AchievedGCV,
	); err != nil {
		return err
	}
	_, err := r.db.Exec(`INSERT INTO deviations (date, phase, deviation) VALUES (?,?,?)`,
		date, int(res.Phase), res.Deviation,
	)
	return err
}

func (r *SQLiteRecorder) RecordDay(rec model.DailyRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO daily_procurement_report
		(date,
		 consumption_p1, consumption_p2, consumption_p3, consumption_p4,
		 port_a, port_b, port_c, port_d, port_e,
		 site_p1, site_p2, site_p3, site_p4,
		 supply_p1, supply_p2, supply_p3, supply_p4,
		 buy_b, buy_c, buy_d)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rec.Date.Format(dateLayout),
		rec.Consumption[model.Phase1], rec.Consumption[model.Phase2],
		rec.Consumption[model.Phase3], rec.Consumption[model.Phase4],
		rec.PortStock[model.CoalA], rec.PortStock[model.CoalB],
		rec.PortStock[model.CoalC], rec.PortStock[model.CoalD],
		rec.PortStock[model.CoalE],
		rec.SiteStock[model.Phase1], rec.SiteStock[model.Phase2],
		rec.SiteStock[model.Phase3], rec.SiteStock[model.Phase4],
		rec.PortSupply[model.Phase1], rec.PortSupply[model.Phase2],
		rec.PortSupply[model.Phase3], rec.PortSupply[model.Phase4],
		rec.Procurement[model.CoalB], rec.Procurement[model.CoalC],
		rec.Procurement[model.CoalD],
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
