// mysql.go
package repository

import (
	"database/sql"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"go-odds/config"
	"go-odds/engine"
	"go-odds/logger"
)

var historyDB *sql.DB

const createHistoryTable = `CREATE TABLE IF NOT EXISTS calculations (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	deck_size INT NOT NULL,
	matching_cards INT NOT NULL,
	draw_count INT NOT NULL,
	min_matches INT NOT NULL,
	probability DOUBLE NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// InitMySQL 初始化历史记录存储。DSN 未配置或连不上就停用历史功能，服务照常启动。
func InitMySQL(cfg config.Config) {
	if cfg.MySQLDSN == "" {
		logger.L.Info("未配置 MySQL，历史记录停用")
		return
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		logger.L.Warn("MySQL 打开失败，历史记录停用", zap.Error(err))
		return
	}
	if err := db.Ping(); err != nil {
		logger.L.Warn("MySQL 连接失败，历史记录停用", zap.Error(err))
		return
	}
	if _, err := db.Exec(createHistoryTable); err != nil {
		logger.L.Warn("初始化历史表失败，历史记录停用", zap.Error(err))
		return
	}

	historyDB = db
	logger.L.Info("✅ MySQL 连接成功")
}

// HistoryEnabled 历史记录是否可用
func HistoryEnabled() bool {
	return historyDB != nil
}

// CalculationRecord 一条历史记录
type CalculationRecord struct {
	DeckSize      int
	MatchingCards int
	DrawCount     int
	MinMatches    int
	Probability   float64
	CreatedAt     time.Time
}

// InsertCalculation 落一条计算历史，失败只记日志
func InsertCalculation(p engine.Params, probability float64) {
	if historyDB == nil {
		return
	}

	_, err := historyDB.Exec(
		`INSERT INTO calculations (deck_size, matching_cards, draw_count, min_matches, probability) VALUES (?, ?, ?, ?, ?)`,
		p.DeckSize, p.MatchingCards, p.DrawCount, p.MinMatches, probability,
	)
	if err != nil {
		logger.L.Warn("❌ 写入历史失败", zap.Error(err))
	}
}

// RecentCalculations 返回最近 limit 条历史，新的在前
func RecentCalculations(limit int) ([]CalculationRecord, error) {
	if historyDB == nil {
		return nil, nil
	}

	rows, err := historyDB.Query(
		`SELECT deck_size, matching_cards, draw_count, min_matches, probability, created_at
		 FROM calculations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []CalculationRecord
	for rows.Next() {
		var rec CalculationRecord
		if err := rows.Scan(&rec.DeckSize, &rec.MatchingCards, &rec.DrawCount, &rec.MinMatches, &rec.Probability, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
