package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config 服务运行配置，全部来自环境变量。
// MySQLDSN 留空表示不启用历史记录；DSN 需要带 parseTime=true。
type Config struct {
	Addr          string `env:"GO_ODDS_ADDR" envDefault:":8000"`
	Mode          string `env:"GO_ODDS_MODE" envDefault:"debug"`
	RedisAddr     string `env:"GO_ODDS_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"GO_ODDS_REDIS_PASSWORD"`
	RedisDB       int    `env:"GO_ODDS_REDIS_DB" envDefault:"0"`
	MySQLDSN      string `env:"GO_ODDS_MYSQL_DSN"`
	HistoryLimit  int    `env:"GO_ODDS_HISTORY_LIMIT" envDefault:"20"`
}

// Load 从环境变量解析配置
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
