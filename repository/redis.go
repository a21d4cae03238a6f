// redis.go
package repository

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"go-odds/config"
	"go-odds/engine"
	"go-odds/logger"
)

var (
	Rdb *redis.Client
	Ctx = context.Background()
)

// 缓存键过期时间。同样的入参结果永远一样，过期只是为了控制内存
const cacheTTL = 24 * time.Hour

// InitRedis 初始化结果缓存。连不上只告警并停用缓存，服务照常启动。
func InitRedis(cfg config.Config) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if _, err := client.Ping(Ctx).Result(); err != nil {
		logger.L.Warn("Redis 连接失败，结果缓存停用", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		return
	}
	Rdb = client
	logger.L.Info("✅ Redis 连接成功", zap.String("addr", cfg.RedisAddr))
}

// CachedResult 缓存里的一条计算结果
type CachedResult struct {
	Probability float64 `json:"probability"`
	Percentage  string  `json:"percentage"`
}

// 以四个计算参数构造缓存键
func cacheKey(p engine.Params) string {
	return fmt.Sprintf("calc:%d:%d:%d:%d", p.DeckSize, p.MatchingCards, p.DrawCount, p.MinMatches)
}

// GetCachedResult 查缓存。缓存未启用、未命中、内容解析失败都按未命中处理。
func GetCachedResult(p engine.Params) (CachedResult, bool) {
	if Rdb == nil {
		return CachedResult{}, false
	}

	key := cacheKey(p)
	fields, err := Rdb.HGetAll(Ctx, key).Result()
	if err != nil || len(fields) == 0 {
		return CachedResult{}, false
	}

	result, err := decodeCachedResult(fields)
	if err != nil {
		logger.L.Warn("❌ 缓存内容解析失败", zap.String("key", key), zap.Error(err))
		return CachedResult{}, false
	}
	return result, true
}

// SetCachedResult 写缓存，失败只记日志不影响本次请求
func SetCachedResult(p engine.Params, result CachedResult) {
	if Rdb == nil {
		return
	}

	key := cacheKey(p)
	fields := map[string]interface{}{
		"probability": strconv.FormatFloat(result.Probability, 'g', -1, 64),
		"percentage":  result.Percentage,
	}
	if err := Rdb.HSet(Ctx, key, fields).Err(); err != nil {
		logger.L.Warn("❌ 写入缓存失败", zap.String("key", key), zap.Error(err))
		return
	}
	Rdb.Expire(Ctx, key, cacheTTL)
}

// 把 Redis Hash（字段值全是字符串）解码回结构体
func decodeCachedResult(fields map[string]string) (CachedResult, error) {
	var result CachedResult
	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook: stringToFloatHookFunc(),
		Result:     &result,
		TagName:    "json",
	}

	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return CachedResult{}, err
	}
	if err := decoder.Decode(fields); err != nil {
		return CachedResult{}, err
	}
	return result, nil
}

// 自定义 HookFunc，把字符串转换成 float64
func stringToFloatHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from == reflect.String && to == reflect.Float64 {
			return strconv.ParseFloat(data.(string), 64)
		}
		return data, nil
	}
}
