package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"Notely/pkg/log"
	"Notely/types"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NoteCache 笔记详情读缓存，写入和删除失败只记录日志，按未命中处理
type NoteCache struct {
	redis *redis.Client
}

func NewNoteCache(rds *redis.Client) *NoteCache {
	return &NoteCache{redis: rds}
}

func (c *NoteCache) key(noteID int64) string {
	return fmt.Sprintf("note:detail:%d", noteID)
}

func (c *NoteCache) Get(ctx context.Context, noteID int64) (*types.NoteDetail, bool) {
	val, err := c.redis.Get(ctx, c.key(noteID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.L.Warn("note cache get", zap.Int64("note_id", noteID), zap.Error(err))
		}
		return nil, false
	}

	var detail types.NoteDetail
	if err := json.Unmarshal([]byte(val), &detail); err != nil {
		log.L.Warn("note cache decode", zap.Int64("note_id", noteID), zap.Error(err))
		return nil, false
	}
	return &detail, true
}

func (c *NoteCache) Set(ctx context.Context, noteID int64, detail *types.NoteDetail, ttl time.Duration) {
	data, err := json.Marshal(detail)
	if err != nil {
		log.L.Warn("note cache encode", zap.Int64("note_id", noteID), zap.Error(err))
		return
	}
	if err := c.redis.Set(ctx, c.key(noteID), data, ttl).Err(); err != nil {
		log.L.Warn("note cache set", zap.Int64("note_id", noteID), zap.Error(err))
	}
}

func (c *NoteCache) Del(ctx context.Context, noteID int64) {
	if err := c.redis.Del(ctx, c.key(noteID)).Err(); err != nil {
		log.L.Warn("note cache del", zap.Int64("note_id", noteID), zap.Error(err))
	}
}
