package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// AuthorSessionKey returns the cache key for an author's login session.
func (r *CacheKeyStruct) AuthorSessionKey(authorID int) string {
	return fmt.Sprintf("login:%d", authorID)
}

// DraftKey returns the cache key holding a draft editor session.
func (r *CacheKeyStruct) DraftKey(authorID int, draftID string) string {
	return fmt.Sprintf("author:%d:draft:%s", authorID, draftID)
}

// DraftFlushQueue is the Redis list drained by the draft flush worker.
func (r *CacheKeyStruct) DraftFlushQueue() string {
	return "draft_flush_queue"
}

// DraftEventChannel returns the Redis PubSub channel for one draft's events.
func (r *CacheKeyStruct) DraftEventChannel(draftID string) string {
	return fmt.Sprintf("draft:%s:events", draftID)
}

var CacheKey = NewCacheKeyStruct()
