package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key for a user's login session.
func (r *CacheKeyStruct) UserSessionKey(userID int) string {
	return fmt.Sprintf("login:%d", userID)
}

// AttemptStateKey returns the cache key for a user's mock exam attempt state.
func (r *CacheKeyStruct) AttemptStateKey(userID int, examType string) string {
	return fmt.Sprintf("user:%d:mockexam:%s:attempt", userID, examType)
}

// ComposedExamKey returns the cache key for a user's composed exam paper.
func (r *CacheKeyStruct) ComposedExamKey(userID int, examType string) string {
	return fmt.Sprintf("user:%d:mockexam:%s:paper", userID, examType)
}

// QuestionPoolKey returns the cache key for an exam type's question pool.
func (r *CacheKeyStruct) QuestionPoolKey(examType string) string {
	return fmt.Sprintf("pool:%s:questions", examType)
}

var CacheKey = NewCacheKeyStruct()
