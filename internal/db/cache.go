package db

import (
	"fmt"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Monthly reports are pure reads, so they can be memoized until the owner's
// next transaction or giving write. The registry tracks which report keys
// belong to which user so a write can drop all of that user's cached months
// at once.
var (
	reportCache     *ristretto.Cache
	reportCacheKeys = struct {
		sync.RWMutex
		m map[int]map[string]struct{}
	}{m: make(map[int]map[string]struct{})}
)

func InitReportCache() error {
	var err error
	reportCache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	return err
}

func reportKey(userID, month, year int) string {
	return fmt.Sprintf("report:%d:%d-%02d", userID, year, month)
}

func GetReportCache(userID, month, year int) (interface{}, bool) {
	if reportCache == nil {
		return nil, false
	}
	return reportCache.Get(reportKey(userID, month, year))
}

func SetReportCache(userID, month, year int, value interface{}) {
	if reportCache == nil {
		return
	}
	key := reportKey(userID, month, year)
	reportCacheKeys.Lock()
	if reportCacheKeys.m[userID] == nil {
		reportCacheKeys.m[userID] = make(map[string]struct{})
	}
	reportCacheKeys.m[userID][key] = struct{}{}
	reportCacheKeys.Unlock()
	reportCache.Set(key, value, 1)
}

// ClearUserReportCache drops every cached report for a user. Called on any
// transaction or giving write so reports never serve stale totals.
func ClearUserReportCache(userID int) {
	if reportCache == nil {
		return
	}
	reportCacheKeys.Lock()
	for key := range reportCacheKeys.m[userID] {
		reportCache.Del(key)
	}
	delete(reportCacheKeys.m, userID)
	reportCacheKeys.Unlock()
}
