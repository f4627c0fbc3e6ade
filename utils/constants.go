// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis booking session keys.
const SessionCachePrefix = "booking:session:"

// SessionCacheTTL is the time-to-live for an open booking session.
const SessionCacheTTL = 30 * time.Minute
