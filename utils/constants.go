// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// PermCachePrefix is the prefix for cached admin permission sets.
const PermCachePrefix = "perms:"

// PermCacheTTL is the time-to-live for cached admin permission sets.
const PermCacheTTL = 5 * time.Minute

// BookingSessionPrefix is the prefix for in-flight booking session keys.
const BookingSessionPrefix = "bookingSession:"

// BookingSessionTTL is how long an unconfirmed selection survives.
const BookingSessionTTL = 15 * time.Minute
