// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis session cache keys.
const AuthCachePrefix = "authSession:"

// AuthUserPrefix maps a user ID to the token hash of the user's cached session.
const AuthUserPrefix = "authSessionUser:"

// AuthCacheTTL is the time-to-live for session cache entries.
const AuthCacheTTL = 10 * time.Minute

// AvailabilityCachePrefix is the prefix of per-day availability hashes.
const AvailabilityCachePrefix = "availability:"
