package cache

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Key fingerprints document content for cache lookups. xxhash is not
// cryptographic; it only needs a low collision rate for short-lived
// in-memory entries.
func Key(content string) string {
	return "semcheck:v1:" + strconv.FormatUint(xxhash.Sum64String(content), 16)
}
