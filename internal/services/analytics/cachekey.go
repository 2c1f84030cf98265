package analytics

import (
	"crypto/md5"
	"fmt"
	"sort"
	"strings"
)

// KeyPrefix namespaces all analytics cache entries so they can be purged as
// a group without touching anything else sharing the store.
const KeyPrefix = "analytics:"

// cacheKey derives the memoization key for a logical request as
//
//	analytics:<md5 of user id>:<md5 of view + sorted params>
//
// Parameters are sorted by name before serialization so equivalent parameter
// sets collide to the same key regardless of original order. The user id is
// hashed into its own segment so a single user's entries share a prefix and
// can be invalidated together. MD5 is collision-resistant enough for keying;
// these are not security-sensitive values.
func cacheKey(userID, view string, params map[string]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+params[name])
	}

	request := view + ":" + strings.Join(pairs, "&")
	return userKeyPrefix(userID) + fmt.Sprintf("%x", md5.Sum([]byte(request)))
}

// userKeyPrefix returns the invalidation prefix covering every cached view
// for one user.
func userKeyPrefix(userID string) string {
	return KeyPrefix + fmt.Sprintf("%x", md5.Sum([]byte(userID))) + ":"
}
