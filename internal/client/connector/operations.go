package connector

import (
	"time"

	"github.com/iudanet/formsync/pkg/api"
)

// TTL по умолчанию для операций
const (
	ListTTL   = 15 * time.Second
	SingleTTL = 60 * time.Second
)

// defaultTTLs время жизни кеша по операциям. Изменяющие операции не кешируются.
var defaultTTLs = map[string]time.Duration{
	api.OpListStores: ListTTL,
	api.OpGetRows:    ListTTL,
	api.OpMeta:       SingleTTL,
}

var mutations = map[string]bool{
	api.OpSetHeader:      true,
	api.OpClearRows:      true,
	api.OpAppendRows:     true,
	api.OpCreateStore:    true,
	api.OpAppendResponse: true,
}

// DefaultTTL returns the cache lifetime used when Fetch gets no WithTTL.
// Unknown operations are not cached.
func DefaultTTL(operation string) time.Duration {
	return defaultTTLs[operation]
}

// IsMutation reports whether operation changes the store. Mutations are
// never cached, never deduplicated and invalidate the store's cached reads.
func IsMutation(operation string) bool {
	return mutations[operation]
}
