package httpx

import (
	"net/url"
	"strings"
)

// ParseSortParam extracts sort field and direction from query values.
// Accepts both ?sort=field:dir and ?sort=field&dir=dir. An invalid
// direction yields an empty dir so callers fall back to their default.
func ParseSortParam(q url.Values, sortKey, dirKey string) (string, string) {
	sortParam := strings.TrimSpace(q.Get(sortKey))
	dirParam := strings.ToLower(strings.TrimSpace(q.Get(dirKey)))

	parts := strings.SplitN(sortParam, ":", 2)
	if len(parts) == 2 {
		fieldPart := strings.TrimSpace(parts[0])
		dirPart := strings.ToLower(strings.TrimSpace(parts[1]))
		if dirPart == SortDirAsc || dirPart == SortDirDesc {
			return fieldPart, dirPart
		}
		return fieldPart, ""
	}

	if dirParam == SortDirAsc || dirParam == SortDirDesc {
		return sortParam, dirParam
	}
	return sortParam, ""
}
