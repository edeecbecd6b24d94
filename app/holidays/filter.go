package holidays

import "github.com/joefazee/holidays/internal/provider"

// Filter keeps the records whose Name is in allowList, preserving order.
// A nil allowList keeps everything; an empty one keeps nothing.
func Filter(records []provider.Holiday, allowList []string) []provider.Holiday {
	if allowList == nil {
		return records
	}

	allowed := make(map[string]struct{}, len(allowList))
	for _, name := range allowList {
		allowed[name] = struct{}{}
	}

	filtered := make([]provider.Holiday, 0, len(records))
	for i := range records {
		if _, ok := allowed[records[i].Name]; ok {
			filtered = append(filtered, records[i])
		}
	}
	return filtered
}
