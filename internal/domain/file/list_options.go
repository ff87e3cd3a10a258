package file

import "strings"

type (
	SortField string
	SortOrder string
)

const (
	SortByName      SortField = "name"
	SortByCreatedAt SortField = "created_at"
	SortBySizeBytes SortField = "size_bytes"
	SortByFileType  SortField = "file_type"

	OrderAsc  SortOrder = "ASC"
	OrderDesc SortOrder = "DESC"

	DefaultLimit = 1000
)

// ListOptions is already normalized when it reaches a repository:
// construct it with NormalizeSortField/NormalizeSortOrder so that no
// caller-supplied string ever reaches a query clause.
type ListOptions struct {
	Search    string
	SortBy    SortField
	SortOrder SortOrder
	Limit     int
	Offset    int
}

// NormalizeSortField maps anything outside the allow-list to created_at.
func NormalizeSortField(s string) SortField {
	switch SortField(s) {
	case SortByName, SortByCreatedAt, SortBySizeBytes, SortByFileType:
		return SortField(s)
	default:
		return SortByCreatedAt
	}
}

// NormalizeSortOrder is case-insensitive and falls back to DESC.
func NormalizeSortOrder(s string) SortOrder {
	switch SortOrder(strings.ToUpper(s)) {
	case OrderAsc:
		return OrderAsc
	default:
		return OrderDesc
	}
}

func (o ListOptions) WithDefaults() ListOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	if o.SortBy == "" {
		o.SortBy = SortByCreatedAt
	}
	if o.SortOrder == "" {
		o.SortOrder = OrderDesc
	}
	return o
}
