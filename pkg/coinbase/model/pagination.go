package model

import "strings"

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ParseOrder is case-insensitive and falls back to OrderDesc, the API
// default.
func ParseOrder(s string) Order {
	if strings.EqualFold(string(OrderAsc), s) {
		return OrderAsc
	}
	return OrderDesc
}

type Pagination struct {
	Limit                int
	Order                Order
	EndingBefore         string
	StartingAfter        string
	PreviousEndingBefore string
	NextStartingAfter    string
	PreviousURI          string
	NextURI              string
}

func (p Pagination) HasNext() bool {
	return p.NextURI != ""
}

func (p Pagination) HasPrevious() bool {
	return p.PreviousURI != ""
}

// Page is a paginated listing.
type Page[T any] struct {
	Pagination Pagination
	Data       []T
}
