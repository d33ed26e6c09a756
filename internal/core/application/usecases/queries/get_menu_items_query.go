package queries

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetMenuItemsQueryIsNotConstructed = errors.New(
		"GetMenuItemsQuery must be created via NewGetMenuItemsQuery constructor",
	)
)

// Menu listing sort keys. Empty means no explicit ordering beyond title.
const (
	SortByTitle = "title"
	SortByPrice = "price"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// GetMenuItemsQuery retrieves a filtered page of the menu catalog. The menu
// is readable by every authenticated role, so the query carries no actor.
//
// Filters compose: a title search, a category title, and a price ceiling may
// all be active at once.
type GetMenuItemsQuery struct {
	search   string
	category string
	maxPrice *kernel.Money
	sortBy   string
	page     int
	perPage  int

	guard guard.ConstructorGuard
}

// NewGetMenuItemsQuery creates a menu listing query. Zero values mean "no
// filter": empty search and category match everything, a nil maxPrice
// disables the ceiling. Page numbering starts at 1; perPage falls back to
// the default and is capped.
func NewGetMenuItemsQuery(
	search, category string,
	maxPrice *kernel.Money,
	sortBy string,
	page, perPage int,
) (GetMenuItemsQuery, error) {
	switch sortBy {
	case "", SortByTitle, SortByPrice:
	default:
		return GetMenuItemsQuery{}, errs.NewValueIsInvalidErrorWithCause("sortBy",
			fmt.Errorf("%q is not a sortable menu field", sortBy))
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	return GetMenuItemsQuery{
		search:   search,
		category: category,
		maxPrice: maxPrice,
		sortBy:   sortBy,
		page:     page,
		perPage:  perPage,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemsQueryIsNotConstructed)
}

// Search returns the title substring filter, or empty for no filter.
func (q GetMenuItemsQuery) Search() string {
	return q.search
}

// Category returns the category title filter, or empty for no filter.
func (q GetMenuItemsQuery) Category() string {
	return q.category
}

// MaxPrice returns the price ceiling, or nil for no ceiling.
func (q GetMenuItemsQuery) MaxPrice() *kernel.Money {
	return q.maxPrice
}

// SortBy returns the requested sort key, or empty for the default order.
func (q GetMenuItemsQuery) SortBy() string {
	return q.sortBy
}

// Page returns the 1-based page number.
func (q GetMenuItemsQuery) Page() int {
	return q.page
}

// PerPage returns the page size.
func (q GetMenuItemsQuery) PerPage() int {
	return q.perPage
}

// MenuItemResponse is one catalog entry with its category title resolved.
type MenuItemResponse struct {
	ID         kernel.UUID
	Title      string
	Price      kernel.Money
	Featured   bool
	CategoryID kernel.UUID
	Category   string
}
