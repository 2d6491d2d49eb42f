// Package listquery turns page/limit/filter/sort parameters into GORM
// queries and computes the pagination envelope.
package listquery

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit well inside int range.
	MaxPage = 1_000_000
)

// Params are the list parameters a client may send.
type Params struct {
	Page      int    `query:"page" validate:"min=1,max=1000000"`
	Limit     int    `query:"limit" validate:"min=1,max=100"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order" validate:"omitempty,oneof=asc desc"`
}

// DefaultParams is what an empty query string means.
func DefaultParams() Params {
	return Params{Page: 1, Limit: DefaultLimit}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Sort is a resolved, allow-listed ordering.
type Sort struct {
	Field string
	Desc  bool
}

// CreatedAtDesc is the fallback ordering for most collections.
var CreatedAtDesc = Sort{Field: "created_at", Desc: true}

// SortSpec is a per-resource allow-list of sortable columns.
type SortSpec struct {
	allowed  map[string]struct{}
	fallback Sort
}

func NewSortSpec(fallback Sort, fields ...string) SortSpec {
	allowed := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		allowed[f] = struct{}{}
	}
	return SortSpec{allowed: allowed, fallback: fallback}
}

// Resolve maps a client sort request onto the allow-list. Unknown fields fall
// back to the default ordering instead of failing.
func (s SortSpec) Resolve(field, order string) Sort {
	if _, ok := s.allowed[field]; !ok {
		return s.fallback
	}
	return Sort{Field: field, Desc: order != "asc"}
}

// Filter is a column predicate. Columns always come from code, values from
// clients.
type Filter struct {
	Column string
	Op     string
	Value  any
}

func Eq(column string, value any) Filter  { return Filter{Column: column, Op: "=", Value: value} }
func Gte(column string, value any) Filter { return Filter{Column: column, Op: ">=", Value: value} }

// Search is a case-insensitive substring match across text columns, plus an
// exact element match against array columns.
type Search struct {
	Term         string
	Columns      []string
	ArrayColumns []string
}

// Query is a complete list request against one collection.
type Query struct {
	Owner   string
	Filters []Filter
	Search  *Search
	Sort    Sort
	Page    int
	Limit   int
}

// New builds a query from validated params.
func New(p Params, spec SortSpec) Query {
	return Query{
		Sort:  spec.Resolve(p.SortBy, p.SortOrder),
		Page:  p.Page,
		Limit: p.Limit,
	}
}

// OwnedBy restricts the query to rows of one user.
func (q Query) OwnedBy(userID string) Query {
	q.Owner = userID
	return q
}

// Where appends filters.
func (q Query) Where(filters ...Filter) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), filters...)
	return q
}

func (q Query) WithSearch(s Search) Query {
	if strings.TrimSpace(s.Term) == "" {
		return q
	}
	q.Search = &s
	return q
}

func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Beyond reports whether the page starts at or past row total. It divides
// instead of multiplying so an oversized page cannot wrap around to row 0.
func (q Query) Beyond(total int64) bool {
	if total <= 0 {
		return true
	}
	if q.Page < 1 || q.Limit < 1 {
		return false
	}
	return int64(q.Page-1) > (total-1)/int64(q.Limit)
}

// Scope applies ownership, filters and search. Ownership is applied first and
// cannot be replaced by a filter.
func (q Query) Scope(db *gorm.DB) *gorm.DB {
	if q.Owner != "" {
		db = db.Where("user_id = ?", q.Owner)
	}
	for _, f := range q.Filters {
		db = db.Where(clause.Expr{
			SQL:  "? " + f.Op + " ?",
			Vars: []any{clause.Column{Name: f.Column}, f.Value},
		})
	}
	if q.Search != nil {
		db = db.Where(q.Search.expr())
	}
	return db
}

// Paginate applies ordering and the page window.
func (q Query) Paginate(db *gorm.DB) *gorm.DB {
	return db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: q.Sort.Field}, Desc: q.Sort.Desc}).
		Offset(q.Offset()).
		Limit(q.Limit)
}

func (s Search) expr() clause.Expression {
	pattern := "%" + EscapeLike(s.Term) + "%"
	var exprs []clause.Expression
	for _, col := range s.Columns {
		exprs = append(exprs, clause.Expr{
			SQL:  "? ILIKE ?",
			Vars: []any{clause.Column{Name: col}, pattern},
		})
	}
	for _, col := range s.ArrayColumns {
		exprs = append(exprs, clause.Expr{
			SQL:  "? = ANY(?)",
			Vars: []any{s.Term, clause.Column{Name: col}},
		})
	}
	return clause.Or(exprs...)
}

// EscapeLike escapes LIKE wildcards so user input matches literally.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Find counts the matching rows, then loads one page into out. Extra scopes
// (preloads) apply to the page query only.
func Find[T any](ctx context.Context, db *gorm.DB, q Query, out *[]T, scopes ...func(*gorm.DB) *gorm.DB) (int64, error) {
	var total int64
	if err := db.WithContext(ctx).Model(new(T)).Scopes(q.Scope).Count(&total).Error; err != nil {
		return 0, err
	}
	if q.Beyond(total) {
		*out = []T{}
		return total, nil
	}
	page := db.WithContext(ctx).Scopes(q.Scope, q.Paginate).Scopes(scopes...)
	if err := page.Find(out).Error; err != nil {
		return 0, err
	}
	return total, nil
}
