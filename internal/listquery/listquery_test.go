package listquery

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type item struct {
	ID   int
	Name string
}

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=test dbname=test"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name               string
		page, limit        int
		total              int64
		wantPages          int
		wantNext, wantPrev bool
	}{
		{"first of three", 1, 20, 45, 3, true, false},
		{"middle", 2, 20, 45, 3, true, true},
		{"last", 3, 20, 45, 3, false, true},
		{"past the end", 4, 20, 45, 3, false, true},
		{"empty", 1, 20, 0, 0, false, false},
		{"exact multiple", 2, 10, 20, 2, false, true},
		{"single item", 1, 100, 1, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestSortSpec_Resolve(t *testing.T) {
	spec := NewSortSpec(CreatedAtDesc, "name", "audience_size", "created_at")

	assert.Equal(t, Sort{Field: "name", Desc: false}, spec.Resolve("name", "asc"))
	assert.Equal(t, Sort{Field: "audience_size", Desc: true}, spec.Resolve("audience_size", "desc"))
	assert.Equal(t, Sort{Field: "audience_size", Desc: true}, spec.Resolve("audience_size", ""))
	assert.Equal(t, CreatedAtDesc, spec.Resolve("password; DROP TABLE users", "asc"))
	assert.Equal(t, CreatedAtDesc, spec.Resolve("", "asc"))
}

func TestQueryOffset(t *testing.T) {
	q := New(Params{Page: 3, Limit: 20}, NewSortSpec(CreatedAtDesc))
	assert.Equal(t, 40, q.Offset())
	assert.Equal(t, 40, Params{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, DefaultParams().Offset())
}

func TestQueryBeyond(t *testing.T) {
	spec := NewSortSpec(CreatedAtDesc)
	tests := []struct {
		name  string
		page  int
		limit int
		total int64
		want  bool
	}{
		{"first page", 1, 20, 45, false},
		{"last partial page", 3, 20, 45, false},
		{"past the end", 4, 20, 45, true},
		{"exact fit", 3, 15, 45, false},
		{"one past exact fit", 4, 15, 45, true},
		{"empty table", 1, 20, 0, true},
		{"page whose offset overflows int", 1<<62 + 1, 4, 45, true},
		{"largest accepted page", MaxPage, MaxLimit, 45, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := New(Params{Page: tt.page, Limit: tt.limit}, spec)
			assert.Equal(t, tt.want, q.Beyond(tt.total))
		})
	}
}

func TestParams_PageBounds(t *testing.T) {
	v := validator.New()
	assert.NoError(t, v.Struct(Params{Page: MaxPage, Limit: 20, SortOrder: "desc"}))
	assert.Error(t, v.Struct(Params{Page: MaxPage + 1, Limit: 20, SortOrder: "desc"}))
	assert.Error(t, v.Struct(Params{Page: 0, Limit: 20, SortOrder: "desc"}))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%`, EscapeLike("50%"))
	assert.Equal(t, `a\_b`, EscapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, EscapeLike(`c:\dir`))
	assert.Equal(t, "plain", EscapeLike("plain"))
}

func TestQueryScope_SQL(t *testing.T) {
	db := dryRunDB(t)
	q := New(Params{Page: 2, Limit: 20, SortBy: "name", SortOrder: "asc"}, NewSortSpec(CreatedAtDesc, "name")).
		OwnedBy("user-1").
		Where(Eq("status", "active"), Gte("audience_size", 1000)).
		WithSearch(Search{Term: "growth", Columns: []string{"name", "bio"}, ArrayColumns: []string{"expertise_tags"}})

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&item{}).Scopes(q.Scope, q.Paginate).Find(&[]item{})
	})

	assert.Contains(t, sql, `user_id = 'user-1'`)
	assert.Contains(t, sql, `"status" = 'active'`)
	assert.Contains(t, sql, `"audience_size" >= 1000`)
	assert.Contains(t, sql, `"name" ILIKE '%growth%'`)
	assert.Contains(t, sql, `'growth' = ANY("expertise_tags")`)
	assert.Contains(t, sql, `ORDER BY "name"`)
	assert.Contains(t, sql, "LIMIT 20 OFFSET 20")
	assert.Less(t, strings.Index(sql, "user_id"), strings.Index(sql, `"status"`), "ownership must come before client filters")
}

func TestQueryScope_OwnerCannotBeOverridden(t *testing.T) {
	db := dryRunDB(t)
	q := Query{Sort: CreatedAtDesc, Page: 1, Limit: 20}.
		OwnedBy("user-1").
		Where(Eq("user_id", "user-2"))

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&item{}).Scopes(q.Scope).Find(&[]item{})
	})

	assert.Contains(t, sql, `user_id = 'user-1'`)
	assert.Contains(t, sql, `"user_id" = 'user-2'`)
	assert.Contains(t, sql, " AND ")
}

func TestWithSearch_BlankTermIgnored(t *testing.T) {
	q := Query{}.WithSearch(Search{Term: "   ", Columns: []string{"name"}})
	assert.Nil(t, q.Search)
}

func TestSearch_EscapesWildcards(t *testing.T) {
	db := dryRunDB(t)
	q := Query{Sort: CreatedAtDesc, Page: 1, Limit: 10}.
		WithSearch(Search{Term: "100%_real", Columns: []string{"name"}})

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&item{}).Scopes(q.Scope).Find(&[]item{})
	})
	assert.Contains(t, sql, `100\%\_real`)
}
