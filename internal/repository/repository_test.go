package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/listquery"
	"github.com/ahmetcoskunkizilkaya/fluencr-backend/internal/models"
)

// recordingDB builds statements without a server and keeps the last SQL of
// each kind.
func recordingDB(t *testing.T) (*gorm.DB, map[string]string) {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=test dbname=test"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	seen := map[string]string{}
	record := func(kind string) func(*gorm.DB) {
		return func(tx *gorm.DB) { seen[kind] = tx.Statement.SQL.String() }
	}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:record_query", record("query")))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:record_update", record("update")))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:record_delete", record("delete")))
	return db, seen
}

func TestCampaignFindOwned_ScopesByOwner(t *testing.T) {
	db, seen := recordingDB(t)
	repo := NewCampaignRepository(db)

	_, _ = repo.FindOwned(context.Background(), "user-1", uuid.New())

	assert.Contains(t, seen["query"], `user_id = $1 AND id = $2`)
}

func TestSavedInfluencer_WritesAreScoped(t *testing.T) {
	db, seen := recordingDB(t)
	repo := NewSavedInfluencerRepository(db)
	ctx := context.Background()

	_, _ = repo.Update(ctx, "user-1", uuid.New(), map[string]any{"status": models.SavedStatusWarm})
	assert.Contains(t, seen["update"], `UPDATE "user_influencers"`)
	assert.Contains(t, seen["update"], `user_id = $`)

	_, _ = repo.Delete(ctx, "user-1", uuid.New())
	assert.Contains(t, seen["delete"], `DELETE FROM "user_influencers"`)
	assert.Contains(t, seen["delete"], `user_id = $1 AND influencer_id = $2`)
}

func TestAssignmentUpdate_WritesNullsAndScopes(t *testing.T) {
	db, seen := recordingDB(t)
	repo := NewAssignmentRepository(db)

	a := &models.CampaignInfluencer{ID: uuid.New(), UserID: "user-1"}
	var cleared *string
	_ = repo.Update(context.Background(), a, map[string]any{"utm_source": cleared, "utm_url": cleared})

	assert.Contains(t, seen["update"], `"utm_source"=$`)
	assert.Contains(t, seen["update"], `"utm_url"=$`)
	assert.Contains(t, seen["update"], `id = $`)
	assert.Contains(t, seen["update"], `user_id = $`)
}

func TestInteractionList_OwnerComesFirst(t *testing.T) {
	db, seen := recordingDB(t)
	repo := NewInteractionRepository(db)

	q := listquery.Query{Sort: listquery.Sort{Field: "interaction_date", Desc: true}, Page: 1, Limit: 20}.
		OwnedBy("user-1").
		Where(listquery.Eq("type", "email"))
	_, _, _ = repo.List(context.Background(), q)

	sql := seen["query"]
	require.NotEmpty(t, sql)
	assert.Contains(t, sql, `FROM "interactions" WHERE user_id = $1 AND "type" = $2`)
}
