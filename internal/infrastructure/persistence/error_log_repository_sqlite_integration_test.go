//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/errorlogs"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorLogSqliteRepository(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	repo, err := NewGormErrorLogRepository(ctx.DB)
	require.NoError(t, err)
	background := context.Background()

	require.NoError(t, repo.Create(background, errorlogs.New("webhook", "old", "", "", time.Now().AddDate(0, 0, -100))))
	require.NoError(t, repo.Create(background, errorlogs.New("checkout", "newest", "stack", "", time.Now())))

	recent, err := repo.ListRecent(background, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "newest", recent[0].Message)
}
