package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMigrationsAreOrderedAndUnique(t *testing.T) {
	seen := map[int]bool{}
	prev := 0
	for _, m := range Migrations {
		assert.False(t, seen[m.Version], "duplicate version %d", m.Version)
		seen[m.Version] = true
		assert.Greater(t, m.Version, prev)
		prev = m.Version
		assert.NotEmpty(t, strings.TrimSpace(m.Up))
		assert.NotEmpty(t, strings.TrimSpace(m.Down))
		assert.NotEmpty(t, m.Description)
	}
}

func TestReviewAndExperienceCascadeFromTalents(t *testing.T) {
	var up string
	for _, m := range Migrations {
		up += m.Up
	}
	assert.Contains(t, up, "talent_id           BIGINT NOT NULL REFERENCES talents(id) ON DELETE CASCADE")
	assert.Contains(t, up, "talent_id         BIGINT NOT NULL REFERENCES talents(id) ON DELETE CASCADE")
	assert.Contains(t, up, "NOT (currently_working AND end_date IS NOT NULL)")
}

func TestNewMigratorSortsByVersion(t *testing.T) {
	m := NewMigrator(nil, zap.NewNop().Sugar(), []Migration{
		{Version: 3}, {Version: 1}, {Version: 2},
	})
	got := []int{m.migrations[0].Version, m.migrations[1].Version, m.migrations[2].Version}
	assert.Equal(t, []int{1, 2, 3}, got)
}
