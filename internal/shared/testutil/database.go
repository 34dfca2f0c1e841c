package testutil

import (
	"testing"

	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing
// This can be reused across all integration tests
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A single connection keeps every query on the same in-memory database
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Silent mode for tests
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	// Auto-migrate all models (FK order)
	if err := db.AutoMigrate(&model.Team{}, &model.Member{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// CleanupTestDB cleans up the test database
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("Failed to get database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		t.Errorf("Failed to close database: %v", err)
	}
}

// TruncateTable truncates a table for test isolation
func TruncateTable(t *testing.T, db *gorm.DB, tableName string) {
	t.Helper()

	if err := db.Exec("DELETE FROM " + tableName).Error; err != nil {
		t.Fatalf("Failed to truncate table %s: %v", tableName, err)
	}
}

// Fixture is the canonical dataset: teamA{member1:10, member2:20}, teamB{member3:30, member4:40}
type Fixture struct {
	TeamA   *model.Team
	TeamB   *model.Team
	Members []*model.Member
}

// SeedMembers inserts the canonical dataset and returns it with IDs populated
func SeedMembers(t *testing.T, db *gorm.DB) Fixture {
	t.Helper()

	teamA := model.NewTeam("teamA")
	teamB := model.NewTeam("teamB")
	for _, team := range []*model.Team{teamA, teamB} {
		if err := db.Omit("Members").Create(team).Error; err != nil {
			t.Fatalf("Failed to seed team %s: %v", team.Name, err)
		}
	}

	members := []*model.Member{
		model.NewMember("member1", 10, teamA),
		model.NewMember("member2", 20, teamA),
		model.NewMember("member3", 30, teamB),
		model.NewMember("member4", 40, teamB),
	}
	for _, m := range members {
		InsertMember(t, db, m)
	}

	return Fixture{TeamA: teamA, TeamB: teamB, Members: members}
}

// InsertMember stores m without touching its Team association
func InsertMember(t *testing.T, db *gorm.DB, m *model.Member) {
	t.Helper()

	if err := db.Omit("Team").Create(m).Error; err != nil {
		t.Fatalf("Failed to seed member %s: %v", m.Username, err)
	}
}
