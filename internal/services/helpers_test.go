package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/pienas/amongus/internal/database"
	"github.com/pienas/amongus/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires every service against an in-memory sqlite database with a
// controllable clock. Each now() call advances the clock by one millisecond
// so log entry ids stay unique even inside a single operation.
type testEnv struct {
	db    *gorm.DB
	clock time.Time

	logs     *LogService
	game     *GameService
	players  *PlayerService
	tasks    *TaskService
	sabotage *SabotageService
	meetings *MeetingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// Each sqlite :memory: connection is its own database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Account{},
		&models.Player{},
		&models.TaskDefinition{},
		&models.AssignedTask{},
		&models.GameLog{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	database.SeedTasks(db)

	env := &testEnv{db: db, clock: time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)}

	env.logs = NewLogService(db)
	env.logs.now = env.now
	env.game = NewGameService(db, env.logs)
	env.game.now = env.now
	env.players = NewPlayerService(db, env.game, env.logs)
	env.players.now = env.now
	env.tasks = NewTaskService(db, env.game, env.logs, 3)
	env.tasks.now = env.now
	env.sabotage = NewSabotageService(db, env.game, env.logs)
	env.sabotage.now = env.now
	env.meetings = NewMeetingService(db, env.game, env.logs)
	env.meetings.now = env.now

	return env
}

func (e *testEnv) now() time.Time {
	e.clock = e.clock.Add(time.Millisecond)
	return e.clock
}

func (e *testEnv) advance(d time.Duration) {
	e.clock = e.clock.Add(d)
}

// addPlayer inserts a ready player directly. Random is derived from the
// insertion index so roster order in tests is deterministic.
func (e *testEnv) addPlayer(t *testing.T, name, role string, random int) models.Player {
	t.Helper()
	p := models.Player{
		UID:      "uid-" + name,
		Name:     name,
		JoinedAt: e.now(),
		Ready:    true,
		Role:     role,
		Random:   random,
	}
	if err := e.db.Create(&p).Error; err != nil {
		t.Fatalf("failed to create player %s: %v", name, err)
	}
	return p
}

// addRoster creates an admin plus n numbered players, all ready.
func (e *testEnv) addRoster(t *testing.T, n int) {
	t.Helper()
	e.addPlayer(t, "gamemaster", models.RoleAdmin, 0)
	for i := 1; i <= n; i++ {
		e.addPlayer(t, fmt.Sprintf("player%02d", i), models.RolePlayer, i)
	}
}

func (e *testEnv) startGame(t *testing.T, imposters int) {
	t.Helper()
	if err := e.game.StartGame(imposters, "gamemaster", "uid-gamemaster"); err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
}

func (e *testEnv) player(t *testing.T, uid string) models.Player {
	t.Helper()
	var p models.Player
	if err := e.db.Where("uid = ?", uid).First(&p).Error; err != nil {
		t.Fatalf("player %s not found: %v", uid, err)
	}
	return p
}

func (e *testEnv) assignedTasks(t *testing.T, playerID uint) []models.AssignedTask {
	t.Helper()
	var tasks []models.AssignedTask
	if err := e.db.Where("player_id = ?", playerID).
		Order("tier ASC, position ASC").
		Find(&tasks).Error; err != nil {
		t.Fatalf("failed to load tasks: %v", err)
	}
	return tasks
}

func (e *testEnv) hasLogAction(t *testing.T, action string) bool {
	t.Helper()
	var count int64
	if err := e.db.Model(&models.GameLog{}).Where("action = ?", action).Count(&count).Error; err != nil {
		t.Fatalf("failed to count logs: %v", err)
	}
	return count > 0
}

// passCooldowns moves past every cooldown armed at game start.
func (e *testEnv) passCooldowns() {
	e.advance(181 * time.Second)
}
