package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/pienas/amongus/internal/models"
)

func TestStartGameRequiresImposterCount(t *testing.T) {
	env := newTestEnv(t)
	env.addRoster(t, 5)

	if err := env.game.StartGame(0, "gamemaster", "uid-gamemaster"); err == nil {
		t.Fatal("expected error for zero imposter count")
	}
}

func TestStartGameRequiresEveryoneReady(t *testing.T) {
	env := newTestEnv(t)
	env.addRoster(t, 5)
	env.db.Model(&models.Player{}).Where("uid = ?", "uid-player03").Update("ready", false)

	err := env.game.StartGame(1, "gamemaster", "uid-gamemaster")
	if err == nil {
		t.Fatal("expected error when a player is not ready")
	}
}

func TestStartGameRolePartition(t *testing.T) {
	env := newTestEnv(t)
	env.addRoster(t, 9)
	env.startGame(t, 2)

	var imposters, crewmates, admins int64
	env.db.Model(&models.Player{}).Where("role = ?", models.RoleImposter).Count(&imposters)
	env.db.Model(&models.Player{}).Where("role = ?", models.RoleCrewmate).Count(&crewmates)
	env.db.Model(&models.Player{}).Where("role = ?", models.RoleAdmin).Count(&admins)

	if imposters != 2 {
		t.Errorf("imposters = %d, want 2", imposters)
	}
	if crewmates != 7 {
		t.Errorf("crewmates = %d, want 7", crewmates)
	}
	if admins != 1 {
		t.Errorf("admins = %d, want 1", admins)
	}

	// The draw follows (role, random) order, so the two lowest randoms
	// among the non-admins become imposters.
	for _, uid := range []string{"uid-player01", "uid-player02"} {
		if p := env.player(t, uid); p.Role != models.RoleImposter {
			t.Errorf("%s role = %s, want imposter", uid, p.Role)
		}
	}

	if !env.hasLogAction(t, "startGame") {
		t.Error("startGame was not logged")
	}
}

func TestStartGameArmsCooldownsAndResetsState(t *testing.T) {
	env := newTestEnv(t)
	env.addRoster(t, 5)

	base := env.clock.UnixMilli()
	env.startGame(t, 1)

	p := env.player(t, "uid-player03")
	if !p.InGame {
		t.Error("player not marked in game")
	}
	if p.Imposters != 1 {
		t.Errorf("imposter snapshot = %d, want 1", p.Imposters)
	}
	if p.Win != "" || p.IsDead || p.IsSabotaged || p.IsMeetingStarting || p.IsMeetingStarted {
		t.Error("transient state not cleared at game start")
	}
	if p.OxygenFirstCode != 661084 || p.OxygenSecondCode != 604902 || p.CommsCode != 824411 {
		t.Error("sabotage station codes not dealt")
	}

	// Cooldowns sit roughly at base + 180s / 60s / 60s; the test clock
	// ticks a millisecond per read, hence the tolerance.
	assertNear := func(name string, got, want int64) {
		if got < want || got > want+1000 {
			t.Errorf("%s = %d, want about %d", name, got, want)
		}
	}
	assertNear("kill cooldown", p.CooldownEndsAt, base+180_000)
	assertNear("meeting cooldown", p.MeetingCooldownEndsAt, base+60_000)
	assertNear("sabotage cooldown", p.SabotageCooldownEndsAt, base+60_000)
}

func TestStartGameDealsDisjointTasksWithinBatch(t *testing.T) {
	env := newTestEnv(t)
	// Exactly one batch of eight, no admin, so every player draws from the
	// same spliced pools.
	for i := 1; i <= 8; i++ {
		env.addPlayer(t, fmt.Sprintf("player%02d", i), models.RolePlayer, i)
	}
	env.startGame(t, 1)

	seen := map[string]map[int]bool{
		models.TierEasy:   {},
		models.TierMedium: {},
		models.TierHard:   {},
	}
	var players []models.Player
	env.db.Where("role <> ?", models.RoleDQ).Find(&players)
	if len(players) != 8 {
		t.Fatalf("got %d players, want 8", len(players))
	}

	for _, p := range players {
		tasks := env.assignedTasks(t, p.ID)
		if len(tasks) != 6 {
			t.Fatalf("player %s has %d tasks, want 6", p.Name, len(tasks))
		}
		for _, task := range tasks {
			if seen[task.Tier][task.TaskID] {
				t.Errorf("task %s/%d dealt twice within one batch", task.Tier, task.TaskID)
			}
			seen[task.Tier][task.TaskID] = true
		}
	}
}

func TestStartGameSharesFourthBatchPool(t *testing.T) {
	env := newTestEnv(t)
	// 26 players: 24 fill the three spliced batches, the rest share the
	// head of the fourth permutation.
	for i := 1; i <= 26; i++ {
		env.addPlayer(t, fmt.Sprintf("player%02d", i), models.RolePlayer, i)
	}
	env.startGame(t, 2)

	taskKey := func(p models.Player) map[string]bool {
		keys := map[string]bool{}
		for _, task := range env.assignedTasks(t, p.ID) {
			keys[fmt.Sprintf("%s/%d", task.Tier, task.TaskID)] = true
		}
		return keys
	}

	// The deal followed the pre-start roster order, so players 25 and 26
	// were the two dealt past the third batch.
	first := taskKey(env.player(t, "uid-player25"))
	second := taskKey(env.player(t, "uid-player26"))
	if len(first) == 0 {
		t.Fatal("players past the third batch were dealt no tasks")
	}
	for k := range first {
		if !second[k] {
			t.Fatalf("players 25 and 26 should share the fourth pool, %s differs", k)
		}
	}
}

func TestKillCooldownEnforced(t *testing.T) {
	env := newTestEnv(t)
	env.addRoster(t, 7)
	env.startGame(t, 1)

	if err := env.game.Kill("uid-player01", "uid-player05"); !errors.Is(err, ErrKillOnCooldown) {
		t.Fatalf("kill before cooldown: got %v, want ErrKillOnCooldown", err)
	}

	env.passCooldowns()
	if err := env.game.Kill("uid-player01", "uid-player05"); err != nil {
		t.Fatalf("kill after cooldown failed: %v", err)
	}

	target := env.player(t, "uid-player05")
	if !target.IsDead || target.KilledBy != "player01" {
		t.Errorf("target state = dead:%v killedBy:%q", target.IsDead, target.KilledBy)
	}
	if !env.hasLogAction(t, "killPlayer?player=player05") {
		t.Error("kill was not logged")
	}

	// Re-armed for 90 seconds.
	if err := env.game.Kill("uid-player01", "uid-player06"); !errors.Is(err, ErrKillOnCooldown) {
		t.Fatalf("second kill inside 90s: got %v, want ErrKillOnCooldown", err)
	}
	env.advance(91 * time.Second)
	if err := env.game.Kill("uid-player01", "uid-player06"); err != nil {
		t.Fatalf("kill after re-arm failed: %v", err)
	}
}

func TestKillOnlyByLivingImposter(t *testing.T) {
	env := newTestEnv(t)
	env.addRoster(t, 5)
	env.startGame(t, 1)
	env.passCooldowns()

	if err := env.game.Kill("uid-player04", "uid-player05"); err == nil {
		t.Error("crewmate was allowed to kill")
	}

	env.db.Model(&models.Player{}).Where("uid = ?", "uid-player01").Update("is_dead", true)
	if err := env.game.Kill("uid-player01", "uid-player05"); err == nil {
		t.Error("dead imposter was allowed to kill")
	}
}

func TestKillTriggersMajorityWin(t *testing.T) {
	env := newTestEnv(t)
	env.addRoster(t, 5)
	env.startGame(t, 1)
	env.passCooldowns()

	// 1 imposter vs 4 crewmates. Two kills bring the imposter to parity
	// minus one, and the third look at the counts declares the win.
	if err := env.game.Kill("uid-player01", "uid-player04"); err != nil {
		t.Fatalf("first kill: %v", err)
	}
	if p := env.player(t, "uid-player02"); p.Win != "" {
		t.Fatal("win declared too early")
	}

	env.advance(91 * time.Second)
	if err := env.game.Kill("uid-player01", "uid-player05"); err != nil {
		t.Fatalf("second kill: %v", err)
	}

	if p := env.player(t, "uid-player02"); p.Win != models.WinImposters {
		t.Errorf("win = %q, want imposters", p.Win)
	}
	if !env.hasLogAction(t, "impostersWinAfterKill") {
		t.Error("majority win was not logged")
	}
}

func TestDeclareWinIdempotent(t *testing.T) {
	env := newTestEnv(t)
	env.addRoster(t, 4)
	env.startGame(t, 1)

	if err := env.game.DeclareWin(models.WinImposters, "", "", ""); err != nil {
		t.Fatalf("first declare: %v", err)
	}
	if err := env.game.DeclareWin(models.WinImposters, "", "", ""); err != nil {
		t.Fatalf("second declare: %v", err)
	}
	if p := env.player(t, "uid-player01"); p.Win != models.WinImposters {
		t.Errorf("win = %q, want imposters", p.Win)
	}
}

func TestUndoWinPausesGame(t *testing.T) {
	env := newTestEnv(t)
	env.addRoster(t, 4)
	env.startGame(t, 1)
	env.game.DeclareWin(models.WinCrewmates, "", "", "")

	if err := env.game.UndoWin("gamemaster", "uid-gamemaster"); err != nil {
		t.Fatalf("UndoWin: %v", err)
	}

	p := env.player(t, "uid-player01")
	if p.Win != "" {
		t.Errorf("win = %q, want cleared", p.Win)
	}
	if !p.GamePaused {
		t.Error("game should pause after an undone win")
	}
}

func TestPauseUnpause(t *testing.T) {
	env := newTestEnv(t)
	env.addRoster(t, 3)
	env.startGame(t, 1)

	if err := env.game.PauseGame("gamemaster", "uid-gamemaster"); err != nil {
		t.Fatalf("pause: %v", err)
	}
	if p := env.player(t, "uid-player02"); !p.GamePaused {
		t.Error("player not paused")
	}
	if err := env.game.UnpauseGame("gamemaster", "uid-gamemaster"); err != nil {
		t.Fatalf("unpause: %v", err)
	}
	if p := env.player(t, "uid-player02"); p.GamePaused {
		t.Error("player still paused")
	}
}

func TestResetGameSkipsDisqualified(t *testing.T) {
	env := newTestEnv(t)
	env.addRoster(t, 5)
	env.startGame(t, 1)

	env.db.Model(&models.Player{}).Where("uid = ?", "uid-player05").
		Updates(map[string]interface{}{"role": models.RoleDQ, "in_game": false})

	if err := env.game.ResetGame("gamemaster", "uid-gamemaster"); err != nil {
		t.Fatalf("ResetGame: %v", err)
	}

	p := env.player(t, "uid-player02")
	if p.Role != models.RolePlayer || p.Ready || p.InGame || p.DoneTasks != 0 {
		t.Errorf("player not returned to lobby: role=%s ready=%v inGame=%v", p.Role, p.Ready, p.InGame)
	}
	if len(env.assignedTasks(t, p.ID)) != 0 {
		t.Error("assigned tasks not cleared by reset")
	}
	if p.Random < 1 || p.Random > 999999 {
		t.Errorf("random = %d outside 1..999999", p.Random)
	}

	if admin := env.player(t, "uid-gamemaster"); admin.Role != models.RoleAdmin {
		t.Errorf("admin role = %s after reset", admin.Role)
	}
	if dq := env.player(t, "uid-player05"); dq.Role != models.RoleDQ {
		t.Errorf("disqualified player role = %s, want dq to persist", dq.Role)
	}
}
