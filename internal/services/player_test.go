package services

import (
	"testing"
	"time"

	"github.com/pienas/amongus/internal/models"
)

func TestSignInGetOrCreate(t *testing.T) {
	env := newTestEnv(t)

	first, err := env.players.SignIn("uid-1", "Jonas")
	if err != nil {
		t.Fatalf("first sign-in: %v", err)
	}
	if first.Role != models.RolePlayer || first.Ready {
		t.Errorf("new player = role:%s ready:%v", first.Role, first.Ready)
	}
	if first.Random < 1 || first.Random > 999999 {
		t.Errorf("random = %d outside 1..999999", first.Random)
	}

	// Same uid resolves to the same record, keeping the stored name.
	second, err := env.players.SignIn("uid-1", "Somebody Else")
	if err != nil {
		t.Fatalf("second sign-in: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second sign-in created a new record: %d vs %d", second.ID, first.ID)
	}
	if second.Name != "Jonas" {
		t.Errorf("name = %q, want the stored name Jonas", second.Name)
	}

	var registers int64
	env.db.Model(&models.GameLog{}).Where("action = ?", "register").Count(&registers)
	if registers != 2 {
		t.Errorf("register logged %d times, want 2", registers)
	}
}

func TestJoinMarksReady(t *testing.T) {
	env := newTestEnv(t)
	env.players.SignIn("uid-1", "Jonas")

	if err := env.players.Join("uid-1"); err != nil {
		t.Fatalf("join: %v", err)
	}
	p := env.player(t, "uid-1")
	if !p.Ready || p.ReadyAt == nil {
		t.Errorf("ready = %v, readyAt = %v", p.Ready, p.ReadyAt)
	}
	if !env.hasLogAction(t, "joinGame") {
		t.Error("join was not logged")
	}
}

func TestJoinUnknownPlayerIsSilent(t *testing.T) {
	env := newTestEnv(t)
	if err := env.players.Join("uid-ghost"); err != nil {
		t.Fatalf("join of unknown uid should be a no-op, got %v", err)
	}
}

func TestRenameLogsOldName(t *testing.T) {
	env := newTestEnv(t)
	env.players.SignIn("uid-1", "Jonas")

	renamed, err := env.players.Rename("uid-1", "Jonas II", "Jonas", "uid-1")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.Name != "Jonas II" {
		t.Errorf("name = %q", renamed.Name)
	}
	if !env.hasLogAction(t, "changePlayerName?player=Jonas") {
		t.Error("rename should log the old name")
	}
}

func TestHideScreen(t *testing.T) {
	env := newTestEnv(t)
	env.players.SignIn("uid-1", "Jonas")

	if err := env.players.HideScreen("uid-1"); err != nil {
		t.Fatalf("hide screen: %v", err)
	}
	if p := env.player(t, "uid-1"); !p.ScreenHidden {
		t.Error("screen_hidden not set")
	}
	if !env.hasLogAction(t, "screenHidden") {
		t.Error("screen hide was not logged")
	}
}

func TestDisqualify(t *testing.T) {
	env := newTestEnv(t)
	env.addRoster(t, 5)
	env.startGame(t, 1)

	if err := env.players.Disqualify("uid-player04", "gamemaster", "operator:1"); err != nil {
		t.Fatalf("disqualify: %v", err)
	}

	p := env.player(t, "uid-player04")
	if p.Role != models.RoleDQ || p.InGame || p.Ready {
		t.Errorf("dq state = role:%s inGame:%v ready:%v", p.Role, p.InGame, p.Ready)
	}
	if !env.hasLogAction(t, "kickPlayer?player=player04") {
		t.Error("disqualification was not logged")
	}

	if err := env.players.Disqualify("uid-player04", "gamemaster", "operator:1"); err == nil {
		t.Error("double disqualification accepted")
	}
}

func TestDisqualifyBlockedDuringMeeting(t *testing.T) {
	env := newTestEnv(t)
	env.addRoster(t, 5)
	env.startGame(t, 1)
	startMeeting(t, env)

	if err := env.players.Disqualify("uid-player05", "gamemaster", "operator:1"); err == nil {
		t.Fatal("disqualification accepted during a meeting")
	}
}

func TestDisqualifyTriggersWinCheck(t *testing.T) {
	env := newTestEnv(t)
	env.addRoster(t, 4)
	env.startGame(t, 1)

	// 1 imposter vs 3 crewmates; removing one crewmate puts the imposter
	// at parity minus one.
	if err := env.players.Disqualify("uid-player03", "gamemaster", "operator:1"); err != nil {
		t.Fatalf("disqualify: %v", err)
	}
	if p := env.player(t, "uid-player02"); p.Win != models.WinImposters {
		t.Errorf("win = %q, want imposters", p.Win)
	}
	if !env.hasLogAction(t, "impostersWinAfterKick") {
		t.Error("kick win was not logged")
	}
}

func TestGetIncludesTieredTasks(t *testing.T) {
	env := newTestEnv(t)
	env.addRoster(t, 5)
	env.startGame(t, 1)

	state, err := env.players.Get("uid-player03")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(state.EasyTasks) != 3 || len(state.MediumTasks) != 2 || len(state.HardTasks) != 1 {
		t.Errorf("task split = %d/%d/%d, want 3/2/1",
			len(state.EasyTasks), len(state.MediumTasks), len(state.HardTasks))
	}
}

func TestGameStateAggregation(t *testing.T) {
	env := newTestEnv(t)
	env.addRoster(t, 5)

	state, err := env.players.GameState()
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.GameStarted || state.ReadyCount != 6 {
		t.Errorf("pre-start state = started:%v ready:%d", state.GameStarted, state.ReadyCount)
	}

	env.startGame(t, 1)
	env.advance(61 * time.Second)
	if err := env.sabotage.Start("uid-player01", models.SabotageComms); err != nil {
		t.Fatalf("sabotage: %v", err)
	}

	state, err = env.players.GameState()
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if !state.GameStarted || !state.SabotageActive || state.SabotageType != models.SabotageComms {
		t.Errorf("state = started:%v sabotage:%v/%q",
			state.GameStarted, state.SabotageActive, state.SabotageType)
	}
}

func TestListActiveExcludesDisqualified(t *testing.T) {
	env := newTestEnv(t)
	env.addRoster(t, 4)
	env.db.Model(&models.Player{}).Where("uid = ?", "uid-player02").Update("role", models.RoleDQ)

	players, err := env.players.ListActive()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(players) != 4 {
		t.Errorf("active players = %d, want 4", len(players))
	}
	for _, p := range players {
		if p.UID == "uid-player02" {
			t.Error("disqualified player listed as active")
		}
	}
}
