package services

import (
	"errors"
	"math/rand"
	"time"

	"github.com/pienas/amongus/internal/models"

	"gorm.io/gorm"
)

type PlayerService struct {
	db   *gorm.DB
	game *GameService
	logs *LogService
	now  func() time.Time
}

func NewPlayerService(db *gorm.DB, game *GameService, logs *LogService) *PlayerService {
	return &PlayerService{db: db, game: game, logs: logs, now: time.Now}
}

// SignIn resolves an identity from the external provider into a player
// record, creating it on first sign-in.
func (s *PlayerService) SignIn(uid, name string) (*models.Player, error) {
	var player models.Player
	err := s.db.Where("uid = ?", uid).First(&player).Error
	if err == nil {
		s.logs.Append(player.Name, player.UID, "register")
		return &player, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	player = models.Player{
		UID:      uid,
		Name:     name,
		JoinedAt: s.now(),
		Ready:    false,
		InGame:   false,
		Role:     models.RolePlayer,
		Random:   rand.Intn(999999) + 1,
	}
	if err := s.db.Create(&player).Error; err != nil {
		return nil, err
	}
	s.logs.Append(name, uid, "register")
	return &player, nil
}

// Join marks the player ready for the next game start. A join for a player
// that no longer exists is silently ignored.
func (s *PlayerService) Join(uid string) error {
	var player models.Player
	if err := s.db.Where("uid = ?", uid).First(&player).Error; err != nil {
		return nil
	}

	readyAt := s.now()
	if err := s.db.Model(&models.Player{}).Where("id = ?", player.ID).Updates(map[string]interface{}{
		"ready":    true,
		"ready_at": readyAt,
	}).Error; err != nil {
		return err
	}
	s.logs.Append(player.Name, player.UID, "joinGame")
	return nil
}

// Rename updates a player's display name. Authorization (self or admin) is
// the caller's responsibility.
func (s *PlayerService) Rename(targetUID, newName, actorName, actorUID string) (*models.Player, error) {
	target, err := s.game.playerByUID(targetUID)
	if err != nil {
		return nil, err
	}

	oldName := target.Name
	if err := s.db.Model(&models.Player{}).Where("id = ?", target.ID).
		Update("name", newName).Error; err != nil {
		return nil, err
	}
	target.Name = newName
	s.logs.Append(actorName, actorUID, "changePlayerName?player="+oldName)
	return target, nil
}

// HideScreen records that the player has turned their screen away after the
// role reveal.
func (s *PlayerService) HideScreen(uid string) error {
	player, err := s.game.playerByUID(uid)
	if err != nil {
		return err
	}
	if err := s.db.Model(&models.Player{}).Where("id = ?", player.ID).
		Update("screen_hidden", true).Error; err != nil {
		return err
	}
	s.logs.Append(player.Name, player.UID, "screenHidden")
	return nil
}

// Disqualify permanently removes a player from the event. Not allowed while
// a meeting is running, since the roster on screen must stay stable. The
// removed player's prior faction is re-checked for a win right away.
func (s *PlayerService) Disqualify(targetUID, actorName, actorUID string) error {
	target, err := s.game.playerByUID(targetUID)
	if err != nil {
		return err
	}
	if target.Role == models.RoleDQ {
		return errors.New("player is already disqualified")
	}

	var meetingCount int64
	s.db.Model(&models.Player{}).
		Where("role <> ? AND (is_meeting_starting = ? OR is_meeting_started = ?)",
			models.RoleDQ, true, true).
		Count(&meetingCount)
	if meetingCount > 0 {
		return errors.New("cannot disqualify a player during a meeting")
	}

	priorRole := target.Role
	if err := s.db.Model(&models.Player{}).Where("id = ?", target.ID).Updates(map[string]interface{}{
		"in_game":       false,
		"ready":         false,
		"role":          models.RoleDQ,
		"screen_hidden": false,
	}).Error; err != nil {
		return err
	}

	s.logs.Append(actorName, actorUID, "kickPlayer?player="+target.Name)
	return s.game.CheckWinAfterDeath(priorRole, actorName, actorUID, "Kick")
}

// Get returns the player's full state including their dealt task lists.
func (s *PlayerService) Get(uid string) (*PlayerState, error) {
	player, err := s.game.playerByUID(uid)
	if err != nil {
		return nil, err
	}
	return s.buildState(player)
}

// ListActive returns all non-disqualified players in sign-in order.
func (s *PlayerService) ListActive() ([]models.Player, error) {
	var players []models.Player
	if err := s.db.Where("role <> ?", models.RoleDQ).
		Order("joined_at ASC").
		Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

// GameState is the derived session snapshot broadcast to every client. The
// game has no standalone session record; everything is aggregated from the
// player registry.
func (s *PlayerService) GameState() (*GameState, error) {
	players, err := s.ListActive()
	if err != nil {
		return nil, err
	}

	state := &GameState{Players: players}
	for _, p := range players {
		if p.InGame {
			state.GameStarted = true
		}
		if p.Ready {
			state.ReadyCount++
		}
		state.GamePaused = state.GamePaused || p.GamePaused
		state.MeetingStarting = state.MeetingStarting || p.IsMeetingStarting
		state.MeetingStarted = state.MeetingStarted || p.IsMeetingStarted
		state.SabotageActive = state.SabotageActive || p.IsSabotaged
		if state.SabotageType == "" {
			state.SabotageType = p.SabotageType
		}
		if state.Win == "" {
			state.Win = p.Win
		}
	}
	return state, nil
}

func (s *PlayerService) buildState(player *models.Player) (*PlayerState, error) {
	var tasks []models.AssignedTask
	if err := s.db.Where("player_id = ?", player.ID).
		Order("tier ASC, position ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}

	state := &PlayerState{Player: *player}
	for _, t := range tasks {
		view := TaskView{ID: t.TaskID, Description: t.Description, Code: t.Code, Done: t.Done}
		switch t.Tier {
		case models.TierEasy:
			state.EasyTasks = append(state.EasyTasks, view)
		case models.TierMedium:
			state.MediumTasks = append(state.MediumTasks, view)
		case models.TierHard:
			state.HardTasks = append(state.HardTasks, view)
		}
	}
	return state, nil
}

type TaskView struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Code        int    `json:"code"`
	Done        bool   `json:"done"`
}

type PlayerState struct {
	models.Player
	EasyTasks   []TaskView `json:"easy_tasks"`
	MediumTasks []TaskView `json:"medium_tasks"`
	HardTasks   []TaskView `json:"hard_tasks"`
}

type GameState struct {
	Players         []models.Player `json:"players"`
	ReadyCount      int             `json:"ready_count"`
	GameStarted     bool            `json:"game_started"`
	GamePaused      bool            `json:"game_paused"`
	MeetingStarting bool            `json:"meeting_starting"`
	MeetingStarted  bool            `json:"meeting_started"`
	SabotageActive  bool            `json:"sabotage_active"`
	SabotageType    string          `json:"sabotage_type"`
	Win             string          `json:"win"`
}
