package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/pienas/amongus/internal/models"

	"gorm.io/gorm"
)

// Gameplay timers. All deadlines are stored as absolute epoch milliseconds on
// every player record so each client can render its own countdowns.
const (
	startKillCooldown     = 180 * time.Second
	killCooldown          = 90 * time.Second
	startMeetingCooldown  = 60 * time.Second
	startSabotageCooldown = 60 * time.Second
	sabotageCooldown      = 180 * time.Second
	oxygenDuration        = 90 * time.Second

	meetingCooldownAfterMeeting  = 30 * time.Second
	killCooldownAfterMeeting     = 45 * time.Second
	sabotageCooldownAfterMeeting = 10 * time.Second

	// Far-future sentinel (30 days) used while no sabotage is running, so
	// deadline comparisons never fire.
	sabotageIdleSentinel = 30 * 24 * time.Hour

	// Codes printed at the three sabotage stations. Fixed per event.
	oxygenFirstCode  = 661084
	oxygenSecondCode = 604902
	commsCode        = 824411
)

type GameService struct {
	db   *gorm.DB
	logs *LogService
	now  func() time.Time
}

func NewGameService(db *gorm.DB, logs *LogService) *GameService {
	return &GameService{db: db, logs: logs, now: time.Now}
}

func (s *GameService) nowMS() int64 {
	return s.now().UnixMilli()
}

// StartGame draws roles and deals tasks to the full roster in one atomic
// batch. Every non-disqualified player must have marked ready and the
// imposter count must be set.
func (s *GameService) StartGame(imposterCount int, actorName, actorUID string) error {
	if imposterCount <= 0 {
		return errors.New("imposter count is not set")
	}

	var activeCount, readyCount int64
	s.db.Model(&models.Player{}).Where("role <> ?", models.RoleDQ).Count(&activeCount)
	s.db.Model(&models.Player{}).Where("role <> ? AND ready = ?", models.RoleDQ, true).Count(&readyCount)
	if readyCount < activeCount {
		return errors.New("not all players are ready")
	}

	// Roster order decides both the imposter draw and the task batch each
	// player falls into.
	var players []models.Player
	if err := s.db.Where("role <> ?", models.RoleDQ).
		Order("role ASC, random ASC").
		Find(&players).Error; err != nil {
		return err
	}

	pools, err := buildTaskPools(s.db)
	if err != nil {
		return err
	}

	nowMS := s.nowMS()
	imposters := imposterCount

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, p := range players {
			role := models.RoleCrewmate
			if p.Role == models.RoleAdmin {
				role = models.RoleAdmin
			} else if imposters > 0 {
				role = models.RoleImposter
			}

			if err := tx.Model(&models.Player{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
				"in_game":                   p.Ready,
				"imposters":                 imposterCount,
				"is_dead":                   false,
				"killed_by":                 "",
				"found_by":                  "",
				"is_reported":               false,
				"is_meeting_starting":       false,
				"is_meeting_started":        false,
				"meeting_cooldown_ends_at":  nowMS + startMeetingCooldown.Milliseconds(),
				"is_sabotaged":              false,
				"sabotage_type":             "",
				"sabotage_ends_at":          nowMS,
				"is_oxygen_first_done":      false,
				"is_oxygen_second_done":     false,
				"is_comms_done":             false,
				"oxygen_first_code":         oxygenFirstCode,
				"oxygen_second_code":        oxygenSecondCode,
				"comms_code":                commsCode,
				"sabotage_cooldown_ends_at": nowMS + startSabotageCooldown.Milliseconds(),
				"screen_hidden":             false,
				"win":                       "",
				"game_paused":               false,
				"role":                      role,
				"done_tasks":                0,
				"cooldown_ends_at":          nowMS + startKillCooldown.Milliseconds(),
			}).Error; err != nil {
				return err
			}

			if err := tx.Where("player_id = ?", p.ID).Delete(&models.AssignedTask{}).Error; err != nil {
				return err
			}
			assigned := pools.next(p.ID)
			if err := tx.Create(&assigned).Error; err != nil {
				return err
			}

			if p.Role != models.RoleAdmin {
				imposters--
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logs.Append(actorName, actorUID, "startGame")
	return nil
}

// ResetGame returns every non-disqualified player to the lobby. Disqualified
// players stay frozen until the operator clears them manually.
func (s *GameService) ResetGame(actorName, actorUID string) error {
	nowMS := s.nowMS()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var players []models.Player
		if err := tx.Where("role <> ?", models.RoleDQ).Find(&players).Error; err != nil {
			return err
		}
		for _, p := range players {
			role := models.RolePlayer
			if p.Role == models.RoleAdmin {
				role = models.RoleAdmin
			}
			if err := tx.Model(&models.Player{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
				"in_game":                   false,
				"is_dead":                   false,
				"ready":                     false,
				"killed_by":                 "",
				"found_by":                  "",
				"is_reported":               false,
				"screen_hidden":             false,
				"win":                       "",
				"game_paused":               false,
				"role":                      role,
				"done_tasks":                0,
				"cooldown_ends_at":          0,
				"imposters":                 0,
				"is_meeting_starting":       false,
				"is_meeting_started":        false,
				"meeting_cooldown_ends_at":  nowMS + startMeetingCooldown.Milliseconds(),
				"is_sabotaged":              false,
				"sabotage_type":             "",
				"sabotage_ends_at":          nowMS,
				"is_oxygen_first_done":      false,
				"is_oxygen_second_done":     false,
				"is_comms_done":             false,
				"oxygen_first_code":         oxygenFirstCode,
				"oxygen_second_code":        oxygenSecondCode,
				"comms_code":                commsCode,
				"sabotage_cooldown_ends_at": nowMS + startSabotageCooldown.Milliseconds(),
				"random":                    rand.Intn(999999) + 1,
			}).Error; err != nil {
				return err
			}
			if err := tx.Where("player_id = ?", p.ID).Delete(&models.AssignedTask{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logs.Append(actorName, actorUID, "resetGame")
	return nil
}

func (s *GameService) PauseGame(actorName, actorUID string) error {
	if err := s.broadcast(map[string]interface{}{"game_paused": true}); err != nil {
		return err
	}
	s.logs.Append(actorName, actorUID, "pauseGame")
	return nil
}

func (s *GameService) UnpauseGame(actorName, actorUID string) error {
	if err := s.broadcast(map[string]interface{}{"game_paused": false}); err != nil {
		return err
	}
	s.logs.Append(actorName, actorUID, "unpauseGame")
	return nil
}

// UndoWin reverts a declared win and pauses the game so the operator can sort
// out whatever went wrong before resuming.
func (s *GameService) UndoWin(actorName, actorUID string) error {
	if err := s.broadcast(map[string]interface{}{"win": "", "game_paused": true}); err != nil {
		return err
	}
	s.logs.Append(actorName, actorUID, "undoWin")
	return nil
}

// Kill marks the target dead on behalf of a living imposter and re-arms the
// killer's cooldown, then re-evaluates the majority win with fresh counts.
func (s *GameService) Kill(killerUID, targetUID string) error {
	killer, err := s.playerByUID(killerUID)
	if err != nil {
		return err
	}
	if killer.Role != models.RoleImposter || killer.IsDead {
		return errors.New("only a living imposter can kill")
	}
	if killer.CooldownEndsAt >= s.nowMS() {
		return ErrKillOnCooldown
	}

	target, err := s.playerByUID(targetUID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Player{}).Where("id = ?", killer.ID).
			Update("cooldown_ends_at", s.nowMS()+killCooldown.Milliseconds()).Error; err != nil {
			return err
		}
		return tx.Model(&models.Player{}).Where("id = ?", target.ID).Updates(map[string]interface{}{
			"is_dead":   true,
			"killed_by": killer.Name,
		}).Error
	})
	if err != nil {
		return err
	}

	s.logs.Append(killer.Name, killer.UID, "killPlayer?player="+target.Name)

	if s.impostersAtMajority() {
		return s.DeclareWin(models.WinImposters, killer.Name, killer.UID, "impostersWinAfterKill")
	}
	return nil
}

// DeclareWin broadcasts the winner onto every player document in one batch.
// Safe to call repeatedly: declaring the same winner twice is a no-op state
// wise, which is what makes redundant timeout detections harmless.
func (s *GameService) DeclareWin(winner, actorName, actorUID, action string) error {
	if err := s.broadcast(map[string]interface{}{"win": winner}); err != nil {
		return err
	}
	if action != "" {
		s.logs.Append(actorName, actorUID, action)
	}
	return nil
}

// CheckWinAfterDeath runs the faction win re-evaluation that follows every
// kill, vote and disqualification. deadRole is the role the removed player
// held before removal; the cause picks the audit action.
func (s *GameService) CheckWinAfterDeath(deadRole, actorName, actorUID, cause string) error {
	switch deadRole {
	case models.RoleImposter:
		if s.aliveCount(models.RoleImposter) == 0 {
			return s.DeclareWin(models.WinCrewmates, actorName, actorUID, "crewmatesWinAfter"+cause)
		}
	case models.RoleCrewmate:
		if s.impostersAtMajority() {
			return s.DeclareWin(models.WinImposters, actorName, actorUID, "impostersWinAfter"+cause)
		}
	}
	return nil
}

// impostersAtMajority reports whether imposters are at or past parity among
// the remaining players. Counts are read fresh so callers must only invoke
// this after their own write has committed.
func (s *GameService) impostersAtMajority() bool {
	return s.aliveCount(models.RoleImposter) >= s.aliveCount(models.RoleCrewmate)-1
}

func (s *GameService) aliveCount(role string) int64 {
	var count int64
	s.db.Model(&models.Player{}).
		Where("role = ? AND is_dead = ?", role, false).
		Count(&count)
	return count
}

// broadcast applies the same partial update to every non-disqualified player
// in a single statement, the atomic multi-document write of the engine.
func (s *GameService) broadcast(fields map[string]interface{}) error {
	return s.db.Model(&models.Player{}).
		Where("role <> ?", models.RoleDQ).
		Updates(fields).Error
}

func (s *GameService) playerByUID(uid string) (*models.Player, error) {
	var player models.Player
	if err := s.db.Where("uid = ?", uid).First(&player).Error; err != nil {
		return nil, fmt.Errorf("player not found: %s", uid)
	}
	return &player, nil
}
