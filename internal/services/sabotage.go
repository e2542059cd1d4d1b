package services

import (
	"errors"
	"time"

	"github.com/pienas/amongus/internal/models"

	"gorm.io/gorm"
)

// Sabotage resolution steps as submitted by clients.
const (
	StepOxygenFirst  = "oxygen_first"
	StepOxygenSecond = "oxygen_second"
	StepComms        = "comms"
)

type SabotageService struct {
	db   *gorm.DB
	game *GameService
	logs *LogService
	now  func() time.Time
}

func NewSabotageService(db *gorm.DB, game *GameService, logs *LogService) *SabotageService {
	return &SabotageService{db: db, game: game, logs: logs, now: time.Now}
}

func (s *SabotageService) nowMS() int64 {
	return s.now().UnixMilli()
}

// Start raises a global hazard on behalf of a living imposter. Oxygen runs a
// 90 second fuse; comms has no fuse and simply blocks meetings until solved.
// Two imposters racing past these checks resolve as last-write-wins, which
// is accepted: the loser's broadcast overwrites the winner's with an
// equivalent hazard.
func (s *SabotageService) Start(uid, sabotageType string) error {
	if sabotageType != models.SabotageOxygen && sabotageType != models.SabotageComms {
		return errors.New("unknown sabotage type")
	}

	caller, err := s.game.playerByUID(uid)
	if err != nil {
		return err
	}
	if caller.Role != models.RoleImposter || caller.IsDead {
		return errors.New("only a living imposter can start a sabotage")
	}
	if caller.IsSabotaged {
		return ErrSabotageAlreadyActive
	}
	if caller.SabotageCooldownEndsAt > s.nowMS() {
		return ErrSabotageOnCooldown
	}

	nowMS := s.nowMS()
	endsAt := nowMS
	if sabotageType == models.SabotageOxygen {
		endsAt = nowMS + oxygenDuration.Milliseconds()
	}

	if err := s.game.broadcast(map[string]interface{}{
		"is_sabotaged":              true,
		"sabotage_type":             sabotageType,
		"sabotage_ends_at":          endsAt,
		"sabotage_cooldown_ends_at": nowMS + sabotageCooldown.Milliseconds(),
		"is_comms_done":             false,
		"is_oxygen_first_done":      false,
		"is_oxygen_second_done":     false,
	}); err != nil {
		return err
	}

	s.logs.Append(caller.Name, caller.UID, "startSabotage?type="+sabotageType)
	return nil
}

// ResolveStep checks one station code against the caller's stored codes.
// Oxygen needs both stations in either order; whichever completes second
// clears the hazard. Comms clears in a single step.
func (s *SabotageService) ResolveStep(uid, step string, code int) error {
	caller, err := s.game.playerByUID(uid)
	if err != nil {
		return err
	}
	if !caller.IsSabotaged {
		return errors.New("no sabotage is active")
	}

	switch step {
	case StepOxygenFirst, StepOxygenSecond:
		if caller.SabotageType != models.SabotageOxygen {
			return errors.New("oxygen is not the active sabotage")
		}
	case StepComms:
		if caller.SabotageType != models.SabotageComms {
			return errors.New("comms is not the active sabotage")
		}
	default:
		return errors.New("unknown sabotage step")
	}

	switch step {
	case StepOxygenFirst:
		if code != caller.OxygenFirstCode {
			return ErrCodeMismatch
		}
		if err := s.game.broadcast(map[string]interface{}{"is_oxygen_first_done": true}); err != nil {
			return err
		}
		s.logs.Append(caller.Name, caller.UID, "completeOxygenFirst")
		if caller.IsOxygenSecondDone {
			return s.clear(caller)
		}
	case StepOxygenSecond:
		if code != caller.OxygenSecondCode {
			return ErrCodeMismatch
		}
		if err := s.game.broadcast(map[string]interface{}{"is_oxygen_second_done": true}); err != nil {
			return err
		}
		s.logs.Append(caller.Name, caller.UID, "completeOxygenSecond")
		if caller.IsOxygenFirstDone {
			return s.clear(caller)
		}
	case StepComms:
		if code != caller.CommsCode {
			return ErrCodeMismatch
		}
		nowMS := s.nowMS()
		if err := s.game.broadcast(map[string]interface{}{
			"is_comms_done":             true,
			"is_sabotaged":              false,
			"sabotage_type":             "",
			"sabotage_ends_at":          nowMS + sabotageIdleSentinel.Milliseconds(),
			"sabotage_cooldown_ends_at": nowMS + sabotageCooldown.Milliseconds(),
		}); err != nil {
			return err
		}
		s.logs.Append(caller.Name, caller.UID, "completeComms")
	}
	return nil
}

// clear returns the hazard to idle once the last oxygen station is solved.
func (s *SabotageService) clear(actor *models.Player) error {
	nowMS := s.nowMS()
	if err := s.game.broadcast(map[string]interface{}{
		"is_sabotaged":              false,
		"sabotage_type":             "",
		"sabotage_ends_at":          nowMS + sabotageIdleSentinel.Milliseconds(),
		"sabotage_cooldown_ends_at": nowMS + sabotageCooldown.Milliseconds(),
	}); err != nil {
		return err
	}
	s.logs.Append(actor.Name, actor.UID, "completeOxygen")
	return nil
}

// ExpireOxygen is the deadline evaluator the watcher calls once a second: an
// oxygen sabotage past its deadline with no win declared yet hands the game
// to the imposters. Returns whether a win was declared on this pass. The win
// write is idempotent, so a redundant pass is harmless.
func (s *SabotageService) ExpireOxygen() (bool, error) {
	var expired int64
	err := s.db.Model(&models.Player{}).
		Where("role <> ? AND is_sabotaged = ? AND sabotage_type = ? AND sabotage_ends_at <= ? AND win = ?",
			models.RoleDQ, true, models.SabotageOxygen, s.nowMS(), "").
		Count(&expired).Error
	if err != nil {
		return false, err
	}
	if expired == 0 {
		return false, nil
	}

	if err := s.game.DeclareWin(models.WinImposters, "", "", ""); err != nil {
		return false, err
	}
	return true, nil
}
