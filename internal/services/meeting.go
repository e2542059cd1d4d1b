package services

import (
	"errors"
	"time"

	"github.com/pienas/amongus/internal/models"

	"gorm.io/gorm"
)

type MeetingService struct {
	db   *gorm.DB
	game *GameService
	logs *LogService
	now  func() time.Time
}

func NewMeetingService(db *gorm.DB, game *GameService, logs *LogService) *MeetingService {
	return &MeetingService{db: db, game: game, logs: logs, now: time.Now}
}

func (s *MeetingService) nowMS() int64 {
	return s.now().UnixMilli()
}

// Report lets a living crewmate report a found body. Every currently dead,
// unreported crewmate is marked reported in the same sweep so a body cannot
// be reported twice across the meeting.
func (s *MeetingService) Report(reporterUID, foundUID string) error {
	reporter, err := s.game.playerByUID(reporterUID)
	if err != nil {
		return err
	}
	if reporter.Role != models.RoleCrewmate || reporter.IsDead {
		return errors.New("only a living crewmate can report a body")
	}
	if reporter.IsReported {
		return ErrAlreadyReported
	}

	found, err := s.game.playerByUID(foundUID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.markDeadReported(tx); err != nil {
			return err
		}
		if err := tx.Model(&models.Player{}).Where("id = ?", found.ID).
			Update("found_by", reporter.Name).Error; err != nil {
			return err
		}
		return s.gather(tx)
	})
	if err != nil {
		return err
	}

	s.logs.Append(reporter.Name, reporter.UID, "reportPlayer?player="+found.Name)
	return nil
}

// Call summons an emergency meeting without a body. Blocked while a sabotage
// is running and while the caller's meeting cooldown has not elapsed.
func (s *MeetingService) Call(callerUID string) error {
	caller, err := s.game.playerByUID(callerUID)
	if err != nil {
		return err
	}
	if caller.Role != models.RoleCrewmate || caller.IsDead {
		return errors.New("only a living crewmate can call a meeting")
	}
	if caller.IsSabotaged {
		return ErrSabotageActive
	}
	if caller.MeetingCooldownEndsAt > s.nowMS() {
		return ErrMeetingOnCooldown
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.markDeadReported(tx); err != nil {
			return err
		}
		return s.gather(tx)
	})
	if err != nil {
		return err
	}

	s.logs.Append(caller.Name, caller.UID, "startMeetingStarting")
	return nil
}

// ConfirmStart is the operator acknowledging that everyone has gathered at
// the table; the meeting moves from starting to started.
func (s *MeetingService) ConfirmStart(actorName, actorUID string) error {
	var starting int64
	s.db.Model(&models.Player{}).
		Where("role <> ? AND is_meeting_starting = ?", models.RoleDQ, true).
		Count(&starting)
	if starting == 0 {
		return errors.New("no meeting is starting")
	}

	if err := s.game.broadcast(map[string]interface{}{
		"is_meeting_starting": false,
		"is_meeting_started":  true,
	}); err != nil {
		return err
	}
	s.logs.Append(actorName, actorUID, "startMeeting")
	return nil
}

// End closes the meeting and re-arms every timer: meetings soonest, then
// sabotages, then kills, so play resumes in that order.
func (s *MeetingService) End(actorName, actorUID string) error {
	nowMS := s.nowMS()
	if err := s.game.broadcast(map[string]interface{}{
		"is_meeting_starting":       false,
		"is_meeting_started":        false,
		"meeting_cooldown_ends_at":  nowMS + meetingCooldownAfterMeeting.Milliseconds(),
		"cooldown_ends_at":          nowMS + killCooldownAfterMeeting.Milliseconds(),
		"sabotage_cooldown_ends_at": nowMS + sabotageCooldownAfterMeeting.Milliseconds(),
	}); err != nil {
		return err
	}
	s.logs.Append(actorName, actorUID, "endMeeting")
	return nil
}

// VoteOut ejects the group's chosen player. Only valid while the meeting is
// running and the target is still alive; at most one ejection per meeting is
// the operator's responsibility.
func (s *MeetingService) VoteOut(targetUID, actorName, actorUID string) error {
	var started int64
	s.db.Model(&models.Player{}).
		Where("role <> ? AND is_meeting_started = ?", models.RoleDQ, true).
		Count(&started)
	if started == 0 {
		return errors.New("no meeting is in progress")
	}

	target, err := s.game.playerByUID(targetUID)
	if err != nil {
		return err
	}
	if target.IsDead {
		return errors.New("player is already dead")
	}

	if err := s.db.Model(&models.Player{}).Where("id = ?", target.ID).Updates(map[string]interface{}{
		"is_dead":   true,
		"killed_by": models.KilledByVote,
	}).Error; err != nil {
		return err
	}

	s.logs.Append(actorName, actorUID, "votePlayer?player="+target.Name)
	return s.game.CheckWinAfterDeath(target.Role, actorName, actorUID, "Vote")
}

// markDeadReported bulk-marks all dead unreported crewmates, preventing
// duplicate reports of the same bodies inside one meeting cycle.
func (s *MeetingService) markDeadReported(tx *gorm.DB) error {
	return tx.Model(&models.Player{}).
		Where("role = ? AND is_dead = ? AND is_reported = ?", models.RoleCrewmate, true, false).
		Update("is_reported", true).Error
}

// gather flips every active player into the meeting-starting state.
func (s *MeetingService) gather(tx *gorm.DB) error {
	return tx.Model(&models.Player{}).
		Where("role <> ?", models.RoleDQ).
		Update("is_meeting_starting", true).Error
}
