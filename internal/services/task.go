package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/pienas/amongus/internal/models"

	"gorm.io/gorm"
)

type TaskService struct {
	db   *gorm.DB
	game *GameService
	logs *LogService
	// deduction is the fixed denominator deduction in the crewmate win
	// ratio. Kept at 3 for score parity across events.
	deduction int
	now       func() time.Time
}

func NewTaskService(db *gorm.DB, game *GameService, logs *LogService, deduction int) *TaskService {
	return &TaskService{db: db, game: game, logs: logs, deduction: deduction, now: time.Now}
}

// CompleteTask verifies the station code and marks the task done. Completion
// is monotonic: a task already done stays done, with no second increment.
// Imposter task lists are decoys, so an imposter caller changes nothing.
func (s *TaskService) CompleteTask(uid, tier string, taskID, code int) error {
	player, err := s.game.playerByUID(uid)
	if err != nil {
		return err
	}

	var task models.AssignedTask
	if err := s.db.Where("player_id = ? AND tier = ? AND task_id = ?", player.ID, tier, taskID).
		First(&task).Error; err != nil {
		return fmt.Errorf("task %d (%s) is not assigned to this player", taskID, tier)
	}

	if code != task.Code {
		return ErrCodeMismatch
	}
	if player.Role == models.RoleImposter {
		return nil
	}
	if task.Done {
		return nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.AssignedTask{}).Where("id = ?", task.ID).
			Update("done", true).Error; err != nil {
			return err
		}
		return tx.Model(&models.Player{}).Where("id = ?", player.ID).
			Update("done_tasks", gorm.Expr("done_tasks + 1")).Error
	})
	if err != nil {
		return err
	}

	s.logs.Append(player.Name, player.UID, completeAction(tier, taskID))

	return s.checkTaskWin(player)
}

// checkTaskWin declares the crewmate win when the weighted completion ratio
// hits exactly 100%. The denominator deducts the admin plus overhead roles
// and the imposter count snapshotted at game start.
func (s *TaskService) checkTaskWin(actor *models.Player) error {
	var activeCount int64
	s.db.Model(&models.Player{}).Where("role <> ?", models.RoleDQ).Count(&activeCount)

	target := (int(activeCount) - s.deduction - actor.Imposters) * 10
	if target <= 0 {
		return nil
	}
	if s.doneWeight() == target {
		return s.game.DeclareWin(models.WinCrewmates, actor.Name, actor.UID, "")
	}
	return nil
}

// doneWeight sums completed tasks over all in-game players weighted 1/2/3 by
// tier, the numerator of the progress bar every client renders.
func (s *TaskService) doneWeight() int {
	type row struct {
		Tier  string
		Count int
	}
	var rows []row
	s.db.Model(&models.AssignedTask{}).
		Select("assigned_tasks.tier AS tier, COUNT(*) AS count").
		Joins("JOIN players ON players.id = assigned_tasks.player_id").
		Where("assigned_tasks.done = ? AND players.in_game = ?", true, true).
		Group("assigned_tasks.tier").
		Scan(&rows)

	weight := 0
	for _, r := range rows {
		switch r.Tier {
		case models.TierEasy:
			weight += r.Count
		case models.TierMedium:
			weight += 2 * r.Count
		case models.TierHard:
			weight += 3 * r.Count
		}
	}
	return weight
}

// Progress returns the weighted completion percentage shown on the shared
// progress bar, using the same denominator as the win check.
func (s *TaskService) Progress() (float64, error) {
	var player models.Player
	if err := s.db.Where("in_game = ? AND role <> ?", true, models.RoleDQ).
		First(&player).Error; err != nil {
		return 0, errors.New("no game in progress")
	}

	var activeCount int64
	s.db.Model(&models.Player{}).Where("role <> ?", models.RoleDQ).Count(&activeCount)

	target := (int(activeCount) - s.deduction - player.Imposters) * 10
	if target <= 0 {
		return 0, nil
	}
	return float64(s.doneWeight()) / float64(target) * 100, nil
}

func completeAction(tier string, taskID int) string {
	switch tier {
	case models.TierEasy:
		return "completeEasyTask?id=" + strconv.Itoa(taskID)
	case models.TierMedium:
		return "completeMediumTask?id=" + strconv.Itoa(taskID)
	default:
		return "completeHardTask?id=" + strconv.Itoa(taskID)
	}
}

// taskPools holds four independently shuffled permutations of each tier.
// Players are dealt in roster order: batches of eight consume pools 1-3 with
// disjoint slices, and everyone past the third batch shares the head of pool
// 4. The shared fourth batch repeats codes across players on purpose; it
// keeps the number of physical stations bounded.
type taskPools struct {
	easy   [4][]models.TaskDefinition
	medium [4][]models.TaskDefinition
	hard   [4][]models.TaskDefinition
	served int
}

const batchSize = 8

func buildTaskPools(db *gorm.DB) (*taskPools, error) {
	pools := &taskPools{}

	load := func(tier string, minSize int) ([]models.TaskDefinition, error) {
		var defs []models.TaskDefinition
		if err := db.Where("tier = ?", tier).Order("task_id ASC").Find(&defs).Error; err != nil {
			return nil, err
		}
		if len(defs) < minSize {
			return nil, ErrAssignmentExhausted
		}
		return defs, nil
	}

	easy, err := load(models.TierEasy, batchSize*models.EasyPerPlayer)
	if err != nil {
		return nil, err
	}
	medium, err := load(models.TierMedium, batchSize*models.MediumPerPlayer)
	if err != nil {
		return nil, err
	}
	hard, err := load(models.TierHard, batchSize*models.HardPerPlayer)
	if err != nil {
		return nil, err
	}

	for i := 0; i < 4; i++ {
		pools.easy[i] = shuffled(easy)
		pools.medium[i] = shuffled(medium)
		pools.hard[i] = shuffled(hard)
	}
	return pools, nil
}

// next deals 3 easy + 2 medium + 1 hard for the next player in roster order.
func (p *taskPools) next(playerID uint) []models.AssignedTask {
	group := p.served / batchSize
	p.served++

	var easy, medium, hard []models.TaskDefinition
	if group < 3 {
		easy = p.easy[group][:models.EasyPerPlayer]
		p.easy[group] = p.easy[group][models.EasyPerPlayer:]
		medium = p.medium[group][:models.MediumPerPlayer]
		p.medium[group] = p.medium[group][models.MediumPerPlayer:]
		hard = p.hard[group][:models.HardPerPlayer]
		p.hard[group] = p.hard[group][models.HardPerPlayer:]
	} else {
		// Fourth batch: shared permutation, never spliced.
		easy = p.easy[3][:models.EasyPerPlayer]
		medium = p.medium[3][:models.MediumPerPlayer]
		hard = p.hard[3][:models.HardPerPlayer]
	}

	var tasks []models.AssignedTask
	appendTier := func(defs []models.TaskDefinition, tier string) {
		for i, d := range defs {
			tasks = append(tasks, models.AssignedTask{
				PlayerID:    playerID,
				Tier:        tier,
				TaskID:      d.TaskID,
				Description: d.Description,
				Code:        d.Code,
				Position:    i,
			})
		}
	}
	appendTier(easy, models.TierEasy)
	appendTier(medium, models.TierMedium)
	appendTier(hard, models.TierHard)
	return tasks
}

func shuffled(defs []models.TaskDefinition) []models.TaskDefinition {
	out := make([]models.TaskDefinition, len(defs))
	copy(out, defs)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
