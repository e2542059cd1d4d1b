package services

import (
	"time"

	"github.com/pienas/amongus/internal/models"

	"gorm.io/gorm"
)

type LogService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewLogService(db *gorm.DB) *LogService {
	return &LogService{db: db, now: time.Now}
}

// Append writes one audit entry keyed by the action timestamp. Logging is
// best-effort: a failed log write never fails the operation it describes.
func (s *LogService) Append(name, uid, action string) {
	entry := models.GameLog{
		ID:     s.now().UTC().Format(time.RFC3339Nano),
		Name:   name,
		UID:    uid,
		Action: action,
	}
	s.db.Create(&entry)
}

func (s *LogService) List(limit int) ([]models.GameLog, error) {
	var logs []models.GameLog
	q := s.db.Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
