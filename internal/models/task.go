package models

// TaskDefinition is a catalogue entry. The catalogue is static for an event:
// every physical task station has a printed secret code that players type in
// to prove completion.
type TaskDefinition struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Tier        string `gorm:"size:10;not null;uniqueIndex:idx_tier_task,priority:1" json:"tier"`
	TaskID      int    `gorm:"not null;uniqueIndex:idx_tier_task,priority:2" json:"task_id"`
	Description string `gorm:"size:255;not null" json:"description"`
	Code        int    `gorm:"not null" json:"code"`
}

// AssignedTask is one task handed to one player for the current game. Rows
// are individually addressable so completion is a single-row update instead
// of a whole-array rewrite.
type AssignedTask struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	PlayerID    uint   `gorm:"not null;index" json:"player_id"`
	Tier        string `gorm:"size:10;not null" json:"tier"`
	TaskID      int    `gorm:"not null" json:"task_id"`
	Description string `gorm:"size:255;not null" json:"description"`
	Code        int    `gorm:"not null" json:"code"`
	Done        bool   `gorm:"not null;default:false" json:"done"`
	Position    int    `gorm:"not null;default:0" json:"position"`
}

const (
	TierEasy   = "easy"
	TierMedium = "medium"
	TierHard   = "hard"

	EasyPoolSize   = 24
	MediumPoolSize = 16
	HardPoolSize   = 8

	EasyPerPlayer   = 3
	MediumPerPlayer = 2
	HardPerPlayer   = 1
)
