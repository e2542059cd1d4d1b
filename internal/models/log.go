package models

import "time"

// GameLog is an append-only audit record. The primary key is the RFC3339Nano
// timestamp of the action, matching the store's document naming; there are no
// update or delete paths.
type GameLog struct {
	ID        string    `gorm:"primaryKey;size:40" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	UID       string    `gorm:"size:64;index" json:"uid"`
	Action    string    `gorm:"size:255;not null" json:"action"`
	CreatedAt time.Time `json:"created_at"`
}
