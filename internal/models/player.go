package models

import "time"

type Player struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	UID      string     `gorm:"size:64;uniqueIndex;not null" json:"uid"`
	Name     string     `gorm:"size:100;not null" json:"name"`
	Ready    bool       `gorm:"not null;default:false" json:"ready"`
	ReadyAt  *time.Time `json:"ready_at,omitempty"`
	JoinedAt time.Time  `json:"joined_at"`
	InGame   bool       `gorm:"not null;default:false" json:"in_game"`
	Role     string     `gorm:"size:10;not null;default:'player';index" json:"role"`

	IsDead     bool   `gorm:"not null;default:false" json:"is_dead"`
	KilledBy   string `gorm:"size:100" json:"killed_by"`
	FoundBy    string `gorm:"size:100" json:"found_by"`
	IsReported bool   `gorm:"not null;default:false" json:"is_reported"`
	Win        string `gorm:"size:10" json:"win"`

	DoneTasks int `gorm:"not null;default:0" json:"done_tasks"`
	// Imposters is the imposter count snapshot taken at game start. It is
	// the denominator input for the task-ratio win check, so it must not be
	// recomputed from live counts after deaths.
	Imposters int `gorm:"not null;default:0" json:"imposters"`
	// Random orders the roster for the role draw and task batching.
	Random int `gorm:"not null;default:0" json:"-"`

	// Absolute deadlines in epoch milliseconds.
	CooldownEndsAt         int64 `gorm:"not null;default:0" json:"cooldown_ends_at"`
	MeetingCooldownEndsAt  int64 `gorm:"not null;default:0" json:"meeting_cooldown_ends_at"`
	SabotageCooldownEndsAt int64 `gorm:"not null;default:0" json:"sabotage_cooldown_ends_at"`
	SabotageEndsAt         int64 `gorm:"not null;default:0" json:"sabotage_ends_at"`

	IsSabotaged        bool   `gorm:"not null;default:false" json:"is_sabotaged"`
	SabotageType       string `gorm:"size:10" json:"sabotage_type"`
	IsOxygenFirstDone  bool   `gorm:"not null;default:false" json:"is_oxygen_first_done"`
	IsOxygenSecondDone bool   `gorm:"not null;default:false" json:"is_oxygen_second_done"`
	IsCommsDone        bool   `gorm:"not null;default:false" json:"is_comms_done"`
	OxygenFirstCode    int    `gorm:"not null;default:0" json:"oxygen_first_code"`
	OxygenSecondCode   int    `gorm:"not null;default:0" json:"oxygen_second_code"`
	CommsCode          int    `gorm:"not null;default:0" json:"comms_code"`

	IsMeetingStarting bool `gorm:"not null;default:false" json:"is_meeting_starting"`
	IsMeetingStarted  bool `gorm:"not null;default:false" json:"is_meeting_started"`
	GamePaused        bool `gorm:"not null;default:false" json:"game_paused"`
	ScreenHidden      bool `gorm:"not null;default:false" json:"screen_hidden"`

	Tasks []AssignedTask `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"-"`
}

const (
	RolePlayer   = "player"
	RoleAdmin    = "admin"
	RoleCrewmate = "crewmate"
	RoleImposter = "imposter"
	RoleDQ       = "dq"

	WinCrewmates = "crewmates"
	WinImposters = "imposters"

	SabotageOxygen = "oxygen"
	SabotageComms  = "comms"

	KilledByVote = "voted"
)
