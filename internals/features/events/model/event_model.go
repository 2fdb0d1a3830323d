package model

import (
	"time"
)

type EventModel struct {
	EventID          uint       `gorm:"column:event_id;primaryKey;autoIncrement" json:"event_id"`
	EventName        string     `gorm:"column:event_name;type:varchar(150);not null" json:"event_name"`
	OrganisingClubID uint       `gorm:"column:organising_club_id;not null;index" json:"organising_club_id"`
	EventCoordinator *string    `gorm:"column:event_coordinator;type:varchar(100)" json:"event_coordinator"`
	Venue            *string    `gorm:"column:venue;type:varchar(150)" json:"venue"`
	StartAt          time.Time  `gorm:"column:start_at;not null;index" json:"start_at"`
	EndAt            *time.Time `gorm:"column:end_at" json:"end_at"`
	EventImage       *string    `gorm:"column:event_image;type:varchar(255)" json:"event_image"`
	MaxParticipants  *int       `gorm:"column:max_participants" json:"max_participants"`
	Status           string     `gorm:"column:status;type:varchar(20);not null;default:upcoming" json:"status"`
	Description      string     `gorm:"column:description;type:text" json:"description"`

	IsDeleted bool       `gorm:"column:is_deleted;not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`

	CreatedTime time.Time `gorm:"column:created_time;autoCreateTime" json:"created_time"`
	UpdatedTime time.Time `gorm:"column:updated_time;autoUpdateTime" json:"updated_time"`
}

func (EventModel) TableName() string {
	return "events"
}
