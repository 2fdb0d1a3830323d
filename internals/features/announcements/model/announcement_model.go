package model

import (
	"time"
)

type AnnouncementModel struct {
	ID      uint  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ClubID  *uint `gorm:"column:club_id;index" json:"club_id"`

	Title   string `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Content string `gorm:"column:content;type:text;not null" json:"content"`

	PublishAt *time.Time `gorm:"column:publish_at" json:"publish_at"`
	ExpireAt  *time.Time `gorm:"column:expire_at" json:"expire_at"`

	Priority string `gorm:"column:priority;type:varchar(20);not null;default:normal" json:"priority"`
	Audience string `gorm:"column:audience;type:varchar(50);not null;default:all_members" json:"audience"`
	Status   string `gorm:"column:status;type:varchar(20);not null;default:draft" json:"status"`

	SendEmail bool `gorm:"column:send_email;not null;default:false" json:"send_email"`
	Pinned    bool `gorm:"column:pinned;not null;default:false" json:"pinned"`

	IsDeleted bool       `gorm:"column:is_deleted;not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}
