package model

import (
	"time"
)

type ClubModel struct {
	ClubID       uint       `gorm:"column:club_id;primaryKey;autoIncrement" json:"club_id"`
	ClubName     string     `gorm:"column:club_name;type:varchar(100);not null" json:"club_name"`
	ClubCategory *string    `gorm:"column:club_category;type:varchar(50)" json:"club_category"`
	ClubLogo     *string    `gorm:"column:club_logo;type:varchar(255)" json:"club_logo"`
	Description  *string    `gorm:"column:description;type:text" json:"description"`
	Status       string     `gorm:"column:status;type:varchar(20);not null;default:active" json:"status"`

	IsDeleted bool       `gorm:"column:is_deleted;not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`

	CreatedTime time.Time `gorm:"column:created_time;autoCreateTime" json:"created_time"`
	UpdatedTime time.Time `gorm:"column:updated_time;autoUpdateTime" json:"updated_time"`

	// NOTE:
	// - Live-name uniqueness (case-insensitive, non-deleted only) is a partial
	//   index created in databases.Migrate; GORM tags cannot express it.
}

func (ClubModel) TableName() string {
	return "clubs"
}
