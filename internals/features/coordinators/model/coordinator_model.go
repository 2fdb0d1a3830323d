package model

import (
	"time"
)

type CoordinatorModel struct {
	CoordinatorID    uint    `gorm:"column:coordinator_id;primaryKey;autoIncrement" json:"coordinator_id"`
	CoordinatorName  string  `gorm:"column:coordinator_name;type:varchar(100);not null" json:"coordinator_name"`
	ClubID           uint    `gorm:"column:club_id;not null;index" json:"club_id"`
	CollegeID        *uint   `gorm:"column:college_id;index" json:"college_id"`
	FacultyDept      *string `gorm:"column:faculty_dept;type:varchar(100)" json:"faculty_dept"`
	RoleType         *string `gorm:"column:role_type;type:varchar(50)" json:"role_type"`
	Email            *string `gorm:"column:email;type:varchar(120)" json:"email"`
	Phone            *string `gorm:"column:phone;type:varchar(20)" json:"phone"`
	CoordinatorImage *string `gorm:"column:coordinator_image;type:varchar(255)" json:"coordinator_image"`
	Description      *string `gorm:"column:description;type:text" json:"description"`
	Status           string  `gorm:"column:status;type:varchar(20);not null;default:active" json:"status"`

	IsDeleted bool       `gorm:"column:is_deleted;not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`

	CreatedTime time.Time `gorm:"column:created_time;autoCreateTime" json:"created_time"`
	UpdatedTime time.Time `gorm:"column:updated_time;autoUpdateTime" json:"updated_time"`
}

func (CoordinatorModel) TableName() string {
	return "coordinators"
}
