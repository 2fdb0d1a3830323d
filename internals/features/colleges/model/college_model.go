package model

import (
	"time"
)

type CollegeModel struct {
	CollegeID     uint    `gorm:"column:college_id;primaryKey;autoIncrement" json:"college_id"`
	CollegeName   string  `gorm:"column:college_name;type:varchar(120);not null" json:"college_name"`
	AuthorityName *string `gorm:"column:authority_name;type:varchar(120)" json:"authority_name"`
	AuthorityRole *string `gorm:"column:authority_role;type:varchar(30)" json:"authority_role"`
	Phone         *string `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Email         *string `gorm:"column:email;type:varchar(120)" json:"email"`
	Location      *string `gorm:"column:location;type:varchar(120)" json:"location"`
	Description   *string `gorm:"column:description;type:text" json:"description"`
	Status        string  `gorm:"column:status;type:varchar(20);not null;default:active" json:"status"`

	IsDeleted bool       `gorm:"column:is_deleted;not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`

	CreatedTime time.Time `gorm:"column:created_time;autoCreateTime" json:"created_time"`
}

func (CollegeModel) TableName() string {
	return "colleges"
}
