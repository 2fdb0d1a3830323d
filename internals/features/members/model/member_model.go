package model

import (
	"time"
)

type MemberModel struct {
	MemberID    uint    `gorm:"column:member_id;primaryKey;autoIncrement" json:"member_id"`
	MemberName  string  `gorm:"column:member_name;type:varchar(100);not null" json:"member_name"`
	CollegeID   *uint   `gorm:"column:college_id;index" json:"college_id"`
	FacultyDept *string `gorm:"column:faculty_dept;type:varchar(100)" json:"faculty_dept"`
	Email       *string `gorm:"column:email;type:varchar(120)" json:"email"`
	Phone       *string `gorm:"column:phone;type:varchar(20)" json:"phone"`
	MemberImage *string `gorm:"column:member_image;type:varchar(255)" json:"member_image"`
	Description *string `gorm:"column:description;type:text" json:"description"`

	// NULL status counts as active for filtering.
	Status *string `gorm:"column:status;type:varchar(20)" json:"status"`

	IsDeleted bool       `gorm:"column:is_deleted;not null;default:false" json:"is_deleted"`
	DeletedAt *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`

	CreatedTime time.Time `gorm:"column:created_time;autoCreateTime" json:"created_time"`
	UpdatedTime time.Time `gorm:"column:updated_time;autoUpdateTime" json:"updated_time"`
}

func (MemberModel) TableName() string {
	return "members"
}

// MemberClubModel is the member↔club association row.
type MemberClubModel struct {
	MemberID   uint      `gorm:"column:member_id;primaryKey" json:"member_id"`
	ClubID     uint      `gorm:"column:club_id;primaryKey" json:"club_id"`
	JoinedDate time.Time `gorm:"column:joined_date;autoCreateTime" json:"joined_date"`
}

func (MemberClubModel) TableName() string {
	return "member_clubs"
}
