package constants

// Entity status values shared by clubs, colleges, coordinators and members.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Event lifecycle. Unlike the generic active/inactive status this is a
// closed enum: an unknown value is a validation error, not a default.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

var EventStatusValues = map[string]struct{}{
	EventStatusUpcoming:  {},
	EventStatusCompleted: {},
	EventStatusCancelled: {},
}

// Announcement lifecycle and priority.
const (
	AnnouncementStatusDraft     = "draft"
	AnnouncementStatusPublished = "published"

	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	DefaultAudience = "all_members"
)

var AnnouncementPriorityValues = map[string]struct{}{
	PriorityNormal: {},
	PriorityHigh:   {},
	PriorityUrgent: {},
}

// College authority roles. Anything outside this set is stored as NULL.
var AllowedAuthorityRoles = map[string]struct{}{
	"principal": {},
	"hod":       {},
	"faculty":   {},
	"admin":     {},
	"other":     {},
}

// Coordinator role_type is free text, but stats group it into two buckets.
var FacultyLikeRoles = []string{"faculty", "lead", "co-lead", "mentor"}

// Accepted upload extensions for logos and images.
var AllowedImageExt = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
	"webp": {},
}
