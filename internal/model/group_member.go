package model

import "time"

// GroupMemberStatus 入组申请状态
type GroupMemberStatus string

const (
	GroupMemberPending  GroupMemberStatus = "pending"
	GroupMemberApproved GroupMemberStatus = "approved"
)

// Valid 是否为已知状态
func (s GroupMemberStatus) Valid() bool {
	return s == GroupMemberPending || s == GroupMemberApproved
}

// GroupMember 小组成员关系（入组申请）
type GroupMember struct {
	ID       uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	GroupID  uint              `gorm:"not null;uniqueIndex:uq_group_members_group_member" json:"groupId"`
	MemberID uint              `gorm:"not null;uniqueIndex:uq_group_members_group_member;index" json:"memberId"`
	Status   GroupMemberStatus `gorm:"type:varchar(20);not null;default:pending;check:status IN ('pending','approved')" json:"status"`
	JoinedAt time.Time         `gorm:"not null;autoCreateTime" json:"joinedAt"`

	Group  *Group  `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"  json:"-"`
	Member *Member `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE" json:"member,omitempty"`
}
