package model

import "fmt"

// Member belongs to at most one Team
type Member struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement"`

	Username string `gorm:"column:username;size:100;not null;index:idx_member_username"`
	Age      int    `gorm:"column:age;not null;check:chk_member_age,age >= 0"`

	// Optional relation: NULL when the member has no team
	TeamID *uint32 `gorm:"column:team_id;index:idx_member_team"`
	Team   *Team   `gorm:"foreignKey:TeamID;references:ID"`

	BaseEntity
}

// TableName specifies the table name for Member
func (*Member) TableName() string {
	return "member"
}

// NewMember creates a member, optionally attached to team.
func NewMember(username string, age int, team *Team) *Member {
	m := &Member{
		Username: username,
		Age:      age,
	}
	if team != nil {
		m.ChangeTeam(team)
	}
	return m
}

// ChangeTeam moves the member to team and keeps both inverse sides in sync.
// An unsaved team leaves TeamID nil until GORM saves the association.
func (m *Member) ChangeTeam(team *Team) {
	if m.Team == team {
		return
	}
	if m.Team != nil {
		m.Team.removeMember(m)
	}

	m.Team = team
	m.TeamID = nil
	if team.ID != 0 {
		id := team.ID
		m.TeamID = &id
	}
	team.Members = append(team.Members, m)
}

func (m *Member) String() string {
	return fmt.Sprintf("Member(id=%d, username=%s, age=%d)", m.ID, m.Username, m.Age)
}
