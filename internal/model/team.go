package model

import "fmt"

type Team struct {
	ID   uint32 `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;size:100;not null;uniqueIndex:idx_team_name"`

	// Inverse side, loaded only through Preload. Holds the same *Member values
	// ChangeTeam was called on, so later changes to a member show here.
	Members []*Member `gorm:"foreignKey:TeamID;references:ID"`

	BaseEntity
}

func (*Team) TableName() string {
	return "team"
}

func NewTeam(name string) *Team {
	return &Team{Name: name}
}

func (t *Team) removeMember(m *Member) {
	for i, member := range t.Members {
		if member == m {
			t.Members = append(t.Members[:i], t.Members[i+1:]...)
			return
		}
	}
}

func (t *Team) String() string {
	return fmt.Sprintf("Team(id=%d, name=%s)", t.ID, t.Name)
}
