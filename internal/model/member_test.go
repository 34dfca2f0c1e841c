package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember_WithPersistedTeam(t *testing.T) {
	team := &Team{ID: 7, Name: "teamA"}

	member := NewMember("member1", 10, team)

	require.NotNil(t, member.TeamID)
	assert.Equal(t, uint32(7), *member.TeamID)
	assert.Same(t, team, member.Team)
	assert.Len(t, team.Members, 1)
}

func TestNewMember_WithoutTeam(t *testing.T) {
	member := NewMember("member1", 10, nil)

	assert.Nil(t, member.TeamID)
	assert.Nil(t, member.Team)
}

func TestChangeTeam_UnsavedTeamLeavesForeignKeyToGorm(t *testing.T) {
	team := NewTeam("teamB")

	member := NewMember("member3", 30, team)

	// GORM fills team_id from the association when the team is saved first
	assert.Nil(t, member.TeamID)
	assert.Same(t, team, member.Team)
}

func TestChangeTeam_MovesBetweenTeams(t *testing.T) {
	// Given: member1 in teamA
	teamA := &Team{ID: 1, Name: "teamA"}
	teamB := &Team{ID: 2, Name: "teamB"}
	member := NewMember("member1", 10, teamA)

	// When
	member.ChangeTeam(teamB)

	// Then: only teamB lists the member
	assert.Empty(t, teamA.Members)
	require.Len(t, teamB.Members, 1)
	assert.Same(t, member, teamB.Members[0])
	require.NotNil(t, member.TeamID)
	assert.Equal(t, uint32(2), *member.TeamID)

	// When: same team again
	member.ChangeTeam(teamB)

	// Then: not listed twice
	assert.Len(t, teamB.Members, 1)
}

func TestChangeTeam_InverseSideSeesLaterChanges(t *testing.T) {
	// Given
	team := NewTeam("teamB")
	member := NewMember("member3", 30, team)

	// When: the member is saved after joining
	member.ID = 3
	member.Age = 31

	// Then
	require.Len(t, team.Members, 1)
	assert.Equal(t, uint32(3), team.Members[0].ID)
	assert.Equal(t, 31, team.Members[0].Age)
}

func TestChangeTeam_FromSavedToUnsavedClearsForeignKey(t *testing.T) {
	// Given
	member := NewMember("member1", 10, &Team{ID: 1, Name: "teamA"})

	// When
	member.ChangeTeam(NewTeam("teamC"))

	// Then: GORM sets team_id once teamC is saved
	assert.Nil(t, member.TeamID)
}

func TestBaseEntity_StampCreator(t *testing.T) {
	member := NewMember("member1", 10, nil)

	member.StampCreator("admin")
	require.NotNil(t, member.CreatedBy)
	assert.Equal(t, "admin", *member.CreatedBy)

	member.StampCreator("")
	assert.Nil(t, member.CreatedBy)
}
