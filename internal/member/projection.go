package member

// MemberTeamRow is one row of member LEFT JOIN team
type MemberTeamRow struct {
	MemberID uint32
	Username string
	Age      int
	TeamID   *uint32
	TeamName *string
}

// projectionColumns selects the columns scanned into MemberTeamRow
const projectionColumns = "member.id AS member_id, member.username AS username, member.age AS age, " +
	"team.id AS team_id, team.name AS team_name"

// MemberTeamDto is the flattened read model of a member and its team.
// TeamID and TeamName are null for a member without a team.
type MemberTeamDto struct {
	MemberID uint32  `json:"memberId"`
	Username string  `json:"username"`
	Age      int     `json:"age"`
	TeamID   *uint32 `json:"teamId"`
	TeamName *string `json:"teamName"`
}

// Project maps a joined row to its DTO
func Project(row MemberTeamRow) MemberTeamDto {
	return MemberTeamDto{
		MemberID: row.MemberID,
		Username: row.Username,
		Age:      row.Age,
		TeamID:   clonePtr(row.TeamID),
		TeamName: clonePtr(row.TeamName),
	}
}

func ProjectAll(rows []MemberTeamRow) []MemberTeamDto {
	out := make([]MemberTeamDto, 0, len(rows))
	for _, row := range rows {
		out = append(out, Project(row))
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
