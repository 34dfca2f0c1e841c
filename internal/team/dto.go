package team

type CreateTeamRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type TeamResponse struct {
	ID          uint32 `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"memberCount"`
}
