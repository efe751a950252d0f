package model

type Guild struct {
	ID             string    `json:"id,omitempty"`
	Name           string    `json:"name,omitempty"`
	Description    string    `json:"description,omitempty"`
	Emblem         string    `json:"emblem,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	Category       string    `json:"category,omitempty"`
	Owner          ShortUser `json:"owner,omitempty"`
	Members        int       `json:"members"`
	CreatedAt      string    `json:"created_at,omitempty"`
}

type GuildMember struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Role      string `json:"role"`
	JoinedAt  string `json:"joined_at,omitempty"`
}

type GuildApplication struct {
	ID        string   `json:"id,omitempty"`
	GuildID   string   `json:"guild_id,omitempty"`
	UserID    string   `json:"user_id,omitempty"`
	Username  string   `json:"username,omitempty"`
	AvatarURL string   `json:"avatar_url,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	Message   string   `json:"message,omitempty"`
	Status    string   `json:"status,omitempty"`
	AppliedAt string   `json:"applied_at,omitempty"`
}

type CreateGuildRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Emblem         string `json:"emblem"`
	Specialization string `json:"specialization"`
	Category       string `json:"category"`
}

type CreateGuildResponse struct {
	ID string `json:"id"`
}

type GetGuildRequest struct {
	ID string `json:"id" form:"id"`
}

type GetGuildResponse struct {
	Guild Guild `json:"guild"`
}

type GetGuildsRequest struct {
	Q              string `json:"q" form:"q"`
	Specialization string `json:"specialization" form:"specialization"`
	Offset         int    `json:"offset" form:"offset"`
	Limit          int    `json:"limit" form:"limit"`
}

type GetGuildsResponse struct {
	Guilds []Guild `json:"guilds"`
}

type UpdateGuildRequest struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	Emblem         string `json:"emblem"`
	Specialization string `json:"specialization"`
	Category       string `json:"category"`
}

type UpdateGuildResponse struct {
	Guild Guild `json:"guild"`
}

type DeleteGuildRequest struct {
	ID string `json:"id"`
}

type DeleteGuildResponse struct{}

type ApplyGuildRequest struct {
	GuildID string   `json:"guild_id"`
	Message string   `json:"message"`
	Skills  []string `json:"skills"`
}

type ApplyGuildResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type GetGuildApplicationsRequest struct {
	GuildID string `json:"guild_id" form:"guild_id"`
}

type GetGuildApplicationsResponse struct {
	Applications []GuildApplication `json:"applications"`
}

type ApproveGuildApplicationRequest struct {
	ApplicationID string `json:"application_id"`
}

type ApproveGuildApplicationResponse struct {
	Guild Guild `json:"guild"`
}

type RejectGuildApplicationRequest struct {
	ApplicationID string `json:"application_id"`
}

type RejectGuildApplicationResponse struct{}

type GetGuildMembersRequest struct {
	GuildID string `json:"guild_id" form:"guild_id"`
}

type GetGuildMembersResponse struct {
	Members []GuildMember `json:"members"`
}
