package model

type Quest struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Difficulty  string    `json:"difficulty,omitempty"`
	Reward      int64     `json:"reward,omitempty"`
	XP          int64     `json:"xp,omitempty"`
	Status      string    `json:"status,omitempty"`
	Poster      ShortUser `json:"poster,omitempty"`
	Deadline    string    `json:"deadline,omitempty"`
	CreatedAt   string    `json:"created_at,omitempty"`
	CompletedAt string    `json:"completed_at,omitempty"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
}

type QuestApplication struct {
	ID        string `json:"id,omitempty"`
	QuestID   string `json:"quest_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	Username  string `json:"username,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Message   string `json:"message,omitempty"`
	Status    string `json:"status,omitempty"`
	AppliedAt string `json:"applied_at,omitempty"`
}

type CreateQuestRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Reward      int64  `json:"reward"`
	XP          int64  `json:"xp"`
	Deadline    string `json:"deadline"`
}

type CreateQuestResponse struct {
	ID string `json:"id"`
}

type GetQuestRequest struct {
	ID string `json:"id" form:"id"`
}

type GetQuestResponse struct {
	Quest        Quest              `json:"quest"`
	Applications []QuestApplication `json:"applications,omitempty"`
}

type GetQuestsRequest struct {
	Q          string `json:"q" form:"q"`
	Category   string `json:"category" form:"category"`
	Difficulty string `json:"difficulty" form:"difficulty"`
	Status     string `json:"status" form:"status"`
	PosterID   string `json:"poster_id" form:"poster_id"`
	Offset     int    `json:"offset" form:"offset"`
	Limit      int    `json:"limit" form:"limit"`
}

type GetQuestsResponse struct {
	Quests []Quest `json:"quests"`
}

type UpdateQuestRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Reward      int64  `json:"reward"`
	XP          int64  `json:"xp"`
	Deadline    string `json:"deadline"`
}

type UpdateQuestResponse struct {
	Quest Quest `json:"quest"`
}

type DeleteQuestRequest struct {
	ID string `json:"id"`
}

type DeleteQuestResponse struct{}

type ApplyQuestRequest struct {
	QuestID string `json:"quest_id"`
	Message string `json:"message"`
}

type ApplyQuestResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type GetQuestApplicationsRequest struct {
	QuestID string `json:"quest_id" form:"quest_id"`
}

type GetQuestApplicationsResponse struct {
	Applications []QuestApplication `json:"applications"`
}

type ApproveQuestApplicationRequest struct {
	ApplicationID string `json:"application_id"`
}

type ApproveQuestApplicationResponse struct {
	Quest Quest `json:"quest"`
}

type RejectQuestApplicationRequest struct {
	ApplicationID string `json:"application_id"`
}

type RejectQuestApplicationResponse struct{}

type CompleteQuestRequest struct {
	ID string `json:"id"`
}

type CompleteQuestResponse struct {
	Quest Quest `json:"quest"`
}

type CancelQuestRequest struct {
	ID string `json:"id"`
}

type CancelQuestResponse struct {
	Quest Quest `json:"quest"`
}
