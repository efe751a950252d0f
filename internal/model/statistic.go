package model

type UserStatistic struct {
	User         ShortUser `json:"user"`
	Value        int64     `json:"value"`
	CurrentRank  uint64    `json:"current_rank"`
	PreviousRank uint64    `json:"previous_rank,omitempty"`
}

type GetLeaderboardRequest struct {
	Offset int `json:"offset" form:"offset"`
	Limit  int `json:"limit" form:"limit"`
}

type GetLeaderboardResponse struct {
	Leaderboard []UserStatistic `json:"leaderboard"`
}

type GetMyRankRequest struct{}

type GetMyRankResponse struct {
	Statistic UserStatistic `json:"statistic"`
}
