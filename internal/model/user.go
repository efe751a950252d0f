package model

type ShortUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type User struct {
	ShortUser

	Email     string `json:"email,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Role      string `json:"role,omitempty"`
	Gold      int64  `json:"gold"`
	XP        int64  `json:"xp"`
	Level     int    `json:"level"`
	IsBanned  bool   `json:"is_banned,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type GetMeRequest struct{}

type GetMeResponse struct {
	User User `json:"user"`
}

type GetUserRequest struct {
	ID string `json:"id" form:"id"`
}

type GetUserResponse struct {
	User User `json:"user"`
}

type GetUsersRequest struct {
	Q      string `json:"q" form:"q"`
	Offset int    `json:"offset" form:"offset"`
	Limit  int    `json:"limit" form:"limit"`
}

type GetUsersResponse struct {
	Users []User `json:"users"`
}

type UpdateUserRequest struct {
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

type UpdateUserResponse struct {
	User User `json:"user"`
}

type BanUserRequest struct {
	ID string `json:"id"`
}

type BanUserResponse struct{}
