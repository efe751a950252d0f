package middleware

import (
	"strings"

	"github.com/peerquest/backend/internal/repository"
	"github.com/peerquest/backend/pkg/errorx"
	"github.com/peerquest/backend/pkg/xcontext"
)

// AuthVerifier verifies the access token of incoming requests and records
// the requester in the context.
type AuthVerifier struct {
	useAccessToken bool
	userRepo       repository.UserRepository
}

func NewAuthVerifier() *AuthVerifier {
	return &AuthVerifier{}
}

func (a *AuthVerifier) WithAccessToken() *AuthVerifier {
	a.useAccessToken = true
	return a
}

// WithBannedCheck rejects requests of banned users. It needs an extra
// database roundtrip for every request.
func (a *AuthVerifier) WithBannedCheck(userRepo repository.UserRepository) *AuthVerifier {
	a.userRepo = userRepo
	return a
}

func (a *AuthVerifier) Middleware() func(xcontext.Context) error {
	return func(ctx xcontext.Context) error {
		if a.useAccessToken {
			token := getAccessToken(ctx)
			if token == "" {
				return errorx.New(errorx.Unauthenticated, "You need to login before")
			}

			info, err := ctx.AccessTokenEngine().Verify(token)
			if err != nil {
				ctx.Logger().Debugf("cannot verify access token: %v", err)
				return errorx.New(errorx.TokenExpired, "Your session is expired, please login again")
			}

			if a.userRepo != nil {
				user, err := a.userRepo.GetByID(ctx, info.ID)
				if err != nil {
					ctx.Logger().Errorf("cannot get the requester: %v", err)
					return errorx.Unknown
				}

				if user.IsBanned {
					return errorx.New(errorx.PermissionDenied, "Your account is banned")
				}
			}

			xcontext.SetRequestUserID(ctx, info.ID)
		}

		return nil
	}
}

func getAccessToken(ctx xcontext.Context) string {
	authorization := ctx.Request().Header.Get("Authorization")
	auth, token, found := strings.Cut(authorization, " ")
	if found {
		if auth == "Bearer" {
			return token
		}

		return ""
	}

	cookie, err := ctx.Request().Cookie(ctx.Configs().Auth.AccessToken.Name)
	if err != nil {
		return ""
	}

	return cookie.Value
}
