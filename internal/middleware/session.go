package middleware

import (
	"github.com/peerquest/backend/pkg/errorx"
	"github.com/peerquest/backend/pkg/xcontext"
)

// SessionResponse is the response of handlers which want to store something
// in the user session.
type SessionResponse interface {
	SessionInfo() map[string]any
}

// HandleSaveSession saves the session info of the response (if any) into the
// session store after the handler completes.
func HandleSaveSession() func(xcontext.Context) error {
	return func(ctx xcontext.Context) error {
		resp, ok := xcontext.GetResponse(ctx).(SessionResponse)
		if !ok {
			return nil
		}

		session, err := ctx.SessionStore().Get(ctx.Request(), ctx.Configs().Session.Name)
		if err != nil {
			ctx.Logger().Errorf("cannot get the session: %v", err)
			return errorx.Unknown
		}

		for key, value := range resp.SessionInfo() {
			session.Values[key] = value
		}

		if err := session.Save(ctx.Request(), ctx.Writer()); err != nil {
			ctx.Logger().Errorf("cannot save the session: %v", err)
			return errorx.Unknown
		}

		return nil
	}
}
