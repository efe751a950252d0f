package middleware

import (
	"github.com/peerquest/backend/pkg/xcontext"
)

// Logger returns a closer which logs the result of every request.
func Logger() func(xcontext.Context) {
	return func(ctx xcontext.Context) {
		req := ctx.Request()
		if err := xcontext.GetError(ctx); err != nil {
			ctx.Logger().Warnf("%s %s: %v", req.Method, req.URL.Path, err)
		} else {
			ctx.Logger().Infof("%s %s", req.Method, req.URL.Path)
		}
	}
}
