package xcontext

// Keys of the request-scoped values the router and middlewares exchange
// through the Context.
type (
	requestUserIDKey struct{}
	responseValueKey struct{}
	errorValueKey    struct{}
)

// SetRequestUserID records the authenticated requester. It is set by the
// authentication middleware once the access token is verified.
func SetRequestUserID(ctx Context, id string) {
	ctx.Set(requestUserIDKey{}, id)
}

// GetRequestUserID returns the authenticated requester, or an empty string
// for an anonymous request.
func GetRequestUserID(ctx Context) string {
	if id, ok := ctx.Get(requestUserIDKey{}).(string); ok {
		return id
	}

	return ""
}

func SetResponse(ctx Context, resp any) {
	ctx.Set(responseValueKey{}, resp)
}

func GetResponse(ctx Context) any {
	return ctx.Get(responseValueKey{})
}

func SetError(ctx Context, err error) {
	ctx.Set(errorValueKey{}, err)
}

func GetError(ctx Context) error {
	if err, ok := ctx.Get(errorValueKey{}).(error); ok {
		return err
	}

	return nil
}
