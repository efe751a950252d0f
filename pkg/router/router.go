package router

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peerquest/backend/config"
	"github.com/peerquest/backend/pkg/errorx"
	"github.com/peerquest/backend/pkg/logger"
	"github.com/peerquest/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(xcontext.Context, *Request) (*Response, error)
type MiddlewareFunc func(xcontext.Context) error
type CloserFunc func(xcontext.Context)

type Router struct {
	Inner  gin.IRouter
	cfg    config.Configs
	logger logger.Logger
	db     *gorm.DB

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	gin.SetMode(gin.ReleaseMode)
	return &Router{
		Inner:  gin.New(),
		cfg:    cfg,
		logger: logger,
		db:     db,
	}
}

// Branch returns a router registering on the same gin engine but with an
// independent middleware chain. Registrations on the branch see only the
// middlewares added to the branch and its ancestors.
func (r *Router) Branch() *Router {
	return &Router{
		Inner:   r.Inner,
		cfg:     r.cfg,
		logger:  r.logger,
		db:      r.db,
		befores: append([]MiddlewareFunc{}, r.befores...),
		afters:  append([]MiddlewareFunc{}, r.afters...),
		closers: append([]CloserFunc{}, r.closers...),
	}
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.befores = append(r.befores, middleware)
}

func (r *Router) After(middleware MiddlewareFunc) {
	r.afters = append(r.afters, middleware)
}

func (r *Router) AddCloser(closer CloserFunc) {
	r.closers = append(r.closers, closer)
}

func (r *Router) Handler() http.Handler {
	return r.Inner.(*gin.Engine)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.Inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	// Middleware chains are frozen at registration time.
	befores := append([]MiddlewareFunc{}, router.befores...)
	afters := append([]MiddlewareFunc{}, router.afters...)
	closers := append([]CloserFunc{}, router.closers...)

	return func(ginCtx *gin.Context) {
		req := ginCtx.Request
		ctx := xcontext.NewContext(req.Context(), req, ginCtx.Writer, router.cfg, router.logger, router.db)

		func() {
			var httpReq Request
			var err error
			switch method {
			case http.MethodGet:
				err = ginCtx.ShouldBindQuery(&httpReq)
			case http.MethodPost:
				// An empty body binds to the zero request.
				if err = ginCtx.ShouldBindJSON(&httpReq); errors.Is(err, io.EOF) {
					err = nil
				}
			}

			if err != nil {
				xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Cannot bind the request"))
				return
			}

			for _, m := range befores {
				if err := m(ctx); err != nil {
					xcontext.SetError(ctx, err)
					return
				}
			}

			resp, err := handler(ctx, &httpReq)
			if err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			xcontext.SetResponse(ctx, resp)

			for _, m := range afters {
				if err := m(ctx); err != nil {
					xcontext.SetError(ctx, err)
					return
				}
			}
		}()

		handleResponse(ctx)
		for _, closer := range closers {
			closer(ctx)
		}
	}
}

func handleResponse(ctx xcontext.Context) {
	err := func() error {
		if err := xcontext.GetError(ctx); err != nil {
			return err
		}

		if resp := xcontext.GetResponse(ctx); resp != nil {
			if err := WriteJson(ctx.Writer(), newResponse(resp)); err != nil {
				ctx.Logger().Errorf("cannot write the response %v", err)
				return errorx.New(errorx.BadResponse, "Cannot write the response")
			}
		}

		return nil
	}()

	if err != nil {
		resp := newErrorResponse(err)
		if err := WriteJson(ctx.Writer(), resp); err != nil {
			ctx.Logger().Errorf("cannot write the response: %s", err.Error())
		}
	}
}

func newErrorResponse(err error) response {
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return response{
			Code:  int64(errx.Code),
			Error: errx.Message,
		}
	}

	return response{
		Code:  int64(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}
