package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/peerquest/backend/config"
	"github.com/peerquest/backend/pkg/errorx"
	"github.com/peerquest/backend/pkg/logger"
	"github.com/peerquest/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Q      string `json:"q" form:"q"`
	Offset int    `json:"offset" form:"offset"`
}

type echoResponse struct {
	Q      string `json:"q"`
	Offset int    `json:"offset"`
}

func echoHandler(ctx xcontext.Context, req *echoRequest) (*echoResponse, error) {
	return &echoResponse{Q: req.Q, Offset: req.Offset}, nil
}

func newTestRouter() *Router {
	cfg := config.Configs{
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{Name: "access_token", Expiration: time.Minute},
		},
		Session: config.SessionConfigs{Secret: "secret", Name: "session"},
	}

	return New(nil, cfg, logger.NewLogger(logger.SILENCE))
}

func Test_Router_BindQuery(t *testing.T) {
	r := newTestRouter()
	GET(r, "/echo", echoHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/echo?q=sword&offset=3", nil)
	r.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"code":0,"data":{"q":"sword","offset":3}}`, w.Body.String())
}

func Test_Router_BindBody(t *testing.T) {
	r := newTestRouter()
	POST(r, "/echo", echoHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"q":"shield","offset":7}`))
	r.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"code":0,"data":{"q":"shield","offset":7}}`, w.Body.String())

	// An empty body binds to the zero request.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/echo", nil)
	r.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"code":0,"data":{"q":"","offset":0}}`, w.Body.String())
}

func Test_Router_BindInvalidBody(t *testing.T) {
	r := newTestRouter()
	POST(r, "/echo", echoHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"offset":"not a number"}`))
	r.Handler().ServeHTTP(w, req)

	require.JSONEq(t, `{"code":100001,"error":"Cannot bind the request"}`, w.Body.String())
}

func Test_Router_ErrorResponse(t *testing.T) {
	r := newTestRouter()
	GET(r, "/fail", func(ctx xcontext.Context, req *echoRequest) (*echoResponse, error) {
		return nil, errorx.New(errorx.NotFound, "Not found quest")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	r.Handler().ServeHTTP(w, req)

	require.JSONEq(t, `{"code":100004,"error":"Not found quest"}`, w.Body.String())
}

func Test_Router_BranchMiddleware(t *testing.T) {
	r := newTestRouter()

	branch := r.Branch()
	branch.Before(func(ctx xcontext.Context) error {
		return errorx.New(errorx.Unauthenticated, "You need to login before")
	})
	GET(branch, "/private", echoHandler)

	// Routes registered outside the branch do not run its middleware.
	GET(r, "/public", echoHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	r.Handler().ServeHTTP(w, req)
	require.JSONEq(t, `{"code":100005,"error":"You need to login before"}`, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	r.Handler().ServeHTTP(w, req)
	require.JSONEq(t, `{"code":0,"data":{"q":"","offset":0}}`, w.Body.String())
}
