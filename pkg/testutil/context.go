package testutil

import (
	"context"
	"net/http"
	"time"

	"github.com/peerquest/backend/config"
	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/pkg/logger"
	"github.com/peerquest/backend/pkg/xcontext"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockConfigs() config.Configs {
	return config.Configs{
		Env: "testing",
		ApiServer: config.ServerConfigs{
			MaxLimit:     50,
			DefaultLimit: 10,
		},
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
		},
		Session: config.SessionConfigs{
			Secret: "session-secret",
			Name:   "session",
		},
		Gold: config.GoldConfigs{
			MinCashOut:    500,
			CashOutUnit:   100,
			PayoutPerUnit: 10,
		},
	}
}

// NewMockContext returns a context backed by an in-memory database with all
// tables migrated. Every call creates an independent database.
func NewMockContext() xcontext.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	if err := entity.MigrateTable(db); err != nil {
		panic(err)
	}

	req := &http.Request{Header: http.Header{}}
	return xcontext.NewContext(context.Background(), req, nil, MockConfigs(), logger.NewLogger(logger.SILENCE), db)
}

// NewMockContextWithUserID is the same as NewMockContext but the requester
// is already authenticated as the given user.
func NewMockContextWithUserID(ctx xcontext.Context, userID string) xcontext.Context {
	if ctx == nil {
		ctx = NewMockContext()
	}

	xcontext.SetRequestUserID(ctx, userID)
	return ctx
}
