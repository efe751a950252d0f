package main

import (
	"fmt"
	"net/http"

	"github.com/peerquest/backend/internal/middleware"
	"github.com/peerquest/backend/pkg/router"
	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(ct *cli.Context) error {
	s.loadConfig(ct)
	s.loadLogger()
	s.loadDatabase()
	s.loadRedis()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	s.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", s.configs.ApiServer.Host, s.configs.ApiServer.Port),
		Handler: c.Handler(s.router.Handler()),
	}

	s.logger.Infof("Starting server on port: %s", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())

	// Auth API
	authRouter := s.router.Branch()
	authRouter.After(middleware.HandleSaveSession())
	{
		router.POST(authRouter, "/register", s.authDomain.Register)
		router.POST(authRouter, "/login", s.authDomain.Login)
	}

	// These following APIs need authentication with the access token.
	authVerifier := middleware.NewAuthVerifier().WithAccessToken().WithBannedCheck(s.userRepo)
	authRouter = s.router.Branch()
	authRouter.Before(authVerifier.Middleware())
	{
		// User API
		router.GET(authRouter, "/getMe", s.userDomain.GetMe)
		router.POST(authRouter, "/updateUser", s.userDomain.Update)
		router.POST(authRouter, "/banUser", s.userDomain.Ban)

		// Quest API
		router.POST(authRouter, "/createQuest", s.questDomain.Create)
		router.POST(authRouter, "/updateQuest", s.questDomain.Update)
		router.POST(authRouter, "/deleteQuest", s.questDomain.Delete)
		router.POST(authRouter, "/applyQuest", s.questDomain.Apply)
		router.GET(authRouter, "/getQuestApplications", s.questDomain.GetApplications)
		router.POST(authRouter, "/approveQuestApplication", s.questDomain.Approve)
		router.POST(authRouter, "/rejectQuestApplication", s.questDomain.Reject)
		router.POST(authRouter, "/completeQuest", s.questDomain.Complete)
		router.POST(authRouter, "/cancelQuest", s.questDomain.Cancel)

		// Guild API
		router.POST(authRouter, "/createGuild", s.guildDomain.Create)
		router.POST(authRouter, "/updateGuild", s.guildDomain.Update)
		router.POST(authRouter, "/deleteGuild", s.guildDomain.Delete)
		router.POST(authRouter, "/applyGuild", s.guildDomain.Apply)
		router.GET(authRouter, "/getGuildApplications", s.guildDomain.GetApplications)
		router.POST(authRouter, "/approveGuildApplication", s.guildDomain.ApproveApplication)
		router.POST(authRouter, "/rejectGuildApplication", s.guildDomain.RejectApplication)

		// Wallet API
		router.POST(authRouter, "/purchaseGold", s.walletDomain.Purchase)
		router.POST(authRouter, "/cashOutGold", s.walletDomain.CashOut)
		router.GET(authRouter, "/getTransactions", s.walletDomain.GetTransactions)

		// Message API
		router.POST(authRouter, "/sendMessage", s.messageDomain.Send)
		router.GET(authRouter, "/getConversation", s.messageDomain.GetConversation)
		router.POST(authRouter, "/markMessagesRead", s.messageDomain.MarkRead)

		// Statistic API
		router.GET(authRouter, "/getMyRank", s.statisticDomain.GetMyRank)

		// Report API
		router.POST(authRouter, "/createReport", s.reportDomain.Create)
		router.GET(authRouter, "/getReports", s.reportDomain.GetList)
		router.POST(authRouter, "/reviewReport", s.reportDomain.Review)
	}

	// Public API.
	router.GET(s.router, "/getUser", s.userDomain.GetUser)
	router.GET(s.router, "/getListUser", s.userDomain.GetUsers)
	router.GET(s.router, "/getQuest", s.questDomain.Get)
	router.GET(s.router, "/getListQuest", s.questDomain.GetList)
	router.GET(s.router, "/getGuild", s.guildDomain.Get)
	router.GET(s.router, "/getListGuild", s.guildDomain.GetList)
	router.GET(s.router, "/getGuildMembers", s.guildDomain.GetMembers)
	router.GET(s.router, "/getLeaderBoard", s.statisticDomain.GetLeaderboard)
}
