package main

import (
	"context"
	"net/http"
	"os"

	"github.com/peerquest/backend/config"
	"github.com/peerquest/backend/internal/domain"
	"github.com/peerquest/backend/internal/entity"
	"github.com/peerquest/backend/internal/repository"
	"github.com/peerquest/backend/pkg/logger"
	"github.com/peerquest/backend/pkg/router"
	"github.com/peerquest/backend/pkg/xredis"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	configs config.Configs
	logger  logger.Logger
	db      *gorm.DB

	redisClient xredis.Client

	userRepo             repository.UserRepository
	questRepo            repository.QuestRepository
	questApplicationRepo repository.QuestApplicationRepository
	guildRepo            repository.GuildRepository
	guildMemberRepo      repository.GuildMemberRepository
	guildApplicationRepo repository.GuildApplicationRepository
	transactionRepo      repository.TransactionRepository
	messageRepo          repository.MessageRepository
	reportRepo           repository.ReportRepository

	authDomain      domain.AuthDomain
	userDomain      domain.UserDomain
	questDomain     domain.QuestDomain
	guildDomain     domain.GuildDomain
	walletDomain    domain.WalletDomain
	statisticDomain domain.StatisticDomain
	messageDomain   domain.MessageDomain
	reportDomain    domain.ReportDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(ct *cli.Context) {
	var err error
	s.configs, err = config.Load(ct.String("config"))
	if err != nil {
		panic(err)
	}

	if s.configs.ApiServer.Port == "" {
		s.configs.ApiServer.Port = os.Getenv("PORT")
	}

	if s.configs.Auth.TokenSecret == "" {
		s.configs.Auth.TokenSecret = os.Getenv("TOKEN_SECRET")
	}

	if s.configs.ApiServer.DefaultLimit == 0 {
		s.configs.ApiServer.DefaultLimit = 10
	}

	if s.configs.ApiServer.MaxLimit == 0 {
		s.configs.ApiServer.MaxLimit = 50
	}

	if s.configs.Gold.MinCashOut == 0 {
		s.configs.Gold.MinCashOut = 500
	}

	if s.configs.Gold.CashOutUnit == 0 {
		s.configs.Gold.CashOutUnit = 100
	}

	if s.configs.Gold.PayoutPerUnit == 0 {
		s.configs.Gold.PayoutPerUnit = 10
	}
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" || s.configs.Env == "testing" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRedis() {
	var err error
	s.redisClient, err = xredis.NewClient(context.Background(), s.configs.Redis)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.questRepo = repository.NewQuestRepository()
	s.questApplicationRepo = repository.NewQuestApplicationRepository()
	s.guildRepo = repository.NewGuildRepository()
	s.guildMemberRepo = repository.NewGuildMemberRepository()
	s.guildApplicationRepo = repository.NewGuildApplicationRepository()
	s.transactionRepo = repository.NewTransactionRepository()
	s.messageRepo = repository.NewMessageRepository()
	s.reportRepo = repository.NewReportRepository()
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo)
	s.questDomain = domain.NewQuestDomain(
		s.questRepo, s.questApplicationRepo, s.userRepo, s.transactionRepo, s.redisClient)
	s.guildDomain = domain.NewGuildDomain(
		s.guildRepo, s.guildMemberRepo, s.guildApplicationRepo, s.userRepo)
	s.walletDomain = domain.NewWalletDomain(s.userRepo, s.transactionRepo)
	s.statisticDomain = domain.NewStatisticDomain(s.userRepo, s.redisClient)
	s.messageDomain = domain.NewMessageDomain(s.messageRepo, s.userRepo)
	s.reportDomain = domain.NewReportDomain(s.reportRepo, s.userRepo, s.questRepo, s.guildRepo)
}

func (s *srv) migrate(ct *cli.Context) error {
	s.loadConfig(ct)
	s.loadLogger()
	s.loadDatabase()

	return entity.MigrateTable(s.db)
}
