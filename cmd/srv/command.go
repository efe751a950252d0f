package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "PeerQuest"
	app.Usage = ""
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path of the toml configuration file",
			EnvVars: []string{"CONFIG_PATH"},
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start the api service",
			Flags:       app.Flags,
			Category:    "Api",
			Description: `Starts the main service included all apis.`,
		},
		{
			Action:      server.migrate,
			Name:        "migrate",
			Usage:       "Migrate all database tables",
			Flags:       app.Flags,
			Category:    "Database",
			Description: `Creates or alters the database tables to match the current entities.`,
		},
	}

	s.app = app
}
