package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/gobuffalo/pop"
	"github.com/gobuffalo/pop/logging"
	"github.com/sirupsen/logrus"

	"github.com/agenttrust/agenttrust/pkg/config"
	"github.com/agenttrust/agenttrust/pkg/trust_server/api"
	"github.com/agenttrust/agenttrust/pkg/util"
)

type App struct{}

type ServerCmd struct {
	Config string `short:"c" long:"config" type:"existingfile" help:"Path to the configuration file"`
}

type MigrateCmd struct {
	Config     string `short:"c" long:"config" type:"existingfile" help:"Path to the configuration file"`
	Migrations string `short:"p" long:"path" type:"existingdir" help:"Path to the migration files" default:"migrations"`
}

type CertIssueCmd struct {
	Requester string `short:"r" long:"requester" help:"Requester name" required:""`
	Request   []byte `type:"filecontent" help:"Issue request in JSON" required:""`
}

type CertRevokeCmd struct {
	ID      string `required:""`
	Revoker string `long:"revoker" help:"DID requesting the revocation" required:""`
	Reason  string `long:"reason" help:"Revocation reason" required:""`
}

type CertListCmd struct {
	Offset int    `long:"offset" help:"Offset" default:"0"`
	Limit  int    `long:"limit" help:"Limit" default:"50"`
	DID    string `long:"did" help:"Filter by subject DID"`
}

type CertGetCmd struct {
	ID string `required:""`
}

type CertVerifyCmd struct {
	ID string `required:""`
}

type CACertGetCmd struct{}

type RevocationListGetCmd struct{}

type AuditListCmd struct {
	Offset   int    `long:"offset" help:"Offset" default:"0"`
	Limit    int    `long:"limit" help:"Limit" default:"50"`
	Source   string `long:"source" help:"Filter by source"`
	Action   string `long:"action" help:"Filter by action"`
	Actor    string `long:"actor" help:"Filter by actor"`
	Resource string `long:"resource" help:"Filter by resource"`
}

type AuditVerifyCmd struct{}

type ChallengeCmd struct {
	DID string `required:"" help:"DID to be challenged"`
}

type TrustServerCli struct {
	Server  ServerCmd  `cmd:"" help:"Run trust server."`
	Migrate MigrateCmd `cmd:"" help:"Migrate database."`

	Client struct {
		Server string `short:"s" long:"server" help:"Server address" required:""`

		Cert struct {
			Issue  CertIssueCmd  `cmd:""`
			Revoke CertRevokeCmd `cmd:""`
			List   CertListCmd   `cmd:""`
			Get    CertGetCmd    `cmd:""`
			Verify CertVerifyCmd `cmd:""`
		} `cmd:""`

		CACert struct {
			Get CACertGetCmd `cmd:""`
		} `cmd:""`

		RevocationList struct {
			Get RevocationListGetCmd `cmd:""`
		} `cmd:""`

		Audit struct {
			List   AuditListCmd   `cmd:""`
			Verify AuditVerifyCmd `cmd:""`
		} `cmd:""`

		Challenge ChallengeCmd `cmd:"" help:"Request an authentication challenge."`
	} `cmd:""`
}

func (*App) Run() {
	cli := TrustServerCli{}
	ctx := kong.Parse(&cli)
	err := ctx.Run(&cli)
	if err != nil {
		logrus.Errorf("failed to run command: %v", err)
		os.Exit(1)
	}
}

func (cmd *ServerCmd) Run(cli *TrustServerCli) error {
	cfg := api.RestServerConfig{}
	if err := config.FromFile(cli.Server.Config, &cfg); err != nil {
		logrus.Errorf("failed to load config: %v", err)
		os.Exit(1)
	}

	restServer, err := api.NewRestServerWithConfig(context.Background(), cfg)
	if err != nil {
		logrus.Errorf("failed to create rest server: %v", err)
		os.Exit(1)
	}

	logrus.Info("starting trust server.")
	go func() {
		if err := restServer.Run(); err != nil {
			logrus.Errorf("failed to start trust server: %v", err)
			os.Exit(1)
		}
	}()

	cmd.waitForInterrupt()
	restServer.Close(context.Background())
	return nil
}

func (cmd *ServerCmd) waitForInterrupt() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server......")
}

func (cmd *MigrateCmd) Run(cli *TrustServerCli) error {
	popLogger := func(lvl logging.Level, s string, args ...interface{}) {
		switch lvl {
		case logging.Debug:
			logrus.Debugf(s, args...)
		case logging.Info:
			logrus.Infof(s, args...)
		case logging.Warn:
			logrus.Warnf(s, args...)
		case logging.Error:
			logrus.Errorf(s, args...)
		case logging.SQL:
			// Do nothing because we don't want to log SQL queries.
		}
	}

	pop.SetLogger(popLogger)
	cfg := api.RestServerConfig{}
	if err := config.FromFile(cli.Migrate.Config, &cfg); err != nil {
		logrus.Errorf("failed to load config: %v", err)
		os.Exit(1)
	}

	cd := pop.ConnectionDetails{
		Dialect:  "postgres",
		Database: cfg.Database.Database,
		Host:     cfg.Database.Host,
		Port:     fmt.Sprintf("%d", cfg.Database.Port),
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
	}
	conn, err := pop.NewConnection(&cd)
	if err != nil {
		logrus.Errorf("failed to create connection: %v", err)
		os.Exit(1)
	}

	if err := conn.Dialect.CreateDB(); err != nil {
		logrus.Warnf("failed to create database: %v", err)
	}

	migrator, err := pop.NewFileMigrator(cli.Migrate.Migrations, conn)
	if err != nil {
		logrus.Errorf("failed to create migrator: %v", err)
		os.Exit(1)
	}
	// Remove SchemaPath to prevent migrator try to dump schema.
	migrator.SchemaPath = ""

	if err := migrator.Up(); err != nil {
		logrus.Errorf("failed to migrate: %v", err)
		os.Exit(1)
	}

	return nil
}

func (*CertIssueCmd) Run(cli *TrustServerCli) error {
	client := NewRestClient(cli.Client.Server, cli.Client.Cert.Issue.Requester)
	cert, err := client.IssueCert(cli.Client.Cert.Issue.Request)
	if err != nil {
		logrus.Errorf("failed to issue certificate: %v", err)
		os.Exit(1)
	}

	logrus.Infof("Certificate issued with ID: %s", cert.ID)
	return nil
}

func (*CertRevokeCmd) Run(cli *TrustServerCli) error {
	client := NewRestClient(cli.Client.Server, "")
	cmd := cli.Client.Cert.Revoke
	cert, err := client.RevokeCert(cmd.ID, cmd.Revoker, cmd.Reason)
	if err != nil {
		logrus.Errorf("failed to revoke certificate: %v", err)
		os.Exit(1)
	}

	logrus.Infof("Certificate revoked with ID: %s", cert.ID)
	return nil
}

func (*CertListCmd) Run(cli *TrustServerCli) error {
	client := NewRestClient(cli.Client.Server, "")
	cmd := cli.Client.Cert.List
	certs, err := client.ListCert(cmd.Offset, cmd.Limit, cmd.DID)
	if err != nil {
		logrus.Errorf("failed to list certificates: %v", err)
		os.Exit(1)
	}

	printJSON(certs)
	return nil
}

func (*CertGetCmd) Run(cli *TrustServerCli) error {
	client := NewRestClient(cli.Client.Server, "")
	cert, err := client.GetCert(cli.Client.Cert.Get.ID)
	if err != nil {
		logrus.Errorf("failed to get certificate: %v", err)
		os.Exit(1)
	}

	printJSON(cert)
	return nil
}

func (*CertVerifyCmd) Run(cli *TrustServerCli) error {
	client := NewRestClient(cli.Client.Server, "")
	result, err := client.VerifyCert(cli.Client.Cert.Verify.ID)
	if err != nil {
		logrus.Errorf("failed to verify certificate: %v", err)
		os.Exit(1)
	}

	printJSON(result)
	return nil
}

func (*CACertGetCmd) Run(cli *TrustServerCli) error {
	client := NewRestClient(cli.Client.Server, "")
	cert, err := client.GetCACert()
	if err != nil {
		logrus.Errorf("failed to get CA certificate: %v", err)
		os.Exit(1)
	}

	printJSON(cert)
	return nil
}

func (*RevocationListGetCmd) Run(cli *TrustServerCli) error {
	client := NewRestClient(cli.Client.Server, "")
	list, err := client.GetRevocationList()
	if err != nil {
		logrus.Errorf("failed to get revocation list: %v", err)
		os.Exit(1)
	}

	printJSON(list)
	return nil
}

func (*AuditListCmd) Run(cli *TrustServerCli) error {
	client := NewRestClient(cli.Client.Server, "")
	events, err := client.ListAuditEvents(cli.Client.Audit.List)
	if err != nil {
		logrus.Errorf("failed to list audit events: %v", err)
		os.Exit(1)
	}

	printJSON(events)
	return nil
}

func (*AuditVerifyCmd) Run(cli *TrustServerCli) error {
	client := NewRestClient(cli.Client.Server, "")
	result, err := client.VerifyAuditChain()
	if err != nil {
		logrus.Errorf("failed to verify audit chain: %v", err)
		os.Exit(1)
	}

	printJSON(result)
	return nil
}

func (*ChallengeCmd) Run(cli *TrustServerCli) error {
	client := NewRestClient(cli.Client.Server, "")
	challenge, err := client.CreateChallenge(cli.Client.Challenge.DID)
	if err != nil {
		logrus.Errorf("failed to create challenge: %v", err)
		os.Exit(1)
	}

	printJSON(challenge)
	return nil
}

func printJSON(data any) {
	pretty := bytes.Buffer{}
	json.Indent(&pretty, []byte(util.StructToJSON(data)), "", "  ")
	fmt.Println(pretty.String())
}
