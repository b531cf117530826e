package cli

import (
	"context"
	"time"

	"github.com/getfolio/folio/pkg/client"
	"github.com/getfolio/folio/pkg/cliconfig"
	"github.com/getfolio/folio/pkg/credential"
	"github.com/getfolio/folio/pkg/logging"
	"github.com/getfolio/folio/pkg/state"
)

// app bundles everything a command needs: resolved config, the credential
// store, the HTTP client, and the synced resource set.
type app struct {
	cfg   *cliconfig.Config
	creds *credential.Store
	api   *client.Client
	set   *state.Set
}

// newApp resolves configuration, opens the credential store, and wires the
// client and resource set. Flag values override config and env.
func newApp() (*app, error) {
	cfg, err := cliconfig.Load()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
		cfg.Sources["apiUrl"] = cliconfig.SourceFlag
	}
	if jsonOutput {
		cfg.JSON = true
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	creds, err := credential.OpenDefault()
	if err != nil {
		return nil, err
	}

	logger := logging.Nop()
	if verbose {
		logger = logging.New(logging.Config{Level: logging.ParseLevel(cfg.LogLevel)})
	}

	api := client.New(cfg.APIURL,
		client.WithCredentials(creds),
		client.WithTimeout(time.Duration(cfg.Timeout)*time.Second),
		client.WithLogger(logger),
	)

	return &app{
		cfg:   cfg,
		creds: creds,
		api:   api,
		set:   state.New(api, creds),
	}, nil
}

func (a *app) context() context.Context {
	return context.Background()
}
