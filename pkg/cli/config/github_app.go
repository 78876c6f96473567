package config

import (
	"log/slog"
	"os"

	"github.com/aavshr/fixcache/pkg/domain/types"
	"github.com/aavshr/fixcache/pkg/infra/ghapp"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type GitHubApp struct {
	id             types.GitHubAppID
	secret         types.GitHubAppSecret     `masq:"secret"`
	privateKey     types.GitHubAppPrivateKey `masq:"secret"`
	privateKeyFile string
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("FIXCACHE_GITHUB_APP_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("FIXCACHE_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key-file",
			Usage:       "Path to GitHub App private key (PEM). Used when --github-app-private-key is not set",
			Category:    "GitHub App",
			Destination: &x.privateKeyFile,
			Sources:     cli.EnvVars("FIXCACHE_GITHUB_APP_PRIVATE_KEY_FILE"),
		},
		&cli.StringFlag{
			Name:        "github-app-secret",
			Usage:       "GitHub App webhook secret. Signatures are not verified when empty",
			Category:    "GitHub App",
			Destination: (*string)(&x.secret),
			Sources:     cli.EnvVars("FIXCACHE_GITHUB_APP_SECRET"),
		},
	}
}

func (x GitHubApp) New() (*ghapp.App, error) {
	pem, err := x.loadPrivateKey()
	if err != nil {
		return nil, err
	}
	return ghapp.New(x.id, pem)
}

func (x GitHubApp) loadPrivateKey() (types.GitHubAppPrivateKey, error) {
	if x.privateKey != "" {
		return x.privateKey, nil
	}
	if x.privateKeyFile == "" {
		return "", goerr.Wrap(types.ErrInvalidConfig, "GitHub App private key is required")
	}

	raw, err := os.ReadFile(x.privateKeyFile)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read GitHub App private key", goerr.V("path", x.privateKeyFile))
	}
	return types.GitHubAppPrivateKey(raw), nil
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int("Secret.len", len(x.secret)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("privateKeyFile", x.privateKeyFile),
	)
}

func (x GitHubApp) Secret() types.GitHubAppSecret {
	return x.secret
}
