package config

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/datedmemo/pkg/repository/mongo"
	"github.com/urfave/cli/v3"
)

const (
	defaultMongoHost = "localhost"
	defaultMongoPort = 27017
)

// MongoSecrets is the layout of the optional TOML secrets file. Values set by flags
// take precedence over the file.
type MongoSecrets struct {
	User     string `toml:"db_user"`
	Password string `toml:"db_user_pw" masq:"secret"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Database string `toml:"db"`
}

// LoadMongoSecrets reads a TOML secrets file
func LoadMongoSecrets(path string) (*MongoSecrets, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrSecretsNotFound, "failed to read mongo secrets", goerr.V(SecretsPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read mongo secrets", goerr.V(SecretsPathKey, path))
	}

	var secrets MongoSecrets
	if err := toml.Unmarshal(data, &secrets); err != nil {
		return nil, goerr.Wrap(ErrInvalidSecrets, err.Error(), goerr.V(SecretsPathKey, path))
	}
	if secrets.Port < 0 || secrets.Port > 65535 {
		return nil, goerr.Wrap(ErrInvalidSecrets, "port out of range", goerr.V(SecretsPathKey, path), goerr.V("port", secrets.Port))
	}

	return &secrets, nil
}

// Mongo holds CLI flags for the MongoDB backend
type Mongo struct {
	secretsPath string
	user        string
	password    string
	host        string
	port        int
	database    string
}

// Flags returns CLI flags for MongoDB configuration
func (x *Mongo) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "mongo-secrets",
			Usage:       "Path to a TOML file holding db_user, db_user_pw, host, port and db",
			Category:    "MongoDB",
			Sources:     cli.EnvVars("DATEDMEMO_MONGO_SECRETS"),
			Destination: &x.secretsPath,
		},
		&cli.StringFlag{
			Name:        "mongo-user",
			Usage:       "MongoDB user",
			Category:    "MongoDB",
			Sources:     cli.EnvVars("DATEDMEMO_MONGO_USER"),
			Destination: &x.user,
		},
		&cli.StringFlag{
			Name:        "mongo-password",
			Usage:       "MongoDB password",
			Category:    "MongoDB",
			Sources:     cli.EnvVars("DATEDMEMO_MONGO_PASSWORD"),
			Destination: &x.password,
		},
		&cli.StringFlag{
			Name:        "mongo-host",
			Usage:       "MongoDB host (default: localhost)",
			Category:    "MongoDB",
			Sources:     cli.EnvVars("DATEDMEMO_MONGO_HOST"),
			Destination: &x.host,
		},
		&cli.IntFlag{
			Name:        "mongo-port",
			Usage:       "MongoDB port (default: 27017)",
			Category:    "MongoDB",
			Sources:     cli.EnvVars("DATEDMEMO_MONGO_PORT"),
			Destination: &x.port,
		},
		&cli.StringFlag{
			Name:        "mongo-database",
			Usage:       "MongoDB database name",
			Category:    "MongoDB",
			Sources:     cli.EnvVars("DATEDMEMO_MONGO_DATABASE"),
			Destination: &x.database,
		},
	}
}

// LogAttrs returns log attributes for the MongoDB configuration. The password is never
// included.
func (x *Mongo) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("host", x.host),
		slog.Int("port", x.port),
		slog.String("database", x.database),
		slog.String("user", x.user),
	}
}

// resolve merges the secrets file into unset flag values and applies defaults
func (x *Mongo) resolve() error {
	if x.secretsPath != "" {
		secrets, err := LoadMongoSecrets(x.secretsPath)
		if err != nil {
			return err
		}
		if x.user == "" {
			x.user = secrets.User
		}
		if x.password == "" {
			x.password = secrets.Password
		}
		if x.host == "" {
			x.host = secrets.Host
		}
		if x.port == 0 {
			x.port = secrets.Port
		}
		if x.database == "" {
			x.database = secrets.Database
		}
	}

	if x.host == "" {
		x.host = defaultMongoHost
	}
	if x.port == 0 {
		x.port = defaultMongoPort
	}
	if x.database == "" {
		return goerr.Wrap(ErrMissingDatabase, "set --mongo-database or db in the secrets file")
	}
	return nil
}

// URL composes the connection URL from user, password, host, port and database
func (x *Mongo) URL() (string, error) {
	if err := x.resolve(); err != nil {
		return "", err
	}

	u := url.URL{
		Scheme: "mongodb",
		Host:   net.JoinHostPort(x.host, strconv.Itoa(x.port)),
		Path:   "/" + x.database,
	}
	if x.user != "" {
		u.User = url.UserPassword(x.user, x.password)
	}
	return u.String(), nil
}

// Configure connects to MongoDB. It fails when the server is unreachable or rejects
// the credentials.
func (x *Mongo) Configure(ctx context.Context) (*mongo.Mongo, error) {
	uri, err := x.URL()
	if err != nil {
		return nil, err
	}

	repo, err := mongo.New(ctx, uri, x.database)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize mongo repository",
			goerr.V("host", x.host),
			goerr.V("port", x.port),
			goerr.V("database", x.database))
	}
	return repo, nil
}
