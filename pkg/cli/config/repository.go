package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/datedmemo/pkg/domain/interfaces"
	"github.com/secmon-lab/datedmemo/pkg/repository/firestore"
	"github.com/secmon-lab/datedmemo/pkg/repository/memory"
	"github.com/secmon-lab/datedmemo/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const (
	BackendFirestore = "firestore"
	BackendMongo     = "mongo"
	BackendMemory    = "memory"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend          string
	projectID        string
	databaseID       string
	collectionPrefix string
	mongo            Mongo
}

// Flags returns CLI flags for repository configuration, including MongoDB flags
func (r *Repository) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (firestore, mongo or memory)",
			Value:       BackendFirestore,
			Sources:     cli.EnvVars("DATEDMEMO_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore Project ID (required when using firestore backend)",
			Category:    "Firestore",
			Sources:     cli.EnvVars("DATEDMEMO_FIRESTORE_PROJECT_ID"),
			Destination: &r.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore Database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("DATEDMEMO_FIRESTORE_DATABASE_ID"),
			Destination: &r.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection-prefix",
			Usage:       "Prefix prepended to the Firestore collection name",
			Category:    "Firestore",
			Sources:     cli.EnvVars("DATEDMEMO_FIRESTORE_COLLECTION_PREFIX"),
			Destination: &r.collectionPrefix,
		},
	}
	return append(flags, r.mongo.Flags()...)
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

// Configure initializes and returns a repository based on the configured backend.
// Every backend checks connectivity here, so an error means the store cannot serve.
// The caller is responsible for calling Close() on the returned repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch r.backend {
	case BackendFirestore:
		if r.projectID == "" {
			return nil, goerr.Wrap(ErrMissingProjectID, "firestore-project-id is required when using firestore backend")
		}
		var opts []firestore.Option
		if r.collectionPrefix != "" {
			opts = append(opts, firestore.WithCollectionPrefix(r.collectionPrefix))
		}
		repo, err := firestore.New(ctx, r.projectID, r.databaseID, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize firestore repository")
		}
		logging.Default().Info("Using Firestore repository",
			"project_id", r.projectID,
			"database_id", r.databaseID,
		)
		return repo, nil

	case BackendMongo:
		repo, err := r.mongo.Configure(ctx)
		if err != nil {
			return nil, err
		}
		logging.Default().LogAttrs(ctx, slog.LevelInfo, "Using MongoDB repository", r.mongo.LogAttrs()...)
		return repo, nil

	case BackendMemory:
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.Wrap(ErrInvalidBackend, "invalid repository backend", goerr.V(BackendKey, r.backend))
	}
}
