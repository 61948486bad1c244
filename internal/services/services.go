package services

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/streetleague/skillbuilder/internal/config"
	"github.com/streetleague/skillbuilder/internal/services/analytics"
	"github.com/streetleague/skillbuilder/internal/services/auth"
	"github.com/streetleague/skillbuilder/internal/services/catalog"
	"github.com/streetleague/skillbuilder/internal/services/participant"
	"github.com/streetleague/skillbuilder/internal/services/programme"
	"github.com/streetleague/skillbuilder/internal/services/settings"
	"github.com/streetleague/skillbuilder/internal/services/training"
	"github.com/streetleague/skillbuilder/internal/services/user"
	"github.com/streetleague/skillbuilder/internal/sessionstore"
	"github.com/streetleague/skillbuilder/internal/upstream"
)

type Services struct {
	Auth        *auth.AuthService
	Catalog     *catalog.CatalogService
	Participant *participant.ParticipantService
	Programme   *programme.ProgrammeService
	User        *user.UserService
	Analytics   *analytics.AnalyticsService
	Settings    *settings.SettingsService
	Training    *training.TrainingService
	Upstream    *upstream.Client
}

func NewServices(conf *config.Config) *Services {
	sessions := newSessionStore(conf)
	client := upstream.NewClient(conf.UPSTREAM_TIMEOUT)

	return &Services{
		Auth:        auth.NewAuthService(auth.NewMemoryCredentialStore(auth.SeedCredentials()), sessions, conf.AUTH_DELAY),
		Catalog:     catalog.NewCatalogService(),
		Participant: participant.NewParticipantService(participant.NewParticipantRepo()),
		Programme:   programme.NewProgrammeService(programme.NewProgrammeRepo()),
		User:        user.NewUserService(user.NewUserRepo()),
		Analytics:   analytics.NewAnalyticsService(),
		Settings:    settings.NewSettingsService(),
		Training:    training.NewTrainingService(client, conf.SESSIONS_URL, conf.ATTENDANCE_URL),
		Upstream:    client,
	}
}

// newSessionStore picks the session persistence backend: Redis when an
// address is configured and reachable, in-process memory otherwise.
func newSessionStore(conf *config.Config) sessionstore.Store {
	if conf.REDIS_ADDR == "" {
		return sessionstore.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.REDIS_ADDR,
		Password: conf.REDIS_PASSWORD,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		slog.Warn("Failed to connect to Redis, falling back to in-memory sessions", slog.Any("error", err))
		return sessionstore.NewMemoryStore()
	}

	slog.Info("Connected to Redis for session persistence")
	return sessionstore.NewRedisStore(client, "")
}
