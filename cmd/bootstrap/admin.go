package bootstrap

import (
	"context"
	"log/slog"

	"studio-booking/internal/domain/user"
	"studio-booking/internal/infra/db"
	"studio-booking/internal/infra/repository"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/password"

	"go.uber.org/fx"
)

var AdminModule = fx.Module("admin",
	fx.Invoke(seedAdmin),
)

// seedAdmin provisions the initial admin account from configuration.
// Registration only ever creates clients, so without this hook a fresh
// deployment would have no way to manage slots or the catalog.
func seedAdmin(lc fx.Lifecycle, cfg config.Config, dbtx db.DBTX) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
				slog.Info("admin seed skipped: no credentials configured")
				return nil
			}

			repo := repository.NewUserRepository(dbtx)

			exists, err := repo.ExistsAdmin(ctx)
			if err != nil {
				return err
			}
			if exists {
				return nil
			}

			email, err := user.NewEmail(cfg.Admin.Email)
			if err != nil {
				return err
			}

			hash, err := password.HashPassword(cfg.Admin.Password)
			if err != nil {
				return err
			}

			admin := user.NewUser(email, hash, user.RoleAdmin)
			if err := repo.Create(ctx, admin); err != nil {
				return err
			}

			slog.Info("admin account seeded", "email", email.Value())
			return nil
		},
	})
}
