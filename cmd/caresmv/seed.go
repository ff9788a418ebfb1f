package main

import (
	"context"
	"fmt"

	"caresmv/internal/db"
	"caresmv/internal/seed"
	"caresmv/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with admin users and sample data",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Pretty-print seeded records",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		seeder := seed.New(
			store.NewUserRepository(pool),
			store.NewEventRepository(pool),
			store.NewVolunteerRepository(pool),
			store.NewContactRepository(pool),
			store.NewDonationRepository(pool),
			c.Bool("verbose"),
		)

		logrus.Info("Seeding admin users...")
		if err := seeder.SeedAdminUsers(ctx); err != nil {
			return fmt.Errorf("failed to seed admin users: %w", err)
		}

		logrus.Info("Seeding sample events...")
		if err := seeder.SeedEvents(ctx); err != nil {
			return fmt.Errorf("failed to seed events: %w", err)
		}

		logrus.Info("Seeding sample volunteers...")
		if err := seeder.SeedVolunteers(ctx); err != nil {
			return fmt.Errorf("failed to seed volunteers: %w", err)
		}

		logrus.Info("Seeding sample contact submissions...")
		if err := seeder.SeedContacts(ctx); err != nil {
			return fmt.Errorf("failed to seed contact submissions: %w", err)
		}

		logrus.Info("Seeding sample donations...")
		if err := seeder.SeedDonations(ctx); err != nil {
			return fmt.Errorf("failed to seed donations: %w", err)
		}

		logrus.Info("Seed completed")

		return nil
	},
}
