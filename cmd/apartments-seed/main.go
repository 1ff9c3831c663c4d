// Command apartments-seed loads the demo data set: six accounts and three
// listings. Safe to re-run — accounts that already exist are reused.
package main

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/estately/apartments-api/internal/core/domain"
	"github.com/estately/apartments-api/internal/infrastructure/config"
	mongodb "github.com/estately/apartments-api/internal/infrastructure/db/mongo"
	"github.com/estately/apartments-api/pkg/logger"
)

type seedUser struct {
	name     string
	email    string
	password string
}

type seedApartment struct {
	street       string
	city         string
	state        string
	listingPrice string
	ownerIndex   int
}

var seedUsers = []seedUser{
	{"Chandler Bing", "chandler@friends.com", "funnyguy"},
	{"Ross Gellar", "ross@friends.com", "doctorguy"},
	{"Joey Tribiani", "joey@friends.com", "suaveguy"},
	{"Rachel Green", "rachel@friends.com", "valleygirl"},
	{"Monica Gellar", "monica@friends.com", "cleangirl"},
	{"Phoebe Buffet", "phoebe@friends.com", "weirdgirl"},
}

var seedApartments = []seedApartment{
	{"123 Main St.", "New York", "NY", "$600K", 0},
	{"456 Main St.", "New York", "NY", "$1 million", 1},
	{"789 Main St.", "New York", "NY", "$850K", 4},
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer client.Disconnect(ctx)

	users := mongodb.NewUserRepository(db)
	apartments := mongodb.NewApartmentRepository(db)

	userIDs := make([]string, len(seedUsers))
	for i, su := range seedUsers {
		existing, err := users.FindByEmail(ctx, su.email)
		if err == nil {
			userIDs[i] = existing.ID
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			log.Fatal().Err(err).Str("email", su.email).Msg("user lookup failed")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("password hash failed")
		}

		now := time.Now().UTC()
		created, err := users.Create(ctx, &domain.User{
			Name:         su.name,
			Email:        su.email,
			PasswordHash: string(hash),
			Roles:        []string{domain.RoleClient},
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			log.Fatal().Err(err).Str("email", su.email).Msg("user create failed")
		}
		userIDs[i] = created.ID
		log.Info().Str("email", created.Email).Msg("seeded user")
	}

	for _, sa := range seedApartments {
		now := time.Now().UTC()
		created, err := apartments.Create(ctx, &domain.Apartment{
			Street:       sa.street,
			City:         sa.city,
			State:        sa.state,
			ListingPrice: sa.listingPrice,
			UserID:       userIDs[sa.ownerIndex],
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			log.Fatal().Err(err).Str("street", sa.street).Msg("apartment create failed")
		}
		log.Info().Str("street", created.Street).Str("user_id", created.UserID).Msg("seeded apartment")
	}
}
