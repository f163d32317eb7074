// Command seed populates an empty database with a few communities and demo
// accounts, enough to exercise the API by hand.
package main

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	communitydomain "green-wheels/internal/community/domain"
	profiledomain "green-wheels/internal/profile/domain"
	"green-wheels/internal/shared/config"
	"green-wheels/internal/shared/util"
	"green-wheels/internal/storage"
	userdomain "green-wheels/internal/user/domain"
)

func main() {
	log := util.New()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatal("Seed", fmt.Errorf("failed to load configuration: %w", err))
	}

	db, err := storage.NewDatabase(storage.NewFilePersistence(cfg.Storage.Path))
	if err != nil {
		log.Fatal("Seed", err)
	}

	communities, err := storage.NewTable[communitydomain.Community](db, storage.CommunitiesTable)
	if err != nil {
		log.Fatal("Seed", err)
	}
	users, err := storage.NewTable[userdomain.User](db, storage.UsersTable)
	if err != nil {
		log.Fatal("Seed", err)
	}
	profiles, err := storage.NewTable[profiledomain.Profile](db, storage.ProfilesTable)
	if err != nil {
		log.Fatal("Seed", err)
	}

	if len(users.FindAll()) > 0 {
		log.Warn("Seed", "database is not empty, refusing to seed")
		return
	}

	var officeID int
	for _, c := range []communitydomain.Community{
		{Name: "Downtown Office", Description: "Commuters of the downtown campus"},
		{Name: "University", Description: "Students and staff car pooling"},
	} {
		id, err := communities.Insert(c)
		if err != nil {
			log.Fatal("Seed", err)
		}
		if c.Name == "Downtown Office" {
			officeID = id
		}
		log.OK("Seed", fmt.Sprintf("community %d: %s", id, c.Name))
	}

	demo := []struct {
		username, email, password string
		community                 *int
		name, surname, bio        string
	}{
		{"alice", "alice@example.com", "alice123", &officeID, "Alice", "Rossi", "Drives to the office most mornings"},
		{"bob", "bob@example.com", "bob123", &officeID, "Bob", "Bianchi", "Happy to share fuel costs"},
		{"carol", "carol@example.com", "carol123", nil, "", "", ""},
	}

	for _, d := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Seed", err)
		}

		userID, err := users.Insert(userdomain.User{
			Username:  d.username,
			Email:     d.email,
			Password:  string(hash),
			Community: d.community,
		})
		if err != nil {
			log.Fatal("Seed", err)
		}

		if d.name != "" {
			if _, err := profiles.Insert(profiledomain.Profile{
				UserID:  userID,
				Name:    d.name,
				Surname: d.surname,
				Bio:     d.bio,
			}); err != nil {
				log.Fatal("Seed", err)
			}
		}

		log.OK("Seed", fmt.Sprintf("user %d: %s / %s", userID, d.username, d.password))
	}

	log.Info("Seed", "done")
}
