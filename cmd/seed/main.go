package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kampusadmin/dashboard-api/internal/config"
	dbpkg "github.com/kampusadmin/dashboard-api/internal/db"
	"github.com/kampusadmin/dashboard-api/internal/models"
)

// Idempotent user provisioning. Reads a JSON list of users and creates the
// ones whose email is not present yet; existing users are left untouched, so
// the seed can run on every deploy.

type seedUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	CanManageCustomers        bool `json:"can_manage_customers"`
	CanViewFinancials         bool `json:"can_view_financials"`
	CanManagePartnershipCodes bool `json:"can_manage_partnership_codes"`
	CanViewPartnershipStats   bool `json:"can_view_partnership_stats"`
	CanManageAccess           bool `json:"can_manage_access"`
}

func main() {
	file := flag.String("file", "seed_users.json", "path to the seed user list")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("failed to read seed file: %v", err)
	}

	var users []seedUser
	if err := json.Unmarshal(data, &users); err != nil {
		log.Fatalf("failed to parse seed file: %v", err)
	}

	created := 0
	for _, su := range users {
		email := strings.ToLower(strings.TrimSpace(su.Email))
		if email == "" || su.Password == "" {
			log.Printf("skipping seed entry with empty email or password")
			continue
		}

		var count int64
		if err := db.Model(&models.User{}).
			Where("email = ?", email).
			Count(&count).Error; err != nil {
			log.Fatalf("failed to check user %s: %v", email, err)
		}

		// Already provisioned: a normal branch, not an error.
		if count > 0 {
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash password for %s: %v", email, err)
		}

		user := models.User{
			Email:                     email,
			PasswordHash:              string(hashed),
			CanManageCustomers:        su.CanManageCustomers,
			CanViewFinancials:         su.CanViewFinancials,
			CanManagePartnershipCodes: su.CanManagePartnershipCodes,
			CanViewPartnershipStats:   su.CanViewPartnershipStats,
			CanManageAccess:           su.CanManageAccess,
			IsActive:                  true,
		}

		if err := createUser(db, &user); err != nil {
			log.Fatalf("failed to create user %s: %v", email, err)
		}

		created++
		log.Printf("created user %s", email)
	}

	log.Printf("seed finished: %d user(s) created, %d already present", created, len(users)-created)
}

func createUser(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}
