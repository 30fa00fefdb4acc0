package main

import (
	"fmt"
	"log"

	"github.com/solvti/ougrt/internal/config"
	"github.com/solvti/ougrt/internal/database"
	"github.com/solvti/ougrt/internal/models"
	"github.com/solvti/ougrt/internal/utils"
)

func main() {
	fmt.Println("🌱 OU GRT Sync Demo Data Seeder")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	fmt.Println("✅ Connected to database")

	fmt.Println("🔨 Running database migrations...")
	err = db.AutoMigrate(
		&models.ResCountry{},
		&models.ResCompany{},
		&models.ResPartner{},
		&models.OperatingUnit{},
		&models.UserAuth{},
		&models.AccountJournal{},
		&models.CrmTeam{},
		&models.AnalyticAccount{},
		&models.ConfigParameter{},
		&models.SyncLog{},
		&models.SyncHistory{},
	)
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	fmt.Println("✅ Migrations complete")

	var companyCount int64
	db.Model(&models.ResCompany{}).Count(&companyCount)
	if companyCount > 0 {
		fmt.Printf("⚠️  Database already has %d companies. Aborting, nothing seeded.\n", companyCount)
		return
	}

	fmt.Println("🌍 Creating countries...")
	countries := []models.ResCountry{
		{Name: "Canada", Code: "CA"},
		{Name: "Germany", Code: "DE"},
		{Name: "Poland", Code: "PL"},
		{Name: "United States", Code: "US"},
	}
	if err := db.Create(&countries).Error; err != nil {
		log.Fatalf("❌ Failed to create countries: %v", err)
	}

	fmt.Println("🏢 Creating companies...")
	companies := []models.ResCompany{
		{Name: "Demo Holding NA", GRTCodePrefixes: "ABC, ABD"},
		{Name: "Demo Holding EU", GRTCodePrefixes: "EUA"},
	}
	for i := range companies {
		if err := db.Create(&companies[i]).Error; err != nil {
			log.Fatalf("❌ Failed to create company %s: %v", companies[i].Name, err)
		}
	}

	fmt.Println("👤 Creating admin user...")
	password, err := utils.HashPassword("admin")
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}
	admin := models.UserAuth{
		Username:  "admin",
		Email:     "admin@example.com",
		Password:  password,
		Name:      "Administrator",
		Role:      "admin",
		CompanyID: &companies[0].ID,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("❌ Failed to create admin user: %v", err)
	}

	fmt.Println()
	fmt.Println("✅ Demo data created:")
	fmt.Printf("   countries: %d, companies: %d, admin login: admin@example.com / admin\n",
		len(countries), len(companies))
	fmt.Println("   Set grt.api_url and GRT_API_KEY, then run cmd/syncrun to pull branches.")
}
