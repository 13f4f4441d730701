package migrations

import (
	"log"

	"gorm.io/gorm"

	"lazshoppe/internal/models"
	"lazshoppe/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// RunMigrations recreates the schema from scratch and seeds default data.
// Used by scripts/init-db; the server itself only auto-migrates.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	log.Println("Dropping existing tables...")
	err := db.Migrator().DropTable(
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Profile{},
		&models.Wishlist{},
		&models.SupportRequest{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	log.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Profile{},
		&models.Wishlist{},
		&models.SupportRequest{},
	)
	if err != nil {
		return err
	}

	if err := Seed(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// Seed creates the default admin account and the starter catalog when the
// tables are empty. Safe to run on every start.
func Seed(db *gorm.DB) error {
	log.Println("Creating default data...")

	profileRepo := repository.NewProfileRepository(db)
	productRepo := repository.NewProductRepository(db)

	if _, err := profileRepo.GetByEmail("admin@lazshoppe.ph"); err != nil {
		log.Println("Creating default admin account...")
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &models.Profile{
			Email:        "admin@lazshoppe.ph",
			PasswordHash: string(hash),
			FullName:     "Store Admin",
			Role:         string(models.RoleAdmin),
		}
		if err := profileRepo.Create(admin); err != nil {
			log.Printf("Warning: Failed to create default admin: %v", err)
		} else {
			log.Println("Default admin created (admin@lazshoppe.ph / admin123)")
		}
	}

	count, err := productRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Catalog already seeded")
		return nil
	}

	log.Println("Seeding starter catalog...")
	for _, product := range starterCatalog() {
		p := product
		if err := productRepo.Create(&p); err != nil {
			log.Printf("Warning: Failed to seed product %q: %v", p.Name, err)
		}
	}

	log.Println("Default data created successfully!")
	return nil
}

func starterCatalog() []models.Product {
	return []models.Product{
		{
			Name:        "Local Oranges",
			Description: "Freshly harvested Valencia oranges, rich in vitamin C.",
			Price:       35,
			Unit:        "kg",
			Badge:       "Best Seller",
			Inventory:   62,
			Category:    "Pantry Essentials",
			ImageURL:    "https://images.unsplash.com/photo-1508747703725-719777637510?auto=format&fit=crop&w=600&q=60",
		},
		{
			Name:        "Corned Beef",
			Description: "Premium corned beef, perfect for hearty breakfasts.",
			Price:       95,
			Unit:        "can",
			Badge:       "No Discount",
			Inventory:   143,
			Category:    "Pantry Essentials",
			ImageURL:    "https://images.unsplash.com/photo-1601050690597-df4cebc12dc5?auto=format&fit=crop&w=600&q=60",
		},
		{
			Name:        "Cheddar Cheese",
			Description: "Creamy cheddar ideal for melting and snacking.",
			Price:       120,
			Unit:        "block",
			Badge:       "Promo",
			Inventory:   38,
			Category:    "Breakfast World",
			ImageURL:    "https://images.unsplash.com/photo-1508737027454-e6454ef45afd?auto=format&fit=crop&w=600&q=60",
		},
		{
			Name:        "Organic Milk",
			Description: "Low-fat milk sourced from local dairy farmers.",
			Price:       80,
			Unit:        "liter",
			Badge:       "Fresh",
			Inventory:   87,
			Category:    "Bakery & Dairy",
			ImageURL:    "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&w=600&q=60",
		},
		{
			Name:        "Whole Wheat Bread",
			Description: "Baked daily with whole grains and natural ingredients.",
			Price:       65,
			Unit:        "loaf",
			Badge:       "Hot",
			Inventory:   24,
			Category:    "Bakery & Dairy",
			ImageURL:    "https://images.unsplash.com/photo-1509440159596-0249088772ff?auto=format&fit=crop&w=600&q=60",
		},
		{
			Name:        "Arabica Coffee Beans",
			Description: "Medium roast beans for smooth pour-over brews.",
			Price:       250,
			Unit:        "bag",
			Badge:       "Limited",
			Inventory:   15,
			Category:    "Lifestyle Cooking",
			ImageURL:    "https://images.unsplash.com/photo-1481391032119-d89fee407e44?auto=format&fit=crop&w=600&q=60",
		},
	}
}
