package configs

import (
	"fmt"
	"log"
	"os"

	"gofood/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type Catalog struct {
	Foods []CatalogFood `yaml:"foods"`
}

type CatalogFood struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Price       string         `yaml:"price"`
	ImageURL    string         `yaml:"image_url"`
	Category    string         `yaml:"category"`
	Extras      []CatalogExtra `yaml:"extras"`
}

type CatalogExtra struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return &c, nil
}

// SeedCatalog inserts catalog foods that are not in the database yet (matched by name).
func SeedCatalog(database *gorm.DB, c *Catalog) error {
	for _, f := range c.Foods {
		price, err := decimal.NewFromString(f.Price)
		if err != nil {
			return fmt.Errorf("food %q: invalid price %q", f.Name, f.Price)
		}

		var count int64
		if err := database.Model(&entity.Food{}).Where("name = ?", f.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		food := entity.Food{
			Name:        f.Name,
			Description: f.Description,
			Price:       price,
			ImageURL:    f.ImageURL,
			Category:    f.Category,
		}
		for _, x := range f.Extras {
			value, err := decimal.NewFromString(x.Value)
			if err != nil {
				return fmt.Errorf("extra %q of %q: invalid value %q", x.Name, f.Name, x.Value)
			}
			food.Extras = append(food.Extras, entity.Extra{Name: x.Name, Value: value})
		}

		if err := database.Create(&food).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedFromFile is what main uses; a missing file only skips seeding.
func SeedFromFile(database *gorm.DB, path string) error {
	c, err := LoadCatalog(path)
	if os.IsNotExist(err) {
		log.Println("⚠️ skip seeding catalog: file not found:", path)
		return nil
	}
	if err != nil {
		return err
	}
	if err := SeedCatalog(database, c); err != nil {
		return err
	}
	log.Printf("✅ Catalog seeded (%d foods)", len(c.Foods))
	return nil
}

// SeedUser creates the account from SEED_EMAIL/SEED_PASSWORD once.
func SeedUser(database *gorm.DB) error {
	email := getEnv("SEED_EMAIL", "")
	pass := getEnv("SEED_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("⚠️ skip seeding user: missing SEED_EMAIL/SEED_PASSWORD")
		return nil
	}

	var count int64
	if err := database.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("ℹ️ user already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Seed",
		LastName:  "User",
		Role:      "customer",
	}
	return database.Create(&user).Error
}
