package main

import (
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"

	"github.com/YoussefAz2/elenashop-sub001/internal/entity"
	"github.com/YoussefAz2/elenashop-sub001/internal/mapper"
	"github.com/YoussefAz2/elenashop-sub001/pkg/database"
	"github.com/YoussefAz2/elenashop-sub001/pkg/palette"
	"github.com/YoussefAz2/elenashop-sub001/pkg/theme"
)

// Seeds one demo store per built-in palette so the editor has data to
// open. Existing rows are left untouched.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	catalog := palette.NewCatalog()
	themeMapper := mapper.NewStoreThemeMapper()

	log.Println("Seeding demo store themes...")
	for _, p := range catalog.Palettes() {
		// Stable ids so reruns hit the same rows.
		storeId := uuid.NewSHA1(uuid.NameSpaceURL, []byte("elenashop/demo/"+p.ID))
		cfg, err := catalog.Apply(p.ID, theme.Defaults())
		if err != nil {
			log.Printf("Error applying palette '%s': %v", p.ID, err)
			continue
		}

		row := themeMapper.ToModel(&entity.StoreTheme{StoreId: storeId, Config: cfg})
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(row)
		if res.Error != nil {
			log.Printf("Error seeding store for palette '%s': %v", p.ID, res.Error)
			continue
		}
		if res.RowsAffected == 0 {
			log.Printf("Store for palette '%s' already exists, skipping...", p.ID)
			continue
		}
		log.Printf("Created demo store %s (%s)", storeId, p.Name)
	}

	log.Println("Seeding completed!")
}
