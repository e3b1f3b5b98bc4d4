package dao

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads the starting catalog, members and staff on an empty database.
// It is a no-op when any staff user already exists.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&StaffUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()

	staff := []StaffUser{
		{Email: "duke@clubverd.es", Password: string(hash), Name: "Duke Jefe", Role: "ADMIN",
			AvatarURL: "https://ui-avatars.com/api/?name=Duke+Jefe&background=10b981&color=fff"},
		{Email: "pali@clubverd.es", Password: string(hash), Name: "Pali Stock", Role: "INVENTORY",
			AvatarURL: "https://ui-avatars.com/api/?name=Pali+Stock&background=6366f1&color=fff"},
		{Email: "yonfre@clubverd.es", Password: string(hash), Name: "Yonfre Vendedor", Role: "SALES",
			AvatarURL: "https://ui-avatars.com/api/?name=Yonfre+Vendedor&background=f59e0b&color=fff"},
	}

	products := []Product{
		{Name: "Purple Haze", Category: "Flower", StrainType: "Sativa", THCContent: 18,
			Stock: decimal.RequireFromString("450.5"), Price: decimal.NewFromInt(12),
			Description: "Sativa clásica conocida por su estimulación cerebral de alta energía."},
		{Name: "OG Kush", Category: "Flower", StrainType: "Híbrida", THCContent: 22,
			Stock: decimal.RequireFromString("120.0"), Price: decimal.NewFromInt(15),
			Description: "Híbrida potente para eliminar el estrés con aroma a limón y pino."},
		{Name: "Northern Lights", Category: "Flower", StrainType: "Indica", THCContent: 16,
			Stock: decimal.RequireFromString("800.0"), Price: decimal.NewFromInt(10),
			Description: "Indica pura, excelente para relajación muscular y dormir."},
		{Name: "Moon Rocks", Category: "Extract", THCContent: 50,
			Stock: decimal.RequireFromString("50.0"), Price: decimal.NewFromInt(35),
			Description: "Cogollos premium bañados en aceite de hachís y cubiertos de kief."},
		{Name: "Gominolas CBD", Category: "Edible", CBDContent: 25,
			Stock: decimal.NewFromInt(100), Price: decimal.NewFromInt(5),
			Description: "Paquete de 10 gominolas, 25mg de CBD cada una."},
		{Name: "Papel King Size RAW", Category: "Accessory",
			Stock: decimal.NewFromInt(50), Price: decimal.RequireFromString("1.50"),
			Description: "Librillo de papel sin blanquear, tamaño King Size."},
		{Name: "Agua Mineral 50cl", Category: "Drink",
			Stock: decimal.NewFromInt(48), Price: decimal.RequireFromString("1.00"),
			Description: "Botella de agua fría."},
		{Name: "Coca Cola", Category: "Drink",
			Stock: decimal.NewFromInt(24), Price: decimal.RequireFromString("1.50"),
			Description: "Lata 33cl bien fría."},
		{Name: "Zumo de Piña", Category: "Drink",
			Stock: decimal.NewFromInt(12), Price: decimal.RequireFromString("1.20"),
			Description: "Zumo natural en botella de vidrio."},
		{Name: "Cerveza 0,0%", Category: "Drink",
			Stock: decimal.NewFromInt(24), Price: decimal.RequireFromString("2.00"),
			Description: "Cerveza sin alcohol refrescante."},
	}

	members := []Member{
		{FullName: "María García", DocType: "NIE", DocNumber: "X1234567Z",
			PhotoURL: "https://picsum.photos/200/200",
			Balance:  decimal.RequireFromString("150.00"), JoinedAt: now, Active: true},
		{FullName: "Juan Pérez", DocType: "DNI", DocNumber: "12345678A",
			PhotoURL: "https://picsum.photos/201/201",
			Balance:  decimal.RequireFromString("20.50"), JoinedAt: now, Active: true},
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&staff).Error; err != nil {
			return err
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		return tx.Create(&members).Error
	})
}
