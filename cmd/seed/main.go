package main

import (
	"time"

	"github.com/urano-b2b/internal/config"
	"github.com/urano-b2b/internal/constants"
	"github.com/urano-b2b/internal/logger"
	"github.com/urano-b2b/internal/models"

	"github.com/shopspring/decimal"
)

type seedBook struct {
	id       string
	isbn     string
	title    string
	author   string
	sello    string
	price    string
	stock    int
	isNew    bool
	pages    int
	format   string
	synopsis string
}

var books = []seedBook{
	{"1", "978-84-7953-934-5", "El poder del ahora", "Eckhart Tolle", constants.ImprintUrano, "18500", 24, false, 240, "Rústica", "Una guía para la iluminación espiritual."},
	{"2", "978-84-17780-14-6", "Hábitos atómicos", "James Clear", constants.ImprintPaidos, "21900", 0, true, 328, "Rústica", "Cambios pequeños, resultados extraordinarios."},
	{"3", "978-84-16622-21-0", "Ikigai", "Héctor García y Francesc Miralles", constants.ImprintUrano, "16200", 12, false, 208, "Rústica", "Los secretos de Japón para una vida larga y feliz."},
	{"4", "978-84-16720-89-3", "Los cuatro acuerdos", "Miguel Ruiz", constants.ImprintUrano, "14800", 40, false, 160, "Rústica", "Un libro de sabiduría tolteca."},
	{"5", "978-84-19699-01-2", "El método Kepler", "Ana Belén Ruiz", constants.ImprintKepler, "19700", 6, true, 272, "Tapa dura", "Astronomía para curiosos."},
	{"6", "978-84-18967-33-0", "La era del capitalismo de la vigilancia", "Shoshana Zuboff", constants.ImprintPaidos, "32500", 3, false, 912, "Rústica", "La lucha por un futuro humano frente a las nuevas fronteras del poder."},
	{"7", "978-84-19399-12-7", "Sapiens", "Yuval Noah Harari", constants.ImprintDebate, "27400", 0, false, 496, "Rústica", "De animales a dioses."},
	{"8", "978-84-18006-45-2", "Ñandú y otros cuentos", "Ñusta Quispe", constants.ImprintKepler, "12900", 15, true, 144, "Rústica", "Relatos del litoral."},
	{"9", "978-84-17694-50-9", "Árboles de la Patagonia", "Óscar Álvarez", constants.ImprintDebate, "23800", 8, true, 320, "Tapa dura", "Guía ilustrada de especies nativas."},
	{"10", "978-84-16579-77-4", "El arte de no amargarse la vida", "Rafael Santandreu", constants.ImprintUrano, "17300", 0, false, 256, "Rústica", "Las claves del cambio psicológico."},
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(models.DB); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 默认客户
	if err := models.InitDefaultCustomer(models.DB, "", ""); err != nil {
		stdLog.Fatalf("Failed to create default customer: %v", err)
	}

	// 图书
	for _, book := range books {
		var count int64
		if err := models.DB.Model(&models.Product{}).Where("id = ?", book.id).Count(&count).Error; err != nil {
			stdLog.Printf("Failed to check product %s: %v", book.id, err)
			continue
		}
		if count > 0 {
			stdLog.Printf("Product already exists: %s", book.title)
			continue
		}
		product := models.Product{
			ID:          book.id,
			ISBN:        book.isbn,
			Title:       book.title,
			Author:      book.author,
			Sello:       book.sello,
			Price:       models.NewMoneyFromDecimal(decimal.RequireFromString(book.price)),
			Stock:       book.stock,
			IsNew:       book.isNew,
			Pages:       book.pages,
			Language:    "Español",
			Format:      book.format,
			Description: book.synopsis,
		}
		if err := models.DB.Create(&product).Error; err != nil {
			stdLog.Printf("Failed to create product %s: %v", book.title, err)
			continue
		}
		stdLog.Printf("Created product: %s", book.title)
	}

	// 客户账户与发票
	var accountCount int64
	if err := models.DB.Model(&models.Account{}).Where("customer_id = ?", "demo@libreria.com").Count(&accountCount).Error; err != nil {
		stdLog.Fatalf("Failed to check account: %v", err)
	}
	if accountCount == 0 {
		now := time.Now().UTC()
		account := models.Account{
			CustomerID:     "demo@libreria.com",
			CurrentBalance: models.NewMoneyFromDecimal(decimal.RequireFromString("-185400.50")),
			CreditLimit:    models.NewMoneyFromDecimal(decimal.RequireFromString("1500000")),
			Status:         constants.AccountStatusActive,
			Invoices: []models.Invoice{
				{ID: "A-0001-00012345", Date: now.AddDate(0, 0, -3), Amount: models.NewMoneyFromDecimal(decimal.RequireFromString("98400"))},
				{ID: "A-0001-00012290", Date: now.AddDate(0, 0, -17), Amount: models.NewMoneyFromDecimal(decimal.RequireFromString("145250.50"))},
				{ID: "A-0001-00012177", Date: now.AddDate(0, -1, -2), Amount: models.NewMoneyFromDecimal(decimal.RequireFromString("62300"))},
				{ID: "A-0001-00012001", Date: now.AddDate(0, -2, 0), Amount: models.NewMoneyFromDecimal(decimal.RequireFromString("210000"))},
			},
		}
		if err := models.DB.Create(&account).Error; err != nil {
			stdLog.Fatalf("Failed to create account: %v", err)
		}
		stdLog.Printf("Created account for %s", account.CustomerID)
	} else {
		stdLog.Printf("Account already exists: demo@libreria.com")
	}

	stdLog.Printf("Seed completed")
}
