package store

import (
	"log"

	"github.com/axis-silicon/storefront-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedDatabase populates empty category and product tables with the default
// dataset. The guard is "table has zero rows", checked independently per
// table; existing content is never compared or overwritten.
func SeedDatabase(db *gorm.DB) error {
	var categoryCount int64
	if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		log.Printf("❌ Seed check failed for categories: %v", err)
		return err
	}
	if categoryCount == 0 {
		categories := DefaultCategories()
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&categories).Error; err != nil {
			log.Printf("❌ Failed to seed categories: %v", err)
			return err
		}
		log.Printf("✅ Seeded %d categories", len(categories))
	}

	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		log.Printf("❌ Seed check failed for products: %v", err)
		return err
	}
	if productCount == 0 {
		products := DefaultProducts()
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error; err != nil {
			log.Printf("❌ Failed to seed products: %v", err)
			return err
		}
		log.Printf("✅ Seeded %d products", len(products))
	}
	return nil
}

// DefaultCategories is the bundled category set, also used as the read
// fallback when the database is unreachable.
func DefaultCategories() []models.Category {
	return []models.Category{
		{ID: "processors", Title: "Neural Processors", Image: "https://images.unsplash.com/photo-1591405351990-4726e331f141?auto=format&fit=crop&q=80&w=1200", URL: "#processors"},
		{ID: "sensors", Title: "Quantum Sensors", Image: "https://images.unsplash.com/photo-1555664424-778a1e5e1b48?auto=format&fit=crop&q=80&w=1200", URL: "#sensors"},
		{ID: "logic", Title: "Logic Foundations", Image: "https://images.unsplash.com/photo-1518770660439-4636190af475?auto=format&fit=crop&q=80&w=1200", URL: "#logic"},
		{ID: "bridges", Title: "Data Bridges", Image: "https://images.unsplash.com/photo-1558346490-a72e53ae2d4f?auto=format&fit=crop&q=80&w=1200", URL: "#bridges"},
	}
}

// DefaultProducts is the bundled catalog, also used as the read fallback.
func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:                 "AX-CORE-X2",
			Name:               "AXIS Core-X2 Neural Processor",
			Category:           "processors",
			Price:              58000,
			DiscountPercentage: 0,
			Images: []string{
				"https://images.unsplash.com/photo-1591405351990-4726e331f141?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1550751827-4bd374c3f58b?auto=format&fit=crop&q=80&w=800",
			},
			Description: "Pinnacle 7nm architecture optimized for real-time neural processing and autonomous logic.",
			Details:     "Architecture: RISC-V 64-bit (Deca-Core)\nClock: 3.2GHz Boost\nNeural Engine: 12 TOPS\nPower: 15W TDP",
			Features:    []string{"7nm FinFET", "Hardware Encryption", "HBM2e Support"},
			Stock:       15,
		},
		{
			ID:                 "BS-IR-900",
			Name:               "Bio-Sync Infrared Thermal Array",
			Category:           "sensors",
			Price:              32500,
			DiscountPercentage: 0,
			Images: []string{
				"https://images.unsplash.com/photo-1555664424-778a1e5e1b48?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1550009158-9ebf69173e03?auto=format&fit=crop&q=80&w=800",
			},
			Description: "High-resolution thermal imaging sensor with integrated AI for precise person detection.",
			Details:     "Resolution: 160x120 Thermal Pixels\nFOV: 57 Degrees\nInterface: SPI / I2C\nAccuracy: +/- 2.0°C",
			Features:    []string{"AI Tracking", "No Calibration", "Low Noise Floor"},
			Stock:       24,
		},
		{
			ID:                 "LM-PRO-V",
			Name:               "Logic Master Pro-V Dev Board",
			Category:           "logic",
			Price:              94000,
			DiscountPercentage: 10,
			Images: []string{
				"https://images.unsplash.com/photo-1518770660439-4636190af475?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1555664424-778a1e5e1b48?auto=format&fit=crop&q=80&w=800",
			},
			Description: "Ultra-dense FPGA development platform for high-speed signal processing systems.",
			Details:     "FPGA: Artix-7 Equivalent\nLogic Cells: 215,000\nRAM: 1GB DDR3\nTransceivers: 16x 6.6 Gbps",
			Features:    []string{"10G Ethernet", "PCIe Gen2", "400 Pin I/O"},
			Stock:       8,
		},
		{
			ID:                 "OL-5G-NODE",
			Name:               "Optic-Link 5G Industrial Node",
			Category:           "bridges",
			Price:              18900,
			DiscountPercentage: 0,
			Images: []string{
				"https://images.unsplash.com/photo-1558346490-a72e53ae2d4f?auto=format&fit=crop&q=80&w=800",
				"https://images.unsplash.com/photo-1451187580459-43490279c0fa?auto=format&fit=crop&q=80&w=800",
			},
			Description: "Sub-6GHz 5G module designed for low-latency machine-to-machine communication.",
			Details:     "Network: 5G NR / LTE-A Cat 20\nSpeed: 2.4 Gbps Down\nLatency: < 10ms\nInterface: M.2",
			Features:    []string{"Global Bands", "M.2 Interface", "IP67 Rated"},
			Stock:       40,
		},
	}
}
