package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hospogo-backend/internal/config"
	"hospogo-backend/internal/database"
	"hospogo-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type HubData struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Address  string `yaml:"address,omitempty"`
	Timezone string `yaml:"timezone,omitempty"`
	Status   string `yaml:"status"`
}

type ProfessionalData struct {
	Email       string `yaml:"email"`
	DisplayName string `yaml:"display_name"`
	Role        string `yaml:"role"`
	IsActive    bool   `yaml:"is_active"`
}

type ShiftTemplateData struct {
	HubName       string `yaml:"hub_name"`
	DayOfWeek     int    `yaml:"day_of_week"`
	StartTime     string `yaml:"start_time"`
	EndTime       string `yaml:"end_time"`
	Label         string `yaml:"label"`
	RequiredStaff int    `yaml:"required_staff"`
	Position      int    `yaml:"position"`
}

type ShiftData struct {
	HubName       string `yaml:"hub_name"`
	TemplateLabel string `yaml:"template_label,omitempty"`
	StartAt       string `yaml:"start_at"`
	EndAt         string `yaml:"end_at"`
	Status        string `yaml:"status"`
	Notes         string `yaml:"notes,omitempty"`
}

// File structures
type HubsFile struct {
	Hubs []HubData `yaml:"hubs"`
}

type ProfessionalsFile struct {
	Professionals []ProfessionalData `yaml:"professionals"`
}

type ShiftTemplatesFile struct {
	ShiftTemplates []ShiftTemplateData `yaml:"shift_templates"`
}

type ShiftsFile struct {
	Shifts []ShiftData `yaml:"shifts"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	hubs, err := loadHubs(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load hubs: %w", err)
	}

	professionals, err := loadProfessionals(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load professionals: %w", err)
	}

	templates, err := loadShiftTemplates(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load shift templates: %w", err)
	}

	shifts, err := loadShifts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load shifts: %w", err)
	}

	// Create hubs first
	hubMap := make(map[string]*models.Hub)
	hubCreated := 0
	for _, hubData := range hubs {
		hub, created, err := createHub(db, hubData)
		if err != nil {
			return fmt.Errorf("failed to create hub %s: %w", hubData.Name, err)
		}
		hubMap[hubData.Name] = hub
		if created {
			hubCreated++
		}
	}
	log.Printf("📋 Hubs: %d created, %d total", hubCreated, len(hubs))

	// Create professionals
	professionalCreated := 0
	for _, professionalData := range professionals {
		_, created, err := createProfessional(db, professionalData)
		if err != nil {
			return fmt.Errorf("failed to create professional %s: %w", professionalData.Email, err)
		}
		if created {
			professionalCreated++
		}
	}
	log.Printf("📋 Professionals: %d created, %d total", professionalCreated, len(professionals))

	// Create shift templates
	templateMap := make(map[string]*models.ShiftTemplate)
	templateCreated := 0
	for _, templateData := range templates {
		template, created, err := createShiftTemplate(db, templateData, hubMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create shift template %s: %v", templateData.Label, err)
			continue // Continue with other templates
		}
		templateMap[templateData.HubName+"/"+templateData.Label] = template
		if created {
			templateCreated++
		}
	}
	log.Printf("📋 Shift templates: %d created, %d total", templateCreated, len(templates))

	// Create shifts
	shiftCreated := 0
	for _, shiftData := range shifts {
		_, created, err := createShift(db, shiftData, hubMap, templateMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create shift at %s: %v", shiftData.StartAt, err)
			continue // Continue with other shifts
		}
		if created {
			shiftCreated++
		}
	}
	log.Printf("📋 Shifts: %d created, %d total", shiftCreated, len(shifts))

	return nil
}

func loadHubs(dataDir string) ([]HubData, error) {
	var allHubs []HubData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "hubs") {
			var file HubsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allHubs = append(allHubs, file.Hubs...)
		}
		return nil
	})

	return allHubs, err
}

func loadProfessionals(dataDir string) ([]ProfessionalData, error) {
	var allProfessionals []ProfessionalData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "professionals") {
			var file ProfessionalsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allProfessionals = append(allProfessionals, file.Professionals...)
		}
		return nil
	})

	return allProfessionals, err
}

func loadShiftTemplates(dataDir string) ([]ShiftTemplateData, error) {
	var allTemplates []ShiftTemplateData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "shift_templates") {
			var file ShiftTemplatesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTemplates = append(allTemplates, file.ShiftTemplates...)
		}
		return nil
	})

	return allTemplates, err
}

func loadShifts(dataDir string) ([]ShiftData, error) {
	var allShifts []ShiftData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "shifts") && !strings.Contains(path, "shift_templates") {
			var file ShiftsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allShifts = append(allShifts, file.Shifts...)
		}
		return nil
	})

	return allShifts, err
}

func createHub(db *gorm.DB, hubData HubData) (*models.Hub, bool, error) {
	var hub models.Hub
	if err := db.Where("name = ?", hubData.Name).First(&hub).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.HubStatus(hubData.Status)
			if hubData.Status == "" {
				status = models.HubStatusActive
			}
			timezone := hubData.Timezone
			if timezone == "" {
				timezone = "Local"
			}

			hub = models.Hub{
				Name:     hubData.Name,
				Title:    hubData.Title,
				Address:  hubData.Address,
				Timezone: timezone,
				Status:   status,
			}
			if err := db.Create(&hub).Error; err != nil {
				return nil, false, err
			}
			return &hub, true, nil
		}
		return nil, false, err
	}
	return &hub, false, nil
}

func createProfessional(db *gorm.DB, professionalData ProfessionalData) (*models.Professional, bool, error) {
	var professional models.Professional
	if err := db.Where("email = ?", professionalData.Email).First(&professional).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			professional = models.Professional{
				Email:       professionalData.Email,
				DisplayName: professionalData.DisplayName,
				Role:        models.ProfessionalRole(professionalData.Role),
				IsActive:    professionalData.IsActive,
			}
			if err := db.Create(&professional).Error; err != nil {
				return nil, false, err
			}
			return &professional, true, nil
		}
		return nil, false, err
	}
	return &professional, false, nil
}

func createShiftTemplate(db *gorm.DB, templateData ShiftTemplateData, hubMap map[string]*models.Hub) (*models.ShiftTemplate, bool, error) {
	hub, ok := hubMap[templateData.HubName]
	if !ok {
		return nil, false, fmt.Errorf("hub %s not found", templateData.HubName)
	}

	var template models.ShiftTemplate
	err := db.Where("hub_id = ? AND day_of_week = ? AND start_time = ? AND end_time = ?",
		hub.ID, templateData.DayOfWeek, templateData.StartTime, templateData.EndTime).
		First(&template).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			template = models.ShiftTemplate{
				HubID:         hub.ID,
				DayOfWeek:     templateData.DayOfWeek,
				StartTime:     templateData.StartTime,
				EndTime:       templateData.EndTime,
				Label:         templateData.Label,
				RequiredStaff: templateData.RequiredStaff,
				Position:      templateData.Position,
			}
			if err := db.Create(&template).Error; err != nil {
				return nil, false, err
			}
			return &template, true, nil
		}
		return nil, false, err
	}
	return &template, false, nil
}

func createShift(db *gorm.DB, shiftData ShiftData, hubMap map[string]*models.Hub, templateMap map[string]*models.ShiftTemplate) (*models.Shift, bool, error) {
	hub, ok := hubMap[shiftData.HubName]
	if !ok {
		return nil, false, fmt.Errorf("hub %s not found", shiftData.HubName)
	}

	startAt, err := time.Parse(time.RFC3339, shiftData.StartAt)
	if err != nil {
		return nil, false, fmt.Errorf("invalid start_at %q: %w", shiftData.StartAt, err)
	}
	endAt, err := time.Parse(time.RFC3339, shiftData.EndAt)
	if err != nil {
		return nil, false, fmt.Errorf("invalid end_at %q: %w", shiftData.EndAt, err)
	}

	var shift models.Shift
	err = db.Where("hub_id = ? AND start_at = ? AND end_at = ?", hub.ID, startAt, endAt).
		First(&shift).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.ShiftStatus(shiftData.Status)
			if shiftData.Status == "" {
				status = models.ShiftStatusOpen
			}

			shift = models.Shift{
				HubID:   hub.ID,
				StartAt: startAt,
				EndAt:   endAt,
				Status:  status,
				Notes:   shiftData.Notes,
			}
			if shiftData.TemplateLabel != "" {
				if template, ok := templateMap[shiftData.HubName+"/"+shiftData.TemplateLabel]; ok {
					shift.TemplateID = &template.ID
				}
			}
			if err := db.Create(&shift).Error; err != nil {
				return nil, false, err
			}
			return &shift, true, nil
		}
		return nil, false, err
	}
	return &shift, false, nil
}
