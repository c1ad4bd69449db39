package database

import (
	"fmt"
	"log"
	"time"

	"github.com/codesmentors/codesmentors-api/config"
	"github.com/codesmentors/codesmentors-api/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	maxConnectAttempts  = 5
	connectRetryDelay   = 5 * time.Second
	poolMaxIdleConns    = 10
	poolMaxOpenConns    = 100
	poolConnMaxLifetime = time.Hour
	poolConnMaxIdleTime = 30 * time.Minute
)

type GORMStore struct {
	db *gorm.DB
}

// StartGORM initializes a GORM connection to PostgreSQL, retrying with a
// fixed delay up to a bounded attempt count before giving up.
func StartGORM() (*GORMStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	// Build DSN (Data Source Name)
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		getEnv.DB_HOST,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_NAME,
		getEnv.DB_PORT,
		getEnv.DB_SSL_MODE,
	)

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if getEnv.GO_ENV == "production" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	var db *gorm.DB
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:      gormLogger,
			PrepareStmt: true, // Prepare statements for better performance
		})
		if err == nil {
			break
		}

		log.Printf("Unable to connect to PostgreSQL (attempt %d/%d): %v", attempt, maxConnectAttempts, err)
		if attempt < maxConnectAttempts {
			time.Sleep(connectRetryDelay)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("postgres unreachable after %d attempts: %w", maxConnectAttempts, err)
	}

	// Get underlying *sql.DB to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(poolMaxIdleConns)
	sqlDB.SetMaxOpenConns(poolMaxOpenConns)
	sqlDB.SetConnMaxLifetime(poolConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(poolConnMaxIdleTime)

	log.Println("Successfully connected to PostgreSQL Database with GORM.")

	return &GORMStore{db: db}, nil
}

// Init runs the AutoMigrate to create/update tables
func (s *GORMStore) Init() error {
	log.Println("Running GORM AutoMigrate for all models...")

	err := s.db.AutoMigrate(
		// Identity
		&model.User{},

		// Content hierarchy
		&model.Technology{},
		&model.Topic{},
		&model.Tutorial{},
		&model.Category{},

		// Engagement
		&model.Comment{},
		&model.Like{},

		// Audit
		&model.LoginHistory{},
	)

	if err != nil {
		log.Println("Error running AutoMigrate:", err)
		return err
	}

	log.Println("GORM AutoMigrate completed successfully!")
	return nil
}

// Close closes the database connection
func (s *GORMStore) Close() error {
	log.Println("Closing GORM PostgreSQL connection...")
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetDB returns the GORM DB instance for use in handlers/services
func (s *GORMStore) GetDB() interface{} {
	return s.db
}

// HealthCheck verifies the database connection is alive
func (s *GORMStore) HealthCheck() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Status reports the connection pool state for the health endpoint
func (s *GORMStore) Status() Status {
	sqlDB, err := s.db.DB()
	if err != nil {
		return Status{Connected: false, Error: err.Error()}
	}

	status := Status{
		OpenConnections: sqlDB.Stats().OpenConnections,
		InUse:           sqlDB.Stats().InUse,
		Idle:            sqlDB.Stats().Idle,
	}

	if err := sqlDB.Ping(); err != nil {
		status.Error = err.Error()
		return status
	}

	status.Connected = true
	return status
}
