package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT configuration
	JWTSecret string `yaml:"JWT_SECRET"`
	JWTIssuer string `yaml:"JWT_ISSUER"`

	// Bootstrap admin account, created at startup if absent
	AdminEmail    string `yaml:"ADMIN_EMAIL"`
	AdminPassword string `yaml:"ADMIN_PASSWORD"`

	// HTTP server
	AppPort string `yaml:"APP_PORT"`

	// AWS S3 configuration (recipe image uploads)
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

// Insecure development fallbacks, applied only when config.yaml leaves a key
// empty. Every one of these must be overridden before any real deployment.
const (
	DefaultJWTSecret     = "super-secret-key-change-me"
	DefaultJWTIssuer     = "RecipeApp"
	DefaultAdminEmail    = "admin@recipeapp.local"
	DefaultAdminPassword = "Admin123!"
)

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	if config.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET not set, using insecure development default")
		config.JWTSecret = DefaultJWTSecret
	}
	if config.JWTIssuer == "" {
		config.JWTIssuer = DefaultJWTIssuer
	}
	if config.AdminEmail == "" || config.AdminPassword == "" {
		log.Println("WARNING: ADMIN_EMAIL/ADMIN_PASSWORD not set, using insecure development defaults")
		config.AdminEmail = DefaultAdminEmail
		config.AdminPassword = DefaultAdminPassword
	}
	if config.AppPort == "" {
		config.AppPort = "3000"
	}

	// Keys some packages read via os.Getenv
	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("JWT_ISSUER", config.JWTIssuer)
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "JWT_ISSUER":
		return config.JWTIssuer
	case "ADMIN_EMAIL":
		return config.AdminEmail
	case "ADMIN_PASSWORD":
		return config.AdminPassword
	case "APP_PORT":
		return config.AppPort
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}
