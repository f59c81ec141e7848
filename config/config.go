package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddr  string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	UploadDir   string
	CORSOrigins string
}

var Cfg *Config

func Load() {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	v.SetDefault("PORT", "8000")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "linkup")
	v.SetDefault("JWT_SECRET", "linkup-secret-change-in-production")
	v.SetDefault("UPLOAD_DIR", "./files")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("No .env file found, using environment variables and defaults")
	}

	Cfg = &Config{
		ServerAddr:  ":" + v.GetString("PORT"),
		MongoURI:    v.GetString("MONGO_URI"),
		MongoDB:     v.GetString("MONGO_DB"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		UploadDir:   v.GetString("UPLOAD_DIR"),
		CORSOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
	}
}
