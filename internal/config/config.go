package config

import (
	"os"
)

type Config struct {
	AppPort         string
	MongoURI        string
	MongoDB         string
	GoogleClientID  string
	StripeSecretKey string
	SiteOrigin      string
}

func Load() Config {
	return Config{
		AppPort:         get("APP_PORT", "5000"),
		MongoURI:        must("MONGO_URI"),
		MongoDB:         get("MONGO_DB", "blood-donation"),
		GoogleClientID:  must("GOOGLE_CLIENT_ID"),
		StripeSecretKey: must("STRIPE_SECRET_KEY"),
		SiteOrigin:      get("SITE_ORIGIN", "http://localhost:5173"),
	}
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
