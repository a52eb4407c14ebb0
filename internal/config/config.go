package config

import (
	"os"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App     *App
		Session *Session
		DB      *DB
		HTTP    *HTTP
		Redis   *Redis
	}

	App struct {
		Name string
		Env  string
	}

	Session struct {
		Secret   string
		Duration string
	}

	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
		TemplateGlob   string
	}

	Redis struct {
		Address  string
		Password string
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil {
			return nil, err
		}
	}

	app := &App{
		Name: os.Getenv("APP_NAME"),
		Env:  os.Getenv("APP_ENV"),
	}

	session := &Session{
		Secret:   os.Getenv("SESSION_SECRET"),
		Duration: os.Getenv("SESSION_DURATION"),
	}

	db := &DB{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
	}

	templateGlob := os.Getenv("TEMPLATE_GLOB")
	if templateGlob == "" {
		templateGlob = "./web/templates/*.html"
	}

	http := &HTTP{
		Port:           os.Getenv("HTTP_PORT"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            os.Getenv("APP_ENV"),
		TemplateGlob:   templateGlob,
	}

	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	return &Container{
		App:     app,
		Session: session,
		DB:      db,
		HTTP:    http,
		Redis:   redis,
	}, nil
}
