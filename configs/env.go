package configs

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

// loadEnv pulls in a .env file when one exists. In deployed environments the
// variables come from the process environment and no .env file is present.
func loadEnv() {
	loadEnvOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using process environment")
		}
	})
}

func EnvMongoURI() string {
	loadEnv()
	return os.Getenv("MONGOURI")
}

func RedisURL() string {
	loadEnv()
	return os.Getenv("REDISURL")
}

func NOTIFICATIONCHANNEL() string {
	loadEnv()
	return os.Getenv("NOTIFICATION_CHANNEL")
}

func EnvJWTSecret() string {
	loadEnv()
	return os.Getenv("JWT_SECRET")
}

func DEFAULTAVATAR() string {
	loadEnv()
	return os.Getenv("DEFAULTAVATAR")
}

func EnvDBHost() string {
	loadEnv()
	return os.Getenv("DB_HOST")
}

func EnvDBUser() string {
	loadEnv()
	return os.Getenv("DB_USER")
}

func EnvDBPassword() string {
	loadEnv()
	return os.Getenv("DB_PASSWORD")
}

func EnvDBName() string {
	loadEnv()
	return os.Getenv("DB_NAME")
}

func EnvDBPort() string {
	loadEnv()
	return os.Getenv("DB_PORT")
}
