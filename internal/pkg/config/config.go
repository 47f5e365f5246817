package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Mobiilikehitysprojekti-Team-10/Food-Waste-Tracker/internal/pkg/constants"
)

// Init loads defaults, environment overrides (FWT_*) and an optional config.yaml
// next to the binary.
func Init() error {
	viper.SetDefault(constants.ViperKeyEnv, "development")
	viper.SetDefault(constants.ViperKeyListenAddr, ":8080")
	viper.SetDefault(constants.ViperKeyDatabaseDSN, "postgres://localhost:5432/foodwaste")
	viper.SetDefault(constants.ViperKeyRedisAddr, "")
	viper.SetDefault(constants.ViperKeyRedisPassword, "")
	viper.SetDefault(constants.ViperKeyMenuCacheTTL, time.Hour)
	viper.SetDefault(constants.ViperKeyCORSOrigins, []string{"http://localhost:3000"})
	viper.SetDefault(constants.ViperSecretKey, "dev-secret")

	viper.SetEnvPrefix("FWT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	return nil
}

func NewLogger() (*zap.Logger, error) {
	if viper.GetString(constants.ViperKeyEnv) == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
