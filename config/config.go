package config

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DB describes how to reach the registration database. DSN wins over the
// individual fields when both are given.
type DB struct {
	DSN      string
	Host     string
	Port     int `validate:"min=1,max=65535"`
	User     string
	Password string
	Name     string
}

// Archive configures the S3 bucket reports are archived to. An empty bucket disables archiving.
type Archive struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Prefix          string
}

func (a Archive) Enabled() bool { return a.Bucket != "" }

type Config struct {
	DB                DB
	HTTPAddr          string `validate:"required"`
	LookupConcurrency int    `validate:"min=1,max=64"`
	LookupBatchSize   int    `validate:"min=1,max=1000"`
	LogLevel          string `validate:"oneof=trace debug info warn warning error"`
	LogFormat         string `validate:"oneof=text json"`
	Archive           Archive
}

var validate = validator.New()

func defaults(v *viper.Viper) {
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", 3306)
	v.SetDefault("DB_USER", "root")
	v.SetDefault("HTTP_ADDR", ":8000")
	v.SetDefault("LOOKUP_CONCURRENCY", 8)
	v.SetDefault("LOOKUP_BATCH_SIZE", 200)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("ARCHIVE_PREFIX", "reports")
}

// Load reads the given .env files (missing ones are skipped), then the process
// environment, and validates the result.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "load %s", f)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	defaults(v)

	cfg := &Config{
		DB: DB{
			DSN:      v.GetString("DB_DSN"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		HTTPAddr:          v.GetString("HTTP_ADDR"),
		LookupConcurrency: v.GetInt("LOOKUP_CONCURRENCY"),
		LookupBatchSize:   v.GetInt("LOOKUP_BATCH_SIZE"),
		LogLevel:          strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:         strings.ToLower(v.GetString("LOG_FORMAT")),
		Archive: Archive{
			Bucket:          v.GetString("ARCHIVE_BUCKET"),
			Region:          v.GetString("ARCHIVE_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Prefix:          strings.Trim(v.GetString("ARCHIVE_PREFIX"), "/"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			result = multierror.Append(result, fmt.Errorf("%s: must satisfy %s (got %v)", fe.Namespace(), fe.ActualTag(), fe.Value()))
		}
	}
	if c.DB.DSN == "" && (c.DB.Host == "" || c.DB.Name == "") {
		result = multierror.Append(result, errors.New("DB_DSN or DB_HOST and DB_NAME must be set"))
	}
	if c.Archive.Enabled() && c.Archive.Region == "" {
		result = multierror.Append(result, errors.New("ARCHIVE_REGION is required when ARCHIVE_BUCKET is set"))
	}
	return result.ErrorOrNil()
}

// Logger builds the process logger.
func (c *Config) Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
