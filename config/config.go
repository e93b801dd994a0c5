package config

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	// ListenAddrKey is the address where the HTTP interface will listen on
	ListenAddrKey = "LISTEN_ADDR"
	// DatadirKey is the local data directory to store the internal state of the daemon
	DatadirKey = "DATA_DIR_PATH"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DbTypeKey selects the storage backend, either "badger" or "inmemory"
	DbTypeKey = "DB_TYPE"
	// RequestRateLimitKey is the number of requests per second the HTTP interface lets through
	RequestRateLimitKey = "REQUEST_RATE_LIMIT"
	// StatsIntervalKey defines the interval in seconds for printing basic
	// runtime statistics, 0 disables them
	StatsIntervalKey = "STATS_INTERVAL"

	// DbLocation is the folder inside the datadir containing the badger store
	DbLocation = "db"

	DbTypeBadger   = "badger"
	DbTypeInMemory = "inmemory"
)

var vip *viper.Viper

func init() {
	vip = viper.New()
	vip.SetEnvPrefix("GALLERIA")
	vip.AutomaticEnv()

	vip.SetDefault(ListenAddrKey, ":9945")
	vip.SetDefault(DatadirKey, defaultDatadir())
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DbTypeKey, DbTypeBadger)
	vip.SetDefault(RequestRateLimitKey, 100)
	vip.SetDefault(StatsIntervalKey, 600)

	if err := validate(); err != nil {
		log.WithError(err).Panic("error while validating config")
	}

	if err := initDatadir(); err != nil {
		log.WithError(err).Panic("error while creating datadir")
	}
}

//GetString ...
func GetString(key string) string {
	return vip.GetString(key)
}

//GetInt ...
func GetInt(key string) int {
	return vip.GetInt(key)
}

//GetBool ...
func GetBool(key string) bool {
	return vip.GetBool(key)
}

//GetDatadir ...
func GetDatadir() string {
	return GetString(DatadirKey)
}

//GetDbDir ...
func GetDbDir() string {
	return filepath.Join(GetDatadir(), DbLocation)
}

func validate() error {
	switch dbType := vip.GetString(DbTypeKey); dbType {
	case DbTypeBadger, DbTypeInMemory:
	default:
		return fmt.Errorf("unsupported db type: %s", dbType)
	}

	if vip.GetInt(RequestRateLimitKey) <= 0 {
		return fmt.Errorf("request rate limit must be positive")
	}

	return nil
}

func initDatadir() error {
	return makeDirectoryIfNotExists(GetDbDir())
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}

func defaultDatadir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".galleria-daemon"
	}
	return filepath.Join(home, ".galleria-daemon")
}
