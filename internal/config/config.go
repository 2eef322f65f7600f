package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Defaults matching a stock GVM installation.
const (
	DefaultPortListID  = "33d0cd82-57c6-11e1-8ed1-406186ea4fc5" // "All IANA assigned TCP"
	DefaultConfigName  = "Full and fast"
	DefaultScannerName = "OpenVAS Default"
)

type Config struct {
	ListenAddr  string
	GVMNetwork  string
	GVMAddress  string
	GVMUsername string
	GVMPassword string
	PortListID  string
	ConfigName  string
	ScannerName string
	LogLevel    string
}

// Load reads configuration from an optional gateway.yaml in the working
// directory and from GVMGW_* environment variables (env wins).
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", ":8000")
	v.SetDefault("gvm_network", "unix")
	v.SetDefault("gvm_address", "/var/run/gvmd.sock")
	v.SetDefault("gvm_username", "admin")
	v.SetDefault("gvm_password", "admin")
	v.SetDefault("port_list_id", DefaultPortListID)
	v.SetDefault("config_name", DefaultConfigName)
	v.SetDefault("scanner_name", DefaultScannerName)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("GVMGW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("gateway")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		ListenAddr:  v.GetString("listen_addr"),
		GVMNetwork:  v.GetString("gvm_network"),
		GVMAddress:  v.GetString("gvm_address"),
		GVMUsername: v.GetString("gvm_username"),
		GVMPassword: v.GetString("gvm_password"),
		PortListID:  v.GetString("port_list_id"),
		ConfigName:  v.GetString("config_name"),
		ScannerName: v.GetString("scanner_name"),
		LogLevel:    v.GetString("log_level"),
	}, nil
}
