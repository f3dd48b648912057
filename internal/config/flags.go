package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs and returns the config
// they populate. The returned value is only meaningful after fs has been
// parsed; pass it to [GetClientConfig] as overrides.
//
// Flags:
//
//	-f/--file vault file path
//	-c/--config json file path with configs
//	--keyring-service keyring service name
//	--keyring-user keyring account (defaults to the OS user)
//	--clipboard-window how long copied secrets stay in the clipboard (e.g. "10s")
//	--log-file log file path
//	--log-level log level (debug, info, warn, error)
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Vault.FilePath, "file", "f", "", "Vault file path (overrides VIKEYPASS_FILE)")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.Keyring.Service, "keyring-service", "", "Keyring service name")
	fs.StringVar(&cfg.Keyring.User, "keyring-user", "", "Keyring account (defaults to the OS user)")
	fs.DurationVar(&cfg.Clipboard.Window, "clipboard-window", 0, "How long copied secrets stay in the clipboard (e.g. 10s)")
	fs.StringVar(&cfg.Log.Path, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")

	return cfg
}

// BindServerFlags registers flags that only the query endpoint uses.
func BindServerFlags(fs *pflag.FlagSet, cfg *StructuredConfig) {
	fs.StringVarP(&cfg.Server.Address, "address", "a", "", "Loopback address host:port to listen on")
}
