package config

import (
	"bufio"
	"os"
	"strings"
)

type ServerConfig struct {
	Port string
}

type StorageConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

type AuthConfig struct {
	Secret          string
	TokenTTLMinutes string
}

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Auth    AuthConfig
}

// LoadConfig reads a minimal yaml-style config file of `section:` blocks with
// `key: value` lines. Values of the form ${ENV_VAR:-default} are expanded
// against the environment.
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := &Config{}
	var section string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !strings.Contains(line, ":") {
			continue
		}

		if strings.HasSuffix(line, ":") {
			section = strings.TrimSuffix(line, ":")
			continue
		}

		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		val := expandEnv(strings.TrimSpace(parts[1]))

		switch section {
		case "server":
			if key == "port" {
				cfg.Server.Port = val
			}
		case "storage":
			switch key {
			case "driver":
				cfg.Storage.Driver = val
			case "path":
				cfg.Storage.Path = val
			case "host":
				cfg.Storage.Host = val
			case "db_port":
				cfg.Storage.Port = val
			case "user":
				cfg.Storage.User = val
			case "password":
				cfg.Storage.Password = val
			case "database":
				cfg.Storage.Database = val
			}
		case "auth":
			switch key {
			case "secret":
				cfg.Auth.Secret = val
			case "token_ttl_minutes":
				cfg.Auth.TokenTTLMinutes = val
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func expandEnv(val string) string {
	if !strings.HasPrefix(val, "${") || !strings.HasSuffix(val, "}") {
		return val
	}

	inside := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
	parts := strings.SplitN(inside, ":-", 2)

	envVar := parts[0]
	defVal := ""
	if len(parts) == 2 {
		defVal = parts[1]
	}

	if v, ok := os.LookupEnv(envVar); ok {
		return v
	}
	return defVal
}
