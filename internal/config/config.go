package config

type Config interface {
	EnvConfig
	CorsConfig
	OAuthConfig
	CookieConfig
}

type mainConfig struct {
	EnvVars
	Cors
	OAuth
	Cookies
}

func New() Config {
	return mainConfig{}
}
