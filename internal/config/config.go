package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	Telegram struct {
		Token         string
		AdminChatID   int64  `mapstructure:"admin_chat_id"`
		ManagerHandle string `mapstructure:"manager_handle"`
		ChannelURL    string `mapstructure:"channel_url"`
	} `mapstructure:"telegram"`

	Catalog struct {
		Path string
	} `mapstructure:"catalog"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`
}

func Load(path string) (Config, error) {
	// .env нужен только для локального запуска, его отсутствие — не ошибка
	_ = gotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	if c.Telegram.Token == "" {
		return c, fmt.Errorf("config: telegram.token is empty")
	}
	if c.Telegram.AdminChatID == 0 {
		return c, fmt.Errorf("config: telegram.admin_chat_id is empty")
	}
	if c.Catalog.Path == "" {
		c.Catalog.Path = "products.json"
	}
	return c, nil
}
