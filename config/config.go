package config

import (
	"errors"
	"strconv"

	"nexo/interfaces"

	"github.com/spf13/viper"
)

// Config contiene toda la configuración del bot. El token es lo único
// obligatorio y se lee siempre del entorno; el resto viene de config.yaml
// con valores por defecto razonables.
type Config struct {
	Discord struct {
		Token string `mapstructure:"token"`
	} `mapstructure:"discord"`
	Data struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"data"`
	Web struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"web"`
	Levels struct {
		XPPerMessage  int               `mapstructure:"xp_per_message"`
		ThresholdStep int               `mapstructure:"threshold_step"`
		Roles         map[string]string `mapstructure:"roles"` // nivel -> ID de rol
	} `mapstructure:"levels"`
	Moderation struct {
		MuteRoleName       string `mapstructure:"mute_role_name"`
		DefaultMuteMinutes int    `mapstructure:"default_mute_minutes"`
	} `mapstructure:"moderation"`
	Tickets struct {
		SupportCategoryName   string   `mapstructure:"support_category_name"`
		MiddlemanCategoryName string   `mapstructure:"middleman_category_name"`
		SupportRoles          []string `mapstructure:"support_roles"`
		ChiefRole             string   `mapstructure:"chief_role"`
		Tiers                 []string `mapstructure:"tiers"`
		StaffRoles            []string `mapstructure:"staff_roles"`
	} `mapstructure:"tickets"`
	Welcome struct {
		ChannelHints []string `mapstructure:"channel_hints"`
	} `mapstructure:"welcome"`
}

var Cfg *Config

// RoleForLevel devuelve el ID del rol asociado a un nivel, o "" si ese
// nivel no tiene rol configurado.
func (c *Config) RoleForLevel(level int) string {
	return c.Levels.Roles[strconv.Itoa(level)]
}

// Load lee config.yaml (opcional) y el token desde DISCORD_TOKEN.
func Load(log interfaces.Logger) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("data.dir", "data")
	viper.SetDefault("web.addr", ":8080")
	viper.SetDefault("levels.xp_per_message", 5)
	viper.SetDefault("levels.threshold_step", 100)
	viper.SetDefault("moderation.mute_role_name", "Muted")
	viper.SetDefault("moderation.default_mute_minutes", 60)
	viper.SetDefault("tickets.support_category_name", "Tickets")
	viper.SetDefault("tickets.middleman_category_name", "Middleman")
	viper.SetDefault("tickets.support_roles", []string{"Helper", "Moderador", "Admin"})
	viper.SetDefault("tickets.chief_role", "MM Jefe")
	viper.SetDefault("tickets.tiers", []string{"Bajo", "Medio", "Alto", "Jefe"})
	viper.SetDefault("tickets.staff_roles", []string{"Helper", "Moderador", "Admin", "MM Bajo", "MM Medio", "MM Alto", "MM Jefe"})
	viper.SetDefault("welcome.channel_hints", []string{"bienvenida", "welcome"})

	if err := viper.BindEnv("discord.token", "DISCORD_TOKEN"); err != nil {
		return err
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		log.Warn("config.yaml no encontrado, usando valores por defecto")
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		return err
	}

	if Cfg.Discord.Token == "" {
		return errors.New("falta el token del bot: define la variable de entorno DISCORD_TOKEN")
	}

	log.Info("configuración cargada", "data_dir", Cfg.Data.Dir)
	return nil
}
