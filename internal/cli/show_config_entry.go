package gallery

import (
	"os"

	"github.com/mwiater/gallery/internal/appconfig"
	"github.com/spf13/viper"
)

func runShowConfig() {
	var fallback appconfig.Config
	_ = viper.Unmarshal(&fallback)
	appconfig.ShowConfig(os.Stdout, viper.ConfigFileUsed(), getConfig(), fallback)
}
