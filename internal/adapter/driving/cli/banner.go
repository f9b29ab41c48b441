package cli

import (
	"fmt"

	"github.com/diillson/aws-dashboard-go/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         ___        ______    ____            _     _                         _
        / \ \      / / ___|  |  _ \  __ _ ___| |__ | |__   ___   __ _ _ __ __| |
       / _ \ \ /\ / /\___ \  | | | |/ _` + "`" + ` / __| '_ \| '_ \ / _ \ / _` + "`" + ` | '__/ _` + "`" + ` |
      / ___ \ V  V /  ___) | | |_| | (_| \__ \ | | | |_) | (_) | (_| | | | (_| |
     /_/   \_\_/\_/  |____/  |____/ \__,_|___/_| |_|_.__/ \___/ \__,_|_|  \__,_|
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("AWS Dashboard API (v%s)", formattedVersion)))
}
