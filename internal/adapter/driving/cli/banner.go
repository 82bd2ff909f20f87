package cli

import (
	"fmt"

	"github.com/diillson/ai-roi-playground/pkg/version"
	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
           /$$$$$$  /$$$$$$       /$$$$$$$   /$$$$$$  /$$$$$$
          /$$__  $$|_  $$_/      | $$__  $$ /$$__  $$|_  $$_/
         | $$  \ $$  | $$        | $$  \ $$| $$  \ $$  | $$  
         | $$$$$$$$  | $$        | $$$$$$$/| $$  | $$  | $$  
         | $$__  $$  | $$        | $$__  $$| $$  | $$  | $$  
         | $$  | $$  | $$        | $$  \ $$| $$  | $$  | $$  
         | $$  | $$ /$$$$$$      | $$  | $$|  $$$$$$/ /$$$$$$
         |__/  |__/|______/      |__/  |__/ \______/ |______/
        `
	indigo := color.New(color.FgHiBlue, color.Bold).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()

	fmt.Println(indigo(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(green(fmt.Sprintf("Bank AI ROI Playground (v%s)", formattedVersion)))
}
