package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/diillson/ai-roi-playground/internal/adapter/driven/catalog"
	"github.com/diillson/ai-roi-playground/internal/adapter/driven/config"
	"github.com/diillson/ai-roi-playground/internal/adapter/driven/export"
	"github.com/diillson/ai-roi-playground/internal/adapter/driving/cli"
	"github.com/diillson/ai-roi-playground/internal/application/usecase"
	"github.com/diillson/ai-roi-playground/internal/domain/repository"
	"github.com/diillson/ai-roi-playground/pkg/console"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(config.NewConfigRepository())

	// Catálogo embutido, estendido por arquivo quando informado
	loadCatalog := func(catalogFile string) (repository.CatalogRepository, error) {
		if catalogFile == "" {
			return catalog.NewCatalogRepository(), nil
		}
		return catalog.NewCatalogRepositoryFromFile(catalogFile)
	}

	calculatorUseCase := usecase.NewCalculatorUseCase(
		loadCatalog,
		export.NewExportRepository(),
		console.NewConsole(),
		console.NewPrompter(),
	)
	app.SetCalculatorUseCase(calculatorUseCase)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
