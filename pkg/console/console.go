package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/diillson/ai-roi-playground/internal/shared/types"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// chartWidth is the number of columns the terminal chart spans.
const chartWidth = 48

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightGreen  = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightIndigo = color.New(color.FgHiBlue, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

// Progress cria uma barra de progresso para os itens especificados.
func (c *Console) Progress(items []string) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(len(items)).
		WithTitle("Writing reports").
		WithShowCount(true).
		Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		h.bar.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplayPanel imprime o conteúdo dentro de uma caixa com título.
func (c *Console) DisplayPanel(title, content string) {
	panel := pterm.DefaultBox.
		WithTitle(title).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(content)
	fmt.Println("\n" + panel)
}

// DisplayProjectionChart draws the nominal and cumulative series as a horizontal chart,
// one row per year, with a vertical marker at the reference value (the AI spend).
func (c *Console) DisplayProjectionChart(series []types.ChartPoint, reference float64) {
	if len(series) == 0 {
		pterm.Warning.Println("Nothing to chart")
		return
	}

	tableData := pterm.TableData{
		{"Year", "Benefit", "Cumulative NPV", ""},
	}
	for i, row := range ChartRows(series, reference, chartWidth) {
		tableData = append(tableData, []string{
			series[i].Label,
			FormatBillionsPrecise(series[i].Nominal),
			FormatBillionsPrecise(series[i].Cumulative),
			colorizeChartRow(row),
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	legend := fmt.Sprintf("%s nominal benefit   %s cumulative discounted   %s AI spend (%s)",
		pterm.FgBlue.Sprint("█"), pterm.FgGreen.Sprint("◆"), pterm.FgYellow.Sprint("┆"), FormatBillions(reference))

	panel := pterm.DefaultBox.
		WithTitle("AI Benefit Projection").
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(renderedTable + "\n" + legend)

	fmt.Println("\n" + panel)
}

// ChartRows builds the uncolored chart cells. Every row has exactly width+1 runes: the
// nominal bar, the cumulative marker and the reference marker share one scale whose
// maximum is the largest value across both series and the reference.
func ChartRows(series []types.ChartPoint, reference float64, width int) []string {
	maxValue := finiteOrZero(reference)
	for _, p := range series {
		maxValue = math.Max(maxValue, finiteOrZero(p.Nominal))
		maxValue = math.Max(maxValue, finiteOrZero(p.Cumulative))
	}

	scale := func(v float64) int {
		if maxValue <= 0 {
			return 0
		}
		pos := int(math.Round(finiteOrZero(v) / maxValue * float64(width)))
		if pos < 0 {
			return 0
		}
		if pos > width {
			return width
		}
		return pos
	}

	rows := make([]string, len(series))
	for i, p := range series {
		cells := []rune(strings.Repeat(" ", width+1))
		for x := 0; x < scale(p.Nominal); x++ {
			cells[x] = '█'
		}
		if ref := scale(reference); reference > 0 && cells[ref] == ' ' {
			cells[ref] = '┆'
		}
		cells[scale(p.Cumulative)] = '◆'
		rows[i] = string(cells)
	}
	return rows
}

func colorizeChartRow(row string) string {
	var b strings.Builder
	for _, r := range row {
		switch r {
		case '█':
			b.WriteString(pterm.FgBlue.Sprint(string(r)))
		case '◆':
			b.WriteString(pterm.FgGreen.Sprint(string(r)))
		case '┆':
			b.WriteString(pterm.FgYellow.Sprint(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
