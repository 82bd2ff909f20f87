package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile    string
	CatalogFile   string
	Organization  string
	AIShare       *float64
	ROIPerUnit    *float64
	Horizon       int
	RevenueUplift bool
	List          bool
	Compare       bool
	Interactive   bool
	ReportName    string
	ReportType    []string
	Dir           string
	NoBanner      bool
}
