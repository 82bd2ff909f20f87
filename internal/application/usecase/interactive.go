package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/diillson/ai-roi-playground/internal/domain/entity"
	"github.com/diillson/ai-roi-playground/internal/shared/types"
)

// Prompter asks the user for input in interactive mode.
type Prompter interface {
	Select(title string, options []string, defaultOption string) (string, error)
	Confirm(title string, defaultValue bool) (bool, error)
	Input(title, defaultValue string) (string, error)
}

const (
	actionOrganization = "Change organization"
	actionHorizon      = "Change horizon"
	actionUplift       = "Toggle revenue uplift"
	actionAIShare      = "Set % of tech budget to AI"
	actionROI          = "Set ROI ($ saved per $AI)"
	actionExport       = "Export report"
	actionQuit         = "Quit"
)

var interactiveActions = []string{
	actionOrganization,
	actionHorizon,
	actionUplift,
	actionAIShare,
	actionROI,
	actionExport,
	actionQuit,
}

// RunInteractive lets the user edit the session until they quit. The projection is
// recomputed and rendered again after every change.
func (uc *CalculatorUseCase) RunInteractive(ctx context.Context, session *Session, args *types.CLIArgs) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		action, err := uc.prompter.Select("What would you like to change?", interactiveActions, actionQuit)
		if err != nil {
			return err
		}

		changed, err := uc.handleAction(ctx, session, args, action)
		if err != nil {
			return err
		}
		if action == actionQuit {
			return nil
		}
		if changed {
			uc.RenderSession(session)
		}
	}
}

func (uc *CalculatorUseCase) handleAction(ctx context.Context, session *Session, args *types.CLIArgs, action string) (bool, error) {
	params := session.Parameters()

	switch action {
	case actionOrganization:
		orgs := session.catalog.List()
		options := make([]string, len(orgs))
		current := ""
		for i, org := range orgs {
			options[i] = organizationOption(org)
			if org.ID == session.Organization().ID {
				current = options[i]
			}
		}
		choice, err := uc.prompter.Select("Bank", options, current)
		if err != nil {
			return false, err
		}
		for _, org := range orgs {
			if organizationOption(org) == choice {
				return true, session.SelectOrganization(org.ID)
			}
		}
		uc.console.LogWarning("Unknown organization '%s'", choice)
		return false, nil

	case actionHorizon:
		choice, err := uc.prompter.Select("Horizon (yrs)", []string{"3", "5"}, strconv.Itoa(int(params.HorizonYears)))
		if err != nil {
			return false, err
		}
		years, _ := strconv.Atoi(choice)
		if err := session.SetHorizon(years); err != nil {
			uc.console.LogWarning("%v", err)
			return false, nil
		}
		return true, nil

	case actionUplift:
		on, err := uc.prompter.Confirm("Include revenue uplift (+0.3 % / yr)?", params.IncludeRevenueUplift)
		if err != nil {
			return false, err
		}
		session.SetRevenueUplift(on)
		return true, nil

	case actionAIShare:
		raw, err := uc.prompter.Input("% of tech budget to AI (0-50)", strconv.FormatFloat(params.AISharePct*100, 'f', -1, 64))
		if err != nil {
			return false, err
		}
		pct, err := ParsePercent(raw)
		if err != nil {
			uc.console.LogWarning("%v", err)
			return false, nil
		}
		session.SetAIShare(pct)
		return true, nil

	case actionROI:
		raw, err := uc.prompter.Input("ROI ($ saved per $AI, 0.20-1.50)", strconv.FormatFloat(params.ROIPerUnit, 'f', 2, 64))
		if err != nil {
			return false, err
		}
		roi, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			uc.console.LogWarning("'%s' is not a number", raw)
			return false, nil
		}
		session.SetROIPerUnit(roi)
		return true, nil

	case actionExport:
		defaults := args.ReportType
		if len(defaults) == 0 {
			defaults = []string{"pdf"}
		}
		raw, err := uc.prompter.Input("Report types (csv, json, pdf, md, html)", strings.Join(defaults, ","))
		if err != nil {
			return false, err
		}
		exportArgs := *args
		exportArgs.ReportType = splitList(raw)
		report := uc.BuildReport(session.Organization(), session.Parameters(), session.Result())
		return false, uc.ExportReports(ctx, []entity.ProjectionReport{report}, &exportArgs, "ai-roi-"+session.Organization().ID)

	case actionQuit:
		return false, nil
	}

	uc.console.LogWarning("Unknown action '%s'", action)
	return false, nil
}

func organizationOption(org entity.OrganizationProfile) string {
	return fmt.Sprintf("%s (%s)", org.DisplayName, org.ID)
}

// ParsePercent parses a whole-percent value such as "25", "25%" or "12.5 %" into a fraction.
func ParsePercent(raw string) (float64, error) {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("'%s' is not a percentage", raw)
	}
	return v / 100, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
