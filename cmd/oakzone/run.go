package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ldineshkumar-dev/oakzone/pkg/analysis"
	"github.com/ldineshkumar-dev/oakzone/pkg/validation"
	"github.com/ldineshkumar-dev/oakzone/pkg/valuation"
	"github.com/ldineshkumar-dev/oakzone/pkg/zoning"
)

// loadAndAudit loads the regulation tables and runs the startup audit.
func loadAndAudit(tablesDir string) (*zoning.Repository, *validation.Report, error) {
	repo, err := zoning.LoadProject(tablesDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading regulation tables: %w", err)
	}
	return repo, validation.ValidateTables(repo), nil
}

func runAnalyze(tablesDir, zoneCode string, lot lotFlags, asJSON bool) error {
	repo, tableReport, err := loadAndAudit(tablesDir)
	if err != nil {
		return err
	}
	if !tableReport.Valid {
		printValidationReport(tableReport)
		return fmt.Errorf("regulation tables have validation errors")
	}

	inputReport := validation.ValidateLotInput(zoneCode, lot.area, lot.frontage)
	if !inputReport.Valid {
		printValidationReport(inputReport)
		return fmt.Errorf("invalid analysis inputs")
	}

	potential := analysis.New(repo).Analyze(zoneCode, analysis.LotGeometry{
		Area:      lot.area,
		Frontage:  lot.frontage,
		Depth:     lot.depth,
		IsCorner:  lot.corner,
		HasGarage: lot.garage,
	}, lot.height)

	if asJSON {
		return encodeJSON(potential)
	}
	printPotentialReport(potential)
	if len(inputReport.Warnings) > 0 {
		fmt.Println()
		printValidationReport(inputReport)
	}
	return nil
}

func runZones(tablesDir, code string, asJSON bool) error {
	repo, _, err := loadAndAudit(tablesDir)
	if err != nil {
		return err
	}

	if code != "" {
		d := zoning.Parse(code)
		regs, err := repo.Resolve(d)
		if err != nil {
			return err
		}
		if asJSON {
			return encodeJSON(regs)
		}
		printZoneDetail(regs)
		return nil
	}

	zones := repo.Zones()
	if asJSON {
		return encodeJSON(zones)
	}
	printZoneTable(zones)
	return nil
}

func runValidate(tablesDir string) error {
	_, tableReport, err := loadAndAudit(tablesDir)
	if err != nil {
		return err
	}

	printValidationReport(tableReport)

	if !tableReport.Valid {
		os.Exit(1)
	}
	return nil
}

func runValue(tablesDir, zoneCode string, lot lotFlags, buildingArea float64, dwellingType string, ageYears int, asJSON bool) error {
	repo, tableReport, err := loadAndAudit(tablesDir)
	if err != nil {
		return err
	}
	if !tableReport.Valid {
		printValidationReport(tableReport)
		return fmt.Errorf("regulation tables have validation errors")
	}

	estimator := valuation.NewEstimator(repo)
	estimate := estimator.Value(valuation.Property{
		ZoneCode:     zoneCode,
		LotArea:      lot.area,
		BuildingArea: buildingArea,
		DwellingType: dwellingType,
		AgeYears:     ageYears,
		IsCorner:     lot.corner,
	})

	potential := analysis.New(repo).Analyze(zoneCode, analysis.LotGeometry{
		Area:      lot.area,
		Frontage:  lot.frontage,
		Depth:     lot.depth,
		IsCorner:  lot.corner,
		HasGarage: lot.garage,
	}, lot.height)
	proforma := estimator.Develop(potential, estimate.EstimatedValue)

	if asJSON {
		return encodeJSON(map[string]any{
			"estimate":              estimate,
			"development_potential": potential,
			"proforma":              proforma,
		})
	}
	printEstimateReport(estimate)
	fmt.Println()
	printProformaReport(proforma)
	return nil
}

func encodeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
