package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/diillson/aws-sso-launcher-go/internal/domain/entity"
	"github.com/diillson/aws-sso-launcher-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV grava o diretório resolvido como uma linha por conta, na ordem
// de exibição (grupos na ordem de primeira aparição).
func (r *ExportRepositoryImpl) ExportToCSV(dir *entity.Directory, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Group", "Alias", "AWS Account ID", "Organization",
		"Effective Role", "Effective Region", "SSO Base URL", "Alt Roles",
	}
	writer.Write(headers)

	for _, group := range dir.GroupsInOrder() {
		for _, account := range group.Accounts {
			ssoBaseURL := ""
			altRoles := ""
			if org := dir.OrganizationFor(account); org != nil {
				ssoBaseURL = org.SSOBaseURL
				altRoles = strings.Join(org.AltRoles, ", ")
			}

			record := []string{
				group.Name,
				account.Alias,
				account.AccountID,
				account.Organization,
				account.EffectiveRoleName,
				account.EffectiveRegion,
				ssoBaseURL,
				altRoles,
			}
			writer.Write(record)
		}
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON grava o diretório resolvido e o resultado da validação como
// um único documento serializável.
func (r *ExportRepositoryImpl) ExportToJSON(dir *entity.Directory, validation entity.ValidationResult, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	document := struct {
		Directory  *entity.Directory       `json:"directory"`
		Validation entity.ValidationResult `json:"validation"`
	}{dir, validation}

	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling directory to JSON: %w", err)
	}

	if err := os.WriteFile(outputFilename, data, 0644); err != nil {
		return "", fmt.Errorf("error writing JSON file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF grava um relatório legível: uma página por grupo, mais uma
// página final com erros e avisos de validação.
func (r *ExportRepositoryImpl) ExportToPDF(dir *entity.Directory, validation entity.ValidationResult, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawGroupHeader := func(title string) {
		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", title)), "", 1, "L", true, 0, "")
		pdf.Ln(4)
	}

	drawAccount := func(account *entity.Account, org *entity.Organization) {
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 7, tr(account.Alias), "", 1, "L", false, 0, "")

		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Account ID: %s", account.AccountID)), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Organization: %s    Role: %s    Region: %s",
			account.Organization, account.EffectiveRoleName, account.EffectiveRegion)), "", 1, "L", false, 0, "")
		if org != nil && org.SSOBaseURL != "" {
			pdf.CellFormat(0, 6, tr(fmt.Sprintf("SSO: %s", org.SSOBaseURL)), "", 1, "L", false, 0, "")
		}

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY()+1, pdf.GetX()+190, pdf.GetY()+1)
		pdf.Ln(4)
	}

	for _, group := range dir.GroupsInOrder() {
		pdf.AddPage()
		drawGroupHeader(group.Name)
		for _, account := range group.Accounts {
			drawAccount(account, dir.OrganizationFor(account))
		}
	}

	pdf.AddPage()
	drawGroupHeader("Validation")
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.SetFont("Arial", "", 10)
	if validation.Valid {
		pdf.CellFormat(0, 6, tr("Configuration is valid."), "", 1, "L", false, 0, "")
	}
	for _, e := range validation.Errors {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("ERROR: %s", e)), "", 1, "L", false, 0, "")
	}
	for _, w := range validation.Warnings {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("WARNING: %s", w)), "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
