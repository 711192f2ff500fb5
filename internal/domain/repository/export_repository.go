package repository

import (
	"github.com/diillson/aws-sso-launcher-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(dir *entity.Directory, filename string, outputDir string) (string, error)
	ExportToJSON(dir *entity.Directory, validation entity.ValidationResult, filename string, outputDir string) (string, error)
	ExportToPDF(dir *entity.Directory, validation entity.ValidationResult, filename string, outputDir string) (string, error)
}
