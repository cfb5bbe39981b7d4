package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/prazo-calc/internal/deadline"
	"github.com/username/prazo-calc/internal/report"
	"github.com/username/prazo-calc/pkg/dateutil"
	"go.uber.org/zap"
)

func calcCmd() *cobra.Command {
	var (
		dateStr string
		typeStr string
		days    int
		recess  bool
		format  string
		pdfPath string
		pdfDir  string
		export  bool
		office  string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calcula o vencimento de um prazo em dias úteis",
		Example: "  prazo-calc calc --date 15/11/2024 --type availability --days 15\n" +
			"  prazo-calc calc --date 2024-12-10 --type publication --days 10 --recess --pdf-dir ./out",
		RunE: func(cmd *cobra.Command, args []string) error {
			trigger := deadline.DateOf(dateutil.Today())
			if dateStr != "" {
				var err error
				if trigger, err = deadline.ParseDate(dateStr); err != nil {
					return err
				}
			}

			triggerType, err := deadline.ParseTriggerType(typeStr)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("days") {
				days = cfg.Deadline.DefaultBusinessDays
			}
			if !cmd.Flags().Changed("recess") {
				recess = cfg.Deadline.RecessEnabled
			}
			if !cmd.Flags().Changed("office") {
				office = cfg.Report.Office
			}

			engine, _, err := initializeEngine(cfg)
			if err != nil {
				return err
			}

			res, err := engine.Calculate(cmd.Context(), deadline.Request{
				TriggerDate:   trigger,
				TriggerType:   triggerType,
				BusinessDays:  days,
				RecessEnabled: recess,
			})
			if err != nil {
				return fmt.Errorf("calculation failed: %w", err)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				err = report.WriteText(out, res)
			case "json":
				err = report.WriteJSON(out, res)
			default:
				return fmt.Errorf("unknown output format: %s (use text or json)", format)
			}
			if err != nil {
				return err
			}

			if export && pdfDir == "" {
				pdfDir = cfg.Report.OutputDir
			}
			if pdfPath == "" && pdfDir != "" {
				pdfPath = filepath.Join(pdfDir, report.FileName(office, res.DueDate))
			}
			if pdfPath != "" {
				if err := savePDF(pdfPath, res, office); err != nil {
					return err
				}
				logger.Info("PDF report saved", zap.String("path", pdfPath))
				if format == "text" {
					fmt.Fprintf(out, "\n📄 PDF salvo em %s\n", pdfPath)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "Trigger date: YYYY-MM-DD or DD/MM/YYYY (default: today)")
	cmd.Flags().StringVarP(&typeStr, "type", "t", "availability", "Trigger type: availability (DJEN) or publication")
	cmd.Flags().IntVarP(&days, "days", "n", 15, "Deadline length in business days (default from config)")
	cmd.Flags().BoolVar(&recess, "recess", false, "Suspend counting during the forensic recess, 20/12 to 20/01 (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or json")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Write a PDF report to this file")
	cmd.Flags().StringVar(&pdfDir, "pdf-dir", "", "Write a PDF report with the default file name into this directory")
	cmd.Flags().BoolVar(&export, "export", false, "Write a PDF report with the default file name into report.output_dir")
	cmd.Flags().StringVar(&office, "office", "", "Office name printed on the PDF (default from config)")

	return cmd
}

func savePDF(path string, res *deadline.Result, office string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create pdf directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create pdf file: %w", err)
	}
	defer f.Close()

	err = report.WritePDF(f, res, report.PDFOptions{
		Office:      office,
		Credit:      cfg.Report.Footer,
		GeneratedAt: time.Now(),
	})
	if err != nil {
		return err
	}
	return f.Close()
}
