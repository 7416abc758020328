package infra

// pdf.go — dealer statement export using go-pdf/fpdf.
// Renders an A4 statement with the dealer's onboarding record, exposure
// figures, and a table of their loans. Output is written to
// storagePath/statement_{dealerCode}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"dealerdesk/internal/model"
)

// GenerateDealerStatement writes a statement PDF for the dealer and returns
// the absolute path of the generated file. storagePath is created if needed.
func GenerateDealerStatement(dealer *model.Dealer, loans []model.Loan, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("statement_%s.pdf", dealer.DealerCode)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 28

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Dealer Statement", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("%s  ·  %s", dealer.Name, dealer.DealerCode), "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.Line(14, pdf.GetY(), pageW-14, pdf.GetY())
	pdf.Ln(4)

	// ── Record fields ────────────────────────────────────────────────────────
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(50, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW-50, 6, value, "", 1, "L", false, 0, "")
	}
	row("PAN", dealer.PAN)
	row("Entity type", dealer.EntityType)
	row("Location", dealer.Location)
	row("Relationship manager", dealer.RelationshipManager)
	row("Status", dealer.Status)
	row("Sanction amount", money(dealer.SanctionAmount))
	row("Outstanding amount", money(dealer.OutstandingAmount))
	row("Available limit", money(dealer.AvailableLimit))
	row("Utilization", dealer.UtilizationPercentage.StringFixed(2)+" %")
	pdf.Ln(4)

	// ── Loan table ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, fmt.Sprintf("Loans (%d)", len(loans)), "", 1, "L", false, 0, "")

	col := []float64{contentW * 0.22, contentW * 0.20, contentW * 0.22, contentW * 0.20, contentW * 0.16}
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col[0], 6, "Loan number", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col[1], 6, "Withdrawn", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col[2], 6, "Amount", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col[3], 6, "Due date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col[4], 6, "Status", "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	total := decimal.Zero
	for _, loan := range loans {
		status := "closed"
		if loan.IsActive {
			status = "active"
		}
		pdf.CellFormat(col[0], 6, loan.LoanNumber, "", 0, "L", false, 0, "")
		pdf.CellFormat(col[1], 6, shortDate(loan.DateOfWithdraw), "", 0, "L", false, 0, "")
		pdf.CellFormat(col[2], 6, money(loan.Amount), "", 0, "R", false, 0, "")
		pdf.CellFormat(col[3], 6, shortDate(loan.DueDate), "", 0, "L", false, 0, "")
		pdf.CellFormat(col[4], 6, status, "", 1, "L", false, 0, "")
		total = total.Add(loan.Amount)
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col[0]+col[1], 6, "Total financed:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col[2], 6, money(total), "T", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

// shortDate trims upstream timestamps to their date part.
func shortDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
