package documents

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"rera_quotation/internal/domain/entities"
	"rera_quotation/internal/usecase/interfaces"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PDFRenderer builds the client-facing quotation document with maroto/v2:
// header, priced service table, totals, approval history and terms.
type PDFRenderer struct{}

var _ interfaces.IDocumentRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) RenderQuotation(ctx context.Context, q entities.Quotation, history []entities.ApprovalRecord) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, q)
	addServiceTableHeader(m)
	for i, line := range q.Pricing.Services {
		addServiceRow(m, i+1, line)
	}
	addTotals(m, q.Pricing)
	if len(history) > 0 {
		addApprovalHistory(m, history)
	}
	addTerms(m, q)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addHeader(m core.Maroto, q entities.Quotation) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("RERA Consultancy Quotation", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	meta := props.Text{
		Size:  9,
		Align: align.Left,
		Color: &props.Color{Red: 80, Green: 80, Blue: 80},
	}
	metaRight := meta
	metaRight.Align = align.Right

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Quotation: %s", q.Number), meta),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Date: %s", q.CreatedAt.Format("02 Jan 2006")), metaRight),
			),
		),
		row.New(7).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Project: %s", q.ProjectName), meta),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Status: %s", q.Status), metaRight),
			),
		),
		row.New(7).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Client: %s", q.ClientName), meta),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Location: %s", q.ProjectLocation), metaRight),
			),
		),
		row.New(4),
	)
}

func addServiceTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Service", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("List Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Discount", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Final Price", headerText)).WithStyle(&headerCell),
		),
	)
}

func addServiceRow(m core.Maroto, index int, line entities.ServicePricing) {
	baseText := props.Text{Size: 8, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	discount := "-"
	if line.DiscountAmount != 0 {
		discount = fmt.Sprintf("%s (%.1f%%)", formatINR(line.DiscountAmount), line.DiscountPercentage)
	}

	name := line.ServiceName
	if line.DiscountReason != "" {
		name = fmt.Sprintf("%s\n%s", line.ServiceName, line.DiscountReason)
	}

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(index), baseText)),
			col.New(4).Add(text.New(name, leftText)),
			col.New(2).Add(text.New(formatINR(line.CalculatedPrice), rightText)),
			col.New(2).Add(text.New(discount, rightText)),
			col.New(3).Add(text.New(formatINR(line.FinalPrice), rightText)),
		),
	)
}

func addTotals(m core.Maroto, p entities.QuotationPricing) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}
	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := labelStyle

	addSummaryRow := func(label, value string) {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(value, valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	addSummaryRow("Subtotal", formatINR(p.Subtotal))
	if p.TotalDiscountAmount > 0 {
		addSummaryRow(fmt.Sprintf("Discount (%.1f%%)", p.TotalDiscountPercentage), "-"+formatINR(p.TotalDiscountAmount))
	}
	addSummaryRow("Total", formatINR(p.FinalTotal))
	addSummaryRow("Payable (rounded)", formatINR(p.RoundedTotal))
}

func addApprovalHistory(m core.Maroto, history []entities.ApprovalRecord) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Approval History", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}),
			),
		),
	)

	entryText := props.Text{Size: 8, Align: align.Left, Color: &props.Color{Red: 60, Green: 60, Blue: 60}}
	for _, rec := range history {
		entry := fmt.Sprintf("%s - %s by %s (required level: %s)",
			rec.DecidedAt.Format("02 Jan 2006 15:04"), rec.Decision, rec.ApproverName, rec.RequiredLevel)
		if rec.Comments != "" {
			entry += fmt.Sprintf(" - %q", rec.Comments)
		}
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New(entry, entryText)),
			),
		)
	}
}

func addTerms(m core.Maroto, q entities.Quotation) {
	m.AddRows(row.New(8))

	terms := []string{
		"This quotation is valid for 30 days from the date of issue.",
		"Prices are exclusive of applicable taxes and statutory fees.",
		"Regulatory filing fees charged by the authority are billed at actuals.",
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New("Terms & Conditions", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}),
			),
		),
	)
	termText := props.Text{Size: 7, Align: align.Left, Color: &props.Color{Red: 100, Green: 100, Blue: 100}}
	for _, t := range terms {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(text.New("- "+t, termText)),
			),
		)
	}

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Generated on %s", time.Now().Format("02 Jan 2006")), props.Text{
					Size:  7,
					Align: align.Right,
					Color: &props.Color{Red: 140, Green: 140, Blue: 140},
				}),
			),
		),
	)
}

// formatINR renders a whole-rupee amount with Indian digit grouping: the
// rightmost 3 digits form the first group, then pairs.
func formatINR(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := strconv.FormatInt(amount, 10)
	n := len(s)
	if n > 3 {
		grouped := s[n-3:]
		remaining := s[:n-3]
		for len(remaining) > 2 {
			grouped = remaining[len(remaining)-2:] + "," + grouped
			remaining = remaining[:len(remaining)-2]
		}
		if len(remaining) > 0 {
			grouped = remaining + "," + grouped
		}
		s = grouped
	}

	result := "INR " + s
	if negative {
		result = "-" + result
	}
	return result
}
