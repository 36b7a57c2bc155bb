package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/kuzanag1/strandly-backend/internal/platform/logger"
	"github.com/kuzanag1/strandly-backend/internal/platform/resend"
	"github.com/kuzanag1/strandly-backend/internal/recommend"
)

// DeliveryService renders an analysis result into the report email and sends
// it to the payer.
type DeliveryService interface {
	SendReport(ctx context.Context, to string, result AnalysisResult) error
}

type deliveryService struct {
	log    *logger.Logger
	resend resend.Client
}

func NewDeliveryService(log *logger.Logger, rc resend.Client) DeliveryService {
	return &deliveryService{
		log:    log.With("service", "DeliveryService"),
		resend: rc,
	}
}

func (s *deliveryService) SendReport(ctx context.Context, to string, result AnalysisResult) error {
	if s.resend == nil {
		return fmt.Errorf("email delivery unavailable")
	}
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("recipient email required")
	}

	res, err := s.resend.Send(ctx, resend.SendEmailRequest{
		To:      []string{to},
		Subject: "Your Personalized Hair Analysis Results",
		Text:    renderReportText(result),
		HTML:    renderReportHTML(result),
	})
	if err != nil {
		return fmt.Errorf("send report email: %w", err)
	}

	s.log.Info("Report email sent", "email", to, "message_id", res.ID)
	return nil
}

var categoryTitles = []struct {
	title string
	pick  func(recommend.Bundle) recommend.CategoryResult
}{
	{"Cleansing", func(b recommend.Bundle) recommend.CategoryResult { return b.Cleansing }},
	{"Conditioning", func(b recommend.Bundle) recommend.CategoryResult { return b.Conditioning }},
	{"Styling", func(b recommend.Bundle) recommend.CategoryResult { return b.Styling }},
	{"Treatments", func(b recommend.Bundle) recommend.CategoryResult { return b.Treatments }},
}

func renderReportText(result AnalysisResult) string {
	var b strings.Builder
	p := result.Profile

	b.WriteString("Your Personalized Hair Analysis\n")
	b.WriteString("================================\n\n")

	b.WriteString("Hair Profile\n")
	fmt.Fprintf(&b, "  Texture: %s (pattern %s)\n", p.Texture, p.CurlPattern)
	fmt.Fprintf(&b, "  Thickness: %s\n", p.Thickness)
	fmt.Fprintf(&b, "  Porosity: %s\n", p.Porosity)
	scalp := make([]string, 0, len(p.ScalpTypes))
	for _, st := range p.ScalpTypes {
		scalp = append(scalp, string(st))
	}
	fmt.Fprintf(&b, "  Scalp: %s\n\n", strings.Join(scalp, ", "))

	fmt.Fprintf(&b, "Damage Assessment: %s (score %d)\n", result.Damage.Level, result.Damage.Score)
	if len(result.Damage.ContributingFactors) > 0 {
		b.WriteString("  Contributing factors:\n")
		for _, f := range result.Damage.ContributingFactors {
			fmt.Fprintf(&b, "    - %s\n", strings.ReplaceAll(string(f), "_", " "))
		}
	}
	b.WriteString("\n")

	b.WriteString("Recommended Products\n")
	for _, cat := range categoryTitles {
		cr := cat.pick(result.Bundle)
		fmt.Fprintf(&b, "\n%s:\n", cat.title)
		if cr.InsufficientCatalogCoverage {
			b.WriteString("  No suitable match in our current catalog for your profile.\n")
			b.WriteString("  We recommend consulting a professional for this category.\n")
			continue
		}
		for _, prod := range cr.Products {
			fmt.Fprintf(&b, "  - %s by %s ($%.0f-$%.0f, %.1f stars)\n",
				prod.Name, prod.Brand, prod.PriceMin, prod.PriceMax, prod.Rating)
		}
	}
	b.WriteString("\n")

	r := result.Bundle.Routine
	b.WriteString("Your Routine\n")
	fmt.Fprintf(&b, "  Wash frequency: %s\n", r.WashFrequency)
	writeCadence(&b, "Daily", r.Daily)
	writeCadence(&b, "Weekly", r.Weekly)
	writeCadence(&b, "Monthly", r.Monthly)
	b.WriteString("\n")

	if len(result.Bundle.SafetyWarnings) > 0 {
		b.WriteString("Things To Watch\n")
		for _, w := range result.Bundle.SafetyWarnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
		b.WriteString("\n")
	}

	for _, flag := range result.Bundle.InteractionFlags {
		fmt.Fprintf(&b, "Note: %s\n", flag.Warning)
		if len(flag.Signs) > 0 {
			fmt.Fprintf(&b, "  Signs: %s\n", strings.Join(flag.Signs, "; "))
		}
		if flag.Solution != "" {
			fmt.Fprintf(&b, "  What to do: %s\n", flag.Solution)
		}
		b.WriteString("\n")
	}

	c := result.Confidence
	fmt.Fprintf(&b, "Assessment Confidence: %d%%\n", c.OverallScore)
	fmt.Fprintf(&b, "%s\n", c.Interpretation)
	if len(c.ConsultationTriggers) > 0 {
		b.WriteString("\nProfessional Consultation Recommended\n")
		for _, t := range c.ConsultationTriggers {
			fmt.Fprintf(&b, "  - %s\n    See: %s (%s)\n", t.Reason, t.Professional, t.Urgency)
		}
	}

	b.WriteString("\n--\nStrandly Hair Analysis\nhttps://www.strandly.shop\n")
	return b.String()
}

func writeCadence(b *strings.Builder, label string, steps []string) {
	if len(steps) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s:\n", label)
	for _, s := range steps {
		fmt.Fprintf(b, "    - %s\n", s)
	}
}

func renderReportHTML(result AnalysisResult) string {
	var b strings.Builder
	p := result.Profile
	esc := html.EscapeString

	b.WriteString(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;color:#333">`)
	b.WriteString(`<h1 style="color:#6b4e9e">Your Personalized Hair Analysis</h1>`)

	b.WriteString(`<h2>Hair Profile</h2><ul>`)
	fmt.Fprintf(&b, "<li><b>Texture:</b> %s (pattern %s)</li>", esc(string(p.Texture)), esc(p.CurlPattern))
	fmt.Fprintf(&b, "<li><b>Thickness:</b> %s</li>", esc(string(p.Thickness)))
	fmt.Fprintf(&b, "<li><b>Porosity:</b> %s</li>", esc(string(p.Porosity)))
	b.WriteString("</ul>")

	fmt.Fprintf(&b, "<h2>Damage Assessment</h2><p><b>%s</b> (score %d)</p>",
		esc(string(result.Damage.Level)), result.Damage.Score)

	b.WriteString("<h2>Recommended Products</h2>")
	for _, cat := range categoryTitles {
		cr := cat.pick(result.Bundle)
		fmt.Fprintf(&b, "<h3>%s</h3>", cat.title)
		if cr.InsufficientCatalogCoverage {
			b.WriteString("<p><i>No suitable match in our current catalog for your profile. We recommend consulting a professional for this category.</i></p>")
			continue
		}
		b.WriteString("<ul>")
		for _, prod := range cr.Products {
			fmt.Fprintf(&b, "<li><b>%s</b> by %s &mdash; $%.0f-$%.0f, %.1f stars</li>",
				esc(prod.Name), esc(prod.Brand), prod.PriceMin, prod.PriceMax, prod.Rating)
		}
		b.WriteString("</ul>")
	}

	r := result.Bundle.Routine
	b.WriteString("<h2>Your Routine</h2>")
	fmt.Fprintf(&b, "<p><b>Wash frequency:</b> %s</p>", esc(r.WashFrequency))
	writeCadenceHTML(&b, "Daily", r.Daily)
	writeCadenceHTML(&b, "Weekly", r.Weekly)
	writeCadenceHTML(&b, "Monthly", r.Monthly)

	if len(result.Bundle.SafetyWarnings) > 0 {
		b.WriteString("<h2>Things To Watch</h2><ul>")
		for _, w := range result.Bundle.SafetyWarnings {
			fmt.Fprintf(&b, "<li>%s</li>", esc(w))
		}
		b.WriteString("</ul>")
	}

	for _, flag := range result.Bundle.InteractionFlags {
		fmt.Fprintf(&b, `<p style="background:#fff3cd;padding:10px;border-radius:4px"><b>Note:</b> %s`, esc(flag.Warning))
		if flag.Solution != "" {
			fmt.Fprintf(&b, "<br><b>What to do:</b> %s", esc(flag.Solution))
		}
		b.WriteString("</p>")
	}

	c := result.Confidence
	fmt.Fprintf(&b, "<h2>Assessment Confidence: %d%%</h2><p>%s</p>", c.OverallScore, esc(c.Interpretation))
	if len(c.ConsultationTriggers) > 0 {
		b.WriteString("<h3>Professional Consultation Recommended</h3><ul>")
		for _, t := range c.ConsultationTriggers {
			fmt.Fprintf(&b, "<li>%s &mdash; see: %s (%s)</li>", esc(t.Reason), esc(t.Professional), esc(t.Urgency))
		}
		b.WriteString("</ul>")
	}

	b.WriteString(`<hr><p style="color:#888;font-size:12px">Strandly Hair Analysis &middot; <a href="https://www.strandly.shop">strandly.shop</a></p></div>`)
	return b.String()
}

func writeCadenceHTML(b *strings.Builder, label string, steps []string) {
	if len(steps) == 0 {
		return
	}
	fmt.Fprintf(b, "<p><b>%s:</b></p><ul>", label)
	for _, s := range steps {
		fmt.Fprintf(b, "<li>%s</li>", html.EscapeString(s))
	}
	b.WriteString("</ul>")
}
