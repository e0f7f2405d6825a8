package mediakit

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"
)

// PitchRequest holds what goes into a brand pitch email
type PitchRequest struct {
	CreatorName    string          `json:"creatorName"`
	BrandName      string          `json:"brandName"`
	ContactName    string          `json:"contactName,omitempty"`
	Niche          string          `json:"niche,omitempty"`
	Platforms      []string        `json:"platforms,omitempty"`
	TotalAudience  decimal.Decimal `json:"totalAudience"`
	EngagementRate decimal.Decimal `json:"engagementRate"`
	Deliverable    string          `json:"deliverable,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Note           string          `json:"note,omitempty"`
}

//go:embed templates/pitch.txt.tmpl
var pitchTemplateSource string

var pitchTemplate = template.Must(template.New("pitch").Funcs(template.FuncMap{
	"count": groupThousands,
	"join":  strings.Join,
}).Parse(pitchTemplateSource))

// Pitch renders a brand pitch email
func Pitch(req PitchRequest) (string, error) {
	if strings.TrimSpace(req.CreatorName) == "" {
		return "", fmt.Errorf("creator name is required")
	}
	if strings.TrimSpace(req.BrandName) == "" {
		return "", fmt.Errorf("brand name is required")
	}

	deliverable := ""
	if req.Deliverable != "" {
		d, ok := LookupDeliverable(req.Deliverable)
		if !ok {
			return "", fmt.Errorf("unknown deliverable %q", req.Deliverable)
		}
		deliverable = d.Label
	}

	greeting := "Hi " + req.BrandName + " team"
	if req.ContactName != "" {
		greeting = "Hi " + req.ContactName
	}

	data := struct {
		PitchRequest
		Greeting        string
		DeliverableName string
		Engagement      string
	}{req, greeting, deliverable, req.EngagementRate.StringFixed(1)}

	var buf bytes.Buffer
	if err := pitchTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render pitch: %w", err)
	}
	return buf.String(), nil
}

// PitchFromKit fills a pitch request from a media kit. When a deliverable is named its
// rate card price is quoted.
func PitchFromKit(kit *MediaKit, brandName, contactName, deliverable string) PitchRequest {
	platforms := make([]string, len(kit.Stats))
	for i, s := range kit.Stats {
		platforms[i] = s.Name
	}
	req := PitchRequest{
		CreatorName:    kit.Profile.CreatorName,
		BrandName:      brandName,
		ContactName:    contactName,
		Niche:          kit.Niche.Name,
		Platforms:      platforms,
		TotalAudience:  kit.TotalAudience,
		EngagementRate: kit.EngagementRate,
		Deliverable:    deliverable,
	}
	for _, line := range kit.RateCard.Lines {
		if line.Deliverable.ID == deliverable {
			req.Price = line.Price
		}
	}
	return req
}
