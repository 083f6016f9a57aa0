package dashboard

import (
	"github.com/kcherng/ledgerkit/internal/category"
	"github.com/kcherng/ledgerkit/internal/dashboard"
	"github.com/kcherng/ledgerkit/internal/ledger"
	"github.com/kcherng/ledgerkit/internal/report"
)

type categoryResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type categoryStatResponse struct {
	Category   categoryResponse `json:"category"`
	Amount     float64          `json:"amount"`
	Proportion float64          `json:"proportion"`
	Change     string           `json:"change"`
}

type chartSegmentResponse struct {
	Proportion float64 `json:"proportion"`
	ColorKey   string  `json:"color_key"`
}

type reportResponse struct {
	Type          ledger.Type            `json:"type"`
	Total         float64                `json:"total"`
	Change        string                 `json:"change"`
	CategoryStats []categoryStatResponse `json:"category_stats"`
	ChartSegments []chartSegmentResponse `json:"chart_segments"`
}

type billingRowResponse struct {
	Kind   string  `json:"kind"`
	Name   string  `json:"name"`
	Period string  `json:"period"`
	Amount float64 `json:"amount"`
}

type timelineItemResponse struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type categoryGroupResponse struct {
	ID            string                 `json:"id"`
	Category      categoryResponse       `json:"category"`
	Items         []timelineItemResponse `json:"items"`
	Total         float64                `json:"total"`
	ReceiptURLs   []string               `json:"receipt_urls,omitempty"`
	PaymentMethod string                 `json:"payment_method,omitempty"`
	PayerName     string                 `json:"payer_name,omitempty"`
}

type dateGroupResponse struct {
	DisplayDate string                  `json:"display_date"`
	DailyTotal  float64                 `json:"daily_total"`
	Groups      []categoryGroupResponse `json:"category_groups"`
}

type viewResponse struct {
	Year           int                  `json:"year"`
	Month          int                  `json:"month"`
	Report         reportResponse       `json:"report"`
	TotalLabel     string               `json:"total_label"`
	RemainingLabel string               `json:"remaining_label,omitempty"`
	Billing        []billingRowResponse `json:"billing"`
	Timeline       []dateGroupResponse  `json:"timeline"`
}

func toCategory(c category.Category) categoryResponse {
	return categoryResponse{
		Key:   c.Key(),
		Label: c.Label(),
		Icon:  c.Icon(),
		Color: c.Color(),
	}
}

func toResponse(view dashboard.View) viewResponse {
	resp := viewResponse{
		Year:           view.Query.Year,
		Month:          int(view.Query.Month),
		TotalLabel:     view.TotalLabel,
		RemainingLabel: view.RemainingLabel,
		Report: reportResponse{
			Type:   view.Report.Type,
			Total:  view.Report.Total,
			Change: view.Report.Change,
		},
	}

	for _, stat := range view.Report.CategoryStats {
		resp.Report.CategoryStats = append(resp.Report.CategoryStats, categoryStatResponse{
			Category:   toCategory(stat.Category),
			Amount:     stat.Amount,
			Proportion: stat.Proportion,
			Change:     stat.Change,
		})
	}

	for _, seg := range view.Report.ChartSegments {
		resp.Report.ChartSegments = append(resp.Report.ChartSegments, chartSegmentResponse{
			Proportion: seg.Proportion,
			ColorKey:   seg.ColorKey,
		})
	}

	for _, row := range view.Billing {
		resp.Billing = append(resp.Billing, billingRowResponse(row))
	}

	for _, day := range view.Timeline {
		resp.Timeline = append(resp.Timeline, toDateGroup(day))
	}

	return resp
}

func toDateGroup(day report.DateGroup) dateGroupResponse {
	resp := dateGroupResponse{
		DisplayDate: day.DisplayDate,
		DailyTotal:  day.DailyTotal,
	}

	for _, group := range day.Groups {
		groupResp := categoryGroupResponse{
			ID:            group.ID,
			Category:      toCategory(group.Category),
			Total:         group.Total,
			ReceiptURLs:   group.ReceiptURLs,
			PaymentMethod: group.PaymentMethod,
			PayerName:     group.PayerName,
		}

		for _, item := range group.Items {
			groupResp.Items = append(groupResp.Items, timelineItemResponse(item))
		}

		resp.Groups = append(resp.Groups, groupResp)
	}

	return resp
}
