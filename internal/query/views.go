// Copyright (c) 2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package query

import "github.com/rusq/campmcp/campaign"

// In this file: response shapes for each query type.

// errorView is the in-band error payload.
type errorView struct {
	Message string `json:"error"`
}

// noteNoSubjects appears in every subjects view record: the dataset has no
// subject line field, and the view says so instead of failing.
const noteNoSubjects = "Subject line data is not available in the current mock data structure."

// performanceView pairs a campaign's identity with its derived rates.
type performanceView struct {
	CampaignName string `json:"campaign_name"`
	Status       string `json:"status"`
	campaign.Performance
}

func performanceViews(cc []campaign.Campaign) []performanceView {
	vv := make([]performanceView, 0, len(cc))
	for _, c := range cc {
		vv = append(vv, performanceView{
			CampaignName: c.Name,
			Status:       c.Status,
			Performance:  c.Performance(),
		})
	}
	return vv
}

// metricsView returns the raw counters untouched.  Every key is always
// present: a campaign without metrics or audience reports them as null,
// not by omitting the key.
type metricsView struct {
	CampaignName string            `json:"campaign_name"`
	Status       string            `json:"status"`
	DurationDays int               `json:"duration_days"`
	Audience     map[string]any    `json:"audience"`
	Metrics      *campaign.Metrics `json:"metrics"`
}

func metricsViews(cc []campaign.Campaign) []metricsView {
	vv := make([]metricsView, 0, len(cc))
	for _, c := range cc {
		vv = append(vv, metricsView{
			CampaignName: c.Name,
			Status:       c.Status,
			DurationDays: c.DurationDays,
			Audience:     c.Audience,
			Metrics:      c.Metrics,
		})
	}
	return vv
}

// subjectView is the degraded-mode response for the "subjects" query type,
// see [noteNoSubjects].
type subjectView struct {
	CampaignName       string               `json:"campaign_name"`
	Note               string               `json:"note"`
	PerformanceSummary campaign.Performance `json:"performance_summary"`
}

func subjectViews(cc []campaign.Campaign) []subjectView {
	vv := make([]subjectView, 0, len(cc))
	for _, c := range cc {
		vv = append(vv, subjectView{
			CampaignName:       c.Name,
			Note:               noteNoSubjects,
			PerformanceSummary: c.Performance(),
		})
	}
	return vv
}
