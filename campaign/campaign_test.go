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

package campaign

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaign_unmarshal(t *testing.T) {
	tests := []struct {
		name string
		js   string
		want Campaign
	}{
		{
			name: "complete record",
			js: `{
				"name": "Q1 Product Launch",
				"status": "active",
				"duration_days": 14,
				"audience": {"segment_size": 25000, "regions": ["NA", "EU"]},
				"metrics": {"sent": 1000, "opened": 400, "clicked": 100, "converted": 20, "revenue": 5000}
			}`,
			want: Campaign{
				Name:         "Q1 Product Launch",
				Status:       "active",
				DurationDays: 14,
				Audience:     map[string]any{"segment_size": float64(25000), "regions": []any{"NA", "EU"}},
				Metrics:      &Metrics{Sent: 1000, Opened: 400, Clicked: 100, Converted: 20, Revenue: 5000},
			},
		},
		{
			name: "empty record decodes to zero values",
			js:   `{}`,
			want: Campaign{},
		},
		{
			name: "partial metrics default remaining counters to zero",
			js:   `{"name": "Drip", "metrics": {"sent": 10}}`,
			want: Campaign{Name: "Drip", Metrics: &Metrics{Sent: 10}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Campaign
			require.NoError(t, json.Unmarshal([]byte(tt.js), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCampaign_marshalRoundTrip(t *testing.T) {
	// A record with absent optional fields must serialise without them, so
	// that the verbatim "all" view does not invent audience or metrics keys.
	c := Campaign{Name: "Bare"}
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "Bare"}`, string(data))
}

func TestMetrics_Norm(t *testing.T) {
	tests := []struct {
		name string
		m    *Metrics
		want Metrics
	}{
		{
			name: "nil receiver yields zeroes",
			m:    nil,
			want: Metrics{},
		},
		{
			name: "values carry over",
			m:    &Metrics{Sent: 5, Opened: 4, Clicked: 3, Converted: 2, Revenue: 1.5},
			want: Metrics{Sent: 5, Opened: 4, Clicked: 3, Converted: 2, Revenue: 1.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.Norm())
		})
	}
}
