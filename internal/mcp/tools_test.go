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

package mcp

import (
	"encoding/json"
	"errors"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/rusq/campmcp/campaign"
	"github.com/rusq/campmcp/source/mock_source"
)

var testCampaigns = []campaign.Campaign{
	{
		Name:    "Q1 Product Launch",
		Status:  "active",
		Metrics: &campaign.Metrics{Sent: 1000, Opened: 400, Clicked: 100, Converted: 20, Revenue: 5000},
	},
	{
		Name:   "Spring Sale",
		Status: "completed",
	},
}

// isErrorResult returns true when the result carries IsError=true.
func isErrorResult(r *mcplib.CallToolResult) bool {
	return r != nil && r.IsError
}

// firstText returns the text of the first TextContent in the result.
func firstText(t *testing.T, r *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, r.Content, "result has no content")
	txt, ok := r.Content[0].(mcplib.TextContent)
	require.True(t, ok, "first content item is not TextContent")
	return txt.Text
}

// ─── handleGetEmailCampaignData ───────────────────────────────────────────────

func TestHandleGetEmailCampaignData(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]any
		setup    func(m *mock_source.MockSourcer)
		wantText string // substring expected in first text content
		wantJSON string // exact JSON expected in first text content
	}{
		{
			name: "no arguments returns all campaigns",
			args: nil,
			setup: func(m *mock_source.MockSourcer) {
				m.EXPECT().Campaigns(gomock.Any()).Return(testCampaigns, nil)
			},
			wantJSON: `[
				{
					"name": "Q1 Product Launch",
					"status": "active",
					"metrics": {"sent": 1000, "opened": 400, "clicked": 100, "converted": 20, "revenue": 5000}
				},
				{"name": "Spring Sale", "status": "completed"}
			]`,
		},
		{
			name: "performance view",
			args: map[string]any{"query_type": "performance"},
			setup: func(m *mock_source.MockSourcer) {
				m.EXPECT().Campaigns(gomock.Any()).Return(testCampaigns, nil)
			},
			wantText: `"open_rate": "40.00%"`,
		},
		{
			name: "metrics view",
			args: map[string]any{"query_type": "metrics"},
			setup: func(m *mock_source.MockSourcer) {
				m.EXPECT().Campaigns(gomock.Any()).Return(testCampaigns, nil)
			},
			wantText: `"duration_days"`,
		},
		{
			name: "subjects view",
			args: map[string]any{"query_type": "subjects"},
			setup: func(m *mock_source.MockSourcer) {
				m.EXPECT().Campaigns(gomock.Any()).Return(testCampaigns, nil)
			},
			wantText: "Subject line data is not available",
		},
		{
			name: "empty dataset returns empty list",
			args: nil,
			setup: func(m *mock_source.MockSourcer) {
				m.EXPECT().Campaigns(gomock.Any()).Return([]campaign.Campaign{}, nil)
			},
			wantJSON: `[]`,
		},
		{
			name: "campaign_name filter matches case-insensitively",
			args: map[string]any{"query_type": "performance", "campaign_name": "q1 product launch"},
			setup: func(m *mock_source.MockSourcer) {
				m.EXPECT().Campaigns(gomock.Any()).Return(testCampaigns, nil)
			},
			wantText: "Q1 Product Launch",
		},
		{
			name: "campaign_name miss reports in payload",
			args: map[string]any{"campaign_name": "nonexistent-xyz"},
			setup: func(m *mock_source.MockSourcer) {
				m.EXPECT().Campaigns(gomock.Any()).Return(testCampaigns, nil)
			},
			wantJSON: `{"error": "No campaign found with name: nonexistent-xyz"}`,
		},
		{
			name: "invalid query_type reports in payload",
			args: map[string]any{"query_type": "bogus"},
			setup: func(m *mock_source.MockSourcer) {
				m.EXPECT().Campaigns(gomock.Any()).Return(testCampaigns, nil)
			},
			wantJSON: `{"error": "Invalid query_type: bogus. Supported types are 'all', 'performance', 'subjects', 'metrics'."}`,
		},
		{
			name: "dataset failure reports in payload",
			args: nil,
			setup: func(m *mock_source.MockSourcer) {
				m.EXPECT().Campaigns(gomock.Any()).Return(nil, errors.New("disk failure"))
			},
			wantJSON: `{"error": "Failed to load campaign data."}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handleGetEmailCampaignData(t.Context(), toolReq(tt.args))
			require.NoError(t, err)
			require.NotNil(t, result)
			// contractual failures ride in the payload, never in IsError.
			assert.False(t, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
			if tt.wantJSON != "" {
				assert.JSONEq(t, tt.wantJSON, firstText(t, result))
			}
		})
	}
}

func TestHandleGetEmailCampaignData_oneRecordOnFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv, mock := newTestServer(t, ctrl)
	mock.EXPECT().Campaigns(gomock.Any()).Return(testCampaigns, nil)

	result, err := srv.handleGetEmailCampaignData(t.Context(),
		toolReq(map[string]any{"campaign_name": "Spring Sale"}))
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(firstText(t, result)), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Spring Sale", records[0]["name"])
}

func TestToolGetEmailCampaignData_definition(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv, _ := newTestServer(t, ctrl)

	st := srv.toolGetEmailCampaignData()
	assert.Equal(t, "get_email_campaign_data", st.Tool.Name)
	assert.Contains(t, st.Tool.InputSchema.Properties, "query_type")
	assert.Contains(t, st.Tool.InputSchema.Properties, "campaign_name")
	// both arguments are optional.
	assert.Empty(t, st.Tool.InputSchema.Required)
}
