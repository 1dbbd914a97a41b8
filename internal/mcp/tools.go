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

// In this file: MCP tool definitions and handler implementations.

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/rusq/campmcp/internal/query"
)

// ─── get_email_campaign_data ──────────────────────────────────────────────────

func (s *Server) toolGetEmailCampaignData() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get_email_campaign_data",
		mcplib.WithDescription(`Retrieve email campaign data from the marketing dataset.

Returns campaign data as JSON.  The query_type argument selects the view:
- "all" (default): complete campaign records, unmodified
- "performance": derived open, click-through and conversion rates per campaign
- "metrics": raw counters (sent, opened, clicked, converted) and revenue
- "subjects": subject line details (not present in the mock dataset; the tool
  reports the gap in-band)

The optional campaign_name argument narrows the result to a single campaign,
matched case-insensitively.  Failures are reported inside the payload as an
object with an "error" field.`),
		mcplib.WithString("query_type",
			mcplib.Description(`Type of data to retrieve: "all", "performance", "subjects" or "metrics". Defaults to "all".`),
		),
		mcplib.WithString("campaign_name",
			mcplib.Description("Name of a specific campaign to filter by (case-insensitive)."),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
		mcplib.WithIdempotentHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetEmailCampaignData}
}

func (s *Server) handleGetEmailCampaignData(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	queryType, _ := stringArg(req, "query_type")
	campaignName, _ := stringArg(req, "campaign_name")

	s.logger.DebugContext(ctx, "mcp: get_email_campaign_data",
		"query_type", queryType, "campaign_name", campaignName)

	payload, err := query.Execute(ctx, s.src, query.Query{
		Type:         queryType,
		CampaignName: campaignName,
	})
	if err != nil {
		return nil, fmt.Errorf("get_email_campaign_data: %w", err)
	}
	return resultText(payload), nil
}
