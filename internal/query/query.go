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

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rusq/campmcp/campaign"
	"github.com/rusq/campmcp/source"
)

// Type selects the reshaping applied to the campaign list.
type Type string

const (
	// TAll returns the campaign records verbatim.
	TAll Type = "all"
	// TPerformance returns derived performance rates per campaign.
	TPerformance Type = "performance"
	// TSubjects returns the subject line view per campaign.
	TSubjects Type = "subjects"
	// TMetrics returns the raw metric counters per campaign.
	TMetrics Type = "metrics"
)

// InvalidTypeError is returned by [ParseType] for unrecognised query type
// values.  Its message is part of the tool contract and is relayed to the
// caller verbatim.
type InvalidTypeError struct {
	Value string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("Invalid query_type: %s. Supported types are 'all', 'performance', 'subjects', 'metrics'.", e.Value)
}

// ParseType parses the query type argument, case insensitively.  The empty
// string selects [TAll], matching the tool's declared default.  Any other
// unrecognised value returns [*InvalidTypeError], it never falls back to a
// default.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(s))
	switch t {
	case "":
		return TAll, nil
	case TAll, TPerformance, TSubjects, TMetrics:
		return t, nil
	default:
		return "", &InvalidTypeError{Value: string(t)}
	}
}

// Query is a single campaign data request.  Both fields hold the raw
// argument values: validation happens in [Execute], after the dataset is
// loaded and the name filter is applied, in that order.
type Query struct {
	// Type is the query type argument, empty means "all".
	Type string
	// CampaignName, if not empty, limits the result to campaigns with a
	// case-insensitive matching name.
	CampaignName string
}

// Execute runs the query q against the dataset src and returns the
// response payload as indented JSON.  Contractual failures are encoded in
// the payload itself; the error return is reserved for serialisation
// failures, which the caller should treat as fatal.
func Execute(ctx context.Context, src source.Sourcer, q Query) (string, error) {
	cc, err := load(ctx, src)
	if err != nil {
		return marshal(errorView{Message: "Failed to load campaign data."})
	}
	if q.CampaignName != "" {
		if cc = filter(cc, q.CampaignName); len(cc) == 0 {
			return marshal(errorView{Message: "No campaign found with name: " + q.CampaignName})
		}
	}
	t, err := ParseType(q.Type)
	if err != nil {
		return marshal(errorView{Message: err.Error()})
	}
	return marshal(reshape(t, cc))
}

// load reads the dataset.  A nil source counts as a load failure, same as
// an unreadable one.
func load(ctx context.Context, src source.Sourcer) ([]campaign.Campaign, error) {
	if src == nil {
		return nil, errors.New("no dataset configured")
	}
	return src.Campaigns(ctx)
}

// filter returns the campaigns whose name equals name, ignoring case.
func filter(cc []campaign.Campaign, name string) []campaign.Campaign {
	var match []campaign.Campaign
	for _, c := range cc {
		if strings.EqualFold(c.Name, name) {
			match = append(match, c)
		}
	}
	return match
}

// reshape applies the view for the parsed query type t.  [TAll] is the
// identity: records pass through with no reshaping.
func reshape(t Type, cc []campaign.Campaign) any {
	switch t {
	case TPerformance:
		return performanceViews(cc)
	case TMetrics:
		return metricsViews(cc)
	case TSubjects:
		return subjectViews(cc)
	default: // TAll
		return cc
	}
}

func marshal(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialise response: %w", err)
	}
	return string(b), nil
}
