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

// Package campaign defines the email campaign record as it appears in the
// marketing dataset, and the performance indicators derived from it.
//
// A campaign record is permissive by contract: any field may be missing from
// the dataset, and a missing field reads as its zero value.  The only place
// where the substitution happens is [Metrics.Norm], so the "missing field
// means zero" rule stays auditable in one spot.
package campaign

// Campaign is a single email campaign record.  Optional compound fields
// (Audience, Metrics) are nil when the dataset omits them.
type Campaign struct {
	Name         string         `json:"name,omitempty"`
	Status       string         `json:"status,omitempty"`
	DurationDays int            `json:"duration_days,omitempty"`
	Audience     map[string]any `json:"audience,omitempty"` // opaque, passed through as is
	Metrics      *Metrics       `json:"metrics,omitempty"`
}

// Metrics holds the raw campaign counters as stored in the dataset.  All
// fields marshal unconditionally so that a reshaped view always presents the
// complete counter set to the model.
type Metrics struct {
	Sent      int     `json:"sent"`
	Opened    int     `json:"opened"`
	Clicked   int     `json:"clicked"`
	Converted int     `json:"converted"`
	Revenue   float64 `json:"revenue"`
}

// Norm returns the metrics value with absent counters substituted with
// zeroes.  It is the central normalisation step: safe to call on a nil
// receiver, in which case every counter is zero.
func (m *Metrics) Norm() Metrics {
	if m == nil {
		return Metrics{}
	}
	return *m
}
