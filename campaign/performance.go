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

// In this file: derived performance indicators.

import "fmt"

// Performance is the set of indicators derived from the raw counters.  None
// of them are stored in the dataset; they are computed on every request.
// Rates are percentage strings with two decimal places (e.g. "42.50%"),
// revenue is carried over numerically.
type Performance struct {
	OpenRate         string  `json:"open_rate"`
	ClickThroughRate string  `json:"click_through_rate"`
	ConversionRate   string  `json:"conversion_rate"`
	Revenue          float64 `json:"revenue"`
}

// Performance computes the derived indicators for the campaign:
//
//	open_rate          = opened / sent
//	click_through_rate = clicked / opened
//	conversion_rate    = converted / clicked
//
// A zero denominator yields the zero rate ("0.00%"), never a fault: mock
// datasets are full of campaigns that were never sent.
func (c Campaign) Performance() Performance {
	m := c.Metrics.Norm()
	return Performance{
		OpenRate:         rate(m.Opened, m.Sent),
		ClickThroughRate: rate(m.Clicked, m.Opened),
		ConversionRate:   rate(m.Converted, m.Clicked),
		Revenue:          m.Revenue,
	}
}

// rate returns num/den as a percentage string.  This is the only division
// site, and it is guarded.
func rate(num, den int) string {
	var pct float64
	if den != 0 {
		pct = float64(num) / float64(den) * 100
	}
	return fmt.Sprintf("%.2f%%", pct)
}
