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

// Package query implements the campaign query processor.  It reads the
// dataset through a [source.Sourcer], applies the optional campaign name
// filter, and reshapes the result according to the requested query type.
//
// Contractual failures, such as an unreadable dataset, a name that matches
// no campaign, or an unknown query type, are reported in-band as a JSON
// object with a single "error" field.  The calling model gets a payload it
// can read and relay, not a transport failure.
package query
