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

// Package source provides readers for email campaign datasets.
//
// A dataset is a single JSON document that simulates an export from a
// marketing platform:
//
//	{
//	    "campaign_data": {
//	        "campaigns": [ {campaign record}, ... ]
//	    }
//	}
//
// Use [Load] to open a dataset on the local file system:
//
//	src, err := source.Load(ctx, "mock_data.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	campaigns, err := src.Campaigns(ctx)
//
// Sources are stateless: every [Sourcer.Campaigns] call reads the dataset
// afresh, so there is nothing to close and edits to the file are picked up
// without a restart.  A dataset without a campaign list is a valid, empty
// dataset, not an error.
package source
