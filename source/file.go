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

package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/rusq/campmcp/campaign"
)

// File is a campaign dataset backed by a single JSON file.  The file is
// re-read on every Campaigns call.  Zero value is not usable, use
// [NewFile] or [Load].
type File struct {
	path string
}

var _ Sourcer = (*File)(nil)

// document is the top level shape of the dataset file.
type document struct {
	CampaignData struct {
		Campaigns []campaign.Campaign `json:"campaigns"`
	} `json:"campaign_data"`
}

// NewFile returns a file dataset for the given path.  It does not touch the
// file system; use [Load] if the path should be checked up front.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Name() string {
	return f.path
}

func (f *File) Type() string {
	return "file"
}

// Campaigns reads the dataset and returns all campaign records in file
// order.  It returns an error wrapping [ErrNotExist] if the file has gone
// missing since [Load], and one wrapping [ErrMalformed] if the contents do
// not decode into the expected document shape.
func (f *File) Campaigns(ctx context.Context) ([]campaign.Campaign, error) {
	cc, err := f.read()
	if err != nil {
		slog.ErrorContext(ctx, "failed to read the dataset", "source", f.path, "error", err)
		return nil, err
	}
	slog.DebugContext(ctx, "dataset read", "source", f.path, "campaigns", len(cc))
	return cc, nil
}

func (f *File) read() ([]campaign.Campaign, error) {
	fl, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, f.path)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer fl.Close()

	var doc document
	if err := json.NewDecoder(fl).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrMalformed, f.path, err)
	}
	if doc.CampaignData.Campaigns == nil {
		// a dataset without the campaign list is empty, not broken.
		return []campaign.Campaign{}, nil
	}
	return doc.CampaignData.Campaigns, nil
}
