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
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rusq/campmcp/campaign"
)

//go:generate mockgen -destination=mock_source/mock_source.go . Sourcer

// Sourcer is the interface for reading campaign records from a dataset.
// Implementations return the complete campaign list; filtering and
// reshaping are the caller's concern.
type Sourcer interface {
	// Name should return the name of the underlying dataset, i.e. the file
	// path for file based sources.
	Name() string
	// Type should return the dataset type.
	Type() string
	// Campaigns should return all campaign records in the dataset.  An
	// empty dataset yields an empty slice and no error.
	Campaigns(ctx context.Context) ([]campaign.Campaign, error)
}

var (
	// ErrNotExist is returned if the dataset file does not exist.
	ErrNotExist = errors.New("dataset does not exist")
	// ErrMalformed is returned if the dataset contents can not be decoded.
	ErrMalformed = errors.New("malformed dataset")
)

// datafile is the well-known dataset filename.
const datafile = "mock_data.json"

// DefaultPath returns the default dataset location: mock_data.json in the
// directory of the running executable, so that the server finds its data no
// matter which directory the host process launches it from.  If the
// executable path can not be determined, it returns the bare filename,
// resolved relative to the current directory.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return datafile
	}
	return filepath.Join(filepath.Dir(exe), datafile)
}

// Load opens the dataset at path.  It verifies that path exists and is a
// regular file; the contents are decoded lazily, on each Campaigns call,
// so a well-formed path with broken contents fails there, not here.
func Load(ctx context.Context, path string) (*File, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, path)
		}
		return nil, fmt.Errorf("stat dataset: %w", err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("unsupported dataset: %s is a directory", path)
	}
	slog.DebugContext(ctx, "dataset located", "source", path, "size", fi.Size())
	return NewFile(path), nil
}
