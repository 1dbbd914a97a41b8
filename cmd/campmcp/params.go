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

package main

import (
	"errors"
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// params is the command line parameters.  Validated fields are exported,
// the validator does not see unexported ones.
type params struct {
	DataFile   string `validate:"required"`
	Transport  string `validate:"required,oneof=stdio http"`
	ListenAddr string `validate:"omitempty,hostname_port"`

	LogFile   string // log file, if not specified, outputs to stderr.
	LogJSON   bool
	TraceFile string // trace file
	Verbose   bool

	printVersion bool
}

var (
	validate = validator.New()
	// errTranslations is the english translations for the validation
	// errors.
	errTranslations ut.Translator
)

func init() {
	english := en.New()
	uni := ut.New(english, english)
	var ok bool
	errTranslations, ok = uni.GetTranslator("en")
	if !ok {
		panic("internal error: failed to initialise the translator")
	}
	if err := entranslations.RegisterDefaultTranslations(validate, errTranslations); err != nil {
		panic(fmt.Sprintf("internal error: failed to register translations: %s", err))
	}
}

// validate checks the parameter values.  Validation errors are translated
// to human readable messages.
func (p *params) validate() error {
	if p.printVersion {
		return nil
	}
	if err := validate.Struct(p); err != nil {
		var vErr validator.ValidationErrors
		if errors.As(err, &vErr) {
			return fmt.Errorf("parameters failed validation: %s", vErr.Translate(errTranslations))
		}
		return err
	}
	return nil
}
