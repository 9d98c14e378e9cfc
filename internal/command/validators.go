// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/bgarena/bgarena/internal/output"
	"github.com/bgarena/bgarena/internal/planner"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator checks flag combinations no single flag validator can.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.Bool("schema") {
		return nil
	}
	if c.String("catalog") == "" {
		return fmt.Errorf("no catalog: use --catalog, %s or the catalog config key", EnvCatalog)
	}
	return nil
}

func OutputValidator(value any) error {
	s, _ := value.(string)
	if !slices.Contains(output.Formats, s) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

// SortValidator rejects sort specs naming unknown or unsortable columns.
func SortValidator(value any) error {
	s, _ := value.(string)
	if _, _, err := planner.ParseSortSpec(s); err != nil {
		return err
	}
	return nil
}
