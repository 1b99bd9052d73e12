package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacoelho/sdo"
	"github.com/jacoelho/sdo/internal/config"
	"github.com/jacoelho/sdo/internal/typenames"
	"github.com/jacoelho/sdo/internal/types"
)

func newTypesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types FILE",
		Short: "Print the types declared in a catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := sdo.LoadFile(args[0])
			if err != nil {
				return fail("load catalog", err)
			}
			a.log().Debug("catalog loaded", "file", args[0], "types", doc.Catalog.Len())
			if err := sdo.WriteCatalog(a.stdout, doc.Catalog.Types(), a.cfg.Escape); err != nil {
				return fail("render catalog", err)
			}
			return nil
		},
	}
}

func newObjectCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "object FILE",
		Short: "Print the object tree of a catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts, err := a.cfg.RenderOptions()
			if err != nil {
				return fail("render object", err)
			}
			doc, err := sdo.LoadFile(args[0])
			if err != nil {
				return fail("load catalog", err)
			}
			if doc.Root == nil {
				return fail("render object", errors.New(args[0]+" has no [object] table"))
			}
			a.log().Debug("rendering object", "type", doc.Root.Type().QName(), "cycle_policy", opts.CyclePolicy)
			err = sdo.WriteObject(a.stdout, doc.Root, sdo.RenderOptions{
				CyclePolicy: opts.CyclePolicy,
				MaxDepth:    opts.MaxDepth,
				Escape:      a.cfg.Escape,
			})
			if err != nil {
				return fail("render object", err)
			}
			return nil
		},
	}
	defaults := config.Default()
	cmd.Flags().String("cycle-policy", defaults.CyclePolicy, "reference handling: containment, follow or reject")
	cmd.Flags().Int("max-depth", defaults.MaxDepth, "maximum nesting depth")
	return cmd
}

func newXSDCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "xsd NAME...",
		Short: "Translate XSD primitive type names to SDO kinds",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, name := range args {
				if !typenames.Known(name) {
					a.log().Warn("unknown XSD type, using default", "name", name, "default", typenames.DefaultKind)
				}
				if _, err := fmt.Fprintf(a.stdout, "%s %s\n", name, typenames.FromXSD(name)); err != nil {
					return fail("write output", err)
				}
			}
			return nil
		},
	}
}

func newSDOCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sdo NAME...",
		Short: "Translate SDO kind names to XSD primitive type names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, name := range args {
				if !types.ParseKind(name).Valid() {
					a.log().Warn("unknown SDO kind, using default", "name", name, "default", typenames.DefaultXSD)
				}
				if _, err := fmt.Fprintf(a.stdout, "%s %s\n", name, typenames.ToXSD(name)); err != nil {
					return fail("write output", err)
				}
			}
			return nil
		},
	}
}
