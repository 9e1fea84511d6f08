// Command flydent resolves aviation identifiers from the command line.
//
// Usage:
//
//	flydent parse T6-ABC
//	flydent parse --strict --icao24 700123
//	flydent country 4CA123
//	flydent nnumber N8437D
//	flydent nnumber AB8E4F
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/flydent/flydent"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "flydent",
		Short:         "Resolve aviation registrations, ICAO addresses and N-Numbers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newParseCommand(), newCountryCommand(), newNNumberCommand())
	return root
}

func newParseCommand() *cobra.Command {
	var strict bool
	var icao24 bool

	cmd := &cobra.Command{
		Use:   "parse <identifier>",
		Short: "Resolve a registration callsign or ICAO address to its country or organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flydent.Default()
			if err != nil {
				return err
			}
			r, ok := p.Parse(strings.ToUpper(args[0]), strict, icao24)
			if !ok {
				return fmt.Errorf("no match for %q", args[0])
			}
			switch r.Kind {
			case flydent.EntityCountry:
				fmt.Printf("%s (%s/%s) %s\n", r.Nation, r.ISO2, r.ISO3, r.Description)
			default:
				fmt.Printf("%s %s\n", r.Name, r.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Require separators and full suffixes")
	cmd.Flags().BoolVar(&icao24, "icao24", false, "Treat the input as a 24-bit ICAO hex address")
	return cmd
}

func newCountryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "country <hex-address>",
		Short: "Resolve a 24-bit ICAO address to its allocating country",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := strconv.ParseUint(strings.TrimPrefix(strings.ToUpper(args[0]), "0X"), 16, 32)
			if err != nil {
				return fmt.Errorf("invalid hex address %q: %w", args[0], err)
			}
			iso2, ok := flydent.CountryForAddress(uint32(addr))
			if !ok {
				return fmt.Errorf("no allocation covers %06X", addr)
			}
			fmt.Println(iso2)
			return nil
		},
	}
}

func newNNumberCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nnumber <N-Number|hex-address>",
		Short: "Convert between a US N-Number and its ICAO address",
		Long: `Convert between a US N-Number and its 24-bit ICAO address.
Input starting with N converts to an address; anything else is read as a
hex address and converted back to its N-Number.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.ToUpper(strings.TrimSpace(args[0]))
			if strings.HasPrefix(input, "N") {
				addr, err := flydent.NNumberToAddress(input)
				if err != nil {
					return err
				}
				fmt.Printf("%06X\n", addr)
				return nil
			}
			addr, err := strconv.ParseUint(strings.TrimPrefix(input, "0X"), 16, 32)
			if err != nil {
				return fmt.Errorf("invalid hex address %q: %w", args[0], err)
			}
			nnumber, err := flydent.AddressToNNumber(uint32(addr))
			if err != nil {
				return err
			}
			fmt.Println(nnumber)
			return nil
		},
	}
}
