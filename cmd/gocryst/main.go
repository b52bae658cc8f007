/*
 * main.go, part of gocryst.
 *
 * Copyright 2024 The gocryst developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//gocryst is a small command-line frontend for the cryst library: it
//reads an atom-list file (xyz or qc, optionally gzip/zstd compressed),
//assigns bonds, classifies the atoms into kinds and reports or converts
//the result.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"

	cryst "github.com/vbarria/gocryst"
	"github.com/vbarria/gocryst/crysplot"
)

//Config holds the options that can come from a TOML file instead of
//flags. Cell is row-major, one lattice vector per row; leaving it empty
//means a non-periodic system.
type Config struct {
	FileIn  string    `toml:"file_in"`
	FileOut string    `toml:"file_out"`
	Cell    []float64 `toml:"cell"`
}

func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cfg Config
	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	if len(cfg.Cell) != 0 && len(cfg.Cell) != 9 {
		return nil, fmt.Errorf("cell in %s needs 9 values, got %d", path, len(cfg.Cell))
	}
	return &cfg, nil
}

//readAtoms picks the reader from the file name: ".qc" (before any
//compression extension) means the charge-inclusive format, anything
//else is read as xyz.
func readAtoms(name string) ([]*cryst.Atom, error) {
	base := strings.TrimSuffix(strings.TrimSuffix(name, ".gz"), ".zst")
	if strings.HasSuffix(base, ".qc") {
		return cryst.QCRead(name)
	}
	return cryst.XYZRead(name)
}

func writeAtoms(name string, atoms []*cryst.Atom) error {
	base := strings.TrimSuffix(strings.TrimSuffix(name, ".gz"), ".zst")
	if strings.HasSuffix(base, ".qc") {
		return cryst.QCWrite(name, atoms)
	}
	return cryst.XYZWrite(name, atoms)
}

func cellFromOptions(cfg *Config, flagCell []float64) (*cryst.Cell, error) {
	vals := flagCell
	if len(vals) == 0 && cfg != nil {
		vals = cfg.Cell
	}
	if len(vals) == 0 {
		return nil, nil
	}
	return cryst.CellFromSlice(vals)
}

func main() {
	var (
		configPath string
		flagCell   []float64
		plotPrefix string
	)

	rootCmd := &cobra.Command{
		Use:   "gocryst",
		Short: "Bond assignment and atom-kind classification for molecular crystals",
		Long: `gocryst reads simple atom-list files (xyz, or qc with partial charges,
optionally gzip/zstd compressed), assigns bonds by a covalent-radius
distance criterion (periodic if a unit cell is given) and classifies
atoms into kinds: element plus the multiset of bonded-neighbor
element/bond-order pairs.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	rootCmd.PersistentFlags().Float64SliceVar(&flagCell, "cell", nil, "unit cell as 9 values, one lattice vector per row (overrides the config file)")

	classifyCmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Assign bonds and report the atom kinds in a structure",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *Config
			var err error
			if configPath != "" {
				if cfg, err = loadConfig(configPath); err != nil {
					return err
				}
			}
			name := ""
			if len(args) > 0 {
				name = args[0]
			} else if cfg != nil {
				name = cfg.FileIn
			}
			if name == "" {
				return fmt.Errorf("no input file given, on the command line or in a config file")
			}
			atoms, err := readAtoms(name)
			if err != nil {
				return err
			}
			cell, err := cellFromOptions(cfg, flagCell)
			if err != nil {
				return err
			}
			if cell != nil {
				log.Info("using periodic distances", "file", name)
			}
			bonds, err := cryst.AssignBonds(atoms, cell)
			if err != nil {
				return err
			}
			log.Info("bonds assigned", "atoms", len(atoms), "bonds", len(bonds))
			conn := cryst.ConnectivityMatrix(atoms, bonds)
			if err := cryst.ClassifyAll(atoms, conn); err != nil {
				return err
			}
			groups, order := cryst.GroupByKind(atoms)
			for _, key := range order {
				fmt.Printf("%6d  %s\n", len(groups[key]), key)
			}
			if plotPrefix != "" {
				if err := crysplot.KindPopulations(atoms, "Kind populations", plotPrefix+"-kinds"); err != nil {
					return err
				}
				if err := crysplot.ChargeHistogram(atoms, 16, "Partial charges", plotPrefix+"-charges"); err != nil {
					return err
				}
				log.Info("plots written", "prefix", plotPrefix)
			}
			return nil
		},
	}
	classifyCmd.Flags().StringVar(&plotPrefix, "plot", "", "write <prefix>-kinds.png and <prefix>-charges.png")

	convertCmd := &cobra.Command{
		Use:   "convert <in> [out]",
		Short: "Convert between the xyz and qc formats, with optional compression",
		Long: `convert reads the input file and writes it in the format given by the
output name extension. Converting qc to xyz drops the charges;
converting xyz to qc writes zero charges.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg *Config
			var err error
			if configPath != "" {
				if cfg, err = loadConfig(configPath); err != nil {
					return err
				}
			}
			in := args[0]
			out := ""
			if len(args) > 1 {
				out = args[1]
			} else if cfg != nil {
				out = cfg.FileOut
			}
			if out == "" {
				return fmt.Errorf("no output file given, on the command line or in a config file")
			}
			atoms, err := readAtoms(in)
			if err != nil {
				return err
			}
			if err := writeAtoms(out, atoms); err != nil {
				return err
			}
			log.Info("converted", "in", in, "out", out, "atoms", len(atoms))
			return nil
		},
	}

	rootCmd.AddCommand(classifyCmd, convertCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
