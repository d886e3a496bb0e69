// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/surfaces/internal/build"
)

var (
	formatFlag string
	outFlag    string
	varsFlag   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate surface classes",
	Long: `Derive state colors for every base/on pair and write the classes as CSS,
or as JSON/YAML records for another CSS pipeline.`,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := loadSettings()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		format := s.Output.Format
		if cmd.Flags().Changed("format") {
			format = formatFlag
		}
		out := s.Output.Path
		if cmd.Flags().Changed("out") {
			out = outFlag
		}
		vars := s.Output.Variables
		if cmd.Flags().Changed("vars") {
			vars = varsFlag
		}

		res, err := build.Run(appFs, s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if out == "" {
			if err := res.Write(os.Stdout, format, vars); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if err := res.WriteFile(appFs, out, format, vars); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logrus.WithFields(logrus.Fields{
			"path":   out,
			"format": format,
			"rules":  len(res.Classes.Rules),
		}).Info("wrote surfaces")
	},
}

func init() {
	generateCmd.Flags().StringVarP(&formatFlag, "format", "f", "css", "output format: css, json or yaml")
	generateCmd.Flags().StringVarP(&outFlag, "out", "o", "", "output file (default stdout)")
	generateCmd.Flags().BoolVar(&varsFlag, "vars", false, "prepend :root custom properties")
	rootCmd.AddCommand(generateCmd)
}
