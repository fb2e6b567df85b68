/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"dirpx.dev/birdreply"
	"dirpx.dev/birdreply/adapter"
	"dirpx.dev/birdreply/code"
	"dirpx.dev/birdreply/mapper"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func classifyCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <code> [text...]",
		Short: "classify a reply code",
		Example: `  birdreply classify 8001 Network not found
  birdreply classify 0013 --json`,
		Args: cobra.MinimumNArgs(1),
	}
	asJSON := cmd.Flags().Bool("json", false, "print the reply as JSON")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		msg, err := birdreply.DecodeString(args[0], strings.Join(args[1:], " "))
		if err != nil {
			return fmt.Errorf("%q: %w", args[0], err)
		}
		m, err := g.mapper()
		if err != nil {
			return err
		}
		st := mapper.ForMessage(m, msg)
		g.log().Debug("classified reply", adapter.Fields(msg)...)

		out := cmd.OutOrStdout()
		if *asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(adapter.ToDescriptor(birdreply.E(msg), st))
		}

		tw := tabwriter.NewWriter(out, 0, 4, 1, ' ', 0)
		fmt.Fprintf(tw, "code:\t%s\n", msg.Code())
		fmt.Fprintf(tw, "kind:\t%s\n", msg.Kind())
		fmt.Fprintf(tw, "band:\t%s\n", msg.Band())
		fmt.Fprintf(tw, "reason:\t%s\n", msg.Reason())
		if msg.Text() != "" {
			fmt.Fprintf(tw, "text:\t%s\n", msg.Text())
		}
		fmt.Fprintf(tw, "http:\t%d\n", st.HTTP)
		fmt.Fprintf(tw, "grpc:\t%s(%d)\n", mapper.GRPCName(st.GRPC), int(st.GRPC))
		return tw.Flush()
	}

	return cmd
}

func explainCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <code>",
		Short: "show which mapper rule resolves a reply code",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		msg, err := birdreply.DecodeString(args[0], "")
		if err != nil {
			return fmt.Errorf("%q: %w", args[0], err)
		}
		m, err := g.mapper()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), m.Explain(msg.Code(), msg.Reason()))
		return err
	}

	return cmd
}

func checkCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <config-file>",
		Short: "check mapper configuration file",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := mapper.LoadConfigFile(args[0])
		if err != nil {
			return err
		}
		if _, err := cfg.Mapper(); err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		g.log().Info("config ok", zap.String("file", args[0]))
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d defaults, %d overrides, %d prefixes)\n",
			args[0], len(cfg.Defaults), len(cfg.Overrides), len(cfg.Prefixes))
		return err
	}

	return cmd
}

func kindsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "list every reply kind",
		Args:  cobra.NoArgs,
	}
	band := cmd.Flags().String("band", "", "only list kinds of this band")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var filter *code.Band
		if *band != "" {
			b, err := code.ParseBand(*band)
			if err != nil {
				return fmt.Errorf("%q: %w", *band, err)
			}
			filter = &b
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CODE\tKIND\tBAND\tREASON")
		for _, k := range birdreply.Kinds() {
			if filter != nil && k.Band() != *filter {
				continue
			}
			c := k.Code().String()
			if k.CarriesCode() {
				c += "+"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c, k, k.Band(), k.Reason())
		}
		return tw.Flush()
	}

	return cmd
}
