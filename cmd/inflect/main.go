// Command inflect prints inflection tables from the command line.
//
//	inflect noun сестра --gender ж --decl "1*d, ё"
//	inflect adjective хороший --decl "4a/b" --short
//	inflect pronoun чь --decl "6*b"
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	zaliznyak "github.com/cours-de-russe/zaliznyak"
)

func main() {
	root := &cobra.Command{
		Use:           "inflect",
		Short:         "Inflect Russian words from their dictionary classification",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(nounCmd(), adjectiveCmd(), pronounCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "inflect:", err)
		os.Exit(1)
	}
}

func nounCmd() *cobra.Command {
	var gender, decl string
	cmd := &cobra.Command{
		Use:   "noun <headword>",
		Short: "Print the case/number table of a noun",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ga, err := zaliznyak.ParseGenderExAnimacy(gender)
			if err != nil {
				return err
			}
			d, err := zaliznyak.ParseNounDeclension(decl)
			if err != nil {
				return err
			}
			noun, err := zaliznyak.NounFromHeadword(args[0], ga, d)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s %s\n", args[0], ga.AbbrZaliznyak(), d)
			for _, c := range zaliznyak.AllCases {
				sg, err := noun.Inflect(c.Ex(), zaliznyak.Singular)
				if err != nil {
					return err
				}
				pl, err := noun.Inflect(c.Ex(), zaliznyak.Plural)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%-4s %-20s %s\n", c.Abbr(), sg, pl)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&gender, "gender", "м", "gender/animacy mark (м, мо, ж, жо, с, со, м-ж, мо-жо)")
	cmd.Flags().StringVar(&decl, "decl", "", "declension notation, e.g. \"1*d, ё\"")
	cobra.CheckErr(cmd.MarkFlagRequired("decl"))
	return cmd
}

func adjectiveCmd() *cobra.Command {
	var decl string
	var reflexive, short bool
	cmd := &cobra.Command{
		Use:   "adjective <headword>",
		Short: "Print the full (or short) forms of an adjective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := zaliznyak.ParseAdjectiveDeclension(decl)
			if err != nil {
				return err
			}
			d.Reflexive = reflexive
			adj, err := zaliznyak.AdjectiveFromHeadword(args[0], d)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", args[0], d)
			if short {
				for _, g := range zaliznyak.AllGenders {
					form, err := adj.InflectShort(g, zaliznyak.Singular)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%-10s %s\n", g, form)
				}
				form, err := adj.InflectShort(zaliznyak.Masculine, zaliznyak.Plural)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%-10s %s\n", "plural", form)
				return nil
			}
			for _, c := range zaliznyak.AllCases {
				fmt.Fprintf(w, "%-4s", c.Abbr())
				for _, g := range zaliznyak.AllGenders {
					form, err := adj.Inflect(c.Ex(), g, zaliznyak.Singular, zaliznyak.Inanimate)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, " %-15s", form)
				}
				form, err := adj.Inflect(c.Ex(), zaliznyak.Masculine, zaliznyak.Plural, zaliznyak.Inanimate)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, " %s\n", form)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&decl, "decl", "", "declension notation, e.g. \"4a/b\"")
	cmd.Flags().BoolVar(&reflexive, "reflexive", false, "the headword carries -ся")
	cmd.Flags().BoolVar(&short, "short", false, "print short forms instead of the case table")
	cobra.CheckErr(cmd.MarkFlagRequired("decl"))
	return cmd
}

func pronounCmd() *cobra.Command {
	var decl string
	cmd := &cobra.Command{
		Use:   "pronoun <stem>",
		Short: "Print the case table of an adjectival pronoun",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := zaliznyak.ParsePronounDeclension(decl)
			if err != nil {
				return err
			}
			pron := zaliznyak.NewPronoun(args[0], d)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s- %s\n", args[0], d)
			for _, c := range zaliznyak.AllCases {
				fmt.Fprintf(w, "%-4s", c.Abbr())
				for _, g := range zaliznyak.AllGenders {
					form, err := pron.Inflect(c.Ex(), g, zaliznyak.Singular, zaliznyak.Inanimate)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, " %-12s", form)
				}
				form, err := pron.Inflect(c.Ex(), zaliznyak.Masculine, zaliznyak.Plural, zaliznyak.Inanimate)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, " %s\n", form)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&decl, "decl", "", "declension notation, e.g. \"6*b\"")
	cobra.CheckErr(cmd.MarkFlagRequired("decl"))
	return cmd
}
