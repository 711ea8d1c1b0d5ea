package commands

import (
	"github.com/spf13/cobra"

	"github.com/crimson-sun/vecname/internal/model"
)

type listEntry struct {
	Name     string         `json:"name" yaml:"name"`
	Category model.Category `json:"category" yaml:"category"`
	LongName string         `json:"long_name,omitempty" yaml:"long_name,omitempty"`
}

type categoryEntry struct {
	Name    string `json:"name" yaml:"name"`
	Key     string `json:"key" yaml:"key"`
	UIText  string `json:"ui_text" yaml:"ui_text"`
	Vectors int    `json:"vectors" yaml:"vectors"`
}

func newListCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dictionary entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict := a.eng.Dictionary()
			names := dict.Names()
			if category != "" {
				c, err := model.ParseCategory(category)
				if err != nil {
					return err
				}
				names = dict.ByCategory(c)
			}

			enc, err := a.encoder(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			for _, name := range names {
				desc, _ := dict.Lookup(name)
				e := listEntry{Name: name, Category: desc.Category, LongName: desc.LongName}
				if err := enc.Encode(e, e.Name, e.Category.String(), e.LongName); err != nil {
					return err
				}
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only list this category (name, key or display text)")
	return cmd
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List summary categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict := a.eng.Dictionary()
			enc, err := a.encoder(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			for _, c := range model.AllCategories() {
				e := categoryEntry{
					Name:    c.String(),
					Key:     c.Key(),
					UIText:  c.UIText(),
					Vectors: len(dict.ByCategory(c)),
				}
				if err := enc.Encode(e, e.Name, e.Key, e.UIText); err != nil {
					return err
				}
			}
			return enc.Close()
		},
	}
}
