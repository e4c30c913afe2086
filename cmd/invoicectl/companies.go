package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/onyxtech/onyx-invoice/services/company/domain/models"
)

func (c *cli) companiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "companies",
		Short: "Manage the company directory file",
	}
	cmd.AddCommand(c.companiesListCmd(), c.companiesAddCmd(), c.companiesDeleteCmd())
	return cmd
}

func (c *cli) companiesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List directory entries in order; the first is the default buyer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			companies, err := c.companyService().List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tID CODE\tADDRESS")
			for _, co := range companies {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", co.ID, co.Name, co.TaxID, co.Address)
			}
			return tw.Flush()
		},
	}
}

func (c *cli) companiesAddCmd() *cobra.Command {
	var fields models.CompanyFields

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a company and print its id",
		Example: `  invoicectl companies add --name "TOYOTA CAUCASUS LLC" --id-code 404567890 --address Tbilisi`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			company, err := c.companyService().Add(cmd.Context(), fields)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), company.ID)
			return err
		},
	}
	cmd.Flags().StringVar(&fields.Name, "name", "", "company name (required)")
	cmd.Flags().StringVar(&fields.TaxID, "id-code", "", "tax identification code")
	cmd.Flags().StringVar(&fields.Address, "address", "", "postal address")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (c *cli) companiesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a company from the directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			remaining, err := c.companyService().Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c.log.Info("company deleted", "company_id", args[0], "remaining", len(remaining))
			return nil
		},
	}
}
