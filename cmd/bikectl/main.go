// bikectl is a small terminal consumer of the bike service API, covering
// the same flows as the web form: list, create, update and delete.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pageland/matrix-bike-service/internal/core/services"
	"github.com/pageland/matrix-bike-service/pkg/client"

	"github.com/go-openapi/strfmt"
	"github.com/spf13/cobra"
)

var baseURL string

func main() {
	rootCmd := &cobra.Command{
		Use:          "bikectl",
		Short:        "Manage bikes in the Matrix bike service",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "http://localhost:8080", "Base URL of the bike service")

	rootCmd.AddCommand(listCmd(), createCmd(), updateCmd(), deleteCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func listCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bikes, optionally filtered by owner email",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(baseURL)

			var bikes []client.Bike
			var err error
			if email != "" {
				bikes, err = c.FetchUsersBikes(context.Background(), email)
			} else {
				bikes, err = c.FetchBikes(context.Background())
			}
			if err != nil {
				return err
			}

			if len(bikes) == 0 {
				fmt.Println("no bikes found")
				return nil
			}
			for _, bike := range bikes {
				fmt.Printf("%s  %s  make=%s model=%s year=%s\n",
					bike.BikeID, bike.Email, strOrDash(bike.Make), strOrDash(bike.Model), yearOrDash(bike.Year))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Only show bikes owned by this email")
	return cmd
}

func createCmd() *cobra.Command {
	var email, bikeMake, bikeModel string
	var year int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a bike",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Same permissive pattern the server enforces, checked early for
			// a nicer failure than a round-trip 400.
			if !services.NewEmailService().IsValidEmail(email) {
				return fmt.Errorf("%q is not a valid email", email)
			}

			bike := client.NewBike{Email: email}
			if cmd.Flags().Changed("make") {
				bike.Make = &bikeMake
			}
			if cmd.Flags().Changed("model") {
				bike.Model = &bikeModel
			}
			if cmd.Flags().Changed("year") {
				bike.Year = yearDate(year)
			}

			bikeID, err := client.New(baseURL).CreateBike(context.Background(), bike)
			if err != nil {
				return err
			}
			fmt.Println(bikeID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Owner email (required)")
	cmd.Flags().StringVar(&bikeMake, "make", "", "Bike make")
	cmd.Flags().StringVar(&bikeModel, "model", "", "Bike model")
	cmd.Flags().IntVar(&year, "year", 0, "Manufacture year")
	cmd.MarkFlagRequired("email")
	return cmd
}

func updateCmd() *cobra.Command {
	var bikeMake, bikeModel string
	var year int

	cmd := &cobra.Command{
		Use:   "update <bikeId>",
		Short: "Update a bike's make, model or year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only flags the user actually set go into the patch; everything
			// else keeps its current value on the server.
			var patch client.BikePatch
			if cmd.Flags().Changed("make") {
				patch.Make = &bikeMake
			}
			if cmd.Flags().Changed("model") {
				patch.Model = &bikeModel
			}
			if cmd.Flags().Changed("year") {
				patch.Year = yearDate(year)
			}

			if err := client.New(baseURL).ModifyBike(context.Background(), args[0], patch); err != nil {
				return err
			}
			fmt.Println("bike updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&bikeMake, "make", "", "New bike make")
	cmd.Flags().StringVar(&bikeModel, "model", "", "New bike model")
	cmd.Flags().IntVar(&year, "year", 0, "New manufacture year")
	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <bikeId>",
		Short: "Delete a bike",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.New(baseURL).DeleteBike(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("bike deleted")
			return nil
		},
	}
}

// yearDate turns a bare year into the full timestamp the API stores.
func yearDate(year int) *strfmt.DateTime {
	dt := strfmt.DateTime(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	return &dt
}

func strOrDash(value *string) string {
	if value == nil {
		return "-"
	}
	return *value
}

func yearOrDash(value *strfmt.DateTime) string {
	if value == nil {
		return "-"
	}
	return fmt.Sprintf("%d", time.Time(*value).Year())
}
