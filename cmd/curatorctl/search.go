package main

import (
	"fmt"
	"io"

	"book-curator/backend/internal/agent/sanitize"
	"book-curator/backend/internal/catalog"
	"book-curator/backend/internal/model"

	"github.com/spf13/cobra"
)

var (
	searchType     string
	searchLimit    int
	searchCategory string
	listCategory   string
	listLimit      int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadCatalog()
		if err != nil {
			return err
		}

		result := client.Search(cmd.Context(), catalog.SearchParams{
			Query:      sanitize.Input(args[0]),
			QueryType:  searchType,
			MaxResults: searchLimit,
			CategoryID: catalog.CategoryID(searchCategory),
		})
		return printResult(cmd.OutOrStdout(), result)
	},
}

var bestsellersCmd = &cobra.Command{
	Use:   "bestsellers",
	Short: "List current bestsellers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadCatalog()
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), client.Bestsellers(cmd.Context(), catalog.CategoryID(listCategory), listLimit))
	},
}

var newReleasesCmd = &cobra.Command{
	Use:   "new-releases",
	Short: "List new releases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadCatalog()
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), client.NewReleases(cmd.Context(), catalog.CategoryID(listCategory), listLimit))
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List category names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), map[string][]string{"categories": catalog.Categories()})
		}
		for _, name := range catalog.Categories() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchType, "type", catalog.DefaultQueryType, "query type: Keyword, Title, Author, Publisher")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 10, "maximum results (capped at 50)")
	searchCmd.Flags().StringVar(&searchCategory, "category", catalog.AllCategories, "category name")

	for _, c := range []*cobra.Command{bestsellersCmd, newReleasesCmd} {
		c.Flags().StringVar(&listCategory, "category", catalog.AllCategories, "category name")
		c.Flags().IntVar(&listLimit, "limit", 10, "maximum results (capped at 50)")
	}

	rootCmd.AddCommand(searchCmd, bestsellersCmd, newReleasesCmd, categoriesCmd)
}

func printResult(w io.Writer, result *model.CatalogResult) error {
	if jsonOutput {
		return printJSON(w, result)
	}
	if result.Error != "" {
		return fmt.Errorf("catalog: %s", result.Error)
	}

	for i, book := range result.Item {
		fmt.Fprintf(w, "%2d. %s - %s (%s, %s)\n", i+1, book.Title, book.Author, book.Publisher, book.PreferredISBN())
	}
	if len(result.Item) == 0 {
		fmt.Fprintln(w, "No books found.")
	}
	return nil
}
