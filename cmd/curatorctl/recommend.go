package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"book-curator/backend/internal/agent/prompt"
	"book-curator/backend/internal/agent/response"
	"book-curator/backend/internal/agent/sanitize"
	"book-curator/backend/internal/catalog"

	"github.com/spf13/cobra"
)

var generalReq prompt.GeneralRequest

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Curate books from interests or a department",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := prompt.GeneralRequest{
			Interests:  sanitize.Input(generalReq.Interests),
			Mood:       sanitize.Input(generalReq.Mood),
			Purpose:    sanitize.Input(generalReq.Purpose),
			Department: sanitize.Input(generalReq.Department),
			Category:   sanitize.Input(generalReq.Category),
		}
		if req.Interests == "" && req.Department == "" {
			return errors.New("--interests or --department is required")
		}

		curator, err := loadCurator(cmd.Context())
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), curator.Recommend(cmd.Context(), req))
	},
}

var moodCmd = &cobra.Command{
	Use:   "mood <mood>",
	Short: "Curate books for a mood (힐링, 설렘, 우울, 호기심, 지침, 성장)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mood := sanitize.Input(args[0])
		if mood == "" {
			return errors.New("mood is required")
		}

		curator, err := loadCurator(cmd.Context())
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), curator.RecommendByMood(cmd.Context(), prompt.MoodRequest{Mood: mood}))
	},
}

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the curator a free-form question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := sanitize.Input(strings.Join(args, " "))
		if query == "" {
			return errors.New("question is required")
		}

		curator, err := loadCurator(cmd.Context())
		if err != nil {
			return err
		}
		return printReply(cmd.OutOrStdout(), curator.Answer(cmd.Context(), prompt.ChatRequest{Query: query}))
	},
}

func init() {
	f := recommendCmd.Flags()
	f.StringVar(&generalReq.Interests, "interests", "", "interests or keywords")
	f.StringVar(&generalReq.Department, "department", "", "department or major")
	f.StringVar(&generalReq.Mood, "mood", "", "current mood")
	f.StringVar(&generalReq.Purpose, "purpose", "", "reading purpose")
	f.StringVar(&generalReq.Category, "category", catalog.AllCategories, "category name")

	rootCmd.AddCommand(recommendCmd, moodCmd, askCmd)
}

func printReply(w io.Writer, reply *response.Reply) error {
	if jsonOutput {
		return printJSON(w, reply)
	}

	if reply.MoodAnalysis != "" {
		fmt.Fprintln(w, reply.MoodAnalysis)
		fmt.Fprintln(w)
	}
	for i, item := range reply.Recommendations {
		fmt.Fprintf(w, "%d. 《%s》 - %s\n", i+1, item.Title, item.Author)
		fmt.Fprintf(w, "   %s\n", item.Reason)
		if item.Quote != "" {
			fmt.Fprintf(w, "   \"%s\"\n", item.Quote)
		}
		if item.Link != "" {
			fmt.Fprintf(w, "   %s\n", item.Link)
		}
	}
	if commentary := reply.Commentary(); commentary != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, commentary)
	}
	for _, q := range reply.FollowupQuestions {
		fmt.Fprintf(w, "  - %s\n", q)
	}

	if reply.Error != "" {
		return fmt.Errorf("curator: %s", reply.Error)
	}
	return nil
}
