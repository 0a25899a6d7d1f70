package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question and print the answer",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, cfg, err := newSession(cmd.Flags())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize session")
		}

		ctx := context.Background()
		docPath := documentPath(cmd.Flags(), cfg)
		if _, err := session.ProcessDocument(ctx, docPath); err != nil {
			log.Fatal().Err(err).Msg("failed to process document")
		}

		answer, err := session.Ask(ctx, args[0])
		if err != nil {
			log.Fatal().Err(err).Msg("failed to answer")
		}
		fmt.Println(answer)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
