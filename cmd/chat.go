package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"richbot/internal/models"
	"richbot/internal/rag"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	Long: `Starts a terminal chat with RichBot. The profile document is
processed once at startup; answers stream as they are generated.

Commands inside the session:
  :reset    start a new conversation
  :params   show current generation parameters
  exit      quit`,
	Run: func(cmd *cobra.Command, args []string) {
		session, cfg, err := newSession(cmd.Flags())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize session")
		}

		ctx := context.Background()
		docPath := documentPath(cmd.Flags(), cfg)
		log.Info().Str("document", docPath).Msg("processing document...")
		count, err := session.ProcessDocument(ctx, docPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to process document")
		}
		log.Info().Int("chunks", count).Msg("document ready")

		fmt.Printf("\nRichBot: %s\n", rag.Greeting)
		fmt.Println("         (Type 'exit' to end the chat)")

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("\nYou: ")
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())
			switch {
			case input == "":
				continue
			case strings.EqualFold(input, "exit"):
				fmt.Println("RichBot: Sampai jumpa lagi!")
				return
			case input == ":reset":
				session.Reset()
				fmt.Println("RichBot: Oke, kita mulai dari awal lagi ya!")
				continue
			case input == ":params":
				p := session.Params()
				fmt.Printf("temperature=%.1f top_p=%.1f max_tokens=%d top_k=%d\n",
					p.Temperature, p.TopP, p.MaxTokens, p.TopK)
				continue
			}

			fmt.Print("RichBot: ")
			_, err := session.AskStream(ctx, input, func(fragment string) error {
				fmt.Print(fragment)
				return nil
			})
			fmt.Println()
			if err != nil {
				if errors.Is(err, models.ErrGeneration) {
					log.Error().Err(err).Msg("generation failed, please resubmit your question")
					continue
				}
				log.Error().Err(err).Msg("request failed")
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
