package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"richbot/internal/config"
	"richbot/internal/embedding"
	"richbot/internal/llm"
	"richbot/internal/models"
	"richbot/internal/rag"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "richbot",
	Short: "Document-grounded chatbot for Richard's personal profile",
	Long: `RichBot answers questions about a personal profile document.

The document is flattened, split into numbered sections, embedded and
indexed in memory; every question retrieves the most relevant sections
and feeds them to the chat model together with the recent conversation.`,
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "configs/config.yaml", "config file")
	rootCmd.PersistentFlags().String("doc", "", "profile document path (overrides config)")
	rootCmd.PersistentFlags().Float64("temperature", 0.7, "sampling temperature (0.1-1.0)")
	rootCmd.PersistentFlags().Float64("top-p", 0.7, "nucleus sampling mass (0.1-1.0)")
	rootCmd.PersistentFlags().Int("max-tokens", 256, "maximum response length (50-512)")
	rootCmd.PersistentFlags().IntP("top-k", "k", 5, "retrieved chunks per question (1-10)")
}

// newSession wires a session from config, credential and flags. The missing
// credential case is fatal here, before any model call is attempted.
func newSession(flags *pflag.FlagSet) (*rag.Session, *config.Config, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	apiKey, err := config.LoadAPIKey()
	if err != nil {
		return nil, nil, err
	}

	embedder, err := embedding.New(&cfg.Embedding, apiKey)
	if err != nil {
		return nil, nil, err
	}
	generator, err := llm.NewNVIDIAGenerator(&cfg.Chat, apiKey)
	if err != nil {
		return nil, nil, err
	}

	session := rag.NewSession(cfg, embedding.ChromemFunc(embedder), generator)
	session.SetParams(paramsFromFlags(flags, session.Params()))
	return session, cfg, nil
}

func paramsFromFlags(flags *pflag.FlagSet, p models.Params) models.Params {
	if flags.Changed("temperature") {
		p.Temperature, _ = flags.GetFloat64("temperature")
	}
	if flags.Changed("top-p") {
		p.TopP, _ = flags.GetFloat64("top-p")
	}
	if flags.Changed("max-tokens") {
		p.MaxTokens, _ = flags.GetInt("max-tokens")
	}
	if flags.Changed("top-k") {
		p.TopK, _ = flags.GetInt("top-k")
	}
	return p
}

func documentPath(flags *pflag.FlagSet, cfg *config.Config) string {
	if doc, _ := flags.GetString("doc"); doc != "" {
		return doc
	}
	return cfg.Document.DefaultPath
}
