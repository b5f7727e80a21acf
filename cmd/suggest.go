package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/theirongolddev/hstreak/internal/suggest"

	"github.com/spf13/cobra"
)

var flagExclude string

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Print a habit suggestion",
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&flagExclude, "exclude", "", "Never return this suggestion (e.g. the last one shown)")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	pool := cfg.SuggestionPool(suggest.DefaultPool)
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

	s := suggest.First(pool, rng)
	if flagExclude != "" {
		s = suggest.Next(flagExclude, pool, rng)
	}
	if s == "" || s == flagExclude {
		fmt.Println("  No other suggestions configured.")
		return nil
	}

	fmt.Println(s)
	return nil
}
