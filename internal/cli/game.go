package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/blackjack-go/internal/api/request"
	"github.com/mcoot/blackjack-go/internal/api/response"
	"github.com/mcoot/blackjack-go/internal/render"
	"github.com/mcoot/blackjack-go/internal/services/router"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameListCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	var name string
	var decks string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game and take the host seat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.CreateGameRequest{Name: name, Decks: decks}
			var result router.Response

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cfg.Verbose, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Game name")
	cmd.Flags().StringVar(&decks, "decks", "6", "Number of decks in the shoe (4-10)")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <game-id>",
		Short: "Show a live game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result render.View

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cfg.Verbose, cmd.OutOrStdout())
			out.Print(&result)
			return nil
		},
	}
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List live games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameList

			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cfg.Verbose, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

// parseAmount checks a bet locally so typos never reach the table
func parseAmount(raw string) (int, error) {
	amount, err := strconv.Atoi(raw)
	if err != nil || amount <= 0 {
		return 0, fmt.Errorf("amount must be a positive whole number, got %q", raw)
	}
	return amount, nil
}
