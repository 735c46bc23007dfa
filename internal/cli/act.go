package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/blackjack-go/internal/api/request"
	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/services/router"
)

func newActCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "act <action-id>",
		Short: "Press a button or submit a form by its action id",
		Long: `Send one interaction to the server. Action ids are printed under
"Actions:" whenever a game is shown. Quote them, they contain spaces:

  bjgame act "inGame hit 482913"
  bjgame act "bettingPhase betModal 482913" --input 100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := interact(args[0], input)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cfg.Verbose, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Form input, such as a bet amount")

	return cmd
}

func newBetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bet <game-id> <amount>",
		Short: "Place a bet in the betting phase",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			id := model.NewActionID(model.PhaseBetting, model.ActionBetSubmit, model.GameID(args[0]))
			result, err := interact(string(id), args[1])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cfg.Verbose, cmd.OutOrStdout())
			if result.Kind == router.KindAck && cfg.Output == "text" {
				out.Printf("Bet of %d not accepted; is the game in the betting phase?\n", amount)
				return nil
			}
			out.Print(result)
			return nil
		},
	}
}

func interact(actionID, input string) (router.Response, error) {
	req := request.InteractionRequest{ActionID: actionID, Input: input}
	var result router.Response

	err := client.Post("/api/v1/interactions", req, &result)
	return result, err
}
