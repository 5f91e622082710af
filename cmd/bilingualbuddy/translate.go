package main

import (
	"fmt"
	"strings"

	"github.com/cj5427533/BilingualBuddy/internal/repository"
	"github.com/cj5427533/BilingualBuddy/internal/session"
	"github.com/cj5427533/BilingualBuddy/internal/translate/papago"
	"github.com/spf13/cobra"
)

func newTranslateCommand() *cobra.Command {
	var sourceLang string
	var targetLang string

	command := &cobra.Command{
		Use:   "translate [text]",
		Short: "Translate text between Korean and Vietnamese",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			translator := papago.NewClient(papago.Config{
				ClientID:     cfg.Papago.ClientID,
				ClientSecret: cfg.Papago.ClientSecret,
			})
			sess := session.NewTranslateSession(repository.NewTranslateRepository(translator))
			sess.Translate(cmd.Context(), strings.Join(args, " "), sourceLang, targetLang)

			state := sess.State()
			switch state.Phase {
			case session.PhaseSuccess:
				fmt.Println(state.Text)
				return nil
			case session.PhaseError:
				return fmt.Errorf("%s", state.Message)
			default:
				return fmt.Errorf("unexpected session state: %s", state.Phase)
			}
		},
	}

	command.Flags().StringVar(&sourceLang, "source", "ko", "source language code")
	command.Flags().StringVar(&targetLang, "target", "vi", "target language code")
	return command
}
