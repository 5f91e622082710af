package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/cj5427533/BilingualBuddy/internal/config"
	"github.com/cj5427533/BilingualBuddy/internal/ocr"
	"github.com/cj5427533/BilingualBuddy/internal/repository"
	"github.com/cj5427533/BilingualBuddy/internal/session"
	"github.com/cj5427533/BilingualBuddy/internal/tts"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newAskCommand() *cobra.Command {
	var imagePath string
	var speak bool

	command := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a question and get a bilingual Korean/Vietnamese explanation",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			answerProvider, closeProvider, err := newProvider(cfg)
			if err != nil {
				return err
			}
			if closeProvider != nil {
				defer func() {
					_ = closeProvider()
				}()
			}

			ctx := cmd.Context()
			sess := session.NewQuestionSession(repository.NewAnswerRepository(answerProvider))

			if imagePath != "" {
				askFromImage(ctx, sess, cfg, imagePath)
			} else {
				sess.AskQuestion(ctx, strings.Join(args, " "))
			}

			state := sess.State()
			switch state.Phase {
			case session.PhaseSuccess:
				printAnswer(state)
				if speak {
					speakPronunciation(ctx, cfg, state.Answer.Pronunciation)
				}
				return nil
			case session.PhaseError:
				return fmt.Errorf("%s", state.Message)
			default:
				return fmt.Errorf("unexpected session state: %s", state.Phase)
			}
		},
	}

	command.Flags().StringVar(&imagePath, "image", "", "extract the question from an image via OCR")
	command.Flags().BoolVar(&speak, "speak", false, "read the pronunciation aloud")
	return command
}

// askFromImage runs the OCR route: extract text first, then ask with the
// extracted question. An extraction failure is injected into the session.
func askFromImage(ctx context.Context, sess *session.QuestionSession, cfg *config.Config, imagePath string) {
	extractor := ocr.NewOpenAIExtractor(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	defer func() {
		_ = extractor.Close()
	}()

	extracted := extractor.ExtractText(ctx, imagePath)
	if message, failed := extracted.Message(); failed {
		sess.SetError(message)
		return
	}
	question, _ := extracted.Value()
	fmt.Printf("Extracted question: %s\n\n", question)
	sess.AskQuestion(ctx, question)
}

func printAnswer(state session.QuestionState) {
	color.New(color.FgCyan, color.Bold).Println("[베트남어 요약]")
	fmt.Println(state.Answer.VietnameseSummary)
	fmt.Println()
	color.New(color.FgGreen, color.Bold).Println("[한국어 설명]")
	fmt.Println(state.Answer.KoreanExplanation)
	fmt.Println()
	color.New(color.FgYellow, color.Bold).Println("[발음]")
	fmt.Println(state.Answer.Pronunciation)
}

// speakPronunciation is best-effort: a missing or failing synthesizer only
// prints a warning.
func speakPronunciation(ctx context.Context, cfg *config.Config, pronunciation string) {
	if cfg.TTS.Command == "" {
		fmt.Println("Warning: tts.command is not configured, skipping speech")
		return
	}
	engine, err := tts.NewCommandEngine(cfg.TTS.Command, cfg.TTS.LanguageFlag)
	if err != nil {
		fmt.Printf("Warning: could not acquire tts engine: %v\n", err)
		return
	}
	defer func() {
		_ = engine.Close()
	}()

	if err := engine.Speak(ctx, pronunciation, "vi-VN"); err != nil {
		fmt.Printf("Warning: speech failed: %v\n", err)
	}
}
