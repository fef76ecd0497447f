package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one round",
		Long: `Play one round of the quiz.

Each question is shown with numbered answers; type the number of your
choice, or press enter to skip. Prompts go to stderr so --output json
stays parseable. The name falls back to the remembered one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureClient(); err != nil {
				return err
			}

			round, err := currentRound()
			if err != nil {
				return err
			}

			in := bufio.NewReader(cmd.InOrStdin())
			prompt := cmd.ErrOrStderr()

			answers, err := askAnswers(in, prompt, round)
			if err != nil {
				return err
			}

			if name == "" {
				var ident IdentityResult
				if err := client.Get("/api/v1/identity", &ident); err != nil {
					return err
				}
				if !ident.Locked {
					_, _ = fmt.Fprint(prompt, "Your name: ")
					name, err = readLine(in)
					if err != nil {
						return err
					}
				}
			}

			req := SubmitRequest{Name: name, Answers: answers}
			var result SubmitResult
			if err := client.Post("/api/v1/quiz/submit", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (defaults to the remembered name)")

	return cmd
}

// currentRound returns the round awaiting answers, starting one if needed
func currentRound() (*Round, error) {
	var quiz QuizResult
	if err := client.Get("/api/v1/quiz", &quiz); err != nil {
		return nil, err
	}
	if quiz.Round != nil && quiz.Round.State == "awaiting_answers" {
		return quiz.Round, nil
	}

	var round Round
	if err := client.Post("/api/v1/quiz", nil, &round); err != nil {
		return nil, err
	}
	return &round, nil
}

func askAnswers(in *bufio.Reader, prompt io.Writer, round *Round) (map[int]string, error) {
	answers := make(map[int]string, len(round.Questions))
	if round.FetchFailed {
		_, _ = fmt.Fprintln(prompt, "No questions could be loaded.")
	}

	for _, q := range round.Questions {
		_, _ = fmt.Fprintf(prompt, "\n%d. %s\n", q.Index+1, q.Text)
		for i, a := range q.Answers {
			_, _ = fmt.Fprintf(prompt, "   %d) %s\n", i+1, a.Label)
		}
		_, _ = fmt.Fprint(prompt, "> ")

		line, err := readLine(in)
		if err != nil {
			return nil, err
		}
		if label, ok := pickAnswer(q, line); ok {
			answers[q.Index] = label
		}
	}
	return answers, nil
}

// pickAnswer maps a typed choice number to an answer label
func pickAnswer(q Question, choice string) (string, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || n < 1 || n > len(q.Answers) {
		return "", false
	}
	return q.Answers[n-1].Label, true
}

// readLine reads one line, treating end of input as an empty answer
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
