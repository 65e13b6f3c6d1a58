// ABOUTME: Chat command for the service-matching assistant
// ABOUTME: One-shot with an argument, interactive loop without one

package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skillserve/marketplace-cli/internal/client"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask the service-matching assistant",
	Long: `Chat with the assistant that matches your request to providers.

With a message argument the command sends one message and exits. Without
one it starts an interactive session; type 'exit' or press Ctrl+D to
leave. The conversation history is sent with each turn so follow-up
questions work.

Examples:
  skillserve chat "my kitchen tap is leaking"
  skillserve chat`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		message := ""
		if len(args) == 1 {
			message = args[0]
		}

		exitCode := runChat(ctx, os.Stdout, os.Stdin, message)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// runChat drives one-shot or interactive chat and returns an exit code.
func runChat(ctx context.Context, w io.Writer, r io.Reader, message string) int {
	env, err := newAppEnv(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	if _, ok := env.requireIdentity(w); !ok {
		return exitAuth
	}

	var history []client.ChatMessage

	if message != "" {
		_, code := chatTurn(ctx, w, env, message, history)
		return code
	}

	fmt.Fprintln(w, "Describe what you need. Type 'exit' to leave.")
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return exitOK
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return exitOK
		}

		reply, code := chatTurn(ctx, w, env, line, history)
		if code == exitAuth {
			return code
		}
		if reply != nil {
			history = append(history,
				client.ChatMessage{Role: client.ChatRoleUser, Content: line},
				client.ChatMessage{Role: client.ChatRoleAssistant, Content: reply.Reply},
			)
		}
	}
}

// chatTurn sends one message and prints the reply. The returned reply is
// nil when the turn failed.
func chatTurn(ctx context.Context, w io.Writer, env *appEnv, message string, history []client.ChatMessage) (*client.ChatReply, int) {
	reply, err := env.client.Chat(ctx, message, history)
	if err != nil {
		return nil, reportError(w, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(reply, "", "  ")
		fmt.Fprintln(w, string(data))
		return reply, exitOK
	}

	fmt.Fprintln(w, reply.Reply)
	if len(reply.RecommendedProviders) > 0 {
		fmt.Fprintln(w, "\nRecommended providers:")
		for _, p := range reply.RecommendedProviders {
			fmt.Fprintf(w, "  #%-4d %-20s %-14s rating %.1f, trust %.0f, price %.0f\n",
				p.ID, p.Name, p.ServiceType, p.Rating, p.TrustScore, p.Price)
		}
		fmt.Fprintln(w, "Book one with 'skillserve book --provider <id>'.")
	}
	return reply, exitOK
}
