package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/slacktime/slacktime-go/methods/chat"
)

func (a *App) newChatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Send messages",
	}

	cmd.AddCommand(a.newChatPostCommand())

	return cmd
}

func (a *App) newChatPostCommand() *cobra.Command {
	post := &cobra.Command{
		Use:   "post [text]",
		Short: "Post a message to a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			channel := a.chatChannel
			if channel == "" && a.cfg != nil {
				channel = a.cfg.DefaultChannel
			}
			if channel == "" {
				return fmt.Errorf("no channel: pass --channel or set default_channel in config")
			}

			client, err := a.newClient()
			if err != nil {
				return err
			}

			var opts *chat.PostMessageOptions
			if a.chatThreadTS != "" {
				ts, err := strconv.ParseFloat(a.chatThreadTS, 64)
				if err != nil {
					return fmt.Errorf("invalid --thread-ts: %w", err)
				}
				opts = &chat.PostMessageOptions{ThreadTS: ts}
			}

			env, err := client.Chat.PostMessage(cmd.Context(), channel, args[0], opts)
			if err != nil {
				return err
			}

			if a.jsonOutput {
				fmt.Fprintln(a.stdout, string(env.Raw))
				return nil
			}

			fmt.Fprintf(a.stdout, "Message posted to %s (ts %s)\n", env.String("channel"), env.String("ts"))
			return nil
		},
	}

	post.Flags().StringVar(&a.chatChannel, "channel", "", "channel, private group, or IM channel to send to")
	post.Flags().StringVar(&a.chatThreadTS, "thread-ts", "", "timestamp of a parent message to reply to")

	return post
}
