package main

import (
	"desk/di"
	"desk/infras/kafka"
	boardModel "desk/internal/domains/board/model"
	notificationService "desk/internal/domains/notification/service"
	"desk/internal/domains/record/model"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/spf13/cobra"
)

var ErrEventsDisabled = errors.New("kafka events are disabled; set KAFKA_ENABLE and KAFKA_BROKERS")

func initCmd(load func() *di.App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the record stores with their header rows",
		Args:  cobra.NoArgs,
		RunE: withApp(load, func(cmd *cobra.Command, app *di.App, _ []string) error {
			if err := app.Records.EnsureInitialized(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "stores ready")

			return nil
		}),
	}
}

func exportCmd(load func() *di.App) *cobra.Command {
	return &cobra.Command{
		Use:   "export <booking|contact>",
		Short: "Write every record of a kind as CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(load, func(cmd *cobra.Command, app *di.App, args []string) error {
			kind, err := model.ParseKind(args[0])
			if err != nil {
				return err
			}

			return app.Records.Export(cmd.Context(), kind, cmd.OutOrStdout())
		}),
	}
}

func importCmd(load func() *di.App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <booking|contact> <file>",
		Short: "Replace every record of a kind with the rows of a CSV file",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(load, func(cmd *cobra.Command, app *di.App, args []string) error {
			kind, err := model.ParseKind(args[0])
			if err != nil {
				return err
			}

			file, err := os.Open(args[1])
			if err != nil {
				return errors.Wrapf(err, "failed to open %s", args[1])
			}
			defer file.Close()

			res, err := app.Records.Import(cmd.Context(), kind, file)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d %s records imported\n", res.Imported, res.Kind)

			return nil
		}),
	}
}

func boardCmd(load func() *di.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the status board",
		Args:  cobra.NoArgs,
		RunE: withApp(load, func(cmd *cobra.Command, app *di.App, _ []string) error {
			board, err := app.Board.Get(cmd.Context())
			if err != nil {
				return err
			}

			columns := board.Columns

			if name, _ := cmd.Flags().GetString("status"); name != "" {
				status, ok := model.ParseStatus(name)
				if !ok {
					return errors.Errorf("unknown status %q", name)
				}

				columns = []boardModel.Column{{Status: status, Cards: board.Column(status)}}
			}

			out := cmd.OutOrStdout()

			for _, column := range columns {
				fmt.Fprintf(out, "%s (%d)\n", column.Status, len(column.Cards))

				for _, card := range column.Cards {
					fmt.Fprintf(out, "  [%s %s] %s\n", card.Kind, card.ID, card.Title)

					for line := range strings.SplitSeq(card.Description, "\n") {
						fmt.Fprintf(out, "      %s\n", line)
					}
				}
			}

			return nil
		}),
	}

	cmd.Flags().StringP("status", "s", "", "Only print the column of this status")

	return cmd
}

func statusCmd(load func() *di.App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <booking|contact> <id> <status>",
		Short: "Move a record to another status",
		Args:  cobra.ExactArgs(3),
		RunE: withApp(load, func(cmd *cobra.Command, app *di.App, args []string) error {
			kind, err := model.ParseKind(args[0])
			if err != nil {
				return err
			}

			status, ok := model.ParseStatus(args[2])
			if !ok {
				return errors.Errorf("unknown status %q", args[2])
			}

			res, err := app.Records.UpdateStatus(cmd.Context(), kind, args[1], status)
			if err != nil {
				return err
			}

			if !res.Changed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s already %s\n", res.Kind, res.ID, res.Status)

				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s moved from %s to %s (%s)\n",
				res.Kind, res.ID, res.Previous, res.Status, res.Webhook.Message)

			return nil
		}),
	}
}

func eventsCmd(load func() *di.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Follow record events published to Kafka",
		Args:  cobra.NoArgs,
		RunE: withApp(load, func(cmd *cobra.Command, app *di.App, _ []string) error {
			if !app.Events.Enabled() {
				return ErrEventsDisabled
			}

			group, _ := cmd.Flags().GetString("group")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			encoder := json.NewEncoder(cmd.OutOrStdout())

			app.Events.Consume(ctx, group, app.Config.Kafka.Topic, func(message kafkaGo.Message) {
				printEvent(encoder, message)
			})

			return nil
		}),
	}

	cmd.Flags().StringP("group", "g", "", "Consumer group (defaults to KAFKA_CONSUMER_GROUP)")

	return cmd
}

func printEvent(encoder *json.Encoder, message kafkaGo.Message) {
	event, err := kafka.DecodeKafkaMessage[notificationService.Event](message)
	if err != nil {
		log.Warn().Err(err).Int64("offset", message.Offset).Msg("Skipping undecodable event")

		return
	}

	if err := encoder.Encode(event); err != nil {
		log.Error().Err(err).Msg("Failed to print event")
	}
}
