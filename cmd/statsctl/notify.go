package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zhytomyr-tourism/internal/domain"
	"github.com/zhytomyr-tourism/internal/repository/cache"
	redisRepo "github.com/zhytomyr-tourism/internal/repository/redis"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Publish an attractions-updated event",
	Long:  "Publishes an event to stream:attractions:updated so every running API replica rebuilds its statistics snapshot.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		source, _ := cmd.Flags().GetString("source")
		event := domain.AttractionsUpdatedEvent{
			EventID:   uuid.New(),
			Source:    source,
			UpdatedAt: time.Now().UTC(),
		}
		if reason, _ := cmd.Flags().GetString("reason"); reason != "" {
			event.Reason = &reason
		}

		streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), 0, log)
		if err := streamRepo.PublishToStream(cmd.Context(), domain.StreamAttractionsUpdated, event); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "published %s to %s\n", event.EventID, domain.StreamAttractionsUpdated)
		return nil
	},
}

func init() {
	notifyCmd.Flags().String("source", "statsctl", "event source")
	notifyCmd.Flags().String("reason", "", "free-form reason")
	rootCmd.AddCommand(notifyCmd)
}
