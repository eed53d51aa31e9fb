// Package main содержит точку входа сервиса задач с напоминаниями и чат-ботом.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// configPath путь к YAML-конфигу; по умолчанию берётся из CONFIG_PATH
	configPath string
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "work-reminder",
	Short: "Task tracker with reminders and a chat bot",
	Long: `work-reminder serves the task tracking HTTP API: tasks, reminders polling,
the chat bot and the admin panel.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (defaults to $CONFIG_PATH)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createAdminCmd)
}
