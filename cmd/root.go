package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "thronesquiz",
	Short: "Game of Thrones character quiz",
	Long:  "Thronesquiz: a terminal quiz that shows a Game of Thrones character and asks who it is, backed by thronesapi.com.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default ./config.yaml or the user config dir)")
	rootCmd.PersistentFlags().String("api-url", "", "Thrones API base URL (overrides THRONESQUIZ_API_BASE_URL)")
	rootCmd.PersistentFlags().String("log-file", "", "Log file path, or - to disable logging")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(versionCmd)
}
