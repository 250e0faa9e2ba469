package cmd

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	jdictconfig "github.com/lai323/jdict/config"
	"github.com/lai323/jdict/lookup"
)

var (
	configPath string
	config     jdictconfig.Config
	options    lookup.Options
	logFile    *os.File

	rootCmd = &cobra.Command{
		Use:   "jdict",
		Short: "look up Japanese words on Jotoba and turn them into notes",
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logFile != nil {
				logFile.Close()
			}
		},
	}
	searchCmd = &cobra.Command{
		Use:   "search [word]",
		Short: "interactive lookup panel",
		RunE:  lookup.Search(&config, &options),
	}
	showCmd = &cobra.Command{
		Use:   "show word",
		Short: "print the results of a lookup",
		RunE:  lookup.Show(&config, &options),
	}
	noteCmd = &cobra.Command{
		Use:   "note word",
		Short: "create the note of one result and print its link",
		RunE:  lookup.Note(&config, &options),
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", fmt.Sprintf("config file (default is %s)", jdictconfig.DefaultConfigPath))
	rootCmd.PersistentFlags().StringVar(&options.Folder, "folder", "", "vault folder notes are created in")
	rootCmd.PersistentFlags().StringVar(&options.Mode, "mode", "", "link mode: do-not-replace, add-furigana, replace-kanji-no-furigana, replace-kanji-with-furigana")
	rootCmd.PersistentFlags().StringVar(&options.Selection, "selection", "", "text the link replaces (default is the word)")
	rootCmd.PersistentFlags().BoolVar(&options.CopyLink, "copy", false, "copy the link to the clipboard")

	noteCmd.Flags().IntVar(&options.Index, "index", 1, "result to use, starting at 1")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(noteCmd)
}

func initConfig() {
	var err error
	config, err = jdictconfig.InitConfig(afero.NewOsFs(), configPath)
	if err != nil {
		log.Fatal(err)
	}
	initLog()
}

// initLog sends slog output to a file so it does not draw over the panel.
func initLog() {
	if err := os.MkdirAll(config.StoragePath, 0755); err != nil {
		log.Fatal(err)
	}
	f, err := os.OpenFile(config.LogFile(), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	logFile = f
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: config.Level()})))
}
