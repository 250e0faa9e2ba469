package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lai323/jdict/config"
	"github.com/lai323/jdict/jotoba"
	"github.com/lai323/jdict/note"
	"github.com/lai323/jdict/ui"
	"github.com/lai323/jdict/vault"
)

type Options struct {
	Selection string
	Folder    string
	Mode      string
	Index     int
	CopyLink  bool
}

func mergeConfig(cfg config.Config, options Options) config.Config {
	if options.Folder != "" {
		cfg.FolderPath = options.Folder
	}
	if options.Mode != "" {
		cfg.Mode = options.Mode
	}
	if options.CopyLink {
		cfg.CopyLink = true
	}
	return cfg
}

func setup(cfg *config.Config, options *Options) (*jotoba.Client, *note.Maker, error) {
	merged := mergeConfig(*cfg, *options)
	if err := merged.Validate(); err != nil {
		return nil, nil, err
	}
	v, err := vault.Open(merged.VaultPath)
	if err != nil {
		return nil, nil, err
	}
	client := jotoba.NewClient(merged.ApiUrl, merged.Language, slog.Default())
	maker := note.NewMaker(v, note.Settings{FolderPath: merged.FolderPath, Mode: merged.LinkMode()})
	*cfg = merged
	return client, maker, nil
}

func oneWord(args []string) (string, error) {
	if len(args) > 1 {
		return "", errors.New("Only one word can be looked up at a time")
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", nil
}

// Search opens the interactive lookup panel.
func Search(cfg *config.Config, options *Options) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		text, err := oneWord(args)
		if err != nil {
			return err
		}
		client, maker, err := setup(cfg, options)
		if err != nil {
			return err
		}

		m := NewModel(text, options.Selection, client, maker, cfg.CopyLink, slog.Default())
		replacement, err := Start(m)
		if err != nil {
			return err
		}
		if replacement != "" {
			fmt.Fprintln(cmd.OutOrStdout(), replacement)
		}
		return nil
	}
}

// Show prints the results without the panel.
func Show(cfg *config.Config, options *Options) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		text, err := oneWord(args)
		if err != nil {
			return err
		}
		if text == "" {
			return errors.New("Nothing to look up")
		}
		client, maker, err := setup(cfg, options)
		if err != nil {
			return err
		}
		return show(cmd.Context(), cmd, client, maker, text)
	}
}

func show(ctx context.Context, cmd *cobra.Command, s Searcher, maker *note.Maker, text string) error {
	items, err := Fetch(ctx, s, text)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.ResultsView(text, items, -1, noteStates(maker, items)))
	return nil
}

// Note creates or links the note of the chosen result and prints the
// replacement link.
func Note(cfg *config.Config, options *Options) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		text, err := oneWord(args)
		if err != nil {
			return err
		}
		if text == "" {
			return errors.New("Nothing to look up")
		}
		client, maker, err := setup(cfg, options)
		if err != nil {
			return err
		}
		selection := options.Selection
		if selection == "" {
			selection = text
		}
		out, err := makeNote(cmd.Context(), client, maker, text, selection, options.Index)
		if out.Replacement != "" {
			if out.Created {
				fmt.Fprintf(cmd.ErrOrStderr(), "created %s\n", out.Path)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Replacement)
			if cfg.CopyLink {
				if cerr := copyToClipboard(out.Replacement); cerr != nil {
					slog.Warn("copy link", slog.String("error", cerr.Error()))
				}
			}
		}
		return err
	}
}

// makeNote applies the index-th (1-based) result of text.
func makeNote(ctx context.Context, s Searcher, maker *note.Maker, text, selection string, index int) (note.Outcome, error) {
	items, err := Fetch(ctx, s, text)
	if err != nil {
		return note.Outcome{}, err
	}
	if index < 1 || index > len(items) {
		return note.Outcome{}, fmt.Errorf("result %d out of range, %s has %d results", index, text, len(items))
	}
	return maker.Apply(items[index-1], selection)
}
