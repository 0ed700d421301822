package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/thronesquiz/internal/thrones"
)

var charactersCmd = &cobra.Command{
	Use:     "characters",
	Aliases: []string{"chars"},
	Short:   "List, inspect and update characters",
}

var charactersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every character",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		chars, err := d.api.ListCharacters(cmd.Context())
		if err != nil {
			return fmt.Errorf("list characters: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(chars) == 0 {
			fmt.Fprintln(out, "No characters found.")
			return nil
		}

		fmt.Fprintf(out, "%-4s  %-28s  %s\n", "ID", "Full name", "Family")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, c := range chars {
			fmt.Fprintf(out, "%-4d  %-28s  %s\n", c.ID, c.FullName, c.Family)
		}
		return nil
	},
}

var charactersShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one character",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}

		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		c, err := d.api.GetCharacter(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get character %d: %w", id, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:          %d\n", c.ID)
		fmt.Fprintf(out, "First name:  %s\n", c.FirstName)
		fmt.Fprintf(out, "Last name:   %s\n", c.LastName)
		fmt.Fprintf(out, "Full name:   %s\n", c.FullName)
		if c.Title != "" {
			fmt.Fprintf(out, "Title:       %s\n", c.Title)
		}
		if c.Family != "" {
			fmt.Fprintf(out, "Family:      %s\n", c.Family)
		}
		fmt.Fprintf(out, "Image URL:   %s\n", c.ImageURL)
		return nil
	},
}

var charactersSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Post a character update",
	RunE: func(cmd *cobra.Command, args []string) error {
		var update thrones.CharacterUpdate
		update.ID, _ = cmd.Flags().GetString("id")
		update.FirstName, _ = cmd.Flags().GetString("first-name")
		update.LastName, _ = cmd.Flags().GetString("last-name")
		update.FullName, _ = cmd.Flags().GetString("full-name")
		update.ImageURL, _ = cmd.Flags().GetString("image-url")

		d, err := loadDeps(cmd)
		if err != nil {
			return err
		}
		defer d.close()

		if err := d.api.SaveCharacter(cmd.Context(), update); err != nil {
			return fmt.Errorf("save character %s: %w", update.ID, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved character %s (%s).\n", update.ID, update.FullName)
		return nil
	},
}

func init() {
	charactersSaveCmd.Flags().String("id", "", "Character id")
	charactersSaveCmd.Flags().String("first-name", "", "First name")
	charactersSaveCmd.Flags().String("last-name", "", "Last name")
	charactersSaveCmd.Flags().String("full-name", "", "Full name")
	charactersSaveCmd.Flags().String("image-url", "", "Image URL")
	_ = charactersSaveCmd.MarkFlagRequired("id")

	charactersCmd.AddCommand(charactersListCmd)
	charactersCmd.AddCommand(charactersShowCmd)
	charactersCmd.AddCommand(charactersSaveCmd)
}
