package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"krishimitra/internal/catalog"
	"krishimitra/internal/config"
)

var (
	schemesCategory string
	configForce     bool
)

// schemesCmd browses the scheme catalog
var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "Browse the government scheme catalog",
}

var schemesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schemes",
	RunE:  listSchemes,
}

var schemesShowCmd = &cobra.Command{
	Use:   "show [id, title or alias]",
	Short: "Show one scheme",
	Example: `  krishi schemes show kcc
  krishi schemes show "PM Kisan"`,
	Args: cobra.MinimumNArgs(1),
	RunE: showScheme,
}

// configCmd manages the config file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the krishimitra config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to --config",
	RunE:  initConfig,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration (secrets masked)",
	RunE:  showConfig,
}

func init() {
	schemesListCmd.Flags().StringVar(&schemesCategory, "category", "", "Only list this category")
	schemesCmd.AddCommand(schemesListCmd, schemesShowCmd)

	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd, configShowCmd)
}

func listSchemes(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, s := range cat.All() {
		if schemesCategory != "" && !strings.EqualFold(s.Category, schemesCategory) {
			continue
		}
		fmt.Fprintf(out, "%s  %s  %s\n",
			labelStyle.Render(fmt.Sprintf("%-18s", s.ID)), s.Title, mutedStyle.Render("["+s.Category+"]"))
	}
	return nil
}

func showScheme(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")
	s, ok := cat.Lookup(query)
	if !ok {
		return fmt.Errorf("no scheme matches %q", query)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(s.Title) + "\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("id:      "), s.ID)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("category:"), s.Category)
	if len(s.Aliases) > 0 {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("aliases: "), strings.Join(s.Aliases, ", "))
	}
	if s.URL != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("url:     "), linkStyle.Render(s.URL))
	}
	b.WriteString("\n" + s.Description)
	fmt.Fprintln(cmd.OutOrStdout(), sectionStyle.Render(b.String()))
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}
	// Write defaults, not the env-overridden config, so keys stay out of the file.
	if err := config.DefaultConfig().Save(configPath); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), replyStyle.Render("Wrote "+configPath))
	return nil
}

func showConfig(cmd *cobra.Command, args []string) error {
	shown := *cfg
	if shown.LLM.APIKey != "" {
		shown.LLM.APIKey = maskSecret(shown.LLM.APIKey)
	}
	data, err := yaml.Marshal(&shown)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func maskSecret(s string) string {
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "****" + s[len(s)-4:]
}
