package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/delve/internal/config"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write or show the dungeon configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration",
	Long: `Write the built-in dungeon configuration to path, or to
~/.delve/configs/dungeon.yaml when no path is given. That location is picked
up automatically on the next run.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Run:   runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(_ *cobra.Command, args []string) {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		dir := config.UserDir()
		if dir == "" {
			exitOnError("locating home directory", fmt.Errorf("no home directory; pass a path"))
		}
		path = filepath.Join(dir, "configs", config.FileName)
	}

	exitOnError("writing config", config.WriteDefault(path, flagForce))
	fmt.Printf("Wrote %s\n", path)
}

func runConfigShow(_ *cobra.Command, _ []string) {
	a, err := newApp(false)
	exitOnError("loading config", err)
	defer a.Close()

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	exitOnError("encoding config", enc.Encode(a.cfg))
	exitOnError("encoding config", enc.Close())
}
