package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/delve/internal/chance"
	"github.com/vovakirdan/delve/internal/entity"
)

var flagTablesTo int

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Show spawn caps and weights per depth",
	Long: `Print, for each dungeon level, the per-room monster and item caps and the
weight of every monster and item kind after the difficulty preset is applied.

Examples:
  delve tables
  delve tables --to 12 --difficulty hard`,
	Run: runTables,
}

func init() {
	tablesCmd.Flags().IntVar(&flagTablesTo, "to", 8, "Last dungeon level to show")
}

func runTables(_ *cobra.Command, _ []string) {
	a, err := newApp(false)
	exitOnError("loading config", err)
	defer a.Close()

	spawns := a.cfg.SpawnTables()
	monsters := entity.MonsterKinds()
	items := entity.ItemKinds()

	fmt.Printf("Spawn tables - difficulty %s\n\n", a.cfg.Difficulty)

	header := []string{fmt.Sprintf("%-5s", "Depth"), fmt.Sprintf("%6s", "MaxMon"), fmt.Sprintf("%6s", "MaxItm")}
	for _, k := range monsters {
		header = append(header, fmt.Sprintf("%14s", k))
	}
	for _, k := range items {
		header = append(header, fmt.Sprintf("%14s", k))
	}
	fmt.Println(strings.Join(header, "  "))

	for depth := 1; depth <= flagTablesTo; depth++ {
		row := []string{
			fmt.Sprintf("%-5d", depth),
			fmt.Sprintf("%6d", spawns.MaxMonsters.At(depth)),
			fmt.Sprintf("%6d", spawns.MaxItems.At(depth)),
		}
		row = appendWeights(row, chance.ResolveWeights(spawns.Monsters, depth), monsters)
		row = appendWeights(row, chance.ResolveWeights(spawns.Items, depth), items)
		fmt.Println(strings.Join(row, "  "))
	}
}

// appendWeights adds each kind's share of the total weight, in kinds order.
func appendWeights[K comparable](row []string, weights map[K]int, kinds []K) []string {
	total := 0
	for _, w := range weights {
		total += w
	}
	for _, k := range kinds {
		w := weights[k]
		if total == 0 || w == 0 {
			row = append(row, fmt.Sprintf("%14s", "-"))
			continue
		}
		row = append(row, fmt.Sprintf("%14s", fmt.Sprintf("%d (%.0f%%)", w, 100*float64(w)/float64(total))))
	}
	return row
}
