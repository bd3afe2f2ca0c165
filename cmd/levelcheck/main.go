// Command levelcheck loads every level and reports what it spawns. It exits
// non-zero if any level fails to parse or build.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"text/tabwriter"

	"github.com/milk9111/gravshift/config"
	"github.com/milk9111/gravshift/levels"
	"github.com/milk9111/gravshift/system"
)

func main() {
	dir := flag.String("dir", "", "read levels from this directory instead of the embedded set")
	build := flag.Bool("build", true, "also build each level's physics world")
	flag.Parse()

	var fsys fs.FS = levels.LevelsFS
	if *dir != "" {
		fsys = os.DirFS(*dir)
	}

	names, err := levels.Names(fsys)
	if err != nil {
		log.Fatal(err)
	}
	if len(names) == 0 {
		log.Fatal("levelcheck: no levels found")
	}

	tuning, err := config.LoadTuning()
	if err != nil {
		log.Printf("levelcheck: %v, using defaults", err)
		tuning = config.DefaultTuning()
	}
	loader := system.NewLoader(fsys, tuning, 1)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tSTATICS\tDYNAMICS\tBACKGROUND\tSPAWN\tSTATUS")
	failed := 0
	for _, name := range names {
		data, err := levels.Load(fsys, name)
		if err != nil {
			failed++
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t%v\n", name, err)
			continue
		}
		status := "ok"
		if *build {
			w, err := system.NewWorld(name, data, system.WorldOptions{Tuning: tuning, Rand: loader.Rand(name)})
			if err != nil {
				failed++
				status = err.Error()
			} else {
				status = fmt.Sprintf("ok: %d enemies, %d doors, %d plates", len(w.Enemies), len(w.Doors), len(w.Plates))
				w.Teardown()
			}
		}
		spawn := "none"
		if data.HasSpawn {
			spawn = fmt.Sprintf("%.1f,%.1f", data.SpawnX, data.SpawnY)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\n", name, len(data.Statics), len(data.Dynamics), len(data.Background), spawn, status)
	}
	if err := tw.Flush(); err != nil {
		log.Fatal(err)
	}
	if failed > 0 {
		log.Fatalf("levelcheck: %d of %d levels failed", failed, len(names))
	}
}
