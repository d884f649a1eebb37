// Command plotcut turns a design file into an optimized cutting order
// for a pen or blade plotter.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/plotterkit/plotcut/pkg/design"
	"github.com/plotterkit/plotcut/pkg/device"
	"github.com/plotterkit/plotcut/pkg/loader"
	"github.com/plotterkit/plotcut/pkg/order"
	"github.com/plotterkit/plotcut/pkg/preset"
	"github.com/plotterkit/plotcut/pkg/script"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("plotcut: ")

	var (
		sortName   = flag.String("sort", "optimized", "cut order: original, optimized or inner-first")
		overcut    = flag.Float64("overcut", 1.0, "extra cut distance past closed path ends (mm)")
		regmarks   = flag.Bool("regmarks", false, "detect and strip printed registration marks")
		presetName = flag.String("preset", "", "apply a named cutting preset")
		presetPath = flag.String("presets", preset.DefaultPath(), "preset file location")
		evalScript = flag.Bool("eval", false, "treat the input file as a design script")
		outPath    = flag.String("o", "", "write the plan as HPGL to this file")
		cut        = flag.Bool("cut", false, "drive the plan to the simulator device")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: plotcut [flags] <design file>\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *sortName, *overcut, *regmarks,
		*presetName, *presetPath, *evalScript, *outPath, *cut); err != nil {
		log.Fatal(err)
	}
}

func run(path, sortName string, overcut float64, regmarks bool,
	presetName, presetPath string, evalScript bool, outPath string, cut bool) error {

	devices := device.NewRegistry()
	sim := device.NewSim()
	devices.Register(sim)

	app := NewApp(loader.Default(), devices)

	strategy, err := order.ParseStrategy(sortName)
	if err != nil {
		return err
	}
	app.SetStrategy(strategy)
	app.SetOvercut(overcut)
	app.SetRegMarkExtraction(regmarks)

	if presetName != "" {
		store, err := preset.Open(presetPath)
		if err != nil {
			return err
		}
		p, ok := store.Get(presetName)
		if !ok {
			return fmt.Errorf("unknown preset %q (have %v)", presetName, store.Names())
		}
		app.SetOvercut(p.Overcut)
		log.Printf("preset %q: tool=%s force=%.0fg speed=%.0fmm/s overcut=%.1fmm",
			presetName, p.Tool, p.Force, p.Speed, p.Overcut)
	}

	if evalScript {
		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		d, err := script.NewEngine().Evaluate(string(source))
		if err != nil {
			return err
		}
		app.SetDesign(sizeOf(d), d)
	} else if err := app.LoadDesign(path); err != nil {
		return err
	}

	plan, err := app.Plan()
	if err != nil {
		return err
	}
	if region, ok := app.Region(); ok {
		log.Printf("registration region: left=%.1f top=%.1f %.1fx%.1f mm",
			region.Left, region.Top, region.Width, region.Height)
	}

	switch {
	case outPath != "":
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return loader.WriteHPGL(f, plan)

	case cut:
		if err := app.Cut("sim", design.Pt(0, 0)); err != nil {
			return err
		}
		for _, op := range sim.Ops {
			switch op.Kind {
			case device.OpMove:
				fmt.Printf("move (%.2f, %.2f)\n", op.Target.X, op.Target.Y)
			case device.OpCut:
				fmt.Printf("cut  (%.2f, %.2f)\n", op.Target.X, op.Target.Y)
			case device.OpHome:
				fmt.Println("home")
			case device.OpZero:
				fmt.Printf("zero on regmarks %.1fx%.1f\n", op.Width, op.Height)
			}
		}
		return nil

	default:
		printPlan(plan)
		return nil
	}
}

func printPlan(plan order.Plan) {
	cur := design.Pt(0, 0)
	for _, seg := range plan {
		if seg.Start != cur {
			fmt.Printf("travel to (%.2f, %.2f)\n", seg.Start.X, seg.Start.Y)
		}
		fmt.Printf("cut (%.2f, %.2f) -> (%.2f, %.2f)\n",
			seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y)
		cur = seg.End
	}
}

func sizeOf(d design.Design) loader.Size {
	box, err := design.BoundingBox(d)
	if err != nil {
		return loader.Size{}
	}
	return loader.Size{Width: box.Max.X, Height: box.Max.Y}
}
